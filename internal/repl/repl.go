package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/ian-shakespeare/monlex/internal/lex"
)

const PROMPT = "mon >>: "

// Start reads lines from in until it is exhausted, writing the tokens of
// each line to out. A final line without a trailing newline is still
// tokenized.
func Start(in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)

	for {
		if _, err := io.WriteString(out, PROMPT); err != nil {
			return err
		}

		line, err := r.ReadString('\n')
		atEOF := errors.Is(err, io.EOF)
		if err != nil && !atEOF {
			return err
		}
		if atEOF && line == "" {
			return nil
		}

		if err := writeLine(out, line); err != nil {
			return err
		}
		if atEOF {
			return nil
		}
	}
}

func writeLine(out io.Writer, line string) error {
	tokens, err := tokenize(line)
	if err != nil {
		_, err = fmt.Fprintf(out, "error: %s\n", err.Error())
		return err
	}
	_, err = fmt.Fprintln(out, tokens)
	return err
}

func tokenize(line string) ([]lex.Token, error) {
	tokens := []lex.Token{}
	for token, err := range lex.NewLexer(line).Tokens() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}
