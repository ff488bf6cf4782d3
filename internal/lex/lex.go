package lex

import (
	"errors"
	"io"
	"iter"
	"strconv"

	"github.com/ian-shakespeare/monlex/pkg/runes"
)

type lexer struct {
	input *runes.Reader
}

func NewLexer(input string) *lexer {
	return &lexer{
		runes.NewReader(input),
	}
}

// Returns the next token. At the end of input it returns an EOF_TOKEN along
// with io.EOF, and keeps doing so on every later call.
func (l *lexer) NextToken() (Token, error) {
	l.input.SkipWhitespace()

	c, ok := l.input.Advance()
	if !ok {
		return Token{Type: EOF_TOKEN}, io.EOF
	}

	switch c {
	case ',':
		return Token{Type: COMMA_TOKEN}, nil
	case ';':
		return Token{Type: SEMICOLON_TOKEN}, nil
	case '(':
		return Token{Type: LPAREN_TOKEN}, nil
	case ')':
		return Token{Type: RPAREN_TOKEN}, nil
	case '{':
		return Token{Type: LBRACE_TOKEN}, nil
	case '}':
		return Token{Type: RBRACE_TOKEN}, nil
	case '+':
		return Token{Type: PLUS_TOKEN}, nil
	case '-':
		return Token{Type: MINUS_TOKEN}, nil
	case '/':
		return Token{Type: SLASH_TOKEN}, nil
	case '!':
		return l.scanOperator(BANG_TOKEN, NOT_EQ_TOKEN), nil
	case '=':
		return l.scanOperator(ASSIGN_TOKEN, EQ_TOKEN), nil
	case '>':
		return l.scanOperator(GT_TOKEN, GT_EQ_TOKEN), nil
	case '<':
		return l.scanOperator(LT_TOKEN, LT_EQ_TOKEN), nil
	}

	switch {
	case runes.IsDigit(c):
		return l.scanInteger(c)
	case runes.IsLetter(c):
		return l.scanWord(c), nil
	default:
		return Token{Type: ILLEGAL_TOKEN}, nil
	}
}

// Yields tokens until the input is exhausted. The EOF_TOKEN itself is not
// yielded. A scan error is yielded once and ends the sequence.
func (l *lexer) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			token, err := l.NextToken()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				yield(Token{}, err)
				return
			}
			if !yield(token, nil) {
				return
			}
		}
	}
}

// The lead character has already been consumed. The follow character is
// only consumed when it is '='.
func (l *lexer) scanOperator(single, withEquals TokenType) Token {
	if next, ok := l.input.Peek(); ok && next == '=' {
		l.input.Advance()
		return Token{Type: withEquals}
	}
	return Token{Type: single}
}

func (l *lexer) scanInteger(first rune) (Token, error) {
	word := string(l.input.ConsumeRun(first, runes.IsDigit))

	n, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		return Token{}, NewRangeError(word, err)
	}

	return Token{Type: INT_TOKEN, Int: n}, nil
}

func (l *lexer) scanWord(first rune) Token {
	word := string(l.input.ConsumeRun(first, runes.IsLetter))

	t := LookupIdent(word)
	if t != IDENT_TOKEN {
		return Token{Type: t}
	}
	return Token{Type: IDENT_TOKEN, Literal: word}
}
