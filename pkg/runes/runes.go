package runes

import (
	"unicode/utf8"

	"github.com/ian-shakespeare/monlex/pkg/array"
)

var whitespace = []rune{' ', '\t', '\n', '\r'}

// Reader walks a string one rune at a time with a single rune of lookahead.
type Reader struct {
	rest string
}

func NewReader(input string) *Reader {
	return &Reader{input}
}

// Returns the next rune without consuming it. The second value is false at
// the end of input.
func (r *Reader) Peek() (rune, bool) {
	if len(r.rest) < 1 {
		return 0, false
	}
	char, _ := utf8.DecodeRuneInString(r.rest)
	return char, true
}

// Returns the next rune and moves past it. The second value is false at the
// end of input.
func (r *Reader) Advance() (rune, bool) {
	if len(r.rest) < 1 {
		return 0, false
	}
	char, size := utf8.DecodeRuneInString(r.rest)
	r.rest = r.rest[size:]
	return char, true
}

func (r *Reader) SkipWhitespace() {
	for {
		char, ok := r.Peek()
		if !ok || !IsWhitespace(char) {
			return
		}
		r.Advance()
	}
}

// Returns first followed by the longest run of upcoming runes matching cond.
// The first rune that fails cond is left unread.
func (r *Reader) ConsumeRun(first rune, cond func(rune) bool) []rune {
	word := []rune{first}
	for {
		char, ok := r.Peek()
		if !ok || !cond(char) {
			break
		}
		r.Advance()
		word = append(word, char)
	}
	return word
}

func IsWhitespace(char rune) bool {
	return array.Contains(whitespace, char)
}

func IsDigit(char rune) bool {
	return '0' <= char && char <= '9'
}

func IsLetter(char rune) bool {
	return ('a' <= char && char <= 'z') || ('A' <= char && char <= 'Z')
}
