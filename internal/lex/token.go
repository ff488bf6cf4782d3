package lex

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	EOF_TOKEN     TokenType = 0
	ILLEGAL_TOKEN TokenType = 1

	// Identifiers and literals
	IDENT_TOKEN TokenType = 2
	INT_TOKEN   TokenType = 3

	// Operators
	ASSIGN_TOKEN TokenType = 4
	PLUS_TOKEN   TokenType = 5
	MINUS_TOKEN  TokenType = 6
	BANG_TOKEN   TokenType = 7
	SLASH_TOKEN  TokenType = 8
	EQ_TOKEN     TokenType = 9
	NOT_EQ_TOKEN TokenType = 10
	LT_TOKEN     TokenType = 11
	GT_TOKEN     TokenType = 12
	LT_EQ_TOKEN  TokenType = 13
	GT_EQ_TOKEN  TokenType = 14

	// Delimiters
	COMMA_TOKEN     TokenType = 15
	SEMICOLON_TOKEN TokenType = 16
	LPAREN_TOKEN    TokenType = 17
	RPAREN_TOKEN    TokenType = 18
	LBRACE_TOKEN    TokenType = 19
	RBRACE_TOKEN    TokenType = 20

	// Keywords
	FUNCTION_TOKEN TokenType = 21
	LET_TOKEN      TokenType = 22
	IF_TOKEN       TokenType = 23
	ELSE_TOKEN     TokenType = 24
)

var typeNames = map[TokenType]string{
	EOF_TOKEN:       "Eof",
	ILLEGAL_TOKEN:   "Illegal",
	IDENT_TOKEN:     "Ident",
	INT_TOKEN:       "Int",
	ASSIGN_TOKEN:    "Assign",
	PLUS_TOKEN:      "Plus",
	MINUS_TOKEN:     "Minus",
	BANG_TOKEN:      "Bang",
	SLASH_TOKEN:     "Slash",
	EQ_TOKEN:        "Equal",
	NOT_EQ_TOKEN:    "NotEqual",
	LT_TOKEN:        "LessThan",
	GT_TOKEN:        "GreaterThan",
	LT_EQ_TOKEN:     "LessEqual",
	GT_EQ_TOKEN:     "GreaterEqual",
	COMMA_TOKEN:     "Comma",
	SEMICOLON_TOKEN: "Semicolon",
	LPAREN_TOKEN:    "LParen",
	RPAREN_TOKEN:    "RParen",
	LBRACE_TOKEN:    "LBrace",
	RBRACE_TOKEN:    "RBrace",
	FUNCTION_TOKEN:  "Function",
	LET_TOKEN:       "Let",
	IF_TOKEN:        "If",
	ELSE_TOKEN:      "Else",
}

func (t TokenType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a single lexical unit. Literal is only set for IDENT_TOKEN and
// Int only for INT_TOKEN.
type Token struct {
	Type    TokenType
	Literal string
	Int     int64
}

func (t Token) String() string {
	switch t.Type {
	case IDENT_TOKEN:
		return fmt.Sprintf("%s(%s)", t.Type, strconv.Quote(t.Literal))
	case INT_TOKEN:
		return fmt.Sprintf("%s(%d)", t.Type, t.Int)
	default:
		return t.Type.String()
	}
}

var keywords = map[string]TokenType{
	"fn":   FUNCTION_TOKEN,
	"let":  LET_TOKEN,
	"if":   IF_TOKEN,
	"else": ELSE_TOKEN,
}

// Returns the keyword type for word, or IDENT_TOKEN if it is not reserved.
func LookupIdent(word string) TokenType {
	if t, ok := keywords[word]; ok {
		return t
	}
	return IDENT_TOKEN
}
