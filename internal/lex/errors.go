package lex

import "fmt"

type ScanError struct {
	Type    string
	Message string
	Err     error
}

// Returns a rangecheck error for a numeric literal that does not fit in an
// int64.
func NewRangeError(lexeme string, err error) *ScanError {
	return &ScanError{
		Type:    "rangecheck",
		Message: fmt.Sprintf("integer literal %s out of range", lexeme),
		Err:     err,
	}
}

func (s *ScanError) Error() string {
	return fmt.Sprintf("%s: %s", s.Type, s.Message)
}

func (s *ScanError) Unwrap() error {
	return s.Err
}
