package parser

import "fmt"

// ParseError is the parse-time error kind: a block token used as an
// expression head, an assignment target that isn't a variable, an
// unknown operator symbol. No source position is tracked.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

func errf(format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}
