package lexer

import "fmt"

// LexError is the lex-time error kind. Source positions are not
// tracked, so the message carries only what happened.
type LexError struct {
	Msg string
}

func (e *LexError) Error() string { return e.Msg }

func errf(format string, args ...any) *LexError {
	return &LexError{Msg: fmt.Sprintf(format, args...)}
}
