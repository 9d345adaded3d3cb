package condition

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFunction is returned for calls to functions outside the grammar.
	ErrUnknownFunction = errors.New("unknown function")
	// ErrTypeMismatch is returned when an operator or function receives unusable operands.
	ErrTypeMismatch = errors.New("type mismatch")
)

// SyntaxError reports a malformed expression.
type SyntaxError struct {
	Expr string
	Pos  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d in %q: %s", e.Pos, e.Expr, e.Msg)
}
