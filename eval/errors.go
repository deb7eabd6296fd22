package eval

import (
	"errors"
	"fmt"

	"microforth.io/microforth/token"
)

var (
	ErrUnbalancedEnd     = errors.New("unbalanced function end")
	ErrContinuationLimit = errors.New("continuation stack limit exceeded")
	ErrDataStackLimit    = errors.New("data stack limit exceeded")
)

// ExecError tags a runtime error with the token whose execution failed.
type ExecError struct {
	Token token.Token
	Err   error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%v (executing %q)", e.Err, e.Token.String())
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
