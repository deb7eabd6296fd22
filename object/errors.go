package object

import (
	"errors"
	"fmt"

	"fortio.org/sets"
)

var (
	ErrStackUnderflow  = errors.New("stack underflow")
	ErrIntegerOverflow = errors.New("integer overflow")
	ErrAssertionFailed = errors.New("assertion failed")
	ErrDivisionByZero  = errors.New("division by zero")
)

// WrongTypeError is returned by builtins whose popped operand has an unexpected kind.
type WrongTypeError struct {
	Actual   Type
	Accepted sets.Set[Type]
}

func NewWrongTypeError(actual Type, accepted ...Type) *WrongTypeError {
	return &WrongTypeError{Actual: actual, Accepted: sets.New(accepted...)}
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("wrong argument type %s, expected one of %v", e.Actual, sets.Sort(e.Accepted))
}

type NameNotFoundError struct {
	Path SymbolPath
}

func (e *NameNotFoundError) Error() string {
	return "name not found: " + e.Path.String()
}

// Helpers for builtins: pop and check the kind in one go. The operand stays consumed
// when the check fails.

func PopInteger(e Engine) (uint64, error) {
	v, err := e.Pop()
	if err != nil {
		return 0, err
	}
	i, ok := v.(Integer)
	if !ok {
		return 0, NewWrongTypeError(v.Type(), INTEGER)
	}
	return i.Value, nil
}

func PopBoolean(e Engine) (bool, error) {
	v, err := e.Pop()
	if err != nil {
		return false, err
	}
	b, ok := v.(Boolean)
	if !ok {
		return false, NewWrongTypeError(v.Type(), BOOLEAN)
	}
	return b.Value, nil
}

// PopCallable pops a Function or a Builtin.
func PopCallable(e Engine) (Value, error) {
	v, err := e.Pop()
	if err != nil {
		return nil, err
	}
	switch v.Type() { //nolint:exhaustive // only callables are accepted.
	case FUNCTION, BUILTIN:
		return v, nil
	}
	return nil, NewWrongTypeError(v.Type(), FUNCTION, BUILTIN)
}

// PopN pops n values and returns them in stack order (deepest first).
func PopN(e Engine, n int) ([]Value, error) {
	res := make([]Value, n)
	for i := n - 1; i >= 0; i-- {
		v, err := e.Pop()
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}
