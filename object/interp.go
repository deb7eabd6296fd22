package object

import (
	"errors"
	"fmt"
	"io"

	"microforth.io/microforth/token"
)

// Engine is everything a native builtin can see of the interpreter. Control state
// (namespace cursor, function nesting, skip) is only reachable through ArmSkip.
type Engine interface {
	Pop() (Value, error) // ErrStackUnderflow when empty.
	Push(v Value)
	// ExecuteValue performs value execution: builtins are called, functions are
	// scheduled on the continuation stack, anything else is pushed.
	ExecuteValue(v Value) error
	// ArmSkip makes the engine discard the next token (or function literal).
	ArmSkip()
	// Stack is a read only view of the data stack, bottom first. For debug builtins.
	Stack() []Value
	// Writer is where output builtins print.
	Writer() io.Writer
	// Err is non nil once the running call is canceled or past its deadline.
	// Builtins that loop must check it.
	Err() error
}

type Category string

const (
	CategoryStack   Category = "stack"
	CategoryMath    Category = "math"
	CategoryCompare Category = "compare"
	CategoryBoolean Category = "boolean"
	CategoryControl Category = "control"
	CategoryDebug   Category = "debug"
	CategoryInteger Category = "integer" // generated.
)

var (
	extraFunctions map[string]Builtin
	order          []string
	initDone       bool
)

// Init resets the table of builtins to empty.
// Optional, will be called on demand the first time through CreateFunction.
func Init() {
	extraFunctions = make(map[string]Builtin)
	order = nil
	initDone = true
}

// CreateFunction adds a new builtin to the table used to seed new interpreter states.
func CreateFunction(b Builtin) error {
	if !initDone {
		Init()
	}
	if !token.Info().ValidName(b.Name) {
		return fmt.Errorf("invalid builtin name %q", b.Name)
	}
	if b.Callback == nil {
		return errors.New(b.Name + ": nil callback")
	}
	if _, ok := extraFunctions[b.Name]; ok {
		return errors.New(b.Name + ": already defined")
	}
	extraFunctions[b.Name] = b
	order = append(order, b.Name)
	return nil
}

// ExtraFunctions returns the registered builtins in registration order.
func ExtraFunctions() []Builtin {
	res := make([]Builtin, 0, len(order))
	for _, name := range order {
		res = append(res, extraFunctions[name])
	}
	return res
}
