// Package extensions is the library of native builtins: stack shuffling, checked
// integer arithmetic, comparisons, booleans, control flow, debug helpers and the
// generated integer operations.
package extensions

import (
	"fmt"

	"fortio.org/log"
	"microforth.io/microforth/object"
)

var (
	initDone  = false
	errInInit error
)

// Config selects optional builtin groups.
type Config struct {
	NoDebug     bool // no dbgshow, dbgshowstack, print (nothing writes to Out).
	NoGenerated bool // no generated integer operations.
}

// Init registers the builtins, can be called multiple time safely but should really
// be called only once before creating interpreter states. If the passed [Config]
// pointer is nil, default values (everything) are used.
func Init(c *Config) error {
	if initDone {
		return errInInit
	}
	if c == nil {
		c = &Config{}
	}
	errInInit = initInternal(c)
	initDone = true
	return errInInit
}

func initInternal(c *Config) (err error) {
	// MustCreate panics on programming errors (duplicate names), turn that into
	// the Init error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extensions init: %v", r)
		}
	}()
	createStackFunctions()
	createMathFunctions()
	createBooleanFunctions()
	createControlFunctions()
	createAssert()
	if !c.NoDebug {
		createDebugFunctions()
	}
	if !c.NoGenerated {
		registerGenerated()
	}
	log.LogVf("extensions: %d builtins registered", len(object.ExtraFunctions()))
	return nil
}

// MustCreate registers b or panics, registering a name twice is a bug.
func MustCreate(b object.Builtin) {
	err := object.CreateFunction(b)
	if err != nil {
		panic(err)
	}
}

// Two operands popped (top is b) before either is checked, so both stay consumed
// when the check fails.
func popTwoIntegers(e object.Engine) (a, b uint64, err error) {
	args, err := object.PopN(e, 2)
	if err != nil {
		return 0, 0, err
	}
	ai, ok := args[0].(object.Integer)
	if !ok {
		return 0, 0, object.NewWrongTypeError(args[0].Type(), object.INTEGER)
	}
	bi, ok := args[1].(object.Integer)
	if !ok {
		return 0, 0, object.NewWrongTypeError(args[1].Type(), object.INTEGER)
	}
	return ai.Value, bi.Value, nil
}

func popTwoBooleans(e object.Engine) (a, b bool, err error) {
	args, err := object.PopN(e, 2)
	if err != nil {
		return false, false, err
	}
	ab, ok := args[0].(object.Boolean)
	if !ok {
		return false, false, object.NewWrongTypeError(args[0].Type(), object.BOOLEAN)
	}
	bb, ok := args[1].(object.Boolean)
	if !ok {
		return false, false, object.NewWrongTypeError(args[1].Type(), object.BOOLEAN)
	}
	return ab.Value, bb.Value, nil
}
