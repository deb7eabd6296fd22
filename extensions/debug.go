package extensions

import (
	"fmt"

	"microforth.io/microforth/object"
)

func createAssert() {
	MustCreate(object.Builtin{
		Name:     "assert",
		Help:     "( flag -- ) fails unless flag is true",
		Category: object.CategoryDebug,
		Callback: func(e object.Engine) error {
			b, err := object.PopBoolean(e)
			if err != nil {
				return err
			}
			if !b {
				return object.ErrAssertionFailed
			}
			return nil
		},
	})
}

func createDebugFunctions() {
	fn := object.Builtin{Category: object.CategoryDebug}
	fn.Name = "dbgshow"
	fn.Help = "( a -- a ) prints the top of the stack"
	fn.Callback = func(e object.Engine) error {
		s := e.Stack()
		if len(s) == 0 {
			fmt.Fprintln(e.Writer(), "(stack empty)")
			return nil
		}
		fmt.Fprintln(e.Writer(), s[len(s)-1].Inspect())
		return nil
	}
	MustCreate(fn)
	fn.Name = "dbgshowstack"
	fn.Help = "( -- ) prints the whole stack, bottom first"
	fn.Callback = func(e object.Engine) error {
		fmt.Fprintln(e.Writer(), object.InspectStack(e.Stack()))
		return nil
	}
	MustCreate(fn)
	fn.Name = "dbgstackdepth"
	fn.Help = "( -- n ) same as depth"
	fn.Callback = depth
	MustCreate(fn)
	fn.Name = "print"
	fn.Help = "( a -- ) pops and prints"
	fn.Callback = func(e object.Engine) error {
		v, err := e.Pop()
		if err != nil {
			return err
		}
		fmt.Fprintln(e.Writer(), v.Inspect())
		return nil
	}
	MustCreate(fn)
}
