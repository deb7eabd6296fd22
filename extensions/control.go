package extensions

import (
	"microforth.io/microforth/object"
)

// Iterations of times between cancellation checks.
const cancelCheckInterval = 1024

func createControlFunctions() {
	fn := object.Builtin{Category: object.CategoryControl}
	fn.Name = "exec"
	fn.Help = "( f -- ) executes (calls or pushes) the value on top"
	fn.Callback = func(e object.Engine) error {
		v, err := e.Pop()
		if err != nil {
			return err
		}
		return e.ExecuteValue(v)
	}
	MustCreate(fn)
	// Postfix conditional: the literal is scanned (and pushed) before if runs.
	fn.Name = "if"
	fn.Help = "( flag f -- ) executes f when flag is true, drops it otherwise"
	fn.Callback = func(e object.Engine) error {
		body, err := object.PopCallable(e)
		if err != nil {
			return err
		}
		cond, err := object.PopBoolean(e)
		if err != nil {
			return err
		}
		if !cond {
			return nil
		}
		return e.ExecuteValue(body)
	}
	MustCreate(fn)
	// Prefix conditional: pops the flag before what it guards is even scanned.
	fn.Name = "when"
	fn.Help = "( flag -- ) skips the next token or function literal when flag is false"
	fn.Callback = func(e object.Engine) error {
		cond, err := object.PopBoolean(e)
		if err != nil {
			return err
		}
		if !cond {
			e.ArmSkip()
		}
		return nil
	}
	MustCreate(fn)
	fn.Name = "ifelse"
	fn.Help = "( flag t f -- ) executes t when flag is true, f otherwise"
	fn.Callback = func(e object.Engine) error {
		branches, err := object.PopN(e, 2)
		if err != nil {
			return err
		}
		cond, err := object.PopBoolean(e)
		if err != nil {
			return err
		}
		if cond {
			return e.ExecuteValue(branches[0])
		}
		return e.ExecuteValue(branches[1])
	}
	MustCreate(fn)
	fn.Name = "times"
	fn.Help = "( f n -- ) executes f n times"
	fn.Callback = func(e object.Engine) error {
		n, err := object.PopInteger(e)
		if err != nil {
			return err
		}
		body, err := object.PopCallable(e)
		if err != nil {
			return err
		}
		// Builtins run right away, functions are queued: either way in order.
		for i := range n {
			if i%cancelCheckInterval == 0 {
				if err = e.Err(); err != nil {
					return err
				}
			}
			if err = e.ExecuteValue(body); err != nil {
				return err
			}
		}
		return nil
	}
	MustCreate(fn)
}
