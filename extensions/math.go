package extensions

import (
	"microforth.io/microforth/object"
)

type TwoIntFunc func(a, b uint64) (uint64, error)

func createMathFunctions() {
	fn := object.Builtin{Category: object.CategoryMath}
	for _, f := range []struct {
		fn   TwoIntFunc
		name string
		help string
	}{
		{add, "add", "( a b -- a+b )"},
		{sub, "sub", "( a b -- a-b )"},
		{mul, "mul", "( a b -- a*b )"},
		{div, "div", "( a b -- a/b )"},
		{mod, "mod", "( a b -- a%b )"},
		{minInt, "min", "( a b -- min )"},
		{maxInt, "max", "( a b -- max )"},
	} {
		fn.Name = f.name
		fn.Help = f.help
		fn.Callback = func(e object.Engine) error {
			a, b, err := popTwoIntegers(e)
			if err != nil {
				return err
			}
			r, err := f.fn(a, b)
			if err != nil {
				return err // operands stay consumed.
			}
			e.Push(object.Integer{Value: r})
			return nil
		}
		MustCreate(fn)
	}
	cmp := object.Builtin{Category: object.CategoryCompare}
	for _, f := range []struct {
		fn   func(a, b uint64) bool
		name string
	}{
		{func(a, b uint64) bool { return a < b }, "lt"},
		{func(a, b uint64) bool { return a > b }, "gt"},
		{func(a, b uint64) bool { return a <= b }, "le"},
		{func(a, b uint64) bool { return a >= b }, "ge"},
	} {
		cmp.Name = f.name
		cmp.Help = "( a b -- flag )"
		cmp.Callback = func(e object.Engine) error {
			a, b, err := popTwoIntegers(e)
			if err != nil {
				return err
			}
			e.Push(object.NativeBoolToBooleanObject(f.fn(a, b)))
			return nil
		}
		MustCreate(cmp)
	}
	// eq and neq work on any two values.
	cmp.Help = "( a b -- flag )"
	cmp.Name = "eq"
	cmp.Callback = func(e object.Engine) error {
		s, err := object.PopN(e, 2)
		if err != nil {
			return err
		}
		e.Push(object.NativeBoolToBooleanObject(object.Equals(s[0], s[1])))
		return nil
	}
	MustCreate(cmp)
	cmp.Name = "neq"
	cmp.Callback = func(e object.Engine) error {
		s, err := object.PopN(e, 2)
		if err != nil {
			return err
		}
		e.Push(object.NativeBoolToBooleanObject(!object.Equals(s[0], s[1])))
		return nil
	}
	MustCreate(cmp)
}

func add(a, b uint64) (uint64, error) {
	r, ok := checkedAdd(a, b)
	if !ok {
		return 0, object.ErrIntegerOverflow
	}
	return r, nil
}

func sub(a, b uint64) (uint64, error) {
	r, ok := checkedSub(a, b)
	if !ok {
		return 0, object.ErrIntegerOverflow
	}
	return r, nil
}

func mul(a, b uint64) (uint64, error) {
	r, ok := checkedMul(a, b)
	if !ok {
		return 0, object.ErrIntegerOverflow
	}
	return r, nil
}

func div(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, object.ErrDivisionByZero
	}
	return a / b, nil
}

func mod(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, object.ErrDivisionByZero
	}
	return a % b, nil
}

func minInt(a, b uint64) (uint64, error) {
	return min(a, b), nil
}

func maxInt(a, b uint64) (uint64, error) {
	return max(a, b), nil
}

func createBooleanFunctions() {
	fn := object.Builtin{Category: object.CategoryBoolean}
	for _, c := range []object.Boolean{object.TRUE, object.FALSE} {
		fn.Name = c.Inspect()
		fn.Help = "( -- flag )"
		fn.Callback = func(e object.Engine) error {
			e.Push(c)
			return nil
		}
		MustCreate(fn)
	}
	fn.Name = "not"
	fn.Help = "( flag -- !flag )"
	fn.Callback = func(e object.Engine) error {
		b, err := object.PopBoolean(e)
		if err != nil {
			return err
		}
		e.Push(object.NativeBoolToBooleanObject(!b))
		return nil
	}
	MustCreate(fn)
	for _, f := range []struct {
		fn   func(a, b bool) bool
		name string
	}{
		{func(a, b bool) bool { return a && b }, "and"},
		{func(a, b bool) bool { return a || b }, "or"},
		{func(a, b bool) bool { return a != b }, "xor"},
	} {
		fn.Name = f.name
		fn.Help = "( a b -- flag )"
		fn.Callback = func(e object.Engine) error {
			a, b, err := popTwoBooleans(e)
			if err != nil {
				return err
			}
			e.Push(object.NativeBoolToBooleanObject(f.fn(a, b)))
			return nil
		}
		MustCreate(fn)
	}
}
