package extensions

import (
	"fmt"

	"fortio.org/safecast"
	"microforth.io/microforth/object"
)

func createStackFunctions() {
	fn := object.Builtin{Category: object.CategoryStack}
	for _, f := range []struct {
		name, help string
		cb         object.Callback
	}{
		{"drop", "( a -- )", func(e object.Engine) error {
			_, err := e.Pop()
			return err
		}},
		{"dup", "( a -- a a )", func(e object.Engine) error {
			a, err := e.Pop()
			if err != nil {
				return err
			}
			e.Push(a)
			e.Push(a)
			return nil
		}},
		{"over", "( a b -- a b a )", func(e object.Engine) error {
			s, err := object.PopN(e, 2)
			if err != nil {
				return err
			}
			e.Push(s[0])
			e.Push(s[1])
			e.Push(s[0])
			return nil
		}},
		{"swap", "( a b -- b a )", func(e object.Engine) error {
			s, err := object.PopN(e, 2)
			if err != nil {
				return err
			}
			e.Push(s[1])
			e.Push(s[0])
			return nil
		}},
		{"rot", "( a b c -- b c a )", func(e object.Engine) error {
			s, err := object.PopN(e, 3)
			if err != nil {
				return err
			}
			e.Push(s[1])
			e.Push(s[2])
			e.Push(s[0])
			return nil
		}},
		{"nip", "( a b -- b )", func(e object.Engine) error {
			s, err := object.PopN(e, 2)
			if err != nil {
				return err
			}
			e.Push(s[1])
			return nil
		}},
		{"tuck", "( a b -- b a b )", func(e object.Engine) error {
			s, err := object.PopN(e, 2)
			if err != nil {
				return err
			}
			e.Push(s[1])
			e.Push(s[0])
			e.Push(s[1])
			return nil
		}},
		{"pick", "( xn ... x0 n -- xn ... x0 xn )", pick},
		{"roll", "( xn ... x0 n -- xn-1 ... x0 xn )", roll},
		{"depth", "( -- n )", depth},
		{"clear", "( ... -- )", func(e object.Engine) error {
			for len(e.Stack()) > 0 {
				_, _ = e.Pop()
			}
			return nil
		}},
		{"toindex", "( n -- index )", func(e object.Engine) error {
			n, err := popIndex(e)
			if err != nil {
				return err
			}
			e.Push(object.Index{Value: n})
			return nil
		}},
	} {
		fn.Name = f.name
		fn.Help = f.help
		fn.Callback = f.cb
		MustCreate(fn)
	}
}

// popIndex accepts an Integer or an Index.
func popIndex(e object.Engine) (int, error) {
	v, err := e.Pop()
	if err != nil {
		return 0, err
	}
	switch v := v.(type) {
	case object.Index:
		return v.Value, nil
	case object.Integer:
		n, err := safecast.Convert[int](v.Value)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", object.ErrIntegerOverflow, err)
		}
		return n, nil
	}
	return 0, object.NewWrongTypeError(v.Type(), object.INTEGER, object.INDEX)
}

func pick(e object.Engine) error {
	n, err := popIndex(e)
	if err != nil {
		return err
	}
	s := e.Stack()
	if n < 0 || n >= len(s) {
		return fmt.Errorf("%w: pick %d with %d values", object.ErrStackUnderflow, n, len(s))
	}
	e.Push(s[len(s)-1-n])
	return nil
}

func roll(e object.Engine) error {
	n, err := popIndex(e)
	if err != nil {
		return err
	}
	if n < 0 || n >= len(e.Stack()) {
		return fmt.Errorf("%w: roll %d with %d values", object.ErrStackUnderflow, n, len(e.Stack()))
	}
	s, err := object.PopN(e, n+1)
	if err != nil {
		return err
	}
	for _, v := range s[1:] {
		e.Push(v)
	}
	e.Push(s[0])
	return nil
}

func depth(e object.Engine) error {
	n, err := safecast.Convert[uint64](len(e.Stack()))
	if err != nil {
		return err
	}
	e.Push(object.Integer{Value: n})
	return nil
}
