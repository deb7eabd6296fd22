package object_test

import (
	"errors"
	"testing"

	"microforth.io/microforth/object"
	"microforth.io/microforth/token"
)

func TestEquals(t *testing.T) {
	noop := func(object.Engine) error { return nil }
	tests := []struct {
		left, right object.Value
		expected    bool
	}{
		{object.Integer{Value: 3}, object.Integer{Value: 3}, true},
		{object.Integer{Value: 3}, object.Integer{Value: 4}, false},
		{object.Integer{Value: 1}, object.TRUE, false},
		{object.TRUE, object.NativeBoolToBooleanObject(true), true},
		{object.Index{Value: 1}, object.Integer{Value: 1}, false},
		{
			object.NewFunction([]token.Token{token.Ident("dup"), token.Ident("mul")}),
			object.NewFunction([]token.Token{token.Ident("dup"), token.Ident("mul")}),
			true,
		},
		{
			object.NewFunction([]token.Token{token.Ident("dup")}),
			object.NewFunction([]token.Token{token.Assign("dup")}),
			false,
		},
		// builtins compare by name only.
		{object.Builtin{Name: "x", Callback: noop}, object.Builtin{Name: "x", Help: "other"}, true},
		{object.Builtin{Name: "x", Callback: noop}, object.Builtin{Name: "y", Callback: noop}, false},
	}
	for i, tt := range tests {
		if got := object.Equals(tt.left, tt.right); got != tt.expected {
			t.Errorf("test %d: Equals(%s, %s) = %v, expected %v", i, tt.left.Inspect(), tt.right.Inspect(), got, tt.expected)
		}
	}
}

func TestFunctionIsACopy(t *testing.T) {
	buf := []token.Token{token.Ident("1"), token.Ident("2")}
	f := object.NewFunction(buf)
	buf[0] = token.Ident("changed")
	if f.Inspect() != "{ 1 2 }" {
		t.Errorf("function changed with its source buffer: %s", f.Inspect())
	}
	if object.NewFunction(nil).Inspect() != "{ }" {
		t.Errorf("empty function inspect: %s", object.NewFunction(nil).Inspect())
	}
}

func TestWrongTypeError(t *testing.T) {
	err := error(object.NewWrongTypeError(object.BOOLEAN, object.INDEX, object.INTEGER))
	expected := "wrong argument type BOOLEAN, expected one of [INTEGER INDEX]"
	if err.Error() != expected {
		t.Errorf("got %q, expected %q", err.Error(), expected)
	}
	var wte *object.WrongTypeError
	if !errors.As(err, &wte) || !wte.Accepted.Has(object.INTEGER) || wte.Accepted.Has(object.BOOLEAN) {
		t.Errorf("unexpected accepted set %v", wte)
	}
}

func TestCreateFunction(t *testing.T) {
	object.Init()
	noop := func(object.Engine) error { return nil }
	if err := object.CreateFunction(object.Builtin{Name: "b1", Callback: noop}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := object.CreateFunction(object.Builtin{Name: "a2", Callback: noop}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := object.CreateFunction(object.Builtin{Name: "b1", Callback: noop}); err == nil {
		t.Errorf("expected duplicate error")
	}
	for _, name := range []string{"", "/x", "#x", "a{", "b}", "(c", "d e", "f\u00a0g"} {
		if err := object.CreateFunction(object.Builtin{Name: name, Callback: noop}); err == nil {
			t.Errorf("expected invalid name error for %q", name)
		}
	}
	if err := object.CreateFunction(object.Builtin{Name: "nocb"}); err == nil {
		t.Errorf("expected nil callback error")
	}
	all := object.ExtraFunctions()
	if len(all) != 2 || all[0].Name != "b1" || all[1].Name != "a2" {
		t.Errorf("unexpected registration order %v", all)
	}
	object.Init()
}
