package repl_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"fortio.org/log"
	"microforth.io/microforth/eval"
	"microforth.io/microforth/extensions"
	"microforth.io/microforth/object"
	"microforth.io/microforth/repl"
)

func TestMain(m *testing.M) {
	if err := extensions.Init(nil); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func stackLine(s string) string {
	return log.Colors.Green + s + log.Colors.Reset + "\n"
}

func TestEvalString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"3 4 add", stackLine("[7]")},
		{"7 print 1", "7\n" + stackLine("[1]")},
		{"( nothing )", stackLine("[]")},
		{"{ dup mul } /square\n3 square\n100", stackLine("[9 100]")},
		{"1 2 dbgshowstack drop", "[1 2]\n" + stackLine("[1]")},
	}
	for _, tt := range tests {
		res, errs := repl.EvalString(tt.input)
		if len(errs) > 0 {
			t.Errorf("%q: unexpected errors %v", tt.input, errs)
		}
		if res != tt.expected {
			t.Errorf("%q: got %q, want %q", tt.input, res, tt.expected)
		}
	}
}

func TestEvalStringError(t *testing.T) {
	res, errs := repl.EvalString("1 nosuch 2")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	var nnf *object.NameNotFoundError
	if !errors.As(errs[0], &nnf) {
		t.Errorf("expected name not found, got %v", errs[0])
	}
	// The stack is still shown after an error.
	if res != stackLine("[1]") {
		t.Errorf("got %q", res)
	}
}

func TestPreInputHook(t *testing.T) {
	opts := repl.EvalStringOptions()
	opts.ShowStack = false
	opts.PreInput = func(s *eval.State) {
		s.RegisterBuiltin(object.Builtin{
			Name: "testHook",
			Callback: func(e object.Engine) error {
				e.Push(object.Integer{Value: 42})
				return nil
			},
		})
	}
	res, errs := repl.EvalStringWithOption(context.Background(), opts, "testHook print")
	if res != "42\n" || len(errs) > 0 {
		t.Errorf("got %v %q", errs, res)
	}
}

func TestPanicRecovery(t *testing.T) {
	opts := repl.EvalStringOptions()
	opts.PreInput = func(s *eval.State) {
		s.RegisterBuiltin(object.Builtin{
			Name:     "boom",
			Callback: func(object.Engine) error { panic("boom") },
		})
	}
	res, errs := repl.EvalStringWithOption(context.Background(), opts, "1 boom 2")
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), "panic: boom") {
		t.Errorf("expected the panic as an error, got %v", errs)
	}
	if res != "" {
		t.Errorf("nothing should be printed after a panic, got %q", res)
	}
}

func TestMaxDuration(t *testing.T) {
	opts := repl.EvalStringOptions()
	opts.MaxDuration = 20 * time.Millisecond
	_, errs := repl.EvalStringWithOption(context.Background(), opts, "{ f } /f f")
	if len(errs) != 1 || !errors.Is(errs[0], context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", errs)
	}
}

func TestEvalAllSharedState(t *testing.T) {
	opts := repl.Options{}
	s := opts.NewState()
	out := bytes.Buffer{}
	if errs := repl.EvalAll(context.Background(), s, strings.NewReader("{ 1 add } /inc\n5"), &out, opts); len(errs) > 0 {
		t.Fatalf("first stream: %v", errs)
	}
	if errs := repl.EvalAll(context.Background(), s, strings.NewReader("inc print"), &out, opts); len(errs) > 0 {
		t.Fatalf("second stream: %v", errs)
	}
	if out.String() != "6\n" {
		t.Errorf("got %q", out.String())
	}
	if s.Out != os.Stdout {
		t.Errorf("state output not restored")
	}
}

func TestOptionsLimits(t *testing.T) {
	opts := repl.Options{MaxStack: 2}
	_, errs := repl.EvalStringWithOption(context.Background(), opts, "1 2 3")
	if len(errs) != 1 || !errors.Is(errs[0], eval.ErrDataStackLimit) {
		t.Errorf("expected the data stack limit, got %v", errs)
	}
	opts = repl.Options{MaxDepth: 2}
	_, errs = repl.EvalStringWithOption(context.Background(), opts, "{ 1 2 3 } exec")
	if len(errs) != 1 || !errors.Is(errs[0], eval.ErrContinuationLimit) {
		t.Errorf("expected the continuation limit, got %v", errs)
	}
}

func TestWriteError(t *testing.T) {
	_, errs := repl.EvalString("1 2\n  { 3")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	out := bytes.Buffer{}
	repl.WriteError(&out, errs[0])
	got := out.String()
	if !strings.Contains(got, "  { 3\n") || !strings.Contains(got, "incomplete input") {
		t.Errorf("unexpected error rendering %q", got)
	}
}

func TestWriteHelp(t *testing.T) {
	out := bytes.Buffer{}
	repl.WriteHelp(&out)
	got := out.String()
	for _, want := range []string{"stack:\n", "  swap ", "( a b -- b a )", "integer:\n", "  checked_add ", "markers: # ( ) / { }\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("help is missing %q", want)
		}
	}
}

func TestComplete(t *testing.T) {
	a := repl.NewCompletion()
	a.AddWords("dup", "drop", "depth", "dbgshow", "dbgshowstack")
	tests := []struct {
		line    string
		pos     int
		newLine string
		newPos  int
		choices int
		ok      bool
	}{
		{"1 d", 3, "1 d", 3, 5, true},
		{"1 du", 4, "1 dup ", 6, 0, true},
		{"/dr", 3, "/drop ", 6, 0, true},
		{"{ de", 4, "{ depth ", 8, 0, true},
		{"dbg", 3, "dbgshow", 7, 2, true},
		{"du 1", 2, "dup  1", 4, 0, true},
		{"{de", 3, "{depth ", 7, 0, true},
		{"#dro", 4, "#drop ", 6, 0, true},
		{"1\u00a0du", 5, "1\u00a0dup ", 7, 0, true},
		{"x", 1, "", 0, 0, false},
	}
	for _, tt := range tests {
		newLine, newPos, choices, ok := a.Complete(tt.line, tt.pos)
		if newLine != tt.newLine || newPos != tt.newPos || len(choices) != tt.choices || ok != tt.ok {
			t.Errorf("Complete(%q, %d) = %q, %d, %v, %v", tt.line, tt.pos, newLine, newPos, choices, ok)
		}
	}
}
