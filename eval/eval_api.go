// Package eval is the microforth interpreter engine: it pulls tokens from the lexer,
// executes them against an explicit data stack and drains the continuation stack
// that function calls are flattened into.
package eval

import (
	"context"
	"fmt"
	"io"
	"os"

	"fortio.org/log"
	"microforth.io/microforth/lexer"
	"microforth.io/microforth/object"
	"microforth.io/microforth/token"
	"microforth.io/microforth/trie"
)

// Exported part of the eval package.

const (
	// DefaultMaxDepth is the default ceiling of pending tokens on the continuation stack.
	DefaultMaxDepth = 1_000_000
	// DefaultMaxStack is the default ceiling of values on the data stack.
	DefaultMaxStack = 1_000_000
)

// State is one interpreter session. It must not be used concurrently.
type State struct {
	Out io.Writer
	// MaxDepth bounds the continuation stack, <= 0 for unlimited.
	MaxDepth int
	// MaxStack bounds the data stack, <= 0 for unlimited.
	MaxStack int

	current object.AbsolutePath // namespace cursor.
	nesting int                 // open function literals.
	scan    []token.Token       // tokens of the function literal being collected.
	data    []object.Value
	call    []token.Token // continuation stack, next token last.
	skip    bool          // one-shot: discard the next token or literal.
	dict    *object.Namespace
	ctx     context.Context // of the running Execute or Drain, for Err.

	executed bool // registration is closed once scripts ran.
}

// NewState returns a session with all the registered builtins bound at the root.
func NewState() *State {
	st := NewBlankState()
	for _, b := range object.ExtraFunctions() {
		st.RegisterBuiltin(b)
	}
	return st
}

// NewBlankState returns a session with an empty namespace.
func NewBlankState() *State {
	return &State{
		Out:      os.Stdout,
		MaxDepth: DefaultMaxDepth,
		MaxStack: DefaultMaxStack,
		dict:     object.NewNamespace(),
	}
}

// RegisterBuiltin binds b at the root namespace. It must be called before any script
// runs and only once per name: anything else is a programming error and panics.
func (s *State) RegisterBuiltin(b object.Builtin) {
	if s.executed {
		panic(fmt.Sprintf("builtin %q registered after execution started", b.Name))
	}
	p := object.ParsePath(b.Name).Realize(object.Root())
	if s.dict.Has(p) {
		panic(fmt.Sprintf("builtin %q already bound", b.Name))
	}
	s.dict.Insert(p, b)
}

// Execute scans input one token at a time, executing each and fully draining the
// continuation stack before reading the next one. Any error aborts the call; the
// control state is then reset (the data stack and bindings are kept) so the session
// can be reused.
func (s *State) Execute(ctx context.Context, input string) error {
	s.executed = true
	s.ctx = ctx
	l := lexer.New(input)
	err := s.run(ctx, l)
	if err == nil && s.nesting > 0 {
		err = l.ErrorHere(lexer.ErrIncompleteInput)
	}
	if err != nil {
		log.LogVf("execute aborted: %v", err)
		s.Reset()
		return err
	}
	log.LogVf("executed, %d bindings after %d assignments", s.dict.Len(), s.dict.NumSet())
	if s.skip {
		log.Debugf("clearing armed skip at end of input")
		s.skip = false
	}
	return nil
}

// Reset clears the control state: nesting, collected tokens, pending continuation
// and armed skip.
func (s *State) Reset() {
	s.nesting = 0
	s.scan = nil
	s.call = nil
	s.skip = false
}

// Idle is true when no continuation token is pending.
func (s *State) Idle() bool {
	return len(s.call) == 0
}

// Step executes the next pending continuation token, if any.
func (s *State) Step() error {
	n := len(s.call)
	if n == 0 {
		return nil
	}
	t := s.call[n-1]
	s.call = s.call[:n-1]
	return s.apply(t)
}

// Drain runs until Idle.
func (s *State) Drain(ctx context.Context) error {
	s.ctx = ctx
	for n := 1; !s.Idle(); n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Object.Engine implementation, the only view builtins have of the state.

func (s *State) Pop() (object.Value, error) {
	n := len(s.data)
	if n == 0 {
		return nil, object.ErrStackUnderflow
	}
	v := s.data[n-1]
	s.data = s.data[:n-1]
	return v, nil
}

func (s *State) Push(v object.Value) {
	s.data = append(s.data, v)
}

func (s *State) ArmSkip() {
	s.skip = true
}

func (s *State) Stack() []object.Value {
	return s.data
}

func (s *State) Writer() io.Writer {
	return s.Out
}

func (s *State) Err() error {
	if s.ctx == nil {
		return nil
	}
	return s.ctx.Err()
}

// Introspection, for hosts and tests.

// DataStack returns a copy of the data stack, bottom first.
func (s *State) DataStack() []object.Value {
	return append([]object.Value(nil), s.data...)
}

// ClearStack empties the data stack.
func (s *State) ClearStack() {
	s.data = nil
}

func (s *State) CurrentNamespace() object.AbsolutePath {
	return s.current
}

func (s *State) Nesting() int {
	return s.nesting
}

func (s *State) Skipping() bool {
	return s.skip
}

func (s *State) Pending() int {
	return len(s.call)
}

func (s *State) Namespace() *object.Namespace {
	return s.dict
}

// RegisterTrie sets up the Trie to record all bound names.
// Forwards to the underlying namespace.
func (s *State) RegisterTrie(t *trie.Trie) {
	s.dict.RegisterTrie(t)
}

// Len is the number of bindings.
func (s *State) Len() int {
	return s.dict.Len()
}
