package eval

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/log"
	"microforth.io/microforth/lexer"
	"microforth.io/microforth/object"
	"microforth.io/microforth/token"
)

// How many continuation steps between context checks while draining.
const ctxCheckInterval = 1024

func (s *State) run(ctx context.Context, l *lexer.Lexer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		t, err := l.NextToken()
		if err != nil {
			return err
		}
		if t.Type() == token.EOF {
			return nil
		}
		if err = s.apply(t); err != nil {
			return err
		}
		if err = s.Drain(ctx); err != nil {
			return err
		}
	}
}

// apply is ExecuteToken plus the data stack ceiling, with errors tagged by token.
func (s *State) apply(t token.Token) error {
	err := s.ExecuteToken(t)
	if err == nil && s.MaxStack > 0 && len(s.data) > s.MaxStack {
		err = fmt.Errorf("%w: %d values", ErrDataStackLimit, len(s.data))
	}
	if err != nil {
		var ee *ExecError
		if errors.As(err, &ee) {
			return err // already tagged by a nested call (exec).
		}
		return &ExecError{Token: t, Err: err}
	}
	return nil
}

// ExecuteToken applies one token to the state.
func (s *State) ExecuteToken(t token.Token) error {
	log.Debugf("token %-16s nesting %d skip %v stack %d pending %d", t.DebugString(), s.nesting, s.skip, len(s.data), len(s.call))
	switch {
	case s.nesting > 0:
		s.collect(t)
		return nil
	case s.skip:
		return s.skipToken(t)
	}
	switch t.Type() {
	case token.FUNCSTART:
		s.nesting++
		return nil
	case token.FUNCEND:
		return ErrUnbalancedEnd
	case token.ASSIGN:
		return s.popAssignTo(t.Literal())
	case token.NAMESPACE:
		s.current = object.ParsePath(t.Literal()).Realize(s.current)
		log.LogVf("namespace now %s", s.current)
		return nil
	case token.IDENT:
		return s.executeIdent(t.Literal())
	case token.EOF:
		return nil
	case token.ILLEGAL:
	}
	return fmt.Errorf("illegal token %s", t.DebugString())
}

// Collecting: inner braces are kept in the body so nested literals are rebuilt when
// the function runs; only the counter decides where this literal ends.
func (s *State) collect(t token.Token) {
	switch t.Type() { //nolint:exhaustive // everything else is just captured.
	case token.FUNCSTART:
		s.nesting++
	case token.FUNCEND:
		s.nesting--
		if s.nesting == 0 {
			s.finishFunction()
			return
		}
	}
	s.scan = append(s.scan, t)
}

func (s *State) finishFunction() {
	if s.skip {
		log.LogVf("skipped function literal of %d tokens", len(s.scan))
		s.skip = false
	} else {
		s.Push(object.NewFunction(s.scan))
	}
	s.scan = s.scan[:0]
}

// Skipping: a function literal is skipped as a whole, any other token alone.
func (s *State) skipToken(t token.Token) error {
	switch t.Type() { //nolint:exhaustive // all the other tokens are atomic.
	case token.FUNCSTART:
		s.nesting++ // skip stays armed until the literal closes.
		return nil
	case token.FUNCEND:
		return ErrUnbalancedEnd
	}
	log.LogVf("skipped %s", t.DebugString())
	s.skip = false
	return nil
}

func (s *State) popAssignTo(name string) error {
	v, err := s.Pop()
	if err != nil {
		return err
	}
	s.dict.Insert(object.ParsePath(name).Realize(s.current), v)
	return nil
}

func (s *State) executeIdent(name string) error {
	// Numeric literals are never looked up so they can't be shadowed.
	if i, ok, err := parseInteger(name); ok {
		if err != nil {
			return err
		}
		s.Push(object.Integer{Value: i})
		return nil
	}
	sp := object.ParsePath(name)
	v, p, ok := s.dict.Lookup(sp, s.current)
	if !ok {
		return &object.NameNotFoundError{Path: sp}
	}
	log.LogVf("%s -> %s", name, p)
	return s.ExecuteValue(v)
}

// ExecuteValue is value execution, shared by identifiers and the exec-like builtins.
func (s *State) ExecuteValue(v object.Value) error {
	switch v := v.(type) {
	case object.Builtin:
		return v.Call(s)
	case object.Function:
		if s.MaxDepth > 0 && len(s.call)+v.Len() > s.MaxDepth {
			return fmt.Errorf("%w: %d pending tokens", ErrContinuationLimit, len(s.call)+v.Len())
		}
		tokens := v.Tokens()
		for i := len(tokens) - 1; i >= 0; i-- {
			s.call = append(s.call, tokens[i])
		}
		return nil
	case object.Boolean, object.Integer, object.Index:
		s.Push(v)
		return nil
	}
	return fmt.Errorf("can't execute value of type %s", v.Type())
}

// parseInteger recognizes decimal and 0x hexadecimal literals. ok is true when name
// has the shape of a number, in which case err reports a value out of range.
func parseInteger(name string) (uint64, bool, error) {
	base := 10
	digits := name
	if hex, found := strings.CutPrefix(name, "0x"); found && hex != "" && isAll(hex, isHexDigit) {
		base, digits = 16, hex
	} else if !isAll(name, isDigit) {
		return 0, false, nil
	}
	i, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, true, fmt.Errorf("%w: literal %s", object.ErrIntegerOverflow, name)
	}
	return i, true, nil
}

func isAll(s string, pred func(byte) bool) bool {
	for i := range len(s) {
		if !pred(s[i]) {
			return false
		}
	}
	return s != ""
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}
