// Package object holds the runtime values of microforth, the symbol paths and
// namespace they are bound in, and the contract native builtins are written against.
package object

import (
	"strconv"
	"strings"

	"microforth.io/microforth/token"
)

type Type uint8

// Value is a closed set: Boolean, Integer, Index, Function and Builtin.
type Value interface {
	Type() Type
	Inspect() string
}

const (
	UNKNOWN Type = iota
	BOOLEAN
	INTEGER
	INDEX
	FUNCTION
	BUILTIN
	LAST
)

//go:generate stringer -type=Type
var _ = LAST.String() // force compile error if go generate is missing.

var (
	TRUE  = Boolean{Value: true}
	FALSE = Boolean{Value: false}
)

func NativeBoolToBooleanObject(input bool) Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

func Equals(left, right Value) bool {
	if left.Type() != right.Type() {
		return false
	}
	switch left := left.(type) {
	case Boolean:
		return left.Value == right.(Boolean).Value
	case Integer:
		return left.Value == right.(Integer).Value
	case Index:
		return left.Value == right.(Index).Value
	case Function:
		return left.equal(right.(Function))
	case Builtin:
		return left.Name == right.(Builtin).Name
	}
	return false
}

type Boolean struct {
	Value bool
}

func (b Boolean) Type() Type {
	return BOOLEAN
}

func (b Boolean) Inspect() string {
	return strconv.FormatBool(b.Value)
}

type Integer struct {
	Value uint64
}

func (i Integer) Type() Type {
	return INTEGER
}

func (i Integer) Inspect() string {
	return strconv.FormatUint(i.Value, 10)
}

// Index is a stack position, as produced by toindex and accepted by pick/roll.
type Index struct {
	Value int
}

func (i Index) Type() Type {
	return INDEX
}

func (i Index) Inspect() string {
	return "index(" + strconv.Itoa(i.Value) + ")"
}

// Function is a quotation: the tokens captured between { and }.
type Function struct {
	tokens []token.Token
}

// NewFunction copies the tokens so later changes to the caller's buffer don't leak in.
func NewFunction(tokens []token.Token) Function {
	return Function{tokens: append([]token.Token(nil), tokens...)}
}

func (f Function) Type() Type { return FUNCTION }

// Tokens must be treated as read only.
func (f Function) Tokens() []token.Token {
	return f.tokens
}

func (f Function) Len() int {
	return len(f.tokens)
}

func (f Function) Inspect() string {
	if len(f.tokens) == 0 {
		return "{ }"
	}
	out := strings.Builder{}
	out.WriteString("{ ")
	out.WriteString(token.Join(f.tokens))
	out.WriteString(" }")
	return out.String()
}

func (f Function) equal(other Function) bool {
	if len(f.tokens) != len(other.tokens) {
		return false
	}
	for i, t := range f.tokens {
		if t != other.tokens[i] {
			return false
		}
	}
	return true
}

// Callback is the fixed signature of native operations.
type Callback func(e Engine) error

// Builtin pairs a unique name with a native operation. Two builtins are equal when
// their names are.
type Builtin struct {
	Name     string
	Help     string // stack effect, e.g "( a b -- b a )"
	Category Category
	Callback Callback
}

func (b Builtin) Type() Type { return BUILTIN }

func (b Builtin) Inspect() string {
	return "<builtin:" + b.Name + ">"
}

func (b Builtin) Call(e Engine) error {
	return b.Callback(e)
}

func WriteValues(out *strings.Builder, list []Value, before, sep, after string) {
	out.WriteString(before)
	for i, v := range list {
		if i > 0 {
			out.WriteString(sep)
		}
		out.WriteString(v.Inspect())
	}
	out.WriteString(after)
}

func InspectStack(stack []Value) string {
	out := strings.Builder{}
	WriteValues(&out, stack, "[", " ", "]")
	return out.String()
}
