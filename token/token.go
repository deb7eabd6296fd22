// Package token defines the lexical units produced by the lexer.
package token

import (
	"strconv"
	"strings"
)

type Type uint8

const (
	ILLEGAL Type = iota
	EOF

	IDENT     // dup, 42, foo.bar, .root.name
	ASSIGN    // /name
	NAMESPACE // #name

	FUNCSTART // {
	FUNCEND   // }
)

//go:generate stringer -type=Type
var _ = FUNCEND.String() // force compile error if go generate is missing.

// Source markers.
const (
	AssignMarker    = '/'
	NamespaceMarker = '#'
	LBrace          = '{'
	RBrace          = '}'
	CommentStart    = '('
	CommentEnd      = ')'
)

// Token is immutable once created; it is passed and stored by value.
type Token struct {
	tokenType Type
	literal   string
}

var (
	EOFT       = Token{tokenType: EOF}
	FuncStartT = Token{tokenType: FUNCSTART, literal: string(LBrace)}
	FuncEndT   = Token{tokenType: FUNCEND, literal: string(RBrace)}
)

func New(t Type, literal string) Token {
	switch t { //nolint:exhaustive // only name bearing tokens carry a literal.
	case FUNCSTART:
		return FuncStartT
	case FUNCEND:
		return FuncEndT
	case EOF:
		return EOFT
	}
	return Token{tokenType: t, literal: literal}
}

func Ident(name string) Token {
	return Token{tokenType: IDENT, literal: name}
}

func Assign(name string) Token {
	return Token{tokenType: ASSIGN, literal: name}
}

func Namespace(name string) Token {
	return Token{tokenType: NAMESPACE, literal: name}
}

func (t Token) Type() Type {
	return t.tokenType
}

// Literal is the name carried by IDENT, ASSIGN and NAMESPACE tokens (without marker).
func (t Token) Literal() string {
	return t.literal
}

func (t Token) DebugString() string {
	return t.tokenType.String() + ":" + strconv.Quote(t.literal)
}

// String returns the source form of the token, markers included.
func (t Token) String() string {
	switch t.tokenType {
	case ASSIGN:
		return string(AssignMarker) + t.literal
	case NAMESPACE:
		return string(NamespaceMarker) + t.literal
	case FUNCSTART, FUNCEND, IDENT:
		return t.literal
	case EOF:
		return "<EOF>"
	case ILLEGAL:
		return "<ILLEGAL:" + t.literal + ">"
	}
	return t.DebugString()
}

// Join renders a token sequence back to source, space separated.
func Join(tokens []Token) string {
	out := strings.Builder{}
	for i, t := range tokens {
		if i > 0 {
			out.WriteByte(' ')
		}
		out.WriteString(t.String())
	}
	return out.String()
}
