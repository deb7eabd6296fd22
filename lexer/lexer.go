// Package lexer turns microforth source text into a stream of tokens.
// Comments are consumed and never surface as tokens.
package lexer

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"fortio.org/log"
	"github.com/rivo/uniseg"
	"microforth.io/microforth/token"
)

var (
	// ErrSyntax is the kind matched (errors.Is) by every *SyntaxError.
	ErrSyntax          = errors.New("syntax error")
	ErrIncompleteInput = errors.New("incomplete input")
	ErrEmptyName       = errors.New("empty name")
)

type SyntaxError struct {
	Err        error // ErrIncompleteInput or ErrEmptyName
	Pos        int   // byte offset in the input
	Line       string
	Column     int // byte offset within Line
	LineNumber int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %v at line %d, column %d", e.Err, e.LineNumber, e.Column+1)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax //nolint:errorlint // sentinel comparison.
}

// Detail returns the offending line with a caret under the error position,
// aligned using the display width of what precedes it.
func (e *SyntaxError) Detail() string {
	col := min(e.Column, len(e.Line))
	width := uniseg.StringWidth(e.Line[:col])
	return e.Line + "\n" + strings.Repeat(" ", width) + "^"
}

type Lexer struct {
	input       []byte
	pos         int
	lastNewLine int // position just after most recent newline
	lineNumber  int
}

func New(input string) *Lexer {
	return NewBytes([]byte(input))
}

func NewBytes(input []byte) *Lexer {
	return &Lexer{input: input, lineNumber: 1}
}

func (l *Lexer) Pos() int {
	return l.pos
}

// Returns the current line, the current position relative in that line
// and the current line number.
func (l *Lexer) CurrentLine() (string, int, int) {
	return l.lineAt(l.pos, l.lastNewLine, l.lineNumber)
}

func (l *Lexer) lineAt(pos, lineStart, lineNumber int) (string, int, int) {
	p := min(pos, len(l.input))
	nextNewline := bytes.IndexByte(l.input[p:], '\n')
	if nextNewline == -1 {
		nextNewline = len(l.input) - p
	}
	return string(l.input[lineStart : p+nextNewline]), p - lineStart, lineNumber
}

func (l *Lexer) errorAt(err error, pos, lineStart, lineNumber int) *SyntaxError {
	line, col, num := l.lineAt(pos, lineStart, lineNumber)
	return &SyntaxError{Err: err, Pos: pos, Line: line, Column: col, LineNumber: num}
}

// ErrorHere returns a *SyntaxError for err at the current position, e.g. for input
// that ended while a function literal is still open.
func (l *Lexer) ErrorHere(err error) *SyntaxError {
	line, col, num := l.CurrentLine()
	return &SyntaxError{Err: err, Pos: l.Pos(), Line: line, Column: col, LineNumber: num}
}

// NextToken returns the next token, token.EOFT (and nil error) once the input is
// exhausted, or a *SyntaxError. A name ends at whitespace or a brace, which is left
// for the next call.
func (l *Lexer) NextToken() (token.Token, error) {
	for {
		l.skipWhitespace()
		if l.atEnd() {
			return token.EOFT, nil
		}
		start, lineStart, lineNumber := l.pos, l.lastNewLine, l.lineNumber
		ch := l.readChar()
		switch ch {
		case token.CommentStart:
			if !l.skipComment() {
				return token.EOFT, l.errorAt(ErrIncompleteInput, start, lineStart, lineNumber)
			}
			continue
		case token.LBrace:
			return token.FuncStartT, nil
		case token.RBrace:
			return token.FuncEndT, nil
		case token.AssignMarker, token.NamespaceMarker:
			name := l.readName()
			if name == "" {
				return token.EOFT, l.errorAt(ErrEmptyName, start, lineStart, lineNumber)
			}
			if ch == token.AssignMarker {
				return token.Assign(name), nil
			}
			return token.Namespace(name), nil
		default:
			l.pos--
			return token.Ident(l.readName()), nil
		}
	}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

// spaceAt is the byte length of the (unicode) whitespace rune at pos, 0 if there
// is none.
func (l *Lexer) spaceAt(pos int) int {
	r, size := utf8.DecodeRune(l.input[pos:])
	if unicode.IsSpace(r) {
		return size
	}
	return 0
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		n := l.spaceAt(l.pos)
		if n == 0 {
			return
		}
		for range n {
			l.readChar()
		}
	}
}

func (l *Lexer) readChar() byte {
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.lastNewLine = l.pos
		l.lineNumber++
	}
	return ch
}

// Consumes up to and including the ) matching an already read (.
// Returns false if the input ends first.
func (l *Lexer) skipComment() bool {
	depth := 1
	for !l.atEnd() {
		switch l.readChar() {
		case token.CommentStart:
			depth++
		case token.CommentEnd:
			depth--
			if depth == 0 {
				return true
			}
		}
	}
	log.Debugf("comment still open at depth %d at end of input", depth)
	return false
}

// readName stops at whitespace or a brace.
func (l *Lexer) readName() string {
	pos := l.pos
	for !l.atEnd() {
		ch := l.input[l.pos]
		if ch == token.LBrace || ch == token.RBrace || l.spaceAt(l.pos) > 0 {
			break
		}
		_, size := utf8.DecodeRune(l.input[l.pos:])
		l.pos += size
	}
	return string(l.input[pos:l.pos])
}

// Tokenize scans the whole input.
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	var res []token.Token
	for {
		t, err := l.NextToken()
		if err != nil {
			return res, err
		}
		if t.Type() == token.EOF {
			return res, nil
		}
		res = append(res, t)
	}
}

// NeedsMore returns true when input ends inside a comment or an unclosed function
// literal, ie when an interactive reader should ask for another line before executing.
func NeedsMore(input string) bool {
	l := New(input)
	depth := 0
	for {
		t, err := l.NextToken()
		if err != nil {
			return errors.Is(err, ErrIncompleteInput)
		}
		switch t.Type() { //nolint:exhaustive // only braces matter.
		case token.EOF:
			return depth > 0
		case token.FUNCSTART:
			depth++
		case token.FUNCEND:
			depth--
		}
	}
}
