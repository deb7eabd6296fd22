package object

import (
	"slices"
	"strings"
)

const PathSeparator = "."

// AbsolutePath is rooted at the global namespace. The zero value is the root.
type AbsolutePath struct {
	segments []string
}

func Root() AbsolutePath {
	return AbsolutePath{}
}

func NewAbsolutePath(segments ...string) AbsolutePath {
	return AbsolutePath{segments: slices.Clone(segments)}
}

func (p AbsolutePath) IsRoot() bool {
	return len(p.segments) == 0
}

func (p AbsolutePath) Segments() []string {
	return slices.Clone(p.segments)
}

func (p AbsolutePath) Join(rel RelativePath) AbsolutePath {
	return AbsolutePath{segments: slices.Concat(p.segments, rel.segments)}
}

// Parent drops the last segment. ok is false at the root.
func (p AbsolutePath) Parent() (parent AbsolutePath, ok bool) {
	if p.IsRoot() {
		return p, false
	}
	return AbsolutePath{segments: p.segments[:len(p.segments)-1]}, true
}

// Key is the canonical, comparable form: every segment prefixed by the separator,
// "" for the root.
func (p AbsolutePath) Key() string {
	if p.IsRoot() {
		return ""
	}
	return PathSeparator + strings.Join(p.segments, PathSeparator)
}

func (p AbsolutePath) String() string {
	if p.IsRoot() {
		return PathSeparator
	}
	return p.Key()
}

func (p AbsolutePath) Equal(other AbsolutePath) bool {
	return slices.Equal(p.segments, other.segments)
}

// RelativePath only has a meaning once joined onto an AbsolutePath.
type RelativePath struct {
	segments []string
}

func (r RelativePath) String() string {
	return strings.Join(r.segments, PathSeparator)
}

// SymbolPath is a parsed dotted name, either absolute (leading separator) or relative.
type SymbolPath struct {
	absolute bool
	segments []string
}

// ParsePath splits on the separator; a leading empty segment marks an absolute path
// and is dropped. The separator alone is the root.
func ParsePath(s string) SymbolPath {
	if s == PathSeparator {
		return SymbolPath{absolute: true}
	}
	fields := strings.Split(s, PathSeparator)
	if fields[0] == "" && len(fields) > 1 {
		return SymbolPath{absolute: true, segments: fields[1:]}
	}
	return SymbolPath{segments: fields}
}

func (sp SymbolPath) IsAbsolute() bool {
	return sp.absolute
}

// Relative returns the path as relative segments, only meaningful when !IsAbsolute().
func (sp SymbolPath) Relative() RelativePath {
	return RelativePath{segments: sp.segments}
}

// Realize resolves the path against the current namespace: absolute paths are
// returned unchanged, relative ones are joined onto current.
func (sp SymbolPath) Realize(current AbsolutePath) AbsolutePath {
	if sp.absolute {
		return AbsolutePath{segments: slices.Clone(sp.segments)}
	}
	return current.Join(sp.Relative())
}

func (sp SymbolPath) String() string {
	s := strings.Join(sp.segments, PathSeparator)
	if sp.absolute {
		return PathSeparator + s
	}
	return s
}
