package object_test

import (
	"testing"

	"microforth.io/microforth/object"
	"microforth.io/microforth/trie"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		input    string
		absolute bool
		str      string
	}{
		{"foo", false, "foo"},
		{"a.b.c", false, "a.b.c"},
		{".foo", true, ".foo"},
		{".a.b", true, ".a.b"},
		{".", true, "."},
	}
	for _, tt := range tests {
		sp := object.ParsePath(tt.input)
		if sp.IsAbsolute() != tt.absolute {
			t.Errorf("%q: absolute %v, expected %v", tt.input, sp.IsAbsolute(), tt.absolute)
		}
		if sp.String() != tt.str {
			t.Errorf("%q: String() %q, expected %q", tt.input, sp.String(), tt.str)
		}
	}
}

func TestRealize(t *testing.T) {
	cur := object.NewAbsolutePath("x", "y")
	if got := object.ParsePath("a.b").Realize(cur).Key(); got != ".x.y.a.b" {
		t.Errorf("relative realize got %q", got)
	}
	if got := object.ParsePath("a").Realize(object.Root()).Key(); got != ".a" {
		t.Errorf("relative realize from root got %q", got)
	}
	if got := object.ParsePath(".").Realize(cur); !got.IsRoot() {
		t.Errorf("realizing the separator alone got %s, not the root", got)
	}
	// Absolute paths pass through unchanged whatever the cursor, and realizing is idempotent.
	abs := object.ParsePath(".q.r")
	for _, c := range []object.AbsolutePath{object.Root(), cur, object.NewAbsolutePath("q")} {
		once := abs.Realize(c)
		if once.Key() != ".q.r" {
			t.Errorf("absolute realize against %s got %s", c, once)
		}
		twice := object.ParsePath(once.Key()).Realize(c)
		if !twice.Equal(once) {
			t.Errorf("realize twice %s != once %s", twice, once)
		}
	}
}

func TestParent(t *testing.T) {
	p := object.NewAbsolutePath("a", "b")
	p1, ok := p.Parent()
	if !ok || p1.Key() != ".a" {
		t.Errorf("parent of .a.b got %s %v", p1, ok)
	}
	p2, ok := p1.Parent()
	if !ok || !p2.IsRoot() || p2.String() != "." {
		t.Errorf("parent of .a got %s %v", p2, ok)
	}
	if _, ok = p2.Parent(); ok {
		t.Errorf("root shouldn't have a parent")
	}
}

func TestLookupAncestorFallback(t *testing.T) {
	ns := object.NewNamespace()
	ns.Insert(object.NewAbsolutePath("foo"), object.Integer{Value: 1})
	ns.Insert(object.NewAbsolutePath("a", "bar"), object.Integer{Value: 2})
	ns.Insert(object.NewAbsolutePath("a", "b", "bar"), object.Integer{Value: 3})
	cur := object.NewAbsolutePath("a", "b")
	tests := []struct {
		name     string
		found    bool
		expected uint64
		path     string
	}{
		{"foo", true, 1, ".foo"},     // two levels up.
		{"bar", true, 3, ".a.b.bar"}, // local shadows .a.bar
		{".a.bar", true, 2, ".a.bar"},
		{".bar", false, 0, ".bar"}, // absolute: no fallback.
		{"b.bar", true, 3, ".a.b.bar"},
		{"nope", false, 0, ".nope"},
	}
	for _, tt := range tests {
		v, p, ok := ns.Lookup(object.ParsePath(tt.name), cur)
		if ok != tt.found {
			t.Errorf("%q: found %v, expected %v", tt.name, ok, tt.found)
			continue
		}
		if p.Key() != tt.path {
			t.Errorf("%q: path %s, expected %s", tt.name, p, tt.path)
		}
		if ok && v.(object.Integer).Value != tt.expected {
			t.Errorf("%q: got %s, expected %d", tt.name, v.Inspect(), tt.expected)
		}
	}
}

func TestInsertOverwritesAndTrie(t *testing.T) {
	ns := object.NewNamespace()
	p := object.NewAbsolutePath("m", "x")
	ns.Insert(p, object.Integer{Value: 1})
	tr := trie.NewTrie()
	ns.RegisterTrie(tr)
	ns.Insert(p, object.Integer{Value: 2})
	ns.Insert(object.NewAbsolutePath("top"), object.TRUE)
	if ns.Len() != 2 || ns.NumSet() != 3 {
		t.Errorf("Len %d NumSet %d", ns.Len(), ns.NumSet())
	}
	v, ok := ns.Resolve(p)
	if !ok || v.(object.Integer).Value != 2 {
		t.Errorf("insert didn't overwrite: %v", v)
	}
	for _, w := range []string{".m.x", "m.x", "top", ".top"} {
		if !tr.Contains(w) {
			t.Errorf("trie missing %q", w)
		}
	}
	b := ns.Bindings()
	if len(b) != 2 || b[0].Path.Key() != ".m.x" || b[1].Path.Key() != ".top" {
		t.Errorf("unexpected bindings order %v", b)
	}
}

func TestSegmentsAreACopy(t *testing.T) {
	p := object.NewAbsolutePath("a", "b")
	s := p.Segments()
	s[0] = "changed"
	if p.Key() != ".a.b" {
		t.Errorf("path changed through its segments: %s", p)
	}
}

func TestRootBindingWithTrie(t *testing.T) {
	ns := object.NewNamespace()
	tr := trie.NewTrie()
	ns.RegisterTrie(tr)
	ns.Insert(object.Root(), object.Integer{Value: 1})
	if v, ok := ns.Resolve(object.Root()); !ok || v.(object.Integer).Value != 1 {
		t.Errorf("root binding not stored: %v %v", v, ok)
	}
	if tr.Contains("") {
		t.Errorf("root should not be offered for completion")
	}
}
