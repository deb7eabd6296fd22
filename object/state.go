package object

import (
	"sort"

	"fortio.org/log"
	"microforth.io/microforth/trie"
)

// Binding is one entry of a Namespace.
type Binding struct {
	Path  AbsolutePath
	Value Value
}

// Namespace maps absolute paths to values. Inserting at an existing path overwrites.
type Namespace struct {
	store  map[string]Binding
	ids    *trie.Trie
	numSet int64
}

func NewNamespace() *Namespace {
	return &Namespace{store: make(map[string]Binding)}
}

func (n *Namespace) Len() int {
	return len(n.store)
}

// NumSet is the cumulative number of Insert calls.
func (n *Namespace) NumSet() int64 {
	return n.numSet
}

// RegisterTrie records every bound path from now on (and the existing ones) for completion.
func (n *Namespace) RegisterTrie(t *trie.Trie) {
	n.ids = t
	for _, b := range n.store {
		n.recordName(b.Path)
	}
}

func (n *Namespace) recordName(p AbsolutePath) {
	if n.ids == nil {
		return
	}
	if p.IsRoot() {
		return // nothing to complete.
	}
	key := p.Key()
	n.ids.Insert(key)
	n.ids.Insert(key[1:]) // also as relative to root.
}

func (n *Namespace) Insert(p AbsolutePath, v Value) {
	log.Debugf("bind %s = %s", p, v.Inspect())
	n.store[p.Key()] = Binding{Path: p, Value: v}
	n.numSet++
	n.recordName(p)
}

// Resolve is the exact lookup.
func (n *Namespace) Resolve(p AbsolutePath) (Value, bool) {
	b, ok := n.store[p.Key()]
	return b.Value, ok
}

func (n *Namespace) Has(p AbsolutePath) bool {
	_, ok := n.store[p.Key()]
	return ok
}

// Lookup resolves sp against current. Absolute paths are looked up exactly; relative
// ones are tried in current then in each ancestor of current up to the root, so the
// innermost binding shadows outer ones. Returns the absolute path that matched.
func (n *Namespace) Lookup(sp SymbolPath, current AbsolutePath) (Value, AbsolutePath, bool) {
	if sp.IsAbsolute() {
		p := sp.Realize(current)
		v, ok := n.Resolve(p)
		return v, p, ok
	}
	rel := sp.Relative()
	cursor := current
	for {
		p := cursor.Join(rel)
		if v, ok := n.Resolve(p); ok {
			return v, p, true
		}
		parent, ok := cursor.Parent()
		if !ok {
			return nil, p, false
		}
		log.LogVf("%s not found in %s, trying %s", rel, cursor, parent)
		cursor = parent
	}
}

// Bindings returns all entries sorted by path.
func (n *Namespace) Bindings() []Binding {
	res := make([]Binding, 0, len(n.store))
	for _, b := range n.store {
		res = append(res, b)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Path.Key() < res[j].Path.Key()
	})
	return res
}
