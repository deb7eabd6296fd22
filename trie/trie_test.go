package trie_test

import (
	"slices"
	"testing"

	"microforth.io/microforth/trie"
)

func TestTrie_InsertAndContains(t *testing.T) {
	trie := trie.NewTrie()

	trie.Insert("ABC")
	if !trie.Contains("ABC") {
		t.Error("Expected to find 'ABC', but it was not found.")
	}
	if trie.Contains("AB") {
		t.Error("Expected 'AB' to be not found, but it was found.")
	}
	if trie.Contains("ABCD") {
		t.Error("Expected 'ABCD' to be not found, but it was found.")
	}
	if !trie.Prefix("ABC").IsLeaf() {
		t.Error("Expected 'ABC' to be a leaf")
	}
	trie.Insert("ABCD")
	if !trie.Contains("ABC") || !trie.Contains("ABCD") {
		t.Error("Expected to find both 'ABC' and 'ABCD'")
	}
	if trie.Prefix("ABC").IsLeaf() {
		t.Error("'ABC' isn't a leaf anymore after adding 'ABCD'")
	}
	if trie.Prefix("X") != nil {
		t.Error("Expected no node for 'X'")
	}
}

func TestTrie_PrefixAll(t *testing.T) {
	tr := trie.NewTrie()
	for _, w := range []string{"dbgshowstack", "dup", "dbgshow", "dbgstackdepth", "drop"} {
		tr.Insert(w)
	}
	l, words := tr.PrefixAll("dbg")
	expected := []string{"dbgshow", "dbgshowstack", "dbgstackdepth"}
	if !slices.Equal(words, expected) {
		t.Errorf("PrefixAll(dbg) got %v, expected %v", words, expected)
	}
	if l != len("dbgs") {
		t.Errorf("PrefixAll(dbg) common length %d, expected %d", l, len("dbgs"))
	}
	l, words = tr.PrefixAll("du")
	if l != 3 || !slices.Equal(words, []string{"dup"}) {
		t.Errorf("PrefixAll(du) got %d %v", l, words)
	}
	l, words = tr.PrefixAll("zz")
	if l != 0 || words != nil {
		t.Errorf("PrefixAll(zz) got %d %v", l, words)
	}
}
