// Trie implements a byte trie used for completing bound names.
//
// Children are arrays instead of maps: fast, no hashing, and walking them in
// index order yields words in byte order.
package trie // import "microforth.io/microforth/trie"

type Trie struct {
	children [256]*Trie
	// A word ends at this node (it may still have children).
	valid bool
}

func NewTrie() *Trie {
	return &Trie{}
}

func (t *Trie) Insert(word string) {
	for i := range len(word) {
		char := word[i]
		if t.children[char] == nil {
			t.children[char] = &Trie{}
		}
		t = t.children[char]
	}
	t.valid = true
}

func (t *Trie) Contains(word string) bool {
	return t.Prefix(word).IsValid()
}

// Prefix returns the node reached by word, nil if there is none.
func (t *Trie) Prefix(word string) *Trie {
	for i := range len(word) {
		t = t.children[word[i]]
		if t == nil {
			return nil
		}
	}
	return t
}

func (t *Trie) IsValid() bool {
	return t != nil && t.valid
}

// IsLeaf is true for a node ending a word with no longer word after it.
func (t *Trie) IsLeaf() bool {
	if !t.IsValid() {
		return false
	}
	for _, c := range t.children {
		if c != nil {
			return false
		}
	}
	return true
}

// PrefixAll returns all the words starting with prefix, in byte order, and the
// length of the longest prefix common to all of them.
func (t *Trie) PrefixAll(prefix string) (int, []string) {
	node := t.Prefix(prefix)
	if node == nil {
		return 0, nil
	}
	var res []string
	node.collect([]byte(prefix), &res)
	if len(res) == 0 {
		return 0, nil
	}
	l := len(res[0])
	for _, w := range res[1:] {
		l = min(l, commonLen(res[0], w))
	}
	return l, res
}

func (t *Trie) collect(buf []byte, res *[]string) {
	if t.valid {
		*res = append(*res, string(buf))
	}
	for c, child := range t.children {
		if child != nil {
			child.collect(append(buf, byte(c)), res)
		}
	}
}

func commonLen(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
