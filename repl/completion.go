package repl

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"fortio.org/terminal"
	"microforth.io/microforth/token"
	"microforth.io/microforth/trie"
)

type AutoComplete struct {
	Trie *trie.Trie
}

func NewCompletion() *AutoComplete {
	return &AutoComplete{trie.NewTrie()}
}

func (a *AutoComplete) AddWords(words ...string) {
	for _, w := range words {
		a.Trie.Insert(w)
	}
}

func (a *AutoComplete) AutoComplete() terminal.AutoCompleteCallback {
	return func(t *terminal.Terminal, line string, pos int, key rune) (newLine string, newPos int, ok bool) {
		if key != '\t' {
			return // only tab for now
		}
		var choices []string
		newLine, newPos, choices, ok = a.Complete(line, pos)
		if len(choices) > 1 {
			fmt.Fprintln(t.Out, "One of:", strings.Join(choices, " "))
		}
		return newLine, newPos, ok
	}
}

// wordStart is where the word ending at pos begins. Prefixes (/ and #) stay outside
// of the completed word.
func wordStart(line string, pos int) int {
	info := token.Info()
	start := 0
	i := strings.LastIndexFunc(line[:pos], func(r rune) bool {
		return unicode.IsSpace(r) || info.Delimiters.Has(string(r))
	})
	if i >= 0 {
		_, size := utf8.DecodeRuneInString(line[i:])
		start = i + size
	}
	if start < pos && info.IsPrefix(line[start]) {
		start++
	}
	return start
}

// Complete extends the word before pos to the longest common prefix of the known
// names, adding a space when that's a full name nothing longer starts with.
// choices lists the candidates when there are several.
func (a *AutoComplete) Complete(line string, pos int) (newLine string, newPos int, choices []string, ok bool) {
	start := wordStart(line, pos)
	l, words := a.Trie.PrefixAll(line[start:pos])
	if len(words) == 0 {
		return "", 0, nil, false
	}
	completed := words[0][:l]
	if len(words) == 1 && a.Trie.Prefix(completed).IsLeaf() {
		completed += " "
	}
	if len(words) > 1 {
		choices = words
	}
	newLine = line[:start] + completed + line[pos:]
	return newLine, start + len(completed), choices, true
}
