package token

import (
	"unicode"

	"fortio.org/sets"
)

// MicroforthInfo enables introspection of the characters with a lexical meaning.
type MicroforthInfo struct {
	// Prefixes start an assign or namespace token and are not part of the name.
	Prefixes sets.Set[string]
	// Delimiters end a name without being part of it. Whitespace isn't listed.
	Delimiters sets.Set[string]
	// Comments open and close a comment.
	Comments sets.Set[string]
}

var info = MicroforthInfo{
	Prefixes:   sets.New(string(AssignMarker), string(NamespaceMarker)),
	Delimiters: sets.New(string(LBrace), string(RBrace)),
	Comments:   sets.New(string(CommentStart), string(CommentEnd)),
}

func Info() MicroforthInfo {
	return info
}

// Markers is every character listed in Info, sorted.
func (i MicroforthInfo) Markers() []string {
	return sets.Sort(sets.Union(i.Prefixes, i.Delimiters, i.Comments))
}

// IsPrefix is true when ch starts an assign or namespace token.
func (i MicroforthInfo) IsPrefix(ch byte) bool {
	return i.Prefixes.Has(string(ch))
}

// IsDelimiter is true for the braces.
func (i MicroforthInfo) IsDelimiter(ch byte) bool {
	return i.Delimiters.Has(string(ch))
}

// ValidName is false for names unfit for a builtin: empty, starting with a prefix,
// or containing whitespace, a delimiter or a comment marker.
func (i MicroforthInfo) ValidName(name string) bool {
	if name == "" || i.IsPrefix(name[0]) {
		return false
	}
	for _, r := range name {
		if unicode.IsSpace(r) || i.Delimiters.Has(string(r)) || i.Comments.Has(string(r)) {
			return false
		}
	}
	return true
}
