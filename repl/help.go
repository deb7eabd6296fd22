package repl

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/sets"
	"microforth.io/microforth/object"
	"microforth.io/microforth/token"
)

// WriteHelp lists the registered builtins by category, names sorted.
func WriteHelp(out io.Writer) {
	byCategory := map[object.Category][]object.Builtin{}
	categories := sets.New[object.Category]()
	for _, b := range object.ExtraFunctions() {
		byCategory[b.Category] = append(byCategory[b.Category], b)
		categories.Add(b.Category)
	}
	for _, c := range sets.Sort(categories) {
		fmt.Fprintf(out, "%s:\n", c)
		names := sets.New[string]()
		help := map[string]string{}
		for _, b := range byCategory[c] {
			names.Add(b.Name)
			help[b.Name] = b.Help
		}
		for _, n := range sets.Sort(names) {
			fmt.Fprintf(out, "  %-26s %s\n", n, help[n])
		}
	}
	fmt.Fprintf(out, "markers: %s\n", strings.Join(token.Info().Markers(), " "))
	fmt.Fprintln(out, "repl commands: help, stack, dump, reset, !cmd (if enabled); ctrl-D to exit")
}
