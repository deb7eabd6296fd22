package eval

import (
	"io"

	"gopkg.in/yaml.v3"
	"microforth.io/microforth/object"
)

// Snapshot is the serializable view of a session.
type Snapshot struct {
	Namespace string            `yaml:"namespace"`
	Stack     []string          `yaml:"stack"`
	Bindings  map[string]string `yaml:"bindings,omitempty"`
	Builtins  []string          `yaml:"builtins,omitempty"`
}

// Snapshot captures the cursor, the data stack (bottom first) and the bindings.
// Builtins still bound to themselves are only listed by name when withBuiltins is set;
// a builtin bound elsewhere (aliased) is listed as a binding.
func (s *State) Snapshot(withBuiltins bool) Snapshot {
	snap := Snapshot{
		Namespace: s.current.String(),
		Stack:     make([]string, 0, len(s.data)),
		Bindings:  make(map[string]string),
	}
	for _, v := range s.data {
		snap.Stack = append(snap.Stack, v.Inspect())
	}
	for _, b := range s.dict.Bindings() {
		if bf, ok := b.Value.(object.Builtin); ok && b.Path.Key() == object.PathSeparator+bf.Name {
			if withBuiltins {
				snap.Builtins = append(snap.Builtins, bf.Name)
			}
			continue
		}
		snap.Bindings[b.Path.Key()] = b.Value.Inspect()
	}
	return snap
}

// Dump writes the Snapshot as YAML.
func (s *State) Dump(w io.Writer, withBuiltins bool) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s.Snapshot(withBuiltins)); err != nil {
		return err
	}
	return enc.Close()
}
