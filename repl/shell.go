package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"fortio.org/log"
)

// SplitCommand splits a command line into arguments the way a shell would for
// simple cases: single quotes are literal, double quotes allow backslash escapes,
// a backslash outside quotes escapes the next character.
func SplitCommand(cmd string) ([]string, error) {
	var parts []string
	var current strings.Builder
	inArg := false
	quote := rune(0)
	escaped := false
	for _, r := range cmd {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			inArg = true
		case quote != 0 && r == quote:
			quote = 0
		case quote != 0:
			current.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t' || r == '\n':
			if inArg {
				parts = append(parts, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if escaped {
		return nil, errors.New("unterminated escape sequence: command ends with backslash")
	}
	if quote != 0 {
		return nil, fmt.Errorf("unclosed quote: missing closing %c", quote)
	}
	if inArg {
		parts = append(parts, current.String())
	}
	return parts, nil
}

// RunCommand runs cmd (split by SplitCommand, no shell involved) with both its
// outputs going to out.
func RunCommand(ctx context.Context, cmd string, out io.Writer) error {
	parts, err := SplitCommand(cmd)
	if err != nil {
		return err
	}
	if len(parts) == 0 {
		return errors.New("no command provided")
	}
	path, err := exec.LookPath(parts[0])
	if err != nil {
		return err
	}
	log.LogVf("Running %s %d args (%v)", path, len(parts)-1, parts[1:])
	c := exec.CommandContext(ctx, path, parts[1:]...) //nolint:gosec // user provided command.
	c.Stdout = out
	c.Stderr = out
	return c.Run()
}
