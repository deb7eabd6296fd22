package repl

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"
)

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "simple command", input: "echo hello", want: []string{"echo", "hello"}},
		{name: "multiple spaces", input: "echo   hello    world", want: []string{"echo", "hello", "world"}},
		{name: "tabs and newlines", input: "echo\thello\nworld", want: []string{"echo", "hello", "world"}},
		{name: "double quoted string", input: `echo "hello world"`, want: []string{"echo", "hello world"}},
		{name: "single quoted string", input: `echo 'hello world'`, want: []string{"echo", "hello world"}},
		{name: "escaped space outside quotes", input: `echo hello\ world`, want: []string{"echo", "hello world"}},
		{name: "escaped quote in double quotes", input: `echo "a \"b\""`, want: []string{"echo", `a "b"`}},
		{name: "backslash literal in single quotes", input: `echo 'a\b'`, want: []string{"echo", `a\b`}},
		{name: "empty quoted argument", input: `printf "" x`, want: []string{"printf", "", "x"}},
		{name: "quotes glued to a word", input: `--exclude='*.log'`, want: []string{"--exclude=*.log"}},
		{name: "empty string", input: "", want: []string{}},
		{name: "only whitespace", input: "   \t\n  ", want: []string{}},
		{name: "unclosed double quote", input: `echo "hello`, wantErr: true},
		{name: "unclosed single quote", input: `echo 'hello`, wantErr: true},
		{name: "unterminated escape at end", input: `echo hello\`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitCommand(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SplitCommand() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("SplitCommand() got %d parts, want %d\ngot:  %#v\nwant: %#v", len(got), len(tt.want), got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SplitCommand() part[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRunCommandErrors(t *testing.T) {
	for _, cmd := range []string{"", "   ", `echo "hello`, "this_command_definitely_does_not_exist_12345"} {
		if err := RunCommand(context.Background(), cmd, &bytes.Buffer{}); err == nil {
			t.Errorf("RunCommand(%q) expected an error", cmd)
		}
	}
}

func TestRunCommand(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("no echo in PATH")
	}
	out := bytes.Buffer{}
	if err := RunCommand(context.Background(), `echo "hello world" again`, &out); err != nil {
		t.Fatalf("RunCommand: %v", err)
	}
	if got := out.String(); got != "hello world again\n" {
		t.Errorf("output %q", got)
	}
	if _, err := exec.LookPath("false"); err == nil {
		err = RunCommand(context.Background(), "false", &out)
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
			t.Errorf("RunCommand(false) = %v, want exit status 1", err)
		}
	}
}
