// Package repl runs microforth sessions: whole streams (files, stdin), one shot
// strings and the interactive terminal loop.
package repl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"
	"time"

	"fortio.org/log"
	"fortio.org/terminal"
	"microforth.io/microforth/eval"
	"microforth.io/microforth/lexer"
	"microforth.io/microforth/object"
)

const (
	PROMPT              = "mf> "
	CONTINUATION_PROMPT = "... " //nolint:revive // matches PROMPT.
)

type Options struct {
	ShowStack   bool // print the data stack after each evaluation.
	HistoryFile string
	MaxHistory  int
	MaxDepth    int
	MaxStack    int
	// MaxDuration bounds each Execute call, 0 for no limit.
	MaxDuration time.Duration
	PanicOk     bool // don't recover panics, for debugging.
	ShellEscape bool // interactive lines starting with ! run a command.
	// PreInput is called on new states before any input is evaluated, the last
	// chance to RegisterBuiltin extra functions.
	PreInput func(*eval.State)
}

// NewState returns a session configured per the options.
func (o Options) NewState() *eval.State {
	s := eval.NewState()
	if o.MaxDepth != 0 {
		s.MaxDepth = o.MaxDepth
	}
	if o.MaxStack != 0 {
		s.MaxStack = o.MaxStack
	}
	if o.PreInput != nil {
		o.PreInput(s)
	}
	return s
}

// EvalAll reads all of in then evaluates it as a single input.
func EvalAll(ctx context.Context, s *eval.State, in io.Reader, out io.Writer, options Options) []error {
	b, err := io.ReadAll(in)
	if err != nil {
		log.Errf("Error reading input: %v", err)
		return []error{err}
	}
	return EvalOne(ctx, s, string(b), out, options)
}

// EvalStringOptions returns the options used by EvalString.
func EvalStringOptions() Options {
	return Options{
		ShowStack: true,
		MaxDepth:  eval.DefaultMaxDepth,
		MaxStack:  eval.DefaultMaxStack,
	}
}

// EvalString evaluates what in a new state and returns what it printed (including
// the final stack) and the errors if any.
func EvalString(what string) (res string, errs []error) {
	return EvalStringWithOption(context.Background(), EvalStringOptions(), what)
}

func EvalStringWithOption(ctx context.Context, o Options, what string) (res string, errs []error) {
	s := o.NewState()
	out := bytes.Buffer{}
	errs = EvalOne(ctx, s, what, &out, o)
	return out.String(), errs
}

// EvalOne executes what against s with output going to out. The stack is printed
// afterwards (even on error) when ShowStack is set.
func EvalOne(ctx context.Context, s *eval.State, what string, out io.Writer, options Options) (errs []error) {
	prevOut := s.Out
	s.Out = out
	defer func() {
		s.Out = prevOut
	}()
	if !options.PanicOk {
		defer func() {
			if r := recover(); r != nil {
				log.Critf("Caught panic: %v", r)
				log.Critf("Stack trace:\n%s", debug.Stack())
				s.Reset()
				errs = append(errs, fmt.Errorf("panic: %v", r))
			}
		}()
	}
	if options.MaxDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.MaxDuration)
		defer cancel()
	}
	err := s.Execute(ctx, what)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w (max duration %v)", err, options.MaxDuration)
		}
		errs = append(errs, err)
	}
	if options.ShowStack {
		fmt.Fprint(out, log.Colors.Green)
		fmt.Fprint(out, object.InspectStack(s.DataStack()))
		fmt.Fprintln(out, log.Colors.Reset)
	}
	return errs
}

// WriteError prints err in red, with the offending line and a caret for syntax errors.
func WriteError(out io.Writer, err error) {
	fmt.Fprint(out, log.Colors.Red)
	var se *lexer.SyntaxError
	if errors.As(err, &se) {
		fmt.Fprintln(out, se.Detail())
	}
	fmt.Fprint(out, err.Error())
	fmt.Fprintln(out, log.Colors.Reset)
}

// Interactive runs the terminal loop on s (a new state when nil) until EOF (ctrl-D).
// Input is accumulated while a function literal or a comment is left open.
func Interactive(s *eval.State, options Options) int {
	ctx := context.Background()
	if s == nil {
		s = options.NewState()
	}
	term, err := terminal.Open(ctx)
	if err != nil {
		return log.FErrf("Error creating terminal: %v", err)
	}
	defer term.Close()
	autoComplete := NewCompletion()
	autoComplete.AddWords(commands...)
	s.RegisterTrie(autoComplete.Trie)
	term.SetAutoCompleteCallback(autoComplete.AutoComplete())
	term.SetPrompt(PROMPT)
	term.NewHistory(options.MaxHistory)
	if options.HistoryFile != "" {
		if err = term.SetHistoryFile(options.HistoryFile); err != nil {
			log.Warnf("Couldn't use history file %q: %v", options.HistoryFile, err)
		}
	}
	prev := ""
	for {
		rd, err := term.ReadLine()
		if errors.Is(err, io.EOF) {
			log.Infof("Exit requested")
			return 0
		}
		if errors.Is(err, terminal.ErrUserInterrupt) {
			if prev != "" {
				log.Infof("Discarding incomplete input")
				prev = ""
				term.SetPrompt(PROMPT)
				continue
			}
			log.Infof("Interrupted, exiting")
			return 0
		}
		if err != nil {
			return log.FErrf("Error reading line: %v", err)
		}
		l := prev + rd
		if prev == "" && command(ctx, s, strings.TrimSpace(l), term.Out, options) {
			continue
		}
		if lexer.NeedsMore(l) {
			prev = l + "\n"
			term.SetPrompt(CONTINUATION_PROMPT)
			continue
		}
		prev = ""
		term.SetPrompt(PROMPT)
		for _, e := range EvalOne(ctx, s, l, term.Out, options) {
			WriteError(term.Out, e)
		}
	}
}

var commands = []string{"help", "stack", "dump", "reset"}

// command handles the repl-only lines, returns false for regular input.
func command(ctx context.Context, s *eval.State, l string, out io.Writer, options Options) bool {
	switch {
	case l == "help":
		WriteHelp(out)
	case l == "stack":
		fmt.Fprintln(out, object.InspectStack(s.DataStack()))
	case l == "dump":
		if err := s.Dump(out, false); err != nil {
			WriteError(out, err)
		}
	case l == "reset":
		s.ClearStack()
		log.Infof("Stack cleared")
	case options.ShellEscape && strings.HasPrefix(l, "!"):
		if err := RunCommand(ctx, l[1:], out); err != nil {
			WriteError(out, err)
		}
	default:
		return false
	}
	return true
}
