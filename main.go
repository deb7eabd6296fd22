// Microforth is a small stack based, Forth like, scripting language.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"fortio.org/cli"
	"fortio.org/duration"
	"fortio.org/log"
	"fortio.org/struct2env"
	"fortio.org/terminal"
	"fortio.org/version"
	"microforth.io/microforth/eval"
	"microforth.io/microforth/extensions"
	"microforth.io/microforth/repl"
)

func main() {
	os.Exit(Main())
}

type Config struct {
	HistoryFile string
	MaxDepth    int
	MaxStack    int
}

var config = Config{}

func EnvHelp(w io.Writer) {
	res, _ := struct2env.StructToEnvVars(config)
	str := struct2env.ToShellWithPrefix("MICROFORTH_", res, true)
	fmt.Fprintln(w, "# Microforth environment variables:")
	fmt.Fprint(w, str)
}

var hookBefore, hookAfter func() int

func Main() int {
	commandFlag := flag.String("c", "", "command/inline script to run before the files, if any")
	interactiveFlag := flag.Bool("i", false, "start the interactive repl after running the command and files")
	sharedState := flag.Bool("shared-state", false, "All files share same interpreter state (default is new state for each)")
	const historyDefault = "~/.microforth_history" // virtual/token filename, replaced by the actual home dir if not changed.
	cli.EnvHelpFuncs = append(cli.EnvHelpFuncs, EnvHelp)
	defaultHistoryFile := historyDefault
	errs := struct2env.SetFromEnv("MICROFORTH_", &config)
	if len(errs) > 0 {
		log.Errf("Error setting config from env: %v", errs)
	}
	if config.HistoryFile != "" {
		defaultHistoryFile = config.HistoryFile
	}
	historyFile := flag.String("history", defaultHistoryFile, "history `file` to use")
	maxHistory := flag.Int("max-history", terminal.DefaultHistoryCapacity, "max history `size`, use 0 to disable.")
	maxDepth := flag.Int("max-depth", orDefault(config.MaxDepth, eval.DefaultMaxDepth),
		"Maximum number of pending tokens on the continuation stack, -1 for unlimited")
	maxStack := flag.Int("max-stack", orDefault(config.MaxStack, eval.DefaultMaxStack),
		"Maximum number of values on the data stack, -1 for unlimited")
	maxDuration := duration.Flag("max-duration", 0, "Maximum duration of each script/command/repl line (e.g. 1m or 2d), 0 for none")
	dumpState := flag.String("dump-state", "", "write the final namespace and stack as yaml to `file` (- for stdout)")
	noStack := flag.Bool("no-stack", false, "don't print the data stack after each file, command or repl line")
	noDebug := flag.Bool("no-debug", false, "don't register the debug/printing builtins")
	shellEscape := flag.Bool("shell", false, "allow running commands with !cmd in the repl")
	panicOk := flag.Bool("panic", false, "Don't catch panic - only for development/debugging")

	cli.ArgsHelp = "*.mf files to interpret or `-` for stdin without prompt or no arguments for the repl..."
	cli.MaxArgs = -1
	cli.Main()
	histFile := *historyFile
	if histFile == historyDefault {
		homeDir, err := os.UserHomeDir()
		histFile = filepath.Join(homeDir, ".microforth_history")
		if err != nil {
			log.Warnf("Couldn't get user home dir: %v", err)
			histFile = ""
		}
	}
	short, _, _ := version.FromBuildInfoPath("microforth.io/microforth")
	log.Infof("microforth %s - welcome!", short)
	memlimit := debug.SetMemoryLimit(-1)
	if memlimit == math.MaxInt64 {
		log.LogVf("Memory limit not set, consider setting the GOMEMLIMIT env var; e.g. GOMEMLIMIT=1GiB")
	}
	options := repl.Options{
		ShowStack:   !*noStack,
		HistoryFile: histFile,
		MaxHistory:  *maxHistory,
		MaxDepth:    *maxDepth,
		MaxStack:    *maxStack,
		MaxDuration: *maxDuration,
		PanicOk:     *panicOk,
		ShellEscape: *shellEscape,
	}
	if hookBefore != nil {
		ret := hookBefore()
		if ret != 0 {
			return ret
		}
	}
	err := extensions.Init(&extensions.Config{NoDebug: *noDebug})
	if err != nil {
		return log.FErrf("Error initializing extensions: %v", err)
	}
	ctx := context.Background()
	s := options.NewState()
	sources := 0
	if *commandFlag != "" {
		sources++
		if ret := processOneStream(ctx, s, "-c", strings.NewReader(*commandFlag), options); ret != 0 {
			return finish(s, *dumpState, ret)
		}
	}
	for _, file := range flag.Args() {
		if sources > 0 && !*sharedState {
			s = options.NewState()
		}
		sources++
		if ret := processOneFile(ctx, file, s, options); ret != 0 {
			return finish(s, *dumpState, ret)
		}
	}
	if sources == 0 || *interactiveFlag {
		if ret := repl.Interactive(s, options); ret != 0 {
			return finish(s, *dumpState, ret)
		}
	}
	log.Infof("All done")
	ret := finish(s, *dumpState, 0)
	if hookAfter != nil && ret == 0 {
		return hookAfter()
	}
	return ret
}

// orDefault maps the unset (0) env value to def and negative to unlimited.
func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func finish(s *eval.State, dumpFile string, ret int) int {
	if dumpFile == "" {
		return ret
	}
	out := os.Stdout
	if dumpFile != "-" {
		f, err := os.Create(dumpFile)
		if err != nil {
			return log.FErrf("Can't create state dump %q: %v", dumpFile, err)
		}
		defer f.Close()
		out = f
	}
	if err := s.Dump(out, false); err != nil {
		return log.FErrf("Error dumping state: %v", err)
	}
	log.Infof("State dumped to %s", dumpFile)
	return ret
}

func processOneStream(ctx context.Context, s *eval.State, name string, in io.Reader, options repl.Options) int {
	errs := repl.EvalAll(ctx, s, in, os.Stdout, options)
	if len(errs) == 0 {
		return 0
	}
	for _, err := range errs {
		log.Errf("Error in %s:", name)
		repl.WriteError(os.Stderr, err)
	}
	return 1
}

func processOneFile(ctx context.Context, file string, s *eval.State, options repl.Options) int {
	if file == "-" {
		log.Infof("Running on stdin")
		return processOneStream(ctx, s, "stdin", os.Stdin, options)
	}
	f, err := os.Open(file)
	if err != nil {
		return log.FErrf("%v", err)
	}
	defer f.Close()
	log.Infof("Running %s", file)
	return processOneStream(ctx, s, file, f, options)
}
