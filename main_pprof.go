//go:build !no_pprof

package main

import (
	"flag"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"fortio.org/log"
)

var (
	cpuprofile = flag.String("profile-cpu", "", "write cpu profile of the whole run to `file`")
	memprofile = flag.String("profile-mem", "", "write heap profile at the end of the run to `file`")
	tracefile  = flag.String("profile-trace", "", "write an execution trace of the whole run to `file`")
)

func init() {
	hookBefore = startProfiling
	hookAfter = stopProfiling
}

func startProfiling() int {
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return log.FErrf("can't open file for cpu profile: %v", err)
		}
		if err = pprof.StartCPUProfile(f); err != nil {
			return log.FErrf("can't start cpu profile: %v", err)
		}
		log.Infof("Writing cpu profile to %s", *cpuprofile)
	}
	if *tracefile != "" {
		f, err := os.Create(*tracefile)
		if err != nil {
			return log.FErrf("can't open file for trace: %v", err)
		}
		if err = trace.Start(f); err != nil {
			return log.FErrf("can't start trace: %v", err)
		}
		log.Infof("Writing execution trace to %s", *tracefile)
	}
	return 0
}

func stopProfiling() int {
	if *cpuprofile != "" {
		pprof.StopCPUProfile()
	}
	if *tracefile != "" {
		trace.Stop()
	}
	if *memprofile == "" {
		return 0
	}
	f, err := os.Create(*memprofile)
	if err != nil {
		return log.FErrf("can't open file for mem profile: %v", err)
	}
	defer f.Close()
	runtime.GC() // up to date allocation numbers.
	if err = pprof.WriteHeapProfile(f); err != nil {
		return log.FErrf("can't write mem profile: %v", err)
	}
	log.Infof("Wrote memory profile to %s", *memprofile)
	return 0
}
