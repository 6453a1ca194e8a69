// Package profilers sets up optional CPU and memory profiling for the command-line tools.
//
// If linked, it installs the flags --cpu_profile and --mem_profile.
package profilers

import (
	"flag"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"os"
	"runtime"
	"runtime/pprof"
)

var (
	flagCPUProfile = flag.String("cpu_profile", "", "write cpu profile to `file`")
	flagMemProfile = flag.String("mem_profile", "", "write heap profile to `file`, on exit")
)

// Setup starts the CPU profiler, if --cpu_profile was given. It returns the function
// to call on exit, which stops the CPU profiler and writes the heap profile (--mem_profile).
func Setup() (onQuit func(), err error) {
	onQuit = func() {}
	var cpuFile *os.File
	if *flagCPUProfile != "" {
		cpuFile, err = os.Create(*flagCPUProfile)
		if err != nil {
			return onQuit, errors.Wrapf(err, "could not create CPU profile %q", *flagCPUProfile)
		}
		if err = pprof.StartCPUProfile(cpuFile); err != nil {
			_ = cpuFile.Close()
			return onQuit, errors.Wrap(err, "could not start CPU profile")
		}
		klog.V(1).Infof("CPU profile being written to %q", *flagCPUProfile)
	}
	onQuit = func() {
		if cpuFile != nil {
			pprof.StopCPUProfile()
			_ = cpuFile.Close()
		}
		if *flagMemProfile != "" {
			writeHeapProfile(*flagMemProfile)
		}
	}
	return onQuit, nil
}

func writeHeapProfile(path string) {
	f, err := os.Create(path)
	if err != nil {
		klog.Errorf("Could not create heap profile %q: %v", path, err)
		return
	}
	defer func() { _ = f.Close() }()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		klog.Errorf("Could not write heap profile %q: %v", path, err)
	}
}
