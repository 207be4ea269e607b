// Command cdclsolve reads a DIMACS CNF instance and reports SAT/UNSAT,
// printing a model when satisfiable.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/blitzsat/cdcl/internal/dimacs"
	"github.com/blitzsat/cdcl/internal/offload"
	"github.com/blitzsat/cdcl/internal/sat"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagHWOffload = flag.Bool(
	"hw-offload",
	false,
	"route BCP through the loopback hardware-offload engine instead of the built-in propagator",
)

var flagTimeout = flag.Duration(
	"timeout",
	0,
	"abort the search and report UNKNOWN after this duration (0 disables the timeout)",
)

type config struct {
	instanceFile string
	memProfile   bool
	cpuProfile   bool
	hwOffload    bool
	timeout      time.Duration
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
		hwOffload:    *flagHWOffload,
		timeout:      *flagTimeout,
	}, nil
}

func run(cfg *config) error {
	numVars, err := dimacs.CountVars(cfg.instanceFile)
	if err != nil {
		return fmt.Errorf("could not read instance: %s", err)
	}

	opts := sat.DefaultOptions
	opts.Timeout = cfg.timeout
	if cfg.hwOffload {
		opts.Engine = offload.NewLoopback()
	}

	s := sat.New(numVars, opts)
	if err := dimacs.Load(cfg.instanceFile, s); err != nil {
		return fmt.Errorf("could not load instance: %s", err)
	}

	fmt.Printf("c variables: %d\n", numVars)

	t := time.Now()
	status := s.Solve()
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c decisions:  %d\n", s.Decisions)
	fmt.Printf("c conflicts:  %d (%.2f /sec)\n", s.Conflicts, float64(s.Conflicts)/elapsed.Seconds())
	fmt.Printf("s %s\n", status)

	if status == sat.SAT {
		fmt.Print("v")
		for v := 1; v <= numVars; v++ {
			if s.Value(v) == sat.ValueTrue {
				fmt.Printf(" %d", v)
			} else {
				fmt.Printf(" -%d", v)
			}
		}
		fmt.Println(" 0")
	}

	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
