// Command presolvedemo runs the presolve engine over a small in-memory
// LP and prints the resulting operation table and warnings. It is a
// demonstration harness, not an LP/MPS reader — building a model from a
// file or a solver is out of scope for this repository (spec.md §1).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	presolve "github.com/arborel/presolve-lp"
	"github.com/arborel/presolve-lp/lpstate"
	"github.com/arborel/presolve-lp/sparse"
)

func main() {
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the run to cpu.pprof in a new temporary directory")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, "presolvedemo: building logger:", err)
			os.Exit(1)
		}
		logger = l
		defer logger.Sync() //nolint:errcheck
	}

	state, err := exampleState()
	if err != nil {
		fmt.Fprintln(os.Stderr, "presolvedemo: building example state:", err)
		os.Exit(1)
	}

	cfg := presolve.NewConfig(
		presolve.WithRule(true),
		presolve.WithLogger(logger),
	)

	report, err := presolve.Run(cfg, state)
	if err != nil {
		fmt.Fprintln(os.Stderr, "presolvedemo: run failed:", err)
		os.Exit(1)
	}

	printOperationTable(report.Operations)
	printWarnings(report.Warnings)
}

// exampleState builds the zero-row scenario from spec.md §8 (A=[[0,0],
// [1,1]], b=[0,2]) — small enough to read at a glance, structural enough
// to exercise a real rule.
func exampleState() (*lpstate.State, error) {
	a, err := sparse.NewFromDense([][]float64{
		{0, 0},
		{1, 1},
	})
	if err != nil {
		return nil, err
	}
	b := []float64{0, 2}
	c := []float64{1, 1}
	lb := []float64{0, 0}
	ub := []float64{1e30, 1e30}
	senses := []lpstate.Sense{lpstate.LE, lpstate.LE}
	names := []string{"x0", "x1"}

	return lpstate.NewState(a, b, c, 0, lb, ub, lpstate.Minimize, senses, names)
}

func printOperationTable(ops presolve.OperationTable) {
	header := color.New(color.FgCyan, color.Bold)
	header.Println("step                              rows  cols  nnz")
	for _, row := range ops {
		fmt.Printf("%-32s  %4d  %4d  %4d\n", row.Label, row.Rows, row.Cols, row.NNZ)
	}
}

func printWarnings(warnings presolve.Warnings) {
	if len(warnings) == 0 {
		color.New(color.FgGreen).Println("no warnings")
		return
	}
	warn := color.New(color.FgYellow, color.Bold)
	for _, w := range warnings {
		warn.Printf("[%s] %s: %s\n", w.Kind, w.Rule, w.Detail)
	}
}
