// Command sweepcli is the external interface: the benchmark and analyze
// verbs over DAT-formatted segment files, built with
// github.com/urfave/cli/v3 the same way cmd/genlinesegments builds its CLI.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/jduch/sweepgeom/bruteforce"
	"github.com/jduch/sweepgeom/datfile"
	"github.com/jduch/sweepgeom/report"
	"github.com/jduch/sweepgeom/segment"
	"github.com/jduch/sweepgeom/sweep"
)

func main() {
	cmd := &cli.Command{
		Name:  "sweepcli",
		Usage: "Line-segment intersection benchmarking and dataset analysis",
		Commands: []*cli.Command{
			benchmarkCommand(),
			analyzeCommand(),
		},
		HideVersion: true,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func benchmarkCommand() *cli.Command {
	return &cli.Command{
		Name:      "benchmark",
		Usage:     "Run an intersection algorithm over a DAT file (or all files in --datadir) and report timing",
		UsageText: "sweepcli benchmark <file|all> [--brute-force|--sweep-line|--external] [--datadir DIR]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "brute-force", Usage: "use the O(n^2) reference oracle (default)"},
			&cli.BoolFlag{Name: "sweep-line", Usage: "use the Bentley-Ottmann plane sweep"},
			&cli.BoolFlag{Name: "external", Usage: "delegate to an external algorithm (out of scope; always errors)"},
			&cli.StringFlag{Name: "datadir", Usage: "directory to scan when the argument is \"all\"", Value: "data"},
			&cli.BoolFlag{Name: "memory", Usage: "include the Memory (kB) column"},
		},
		Action: runBenchmark,
	}
}

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Run the brute-force oracle and print dataset pathology statistics",
		UsageText: "sweepcli analyze <file>",
		Action:    runAnalyze,
	}
}

type algorithm func([]segment.Segment) (int, error)

func runBenchmark(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("benchmark: expected exactly one argument (<file> or \"all\")")
	}
	target := cmd.Args().First()

	algoName, algo, err := selectAlgorithm(cmd)
	if err != nil {
		return err
	}

	var files []string
	if target == "all" {
		files, err = filepath.Glob(filepath.Join(cmd.String("datadir"), "*.dat"))
		if err != nil {
			return fmt.Errorf("benchmark: %w", err)
		}
	} else {
		files = []string{target}
	}

	rows := make([]report.Row, 0, len(files))
	for _, f := range files {
		rows = append(rows, benchmarkOne(f, algoName, algo))
	}

	report.Table(os.Stdout, rows, cmd.Bool("memory"))
	for _, r := range rows {
		if r.Err != nil {
			return fmt.Errorf("benchmark: %s: %w", r.File, r.Err)
		}
	}
	return nil
}

func selectAlgorithm(cmd *cli.Command) (string, algorithm, error) {
	chosen := 0
	for _, f := range []string{"brute-force", "sweep-line", "external"} {
		if cmd.Bool(f) {
			chosen++
		}
	}
	if chosen > 1 {
		return "", nil, fmt.Errorf("benchmark: only one of --brute-force, --sweep-line, --external may be given")
	}

	switch {
	case cmd.Bool("external"):
		return "external", nil, nil
	case cmd.Bool("sweep-line"):
		return "sweep-line", func(segments []segment.Segment) (int, error) {
			return len(sweep.FindIntersections(segments)), nil
		}, nil
	default:
		return "brute-force", func(segments []segment.Segment) (int, error) {
			return len(bruteforce.FindIntersections(segments)), nil
		}, nil
	}
}

func benchmarkOne(path, algoName string, algo algorithm) report.Row {
	row := report.Row{File: path}

	if algoName == "external" {
		row.Err = fmt.Errorf("external algorithm is an out-of-scope collaborator; no implementation is shipped")
		return row
	}

	segments, err := datfile.Read(path)
	if err != nil {
		row.Err = err
		return row
	}
	row.Lines = len(segments)

	var memBefore, memAfter runtime.MemStats
	runtime.ReadMemStats(&memBefore)
	start := time.Now()

	count, err := algo(segments)
	if err != nil {
		row.Err = err
		return row
	}

	row.CPUTimeMS = float64(time.Since(start).Microseconds()) / 1000.0
	runtime.ReadMemStats(&memAfter)
	row.Intersections = count
	row.MemoryKB = int64(memAfter.Alloc-memBefore.Alloc) / 1024
	return row
}

func runAnalyze(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("analyze: expected exactly one argument (<file>)")
	}
	path := cmd.Args().First()

	segments, err := datfile.Read(path)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	r := bruteforce.Analyze(segments)
	fmt.Printf("File:                %s\n", path)
	fmt.Printf("Segments:            %d\n", r.TotalSegments)
	fmt.Printf("Intersections:       %d\n", r.TotalIntersections)
	fmt.Printf("Zero-length:         %d\n", r.ZeroLength)
	fmt.Printf("Vertical:            %d\n", r.Vertical)
	fmt.Printf("Duplicate X:         %d\n", r.DuplicateX)
	fmt.Printf("Touching:            %d\n", r.Touching)
	fmt.Printf("Overlapping:         %d\n", r.Overlapping)
	return nil
}
