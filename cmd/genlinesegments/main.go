// Command genlinesegments generates a random set of line segments and
// writes them as a DAT file, for use as benchmark/analyze input by
// cmd/sweepcli. Earlier revisions of this generator emitted generic JSON
// LineSegment[int64] values; this version emits the float64 DAT text
// format the rest of this module reads, using the same urfave/cli/v3 flag
// shape.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/jduch/sweepgeom/segment"
)

func main() {
	cmd := &cli.Command{
		Name:      "genlinesegments",
		Usage:     "Generates random line segments in a plane and writes them as a DAT file",
		UsageText: "genlinesegments --number <value> --maxx <value> --minx <value> --maxy <value> --miny <value> [--out FILE]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of segments to create",
				Value:    3,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{Name: "maxx", Usage: "The maximum X value of the plane", OnlyOnce: true, Value: 10},
			&cli.IntFlag{Name: "minx", Usage: "The minimum X value of the plane", OnlyOnce: true, Value: 0},
			&cli.IntFlag{Name: "maxy", Usage: "The maximum Y value of the plane", OnlyOnce: true, Value: 10},
			&cli.IntFlag{Name: "miny", Usage: "The minimum Y value of the plane", OnlyOnce: true, Value: 0},
			&cli.StringFlag{Name: "out", Usage: "File to write the DAT output to (default stdout)"},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func randomIntInRange(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}

func app(_ context.Context, cmd *cli.Command) error {
	minx, maxx := cmd.Int("minx"), cmd.Int("maxx")
	miny, maxy := cmd.Int("miny"), cmd.Int("maxy")
	n := cmd.Int("number")

	if minx >= maxx {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return fmt.Errorf("maxy must be greater than miny")
	}

	out := os.Stdout
	if path := cmd.String("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("genlinesegments: %w", err)
		}
		defer f.Close()
		out = f
	}

	for i := int64(0); i < n; i++ {
		var s segment.Segment
		for {
			s = segment.New(
				float64(randomIntInRange(minx, maxx)),
				float64(randomIntInRange(miny, maxy)),
				float64(randomIntInRange(minx, maxx)),
				float64(randomIntInRange(miny, maxy)),
			)
			if !s.IsZeroLength() {
				break
			}
		}
		fmt.Fprintf(out, "%g %g %g %g\n", s.Start.X, s.Start.Y, s.End.X, s.End.Y)
	}
	return nil
}
