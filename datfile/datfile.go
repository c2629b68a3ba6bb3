// Package datfile implements the DAT input format: a text file where each
// non-empty line holds four whitespace-separated decimal numbers
// "x1 y1 x2 y2" defining a segment. Grounded on
// original_source/lab03/src/geometry/line_segments.rs::from_dat, which
// supplies the exact field-count and parse rules.
package datfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jduch/sweepgeom/segment"
)

// ErrInputFormat marks a malformed DAT line. Wrapped errors report the
// file and line number.
var ErrInputFormat = fmt.Errorf("malformed DAT line")

// Read parses a DAT file from path. Segments are returned in file order,
// unnormalized — normalization to Start.X <= End.X is an engine-level
// invariant applied by sweep/bruteforce at ingestion, not a file-format
// concern.
func Read(path string) ([]segment.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("datfile: %w", err)
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse reads DAT-formatted segments from r. name is used only for error
// messages (typically the source file's path).
func Parse(r io.Reader, name string) ([]segment.Segment, error) {
	var segments []segment.Segment
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: %s:%d: expected 4 fields, got %d", ErrInputFormat, name, lineNo, len(fields))
		}

		coords := make([]float64, 4)
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s:%d: field %d (%q) is not a number", ErrInputFormat, name, lineNo, i+1, field)
			}
			coords[i] = v
		}

		segments = append(segments, segment.New(coords[0], coords[1], coords[2], coords[3]))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("datfile: %s: %w", name, err)
	}

	return segments, nil
}
