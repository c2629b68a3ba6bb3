// Package report formats a fixed-width, ASCII-bordered benchmark table:
// columns File, # Lines, # Intersections, CPU Time (ms), and optionally
// Memory (kB). A row whose measurement failed prints the literal token
// "Error" in place of its numeric columns.
package report

import (
	"fmt"
	"io"
	"strings"
)

// Row is one line of the benchmark report. Err, if non-nil, causes every
// numeric column to render as the literal "Error" token.
type Row struct {
	File          string
	Lines         int
	Intersections int
	CPUTimeMS     float64
	MemoryKB      int64
	Err           error
}

// Table renders rows as a fixed-width, ASCII-bordered table to w.
// IncludeMemory controls whether the optional "Memory (kB)" column is
// printed.
func Table(w io.Writer, rows []Row, includeMemory bool) {
	headers := []string{"File", "# Lines", "# Intersections", "CPU Time (ms)"}
	if includeMemory {
		headers = append(headers, "Memory (kB)")
	}

	widths := make([]int, len(headers))
	cells := make([][]string, len(rows))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for i, r := range rows {
		cells[i] = rowCells(r, includeMemory)
		for j, c := range cells[i] {
			if len(c) > widths[j] {
				widths[j] = len(c)
			}
		}
	}

	writeBorder(w, widths)
	writeRow(w, headers, widths)
	writeBorder(w, widths)
	for _, c := range cells {
		writeRow(w, c, widths)
	}
	writeBorder(w, widths)
}

func rowCells(r Row, includeMemory bool) []string {
	if r.Err != nil {
		cells := []string{r.File, "Error", "Error", "Error"}
		if includeMemory {
			cells = append(cells, "Error")
		}
		return cells
	}
	cells := []string{
		r.File,
		fmt.Sprintf("%d", r.Lines),
		fmt.Sprintf("%d", r.Intersections),
		fmt.Sprintf("%.3f", r.CPUTimeMS),
	}
	if includeMemory {
		cells = append(cells, fmt.Sprintf("%d", r.MemoryKB))
	}
	return cells
}

func writeBorder(w io.Writer, widths []int) {
	var b strings.Builder
	b.WriteByte('+')
	for _, width := range widths {
		b.WriteString(strings.Repeat("-", width+2))
		b.WriteByte('+')
	}
	fmt.Fprintln(w, b.String())
}

func writeRow(w io.Writer, cells []string, widths []int) {
	var b strings.Builder
	b.WriteByte('|')
	for i, c := range cells {
		fmt.Fprintf(&b, " %-*s |", widths[i], c)
	}
	fmt.Fprintln(w, b.String())
}
