package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableRendersHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	rows := []Row{
		{File: "a.dat", Lines: 3, Intersections: 1, CPUTimeMS: 0.5},
		{File: "b.dat", Lines: 100, Intersections: 42, CPUTimeMS: 12.345},
	}
	Table(&buf, rows, false)
	out := buf.String()

	assert.Contains(t, out, "File")
	assert.Contains(t, out, "# Lines")
	assert.Contains(t, out, "# Intersections")
	assert.Contains(t, out, "CPU Time (ms)")
	assert.Contains(t, out, "a.dat")
	assert.Contains(t, out, "b.dat")
	assert.NotContains(t, out, "Memory (kB)")
}

func TestTableIncludesMemoryColumn(t *testing.T) {
	var buf bytes.Buffer
	rows := []Row{{File: "a.dat", Lines: 1, Intersections: 0, CPUTimeMS: 0.1, MemoryKB: 128}}
	Table(&buf, rows, true)
	out := buf.String()
	assert.Contains(t, out, "Memory (kB)")
	assert.Contains(t, out, "128")
}

func TestTableRendersErrorToken(t *testing.T) {
	var buf bytes.Buffer
	rows := []Row{{File: "bad.dat", Err: errors.New("malformed DAT line")}}
	Table(&buf, rows, false)
	out := buf.String()
	assert.Contains(t, out, "Error")
}

func TestTableBorderWidthMatchesWidestCell(t *testing.T) {
	var buf bytes.Buffer
	rows := []Row{{File: "a-very-long-file-name.dat", Lines: 1, Intersections: 0, CPUTimeMS: 0.1}}
	Table(&buf, rows, false)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i := 1; i < len(lines); i++ {
		assert.Equal(t, len(lines[0]), len(lines[i]), "all border/row lines must share the table's fixed width")
	}
}
