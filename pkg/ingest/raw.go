package ingest

import (
	"fmt"
	"strings"
)

// RawRow is one row of a sheet export. Cell meaning is positional;
// rows may be ragged, missing cells read as empty.
type RawRow []string

func (r RawRow) Cell(col int) string {
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// CellError is a fatal parse error pointing at a single cell of the source.
type CellError struct {
	Row     int
	Col     int
	Value   string
	Snippet string
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d col %d: cannot parse cell %q (row: %s)",
		e.Row, e.Col, e.Value, e.Snippet)
}

func newCellError(row RawRow, rowIdx, col int) *CellError {
	return &CellError{
		Row:     rowIdx,
		Col:     col,
		Value:   row.Cell(col),
		Snippet: snippet(row),
	}
}

const snippetCells = 8

func snippet(row RawRow) string {
	cells := row
	if len(cells) > snippetCells {
		cells = cells[:snippetCells]
	}
	return strings.Join(cells, " | ")
}
