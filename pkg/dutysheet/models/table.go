package models

import "fmt"

// Table is an in-memory grid of display strings loaded from one sheet.
// Rows and columns are zero-indexed; rows may be ragged.
type Table struct {
	// Name is the sheet name the table was loaded from.
	Name string `json:"name"`
	// Rows holds cell text row by row.
	Rows [][]string `json:"rows"`
}

// OutOfRangeError reports a read outside the table bounds.
type OutOfRangeError struct {
	Row, Col         int
	NumRows, NumCols int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("cell (%d,%d) outside table bounds %dx%d", e.Row, e.Col, e.NumRows, e.NumCols)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumCols returns the width of the widest row.
func (t *Table) NumCols() int {
	n := 0
	for _, row := range t.Rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// Cell returns the text at (row, col). A short row inside the bounds reads
// as empty; anything outside the bounds is an *OutOfRangeError.
func (t *Table) Cell(row, col int) (string, error) {
	numRows, numCols := t.NumRows(), t.NumCols()
	if row < 0 || col < 0 || row >= numRows || col >= numCols {
		return "", &OutOfRangeError{Row: row, Col: col, NumRows: numRows, NumCols: numCols}
	}
	r := t.Rows[row]
	if col >= len(r) {
		return "", nil
	}
	return r[col], nil
}
