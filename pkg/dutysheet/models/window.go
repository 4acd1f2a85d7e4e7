package models

// Window is a contiguous row range combined with a single column, the unit
// of extraction.
type Window struct {
	// RowStart is the first row read (0-based, inclusive).
	RowStart int `json:"row_start"`
	// RowEnd is the row after the last one read (0-based, exclusive).
	RowEnd int `json:"row_end"`
	// Column is the column index (0-based).
	Column int `json:"column"`
}

// Area represents cell coordinate bounds given in A1 notation.
type Area struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Windows splits the area into one window per column, left to right.
func (a Area) Windows() []Window {
	var ws []Window
	for c := a.C1; c <= a.C2; c++ {
		ws = append(ws, Window{RowStart: a.R1 - 1, RowEnd: a.R2, Column: c - 1})
	}
	return ws
}

// Contains reports whether the 1-based row lies inside the area.
func (a Area) Contains(row int) bool {
	return row >= a.R1 && row <= a.R2
}
