// Package models defines data structures for duty-sheet extraction.
package models

// CellRow represents a single non-empty row of a sheet.
type CellRow struct {
	// R is the row index (1-based, as shown in the spreadsheet).
	R int `json:"r"`
	// C maps column letter to cell value.
	C map[string]interface{} `json:"c"`
}
