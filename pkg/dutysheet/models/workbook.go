package models

// SheetInfo summarizes one sheet of an uploaded workbook.
type SheetInfo struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// DataRange is the bounding range of non-empty cells (e.g. "A1:L42").
	DataRange string `json:"data_range,omitempty"`
	// Cells is the number of non-empty cells.
	Cells int `json:"cells"`
}

// WorkbookInfo represents an uploaded workbook and its sheets in order.
type WorkbookInfo struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists sheets in workbook order.
	Sheets []SheetInfo `json:"sheets"`
}

// SheetPreview is a sheet's non-empty rows, optionally cut to an area.
type SheetPreview struct {
	BookName  string    `json:"book_name"`
	SheetName string    `json:"sheet_name"`
	DataRange string    `json:"data_range,omitempty"`
	Area      *Area     `json:"area,omitempty"`
	Rows      []CellRow `json:"rows,omitempty"`
}
