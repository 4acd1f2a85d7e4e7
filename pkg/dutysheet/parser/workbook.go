package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/models"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat indicates a file extension other than .xlsx/.xlsm/.xls.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// ErrSheetNotFound indicates the requested sheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// xlsCharset is the charset passed to the BIFF reader for string records.
const xlsCharset = "utf-8"

// SupportedExtension reports whether name has a spreadsheet extension we can read.
func SupportedExtension(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm", ".xls":
		return true
	}
	return false
}

// SheetNames returns the sheet names of a workbook in workbook order.
func SheetNames(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return f.GetSheetList(), nil
	case ".xls":
		wb, err := openXLS(path)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, wb.NumSheets())
		for i := 0; i < wb.NumSheets(); i++ {
			if sheet := wb.GetSheet(i); sheet != nil {
				names = append(names, sheet.Name)
			}
		}
		return names, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
}

// LoadTable reads one sheet into an in-memory table. Sheet row 1 becomes
// table row 0; there is no header row.
func LoadTable(path, sheetName string) (*models.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadXLSX(path, sheetName)
	case ".xls":
		return loadXLS(path, sheetName)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
}

func loadXLSX(path, sheetName string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", sheetName, err)
	}
	return &models.Table{Name: sheetName, Rows: trimTrailingEmptyRows(rows)}, nil
}

// openXLS opens a BIFF workbook. xls.Open returns a nil workbook without an
// error when the container has no Workbook stream.
func openXLS(path string) (*xls.WorkBook, error) {
	wb, err := xls.Open(path, xlsCharset)
	if err != nil {
		return nil, fmt.Errorf("open xls %s: %w", filepath.Base(path), err)
	}
	if wb == nil {
		return nil, fmt.Errorf("open xls %s: no workbook stream", filepath.Base(path))
	}
	return wb, nil
}

func loadXLS(path, sheetName string) (*models.Table, error) {
	wb, err := openXLS(path)
	if err != nil {
		return nil, err
	}

	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil || sheet.Name != sheetName {
			continue
		}

		rows := make([][]string, 0, int(sheet.MaxRow)+1)
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := xlsRow(sheet, r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			// Keep cells positional: a row starting at column C still has A and B.
			first, last := row.FirstCol(), row.LastCol()
			if first < 0 {
				first = 0
			}
			cells := make([]string, last)
			for c := first; c < last; c++ {
				cells[c] = row.Col(c)
			}
			rows = append(rows, trimTrailingEmptyCells(cells))
		}
		return &models.Table{Name: sheetName, Rows: trimTrailingEmptyRows(rows)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
}

// xlsRow returns row i of a BIFF sheet, or nil when the sheet has no
// record for it. xls.WorkSheet.Row dereferences the missing row and panics.
func xlsRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

func trimTrailingEmptyCells(cells []string) []string {
	n := len(cells)
	for n > 0 && cells[n-1] == "" {
		n--
	}
	return cells[:n]
}

func trimTrailingEmptyRows(rows [][]string) [][]string {
	n := len(rows)
	for n > 0 && len(trimTrailingEmptyCells(rows[n-1])) == 0 {
		n--
	}
	return rows[:n]
}
