package dutysheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/models"
	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/parser"
)

// Inspect lists the sheets of a workbook with their data ranges.
func Inspect(path string) (*models.WorkbookInfo, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	names, err := parser.SheetNames(path)
	if err != nil {
		return nil, err
	}

	info := &models.WorkbookInfo{
		BookName: filepath.Base(path),
		Sheets:   make([]models.SheetInfo, 0, len(names)),
	}
	for _, name := range names {
		sheet := models.SheetInfo{Name: name}
		// A sheet that fails to load is still listed, just without a range.
		if table, err := parser.LoadTable(path, name); err == nil {
			sheet.DataRange = parser.DataRange(table)
			sheet.Cells = parser.CountValues(table)
		}
		info.Sheets = append(info.Sheets, sheet)
	}
	return info, nil
}

// Preview returns the non-empty cells of a sheet, optionally limited to an
// A1 range such as "B1:L14".
func Preview(path, sheetName, ref string) (*models.SheetPreview, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	var area *models.Area
	if ref != "" {
		_, a, err := parser.ParseRange(ref)
		if err != nil {
			return nil, err
		}
		area = &a
	}

	table, err := parser.LoadTable(path, sheetName)
	if err != nil {
		return nil, err
	}

	return &models.SheetPreview{
		BookName:  filepath.Base(path),
		SheetName: sheetName,
		DataRange: parser.DataRange(table),
		Area:      area,
		Rows:      parser.CellRows(table, area),
	}, nil
}

// ExtractRange extracts the columns of an A1 range as window blocks, left
// to right, using the same rules as schedule rendering.
func ExtractRange(path, sheetName, ref string, opts Options) (string, error) {
	_, area, err := parser.ParseRange(ref)
	if err != nil {
		return "", err
	}

	table, err := parser.LoadTable(path, sheetName)
	if err != nil {
		return "", err
	}

	text, _ := parser.ExtractWindows(table, area.Windows(), opts.extractOptions())
	return text, nil
}
