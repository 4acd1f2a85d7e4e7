package parser

import (
	"strconv"

	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/models"
	"github.com/xuri/excelize/v2"
)

// CellRows returns the non-empty rows of a table, keyed by column letter.
// When area is non-nil only cells inside it are kept.
func CellRows(t *models.Table, area *models.Area) []models.CellRow {
	var result []models.CellRow
	for rowIdx, row := range t.Rows {
		rowNum := rowIdx + 1 // 1-based row index
		if area != nil && !area.Contains(rowNum) {
			continue
		}
		cellMap := make(map[string]interface{})

		for colIdx, cellValue := range row {
			if IsMissing(cellValue) {
				continue
			}
			if area != nil && (colIdx+1 < area.C1 || colIdx+1 > area.C2) {
				continue
			}
			colName, err := excelize.ColumnNumberToName(colIdx + 1)
			if err != nil {
				continue
			}
			cellMap[colName] = parseValue(cellValue)
		}

		if len(cellMap) > 0 {
			result = append(result, models.CellRow{
				R: rowNum,
				C: cellMap,
			})
		}
	}

	return result
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
