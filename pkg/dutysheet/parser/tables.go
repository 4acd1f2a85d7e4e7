package parser

import (
	"fmt"

	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/models"
	"github.com/xuri/excelize/v2"
)

// DataRange returns the bounding range of non-empty cells (e.g. "A1:L42"),
// or "" for a sheet with no values.
func DataRange(t *models.Table) string {
	minRow, maxRow, minCol, maxCol := findDataBounds(t.Rows)
	if minRow < 0 {
		return ""
	}

	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// CountValues counts the non-empty cells of a table.
func CountValues(t *models.Table) int {
	minRow, maxRow, minCol, maxCol := findDataBounds(t.Rows)
	if minRow < 0 {
		return 0
	}
	return countNonEmptyCells(t.Rows, minRow, maxRow, minCol, maxCol)
}

// findDataBounds returns the zero-based box around every cell that holds a
// value. Placeholders such as "nan" or "#N/A" do not widen it, so the box
// matches what window extraction would read. All four bounds are -1 for a
// sheet without values.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if IsMissing(cell) {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts the duty entries inside the box, skipping the
// same placeholders as findDataBounds. Ragged rows end early.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if !IsMissing(row[colIdx]) {
				count++
			}
		}
	}
	return count
}
