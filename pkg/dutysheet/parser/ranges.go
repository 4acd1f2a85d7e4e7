package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/models"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidRange indicates a malformed A1 range reference.
var ErrInvalidRange = errors.New("invalid range")

// ParseRange parses a reference such as "B1:B14", "$A$1:$D$10" or
// "'Sheet 1'!A1:D10". A single cell ("C3") is a one-cell area. The sheet
// prefix, if any, is returned alongside the area.
func ParseRange(ref string) (string, models.Area, error) {
	ref = strings.TrimSpace(ref)

	var sheetName string
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheetName = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}

	area, ok := parseRangeToArea(ref)
	if !ok {
		return "", models.Area{}, fmt.Errorf("%w: %q", ErrInvalidRange, ref)
	}
	return sheetName, area, nil
}

// parseRangeToArea parses a range string like $A$1:$D$10.
func parseRangeToArea(rangeStr string) (models.Area, bool) {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.Area{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Area{}, false
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Area{}, false
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return models.Area{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, true
}
