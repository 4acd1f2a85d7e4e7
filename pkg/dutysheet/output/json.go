// Package output serializes extraction results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/models"
)

// ToJSON serializes a rendered schedule.
func ToJSON(s *models.Schedule, pretty bool) ([]byte, error) {
	return marshal(s, pretty)
}

// WorkbookToJSON serializes a workbook summary.
func WorkbookToJSON(wb *models.WorkbookInfo, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// PreviewToJSON serializes a sheet preview.
func PreviewToJSON(p *models.SheetPreview, pretty bool) ([]byte, error) {
	return marshal(p, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
