package parser

import (
	"errors"
	"testing"

	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/models"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		ref       string
		sheetName string
		expected  models.Area
	}{
		{"B1:B14", "", models.Area{R1: 1, C1: 2, R2: 14, C2: 2}},
		{"$A$1:$D$10", "", models.Area{R1: 1, C1: 1, R2: 10, C2: 4}},
		{"'Sheet 1'!A1:D10", "Sheet 1", models.Area{R1: 1, C1: 1, R2: 10, C2: 4}},
		{"C3", "", models.Area{R1: 3, C1: 3, R2: 3, C2: 3}},
		{"D10:A1", "", models.Area{R1: 1, C1: 1, R2: 10, C2: 4}},
	}

	for _, tt := range tests {
		sheetName, area, err := ParseRange(tt.ref)
		if err != nil {
			t.Errorf("ParseRange(%q) failed: %v", tt.ref, err)
			continue
		}
		if sheetName != tt.sheetName {
			t.Errorf("ParseRange(%q) sheet = %q, expected %q", tt.ref, sheetName, tt.sheetName)
		}
		if area != tt.expected {
			t.Errorf("ParseRange(%q) = %+v, expected %+v", tt.ref, area, tt.expected)
		}
	}
}

func TestParseRangeInvalid(t *testing.T) {
	for _, ref := range []string{"", "B", "A1:B2:C3", "1A:2B"} {
		if _, _, err := ParseRange(ref); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("ParseRange(%q) error = %v, expected ErrInvalidRange", ref, err)
		}
	}
}

func TestAreaWindows(t *testing.T) {
	area := models.Area{R1: 1, C1: 2, R2: 14, C2: 3}
	ws := area.Windows()
	expected := []models.Window{
		{RowStart: 0, RowEnd: 14, Column: 1},
		{RowStart: 0, RowEnd: 14, Column: 2},
	}
	if len(ws) != len(expected) {
		t.Fatalf("Expected %d windows, got %d", len(expected), len(ws))
	}
	for i := range ws {
		if ws[i] != expected[i] {
			t.Errorf("Window %d = %+v, expected %+v", i, ws[i], expected[i])
		}
	}
}
