package profile

import (
	"errors"
	"testing"
)

func TestDefaultOffsets(t *testing.T) {
	expected := Offsets{StartColumn: 1, ColumnStep: 4, StartRow: 0, RowStep: 14}
	if got := DefaultOffsets(); got != expected {
		t.Errorf("DefaultOffsets() = %+v, expected %+v", got, expected)
	}
	if err := expected.Validate(); err != nil {
		t.Errorf("Default offsets should be valid: %v", err)
	}
}

func TestOffsetsValidate(t *testing.T) {
	tests := []Offsets{
		{StartColumn: -1, ColumnStep: 4, StartRow: 0, RowStep: 14},
		{StartColumn: 1, ColumnStep: 0, StartRow: 0, RowStep: 14},
		{StartColumn: 1, ColumnStep: 4, StartRow: -2, RowStep: 14},
		{StartColumn: 1, ColumnStep: 4, StartRow: 0, RowStep: 0},
	}
	for _, o := range tests {
		if err := o.Validate(); !errors.Is(err, ErrInvalidOffsets) {
			t.Errorf("Validate(%+v) = %v, expected ErrInvalidOffsets", o, err)
		}
	}
}

func TestOffsetsPatchApply(t *testing.T) {
	two, ten := 2, 10
	patch := &OffsetsPatch{StartColumn: &two, RowStep: &ten}

	got := patch.Apply(DefaultOffsets())
	expected := Offsets{StartColumn: 2, ColumnStep: 4, StartRow: 0, RowStep: 10}
	if got != expected {
		t.Errorf("Apply = %+v, expected %+v", got, expected)
	}

	var nilPatch *OffsetsPatch
	if got := nilPatch.Apply(DefaultOffsets()); got != DefaultOffsets() {
		t.Errorf("nil patch changed offsets: %+v", got)
	}
}

func TestLayoutGroupWidth(t *testing.T) {
	// A step of one leaves no separator column but still reads one column.
	l := offsetLayout(Offsets{StartColumn: 0, ColumnStep: 1, StartRow: 0, RowStep: 5})
	if l.GroupWidth != 1 {
		t.Errorf("Expected group width 1, got %d", l.GroupWidth)
	}
	if cols := l.Group(2); len(cols) != 1 || cols[0] != 2 {
		t.Errorf("Group(2) = %v, expected [2]", cols)
	}
}
