package profile

import (
	"errors"
	"fmt"
)

// ErrInvalidOffsets indicates offsets that cannot describe a layout.
var ErrInvalidOffsets = errors.New("invalid offsets")

// Offsets are the adjustable layout numbers of the configurable location.
type Offsets struct {
	StartColumn int `json:"startColumn"`
	ColumnStep  int `json:"columnStep"`
	StartRow    int `json:"startRow"`
	RowStep     int `json:"rowStep"`
}

// DefaultOffsets returns the offsets used when nothing is stored.
func DefaultOffsets() Offsets {
	return Offsets{
		StartColumn: 1,
		ColumnStep:  4,
		StartRow:    0,
		RowStep:     14,
	}
}

// Validate checks that starts are non-negative and steps positive.
func (o Offsets) Validate() error {
	switch {
	case o.StartColumn < 0:
		return fmt.Errorf("%w: startColumn %d < 0", ErrInvalidOffsets, o.StartColumn)
	case o.StartRow < 0:
		return fmt.Errorf("%w: startRow %d < 0", ErrInvalidOffsets, o.StartRow)
	case o.ColumnStep < 1:
		return fmt.Errorf("%w: columnStep %d < 1", ErrInvalidOffsets, o.ColumnStep)
	case o.RowStep < 1:
		return fmt.Errorf("%w: rowStep %d < 1", ErrInvalidOffsets, o.RowStep)
	}
	return nil
}

// OffsetsPatch is a partial set of offsets; nil fields keep the base value.
type OffsetsPatch struct {
	StartColumn *int `json:"startColumn,omitempty"`
	ColumnStep  *int `json:"columnStep,omitempty"`
	StartRow    *int `json:"startRow,omitempty"`
	RowStep     *int `json:"rowStep,omitempty"`
}

// Apply returns base with the patch's non-nil fields merged over it.
func (p *OffsetsPatch) Apply(base Offsets) Offsets {
	if p == nil {
		return base
	}
	if p.StartColumn != nil {
		base.StartColumn = *p.StartColumn
	}
	if p.ColumnStep != nil {
		base.ColumnStep = *p.ColumnStep
	}
	if p.StartRow != nil {
		base.StartRow = *p.StartRow
	}
	if p.RowStep != nil {
		base.RowStep = *p.RowStep
	}
	return base
}
