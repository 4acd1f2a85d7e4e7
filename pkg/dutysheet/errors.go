package dutysheet

import (
	"errors"
	"fmt"

	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/parser"
	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/profile"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// Re-exported so callers need only this package for errors.Is checks.
var (
	ErrUnsupportedFormat = parser.ErrUnsupportedFormat
	ErrSheetNotFound     = parser.ErrSheetNotFound
	ErrUnknownProfile    = profile.ErrUnknownProfile
	ErrInvalidOffsets    = profile.ErrInvalidOffsets
)

// RenderError represents a failure while rendering a schedule.
type RenderError struct {
	Profile   profile.ID
	SheetName string
	Stage     string // "profile", "offsets", "load"
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error for profile %d sheet %q (%s): %v", e.Profile, e.SheetName, e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(id profile.ID, sheetName, stage string, err error) *RenderError {
	return &RenderError{
		Profile:   id,
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
