// Package dutysheet renders daily duty announcements for pharmacy locations
// from a roster spreadsheet.
package dutysheet

import (
	"log/slog"

	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/parser"
	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/profile"
)

// Options configures rendering.
type Options struct {
	// Offsets overrides the configurable profile's layout.
	// If nil, profile.DefaultOffsets() is used.
	Offsets *profile.Offsets
	// BorrowMarker is stripped from every cell value.
	BorrowMarker string
	// MinBlockLength suppresses window blocks shorter than this many characters.
	MinBlockLength int
	// Logger receives warnings and failures. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns default rendering options.
func DefaultOptions() Options {
	return Options{
		BorrowMarker:   parser.DefaultBorrowMarker,
		MinBlockLength: parser.DefaultMinBlockLength,
	}
}

// ResolvedOffsets returns the offsets in effect.
func (o Options) ResolvedOffsets() profile.Offsets {
	if o.Offsets != nil {
		return *o.Offsets
	}
	return profile.DefaultOffsets()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) extractOptions() parser.ExtractOptions {
	return parser.ExtractOptions{
		BorrowMarker:   o.BorrowMarker,
		MinBlockLength: o.MinBlockLength,
		Logger:         o.logger(),
	}
}
