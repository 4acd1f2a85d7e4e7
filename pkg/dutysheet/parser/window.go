package parser

import (
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/models"
)

// DefaultBorrowMarker is the "on loan" token removed from every cell.
const DefaultBorrowMarker = "借"

// DefaultMinBlockLength is the smallest accumulated block, counted in
// characters including the leading newline, that is kept.
const DefaultMinBlockLength = 10

// missingValues are cell texts that mean "no value" in exported rosters.
var missingValues = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

// ExtractOptions configures window extraction.
type ExtractOptions struct {
	// BorrowMarker is stripped from every cell value.
	BorrowMarker string
	// MinBlockLength suppresses blocks shorter than this many characters.
	MinBlockLength int
	// Logger receives out-of-range warnings. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultExtractOptions returns default extraction options.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		BorrowMarker:   DefaultBorrowMarker,
		MinBlockLength: DefaultMinBlockLength,
	}
}

// WindowText is the result of extracting one window.
type WindowText struct {
	// Text is the block text, or "" when suppressed.
	Text string
	// OutOfRange is set when the window reached past the table and the
	// remaining rows were skipped.
	OutOfRange bool
}

// IsMissing reports whether a cell text counts as empty.
func IsMissing(s string) bool {
	return missingValues[s]
}

// ExtractWindow concatenates the non-empty cells of a window, one per line,
// after a leading newline. Blocks shorter than MinBlockLength come back
// empty. A read past the table stops the scan and returns what was gathered
// so far, without the length check.
func ExtractWindow(t *models.Table, w models.Window, opts ExtractOptions) WindowText {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	var b strings.Builder
	b.WriteString("\n")

	result := WindowText{}
	if w.RowStart < 0 || w.RowEnd < w.RowStart {
		log.Warn("invalid window", "sheet", t.Name, "row_start", w.RowStart, "row_end", w.RowEnd, "column", w.Column)
		result.OutOfRange = true
		return result
	}

	for row := w.RowStart; row < w.RowEnd; row++ {
		value, err := t.Cell(row, w.Column)
		if err != nil {
			var oor *models.OutOfRangeError
			if errors.As(err, &oor) {
				log.Warn("window reads past sheet bounds", "sheet", t.Name, "window", w, "error", err)
				result.OutOfRange = true
				result.Text = b.String()
				return result
			}
			log.Error("failed to read cell", "sheet", t.Name, "row", row, "column", w.Column, "error", err)
			break
		}
		if IsMissing(value) {
			continue
		}
		if opts.BorrowMarker != "" {
			value = strings.ReplaceAll(value, opts.BorrowMarker, "")
		}
		b.WriteString(value)
		b.WriteString("\n")
	}

	text := b.String()
	if utf8.RuneCountInString(text) < opts.MinBlockLength {
		return result
	}
	result.Text = text
	return result
}

// ExtractWindows runs ExtractWindow over ws in order and concatenates the
// results. It reports whether any window went out of range.
func ExtractWindows(t *models.Table, ws []models.Window, opts ExtractOptions) (string, bool) {
	var b strings.Builder
	outOfRange := false
	for _, w := range ws {
		res := ExtractWindow(t, w, opts)
		b.WriteString(res.Text)
		outOfRange = outOfRange || res.OutOfRange
	}
	return b.String(), outOfRange
}
