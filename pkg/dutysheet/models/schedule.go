package models

import "strings"

// ShiftBlock is the extracted text of one shift.
type ShiftBlock struct {
	// Shift is the shift key: "morning", "afternoon" or "evening".
	Shift string `json:"shift"`
	// Label is the display label prepended to the block.
	Label string `json:"label"`
	// Text is the concatenation of all window extractions for the shift.
	Text string `json:"text"`
}

// Schedule is a rendered duty announcement for one location.
type Schedule struct {
	// Profile is the location id (1, 2 or 3).
	Profile int `json:"profile"`
	// Header is the location name and address line.
	Header string `json:"header"`
	// DateLabel is the target date line, e.g. "10月20日   星期二".
	DateLabel string `json:"date_label"`
	// Shifts holds the rendered blocks in display order.
	Shifts []ShiftBlock `json:"shifts"`
	// Text is the full announcement.
	Text string `json:"text"`
	// Warnings lists windows that reached past the sheet bounds.
	Warnings []string `json:"warnings,omitempty"`
}

// Empty reports whether no shift produced any text. Blocks cut short at the
// sheet edge may hold only newlines; those count as empty.
func (s *Schedule) Empty() bool {
	for _, b := range s.Shifts {
		if strings.TrimSpace(b.Text) != "" {
			return false
		}
	}
	return true
}
