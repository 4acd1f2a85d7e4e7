package dutysheet

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/models"
	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/parser"
	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/profile"
)

// Render loads one sheet of a roster file and renders the schedule of a
// location for the target day.
func Render(path, sheetName string, id profile.ID, target Target, opts Options) (*models.Schedule, error) {
	log := opts.logger()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, NewRenderError(id, sheetName, "load", fmt.Errorf("%w: %s", ErrFileNotFound, path))
	}

	table, err := parser.LoadTable(path, sheetName)
	if err != nil {
		rerr := NewRenderError(id, sheetName, "load", err)
		log.Error("failed to load sheet", "path", path, "sheet", sheetName, "profile", int(id), "error", rerr)
		return nil, rerr
	}

	return RenderTable(table, id, target, opts)
}

// RenderTable renders the schedule of a location from a loaded table.
//
// The text is the date line, the location header, then each active shift's
// label followed directly by its window blocks. A schedule whose blocks are
// all empty is still a success; see models.Schedule.Empty.
func RenderTable(t *models.Table, id profile.ID, target Target, opts Options) (*models.Schedule, error) {
	log := opts.logger()

	p, err := profile.Lookup(id)
	if err != nil {
		return nil, NewRenderError(id, t.Name, "profile", err)
	}

	offsets := opts.ResolvedOffsets()
	if p.Configurable {
		if err := offsets.Validate(); err != nil {
			return nil, NewRenderError(id, t.Name, "offsets", err)
		}
	}

	sched := &models.Schedule{
		Profile:   int(p.ID),
		Header:    p.Header,
		DateLabel: target.DateLabel(),
	}

	var b strings.Builder
	b.WriteString(sched.DateLabel)
	b.WriteString("\n")
	b.WriteString(p.Header)
	b.WriteString("\n")

	extractOpts := opts.extractOptions()
	for i, spec := range p.Shifts {
		if !spec.Active(target.Weekday()) {
			continue
		}

		text, outOfRange := parser.ExtractWindows(t, p.Windows(offsets, spec), extractOpts)
		if outOfRange {
			sched.Warnings = append(sched.Warnings, fmt.Sprintf("%s windows reach past sheet %q", spec.Shift, t.Name))
		}

		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(spec.Shift.Label())
		b.WriteString(text)

		sched.Shifts = append(sched.Shifts, models.ShiftBlock{
			Shift: string(spec.Shift),
			Label: spec.Shift.Label(),
			Text:  text,
		})
	}
	sched.Text = b.String()

	if len(sched.Warnings) > 0 {
		log.Warn("schedule rendered with out-of-range windows", "profile", int(p.ID), "sheet", t.Name, "warnings", len(sched.Warnings))
	}
	return sched, nil
}
