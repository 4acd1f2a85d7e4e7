package dutysheet

import (
	"fmt"
	"time"
)

// weekdayNames is Monday-first.
var weekdayNames = [7]string{"星期一", "星期二", "星期三", "星期四", "星期五", "星期六", "星期日"}

// Target is the day a schedule is rendered for.
type Target struct {
	Date time.Time
}

// Tomorrow returns the target for the day after now, in now's location.
func Tomorrow(now time.Time) Target {
	return Target{Date: now.AddDate(0, 0, 1)}
}

// ParseTarget parses a YYYY-MM-DD date in loc.
func ParseTarget(s string, loc *time.Location) (Target, error) {
	d, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return Target{}, fmt.Errorf("parse target date %q: %w", s, err)
	}
	return Target{Date: d}, nil
}

// Weekday returns the target weekday.
func (t Target) Weekday() time.Weekday {
	return t.Date.Weekday()
}

// WeekdayLabel returns the local weekday name, e.g. "星期二".
func (t Target) WeekdayLabel() string {
	// time.Weekday is Sunday-first.
	return weekdayNames[(int(t.Date.Weekday())+6)%7]
}

// DateLabel formats the date line, e.g. "10月20日   星期二".
func (t Target) DateLabel() string {
	return fmt.Sprintf("%02d月%02d日   %s", int(t.Date.Month()), t.Date.Day(), t.WeekdayLabel())
}
