// Package profile describes the pharmacy locations and which parts of a
// roster sheet hold each location's shifts.
package profile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/models"
)

// ErrUnknownProfile indicates a location id outside the known table.
var ErrUnknownProfile = errors.New("unknown profile")

// ID identifies a location.
type ID int

const (
	// Dezhongtang is the configurable location.
	Dezhongtang ID = 1
	// Xuanjitang uses a fixed two-column-group layout.
	Xuanjitang ID = 2
	// Ninghe uses a fixed three-column-group layout.
	Ninghe ID = 3
)

// Shift is a part of the day.
type Shift string

const (
	Morning   Shift = "morning"
	Afternoon Shift = "afternoon"
	Evening   Shift = "evening"
)

// Label returns the display label for the shift.
func (s Shift) Label() string {
	switch s {
	case Morning:
		return "上午"
	case Afternoon:
		return "下午"
	case Evening:
		return "晚"
	}
	return string(s)
}

// ShiftSpec lists the segments scanned for one shift.
type ShiftSpec struct {
	Shift    Shift
	Segments []Segment
	// Weekdays restricts the shift to these target weekdays. Empty means every day.
	Weekdays []time.Weekday
}

// Active reports whether the shift is rendered for the target weekday.
func (s ShiftSpec) Active(day time.Weekday) bool {
	if len(s.Weekdays) == 0 {
		return true
	}
	for _, d := range s.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// Profile is the fixed identity and layout rules for one location.
type Profile struct {
	ID     ID
	Name   string
	Header string
	// Configurable is set when the layout comes from Offsets.
	Configurable bool
	// Fixed is the layout used when the profile is not configurable.
	Fixed  Layout
	Shifts []ShiftSpec
}

// Layout resolves the profile layout; offsets only matter for the
// configurable profile.
func (p *Profile) Layout(o Offsets) Layout {
	if p.Configurable {
		return offsetLayout(o)
	}
	return p.Fixed
}

// Windows returns the windows of one shift in concatenation order.
func (p *Profile) Windows(o Offsets, s ShiftSpec) []models.Window {
	return p.Layout(o).Windows(s.Segments)
}

// Locations is the profile table, in id order.
var Locations = []Profile{
	{
		ID:           Dezhongtang,
		Name:         "德众堂",
		Header:       "【德众堂】宝山区新沪路1073号",
		Configurable: true,
		Shifts: []ShiftSpec{
			{Shift: Morning, Segments: []Segment{
				{Band: 0, Groups: []int{0, 1, 2}},
				{Band: 1, Groups: []int{0}},
			}},
			{Shift: Afternoon, Segments: []Segment{
				{Band: 1, Groups: []int{0, 1, 2}},
			}},
			{Shift: Evening, Weekdays: []time.Weekday{time.Tuesday}, Segments: []Segment{
				{Band: 2, Groups: []int{0, 1}},
			}},
		},
	},
	{
		ID:     Xuanjitang,
		Name:   "轩济堂",
		Header: "【轩济堂】顾村镇菊泉街675号4幢2楼",
		Fixed:  Layout{StartRow: 0, RowStep: 7, StartColumn: 0, ColumnStep: 3, GroupWidth: 3},
		Shifts: []ShiftSpec{
			{Shift: Morning, Segments: []Segment{
				{Band: 0, Groups: []int{0, 1}},
				{Band: 1, Groups: []int{0, 1}},
			}},
			{Shift: Afternoon, Segments: []Segment{
				{Band: 2, Groups: []int{0, 1}},
				{Band: 3, Groups: []int{0, 1}},
			}},
		},
	},
	{
		ID:     Ninghe,
		Name:   "宁合中医",
		Header: "【宁合中医】灵石路健康智谷7号楼2楼",
		Fixed:  Layout{StartRow: 0, RowStep: 14, StartColumn: 1, ColumnStep: 4, GroupWidth: 3},
		Shifts: []ShiftSpec{
			{Shift: Morning, Segments: []Segment{
				{Band: 0, Groups: []int{0, 1, 2}},
				{Band: 1, Groups: []int{0}},
			}},
			{Shift: Afternoon, Segments: []Segment{
				{Band: 1, Groups: []int{0, 1, 2}},
			}},
		},
	},
}

// Lookup returns the profile with the given id.
func Lookup(id ID) (*Profile, error) {
	for i := range Locations {
		if Locations[i].ID == id {
			return &Locations[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownProfile, int(id))
}

// ParseID parses a location id such as "1".
func ParseID(s string) (ID, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownProfile, s)
	}
	if _, err := Lookup(ID(n)); err != nil {
		return 0, err
	}
	return ID(n), nil
}
