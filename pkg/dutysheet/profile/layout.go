package profile

import "github.com/ukaji3/dutysheet-go/pkg/dutysheet/models"

// Layout places row bands and column groups on a sheet.
//
// Band b covers rows [StartRow+b*RowStep, StartRow+(b+1)*RowStep). Group g
// covers GroupWidth columns starting at StartColumn+g*ColumnStep; with
// GroupWidth < ColumnStep the columns in between are skipped.
type Layout struct {
	StartRow    int `json:"start_row"`
	RowStep     int `json:"row_step"`
	StartColumn int `json:"start_column"`
	ColumnStep  int `json:"column_step"`
	GroupWidth  int `json:"group_width"`
}

// Band returns the row range of band b.
func (l Layout) Band(b int) (start, end int) {
	start = l.StartRow + b*l.RowStep
	return start, start + l.RowStep
}

// Group returns the column indexes of group g.
func (l Layout) Group(g int) []int {
	first := l.StartColumn + g*l.ColumnStep
	cols := make([]int, 0, l.GroupWidth)
	for c := first; c < first+l.GroupWidth; c++ {
		cols = append(cols, c)
	}
	return cols
}

// Segment selects column groups within one row band.
type Segment struct {
	Band   int
	Groups []int
}

// Windows enumerates the windows of the segments: band by band, groups in
// the listed order, columns left to right.
func (l Layout) Windows(segments []Segment) []models.Window {
	var ws []models.Window
	for _, seg := range segments {
		start, end := l.Band(seg.Band)
		for _, g := range seg.Groups {
			for _, c := range l.Group(g) {
				ws = append(ws, models.Window{RowStart: start, RowEnd: end, Column: c})
			}
		}
	}
	return ws
}

// offsetLayout derives the configurable layout: each group is one column
// narrower than the step, leaving a separator column.
func offsetLayout(o Offsets) Layout {
	width := o.ColumnStep - 1
	if width < 1 {
		width = 1
	}
	return Layout{
		StartRow:    o.StartRow,
		RowStep:     o.RowStep,
		StartColumn: o.StartColumn,
		ColumnStep:  o.ColumnStep,
		GroupWidth:  width,
	}
}
