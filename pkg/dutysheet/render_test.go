package dutysheet

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/models"
	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/profile"
	"github.com/xuri/excelize/v2"
)

func quietOptions() Options {
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return opts
}

// grid builds a numRows x numCols table with the given cells set.
func grid(numRows, numCols int, cells map[[2]int]string) *models.Table {
	rows := make([][]string, numRows)
	for r := range rows {
		rows[r] = make([]string, numCols)
	}
	for pos, v := range cells {
		rows[pos[0]][pos[1]] = v
	}
	return &models.Table{Name: "Sheet1", Rows: rows}
}

func date(t *testing.T, s string) Target {
	t.Helper()
	target, err := ParseTarget(s, time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	return target
}

func TestRenderTableEveningOnTuesday(t *testing.T) {
	table := grid(42, 12, map[[2]int]string{
		{0, 1}:  "王医生(中医内科)",
		{14, 5}: "李药师(西药调剂)",
		{28, 1}: "张药师(晚班值守)",
	})

	sched, err := RenderTable(table, profile.Dezhongtang, date(t, "2026-10-20"), quietOptions())
	if err != nil {
		t.Fatalf("RenderTable failed: %v", err)
	}

	expected := "10月20日   星期二\n" +
		"【德众堂】宝山区新沪路1073号\n" +
		"上午\n王医生(中医内科)\n" +
		"\n下午\n李药师(西药调剂)\n" +
		"\n晚\n张药师(晚班值守)\n"
	if sched.Text != expected {
		t.Errorf("Text = %q, expected %q", sched.Text, expected)
	}
	if len(sched.Shifts) != 3 {
		t.Errorf("Expected 3 shifts, got %d", len(sched.Shifts))
	}
	if len(sched.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", sched.Warnings)
	}

	monday, err := RenderTable(table, profile.Dezhongtang, date(t, "2026-10-19"), quietOptions())
	if err != nil {
		t.Fatalf("RenderTable failed: %v", err)
	}
	if len(monday.Shifts) != 2 {
		t.Errorf("Expected 2 shifts on Monday, got %d", len(monday.Shifts))
	}
	if strings.Contains(monday.Text, "晚") {
		t.Errorf("Monday text should not contain the evening block: %q", monday.Text)
	}
	if !strings.HasPrefix(monday.Text, "10月19日   星期一\n") {
		t.Errorf("Unexpected date line: %q", monday.Text)
	}
}

func TestRenderTableCustomOffsets(t *testing.T) {
	table := grid(42, 12, map[[2]int]string{
		{1, 8}:  "赵药师(中药调剂)",
		{0, 11}: "钱医生(针灸推拿)",
	})
	monday := date(t, "2026-10-19")

	defaults, err := RenderTable(table, profile.Dezhongtang, monday, quietOptions())
	if err != nil {
		t.Fatalf("RenderTable failed: %v", err)
	}
	if !strings.Contains(defaults.Text, "钱医生") || strings.Contains(defaults.Text, "赵药师") {
		t.Errorf("Default offsets picked the wrong cells: %q", defaults.Text)
	}

	opts := quietOptions()
	opts.Offsets = &profile.Offsets{StartColumn: 2, ColumnStep: 3, StartRow: 1, RowStep: 10}
	custom, err := RenderTable(table, profile.Dezhongtang, monday, opts)
	if err != nil {
		t.Fatalf("RenderTable failed: %v", err)
	}
	if !strings.Contains(custom.Text, "赵药师") || strings.Contains(custom.Text, "钱医生") {
		t.Errorf("Custom offsets picked the wrong cells: %q", custom.Text)
	}
}

func TestRenderTableFixedProfileIgnoresOffsets(t *testing.T) {
	table := grid(28, 6, map[[2]int]string{
		{0, 0}: "王医生(中医内科)",
	})
	opts := quietOptions()
	opts.Offsets = &profile.Offsets{StartColumn: 4, ColumnStep: 2, StartRow: 3, RowStep: 2}

	sched, err := RenderTable(table, profile.Xuanjitang, date(t, "2026-10-20"), opts)
	if err != nil {
		t.Fatalf("RenderTable failed: %v", err)
	}
	expected := "10月20日   星期二\n【轩济堂】顾村镇菊泉街675号4幢2楼\n上午\n王医生(中医内科)\n\n下午"
	if sched.Text != expected {
		t.Errorf("Text = %q, expected %q", sched.Text, expected)
	}
	if len(sched.Shifts) != 2 {
		t.Errorf("Expected 2 shifts, got %d", len(sched.Shifts))
	}
}

func TestRenderTableEmptyAndOutOfRange(t *testing.T) {
	sched, err := RenderTable(grid(3, 3, nil), profile.Ninghe, date(t, "2026-10-20"), quietOptions())
	if err != nil {
		t.Fatalf("RenderTable failed: %v", err)
	}
	if !sched.Empty() {
		t.Errorf("Expected empty schedule, got %+v", sched.Shifts)
	}
	if len(sched.Warnings) == 0 {
		t.Error("Expected out-of-range warnings for a 3x3 sheet")
	}
	// Every window runs off the sheet and keeps only its leading newline:
	// 12 morning windows and 9 afternoon windows.
	expected := "10月20日   星期二\n【宁合中医】灵石路健康智谷7号楼2楼\n" +
		"上午" + strings.Repeat("\n", 12) +
		"\n下午" + strings.Repeat("\n", 9)
	if sched.Text != expected {
		t.Errorf("Text = %q, expected %q", sched.Text, expected)
	}
}

func TestRenderTableErrors(t *testing.T) {
	table := grid(1, 1, nil)
	target := date(t, "2026-10-20")

	_, err := RenderTable(table, profile.ID(4), target, quietOptions())
	var rerr *RenderError
	if !errors.As(err, &rerr) || rerr.Stage != "profile" {
		t.Errorf("Expected profile RenderError, got %v", err)
	}
	if !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("Expected ErrUnknownProfile, got %v", err)
	}

	opts := quietOptions()
	opts.Offsets = &profile.Offsets{StartColumn: 1, ColumnStep: 4, StartRow: 0, RowStep: 0}
	_, err = RenderTable(table, profile.Dezhongtang, target, opts)
	if !errors.Is(err, ErrInvalidOffsets) {
		t.Errorf("Expected ErrInvalidOffsets, got %v", err)
	}

	// Fixed layouts do not validate offsets.
	if _, err := RenderTable(table, profile.Xuanjitang, target, opts); err != nil {
		t.Errorf("Fixed profile should ignore offsets, got %v", err)
	}
}

func writeRoster(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "周二"); err != nil {
		t.Fatalf("Failed to rename sheet: %v", err)
	}
	if _, err := f.NewSheet("周三"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}

	f.SetCellValue("周二", "A1", "王医生(中医内科)")
	f.SetCellValue("周二", "D15", "借李药师(西药调剂)")
	f.SetCellValue("周二", "F28", "x")
	f.SetCellValue("周三", "A1", "孙医生(骨伤推拿)")

	path := filepath.Join(t.TempDir(), "roster.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestRender(t *testing.T) {
	path := writeRoster(t)

	sched, err := Render(path, "周二", profile.Xuanjitang, date(t, "2026-10-20"), quietOptions())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expected := "10月20日   星期二\n" +
		"【轩济堂】顾村镇菊泉街675号4幢2楼\n" +
		"上午\n王医生(中医内科)\n" +
		"\n下午\n李药师(西药调剂)\n"
	if sched.Text != expected {
		t.Errorf("Text = %q, expected %q", sched.Text, expected)
	}
	if len(sched.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", sched.Warnings)
	}

	other, err := Render(path, "周三", profile.Xuanjitang, date(t, "2026-10-20"), quietOptions())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(other.Text, "孙医生") || strings.Contains(other.Text, "王医生") {
		t.Errorf("Render read the wrong sheet: %q", other.Text)
	}
}

func TestRenderErrors(t *testing.T) {
	target := date(t, "2026-10-20")

	_, err := Render(filepath.Join(t.TempDir(), "missing.xlsx"), "周二", profile.Dezhongtang, target, quietOptions())
	var rerr *RenderError
	if !errors.As(err, &rerr) || rerr.Stage != "load" {
		t.Errorf("Expected load RenderError, got %v", err)
	}
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}

	path := writeRoster(t)
	_, err = Render(path, "周日", profile.Dezhongtang, target, quietOptions())
	if !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("Expected ErrSheetNotFound, got %v", err)
	}
}

// writeFullRoster fills columns A-F of rows 1-28 on three sheets with
// values naming their sheet, row and column.
func writeFullRoster(t *testing.T, sheets ...string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				t.Fatalf("Failed to rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			t.Fatalf("Failed to add sheet: %v", err)
		}
		for row := 0; row < 28; row++ {
			for col := 0; col < 6; col++ {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+1)
				f.SetCellValue(sheet, cell, rosterValue(sheet, row, col))
			}
		}
	}

	path := filepath.Join(t.TempDir(), "full.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func rosterValue(sheet string, row, col int) string {
	return fmt.Sprintf("%s-R%02d-C%d", sheet, row, col)
}

func TestRenderFullRosterOrder(t *testing.T) {
	sheets := []string{"周一", "周二", "周三"}
	path := writeFullRoster(t, sheets...)

	sched, err := Render(path, "周二", profile.Xuanjitang, date(t, "2026-10-20"), quietOptions())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(sched.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", sched.Warnings)
	}

	text := sched.Text
	morningAt := strings.Index(text, "上午")
	afternoonAt := strings.Index(text, "\n下午")
	if morningAt < 0 || afternoonAt < morningAt {
		t.Fatalf("Shift labels missing or out of order: %q", text)
	}

	// Bands of 7 rows, column groups A-C then D-F, columns left to right.
	last := morningAt
	for band := 0; band < 4; band++ {
		for col := 0; col < 6; col++ {
			for row := band * 7; row < (band+1)*7; row++ {
				value := rosterValue("周二", row, col)
				at := strings.Index(text, value)
				if at < 0 {
					t.Fatalf("%s missing from %q", value, text)
				}
				if at <= last {
					t.Errorf("%s at %d, expected after %d", value, at, last)
				}
				if band < 2 && at > afternoonAt {
					t.Errorf("Morning value %s after the afternoon label", value)
				}
				if band >= 2 && at < afternoonAt {
					t.Errorf("Afternoon value %s before the afternoon label", value)
				}
				last = at
			}
		}
	}

	for _, other := range []string{"周一", "周三"} {
		if strings.Contains(text, other+"-") {
			t.Errorf("Values from sheet %s leaked into %q", other, text)
		}
	}
}
