package store

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/profile"
)

func newTestStore(t *testing.T) *OffsetStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config", "dezhongtang.json")
	return NewOffsetStore(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)
	if got := s.Load(); got != profile.DefaultOffsets() {
		t.Errorf("Expected defaults, got %+v", got)
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := newTestStore(t)
	expected := profile.Offsets{StartColumn: 5, ColumnStep: 2, StartRow: 3, RowStep: 8}

	if err := s.Save(expected); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got := s.Load(); got != expected {
		t.Errorf("Load() = %+v, expected %+v", got, expected)
	}

	if _, err := os.Stat(s.Path() + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Temporary file left behind: %v", err)
	}

	// A second store on the same file sees the saved values.
	other := NewOffsetStore(s.Path(), nil)
	if got := other.Load(); got != expected {
		t.Errorf("Reopened Load() = %+v, expected %+v", got, expected)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	s := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(s.Path()), 0755); err != nil {
		t.Fatal(err)
	}

	tests := []string{
		`{"startColumn": `,
		`not json`,
		`{"rowStep": 0}`,
		`{"startColumn": "two"}`,
	}
	for _, content := range tests {
		if err := os.WriteFile(s.Path(), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if got := s.Load(); got != profile.DefaultOffsets() {
			t.Errorf("Load(%q) = %+v, expected defaults", content, got)
		}
	}
}

func TestLoadPartialFile(t *testing.T) {
	s := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(s.Path()), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.Path(), []byte(`{"startRow": 2}`), 0644); err != nil {
		t.Fatal(err)
	}

	expected := profile.DefaultOffsets()
	expected.StartRow = 2
	if got := s.Load(); got != expected {
		t.Errorf("Load() = %+v, expected %+v", got, expected)
	}
}

func TestSaveInvalid(t *testing.T) {
	s := newTestStore(t)
	err := s.Save(profile.Offsets{StartColumn: 1, ColumnStep: 0, StartRow: 0, RowStep: 14})
	if !errors.Is(err, profile.ErrInvalidOffsets) {
		t.Errorf("Expected ErrInvalidOffsets, got %v", err)
	}
	if _, err := os.Stat(s.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Invalid offsets should not be written: %v", err)
	}
}
