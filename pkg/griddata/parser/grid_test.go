package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mfischer/griddata-go/pkg/griddata/models"
	"github.com/xuri/excelize/v2"
)

// cellOf builds a typed cell from a convenient literal. Strings go
// through ClassifyValue, so "1:00 PM" becomes a clock time and "" an
// absent cell, matching what ExtractGrid would produce.
func cellOf(v interface{}) models.Cell {
	switch t := v.(type) {
	case nil:
		return models.Cell{Kind: models.KindAbsent}
	case int:
		return models.Cell{Kind: models.KindNumber, Number: float64(t)}
	case float64:
		return models.Cell{Kind: models.KindNumber, Number: t}
	case time.Time:
		return models.Cell{Kind: models.KindDateTime, Time: t}
	case models.Cell:
		return t
	case string:
		return ClassifyValue(t)
	}
	return models.Cell{}
}

func cells(values ...interface{}) []models.Cell {
	row := make([]models.Cell, len(values))
	for i, v := range values {
		row[i] = cellOf(v)
	}
	return row
}

// paddedRow places the tail cells starting at col, leaving everything
// before them absent.
func paddedRow(col int, tail ...interface{}) []models.Cell {
	row := make([]models.Cell, col+len(tail))
	for i, v := range tail {
		row[col+i] = cellOf(v)
	}
	return row
}

func tod(hour, minute int) models.Cell {
	return models.Cell{Kind: models.KindTimeOfDay, Time: time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC)}
}

func TestClassifyValue(t *testing.T) {
	tests := []struct {
		input string
		kind  models.CellKind
	}{
		{"", models.KindAbsent},
		{"   ", models.KindAbsent},
		{"123", models.KindNumber},
		{"-3.5", models.KindNumber},
		{"1:00 PM", models.KindTimeOfDay},
		{"1:00 pm", models.KindTimeOfDay},
		{"13:00", models.KindTimeOfDay},
		{"2025-09-07", models.KindDateTime},
		{"9/7/25 13:00", models.KindDateTime},
		{"9/7", models.KindText},
		{"Eagles", models.KindText},
		{"Total", models.KindText},
	}

	for _, tt := range tests {
		got := ClassifyValue(tt.input)
		if got.Kind != tt.kind {
			t.Errorf("ClassifyValue(%q).Kind = %v, expected %v", tt.input, got.Kind, tt.kind)
		}
	}
}

func TestClassifyValueNormalizesClockTimes(t *testing.T) {
	got := ClassifyValue("1:00 PM")
	if got.String() != "13:00" {
		t.Errorf("ClassifyValue(\"1:00 PM\").String() = %q, expected \"13:00\"", got.String())
	}
}

func TestClassifyValueNumber(t *testing.T) {
	got := ClassifyValue("-3.5")
	if got.Number != -3.5 {
		t.Errorf("ClassifyValue(\"-3.5\").Number = %v, expected -3.5", got.Number)
	}
}

func TestExtractGrid(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Player")
	f.SetCellValue(sheetName, "B1", 5)
	f.SetCellValue(sheetName, "A2", "Alice")
	f.SetCellValue(sheetName, "B2", "Eagles")
	f.SetCellValue(sheetName, "C2", -3.5)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	grid, err := ExtractGrid(f2, sheetName)
	if err != nil {
		t.Fatalf("ExtractGrid failed: %v", err)
	}

	if len(grid) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(grid))
	}
	if grid[0][0].Text != "Player" {
		t.Errorf("Expected 'Player', got %v", grid[0][0])
	}
	if !grid[0][1].IsNumber() || grid[0][1].Number != 5 {
		t.Errorf("Expected number 5, got %v", grid[0][1])
	}
	if grid[1][2].Number != -3.5 {
		t.Errorf("Expected -3.5, got %v", grid[1][2])
	}
}

func TestCellAtOutOfRange(t *testing.T) {
	row := cells("Alice", 5)
	if !cellAt(row, 7).IsAbsent() {
		t.Error("Expected out-of-range cell to be absent")
	}
	if !cellAt(row, -1).IsAbsent() {
		t.Error("Expected negative column to be absent")
	}
}
