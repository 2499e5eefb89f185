// Package parser turns workbook sheets into typed cell grids and applies
// the pool-layout heuristics to them.
package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/mfischer/griddata-go/pkg/griddata/models"
	"github.com/xuri/excelize/v2"
)

// ExtractGrid reads a sheet into a typed cell grid. Rows and columns keep
// their zero-based sheet positions; rows may be ragged, and readers must
// treat out-of-range cells as absent.
func ExtractGrid(f *excelize.File, sheetName string) ([][]models.Cell, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	grid := make([][]models.Cell, len(rows))
	for rowIdx, row := range rows {
		cells := make([]models.Cell, len(row))
		for colIdx, value := range row {
			cells[colIdx] = ClassifyValue(value)
		}
		grid[rowIdx] = cells
	}
	return grid, nil
}

var clockLayouts = []string{"3:04 PM", "3:04PM", "15:04:05", "15:04"}

var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/06 15:04",
	"1/2/2006 15:04",
	"1/2/2006",
	"1/2/06",
	"01-02-06",
}

// ClassifyValue types a formatted cell value: blank means absent, then
// number, clock time, and calendar date are tried in order, and anything
// left is text.
func ClassifyValue(value string) models.Cell {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return models.Cell{Kind: models.KindAbsent}
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return models.Cell{Kind: models.KindNumber, Number: n}
	}
	upper := strings.ToUpper(trimmed)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, upper); err == nil {
			return models.Cell{Kind: models.KindTimeOfDay, Time: t}
		}
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return models.Cell{Kind: models.KindDateTime, Time: t}
		}
	}
	return models.Cell{Kind: models.KindText, Text: trimmed}
}

// cellAt returns the cell at col, absent when out of range.
func cellAt(row []models.Cell, col int) models.Cell {
	if col < 0 || col >= len(row) {
		return models.Cell{}
	}
	return row[col]
}

// textOrNil renders a cell as display text, nil when absent.
func textOrNil(cell models.Cell) interface{} {
	if cell.IsAbsent() {
		return nil
	}
	return cell.String()
}
