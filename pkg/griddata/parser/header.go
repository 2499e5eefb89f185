package parser

import "github.com/mfischer/griddata-go/pkg/griddata/models"

// DetectHeaderRow locates the confidence-point header row: the first row
// whose leading cell is absent and which carries at least two numeric
// cells, which separates a point-value header from incidental numeric
// data. When no row qualifies, the first row containing any numeric cell
// is used. Returns false when the sheet holds no numeric content at all.
func DetectHeaderRow(grid [][]models.Cell) (int, bool) {
	for idx, row := range grid {
		if len(row) == 0 || !row[0].IsAbsent() {
			continue
		}
		if countNumeric(row) >= 2 {
			return idx, true
		}
	}
	for idx, row := range grid {
		if countNumeric(row) > 0 {
			return idx, true
		}
	}
	return 0, false
}

func countNumeric(row []models.Cell) int {
	count := 0
	for _, cell := range row {
		if cell.IsNumber() {
			count++
		}
	}
	return count
}

// ConfidenceColumns returns the start column of the confidence-point run
// and the point values in column order. The run is the maximal contiguous
// numeric streak beginning at the first numeric header cell. The start
// defaults to column 1 when the header carries no numbers, keeping the
// downstream column math defined.
func ConfidenceColumns(header []models.Cell) (int, []int) {
	start := -1
	var points []int
	for idx, cell := range header {
		if cell.IsNumber() {
			if start < 0 {
				start = idx
			}
			points = append(points, int(cell.Number))
		} else if start >= 0 {
			break
		}
	}
	if start < 0 {
		start = 1
	}
	return start, points
}

// PlayerLayout fixes the column positions the player parser reads from,
// all derived from one header row.
type PlayerLayout struct {
	// StartColumn is the first confidence-point column.
	StartColumn int
	// Points are the confidence values, positionally aligned with columns.
	Points []int
	// TotalColumn holds the sheet's explicit weekly total.
	TotalColumn int
	// BestBetTimeColumn, BestBetTeamColumn, and BestBetLineColumn hold the
	// optional trailing wager block.
	BestBetTimeColumn int
	BestBetTeamColumn int
	BestBetLineColumn int
}

// LayoutFromHeader derives the player-row column layout from a header row.
// The best-bet block sits three columns past the total column.
func LayoutFromHeader(header []models.Cell) PlayerLayout {
	start, points := ConfidenceColumns(header)
	total := start + len(points)
	timeCol := total + 3
	return PlayerLayout{
		StartColumn:       start,
		Points:            points,
		TotalColumn:       total,
		BestBetTimeColumn: timeCol,
		BestBetTeamColumn: timeCol + 1,
		BestBetLineColumn: timeCol + 2,
	}
}
