package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mfischer/griddata-go/pkg/griddata/models"
)

// ErrNoPlayerColumn indicates the standings sheet lacks a Player column.
var ErrNoPlayerColumn = errors.New("unable to locate Player column in standings")

// ParseStandings reads the cross-week standings table. The first row must
// contain a "Player" column; columns whose caption starts with "Week"
// carry scores. Rows without a text player name are skipped, and only
// populated score cells are recorded.
func ParseStandings(grid [][]models.Cell) (models.Standings, error) {
	standings := models.Standings{}
	if len(grid) == 0 {
		return standings, nil
	}

	header := grid[0]
	playerCol := -1
	weekCols := make(map[string]int)
	for idx, cell := range header {
		if cell.Kind != models.KindText {
			continue
		}
		if cell.Text == "Player" {
			playerCol = idx
		}
		if strings.HasPrefix(cell.Text, "Week") {
			weekCols[cell.Text] = idx
		}
	}
	if playerCol < 0 {
		return nil, fmt.Errorf("standings header: %w", ErrNoPlayerColumn)
	}

	for _, row := range grid[1:] {
		player := cellAt(row, playerCol)
		if player.Kind != models.KindText {
			continue
		}
		scores := make(map[string]interface{})
		for week, col := range weekCols {
			if cell := cellAt(row, col); !cell.IsAbsent() {
				scores[week] = cell.Value()
			}
		}
		standings[player.Text] = scores
	}
	return standings, nil
}
