package parser

import (
	"github.com/mfischer/griddata-go/pkg/griddata/models"
	"github.com/xuri/excelize/v2"
)

// OutcomeResolver classifies a pick cell by its sheet name and A1-style
// cell reference.
type OutcomeResolver interface {
	Resolve(sheetName, cellRef string) models.Outcome
}

// ParsePlayers builds player rows from the rows below the header. Rows
// whose leading cell is empty are skipped. Pick outcomes come from the
// resolver at each pick's computed cell reference. An explicit value in
// the total column is authoritative; the computed sum of awarded points
// replaces a missing total only when at least one pick has been decided
// or the sum is non-zero, so untouched future weeks keep a null total.
func ParsePlayers(grid [][]models.Cell, headerIndex int, sheetName string, layout PlayerLayout, resolver OutcomeResolver) []models.PlayerRow {
	players := make([]models.PlayerRow, 0)
	for rowIdx := headerIndex + 1; rowIdx < len(grid); rowIdx++ {
		row := grid[rowIdx]
		name := cellAt(row, 0)
		if !name.Truthy() {
			continue
		}

		picks := make([]models.Pick, 0, len(layout.Points))
		computed := 0
		decided := false
		for offset, points := range layout.Points {
			col := layout.StartColumn + offset
			cell := cellAt(row, col)
			if !cell.Truthy() {
				continue
			}
			ref, _ := excelize.CoordinatesToCellName(col+1, rowIdx+1)
			pick := models.Pick{
				Team:    cell.String(),
				Points:  points,
				Outcome: resolver.Resolve(sheetName, ref),
			}
			switch pick.Outcome {
			case models.OutcomeWin:
				awarded := points
				pick.AwardedPoints = &awarded
				computed += points
				decided = true
			case models.OutcomeLoss:
				awarded := 0
				pick.AwardedPoints = &awarded
				decided = true
			}
			picks = append(picks, pick)
		}

		var total interface{}
		if explicit := cellAt(row, layout.TotalColumn); !explicit.IsAbsent() {
			total = explicit.Value()
		} else if decided || computed != 0 {
			total = computed
		}

		players = append(players, models.PlayerRow{
			Name:        name.String(),
			Picks:       picks,
			TotalPoints: total,
			BestBet:     parseBestBet(row, layout),
		})
	}
	return players
}

// parseBestBet reads the optional trailing wager block, present only when
// at least one of its three cells holds a usable value.
func parseBestBet(row []models.Cell, layout PlayerLayout) *models.BestBet {
	timeCell := cellAt(row, layout.BestBetTimeColumn)
	teamCell := cellAt(row, layout.BestBetTeamColumn)
	lineCell := cellAt(row, layout.BestBetLineColumn)
	if !timeCell.Truthy() && !teamCell.Truthy() && !lineCell.Truthy() {
		return nil
	}
	return &models.BestBet{
		Time: textOrNil(timeCell),
		Team: teamCell.Value(),
		Line: scheduleLine(lineCell),
	}
}
