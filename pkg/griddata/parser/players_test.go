package parser

import (
	"testing"

	"github.com/mfischer/griddata-go/pkg/griddata/models"
)

// stubResolver resolves cell references from a fixed table, everything
// else pending.
type stubResolver struct {
	outcomes map[string]models.Outcome
}

func (s stubResolver) Resolve(sheetName, cellRef string) models.Outcome {
	if outcome, ok := s.outcomes[cellRef]; ok {
		return outcome
	}
	return models.OutcomePending
}

func TestParsePlayersComputedTotal(t *testing.T) {
	grid := [][]models.Cell{
		cells(nil, 5, 3),
		cells("Alice", "Eagles", "Giants"),
	}
	layout := LayoutFromHeader(grid[0])
	resolver := stubResolver{outcomes: map[string]models.Outcome{"B2": models.OutcomeWin}}

	players := ParsePlayers(grid, 0, "Week 1", layout, resolver)
	if len(players) != 1 {
		t.Fatalf("Expected 1 player, got %d", len(players))
	}

	player := players[0]
	if len(player.Picks) != 2 {
		t.Fatalf("Expected 2 picks, got %d", len(player.Picks))
	}
	if player.Picks[0].Outcome != models.OutcomeWin {
		t.Errorf("pick 0 outcome = %v, expected win", player.Picks[0].Outcome)
	}
	if player.Picks[0].AwardedPoints == nil || *player.Picks[0].AwardedPoints != 5 {
		t.Errorf("pick 0 awarded = %v, expected 5", player.Picks[0].AwardedPoints)
	}
	if player.Picks[1].Outcome != models.OutcomePending {
		t.Errorf("pick 1 outcome = %v, expected pending", player.Picks[1].Outcome)
	}
	if player.Picks[1].AwardedPoints != nil {
		t.Errorf("pick 1 awarded = %v, expected nil while pending", *player.Picks[1].AwardedPoints)
	}
	// Pending picks contribute nothing, not null: the total is 5.
	if player.TotalPoints != 5 {
		t.Errorf("TotalPoints = %v, expected 5", player.TotalPoints)
	}
}

func TestParsePlayersExplicitTotalWins(t *testing.T) {
	grid := [][]models.Cell{
		cells(nil, 5, 3),
		cells("Bob", "Eagles", "Giants", 42),
	}
	layout := LayoutFromHeader(grid[0])
	resolver := stubResolver{outcomes: map[string]models.Outcome{"B2": models.OutcomeWin}}

	players := ParsePlayers(grid, 0, "Week 1", layout, resolver)
	if players[0].TotalPoints != 42.0 {
		t.Errorf("TotalPoints = %v, expected explicit 42", players[0].TotalPoints)
	}
}

func TestParsePlayersAllPendingLeavesNilTotal(t *testing.T) {
	grid := [][]models.Cell{
		cells(nil, 5, 3),
		cells("Cara", "Eagles", "Giants"),
	}
	layout := LayoutFromHeader(grid[0])

	players := ParsePlayers(grid, 0, "Week 1", layout, stubResolver{})
	if players[0].TotalPoints != nil {
		t.Errorf("TotalPoints = %v, expected nil for an untouched week", players[0].TotalPoints)
	}
}

func TestParsePlayersLossAwardsZero(t *testing.T) {
	grid := [][]models.Cell{
		cells(nil, 5),
		cells("Dan", "Eagles"),
	}
	layout := LayoutFromHeader(grid[0])
	resolver := stubResolver{outcomes: map[string]models.Outcome{"B2": models.OutcomeLoss}}

	players := ParsePlayers(grid, 0, "Week 1", layout, resolver)
	pick := players[0].Picks[0]
	if pick.AwardedPoints == nil || *pick.AwardedPoints != 0 {
		t.Errorf("awarded = %v, expected 0 for a loss", pick.AwardedPoints)
	}
	// A decided week surfaces the computed total even when it is zero.
	if players[0].TotalPoints != 0 {
		t.Errorf("TotalPoints = %v, expected 0", players[0].TotalPoints)
	}
}

func TestParsePlayersAwardedPointsInvariant(t *testing.T) {
	grid := [][]models.Cell{
		cells(nil, 5, 3, 1),
		cells("Eve", "Eagles", "Giants", "Bills"),
	}
	layout := LayoutFromHeader(grid[0])
	resolver := stubResolver{outcomes: map[string]models.Outcome{
		"B2": models.OutcomeWin,
		"C2": models.OutcomeLoss,
	}}

	players := ParsePlayers(grid, 0, "Week 1", layout, resolver)
	for _, pick := range players[0].Picks {
		switch pick.Outcome {
		case models.OutcomeWin:
			if pick.AwardedPoints == nil || *pick.AwardedPoints != pick.Points {
				t.Errorf("win pick awarded = %v, expected %d", pick.AwardedPoints, pick.Points)
			}
		case models.OutcomeLoss:
			if pick.AwardedPoints == nil || *pick.AwardedPoints != 0 {
				t.Errorf("loss pick awarded = %v, expected 0", pick.AwardedPoints)
			}
		case models.OutcomePending:
			if pick.AwardedPoints != nil {
				t.Errorf("pending pick awarded = %v, expected nil", *pick.AwardedPoints)
			}
		}
	}
}

func TestParsePlayersSkipsEmptyNames(t *testing.T) {
	grid := [][]models.Cell{
		cells(nil, 5),
		cells(nil, "Eagles"),
		cells("Alice", "Giants"),
	}
	layout := LayoutFromHeader(grid[0])

	players := ParsePlayers(grid, 0, "Week 1", layout, stubResolver{})
	if len(players) != 1 || players[0].Name != "Alice" {
		t.Errorf("Expected only Alice, got %v", players)
	}
}

func TestParsePlayersSkipsEmptyPickCells(t *testing.T) {
	grid := [][]models.Cell{
		cells(nil, 5, 3, 1),
		cells("Alice", "Eagles", nil, "Bills"),
	}
	layout := LayoutFromHeader(grid[0])

	players := ParsePlayers(grid, 0, "Week 1", layout, stubResolver{})
	if len(players[0].Picks) != 2 {
		t.Fatalf("Expected 2 picks, got %d", len(players[0].Picks))
	}
	if players[0].Picks[0].Points != 5 || players[0].Picks[1].Points != 1 {
		t.Errorf("pick points = (%d, %d), expected (5, 1)",
			players[0].Picks[0].Points, players[0].Picks[1].Points)
	}
}

func TestParseBestBetAbsent(t *testing.T) {
	grid := [][]models.Cell{
		cells(nil, 5),
		cells("Alice", "Eagles"),
	}
	layout := LayoutFromHeader(grid[0])

	players := ParsePlayers(grid, 0, "Week 1", layout, stubResolver{})
	if players[0].BestBet != nil {
		t.Errorf("Expected nil best bet, got %+v", players[0].BestBet)
	}
}

func TestParseBestBetTextLinePassesThrough(t *testing.T) {
	row := paddedRow(0, "Alice", "Eagles", nil, nil, nil, nil, "Pats", "pick em")
	grid := [][]models.Cell{
		cells(nil, 5),
		row,
	}
	layout := LayoutFromHeader(grid[0])

	players := ParsePlayers(grid, 0, "Week 1", layout, stubResolver{})
	bet := players[0].BestBet
	if bet == nil {
		t.Fatal("expected a best bet")
	}
	if bet.Time != nil {
		t.Errorf("Time = %v, expected nil", bet.Time)
	}
	if bet.Team != "Pats" {
		t.Errorf("Team = %v, expected \"Pats\"", bet.Team)
	}
	if bet.Line != "pick em" {
		t.Errorf("Line = %v, expected text passthrough", bet.Line)
	}
}
