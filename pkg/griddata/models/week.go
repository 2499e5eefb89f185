package models

// Outcome classifies a pick as won, lost, or not yet decided.
type Outcome string

const (
	// OutcomeWin marks a pick whose game has been won.
	OutcomeWin Outcome = "win"
	// OutcomeLoss marks a pick whose game has been lost.
	OutcomeLoss Outcome = "loss"
	// OutcomePending marks a pick whose game is undecided.
	OutcomePending Outcome = "pending"
)

// Pick is one confidence-point selection made by a player.
type Pick struct {
	// Team is the picked team.
	Team string `json:"team"`
	// Points is the confidence value staked on the pick.
	Points int `json:"points"`
	// Outcome is the win/loss/pending classification of the pick.
	Outcome Outcome `json:"outcome"`
	// AwardedPoints equals Points for a win, 0 for a loss, nil while pending.
	AwardedPoints *int `json:"awarded_points"`
}

// BestBet is a player's optional single high-confidence wager, kept
// outside the confidence-point grid.
type BestBet struct {
	// Time is the kickoff time, normalized to HH:MM when parseable.
	Time interface{} `json:"time"`
	// Team is the wagered team.
	Team interface{} `json:"team"`
	// Line is the betting line, numeric when the source cell is numeric.
	Line interface{} `json:"line"`
}

// PlayerRow is one player's parsed picks for a single week.
type PlayerRow struct {
	// Name is the player name from the leading column.
	Name string `json:"name"`
	// Picks are the populated confidence-point selections in column order.
	Picks []Pick `json:"picks"`
	// TotalPoints is the explicit sheet total when present, otherwise the
	// computed sum of awarded points, otherwise nil.
	TotalPoints interface{} `json:"total_points"`
	// BestBet is present only when the trailing wager block holds a value.
	BestBet *BestBet `json:"best_bet"`
}

// ScheduleEntry is one game assembled from two consecutive rows of a
// schedule column group: the favorite half first, then the opponent half.
type ScheduleEntry struct {
	Team         string      `json:"team"`
	Line         interface{} `json:"line"`
	Date         interface{} `json:"date"`
	Opponent     string      `json:"opponent"`
	Time         interface{} `json:"time"`
	OpponentLine interface{} `json:"opponent_line"`
}

// WeekData holds everything extracted from one "Week N" sheet.
type WeekData struct {
	Name             string          `json:"name"`
	Players          []PlayerRow     `json:"players"`
	Schedule         []ScheduleEntry `json:"schedule"`
	ConfidencePoints []int           `json:"confidence_points"`
}
