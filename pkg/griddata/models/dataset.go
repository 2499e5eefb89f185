package models

// Standings maps player name to week name to score.
type Standings map[string]map[string]interface{}

// Dataset is the top-level JSON document produced by one extraction run.
type Dataset struct {
	// GeneratedAt is the extraction timestamp (RFC 3339, UTC).
	GeneratedAt string `json:"generatedAt"`
	// Weeks holds week records sorted by ascending week number.
	Weeks []WeekData `json:"weeks"`
	// Standings is the cross-week score table per player.
	Standings Standings `json:"standings"`
}
