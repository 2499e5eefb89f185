// Package griddata extracts structured football-pool data from a
// loosely-structured confidence-pool workbook.
package griddata

import "go.uber.org/zap"

// DefaultWinColor and DefaultLossColor are the fill colors the observed
// workbook family uses to mark decided picks.
const (
	DefaultWinColor  = "FF92D050"
	DefaultLossColor = "FFFF0000"
)

// DefaultScheduleColumn is the zero-based column the schedule detector
// falls back to when no row matches the start predicate.
const DefaultScheduleColumn = 8

// DefaultHeaderTokens lists the column captions that must never be read
// as schedule data.
func DefaultHeaderTokens() []string {
	return []string{"rk", "team", "teams", "time", "circa"}
}

// Options configures extraction behavior.
type Options struct {
	// WinColor is the ARGB fill color marking winning picks.
	// Empty means DefaultWinColor.
	WinColor string
	// LossColor is the ARGB fill color marking losing picks.
	// Empty means DefaultLossColor.
	LossColor string
	// HeaderTokens overrides the caption tokens excluded from schedule
	// windows. Nil means DefaultHeaderTokens.
	HeaderTokens []string
	// ScheduleFallbackColumn overrides the start column used when no
	// schedule group is detected. Nil means DefaultScheduleColumn.
	ScheduleFallbackColumn *int
	// Logger receives warnings for degraded sheets. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) winColor() string {
	if o.WinColor != "" {
		return o.WinColor
	}
	return DefaultWinColor
}

func (o Options) lossColor() string {
	if o.LossColor != "" {
		return o.LossColor
	}
	return DefaultLossColor
}

func (o Options) headerTokens() []string {
	if o.HeaderTokens != nil {
		return o.HeaderTokens
	}
	return DefaultHeaderTokens()
}

func (o Options) scheduleFallbackColumn() int {
	if o.ScheduleFallbackColumn != nil {
		return *o.ScheduleFallbackColumn
	}
	return DefaultScheduleColumn
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
