package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mfischer/griddata-go/pkg/griddata/models"
)

// ScheduleParams tunes schedule column-group detection.
type ScheduleParams struct {
	// HeaderTokens are column captions that never start or complete a
	// game window.
	HeaderTokens []string
	// FallbackColumn is the single group start used when no row matches
	// the start predicate.
	FallbackColumn int
}

// DefaultScheduleParams returns parameters tuned for the observed
// workbook family.
func DefaultScheduleParams() ScheduleParams {
	return ScheduleParams{
		HeaderTokens:   []string{"rk", "team", "teams", "time", "circa"},
		FallbackColumn: 8,
	}
}

var (
	clockTextPattern = regexp.MustCompile(`^\d{1,2}(:\d{2})?\s*[ap]\.?m\.?$`)
	bareClockPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	isoDatePattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	slashDatePattern = regexp.MustCompile(`^\d{1,2}/\d{1,2}(/\d{2,4})?$`)
)

var weekdayAbbrevs = map[string]bool{
	"sun": true, "mon": true, "tue": true, "wed": true,
	"thu": true, "fri": true, "sat": true,
}

var monthAbbrevs = map[string]bool{
	"jan": true, "feb": true, "mar": true, "apr": true,
	"may": true, "jun": true, "jul": true, "aug": true,
	"sep": true, "oct": true, "nov": true, "dec": true,
}

func (p ScheduleParams) isHeaderToken(cell models.Cell) bool {
	if cell.Kind != models.KindText {
		return false
	}
	text := strings.ToLower(strings.TrimSpace(cell.Text))
	for _, token := range p.HeaderTokens {
		if text == token {
			return true
		}
	}
	return false
}

// looksLikeGameStart reports whether a 3-cell (date, team, line) window
// opens a new game record. The leading cell must look like a date or
// kickoff time; as a fallback a named team with a present line is
// accepted, covering rows whose date cell is blank because it repeats the
// row above.
func (p ScheduleParams) looksLikeGameStart(date, team, line models.Cell) bool {
	if p.isHeaderToken(team) || p.isHeaderToken(line) {
		return false
	}
	if date.Kind == models.KindDateTime || date.Kind == models.KindTimeOfDay {
		return true
	}
	if date.Kind == models.KindText && looksLikeDateText(date.Text) {
		return true
	}
	return team.Kind == models.KindText && team.Text != "" && !line.IsAbsent()
}

// looksLikeDateText matches clock times with an am/pm suffix, bare H:MM
// times, weekday and month abbreviations, ISO dates, and M/D dates.
func looksLikeDateText(text string) bool {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return false
	}
	if clockTextPattern.MatchString(lowered) || bareClockPattern.MatchString(lowered) {
		return true
	}
	if isoDatePattern.MatchString(lowered) || slashDatePattern.MatchString(lowered) {
		return true
	}
	word := strings.TrimSuffix(lowered, ".")
	if len(word) < 3 || !weekdayAbbrevs[word[:3]] && !monthAbbrevs[word[:3]] {
		return false
	}
	// "Sun", "Sunday", "Sept" style labels only; a prefix followed by
	// anything but letters is not a date word
	for _, r := range word[3:] {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func windowAt(row []models.Cell, col int) (date, team, line models.Cell) {
	return cellAt(row, col), cellAt(row, col+1), cellAt(row, col+2)
}

// DetectScheduleColumns scans the pre-header rows for 3-cell game windows
// and returns the column-group starts for the sheet, deduplicated and
// sorted ascending. The first row with any accepted window fixes the full
// set; later rows never contribute different layouts. The second result
// reports whether any row matched; on false the fallback column is
// returned alone.
func (p ScheduleParams) DetectScheduleColumns(rows [][]models.Cell) ([]int, bool) {
	for _, row := range rows {
		var starts []int
		for col := range row {
			date, team, line := windowAt(row, col)
			if date.IsAbsent() && team.IsAbsent() && line.IsAbsent() {
				continue
			}
			if p.looksLikeGameStart(date, team, line) {
				starts = append(starts, col)
			}
		}
		if len(starts) > 0 {
			return dedupeSorted(starts), true
		}
	}
	return []int{p.FallbackColumn}, false
}

func dedupeSorted(cols []int) []int {
	sort.Ints(cols)
	out := make([]int, 0, len(cols))
	for i, c := range cols {
		if i == 0 || c != cols[i-1] {
			out = append(out, c)
		}
	}
	return out
}

// ParseSchedule replays the pre-header rows against fixed column-group
// starts and assembles schedule entries. Within a group, the first
// accepted window seeds the favorite half and the next completes the game
// with the opponent half. Windows that are fully absent, carry a header
// token, or fail the start predicate while the group is empty are
// ignored. A group still holding an unpaired favorite at the end of the
// scan is discarded.
func (p ScheduleParams) ParseSchedule(rows [][]models.Cell, starts []int) []models.ScheduleEntry {
	type slot struct {
		entry  models.ScheduleEntry
		filled bool
	}
	slots := make([]slot, len(starts))

	var schedule []models.ScheduleEntry
	for _, row := range rows {
		for idx, start := range starts {
			date, team, line := windowAt(row, start)
			if date.IsAbsent() && team.IsAbsent() && line.IsAbsent() {
				continue
			}
			if p.isHeaderToken(team) || p.isHeaderToken(line) {
				continue
			}
			if !slots[idx].filled {
				if !p.looksLikeGameStart(date, team, line) {
					continue
				}
				slots[idx] = slot{
					entry: models.ScheduleEntry{
						Team: team.String(),
						Line: scheduleLine(line),
						Date: textOrNil(date),
					},
					filled: true,
				}
				continue
			}
			entry := slots[idx].entry
			entry.Opponent = team.String()
			entry.Time = textOrNil(date)
			entry.OpponentLine = scheduleLine(line)
			schedule = append(schedule, entry)
			slots[idx] = slot{}
		}
	}

	return p.filterSchedule(schedule)
}

// scheduleLine coerces numeric lines to float64 and passes everything
// else through as text or nil.
func scheduleLine(cell models.Cell) interface{} {
	if cell.IsNumber() {
		return cell.Number
	}
	return textOrNil(cell)
}

// filterSchedule drops entries with no meaningful team or line on either
// side and entries whose favorite is a leaked column caption. The filter
// is idempotent.
func (p ScheduleParams) filterSchedule(entries []models.ScheduleEntry) []models.ScheduleEntry {
	kept := make([]models.ScheduleEntry, 0, len(entries))
	for _, entry := range entries {
		if p.isHeaderToken(models.Cell{Kind: models.KindText, Text: entry.Team}) {
			continue
		}
		if !meaningfulEntry(entry) {
			continue
		}
		kept = append(kept, entry)
	}
	return kept
}

func meaningfulEntry(entry models.ScheduleEntry) bool {
	if entry.Team != "" || entry.Opponent != "" {
		return true
	}
	return valuePresent(entry.Line) || valuePresent(entry.OpponentLine)
}

func valuePresent(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	default:
		return true
	}
}
