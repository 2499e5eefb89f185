package griddata

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mfischer/griddata-go/pkg/griddata/models"
	"github.com/mfischer/griddata-go/pkg/griddata/parser"
	"github.com/mfischer/griddata-go/pkg/griddata/styles"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Extract reads the pool workbook and builds the full dataset: every
// "Week N" sheet in ascending week order plus the standings table, with
// computed week totals filled into standings cells the sheet left blank.
// Only two conditions abort the run: an unopenable workbook and a
// standings sheet without a Player column. Everything else degrades to
// partial output.
func Extract(path string, opts Options) (*models.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	log := opts.logger()

	resolver, usable := styles.NewResolver(path, styles.RuleColors{
		Win:  opts.winColor(),
		Loss: opts.lossColor(),
	})
	defer resolver.Close()
	if !usable {
		log.Warn("style metadata unusable, all outcomes resolve to pending",
			zap.String("workbook", path))
	}

	scheduleParams := parser.ScheduleParams{
		HeaderTokens:   opts.headerTokens(),
		FallbackColumn: opts.scheduleFallbackColumn(),
	}

	type weekSheet struct {
		number int
		name   string
	}
	var weekSheets []weekSheet
	hasStandings := false
	for _, sheetName := range f.GetSheetList() {
		if sheetName == "Standings" {
			hasStandings = true
			continue
		}
		suffix, ok := strings.CutPrefix(sheetName, "Week ")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(suffix))
		if err != nil || n <= 0 {
			log.Warn("skipping week sheet without a positive week number",
				zap.String("sheet", sheetName))
			continue
		}
		weekSheets = append(weekSheets, weekSheet{number: n, name: sheetName})
	}
	sort.Slice(weekSheets, func(i, j int) bool {
		return weekSheets[i].number < weekSheets[j].number
	})

	weeks := make([]models.WeekData, 0, len(weekSheets))
	for _, ws := range weekSheets {
		weeks = append(weeks, parseWeekSheet(f, ws.name, scheduleParams, resolver, log))
	}

	standings := models.Standings{}
	if hasStandings {
		grid, err := parser.ExtractGrid(f, "Standings")
		if err != nil {
			return nil, NewExtractionError("Standings", "grid", err)
		}
		standings, err = parser.ParseStandings(grid)
		if err != nil {
			return nil, NewExtractionError("Standings", "standings", err)
		}
	}
	mergeComputedTotals(standings, weeks)

	return &models.Dataset{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Weeks:       weeks,
		Standings:   standings,
	}, nil
}

// parseWeekSheet extracts one week record. A sheet that cannot be read or
// has no header still yields a well-formed (possibly schedule-only) week.
func parseWeekSheet(f *excelize.File, sheetName string, params parser.ScheduleParams, resolver parser.OutcomeResolver, log *zap.Logger) models.WeekData {
	week := models.WeekData{
		Name:             sheetName,
		Players:          []models.PlayerRow{},
		Schedule:         []models.ScheduleEntry{},
		ConfidencePoints: []int{},
	}

	grid, err := parser.ExtractGrid(f, sheetName)
	if err != nil {
		log.Warn("failed to read sheet, emitting empty week",
			zap.String("sheet", sheetName), zap.Error(err))
		return week
	}
	if len(grid) == 0 {
		return week
	}

	headerIdx, found := parser.DetectHeaderRow(grid)
	if !found {
		// No header means no players; the whole sheet is schedule region.
		log.Warn("no header row found, treating sheet as schedule-only",
			zap.String("sheet", sheetName))
		week.Schedule = parseScheduleRegion(grid, sheetName, params, log)
		return week
	}

	layout := parser.LayoutFromHeader(grid[headerIdx])
	if layout.Points != nil {
		week.ConfidencePoints = layout.Points
	}
	week.Schedule = parseScheduleRegion(grid[:headerIdx], sheetName, params, log)
	week.Players = parser.ParsePlayers(grid, headerIdx, sheetName, layout, resolver)
	return week
}

func parseScheduleRegion(rows [][]models.Cell, sheetName string, params parser.ScheduleParams, log *zap.Logger) []models.ScheduleEntry {
	starts, matched := params.DetectScheduleColumns(rows)
	if !matched && len(rows) > 0 {
		log.Warn("no schedule column group detected, using fallback column",
			zap.String("sheet", sheetName), zap.Int("column", params.FallbackColumn))
	}
	return params.ParseSchedule(rows, starts)
}

// mergeComputedTotals fills standings cells the sheet left blank with the
// totals computed from week sheets. Explicit standings values always win.
func mergeComputedTotals(standings models.Standings, weeks []models.WeekData) {
	for _, week := range weeks {
		for _, player := range week.Players {
			if player.TotalPoints == nil {
				continue
			}
			scores, ok := standings[player.Name]
			if !ok {
				scores = make(map[string]interface{})
				standings[player.Name] = scores
			}
			if _, ok := scores[week.Name]; !ok {
				scores[week.Name] = player.TotalPoints
			}
		}
	}
}
