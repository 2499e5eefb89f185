// Package styles resolves pick outcomes from workbook cell fill colors.
//
// The workbook family encodes win/loss through cell fills rather than
// explicit values. excelize does not surface the style index of a
// value-resolved cell, so the resolver reads the OOXML parts directly:
// xl/styles.xml for the fill table and each worksheet part for per-cell
// style indices.
package styles

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/mfischer/griddata-go/pkg/griddata/models"
)

// RuleColors are the ARGB fill colors that decide a pick. Every other
// fill, including no fill at all, leaves the pick pending.
type RuleColors struct {
	Win  string
	Loss string
}

// DefaultRuleColors returns the conditional-formatting palette observed
// in the source workbook.
func DefaultRuleColors() RuleColors {
	return RuleColors{Win: "FF92D050", Loss: "FFFF0000"}
}

// Resolver maps a sheet name and cell reference to a pick outcome. Build
// it once per workbook and Close it when the run ends; per-sheet cell
// maps are built on first lookup and cached until then. A resolver built
// from missing or malformed style metadata still works, resolving every
// cell to pending. Not safe for concurrent use.
type Resolver struct {
	reader     *zip.ReadCloser
	outcomes   map[int]models.Outcome
	sheetPaths map[string]string
	cellStyles map[string]map[string]int
}

// NewResolver parses the workbook style table once and prepares lazy
// per-sheet cell-to-style maps. It never fails; the second result reports
// whether the style metadata was usable.
func NewResolver(xlsxPath string, colors RuleColors) (*Resolver, bool) {
	r := &Resolver{
		outcomes:   make(map[int]models.Outcome),
		sheetPaths: make(map[string]string),
		cellStyles: make(map[string]map[string]int),
	}

	zr, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return r, false
	}
	r.reader = zr

	stylesXML, err := readZipFile(&zr.Reader, "xl/styles.xml")
	if err != nil || stylesXML == nil {
		return r, false
	}

	fillColors := parseFillColors(stylesXML)
	winColor := normalizeARGB(colors.Win)
	lossColor := normalizeARGB(colors.Loss)
	for styleIdx, fillID := range parseCellStyleFills(stylesXML) {
		if fillID < 0 || fillID >= len(fillColors) {
			continue
		}
		switch fillColors[fillID] {
		case winColor:
			r.outcomes[styleIdx] = models.OutcomeWin
		case lossColor:
			r.outcomes[styleIdx] = models.OutcomeLoss
		}
	}

	r.sheetPaths = sheetPartPaths(&zr.Reader)
	return r, true
}

// Close releases the underlying workbook archive.
func (r *Resolver) Close() error {
	if r.reader == nil {
		return nil
	}
	return r.reader.Close()
}

// Resolve classifies the cell at ref on the named sheet. Cells without a
// recorded style, styles outside the rule palette, and sheets the
// workbook does not contain all resolve to pending.
func (r *Resolver) Resolve(sheetName, ref string) models.Outcome {
	cellMap, ok := r.cellStyles[sheetName]
	if !ok {
		cellMap = r.loadSheetStyles(sheetName)
		r.cellStyles[sheetName] = cellMap
	}
	styleIdx, ok := cellMap[ref]
	if !ok {
		return models.OutcomePending
	}
	outcome, ok := r.outcomes[styleIdx]
	if !ok {
		return models.OutcomePending
	}
	return outcome
}

// loadSheetStyles reads one worksheet part and maps each cell reference
// to its style index. Any failure yields an empty map, which is still
// cached so the part is read at most once.
func (r *Resolver) loadSheetStyles(sheetName string) map[string]int {
	result := make(map[string]int)
	if r.reader == nil {
		return result
	}
	part, ok := r.sheetPaths[sheetName]
	if !ok {
		return result
	}
	data, err := readZipFile(&r.reader.Reader, part)
	if err != nil || data == nil {
		return result
	}

	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "c" {
			continue
		}
		var ref, style string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "r":
				ref = attr.Value
			case "s":
				style = attr.Value
			}
		}
		if ref == "" || style == "" {
			continue
		}
		if idx, err := strconv.Atoi(style); err == nil {
			result[ref] = idx
		}
	}
	return result
}

// parseFillColors returns the normalized foreground color of every fill
// in the style table, indexed by fill id. Fills without an explicit RGB
// foreground get an empty color.
func parseFillColors(data []byte) []string {
	var colors []string
	inFills := false

	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "fills":
				inFills = true
			case "fill":
				if inFills {
					colors = append(colors, "")
				}
			case "fgColor":
				if inFills && len(colors) > 0 {
					for _, attr := range t.Attr {
						if attr.Name.Local == "rgb" {
							colors[len(colors)-1] = normalizeARGB(attr.Value)
						}
					}
				}
			}
		case xml.EndElement:
			if t.Name.Local == "fills" {
				inFills = false
			}
		}
	}
	return colors
}

// parseCellStyleFills returns the fill id of every cell style (cellXfs
// entry) in document order, so the slice index is the style index cells
// refer to.
func parseCellStyleFills(data []byte) []int {
	var fills []int
	inCellXfs := false

	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "cellXfs":
				inCellXfs = true
			case "xf":
				if inCellXfs {
					fillID := -1
					for _, attr := range t.Attr {
						if attr.Name.Local == "fillId" {
							if v, err := strconv.Atoi(attr.Value); err == nil {
								fillID = v
							}
						}
					}
					fills = append(fills, fillID)
				}
			}
		case xml.EndElement:
			if t.Name.Local == "cellXfs" {
				inCellXfs = false
			}
		}
	}
	return fills
}

// sheetPartPaths maps sheet names to their worksheet part paths inside
// the archive, resolved through xl/workbook.xml and its relationships.
func sheetPartPaths(r *zip.Reader) map[string]string {
	result := make(map[string]string)

	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return result
	}
	sheetNames := parseWorkbookSheets(workbookXML)
	if len(sheetNames) == 0 {
		return result
	}

	relsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || relsXML == nil {
		return result
	}
	return parseWorkbookRels(relsXML, sheetNames)
}

func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string) // rId -> sheet name
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var name, rID string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					name = attr.Value
				case "id":
					rID = attr.Value
				}
			}
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

func parseWorkbookRels(data []byte, sheetNames map[string]string) map[string]string {
	result := make(map[string]string) // sheet name -> part path
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if sheetName, ok := sheetNames[rID]; ok && strings.Contains(strings.ToLower(target), "worksheet") {
				result[sheetName] = resolveRelativePath(target, "xl")
			}
		}
	}

	return result
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/") {
		// Absolute targets are already rooted at the package root.
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// normalizeARGB upper-cases a hex color and pads 6-digit RGB to 8-digit
// ARGB with a full alpha channel.
func normalizeARGB(color string) string {
	c := strings.ToUpper(strings.TrimSpace(color))
	if len(c) == 6 {
		return "FF" + c
	}
	return c
}
