// Package output serializes extraction results to JSON.
package output

import (
	"encoding/json"

	"github.com/mfischer/griddata-go/pkg/griddata/models"
)

// ToJSON serializes a dataset, optionally indented for human readers.
func ToJSON(dataset *models.Dataset, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(dataset, "", "  ")
	}
	return json.Marshal(dataset)
}

// WeekToJSON serializes a single week record.
func WeekToJSON(week *models.WeekData, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(week, "", "  ")
	}
	return json.Marshal(week)
}
