package griddata

import (
	"errors"
	"fmt"

	"github.com/mfischer/griddata-go/pkg/griddata/parser"
)

// ErrWorkbookNotFound indicates the input workbook does not exist.
var ErrWorkbookNotFound = errors.New("workbook not found")

// ErrNoPlayerColumn indicates the standings sheet lacks a Player column.
// It aliases the parser sentinel so callers can match either.
var ErrNoPlayerColumn = parser.ErrNoPlayerColumn

// ExtractionError represents an error during extraction of one sheet.
type ExtractionError struct {
	SheetName string
	Component string // "grid", "schedule", "players", "standings", "styles"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
