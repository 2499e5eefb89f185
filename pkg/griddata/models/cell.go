// Package models defines data structures for football-pool extraction.
package models

import (
	"strconv"
	"time"
)

// CellKind identifies the typed content of a spreadsheet cell.
type CellKind int

const (
	// KindAbsent marks a cell with no value.
	KindAbsent CellKind = iota
	// KindNumber marks a numeric cell.
	KindNumber
	// KindText marks a plain text cell.
	KindText
	// KindDateTime marks a cell holding a calendar date, optionally with a time.
	KindDateTime
	// KindTimeOfDay marks a cell holding a clock time without a date.
	KindTimeOfDay
)

// Cell is one typed spreadsheet cell. The zero value is an absent cell,
// which is distinct from a cell holding empty text.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
	Time   time.Time
}

// IsAbsent reports whether the cell has no value.
func (c Cell) IsAbsent() bool { return c.Kind == KindAbsent }

// IsNumber reports whether the cell holds a numeric value.
func (c Cell) IsNumber() bool { return c.Kind == KindNumber }

// Truthy reports whether the cell holds a usable value: absent cells,
// zero numbers, and empty text are all falsy.
func (c Cell) Truthy() bool {
	switch c.Kind {
	case KindAbsent:
		return false
	case KindNumber:
		return c.Number != 0
	case KindText:
		return c.Text != ""
	default:
		return true
	}
}

// String renders the cell as display text: datetimes become ISO-8601,
// clock times become HH:MM, numbers render without trailing zeros, and
// absent cells render empty.
func (c Cell) String() string {
	switch c.Kind {
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindText:
		return c.Text
	case KindDateTime:
		return c.Time.Format("2006-01-02T15:04:05")
	case KindTimeOfDay:
		return c.Time.Format("15:04")
	}
	return ""
}

// Value returns the cell as a JSON-ready value: float64 for numbers,
// a string for text and date/time kinds, nil when absent.
func (c Cell) Value() interface{} {
	switch c.Kind {
	case KindAbsent:
		return nil
	case KindNumber:
		return c.Number
	default:
		return c.String()
	}
}
