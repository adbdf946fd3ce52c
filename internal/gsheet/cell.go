package gsheet

import (
	"fmt"
	"strconv"
)

// Cell provides type-safe access to a spreadsheet cell value.
// The Sheets API wire format carries cells as untyped JSON values; this
// wrapper keeps the any handling confined to one place.
type Cell struct {
	raw any
}

// NewCell wraps a raw cell value returned by the API
func NewCell(raw any) Cell {
	return Cell{raw: raw}
}

// String returns the cell value as a string
func (c Cell) String() string {
	if c.raw == nil {
		return ""
	}
	if s, ok := c.raw.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", c.raw)
}

// Int returns the cell value as an int
func (c Cell) Int() int {
	if c.raw == nil {
		return 0
	}
	switch v := c.raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return 0
}

// Float64 returns the cell value as a float64
func (c Cell) Float64() float64 {
	if c.raw == nil {
		return 0
	}
	switch v := c.raw.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}

// IsEmpty returns true if the cell contains nil or empty string
func (c Cell) IsEmpty() bool {
	return c.raw == nil || c.raw == ""
}

// Raw returns the underlying value for API calls.
// This should only be used at the API boundary.
func (c Cell) Raw() any {
	return c.raw
}

// RowStrings renders a returned row as display strings
func RowStrings(row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = NewCell(v).String()
	}
	return out
}
