package gsheet

import (
	"encoding/json"
	"errors"
	"strings"
	"unicode"
)

// errNotArray is the input error for values that are not a grid or a row
var errNotArray = errors.New("values must be an array")

// NormalizeGrid coerces caller-supplied values into the [][]any shape the
// Sheets API expects. A flat row becomes a one-row grid. Anything that is
// not a slice is an input error.
func NormalizeGrid(v any) ([][]any, error) {
	switch t := v.(type) {
	case [][]any:
		return t, nil
	case [][]string:
		grid := make([][]any, len(t))
		for i, row := range t {
			grid[i] = toRow(row)
		}
		return grid, nil
	case []any:
		if len(t) > 0 {
			if _, ok := t[0].([]any); ok {
				grid := make([][]any, len(t))
				for i, row := range t {
					if r, ok := row.([]any); ok {
						grid[i] = r
					} else {
						grid[i] = []any{row}
					}
				}
				return grid, nil
			}
		}
		return [][]any{t}, nil
	case []string:
		return [][]any{toRow(t)}, nil
	default:
		return nil, errNotArray
	}
}

func toRow(cells []string) []any {
	row := make([]any, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}

// ParseGridString parses the compact "a|b|c,d|e|f" encoding: rows are
// separated by commas, cells within a row by pipes. Cells are trimmed.
func ParseGridString(s string) [][]any {
	rows := strings.Split(s, ",")
	grid := make([][]any, len(rows))
	for i, r := range rows {
		cells := strings.Split(r, "|")
		row := make([]any, len(cells))
		for j, c := range cells {
			row[j] = strings.TrimSpace(c)
		}
		grid[i] = row
	}
	return grid
}

// ParseGridJSON parses a JSON-encoded grid. Malformed JSON or a non-array
// payload reports ok=false rather than an error, so callers can fall back
// to other value sources.
func ParseGridJSON(s string) ([][]any, bool) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	grid, err := NormalizeGrid(v)
	if err != nil {
		return nil, false
	}
	return grid, true
}

// SplitSheetNames splits a delimiter-separated list of sheet names on
// commas and whitespace, dropping empties.
func SplitSheetNames(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
