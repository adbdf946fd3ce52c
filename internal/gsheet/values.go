package gsheet

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const errMissingID = "missing spreadsheetId or link"

// GetValuesParams selects a range to read
type GetValuesParams struct {
	Ref
	SheetName string
	Range     string
}

// GetValues reads cell values from a range
func (c *Client) GetValues(ctx context.Context, p GetValuesParams) *Result {
	id := p.ResolveID()
	if id == "" {
		return inputError(errMissingID)
	}
	path := fmt.Sprintf("/spreadsheets/%s/values/%s",
		url.PathEscape(id), url.PathEscape(BuildRange(p.SheetName, p.Range)))
	return c.apiRequest(ctx, requestParams{path: path, method: http.MethodGet})
}

// WriteValuesParams carries a grid to write or append.
// Values accepts a [][]any grid or a flat []any row; a flat row is
// normalized to a one-row grid.
type WriteValuesParams struct {
	Ref
	SheetName        string
	Range            string
	Values           any
	ValueInputOption string
}

func (p WriteValuesParams) valueInputOption() string {
	if p.ValueInputOption == "" {
		return DefaultValueInputOption
	}
	return p.ValueInputOption
}

// SetValues overwrites cell values in a range
func (c *Client) SetValues(ctx context.Context, p WriteValuesParams) *Result {
	id := p.ResolveID()
	if id == "" {
		return inputError(errMissingID)
	}
	grid, err := NormalizeGrid(p.Values)
	if err != nil {
		return inputError(err.Error())
	}
	path := fmt.Sprintf("/spreadsheets/%s/values/%s?valueInputOption=%s",
		url.PathEscape(id), url.PathEscape(BuildRange(p.SheetName, p.Range)),
		url.QueryEscape(p.valueInputOption()))
	return c.apiRequest(ctx, requestParams{
		path:   path,
		method: http.MethodPut,
		body:   map[string]any{"values": grid},
	})
}

// AppendValues appends rows after the existing data in a range
func (c *Client) AppendValues(ctx context.Context, p WriteValuesParams) *Result {
	id := p.ResolveID()
	if id == "" {
		return inputError(errMissingID)
	}
	grid, err := NormalizeGrid(p.Values)
	if err != nil {
		return inputError(err.Error())
	}
	path := fmt.Sprintf("/spreadsheets/%s/values/%s:append?valueInputOption=%s",
		url.PathEscape(id), url.PathEscape(BuildRange(p.SheetName, p.Range)),
		url.QueryEscape(p.valueInputOption()))
	return c.apiRequest(ctx, requestParams{
		path:   path,
		method: http.MethodPost,
		body:   map[string]any{"values": grid},
	})
}

// ClearRangeParams selects a range to clear
type ClearRangeParams struct {
	Ref
	SheetName string
	Range     string
}

// ClearRange clears all cell values in a range
func (c *Client) ClearRange(ctx context.Context, p ClearRangeParams) *Result {
	id := p.ResolveID()
	if id == "" {
		return inputError(errMissingID)
	}
	path := fmt.Sprintf("/spreadsheets/%s/values/%s:clear",
		url.PathEscape(id), url.PathEscape(BuildRange(p.SheetName, p.Range)))
	return c.apiRequest(ctx, requestParams{path: path, method: http.MethodPost})
}

// AppendRowParams appends a single row with strict validation
type AppendRowParams struct {
	SpreadsheetID    string
	Values           []any
	Sheet            string
	ValueInputOption string
}

// AppendRow appends one row to a sheet. Unlike AppendValues it validates
// its inputs individually and returns descriptive input errors.
func (c *Client) AppendRow(ctx context.Context, p AppendRowParams) *Result {
	if p.SpreadsheetID == "" {
		return inputError("spreadsheetId is required")
	}
	if p.Values == nil {
		return inputError("values must be an array")
	}
	return c.AppendValues(ctx, WriteValuesParams{
		Ref:              Ref{SpreadsheetID: p.SpreadsheetID},
		SheetName:        p.Sheet,
		Values:           p.Values,
		ValueInputOption: p.ValueInputOption,
	})
}

// LegacyWriteParams is the older write surface: values may arrive as a
// grid, as JSON text, or as the compact "a|b,c|d" string encoding.
type LegacyWriteParams struct {
	SpreadsheetID    string
	Sheet            string
	Range            string
	Values           any
	ValuesJSON       string
	ValueInputOption string
}

// legacyValues resolves the value source by precedence: an explicit grid
// wins, then parseable JSON, then the delimited string form. Malformed
// JSON is treated as absent, not as an error.
func legacyValues(values any, valuesJSON string) ([][]any, bool) {
	if values != nil {
		if _, isString := values.(string); !isString {
			if grid, err := NormalizeGrid(values); err == nil {
				return grid, true
			}
		}
	}
	if valuesJSON != "" {
		if grid, ok := ParseGridJSON(valuesJSON); ok {
			return grid, true
		}
	}
	if s, ok := values.(string); ok && s != "" {
		return ParseGridString(s), true
	}
	return nil, false
}

// Update is the legacy alias for SetValues
func (c *Client) Update(ctx context.Context, p LegacyWriteParams) *Result {
	if p.SpreadsheetID == "" {
		return inputError("spreadsheetId is required")
	}
	grid, ok := legacyValues(p.Values, p.ValuesJSON)
	if !ok {
		return inputError("no values supplied")
	}
	return c.SetValues(ctx, WriteValuesParams{
		Ref:              Ref{SpreadsheetID: p.SpreadsheetID},
		SheetName:        p.Sheet,
		Range:            p.Range,
		Values:           grid,
		ValueInputOption: p.ValueInputOption,
	})
}

// Append is the legacy alias for AppendValues
func (c *Client) Append(ctx context.Context, p LegacyWriteParams) *Result {
	if p.SpreadsheetID == "" {
		return inputError("spreadsheetId is required")
	}
	grid, ok := legacyValues(p.Values, p.ValuesJSON)
	if !ok {
		return inputError("no values supplied")
	}
	return c.AppendValues(ctx, WriteValuesParams{
		Ref:              Ref{SpreadsheetID: p.SpreadsheetID},
		SheetName:        p.Sheet,
		Range:            p.Range,
		Values:           grid,
		ValueInputOption: p.ValueInputOption,
	})
}
