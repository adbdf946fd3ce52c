package gsheet

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateSpreadsheetParams describes a new spreadsheet. Sheet names may be
// given as a slice or as a comma/whitespace separated list; the slice wins
// when both are set.
type CreateSpreadsheetParams struct {
	Title     string
	Sheets    []string
	SheetList string
}

// CreateSpreadsheet creates a spreadsheet and reshapes the response to
// {spreadsheetId, title}
func (c *Client) CreateSpreadsheet(ctx context.Context, p CreateSpreadsheetParams) *Result {
	title := p.Title
	if title == "" {
		title = "Untitled"
	}

	names := p.Sheets
	if len(names) == 0 && p.SheetList != "" {
		names = SplitSheetNames(p.SheetList)
	}

	body := map[string]any{
		"properties": map[string]any{"title": title},
	}
	if len(names) > 0 {
		sheets := make([]any, len(names))
		for i, name := range names {
			sheets[i] = map[string]any{
				"properties": map[string]any{"title": name},
			}
		}
		body["sheets"] = sheets
	}

	res := c.apiRequest(ctx, requestParams{
		path:   "/spreadsheets",
		method: http.MethodPost,
		body:   body,
	})
	if !res.OK {
		return res
	}

	created := map[string]any{"spreadsheetId": "", "title": title}
	if m, ok := res.Data.(map[string]any); ok {
		if id, ok := m["spreadsheetId"].(string); ok {
			created["spreadsheetId"] = id
		}
		if props, ok := m["properties"].(map[string]any); ok {
			if t, ok := props["title"].(string); ok && t != "" {
				created["title"] = t
			}
		}
	}
	res.Data = created
	return res
}

// Metadata fetches the spreadsheet resource as a raw passthrough
func (c *Client) Metadata(ctx context.Context, ref Ref) *Result {
	id := ref.ResolveID()
	if id == "" {
		return inputError(errMissingID)
	}
	path := fmt.Sprintf("/spreadsheets/%s", url.PathEscape(id))
	return c.apiRequest(ctx, requestParams{path: path, method: http.MethodGet})
}
