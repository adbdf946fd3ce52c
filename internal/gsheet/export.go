package gsheet

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"gsheet_bridge/internal/config"
	"gsheet_bridge/internal/googleauth"
	"gsheet_bridge/internal/transport"
)

// exportMIMETypes maps supported export formats to Drive MIME types
var exportMIMETypes = map[string]string{
	"pdf":  "application/pdf",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"csv":  "text/csv",
	"tsv":  "text/tab-separated-values",
}

// ExportParams selects a spreadsheet, a target format and an output path
type ExportParams struct {
	SpreadsheetID string
	Format        string
	OutPath       string
}

// ExportSpreadsheet downloads the spreadsheet in the given format via the
// Drive export endpoint and hands the bytes to the storage provider.
// Input validation happens before any token fetch.
func (c *Client) ExportSpreadsheet(ctx context.Context, p ExportParams) *Result {
	if p.SpreadsheetID == "" {
		return inputError("spreadsheetId is required")
	}
	if p.OutPath == "" {
		return inputError("outPath is required")
	}
	mimeType, ok := exportMIMETypes[p.Format]
	if !ok {
		return inputError("unsupported format")
	}

	token := c.token(ctx, "drive.readonly")
	if token == "" {
		return inputError(errNoToken)
	}

	exportURL := fmt.Sprintf("%s/files/%s/export?mimeType=%s",
		c.driveURL, url.PathEscape(p.SpreadsheetID), url.QueryEscape(mimeType))

	resp, err := c.http.Do(ctx, transport.Request{
		URL:    exportURL,
		Method: http.MethodGet,
		Headers: map[string]string{
			"Authorization": googleauth.BearerHeader(token),
		},
		Timeout: config.DefaultResilienceConfig.Export.Timeout,
		Retry:   true,
	})
	if err != nil {
		log.Error().Err(err).Str("spreadsheet_id", p.SpreadsheetID).Str("format", p.Format).Msg("Drive export failed")
		msg := err.Error()
		if msg == "" {
			msg = "unknown"
		}
		return &Result{OK: false, Error: msg}
	}

	if resp.Status >= 400 {
		data := decodeBody(resp.Body)
		return apiError(apiErrorMessage(data, resp.Status), resp.Status, data)
	}

	encoded := base64.StdEncoding.EncodeToString(resp.Body)
	if err := c.store.Save(p.OutPath, encoded); err != nil {
		return &Result{OK: false, Error: err.Error()}
	}

	return okResult(map[string]any{
		"path":     p.OutPath,
		"bytes":    len(resp.Body),
		"mimeType": mimeType,
	}, resp.Status)
}
