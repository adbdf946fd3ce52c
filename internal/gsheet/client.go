package gsheet

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"gsheet_bridge/internal/config"
	"gsheet_bridge/internal/googleauth"
	"gsheet_bridge/internal/storage"
	"gsheet_bridge/internal/transport"
)

const (
	sheetsBaseURL = "https://sheets.googleapis.com/v4"
	driveBaseURL  = "https://www.googleapis.com/drive/v3"

	// DefaultValueInputOption parses written text the way the Sheets UI does
	DefaultValueInputOption = "USER_ENTERED"

	errNoToken = "no access token (configure Google OAuth credentials)"
)

// Doer abstracts the HTTP helper. The transport owns timeout and retry
// policy; the client layer adds none of its own.
type Doer interface {
	Do(ctx context.Context, req transport.Request) (*transport.Response, error)
}

// Client is a thin Google Sheets (plus Drive export) REST client.
// It holds no mutable state across calls, so concurrent use needs no locking.
type Client struct {
	baseURL  string
	driveURL string
	http     Doer
	auth     googleauth.TokenProvider
	store    storage.Store
}

// Options configures a Client. Zero fields fall back to production defaults.
type Options struct {
	BaseURL   string
	DriveURL  string
	Transport Doer
	Auth      googleauth.TokenProvider
	Store     storage.Store
}

// NewClient creates a Sheets client from the given options
func NewClient(opts Options) *Client {
	c := &Client{
		baseURL:  opts.BaseURL,
		driveURL: opts.DriveURL,
		http:     opts.Transport,
		auth:     opts.Auth,
		store:    opts.Store,
	}
	if c.baseURL == "" {
		c.baseURL = sheetsBaseURL
	}
	if c.driveURL == "" {
		c.driveURL = driveBaseURL
	}
	if c.http == nil {
		c.http = transport.New(config.DefaultResilienceConfig.APIRequest)
	}
	if c.store == nil {
		c.store = storage.FileStore{}
	}
	return c
}

// token acquires an access token for the given scopes. Provider failures
// reduce to an empty token; callers turn that into an auth-error envelope.
func (c *Client) token(ctx context.Context, scopes ...string) string {
	if c.auth == nil {
		return ""
	}
	tok, err := c.auth.Token(ctx, scopes...)
	if err != nil {
		log.Debug().Err(err).Strs("scopes", scopes).Msg("Token acquisition failed")
		return ""
	}
	return tok
}

type requestParams struct {
	path    string
	method  string
	body    any
	timeout time.Duration
	noRetry bool
	scopes  []string
}

// apiRequest assembles and dispatches one Sheets API call, normalizing the
// outcome into a Result envelope.
func (c *Client) apiRequest(ctx context.Context, p requestParams) *Result {
	token := c.token(ctx, p.scopes...)
	if token == "" {
		return inputError(errNoToken)
	}

	resp, err := c.http.Do(ctx, transport.Request{
		URL:    c.baseURL + p.path,
		Method: p.method,
		Headers: map[string]string{
			"Content-Type":  "application/json",
			"Authorization": googleauth.BearerHeader(token),
		},
		Body:    p.body,
		Timeout: p.timeout,
		Retry:   !p.noRetry,
	})
	if err != nil {
		log.Error().Err(err).Str("path", p.path).Str("method", p.method).Msg("Sheets API request failed")
		msg := err.Error()
		if msg == "" {
			msg = "unknown"
		}
		return &Result{OK: false, Error: msg}
	}

	data := decodeBody(resp.Body)
	if resp.Status >= 400 {
		return apiError(apiErrorMessage(data, resp.Status), resp.Status, data)
	}
	return okResult(data, resp.Status)
}

// decodeBody parses a response body as JSON, falling back to the raw text
func decodeBody(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	return v
}

// apiErrorMessage digs the human-readable message out of a Google error
// payload: error.message, then error.error_description, then "HTTP <status>"
func apiErrorMessage(data any, status int) string {
	if m, ok := data.(map[string]any); ok {
		if e, ok := m["error"].(map[string]any); ok {
			if msg, ok := e["message"].(string); ok && msg != "" {
				return msg
			}
			if msg, ok := e["error_description"].(string); ok && msg != "" {
				return msg
			}
		}
	}
	return fmt.Sprintf("HTTP %d", status)
}
