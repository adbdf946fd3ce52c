package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"gsheet_bridge/internal/config"
)

// Request describes a single HTTP exchange. Body is JSON-encoded when non-nil.
type Request struct {
	URL     string
	Method  string
	Headers map[string]string
	Body    any
	Timeout time.Duration
	Retry   bool
}

// Response carries the status and raw body of a completed exchange
type Response struct {
	Status int
	Body   []byte
}

// Transport executes HTTP requests with its own timeout and retry policy.
// Callers above this layer never retry.
type Transport struct {
	client       *http.Client
	policy       config.RetryConfig
	requestCount int64
	requestMutex sync.Mutex
}

// New creates a transport with the given retry policy
func New(policy config.RetryConfig) *Transport {
	return &Transport{
		client: &http.Client{},
		policy: policy,
	}
}

// RequestCount returns the number of HTTP requests issued so far
func (t *Transport) RequestCount() int64 {
	t.requestMutex.Lock()
	defer t.requestMutex.Unlock()
	return t.requestCount
}

// ResetRequestCount resets the request counter to zero
func (t *Transport) ResetRequestCount() {
	t.requestMutex.Lock()
	t.requestCount = 0
	t.requestMutex.Unlock()
}

func (t *Transport) incrementRequestCount() {
	t.requestMutex.Lock()
	t.requestCount++
	t.requestMutex.Unlock()
}

// Do executes the request, retrying network failures, 429 and 5xx responses
// per the configured policy when req.Retry is set. Non-retryable statuses
// are returned as a Response, not an error.
func (t *Transport) Do(ctx context.Context, req Request) (*Response, error) {
	var body []byte
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = b
	}

	attempts := 1
	if req.Retry {
		attempts = t.policy.MaxAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		resp, err := t.roundTrip(ctx, req, body)
		if err == nil && !retryableStatus(resp.Status) {
			return resp, nil
		}
		if err == nil {
			lastErr = fmt.Errorf("HTTP %d from %s", resp.Status, req.URL)
			if attempt == attempts {
				// Out of attempts: surface the response so the caller can
				// report the API's own error payload
				return resp, nil
			}
		} else {
			lastErr = err
			if attempt == attempts {
				break
			}
		}

		wait := t.policy.NextWait(attempt)
		log.Debug().
			Err(lastErr).
			Int("attempt", attempt).
			Dur("wait", wait).
			Str("url", req.URL).
			Msg("Retrying request")

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, lastErr
}

func (t *Transport) roundTrip(ctx context.Context, req Request, body []byte) (*Response, error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = t.policy.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	t.incrementRequestCount()

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{Status: resp.StatusCode, Body: respBody}, nil
}

func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
