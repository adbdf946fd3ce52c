package gsheet

// Result is the uniform envelope returned by every operation.
// Invariant: OK is true iff no error occurred and the HTTP status, when
// present, was below 400. Operations never return Go errors; failures of
// any kind land in this shape.
type Result struct {
	OK     bool   `json:"ok"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
	Status int    `json:"status,omitempty"`
	Body   any    `json:"body,omitempty"`
}

// inputError reports a locally detected problem, before any network call
func inputError(msg string) *Result {
	return &Result{OK: false, Error: msg}
}

func okResult(data any, status int) *Result {
	return &Result{OK: true, Data: data, Status: status}
}

func apiError(msg string, status int, body any) *Result {
	return &Result{OK: false, Error: msg, Status: status, Body: body}
}
