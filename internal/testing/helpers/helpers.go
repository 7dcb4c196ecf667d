package helpers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// ============================================================================
// Pointer Helpers
// ============================================================================

// StringPtr returns a pointer to the given string
func StringPtr(s string) *string { return &s }

// IntPtr returns a pointer to the given int
func IntPtr(i int) *int { return &i }

// BoolPtr returns a pointer to the given bool
func BoolPtr(b bool) *bool { return &b }

// TimePtr returns a pointer to the given time
func TimePtr(t time.Time) *time.Time { return &t }

// ============================================================================
// Time Helpers
// ============================================================================

// TimeAgo returns a time d in the past
func TimeAgo(d time.Duration) time.Time {
	return time.Now().Add(-d).UTC()
}

// TimeFromNow returns a time d in the future
func TimeFromNow(d time.Duration) time.Time {
	return time.Now().Add(d).UTC()
}

// ============================================================================
// HTTP Helpers
// ============================================================================

// DoJSON sends a JSON request through the handler and records the
// response. An empty body sends no payload.
func DoJSON(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// DecodeData unwraps the {"data": ...} envelope into v.
func DecodeData(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("helpers: decode envelope: %v\nBody: %s", err, rec.Body.String())
	}
	if err := json.Unmarshal(envelope.Data, v); err != nil {
		t.Fatalf("helpers: decode data: %v\nBody: %s", err, rec.Body.String())
	}
}
