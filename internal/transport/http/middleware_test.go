package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	handler := RequestID(RequestLogger(next, logger))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusTeapot) {
		t.Fatalf("expected status %d, got %v", http.StatusTeapot, fields["status"])
	}
	if fields["path"] != "/cart" {
		t.Fatalf("expected path /cart, got %v", fields["path"])
	}
	if fields["request_id"] == "" {
		t.Fatalf("expected a request id in the log entry")
	}
}

func TestWriteInternal_LogsCorrelationID(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.WarnLevel)
	logger := zap.New(core)

	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeInternal(w, r, logger, assertError{})
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set(requestIDHeader, "corr-1")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["request_id"]; got != "corr-1" {
		t.Fatalf("expected request_id corr-1, got %v", got)
	}
}

type assertError struct{}

func (assertError) Error() string { return "boom" }
