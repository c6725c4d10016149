package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shashiranjanraj/setu/pkg/logger"
	"github.com/shashiranjanraj/setu/pkg/middleware"
	"github.com/shashiranjanraj/setu/pkg/reqid"
)

func TestLoggerCapturesStatus(t *testing.T) {
	h := middleware.Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status must pass through unchanged, got %d", rec.Code)
	}
}

func TestLoggerEmitsRequestLine(t *testing.T) {
	var buf bytes.Buffer
	prev := logger.L
	logger.L = slog.New(slog.NewTextHandler(&buf, nil))
	t.Cleanup(func() { logger.L = prev })

	h := middleware.Logger(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/things", nil)
	req = req.WithContext(reqid.WithValue(req.Context(), "abc123"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	out := buf.String()
	if !strings.Contains(out, "msg=request") {
		t.Fatalf("no request line logged: %s", out)
	}
	if !strings.Contains(out, "request_id=abc123") {
		t.Errorf("log line missing request_id: %s", out)
	}
	if !strings.Contains(out, "path=/things") {
		t.Errorf("log line missing path: %s", out)
	}
}
