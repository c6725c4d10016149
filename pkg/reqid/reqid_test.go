package reqid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/setu/pkg/reqid"
)

func TestNewIsUnique(t *testing.T) {
	a, b := reqid.New(), reqid.New()
	if a == "" || b == "" {
		t.Fatal("empty id")
	}
	if a == b {
		t.Fatal("ids must be unique")
	}
}

func TestContextRoundtrip(t *testing.T) {
	ctx := reqid.WithValue(context.Background(), "abc")
	if got := reqid.FromCtx(ctx); got != "abc" {
		t.Errorf("got %q", got)
	}
	if got := reqid.FromCtx(context.Background()); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestMiddlewareAssignsID(t *testing.T) {
	var seen string
	h := reqid.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = reqid.FromCtx(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatal("no id in context")
	}
	if rec.Header().Get(reqid.Header) != seen {
		t.Errorf("header %q != context %q", rec.Header().Get(reqid.Header), seen)
	}
}

func TestMiddlewareHonoursUpstreamID(t *testing.T) {
	var seen string
	h := reqid.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = reqid.FromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(reqid.Header, "from-gateway")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if seen != "from-gateway" {
		t.Errorf("got %q", seen)
	}
	if rec.Header().Get(reqid.Header) != "from-gateway" {
		t.Errorf("header %q", rec.Header().Get(reqid.Header))
	}
}
