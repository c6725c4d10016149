package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/setu/pkg/auth"
	"github.com/shashiranjanraj/setu/pkg/middleware"
)

func TestAuthRejectsMissingToken(t *testing.T) {
	h := middleware.Auth(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("got %d", rec.Code)
	}
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	h := middleware.Auth(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("got %d", rec.Code)
	}
}

func TestAuthAcceptsValidToken(t *testing.T) {
	token, err := auth.GenerateToken(7, "admin")
	if err != nil {
		t.Fatal(err)
	}

	var claims *auth.Claims
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims = auth.FromCtx(r.Context())
	})
	h := middleware.Auth(inner)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	if claims == nil || claims.UserID != 7 || claims.Role != "admin" {
		t.Errorf("claims: %+v", claims)
	}
}
