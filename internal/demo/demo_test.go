package demo_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/setu/internal/demo"
	"github.com/shashiranjanraj/setu/pkg/auth"
	"github.com/shashiranjanraj/setu/pkg/reqid"
	"github.com/shashiranjanraj/setu/pkg/server"
)

// newHandler builds the demo app through the real pipeline so these tests
// also cover request IDs and CORS end to end.
func newHandler(t *testing.T) http.Handler {
	t.Helper()
	return server.WithDefaults(demo.NewApp("test")).Build()
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(reqid.Header))

	body := decode(t, rec)
	data := body["data"].(map[string]any)
	assert.Equal(t, "ok", data["status"])
}

func TestVersion(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "test", data["version"])
}

func TestWhoamiRequiresAuth(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWhoamiWithToken(t *testing.T) {
	token, err := auth.GenerateToken(7, "admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	newHandler(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, float64(7), data["user_id"])
	assert.Equal(t, "admin", data["role"])
}

func TestEcho(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/echo", strings.NewReader(`{"hello":"world"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newHandler(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]any)
	assert.NotEmpty(t, data["request_id"])
	assert.Equal(t, map[string]any{"hello": "world"}, data["echo"])
}

func TestEchoRejectsBadJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/echo", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()
	newHandler(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
