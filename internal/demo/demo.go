// Package demo is the small application served by `setu serve`. It exists
// so the binary can demonstrate the full pipeline (routing, request IDs,
// tracing, CORS, metrics, auth, rate limiting) without an embedding
// project.
package demo

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shashiranjanraj/setu/pkg/auth"
	"github.com/shashiranjanraj/setu/pkg/logger"
	"github.com/shashiranjanraj/setu/pkg/metrics"
	"github.com/shashiranjanraj/setu/pkg/middleware"
	"github.com/shashiranjanraj/setu/pkg/reqid"
	"github.com/shashiranjanraj/setu/pkg/response"
	"github.com/shashiranjanraj/setu/pkg/router"
)

// App implements server.App. One value is shared by every in-flight
// request; all fields are set once before Run and read-only after.
type App struct {
	Version   string
	startedAt time.Time
}

// NewApp creates the demo application.
func NewApp(version string) *App {
	return &App{Version: version, startedAt: time.Now()}
}

// Mount registers the demo routes.
func (a *App) Mount(r *router.Router) {
	r.Get("/healthz", "health", a.handleHealth)
	r.Get("/version", "version", a.handleVersion)
	r.Get("/metrics", "metrics", metrics.Handler())

	api := r.Group("/api", middleware.RateLimit(200, time.Minute))
	api.Get("/whoami", "whoami", a.handleWhoami, middleware.Auth)
	api.Post("/echo", "echo", a.handleEcho)
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]any{
		"status": "ok",
		"uptime": time.Since(a.startedAt).String(),
	})
}

func (a *App) handleVersion(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"version": a.Version})
}

func (a *App) handleWhoami(w http.ResponseWriter, r *http.Request) {
	claims := auth.FromCtx(r.Context())
	if claims == nil {
		response.Unauthorized(w)
		return
	}

	response.Success(w, map[string]any{
		"user_id": claims.UserID,
		"role":    claims.Role,
	})
}

func (a *App) handleEcho(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	logger.WithCtx(r.Context()).Debug("echo", "keys", len(body))

	response.Success(w, map[string]any{
		"request_id": reqid.FromCtx(r.Context()),
		"echo":       body,
	})
}
