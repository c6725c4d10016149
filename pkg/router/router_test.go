package router_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/setu/pkg/router"
)

func echo(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}
}

func TestMethodDispatch(t *testing.T) {
	r := router.New()
	r.Get("/things", "things.list", echo("list"))
	r.Post("/things", "things.create", echo("create"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "list" {
		t.Errorf("GET: got %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/things", nil))
	if rec.Body.String() != "create" {
		t.Errorf("POST: got %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/things", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("DELETE: expected 405, got %d", rec.Code)
	}
}

func TestNamedRoutes(t *testing.T) {
	r := router.New()
	r.Get("/users/{id}", "users.show", echo("user"))

	path, ok := r.Path("users.show")
	if !ok || path != "/users/{id}" {
		t.Fatalf("Path: got %q %v", path, ok)
	}

	url, err := r.URL("users.show", map[string]string{"id": "42"})
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if url != "/users/42" {
		t.Errorf("URL: got %q", url)
	}

	if _, err := r.URL("users.show", nil); err == nil {
		t.Error("expected error for missing params")
	}
	if _, err := r.URL("nope", nil); err == nil {
		t.Error("expected error for unknown route")
	}
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var order []string
	tag := func(name string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := router.New()
	api := r.Group("/api", tag("group"))
	api.Get("/ping", "ping", echo("pong"), tag("route"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	if rec.Body.String() != "pong" {
		t.Fatalf("got %q", rec.Body.String())
	}
	if len(order) != 2 || order[0] != "group" || order[1] != "route" {
		t.Errorf("middleware order: %v", order)
	}
}

func TestRoutesListing(t *testing.T) {
	r := router.New()
	r.Post("/b", "b.create", echo(""))
	r.Get("/a", "a.show", echo(""))
	r.Get("/b", "b.list", echo(""))
	r.Get("/unnamed", "", echo(""))

	infos := r.Routes()
	if len(infos) != 3 {
		t.Fatalf("expected 3 named routes, got %d", len(infos))
	}
	if infos[0].Path != "/a" {
		t.Errorf("expected sorted by path, got %v", infos)
	}
	if infos[1].Method != http.MethodGet || infos[2].Method != http.MethodPost {
		t.Errorf("expected method tiebreak, got %v", infos)
	}
}
