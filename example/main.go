// Package main is a minimal project embedding the Setu server.
//
// To run this example:
//
//	cd example
//	go run .
//	# Then: curl http://localhost:8080/hello
package main

import (
	"net/http"

	"github.com/shashiranjanraj/setu/pkg/logger"
	"github.com/shashiranjanraj/setu/pkg/response"
	"github.com/shashiranjanraj/setu/pkg/router"
	"github.com/shashiranjanraj/setu/pkg/server"
)

// greeter is the shared application state. Every in-flight request reads
// it concurrently, so keep it immutable or guard mutation yourself.
type greeter struct {
	message string
}

// Mount implements server.App.
func (g *greeter) Mount(r *router.Router) {
	r.Get("/hello", "hello", g.handleHello)
	r.Get("/ping", "ping", handlePing)
}

func (g *greeter) handleHello(w http.ResponseWriter, r *http.Request) {
	logger.WithCtx(r.Context()).Info("greeting served")
	response.Success(w, map[string]string{"message": g.message})
}

func handlePing(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"pong": "true"})
}

func main() {
	srv := server.WithDefaults(&greeter{message: "Hello from Setu!"})

	if err := srv.Run(); err != nil {
		logger.Error("server stopped", "error", err.Error())
	}
}
