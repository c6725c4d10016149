package middleware

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/setu/pkg/auth"
	"github.com/shashiranjanraj/setu/pkg/response"
)

// Auth rejects requests without a valid Bearer token. Valid claims are
// stored in the request context for handlers via auth.FromCtx.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || token == r.Header.Get("Authorization") {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
	})
}
