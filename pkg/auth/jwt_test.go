package auth_test

import (
	"context"
	"testing"

	"github.com/shashiranjanraj/setu/pkg/auth"
)

func TestTokenRoundtrip(t *testing.T) {
	token, err := auth.GenerateToken(42, "editor")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != 42 || claims.Role != "editor" {
		t.Errorf("claims: %+v", claims)
	}
}

func TestValidateRejectsTampered(t *testing.T) {
	token, err := auth.GenerateToken(1, "user")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := auth.ValidateToken(token + "x"); err == nil {
		t.Error("tampered token must not validate")
	}
}

func TestClaimsContext(t *testing.T) {
	claims := &auth.Claims{UserID: 9, Role: "viewer"}

	ctx := auth.WithClaims(context.Background(), claims)
	if got := auth.FromCtx(ctx); got != claims {
		t.Errorf("got %+v", got)
	}
	if auth.FromCtx(context.Background()) != nil {
		t.Error("expected nil for bare context")
	}
}
