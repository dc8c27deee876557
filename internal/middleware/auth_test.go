package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/renewed-app/backend/internal/model"
	"github.com/renewed-app/backend/pkg/jwt"
	"github.com/renewed-app/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func TestAuthVerifier(t *testing.T) {
	tokenEngine := jwt.NewEngine[model.AccessToken]("secret", time.Minute)
	verifier := AuthVerifier(tokenEngine)

	token, err := tokenEngine.Generate("user1", model.AccessToken{ID: "user1", Name: "alice"})
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/getProgress", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	ctx, err := verifier(xcontext.WithHTTPRequest(context.Background(), r))
	require.NoError(t, err)
	require.Equal(t, "user1", xcontext.RequestUserID(ctx))
}

func TestAuthVerifierRejects(t *testing.T) {
	tokenEngine := jwt.NewEngine[model.AccessToken]("secret", time.Minute)
	verifier := AuthVerifier(tokenEngine)

	// No token at all.
	r := httptest.NewRequest("GET", "/getProgress", nil)
	_, err := verifier(xcontext.WithHTTPRequest(context.Background(), r))
	require.Error(t, err)

	// Token signed with another secret.
	otherEngine := jwt.NewEngine[model.AccessToken]("not secret", time.Minute)
	token, err := otherEngine.Generate("user1", model.AccessToken{ID: "user1"})
	require.NoError(t, err)

	r = httptest.NewRequest("GET", "/getProgress", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	_, err = verifier(xcontext.WithHTTPRequest(context.Background(), r))
	require.Error(t, err)
}
