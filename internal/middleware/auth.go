package middleware

import (
	"context"
	"strings"

	"github.com/renewed-app/backend/internal/model"
	"github.com/renewed-app/backend/pkg/errorx"
	"github.com/renewed-app/backend/pkg/jwt"
	"github.com/renewed-app/backend/pkg/router"
	"github.com/renewed-app/backend/pkg/xcontext"
)

// AuthVerifier resolves the requesting user from the bearer token and stores
// the user id in the context for domains to pick up.
func AuthVerifier(tokenEngine *jwt.Engine[model.AccessToken]) router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		token := bearerToken(ctx)
		if token == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		info, err := tokenEngine.Verify(token)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
			return nil, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		return xcontext.WithRequestUserID(ctx, info.ID), nil
	}
}

func bearerToken(ctx context.Context) string {
	r := xcontext.HTTPRequest(ctx)
	if r == nil {
		return ""
	}

	authorization := r.Header.Get("Authorization")
	prefix, token, found := strings.Cut(authorization, " ")
	if !found || !strings.EqualFold(prefix, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}
