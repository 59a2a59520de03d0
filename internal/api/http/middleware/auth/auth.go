package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"phonefix/internal/domain/user"
)

type Auth struct {
	users user.Servicer
	log   *slog.Logger
}

func New(users user.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		users: users,
		log:   log.With("component", "auth_middleware"),
	}
}

type contextKey string

const loginKey contextKey = "loginID"

const bearerPrefix = "Bearer "

// Middleware rejects requests without a resolvable bearer token. The 401 body
// is identical for a missing header, a malformed header and an unknown token.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			a.log.Debug("missing or malformed authorization header")
			writeUnauthorized(ctx)
			return
		}

		loginID, err := a.users.Validate(ctx.Context(), header[len(bearerPrefix):])
		if err != nil {
			a.log.Debug("token validation failed", "error", err)
			writeUnauthorized(ctx)
			return
		}

		newCtx := context.WithValue(ctx.Context(), loginKey, loginID)
		next(huma.WithContext(ctx, newCtx))
	}
}

func writeUnauthorized(ctx huma.Context) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")
	_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	})
}

// GetLogin returns the authenticated login id stored by the middleware.
func GetLogin(ctx context.Context) (string, bool) {
	loginID, ok := ctx.Value(loginKey).(string)
	return loginID, ok
}

// WithLogin is used by tests to simulate an authenticated request context.
func WithLogin(ctx context.Context, loginID string) context.Context {
	return context.WithValue(ctx, loginKey, loginID)
}
