package api

import (
	"context"
	"net/http"
	"strings"

	"streamhub/internal/domain"
)

type contextKey string

const userContextKey contextKey = "streamhub.user"

func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	return user, ok
}

// RequireAuth resolves the bearer token and injects the authenticated user
// into the request context; anything short of a valid access token is 401.
func RequireAuth(service domain.AuthService, responder *Responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				responder.Error(w, domain.Unauthorized("Not authenticated"))
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				responder.Error(w, domain.Unauthorized("Invalid authorization header"))
				return
			}

			user, err := service.ResolveUser(token)
			if err != nil {
				responder.Error(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
