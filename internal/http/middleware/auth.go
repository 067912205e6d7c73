package middleware

import (
	"context"
	"net/http"
	"strings"

	"team-backoffice/internal/http/api"

	"github.com/go-chi/render"
)

type key int

const (
	userIDKey key = iota + 1
	scopeKey
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TokenParser
type TokenParser interface {
	Parse(token string) (int, error)
}

// Auth requires a valid bearer token and stores its user id in the request context.
func Auth(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || tokenString == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "missing bearer token"))
				return
			}

			userID, err := tokens.Parse(tokenString)
			if err != nil {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "invalid token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID returns the authenticated user id, or 0 outside of Auth.
func UserID(ctx context.Context) int {
	id, _ := ctx.Value(userIDKey).(int)
	return id
}
