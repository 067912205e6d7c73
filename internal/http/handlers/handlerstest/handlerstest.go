// Package handlerstest provides helpers for handler tests.
package handlerstest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"team-backoffice/internal/http/api"
	mw "team-backoffice/internal/http/middleware"
	"team-backoffice/internal/lib/sl"
	"team-backoffice/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func NewLogger() *slog.Logger {
	return sl.Discard()
}

func DecodeErrorResponse(t *testing.T, body *bytes.Buffer) api.ErrorResponse {
	var resp api.ErrorResponse
	err := json.NewDecoder(body).Decode(&resp)
	assert.NoError(t, err)
	return resp
}

// Owner is the scope of user 7, owner of team 3.
func Owner() mw.Scope {
	return mw.Scope{UserID: 7, TeamID: 3, Role: models.RoleOwner, HasTeam: true}
}

// NoTeam is the scope of user 9 who belongs to no team.
func NoTeam() mw.Scope {
	return mw.Scope{UserID: 9}
}

func WithScope(r *http.Request, s mw.Scope) *http.Request {
	ctx := mw.WithUserID(r.Context(), s.UserID)
	return r.WithContext(mw.WithScope(ctx, s))
}

// WithURLParam sets a chi route parameter as the router would.
func WithURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
