package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"team-backoffice/internal/http/api"
	"team-backoffice/internal/lib/sl"
	"team-backoffice/internal/models"
	repo "team-backoffice/internal/repository"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Scope is the team an authenticated user is acting in.
type Scope struct {
	UserID  int
	TeamID  int
	Role    string
	HasTeam bool
}

func (s Scope) IsOwner() bool {
	return s.HasTeam && s.Role == models.RoleOwner
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=MembershipProvider
type MembershipProvider interface {
	GetMembership(ctx context.Context, userID int) (*models.Membership, error)
}

// TeamScope resolves the first team of the authenticated user.
// Users without a team pass through with an empty scope.
func TeamScope(log *slog.Logger, memberships MembershipProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope := Scope{UserID: UserID(r.Context())}

			m, err := memberships.GetMembership(r.Context(), scope.UserID)
			switch {
			case err == nil:
				scope.TeamID = m.TeamID
				scope.Role = m.Role
				scope.HasTeam = true
			case errors.Is(err, repo.ErrNotFound):
			default:
				log.Error("failed to resolve team",
					slog.String("request_id", middleware.GetReqID(r.Context())),
					sl.Err(err),
				)
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, api.InternalError())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithScope(r.Context(), scope)))
		})
	}
}

// RequireTeam rejects users that do not belong to any team.
func RequireTeam(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !GetScope(r.Context()).HasTeam {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNoTeam, "user is not a member of any team"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// OwnerOnly rejects members that do not own their team.
func OwnerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope := GetScope(r.Context())
		if !scope.HasTeam {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNoTeam, "user is not a member of any team"))
			return
		}
		if !scope.IsOwner() {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, api.Error(api.ErrCodeForbidden, "only the team owner can do this"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey, s)
}

func GetScope(ctx context.Context) Scope {
	s, _ := ctx.Value(scopeKey).(Scope)
	return s
}
