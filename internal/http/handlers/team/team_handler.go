package team

import (
	"context"
	"log/slog"
	"net/http"

	"team-backoffice/internal/http/api"
	"team-backoffice/internal/http/handlers"
	mw "team-backoffice/internal/http/middleware"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type teamService interface {
	Get(ctx context.Context, teamID int) (*api.TeamSchema, error)
	UpdateCompany(ctx context.Context, teamID int, company api.CompanySchema) (*api.TeamSchema, error)
	Invite(ctx context.Context, teamID, invitedBy int, email, role, ip string) (*api.InvitationSchema, error)
	Invitations(ctx context.Context, teamID int) ([]api.InvitationSchema, error)
	Activity(ctx context.Context, teamID int) ([]api.ActivitySchema, error)
}

type TeamHandler struct {
	log     *slog.Logger
	service teamService
}

func NewTeamHandler(log *slog.Logger, s teamService) *TeamHandler {
	return &TeamHandler{
		log:     log,
		service: s,
	}
}

type InviteRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Role  string `json:"role" validate:"required,oneof=owner member"`
}

func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	resp, err := h.service.Get(r.Context(), mw.GetScope(r.Context()).TeamID)
	if err != nil {
		handlers.Error(w, r, log, err, "error while retrieving team")
		return
	}

	log.Info("team retrieved")
	render.JSON(w, r, resp)
}

func (h *TeamHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.UpdateCompany"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input api.CompanySchema
	if !handlers.Decode(w, r, log, &input) {
		return
	}

	resp, err := h.service.UpdateCompany(r.Context(), mw.GetScope(r.Context()).TeamID, input)
	if err != nil {
		handlers.Error(w, r, log, err, "error while updating company")
		return
	}

	log.Info("company updated")
	render.JSON(w, r, resp)
}

func (h *TeamHandler) Invite(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Invite"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input InviteRequest
	if !handlers.Decode(w, r, log, &input) {
		return
	}

	scope := mw.GetScope(r.Context())
	resp, err := h.service.Invite(r.Context(), scope.TeamID, scope.UserID, input.Email, input.Role, handlers.ClientIP(r))
	if err != nil {
		handlers.Error(w, r, log, err, "error while inviting member")
		return
	}

	log.Info("member invited", slog.Int("invitation_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

func (h *TeamHandler) Invitations(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Invitations"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	resp, err := h.service.Invitations(r.Context(), mw.GetScope(r.Context()).TeamID)
	if err != nil {
		handlers.Error(w, r, log, err, "error while listing invitations")
		return
	}

	render.JSON(w, r, resp)
}

func (h *TeamHandler) Activity(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Activity"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	scope := mw.GetScope(r.Context())
	if !scope.HasTeam {
		render.JSON(w, r, []api.ActivitySchema{})
		return
	}

	resp, err := h.service.Activity(r.Context(), scope.TeamID)
	if err != nil {
		handlers.Error(w, r, log, err, "error while listing activity")
		return
	}

	render.JSON(w, r, resp)
}
