package link

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"team-backoffice/internal/http/api"
	"team-backoffice/internal/http/handlers"
	mw "team-backoffice/internal/http/middleware"
	"team-backoffice/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type linkService interface {
	List(ctx context.Context, teamID int, category string) ([]api.LinkSchema, error)
	Create(ctx context.Context, teamID, userID int, req api.LinkRequest) (*api.LinkSchema, error)
	Delete(ctx context.Context, teamID, linkID int) (*api.DeleteLinkResponse, error)
}

type LinkHandler struct {
	log     *slog.Logger
	service linkService
}

func NewLinkHandler(log *slog.Logger, s linkService) *LinkHandler {
	return &LinkHandler{
		log:     log,
		service: s,
	}
}

func (h *LinkHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.link.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	scope := mw.GetScope(r.Context())
	if !scope.HasTeam {
		render.JSON(w, r, []api.LinkSchema{})
		return
	}

	category := r.URL.Query().Get("category")
	if category != "" && !slices.Contains(models.LinkCategories, category) {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "unknown link category"))
		return
	}

	resp, err := h.service.List(r.Context(), scope.TeamID, category)
	if err != nil {
		handlers.Error(w, r, log, err, "error while listing links")
		return
	}

	render.JSON(w, r, resp)
}

func (h *LinkHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.link.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input api.LinkRequest
	if !handlers.Decode(w, r, log, &input) {
		return
	}

	scope := mw.GetScope(r.Context())
	resp, err := h.service.Create(r.Context(), scope.TeamID, scope.UserID, input)
	if err != nil {
		handlers.Error(w, r, log, err, "error while creating link")
		return
	}

	log.Info("link created", slog.Int("link_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

func (h *LinkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.link.Delete"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	raw := r.URL.Query().Get("id")
	if raw == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "id is required"))
		return
	}

	id, ok := handlers.PathID(w, r, raw)
	if !ok {
		return
	}

	resp, err := h.service.Delete(r.Context(), mw.GetScope(r.Context()).TeamID, id)
	if err != nil {
		handlers.Error(w, r, log, err, "error while deleting link")
		return
	}

	log.Info("link deleted", slog.Int("link_id", id))
	render.JSON(w, r, resp)
}
