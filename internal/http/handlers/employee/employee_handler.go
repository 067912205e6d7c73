package employee

import (
	"context"
	"log/slog"
	"net/http"

	"team-backoffice/internal/http/api"
	"team-backoffice/internal/http/handlers"
	mw "team-backoffice/internal/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type employeeService interface {
	List(ctx context.Context, teamID int) ([]api.EmployeeSchema, error)
	Get(ctx context.Context, teamID, memberID int) (*api.EmployeeSchema, error)
	Create(ctx context.Context, teamID int, req api.CreateEmployeeRequest) (*api.EmployeeSchema, error)
	Update(ctx context.Context, teamID, memberID int, fields api.EmployeeFields) (*api.EmployeeSchema, error)
	Delete(ctx context.Context, teamID, actorID, memberID int, ip string) (*api.DeleteEmployeeResponse, error)
}

type EmployeeHandler struct {
	log     *slog.Logger
	service employeeService
}

func NewEmployeeHandler(log *slog.Logger, s employeeService) *EmployeeHandler {
	return &EmployeeHandler{
		log:     log,
		service: s,
	}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.employee.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	scope := mw.GetScope(r.Context())
	if !scope.HasTeam {
		render.JSON(w, r, []api.EmployeeSchema{})
		return
	}

	resp, err := h.service.List(r.Context(), scope.TeamID)
	if err != nil {
		handlers.Error(w, r, log, err, "error while listing employees")
		return
	}

	render.JSON(w, r, resp)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.employee.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := handlers.PathID(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), mw.GetScope(r.Context()).TeamID, id)
	if err != nil {
		handlers.Error(w, r, log, err, "error while retrieving employee")
		return
	}

	render.JSON(w, r, resp)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.employee.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input api.CreateEmployeeRequest
	if !handlers.Decode(w, r, log, &input) {
		return
	}

	resp, err := h.service.Create(r.Context(), mw.GetScope(r.Context()).TeamID, input)
	if err != nil {
		handlers.Error(w, r, log, err, "error while creating employee")
		return
	}

	log.Info("employee created", slog.Int("member_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.employee.Update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := handlers.PathID(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var input api.EmployeeFields
	if !handlers.Decode(w, r, log, &input) {
		return
	}

	resp, err := h.service.Update(r.Context(), mw.GetScope(r.Context()).TeamID, id, input)
	if err != nil {
		handlers.Error(w, r, log, err, "error while updating employee")
		return
	}

	log.Info("employee updated", slog.Int("member_id", id))
	render.JSON(w, r, resp)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.employee.Delete"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := handlers.PathID(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	scope := mw.GetScope(r.Context())
	resp, err := h.service.Delete(r.Context(), scope.TeamID, scope.UserID, id, handlers.ClientIP(r))
	if err != nil {
		handlers.Error(w, r, log, err, "error while deleting employee")
		return
	}

	log.Info("employee deleted", slog.Int("member_id", id))
	render.JSON(w, r, resp)
}
