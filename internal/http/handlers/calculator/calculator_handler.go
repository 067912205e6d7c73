package calculator

import (
	"context"
	"log/slog"
	"net/http"

	"team-backoffice/internal/costcalc"
	"team-backoffice/internal/http/api"
	"team-backoffice/internal/http/handlers"
	mw "team-backoffice/internal/http/middleware"
	"team-backoffice/internal/report"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type calculatorService interface {
	Settings(ctx context.Context, teamID int) (*api.SettingsSchema, error)
	SaveSettings(ctx context.Context, teamID int, in costcalc.Settings) (*api.SettingsSchema, error)
	Compute(ctx context.Context, teamID int, projectName string, projectHours float64) (*costcalc.Breakdown, error)
	Report(ctx context.Context, teamID int, projectName string, projectHours float64) (*report.File, error)
	Projects(ctx context.Context, teamID int) ([]api.ProjectSchema, error)
	CreateProject(ctx context.Context, teamID int, name string, hours int) (*api.ProjectSchema, error)
	DeleteProject(ctx context.Context, teamID, projectID int) error
	ProjectReport(ctx context.Context, teamID, projectID int) (*report.File, error)
}

type CalculatorHandler struct {
	log     *slog.Logger
	service calculatorService
}

func NewCalculatorHandler(log *slog.Logger, s calculatorService) *CalculatorHandler {
	return &CalculatorHandler{
		log:     log,
		service: s,
	}
}

type CalculateRequest struct {
	ProjectName  string  `json:"project_name" validate:"max=255"`
	ProjectHours float64 `json:"project_hours" validate:"gte=0"`
}

type ProjectRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Hours int    `json:"hours" validate:"gt=0"`
}

func (h *CalculatorHandler) Settings(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.calculator.Settings"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	scope := mw.GetScope(r.Context())
	if !scope.HasTeam {
		render.JSON(w, r, api.SettingsSchema{Settings: costcalc.DefaultSettings(), IsDefault: true})
		return
	}

	resp, err := h.service.Settings(r.Context(), scope.TeamID)
	if err != nil {
		handlers.Error(w, r, log, err, "error while loading settings")
		return
	}

	render.JSON(w, r, resp)
}

func (h *CalculatorHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.calculator.SaveSettings"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input costcalc.Settings
	if !handlers.Decode(w, r, log, &input) {
		return
	}

	resp, err := h.service.SaveSettings(r.Context(), mw.GetScope(r.Context()).TeamID, input)
	if err != nil {
		handlers.Error(w, r, log, err, "error while saving settings")
		return
	}

	log.Info("settings saved")
	render.JSON(w, r, resp)
}

func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.calculator.Calculate"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input CalculateRequest
	if !handlers.Decode(w, r, log, &input) {
		return
	}

	resp, err := h.service.Compute(r.Context(), mw.GetScope(r.Context()).TeamID, input.ProjectName, input.ProjectHours)
	if err != nil {
		handlers.Error(w, r, log, err, "error while calculating")
		return
	}

	render.JSON(w, r, resp)
}

func (h *CalculatorHandler) Report(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.calculator.Report"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input CalculateRequest
	if !handlers.Decode(w, r, log, &input) {
		return
	}

	f, err := h.service.Report(r.Context(), mw.GetScope(r.Context()).TeamID, input.ProjectName, input.ProjectHours)
	if err != nil {
		handlers.Error(w, r, log, err, "error while rendering report")
		return
	}

	log.Info("report rendered", slog.String("file", f.Name))
	handlers.Attachment(w, f)
}

func (h *CalculatorHandler) Projects(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.calculator.Projects"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	scope := mw.GetScope(r.Context())
	if !scope.HasTeam {
		render.JSON(w, r, []api.ProjectSchema{})
		return
	}

	resp, err := h.service.Projects(r.Context(), scope.TeamID)
	if err != nil {
		handlers.Error(w, r, log, err, "error while listing projects")
		return
	}

	render.JSON(w, r, resp)
}

func (h *CalculatorHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.calculator.CreateProject"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input ProjectRequest
	if !handlers.Decode(w, r, log, &input) {
		return
	}

	resp, err := h.service.CreateProject(r.Context(), mw.GetScope(r.Context()).TeamID, input.Name, input.Hours)
	if err != nil {
		handlers.Error(w, r, log, err, "error while creating project")
		return
	}

	log.Info("project created", slog.Int("project_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

func (h *CalculatorHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.calculator.DeleteProject"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := handlers.PathID(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.DeleteProject(r.Context(), mw.GetScope(r.Context()).TeamID, id); err != nil {
		handlers.Error(w, r, log, err, "error while deleting project")
		return
	}

	log.Info("project deleted", slog.Int("project_id", id))
	render.JSON(w, r, api.SuccessResponse{Success: true})
}

func (h *CalculatorHandler) ProjectReport(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.calculator.ProjectReport"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := handlers.PathID(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	f, err := h.service.ProjectReport(r.Context(), mw.GetScope(r.Context()).TeamID, id)
	if err != nil {
		handlers.Error(w, r, log, err, "error while rendering report")
		return
	}

	log.Info("report rendered", slog.String("file", f.Name))
	handlers.Attachment(w, f)
}
