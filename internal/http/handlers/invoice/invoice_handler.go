package invoice

import (
	"context"
	"log/slog"
	"net/http"

	"team-backoffice/internal/http/api"
	"team-backoffice/internal/http/handlers"
	mw "team-backoffice/internal/http/middleware"
	"team-backoffice/internal/models"
	"team-backoffice/internal/report"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type invoiceService interface {
	List(ctx context.Context, teamID int, status string) ([]api.InvoiceSchema, error)
	Get(ctx context.Context, teamID int, invoiceID string) (*api.InvoiceSchema, error)
	Create(ctx context.Context, teamID, userID int, in api.InvoiceFields) (*api.InvoiceSchema, error)
	Update(ctx context.Context, teamID int, invoiceID string, in api.InvoiceFields) (*api.InvoiceSchema, error)
	Delete(ctx context.Context, teamID int, invoiceID string) error
	SetStatus(ctx context.Context, teamID int, invoiceID string, status models.InvoiceStatus) (*api.InvoiceSchema, error)
	Assign(ctx context.Context, teamID int, invoiceID string, userID int) (*api.InvoiceSchema, error)
	PDF(ctx context.Context, teamID int, invoiceID string) (*report.File, error)
}

type InvoiceHandler struct {
	log     *slog.Logger
	service invoiceService
}

func NewInvoiceHandler(log *slog.Logger, s invoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		log:     log,
		service: s,
	}
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft sent paid"`
}

type AssignRequest struct {
	UserID int `json:"user_id" validate:"required,gt=0"`
}

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.invoice.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	scope := mw.GetScope(r.Context())
	if !scope.HasTeam {
		render.JSON(w, r, []api.InvoiceSchema{})
		return
	}

	status := r.URL.Query().Get("status")
	switch models.InvoiceStatus(status) {
	case "", models.InvoiceDraft, models.InvoiceSent, models.InvoicePaid:
	default:
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "status must be one of [draft sent paid]"))
		return
	}

	resp, err := h.service.List(r.Context(), scope.TeamID, status)
	if err != nil {
		handlers.Error(w, r, log, err, "error while listing invoices")
		return
	}

	render.JSON(w, r, resp)
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.invoice.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	resp, err := h.service.Get(r.Context(), mw.GetScope(r.Context()).TeamID, chi.URLParam(r, "id"))
	if err != nil {
		handlers.Error(w, r, log, err, "error while retrieving invoice")
		return
	}

	render.JSON(w, r, resp)
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.invoice.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input api.InvoiceFields
	if !handlers.Decode(w, r, log, &input) {
		return
	}

	scope := mw.GetScope(r.Context())
	resp, err := h.service.Create(r.Context(), scope.TeamID, scope.UserID, input)
	if err != nil {
		handlers.Error(w, r, log, err, "error while creating invoice")
		return
	}

	log.Info("invoice created", slog.String("invoice_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.invoice.Update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input api.InvoiceFields
	if !handlers.Decode(w, r, log, &input) {
		return
	}

	resp, err := h.service.Update(r.Context(), mw.GetScope(r.Context()).TeamID, chi.URLParam(r, "id"), input)
	if err != nil {
		handlers.Error(w, r, log, err, "error while updating invoice")
		return
	}

	log.Info("invoice updated", slog.String("invoice_id", resp.ID))
	render.JSON(w, r, resp)
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.invoice.Delete"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), mw.GetScope(r.Context()).TeamID, id); err != nil {
		handlers.Error(w, r, log, err, "error while deleting invoice")
		return
	}

	log.Info("invoice deleted", slog.String("invoice_id", id))
	render.JSON(w, r, api.SuccessResponse{Success: true})
}

func (h *InvoiceHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.invoice.SetStatus"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input StatusRequest
	if !handlers.Decode(w, r, log, &input) {
		return
	}

	resp, err := h.service.SetStatus(r.Context(), mw.GetScope(r.Context()).TeamID, chi.URLParam(r, "id"),
		models.InvoiceStatus(input.Status))
	if err != nil {
		handlers.Error(w, r, log, err, "error while changing invoice status")
		return
	}

	log.Info("invoice status changed", slog.String("invoice_id", resp.ID), slog.String("status", resp.Status))
	render.JSON(w, r, resp)
}

func (h *InvoiceHandler) Assign(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.invoice.Assign"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input AssignRequest
	if !handlers.Decode(w, r, log, &input) {
		return
	}

	resp, err := h.service.Assign(r.Context(), mw.GetScope(r.Context()).TeamID, chi.URLParam(r, "id"), input.UserID)
	if err != nil {
		handlers.Error(w, r, log, err, "error while assigning invoice")
		return
	}

	log.Info("invoice assigned", slog.String("invoice_id", resp.ID), slog.Int("user_id", input.UserID))
	render.JSON(w, r, resp)
}

func (h *InvoiceHandler) PDF(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.invoice.PDF"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	f, err := h.service.PDF(r.Context(), mw.GetScope(r.Context()).TeamID, chi.URLParam(r, "id"))
	if err != nil {
		handlers.Error(w, r, log, err, "error while rendering invoice")
		return
	}

	handlers.Attachment(w, f)
}
