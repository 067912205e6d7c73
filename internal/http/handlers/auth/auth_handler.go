package auth

import (
	"context"
	"log/slog"
	"net/http"

	"team-backoffice/internal/http/api"
	"team-backoffice/internal/http/handlers"
	mw "team-backoffice/internal/http/middleware"
	authsvc "team-backoffice/internal/service/auth"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type authService interface {
	SignUp(ctx context.Context, in authsvc.SignUpInput) (*api.AuthResponse, error)
	SignIn(ctx context.Context, email, password, ip string) (*api.AuthResponse, error)
	Me(ctx context.Context, userID int) (*api.UserSchema, error)
}

type AuthHandler struct {
	log     *slog.Logger
	service authService
}

func NewAuthHandler(log *slog.Logger, s authService) *AuthHandler {
	return &AuthHandler{
		log:     log,
		service: s,
	}
}

type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=100"`
	Name     string `json:"name" validate:"max=100"`
	InviteID *int   `json:"invite_id" validate:"omitempty,gt=0"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=100"`
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.SignUp"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input SignUpRequest
	if !handlers.Decode(w, r, log, &input) {
		return
	}

	resp, err := h.service.SignUp(r.Context(), authsvc.SignUpInput{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
		InviteID: input.InviteID,
		IP:       handlers.ClientIP(r),
	})
	if err != nil {
		handlers.Error(w, r, log, err, "failed to sign up")
		return
	}

	log.Info("user signed up", slog.Int("user_id", resp.User.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.SignIn"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input SignInRequest
	if !handlers.Decode(w, r, log, &input) {
		return
	}

	resp, err := h.service.SignIn(r.Context(), input.Email, input.Password, handlers.ClientIP(r))
	if err != nil {
		handlers.Error(w, r, log, err, "failed to sign in")
		return
	}

	log.Info("user signed in", slog.Int("user_id", resp.User.ID))
	render.JSON(w, r, resp)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.Me"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	resp, err := h.service.Me(r.Context(), mw.UserID(r.Context()))
	if err != nil {
		handlers.Error(w, r, log, err, "failed to load user")
		return
	}

	render.JSON(w, r, resp)
}
