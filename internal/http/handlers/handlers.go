// Package handlers holds what the HTTP handlers of every resource share.
package handlers

import (
	"errors"
	"log/slog"
	"mime"
	"net"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"team-backoffice/internal/http/api"
	"team-backoffice/internal/lib/sl"
	"team-backoffice/internal/report"
	repo "team-backoffice/internal/repository"
	"team-backoffice/internal/service"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode reads the JSON body into v and validates it. When it returns false
// the error response has already been written.
func Decode(w http.ResponseWriter, r *http.Request, log *slog.Logger, v any) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return false
	}

	if err := validate.Struct(v); err != nil {
		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)

		var validateErr validator.ValidationErrors
		if errors.As(err, &validateErr) {
			render.JSON(w, r, api.ValidationError(validateErr))
		} else {
			render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		}
		return false
	}

	return true
}

// PathID parses a numeric URL parameter. Ids that are not numbers answer 404.
func PathID(w http.ResponseWriter, r *http.Request, raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, api.Error(api.ErrCodeNotFound, repo.ErrNotFound.Error()))
		return 0, false
	}
	return id, true
}

var errorStatus = []struct {
	err    error
	status int
	code   string
}{
	{repo.ErrNotFound, http.StatusNotFound, api.ErrCodeNotFound},
	{repo.ErrUserExists, http.StatusConflict, api.ErrCodeUserExists},
	{repo.ErrEmployeeExists, http.StatusConflict, api.ErrCodeEmployeeExists},
	{repo.ErrInvoiceExists, http.StatusConflict, api.ErrCodeInvoiceExists},
	{service.ErrInvalidStatus, http.StatusConflict, api.ErrCodeInvalidStatus},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, api.ErrCodeInvalidCreds},
	{service.ErrInvitationInvalid, http.StatusBadRequest, api.ErrCodeInvitationInvalid},
}

// Error writes the response for an error returned by a service. Unknown
// errors are logged and answered with 500.
func Error(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, msg string) {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			log.Info(msg, sl.Err(err))

			render.Status(r, e.status)
			render.JSON(w, r, api.Error(e.code, e.err.Error()))
			return
		}
	}

	log.Error(msg, sl.Err(err))

	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, api.InternalError())
}

// Attachment sends a rendered document as a download.
func Attachment(w http.ResponseWriter, f *report.File) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": f.Name}))
	w.Header().Set("Content-Length", strconv.Itoa(len(f.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(f.Data)
}

// ClientIP is the address of the caller as left by chi's RealIP middleware.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
