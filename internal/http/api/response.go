package api

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ErrInternalErr           = "INTERNAL_ERROR"
	ErrValidationErr         = "VALIDATION_ERROR"
	ErrBadRequest            = "BAD_REQUEST"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeNoTeam            = "NO_TEAM"
	ErrCodeUserExists        = "USER_EXISTS"
	ErrCodeInvalidCreds      = "INVALID_CREDENTIALS"
	ErrCodeEmployeeExists    = "EMPLOYEE_EXISTS"
	ErrCodeInvoiceExists     = "INVOICE_EXISTS"
	ErrCodeInvalidStatus     = "INVALID_STATUS"
	ErrCodeInvitationInvalid = "INVITATION_INVALID"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  UserSchema `json:"user"`
}

type DeleteEmployeeResponse struct {
	Success         bool           `json:"success"`
	DeletedEmployee EmployeeSchema `json:"deleted_employee"`
}

type DeleteLinkResponse struct {
	Success     bool       `json:"success"`
	DeletedLink LinkSchema `json:"deleted_link"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

func Error(code string, msg string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: msg,
		},
	}
}

func InternalError() ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrInternalErr,
			Message: "internal server error",
		},
	}
}

func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errMsgs []string
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is required", err.Field()))
		case "max":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be no more than %s characters", err.Field(), err.Param()),
			)
		case "min":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be at least %s characters", err.Field(), err.Param()),
			)
		case "oneof":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be one of [%s]", err.Field(), err.Param()),
			)
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' must be a valid email", err.Field()))
		case "gte", "gt", "lte", "lt":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' must be %s %s", err.Field(), err.ActualTag(), err.Param()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is not valid", err.Field()))
		}
	}

	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrValidationErr,
			Message: strings.Join(errMsgs, ", "),
		},
	}
}
