package repo

import (
	"errors"

	"github.com/lib/pq"
)

const (
	uniqueViolationCode = "23505"
)

var (
	ErrNotFound       = errors.New("resource not found")
	ErrUserExists     = errors.New("user with this email already exists")
	ErrTeamExists     = errors.New("team with this slug already exists")
	ErrEmployeeExists = errors.New("user is already a member of this team")
	ErrInvoiceExists  = errors.New("invoice with this number already exists")
)

// isUniqueViolation reports whether err is a postgres unique constraint error.
func isUniqueViolation(err error) bool {
	pgErr := &pq.Error{}
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return false
}
