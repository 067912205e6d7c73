package repo

import (
	"context"
	"database/sql"
	"errors"

	"team-backoffice/internal/lib"
	"team-backoffice/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type InvoiceRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewInvoiceRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *InvoiceRepo {
	return &InvoiceRepo{
		db:     db,
		getter: c,
	}
}

const invoiceColumns = `
	id, team_id, invoice_number, date, due_date, reference,
	from_name, from_email, from_address, to_name, to_email, to_address,
	items, notes, tax_rate, status, logo, created_by, assigned_to,
	created_at, updated_at`

func (r *InvoiceRepo) Create(ctx context.Context, inv *models.Invoice) (*models.Invoice, error) {
	const op = "invoice_repo.Create"

	query := `
		INSERT INTO invoices (
			id, team_id, invoice_number, date, due_date, reference,
			from_name, from_email, from_address, to_name, to_email, to_address,
			items, notes, tax_rate, status, logo, created_by, assigned_to,
			created_at, updated_at
		) VALUES (
			:id, :team_id, :invoice_number, :date, :due_date, :reference,
			:from_name, :from_email, :from_address, :to_name, :to_email, :to_address,
			:items, :notes, :tax_rate, :status, :logo, :created_by, :assigned_to,
			now(), now()
		)
		RETURNING ` + invoiceColumns

	return r.namedGet(ctx, op, query, inv)
}

// Update replaces the editable content of an invoice. Status and assignee
// have their own operations.
func (r *InvoiceRepo) Update(ctx context.Context, inv *models.Invoice) (*models.Invoice, error) {
	const op = "invoice_repo.Update"

	query := `
		UPDATE invoices SET
			invoice_number = :invoice_number,
			date = :date,
			due_date = :due_date,
			reference = :reference,
			from_name = :from_name,
			from_email = :from_email,
			from_address = :from_address,
			to_name = :to_name,
			to_email = :to_email,
			to_address = :to_address,
			items = :items,
			notes = :notes,
			tax_rate = :tax_rate,
			logo = :logo,
			updated_at = now()
		WHERE id = :id AND team_id = :team_id
		RETURNING ` + invoiceColumns

	return r.namedGet(ctx, op, query, inv)
}

func (r *InvoiceRepo) namedGet(ctx context.Context, op, query string, inv *models.Invoice) (*models.Invoice, error) {
	q, args, err := sqlx.Named(query, inv)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	var out models.Invoice
	err = r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &out, r.db.Rebind(q), args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrInvoiceExists
		}
		return nil, lib.Err(op, err)
	}

	return &out, nil
}

// ListByTeam returns the team's invoices, newest first. An empty status means all.
func (r *InvoiceRepo) ListByTeam(ctx context.Context, teamID int, status string) ([]*models.Invoice, error) {
	const op = "invoice_repo.ListByTeam"

	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE team_id = $1 AND ($2::text = '' OR status = $2::text)
		ORDER BY date DESC, created_at DESC
	`

	invoices := []*models.Invoice{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &invoices, query, teamID, status)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return invoices, nil
}

func (r *InvoiceRepo) GetByID(ctx context.Context, teamID int, invoiceID string) (*models.Invoice, error) {
	const op = "invoice_repo.GetByID"

	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 AND team_id = $2`

	var inv models.Invoice
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &inv, query, invoiceID, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &inv, nil
}

func (r *InvoiceRepo) SetStatus(ctx context.Context, teamID int, invoiceID string, status models.InvoiceStatus) error {
	const op = "invoice_repo.SetStatus"

	query := `UPDATE invoices SET status = $1, updated_at = now() WHERE id = $2 AND team_id = $3`

	return r.exec(ctx, op, query, status, invoiceID, teamID)
}

func (r *InvoiceRepo) Assign(ctx context.Context, teamID int, invoiceID string, userID int) error {
	const op = "invoice_repo.Assign"

	query := `UPDATE invoices SET assigned_to = $1, updated_at = now() WHERE id = $2 AND team_id = $3`

	return r.exec(ctx, op, query, userID, invoiceID, teamID)
}

func (r *InvoiceRepo) Delete(ctx context.Context, teamID int, invoiceID string) error {
	const op = "invoice_repo.Delete"

	query := `DELETE FROM invoices WHERE id = $1 AND team_id = $2`

	return r.exec(ctx, op, query, invoiceID, teamID)
}

func (r *InvoiceRepo) exec(ctx context.Context, op, query string, args ...any) error {
	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
