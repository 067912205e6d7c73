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

type TeamRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewTeamRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *TeamRepo {
	return &TeamRepo{
		db:     db,
		getter: c,
	}
}

const teamColumns = `
	id, name, slug, created_at, updated_at,
	company_name, company_address, company_phone, company_email,
	company_website, company_org_number, company_vat_number,
	theme, logo, primary_color, secondary_color, timezone,
	language, currency, date_format, time_format`

func (r *TeamRepo) Create(ctx context.Context, name, slug string) (*models.Team, error) {
	const op = "team_repo.Create"

	query := `
		INSERT INTO teams (name, slug, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		RETURNING ` + teamColumns

	var team models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &team, query, name, slug)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrTeamExists
		}
		return nil, lib.Err(op, err)
	}

	return &team, nil
}

func (r *TeamRepo) GetByID(ctx context.Context, teamID int) (*models.Team, error) {
	const op = "team_repo.GetByID"

	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`

	var team models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &team, query, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &team, nil
}

func (r *TeamRepo) UpdateCompany(ctx context.Context, teamID int, c models.Company) (*models.Team, error) {
	const op = "team_repo.UpdateCompany"

	query := `
		UPDATE teams SET
			company_name = :company_name,
			company_address = :company_address,
			company_phone = :company_phone,
			company_email = :company_email,
			company_website = :company_website,
			company_org_number = :company_org_number,
			company_vat_number = :company_vat_number,
			theme = :theme,
			logo = :logo,
			primary_color = :primary_color,
			secondary_color = :secondary_color,
			timezone = :timezone,
			language = :language,
			currency = :currency,
			date_format = :date_format,
			time_format = :time_format,
			updated_at = now()
		WHERE id = :id
		RETURNING ` + teamColumns

	q, args, err := sqlx.Named(query, struct {
		models.Company
		ID int `db:"id"`
	}{Company: c, ID: teamID})
	if err != nil {
		return nil, lib.Err(op, err)
	}

	var team models.Team
	err = r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &team, r.db.Rebind(q), args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &team, nil
}

// GetMembership returns the first team the user joined.
func (r *TeamRepo) GetMembership(ctx context.Context, userID int) (*models.Membership, error) {
	const op = "team_repo.GetMembership"

	query := `
		SELECT id AS member_id, team_id, role
		FROM team_members
		WHERE user_id = $1
		ORDER BY joined_at, id
		LIMIT 1
	`

	var m models.Membership
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &m, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &m, nil
}
