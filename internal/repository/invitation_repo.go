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

type InvitationRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewInvitationRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *InvitationRepo {
	return &InvitationRepo{
		db:     db,
		getter: c,
	}
}

const invitationColumns = `id, team_id, email, role, invited_by, invited_at, status`

func (r *InvitationRepo) Create(ctx context.Context, inv *models.Invitation) (*models.Invitation, error) {
	const op = "invitation_repo.Create"

	query := `
		INSERT INTO invitations (team_id, email, role, invited_by, invited_at, status)
		VALUES ($1, $2, $3, $4, now(), 'pending')
		RETURNING ` + invitationColumns

	var created models.Invitation
	err := r.getter.DefaultTrOrDB(ctx, r.db).
		GetContext(ctx, &created, query, inv.TeamID, inv.Email, inv.Role, inv.InvitedBy)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &created, nil
}

func (r *InvitationRepo) ListByTeam(ctx context.Context, teamID int) ([]*models.Invitation, error) {
	const op = "invitation_repo.ListByTeam"

	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE team_id = $1 ORDER BY invited_at DESC`

	invitations := []*models.Invitation{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &invitations, query, teamID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return invitations, nil
}

// GetPending finds a pending invitation addressed to email.
func (r *InvitationRepo) GetPending(ctx context.Context, id int, email string) (*models.Invitation, error) {
	const op = "invitation_repo.GetPending"

	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE id = $1 AND lower(email) = lower($2) AND status = 'pending'
	`

	var inv models.Invitation
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &inv, query, id, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &inv, nil
}

func (r *InvitationRepo) MarkAccepted(ctx context.Context, id int) error {
	const op = "invitation_repo.MarkAccepted"

	query := `UPDATE invitations SET status = 'accepted' WHERE id = $1`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, id)
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
