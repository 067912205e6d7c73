package repo

import (
	"context"

	"team-backoffice/internal/lib"
	"team-backoffice/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type ActivityRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewActivityRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *ActivityRepo {
	return &ActivityRepo{
		db:     db,
		getter: c,
	}
}

func (r *ActivityRepo) Log(ctx context.Context, a *models.Activity) error {
	const op = "activity_repo.Log"

	query := `
		INSERT INTO activity_logs (team_id, user_id, action, timestamp, ip_address)
		VALUES ($1, $2, $3, now(), $4)
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, a.TeamID, a.UserID, a.Action, a.IPAddress)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *ActivityRepo) ListByTeam(ctx context.Context, teamID, limit int) ([]*models.Activity, error) {
	const op = "activity_repo.ListByTeam"

	query := `
		SELECT a.id, a.team_id, a.user_id, u.name AS user_name, a.action, a.timestamp, a.ip_address
		FROM activity_logs a
		LEFT JOIN users u ON a.user_id = u.id
		WHERE a.team_id = $1
		ORDER BY a.timestamp DESC, a.id DESC
		LIMIT $2
	`

	activities := []*models.Activity{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &activities, query, teamID, limit)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return activities, nil
}
