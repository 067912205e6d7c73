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

type LinkRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewLinkRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *LinkRepo {
	return &LinkRepo{
		db:     db,
		getter: c,
	}
}

const linkColumns = `id, team_id, title, url, description, category, created_by, created_at, updated_at`

func (r *LinkRepo) Create(ctx context.Context, l *models.Link) (*models.Link, error) {
	const op = "link_repo.Create"

	query := `
		INSERT INTO team_links (team_id, title, url, description, category, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		RETURNING ` + linkColumns

	var created models.Link
	err := r.getter.DefaultTrOrDB(ctx, r.db).
		GetContext(ctx, &created, query, l.TeamID, l.Title, l.URL, l.Description, l.Category, l.CreatedBy)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &created, nil
}

// ListByTeam returns the team's links, oldest first. An empty category means all.
func (r *LinkRepo) ListByTeam(ctx context.Context, teamID int, category string) ([]*models.Link, error) {
	const op = "link_repo.ListByTeam"

	query := `
		SELECT ` + linkColumns + `
		FROM team_links
		WHERE team_id = $1 AND ($2::text = '' OR category = $2::text)
		ORDER BY created_at, id
	`

	links := []*models.Link{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &links, query, teamID, category)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return links, nil
}

func (r *LinkRepo) Delete(ctx context.Context, teamID, linkID int) (*models.Link, error) {
	const op = "link_repo.Delete"

	query := `
		DELETE FROM team_links
		WHERE id = $1 AND team_id = $2
		RETURNING ` + linkColumns

	var deleted models.Link
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &deleted, query, linkID, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &deleted, nil
}
