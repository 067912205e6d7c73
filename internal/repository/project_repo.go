package repo

import (
	"context"
	"database/sql"
	"errors"

	"team-backoffice/internal/lib"
	"team-backoffice/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type ProjectRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewProjectRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *ProjectRepo {
	return &ProjectRepo{
		db:     db,
		getter: c,
	}
}

const projectColumns = `id, team_id, name, hours, cost, created_at, updated_at`

func (r *ProjectRepo) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	const op = "project_repo.Create"

	query := `
		INSERT INTO projects (team_id, name, hours, cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING ` + projectColumns

	var created models.Project
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &created, query, p.TeamID, p.Name, p.Hours, p.Cost)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &created, nil
}

func (r *ProjectRepo) ListByTeam(ctx context.Context, teamID int) ([]*models.Project, error) {
	const op = "project_repo.ListByTeam"

	query := `SELECT ` + projectColumns + ` FROM projects WHERE team_id = $1 ORDER BY created_at, id`

	projects := []*models.Project{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &projects, query, teamID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return projects, nil
}

func (r *ProjectRepo) GetByID(ctx context.Context, teamID, projectID int) (*models.Project, error) {
	const op = "project_repo.GetByID"

	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1 AND team_id = $2`

	var p models.Project
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &p, query, projectID, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &p, nil
}

func (r *ProjectRepo) SetCost(ctx context.Context, projectID int, cost decimal.Decimal) error {
	const op = "project_repo.SetCost"

	query := `UPDATE projects SET cost = $1, updated_at = now() WHERE id = $2`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, cost, projectID)
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

func (r *ProjectRepo) Delete(ctx context.Context, teamID, projectID int) error {
	const op = "project_repo.Delete"

	query := `DELETE FROM projects WHERE id = $1 AND team_id = $2`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, projectID, teamID)
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
