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

type SettingsRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewSettingsRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *SettingsRepo {
	return &SettingsRepo{
		db:     db,
		getter: c,
	}
}

const settingsColumns = `
	id, team_id, number_of_employees, average_hours_per_employee,
	overhead_costs, equipment_costs, general_costs, created_at, updated_at`

func (r *SettingsRepo) GetByTeam(ctx context.Context, teamID int) (*models.TeamSettings, error) {
	const op = "settings_repo.GetByTeam"

	query := `SELECT ` + settingsColumns + ` FROM team_settings WHERE team_id = $1`

	var s models.TeamSettings
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &s, query, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &s, nil
}

// Save inserts the team's settings or replaces the existing ones.
func (r *SettingsRepo) Save(ctx context.Context, s *models.TeamSettings) (*models.TeamSettings, error) {
	const op = "settings_repo.Save"

	query := `
		INSERT INTO team_settings (
			team_id, number_of_employees, average_hours_per_employee,
			overhead_costs, equipment_costs, general_costs, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		ON CONFLICT (team_id) DO UPDATE SET
			number_of_employees = EXCLUDED.number_of_employees,
			average_hours_per_employee = EXCLUDED.average_hours_per_employee,
			overhead_costs = EXCLUDED.overhead_costs,
			equipment_costs = EXCLUDED.equipment_costs,
			general_costs = EXCLUDED.general_costs,
			updated_at = now()
		RETURNING ` + settingsColumns

	var saved models.TeamSettings
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(
		ctx,
		&saved,
		query,
		s.TeamID,
		s.NumberOfEmployees,
		s.AverageHoursPerEmployee,
		s.OverheadCosts,
		s.EquipmentCosts,
		s.GeneralCosts,
	)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &saved, nil
}
