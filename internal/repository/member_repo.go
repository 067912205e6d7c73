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

type MemberRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewMemberRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *MemberRepo {
	return &MemberRepo{
		db:     db,
		getter: c,
	}
}

const memberColumns = `
	id, user_id, team_id, role, position, department, phone, address,
	hire_date, emergency_contact, skills, certifications, joined_at, updated_at`

const employeeSelect = `
	SELECT
		tm.id, tm.user_id, tm.team_id, tm.role, tm.position, tm.department,
		tm.phone, tm.address, tm.hire_date, tm.emergency_contact, tm.skills,
		tm.certifications, tm.joined_at, tm.updated_at,
		COALESCE(u.name, '') AS name,
		COALESCE(u.email, '') AS email
	FROM team_members tm
	LEFT JOIN users u ON tm.user_id = u.id`

func (r *MemberRepo) Add(ctx context.Context, m *models.Member) (*models.Member, error) {
	const op = "member_repo.Add"

	query := `
		INSERT INTO team_members (
			user_id, team_id, role, position, department, phone, address,
			hire_date, emergency_contact, skills, certifications, joined_at, updated_at
		) VALUES (
			:user_id, :team_id, :role, :position, :department, :phone, :address,
			:hire_date, :emergency_contact, :skills, :certifications, now(), now()
		)
		RETURNING ` + memberColumns

	q, args, err := sqlx.Named(query, m)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	var created models.Member
	err = r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &created, r.db.Rebind(q), args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmployeeExists
		}
		return nil, lib.Err(op, err)
	}

	return &created, nil
}

func (r *MemberRepo) ListByTeam(ctx context.Context, teamID int) ([]*models.Employee, error) {
	const op = "member_repo.ListByTeam"

	query := employeeSelect + `
		WHERE tm.team_id = $1
		ORDER BY tm.joined_at, tm.id
	`

	employees := []*models.Employee{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &employees, query, teamID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return employees, nil
}

func (r *MemberRepo) GetByID(ctx context.Context, teamID, memberID int) (*models.Employee, error) {
	const op = "member_repo.GetByID"

	query := employeeSelect + `
		WHERE tm.id = $1 AND tm.team_id = $2
		LIMIT 1
	`

	var employee models.Employee
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &employee, query, memberID, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &employee, nil
}

func (r *MemberRepo) IsMember(ctx context.Context, teamID, userID int) (bool, error) {
	const op = "member_repo.IsMember"

	query := `SELECT EXISTS (SELECT 1 FROM team_members WHERE team_id = $1 AND user_id = $2)`

	var exists bool
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &exists, query, teamID, userID)
	if err != nil {
		return false, lib.Err(op, err)
	}

	return exists, nil
}

// Update overwrites the employment fields of a member in the team.
func (r *MemberRepo) Update(ctx context.Context, m *models.Member) (*models.Member, error) {
	const op = "member_repo.Update"

	query := `
		UPDATE team_members SET
			role = :role,
			position = :position,
			department = :department,
			phone = :phone,
			address = :address,
			hire_date = :hire_date,
			emergency_contact = :emergency_contact,
			skills = :skills,
			certifications = :certifications,
			updated_at = now()
		WHERE id = :id AND team_id = :team_id
		RETURNING ` + memberColumns

	q, args, err := sqlx.Named(query, m)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	var updated models.Member
	err = r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &updated, r.db.Rebind(q), args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &updated, nil
}

func (r *MemberRepo) Delete(ctx context.Context, teamID, memberID int) (*models.Member, error) {
	const op = "member_repo.Delete"

	query := `
		DELETE FROM team_members
		WHERE id = $1 AND team_id = $2
		RETURNING ` + memberColumns

	var deleted models.Member
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &deleted, query, memberID, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &deleted, nil
}
