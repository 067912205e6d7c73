package models

import "time"

// Member is a row of team_members: a user's employment record in a team.
type Member struct {
	ID               int              `db:"id"`
	UserID           int              `db:"user_id"`
	TeamID           int              `db:"team_id"`
	Role             string           `db:"role"`
	Position         string           `db:"position"`
	Department       string           `db:"department"`
	Phone            string           `db:"phone"`
	Address          string           `db:"address"`
	HireDate         *time.Time       `db:"hire_date"`
	EmergencyContact string           `db:"emergency_contact"`
	Skills           JSONList[string] `db:"skills"`
	Certifications   JSONList[string] `db:"certifications"`
	JoinedAt         time.Time        `db:"joined_at"`
	UpdatedAt        time.Time        `db:"updated_at"`
}

// Employee is a member joined with its user.
type Employee struct {
	Member
	Name  string `db:"name"`
	Email string `db:"email"`
}
