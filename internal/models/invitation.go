package models

import "time"

const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
)

type Invitation struct {
	ID        int       `db:"id"`
	TeamID    int       `db:"team_id"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	InvitedBy int       `db:"invited_by"`
	InvitedAt time.Time `db:"invited_at"`
	Status    string    `db:"status"`
}
