package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Project struct {
	ID        int             `db:"id"`
	TeamID    int             `db:"team_id"`
	Name      string          `db:"name"`
	Hours     int             `db:"hours"`
	Cost      decimal.Decimal `db:"cost"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}
