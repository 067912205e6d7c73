package models

import (
	"strings"
	"time"
)

var LinkCategories = []string{"suppliers", "clients", "resources", "tools", "other"}

type Link struct {
	ID          int       `db:"id"`
	TeamID      int       `db:"team_id"`
	Title       string    `db:"title"`
	URL         string    `db:"url"`
	Description *string   `db:"description"`
	Category    string    `db:"category"`
	CreatedBy   int       `db:"created_by"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// NormalizeURL prepends https:// to addresses typed without a scheme.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}
