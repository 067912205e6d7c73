package models

import "time"

const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

type Team struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	Company
}

// Company is the editable profile of a team.
type Company struct {
	CompanyName      string `db:"company_name"`
	CompanyAddress   string `db:"company_address"`
	CompanyPhone     string `db:"company_phone"`
	CompanyEmail     string `db:"company_email"`
	CompanyWebsite   string `db:"company_website"`
	CompanyOrgNumber string `db:"company_org_number"`
	CompanyVatNumber string `db:"company_vat_number"`

	Theme          string `db:"theme"`
	Logo           string `db:"logo"`
	PrimaryColor   string `db:"primary_color"`
	SecondaryColor string `db:"secondary_color"`
	Timezone       string `db:"timezone"`
	Language       string `db:"language"`
	Currency       string `db:"currency"`
	DateFormat     string `db:"date_format"`
	TimeFormat     string `db:"time_format"`
}

// Membership is the team a user acts in.
type Membership struct {
	MemberID int    `db:"member_id"`
	TeamID   int    `db:"team_id"`
	Role     string `db:"role"`
}
