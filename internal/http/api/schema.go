package api

import (
	"time"

	"team-backoffice/internal/costcalc"
	"team-backoffice/internal/models"
)

const DateLayout = "2006-01-02"

type UserSchema struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type TeamSchema struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	CompanySchema
	Members   []TeamMember `json:"members"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type TeamMember struct {
	ID     int    `json:"id"`
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// CompanySchema is both the company profile payload and its representation.
type CompanySchema struct {
	CompanyName      string `json:"company_name" validate:"required,min=2"`
	CompanyAddress   string `json:"company_address" validate:"required,min=5"`
	CompanyPhone     string `json:"company_phone" validate:"required,min=8"`
	CompanyEmail     string `json:"company_email" validate:"required,email"`
	CompanyWebsite   string `json:"company_website" validate:"omitempty,url"`
	CompanyOrgNumber string `json:"company_org_number" validate:"omitempty,min=9"`
	CompanyVatNumber string `json:"company_vat_number" validate:"omitempty,min=9"`

	Theme          string `json:"theme" validate:"required,oneof=light dark system"`
	Logo           string `json:"logo"`
	PrimaryColor   string `json:"primary_color" validate:"omitempty,hexcolor"`
	SecondaryColor string `json:"secondary_color" validate:"omitempty,hexcolor"`
	Timezone       string `json:"timezone" validate:"required,timezone"`
	Language       string `json:"language" validate:"required,oneof=no en"`
	Currency       string `json:"currency" validate:"required,oneof=NOK EUR USD"`
	DateFormat     string `json:"date_format" validate:"required,oneof=DD.MM.YYYY YYYY-MM-DD MM/DD/YYYY"`
	TimeFormat     string `json:"time_format" validate:"required,oneof=12 24"`
}

type InvitationSchema struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	InvitedBy int       `json:"invited_by"`
	InvitedAt time.Time `json:"invited_at"`
	Status    string    `json:"status"`
}

type ActivitySchema struct {
	ID        int       `json:"id"`
	UserID    *int      `json:"user_id"`
	UserName  *string   `json:"user_name"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	IPAddress *string   `json:"ip_address"`
}

// EmployeeFields are the parts of an employee record a team can edit.
type EmployeeFields struct {
	Role             string   `json:"role" validate:"omitempty,max=50"`
	Position         string   `json:"position" validate:"max=100"`
	Department       string   `json:"department" validate:"max=100"`
	Phone            string   `json:"phone" validate:"max=20"`
	Address          string   `json:"address"`
	HireDate         *string  `json:"hire_date" validate:"omitempty,datetime=2006-01-02"`
	EmergencyContact string   `json:"emergency_contact"`
	Skills           []string `json:"skills" validate:"dive,required"`
	Certifications   []string `json:"certifications" validate:"dive,required"`
}

type CreateEmployeeRequest struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email,max=255"`
	EmployeeFields
}

type EmployeeSchema struct {
	ID     int    `json:"id"`
	UserID int    `json:"user_id"`
	TeamID int    `json:"team_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	EmployeeFields
	JoinedAt  time.Time `json:"joined_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SettingsSchema struct {
	costcalc.Settings
	IsDefault bool       `json:"is_default"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type ProjectSchema struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Hours     int       `json:"hours"`
	Cost      float64   `json:"cost"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LinkRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	URL         string `json:"url" validate:"required,max=2048"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required,oneof=suppliers clients resources tools other"`
}

type LinkSchema struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description *string   `json:"description"`
	Category    string    `json:"category"`
	CreatedBy   int       `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InvoiceFields are the parts of an invoice set on create and update.
type InvoiceFields struct {
	InvoiceNumber string               `json:"invoice_number" validate:"required,max=50"`
	Date          string               `json:"date" validate:"required,datetime=2006-01-02"`
	DueDate       string               `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Reference     string               `json:"reference"`
	FromName      string               `json:"from_name" validate:"required"`
	FromEmail     string               `json:"from_email" validate:"omitempty,email"`
	FromAddress   string               `json:"from_address"`
	ToName        string               `json:"to_name" validate:"required"`
	ToEmail       string               `json:"to_email" validate:"omitempty,email"`
	ToAddress     string               `json:"to_address"`
	Items         []models.InvoiceItem `json:"items" validate:"required,min=1,dive"`
	Notes         string               `json:"notes"`
	TaxRate       *float64             `json:"tax_rate" validate:"omitempty,gte=0,lte=100"`
	Logo          string               `json:"logo"`
}

type InvoiceSchema struct {
	ID string `json:"id"`
	InvoiceFields
	Status     string    `json:"status"`
	CreatedBy  int       `json:"created_by"`
	AssignedTo *int      `json:"assigned_to"`
	Subtotal   float64   `json:"subtotal"`
	Tax        float64   `json:"tax"`
	Total      float64   `json:"total"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToUserSchema(u *models.User) UserSchema {
	return UserSchema{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func ToCompanySchema(c models.Company) CompanySchema {
	return CompanySchema(c)
}

func (c CompanySchema) Model() models.Company {
	return models.Company(c)
}

func ToEmployeeSchema(m *models.Member, name, email string) EmployeeSchema {
	var hireDate *string
	if m.HireDate != nil {
		d := m.HireDate.Format(DateLayout)
		hireDate = &d
	}

	return EmployeeSchema{
		ID:     m.ID,
		UserID: m.UserID,
		TeamID: m.TeamID,
		Name:   name,
		Email:  email,
		EmployeeFields: EmployeeFields{
			Role:             m.Role,
			Position:         m.Position,
			Department:       m.Department,
			Phone:            m.Phone,
			Address:          m.Address,
			HireDate:         hireDate,
			EmergencyContact: m.EmergencyContact,
			Skills:           nonNil(m.Skills),
			Certifications:   nonNil(m.Certifications),
		},
		JoinedAt:  m.JoinedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToProjectSchema(p *models.Project) ProjectSchema {
	return ProjectSchema{
		ID:        p.ID,
		Name:      p.Name,
		Hours:     p.Hours,
		Cost:      p.Cost.InexactFloat64(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func ToLinkSchema(l *models.Link) LinkSchema {
	return LinkSchema{
		ID:          l.ID,
		Title:       l.Title,
		URL:         l.URL,
		Description: l.Description,
		Category:    l.Category,
		CreatedBy:   l.CreatedBy,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func ToInvoiceSchema(inv *models.Invoice) InvoiceSchema {
	totals := inv.Totals()
	taxRate := inv.TaxRate

	return InvoiceSchema{
		ID: inv.ID,
		InvoiceFields: InvoiceFields{
			InvoiceNumber: inv.Number,
			Date:          inv.Date.Format(DateLayout),
			DueDate:       inv.DueDate.Format(DateLayout),
			Reference:     inv.Reference,
			FromName:      inv.FromName,
			FromEmail:     inv.FromEmail,
			FromAddress:   inv.FromAddress,
			ToName:        inv.ToName,
			ToEmail:       inv.ToEmail,
			ToAddress:     inv.ToAddress,
			Items:         nonNil(inv.Items),
			Notes:         inv.Notes,
			TaxRate:       &taxRate,
			Logo:          inv.Logo,
		},
		Status:     string(inv.Status),
		CreatedBy:  inv.CreatedBy,
		AssignedTo: inv.AssignedTo,
		Subtotal:   totals.Subtotal.InexactFloat64(),
		Tax:        totals.Tax.InexactFloat64(),
		Total:      totals.Total.InexactFloat64(),
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
