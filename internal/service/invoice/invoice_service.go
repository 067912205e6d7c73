package invoice

import (
	"context"
	"time"

	"team-backoffice/internal/http/api"
	"team-backoffice/internal/models"
	"team-backoffice/internal/report"
	repo "team-backoffice/internal/repository"
	"team-backoffice/internal/service"

	"github.com/google/uuid"
)

const (
	defaultTaxRate = 25.0
	defaultDueDays = 30
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=InvoiceStore
type InvoiceStore interface {
	Create(ctx context.Context, inv *models.Invoice) (*models.Invoice, error)
	Update(ctx context.Context, inv *models.Invoice) (*models.Invoice, error)
	ListByTeam(ctx context.Context, teamID int, status string) ([]*models.Invoice, error)
	GetByID(ctx context.Context, teamID int, invoiceID string) (*models.Invoice, error)
	SetStatus(ctx context.Context, teamID int, invoiceID string, status models.InvoiceStatus) error
	Assign(ctx context.Context, teamID int, invoiceID string, userID int) error
	Delete(ctx context.Context, teamID int, invoiceID string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=MemberChecker
type MemberChecker interface {
	IsMember(ctx context.Context, teamID, userID int) (bool, error)
}

type InvoiceService struct {
	trm      service.TransactionManager
	invoices InvoiceStore
	members  MemberChecker
}

func NewInvoiceService(trm service.TransactionManager, invoices InvoiceStore, members MemberChecker) *InvoiceService {
	return &InvoiceService{
		trm:      trm,
		invoices: invoices,
		members:  members,
	}
}

func (s *InvoiceService) List(ctx context.Context, teamID int, status string) ([]api.InvoiceSchema, error) {
	invoices, err := s.invoices.ListByTeam(ctx, teamID, status)
	if err != nil {
		return nil, err
	}

	resp := make([]api.InvoiceSchema, 0, len(invoices))
	for _, inv := range invoices {
		resp = append(resp, api.ToInvoiceSchema(inv))
	}

	return resp, nil
}

func (s *InvoiceService) Get(ctx context.Context, teamID int, invoiceID string) (*api.InvoiceSchema, error) {
	inv, err := s.get(ctx, teamID, invoiceID)
	if err != nil {
		return nil, err
	}

	resp := api.ToInvoiceSchema(inv)
	return &resp, nil
}

// Create stores a draft invoice assigned to its author.
func (s *InvoiceService) Create(ctx context.Context, teamID, userID int, in api.InvoiceFields) (*api.InvoiceSchema, error) {
	inv := &models.Invoice{
		ID:         uuid.NewString(),
		TeamID:     teamID,
		Status:     models.InvoiceDraft,
		CreatedBy:  userID,
		AssignedTo: &userID,
	}
	if err := apply(inv, in); err != nil {
		return nil, err
	}

	created, err := s.invoices.Create(ctx, inv)
	if err != nil {
		return nil, err
	}

	resp := api.ToInvoiceSchema(created)
	return &resp, nil
}

func (s *InvoiceService) Update(ctx context.Context, teamID int, invoiceID string, in api.InvoiceFields) (*api.InvoiceSchema, error) {
	var updated *models.Invoice

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		inv, err := s.get(ctx, teamID, invoiceID)
		if err != nil {
			return err
		}

		if err := apply(inv, in); err != nil {
			return err
		}

		updated, err = s.invoices.Update(ctx, inv)
		return err
	})
	if err != nil {
		return nil, err
	}

	resp := api.ToInvoiceSchema(updated)
	return &resp, nil
}

func (s *InvoiceService) Delete(ctx context.Context, teamID int, invoiceID string) error {
	if _, err := uuid.Parse(invoiceID); err != nil {
		return repo.ErrNotFound
	}

	return s.invoices.Delete(ctx, teamID, invoiceID)
}

// SetStatus moves an invoice one step along draft, sent, paid.
func (s *InvoiceService) SetStatus(ctx context.Context, teamID int, invoiceID string, status models.InvoiceStatus) (*api.InvoiceSchema, error) {
	var inv *models.Invoice

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		current, err := s.get(ctx, teamID, invoiceID)
		if err != nil {
			return err
		}

		if !current.Status.CanMoveTo(status) {
			return service.ErrInvalidStatus
		}

		if err := s.invoices.SetStatus(ctx, teamID, invoiceID, status); err != nil {
			return err
		}

		inv, err = s.invoices.GetByID(ctx, teamID, invoiceID)
		return err
	})
	if err != nil {
		return nil, err
	}

	resp := api.ToInvoiceSchema(inv)
	return &resp, nil
}

// Assign hands the invoice over to another member of the team.
func (s *InvoiceService) Assign(ctx context.Context, teamID int, invoiceID string, userID int) (*api.InvoiceSchema, error) {
	var inv *models.Invoice

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		ok, err := s.members.IsMember(ctx, teamID, userID)
		if err != nil {
			return err
		}
		if !ok {
			return repo.ErrNotFound
		}

		if _, err := uuid.Parse(invoiceID); err != nil {
			return repo.ErrNotFound
		}

		if err := s.invoices.Assign(ctx, teamID, invoiceID, userID); err != nil {
			return err
		}

		inv, err = s.invoices.GetByID(ctx, teamID, invoiceID)
		return err
	})
	if err != nil {
		return nil, err
	}

	resp := api.ToInvoiceSchema(inv)
	return &resp, nil
}

func (s *InvoiceService) PDF(ctx context.Context, teamID int, invoiceID string) (*report.File, error) {
	inv, err := s.get(ctx, teamID, invoiceID)
	if err != nil {
		return nil, err
	}

	return report.Invoice(inv)
}

// get loads an invoice of the team. Ids that are not uuids cannot exist.
func (s *InvoiceService) get(ctx context.Context, teamID int, invoiceID string) (*models.Invoice, error) {
	if _, err := uuid.Parse(invoiceID); err != nil {
		return nil, repo.ErrNotFound
	}

	return s.invoices.GetByID(ctx, teamID, invoiceID)
}

func apply(inv *models.Invoice, in api.InvoiceFields) error {
	date, err := time.Parse(api.DateLayout, in.Date)
	if err != nil {
		return err
	}

	dueDate := date.AddDate(0, 0, defaultDueDays)
	if in.DueDate != "" {
		dueDate, err = time.Parse(api.DateLayout, in.DueDate)
		if err != nil {
			return err
		}
	}

	taxRate := defaultTaxRate
	if in.TaxRate != nil {
		taxRate = *in.TaxRate
	}

	items := make(models.JSONList[models.InvoiceItem], 0, len(in.Items))
	for _, item := range in.Items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		items = append(items, item)
	}

	inv.Number = in.InvoiceNumber
	inv.Date = date
	inv.DueDate = dueDate
	inv.Reference = in.Reference
	inv.FromName = in.FromName
	inv.FromEmail = in.FromEmail
	inv.FromAddress = in.FromAddress
	inv.ToName = in.ToName
	inv.ToEmail = in.ToEmail
	inv.ToAddress = in.ToAddress
	inv.Items = items
	inv.Notes = in.Notes
	inv.TaxRate = taxRate
	inv.Logo = in.Logo

	return nil
}
