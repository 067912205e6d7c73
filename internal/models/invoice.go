package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "draft"
	InvoiceSent  InvoiceStatus = "sent"
	InvoicePaid  InvoiceStatus = "paid"
)

// CanMoveTo reports whether an invoice in status s may be moved to next.
// Invoices only move forward: draft, sent, paid.
func (s InvoiceStatus) CanMoveTo(next InvoiceStatus) bool {
	switch s {
	case InvoiceDraft:
		return next == InvoiceSent
	case InvoiceSent:
		return next == InvoicePaid
	}
	return false
}

type InvoiceItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
	Price       float64 `json:"price"`
}

type Invoice struct {
	ID          string                `db:"id"`
	TeamID      int                   `db:"team_id"`
	Number      string                `db:"invoice_number"`
	Date        time.Time             `db:"date"`
	DueDate     time.Time             `db:"due_date"`
	Reference   string                `db:"reference"`
	FromName    string                `db:"from_name"`
	FromEmail   string                `db:"from_email"`
	FromAddress string                `db:"from_address"`
	ToName      string                `db:"to_name"`
	ToEmail     string                `db:"to_email"`
	ToAddress   string                `db:"to_address"`
	Items       JSONList[InvoiceItem] `db:"items"`
	Notes       string                `db:"notes"`
	TaxRate     float64               `db:"tax_rate"`
	Status      InvoiceStatus         `db:"status"`
	Logo        string                `db:"logo"`
	CreatedBy   int                   `db:"created_by"`
	AssignedTo  *int                  `db:"assigned_to"`
	CreatedAt   time.Time             `db:"created_at"`
	UpdatedAt   time.Time             `db:"updated_at"`
}

type InvoiceTotals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Totals sums the items and applies the tax rate (percent), rounded to øre.
func (inv *Invoice) Totals() InvoiceTotals {
	subtotal := decimal.Zero
	for _, item := range inv.Items {
		line := decimal.NewFromFloat(item.Quantity).Mul(decimal.NewFromFloat(item.Price))
		subtotal = subtotal.Add(line)
	}

	tax := subtotal.Mul(decimal.NewFromFloat(inv.TaxRate)).Div(decimal.NewFromInt(100))

	return InvoiceTotals{
		Subtotal: subtotal.Round(2),
		Tax:      tax.Round(2),
		Total:    subtotal.Add(tax).Round(2),
	}
}
