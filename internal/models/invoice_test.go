package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoice_Totals(t *testing.T) {
	inv := &Invoice{
		TaxRate: 25,
		Items: JSONList[InvoiceItem]{
			{ID: "1", Description: "Tømrerarbeid", Quantity: 7.5, Price: 650},
			{ID: "2", Description: "Materialer", Quantity: 1, Price: 1999.99},
		},
	}

	totals := inv.Totals()

	assert.Equal(t, "6874.99", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "1718.75", totals.Tax.StringFixed(2))
	assert.Equal(t, "8593.74", totals.Total.StringFixed(2))
}

func TestInvoice_Totals_Empty(t *testing.T) {
	totals := (&Invoice{TaxRate: 25}).Totals()

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestInvoiceStatus_CanMoveTo(t *testing.T) {
	tests := []struct {
		from, to InvoiceStatus
		want     bool
	}{
		{InvoiceDraft, InvoiceSent, true},
		{InvoiceSent, InvoicePaid, true},
		{InvoiceDraft, InvoicePaid, false},
		{InvoiceSent, InvoiceDraft, false},
		{InvoicePaid, InvoiceSent, false},
		{InvoicePaid, InvoicePaid, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanMoveTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}
