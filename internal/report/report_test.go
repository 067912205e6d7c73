package report_test

import (
	"bytes"
	"testing"
	"time"

	"team-backoffice/internal/costcalc"
	"team-backoffice/internal/models"
	"team-backoffice/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	settings := costcalc.DefaultSettings()
	b := costcalc.Compute(settings, "Enebolig Åsane", 140)

	f, err := report.Project(settings, b, now)
	require.NoError(t, err)

	assert.Equal(t, "enebolig__sane_kostnadsrapport.pdf", f.Name)
	assert.True(t, bytes.HasPrefix(f.Data, []byte("%PDF-")))
}

func TestProject_ManyItemsBreaksPage(t *testing.T) {
	settings := costcalc.DefaultSettings()
	for i := 0; i < 40; i++ {
		settings.GeneralCosts = append(settings.GeneralCosts, costcalc.CostItem{Name: "Diverse", Amount: 1000})
	}

	f, err := report.Project(settings, costcalc.Compute(settings, "", 10), time.Now())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(f.Data, []byte("%PDF-")))
	assert.Contains(t, f.Name, "prosjekt_kostnadsrapport_")
}

func TestInvoice(t *testing.T) {
	inv := &models.Invoice{
		Number:      "2025-001",
		Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:     time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Reference:   "Tilbud 17",
		FromName:    "Bygg & Betong AS",
		FromEmail:   "post@byggbetong.no",
		FromAddress: "Industriveien 4\n5200 Os",
		ToName:      "Kari Nordmann",
		ToAddress:   "Strandgaten 1\n5013 Bergen",
		Items: models.JSONList[models.InvoiceItem]{
			{ID: "1", Description: "Tømrerarbeid", Quantity: 7.5, Price: 650},
		},
		Notes:   "Betales til konto 1234.56.78903",
		TaxRate: 25,
		Logo:    "data:image/png;base64,not-a-png",
	}

	f, err := report.Invoice(inv)
	require.NoError(t, err)

	assert.Equal(t, "Faktura-2025-001.pdf", f.Name)
	assert.True(t, bytes.HasPrefix(f.Data, []byte("%PDF-")))
}
