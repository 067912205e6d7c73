package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in       float64
		decimals int
		want     string
	}{
		{0, 2, "0,00"},
		{999, 0, "999"},
		{1000, 0, "1 000"},
		{1130000, 0, "1 130 000"},
		{17577.7777, 2, "17 577,78"},
		{125.556, 2, "125,56"},
		{-1234.5, 1, "-1 234,5"},
		{-0.001, 2, "0,00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatNumber(tt.in, tt.decimals), "%v", tt.in)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "120 000", formatAmount(120000))
	assert.Equal(t, "1 999,99", formatAmount(1999.99))
	assert.Equal(t, "7,50", formatAmount(7.5))
}

func TestProjectFileName(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "tilbygg_garasje_2_kostnadsrapport.pdf", ProjectFileName("Tilbygg Garasje-2", now))
	assert.Equal(t, "bad_r_m_kostnadsrapport.pdf", ProjectFileName("Bad/røm", now))
	assert.Equal(t, "prosjekt_kostnadsrapport_2025-03-14.pdf", ProjectFileName("", now))
}

func TestInvoiceFileName(t *testing.T) {
	assert.Equal(t, "Faktura-2025-001.pdf", InvoiceFileName("2025-001"))
}
