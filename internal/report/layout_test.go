package report

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"team-backoffice/internal/costcalc"
	"team-backoffice/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A4 height in points.
const pageHeightPt = 841.89

var textOp = regexp.MustCompile(`BT (-?[\d.]+) (-?[\d.]+) Td \(((?:\\.|[^\\)])*)\) ?Tj ET`)

type placed struct {
	y    float64
	text string
}

func uncompressed(t *testing.T) {
	compress = false
	t.Cleanup(func() { compress = true })
}

// pageTexts returns the text drawn on every page, in drawing order.
func pageTexts(t *testing.T, data []byte) [][]placed {
	chunks := bytes.Split(data, []byte("<</Type /Page\n"))
	require.Greater(t, len(chunks), 1, "no pages in document")

	unescape := strings.NewReplacer(`\(`, "(", `\)`, ")", `\\`, `\`)

	var pages [][]placed
	for _, chunk := range chunks[1:] {
		var texts []placed
		for _, m := range textOp.FindAllSubmatch(chunk, -1) {
			y, err := strconv.ParseFloat(string(m[2]), 64)
			require.NoError(t, err)
			texts = append(texts, placed{y: y, text: unescape.Replace(string(m[3]))})
		}
		pages = append(pages, texts)
	}
	return pages
}

func assertOnPage(t *testing.T, pages [][]placed) {
	for i, page := range pages {
		for _, p := range page {
			assert.True(t, p.y >= 0 && p.y <= pageHeightPt,
				"page %d: %q drawn at y=%.2f", i+1, p.text, p.y)
		}
	}
}

func pageOf(pages [][]placed, text string) int {
	for i, page := range pages {
		for _, p := range page {
			if p.text == text {
				return i + 1
			}
		}
	}
	return 0
}

func TestProject_Layout(t *testing.T) {
	uncompressed(t)
	tr := newDocument().tr

	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	settings := costcalc.DefaultSettings()

	f, err := Project(settings, costcalc.Compute(settings, "Hus", 100), now)
	require.NoError(t, err)

	pages := pageTexts(t, f.Data)
	require.Len(t, pages, 2)
	assertOnPage(t, pages)

	tests := []struct {
		text string
		page int
	}{
		{"Prosjektkostnadsrapport", 1},
		{"Generert: 14.03.2025", 1},
		{"Prosjektnavn: Hus", 1},
		{"Indirekte kostnadssats: 125,56 kr/time", 1},
		{"12 555,56 kr", 1},
		{"Kostnadsfordeling", 1},
		{"Overhead: 6 666,67 kr", 1},
		{"Prosentvis fordeling", 1},
		{"Overhead: 53,1%", 1},
		{"Bedriftsparametere", 2},
		{"Antall ansatte: 5", 2},
		{"Gjennomsnittlige timer per ansatt/år: 1 800", 2},
		{"Totale årlige produksjonstimer: 9 000", 2},
		{"Totale årlige indirekte kostnader: 1 130 000 kr", 2},
		{"Detaljert kostnadssammendrag", 2},
		{"• Kontorlokaler: 120 000 kr", 2},
		{"• Profesjonelle tjenester: 90 000 kr", 2},
		{"Rapport generert av Indirekte Kostnadskalkulator - 14.03.2025", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.page, pageOf(pages, tr(tt.text)), "%q", tt.text)
	}
}

func TestProject_LongItemListsStayOnPage(t *testing.T) {
	uncompressed(t)

	settings := costcalc.DefaultSettings()
	for i := 0; i < 80; i++ {
		settings.GeneralCosts = append(settings.GeneralCosts, costcalc.CostItem{Name: "Diverse", Amount: 1000})
	}

	f, err := Project(settings, costcalc.Compute(settings, "", 10), time.Now())
	require.NoError(t, err)

	pages := pageTexts(t, f.Data)
	assert.Greater(t, len(pages), 2)
	assertOnPage(t, pages)

	var items int
	for _, page := range pages {
		for _, p := range page {
			if strings.Contains(p.text, "Diverse: 1 000 kr") {
				items++
			}
		}
	}
	assert.Equal(t, 80, items)
}

func TestInvoice_LongInvoiceStaysOnPage(t *testing.T) {
	uncompressed(t)
	tr := newDocument().tr

	inv := &models.Invoice{
		Number:   "2025-042",
		Date:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:  time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		FromName: "Bygg AS",
		ToName:   "Kunde AS",
		TaxRate:  25,
	}
	for i := 0; i < 19; i++ {
		inv.Items = append(inv.Items, models.InvoiceItem{Description: "Arbeid", Quantity: 1, Price: 100})
	}
	var notes []string
	for i := 1; i <= 40; i++ {
		notes = append(notes, "Linje "+strconv.Itoa(i))
	}
	inv.Notes = strings.Join(notes, "\n")

	f, err := Invoice(inv)
	require.NoError(t, err)

	pages := pageTexts(t, f.Data)
	assert.Greater(t, len(pages), 1)
	assertOnPage(t, pages)

	for _, text := range []string{"FAKTURA", "#2025-042", "Subtotal:", "1 900,00 kr", "MVA (25%):", "Totalbeløp:", "2 375,00 kr", "Notater:", "Linje 1", "Linje 40"} {
		assert.NotZero(t, pageOf(pages, tr(text)), "%q", text)
	}
}
