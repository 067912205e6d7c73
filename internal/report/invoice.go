package report

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"team-backoffice/internal/lib"
	"team-backoffice/internal/models"

	"github.com/go-pdf/fpdf"
)

var invoiceColumns = []struct {
	title string
	width float64
	align string
}{
	{"Beskrivelse", 80, "L"},
	{"Antall", 25, "R"},
	{"Pris", 30, "R"},
	{"Beløp", 35, "R"},
}

// Invoice renders an invoice the way it is previewed to the sender.
func Invoice(inv *models.Invoice) (*File, error) {
	const op = "report.Invoice"

	d := newDocument()
	pdf := d.pdf
	contentWidth := pageWidth - 2*margin

	y := margin
	if d.logo(inv.Logo, margin, y) {
		y += 28
	}

	d.font("B", 24)
	d.color(31, 41, 55)
	d.text(margin, y+8, "FAKTURA")
	d.font("", 11)
	d.color(107, 114, 128)
	d.text(margin, y+15, "#"+inv.Number)

	pdf.SetXY(margin, margin)
	d.font("B", 14)
	d.color(31, 41, 55)
	d.cell(contentWidth, 7, inv.FromName, "R")
	d.font("", 10)
	d.color(75, 85, 99)
	d.cell(contentWidth, 5, inv.FromEmail, "R")
	d.multi(contentWidth, 5, inv.FromAddress, "R")

	y = max(y+30, pdf.GetY()+10)
	half := contentWidth / 2

	pdf.SetXY(margin, y)
	d.label(half, "Faktureres til:")
	d.font("B", 10)
	d.color(31, 41, 55)
	d.cell(half, 5, inv.ToName, "L")
	d.font("", 10)
	d.color(75, 85, 99)
	d.cell(half, 5, inv.ToEmail, "L")
	d.multi(half, 5, inv.ToAddress, "L")
	leftBottom := pdf.GetY()

	right := margin + half
	pdf.SetXY(right, y)
	d.label(half/2, "Fakturadato:")
	pdf.SetXY(right+half/2, y)
	d.label(half/2, "Forfallsdato:")
	pdf.SetXY(right, pdf.GetY())
	d.font("", 10)
	d.color(31, 41, 55)
	pdf.CellFormat(half/2, 5, formatDate(inv.Date), "", 0, "L", false, 0, "")
	pdf.CellFormat(half/2, 5, formatDate(inv.DueDate), "", 1, "L", false, 0, "")
	if inv.Reference != "" {
		pdf.SetXY(right, pdf.GetY()+3)
		d.label(half, "Referanse:")
		pdf.SetX(right)
		d.font("", 10)
		d.color(31, 41, 55)
		d.cell(half, 5, inv.Reference, "L")
	}

	pdf.SetXY(margin, max(leftBottom, pdf.GetY())+12)
	d.font("B", 10)
	d.color(75, 85, 99)
	pdf.SetDrawColor(209, 213, 219)
	for i, col := range invoiceColumns {
		ln := 0
		if i == len(invoiceColumns)-1 {
			ln = 1
		}
		pdf.CellFormat(col.width, 9, d.tr(col.title), "B", ln, col.align, false, 0, "")
	}

	d.font("", 10)
	d.color(31, 41, 55)
	pdf.SetDrawColor(229, 231, 235)
	for _, item := range inv.Items {
		if pdf.GetY() > pageHeight-60 {
			pdf.AddPage()
		}
		cells := []string{
			item.Description,
			formatAmount(item.Quantity),
			kroner(item.Price),
			kroner(item.Quantity * item.Price),
		}
		for i, col := range invoiceColumns {
			ln := 0
			if i == len(invoiceColumns)-1 {
				ln = 1
			}
			pdf.CellFormat(col.width, 10, d.tr(cells[i]), "B", ln, col.align, false, 0, "")
		}
	}

	totals := inv.Totals()
	const labelWidth, valueWidth = 40.0, 35.0
	totalsX := pageWidth - margin - labelWidth - valueWidth

	pdf.Ln(8)
	d.keep(3 * 8)
	d.color(75, 85, 99)
	d.total(totalsX, labelWidth, valueWidth, "Subtotal:", kroner(totals.Subtotal.InexactFloat64()), "")
	d.total(totalsX, labelWidth, valueWidth, fmt.Sprintf("MVA (%s%%):", formatAmount(inv.TaxRate)),
		kroner(totals.Tax.InexactFloat64()), "")
	d.font("B", 10)
	d.color(31, 41, 55)
	d.total(totalsX, labelWidth, valueWidth, "Totalbeløp:", kroner(totals.Total.InexactFloat64()), "T")

	if inv.Notes != "" {
		pdf.Ln(10)
		d.keep(6 + 7 + 5)
		pdf.SetDrawColor(209, 213, 219)
		pdf.Line(margin, pdf.GetY(), pageWidth-margin, pdf.GetY())
		pdf.Ln(6)
		pdf.SetX(margin)
		d.label(contentWidth, "Notater:")
		d.font("", 10)
		d.color(31, 41, 55)
		d.multi(contentWidth, 5, inv.Notes, "L")
	}

	data, err := d.bytes()
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &File{
		Name: InvoiceFileName(inv.Number),
		Data: data,
	}, nil
}

// keep moves to a new page unless h millimetres fit above the bottom margin.
// Longer content is split by the automatic page break.
func (d *document) keep(h float64) {
	if d.pdf.GetY()+h > pageHeight-margin {
		d.pdf.AddPage()
	}
}

func (d *document) cell(w, h float64, s, align string) {
	x := d.pdf.GetX()
	d.pdf.CellFormat(w, h, d.tr(s), "", 1, align, false, 0, "")
	d.pdf.SetX(x)
}

func (d *document) multi(w, h float64, s, align string) {
	if s == "" {
		return
	}
	x := d.pdf.GetX()
	d.pdf.MultiCell(w, h, d.tr(s), "", align, false)
	d.pdf.SetX(x)
}

func (d *document) label(w float64, s string) {
	d.font("B", 10)
	d.color(75, 85, 99)
	d.pdf.CellFormat(w, 7, d.tr(s), "", 1, "L", false, 0, "")
}

func (d *document) total(x, labelWidth, valueWidth float64, label, value, border string) {
	d.pdf.SetX(x)
	d.pdf.CellFormat(labelWidth, 8, d.tr(label), border, 0, "L", false, 0, "")
	d.pdf.CellFormat(valueWidth, 8, d.tr(value), border, 1, "R", false, 0, "")
}

// logo draws a base64 data URL image and reports whether it was drawn.
// Logos that cannot be decoded are left out of the document.
func (d *document) logo(dataURL string, x, y float64) bool {
	header, payload, ok := strings.Cut(dataURL, ",")
	if !ok {
		return false
	}

	var imageType string
	switch {
	case strings.Contains(header, "image/png"):
		imageType = "PNG"
	case strings.Contains(header, "image/jpeg"), strings.Contains(header, "image/jpg"):
		imageType = "JPG"
	default:
		return false
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return false
	}

	opts := fpdf.ImageOptions{ImageType: imageType}
	info := d.pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(raw))
	if d.pdf.Err() || info == nil {
		d.pdf.ClearError()
		return false
	}

	d.pdf.ImageOptions("logo", x, y, 0, 24, false, opts, 0, "")
	return true
}
