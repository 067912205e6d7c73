// Package report renders the PDF documents served by the API.
package report

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

const (
	margin     = 20.0
	pageWidth  = 210.0
	pageHeight = 297.0
)

// File is a rendered document ready to be downloaded.
type File struct {
	Name string
	Data []byte
}

// compress is turned off by tests that read the rendered content streams.
var compress = true

type document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newDocument() *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetCompression(compress)
	pdf.AddPage()

	return &document{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// breakAt starts a new page when y has passed limit and returns the y to
// continue writing at.
func (d *document) breakAt(y, limit float64) float64 {
	if y > limit {
		d.pdf.AddPage()
		return 30
	}
	return y
}

func (d *document) font(style string, size float64) {
	d.pdf.SetFont("Helvetica", style, size)
}

func (d *document) text(x, y float64, s string) {
	d.pdf.Text(x, y, d.tr(s))
}

func (d *document) color(r, g, b int) {
	d.pdf.SetTextColor(r, g, b)
}

func (d *document) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
