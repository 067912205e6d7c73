package report

import (
	"fmt"
	"time"

	"team-backoffice/internal/costcalc"
	"team-backoffice/internal/lib"
)

const pageBreakY = 250.0

// Project renders the cost report of a project calculated from s.
func Project(s costcalc.Settings, b costcalc.Breakdown, now time.Time) (*File, error) {
	const op = "report.Project"

	d := newDocument()
	y := 30.0

	d.font("B", 20)
	d.text(margin, y, "Prosjektkostnadsrapport")

	y += 15
	d.font("", 12)
	d.text(margin, y, "Generert: "+formatDate(now))

	y += 20
	d.font("B", 16)
	d.text(margin, y, "Prosjektinformasjon")

	name := b.ProjectName
	if name == "" {
		name = "Ikke spesifisert"
	}

	y += 10
	d.font("", 12)
	d.text(margin, y, "Prosjektnavn: "+name)
	y += 8
	d.text(margin, y, fmt.Sprintf("Estimerte timer: %s timer", formatAmount(b.ProjectHours)))
	y += 8
	d.text(margin, y, fmt.Sprintf("Indirekte kostnadssats: %s kr/time", formatNumber(b.IndirectCostRate, 2)))

	y += 20
	d.font("B", 16)
	d.text(margin, y, "Prosjektets indirekte kostnad")

	y += 15
	d.font("B", 24)
	d.color(0, 100, 0)
	d.text(margin, y, kroner(b.ProjectIndirectCost))

	y += 10
	d.font("", 10)
	d.color(128, 128, 128)
	d.text(margin, y, fmt.Sprintf("Basert på %s timer til %s kr/time",
		formatAmount(b.ProjectHours), formatNumber(b.IndirectCostRate, 2)))
	d.color(0, 0, 0)

	y += 25
	y = d.lines(y, "Kostnadsfordeling", []string{
		"Overhead: " + kroner(b.Overhead.ProjectCost),
		"Utstyr: " + kroner(b.Equipment.ProjectCost),
		"Generelt: " + kroner(b.General.ProjectCost),
	})

	y += 20
	y = d.lines(y, "Prosentvis fordeling", []string{
		"Overhead: " + formatNumber(b.Overhead.Percentage, 1) + "%",
		"Utstyr: " + formatNumber(b.Equipment.Percentage, 1) + "%",
		"Generelt: " + formatNumber(b.General.Percentage, 1) + "%",
	})

	y += 25
	y = d.lines(y, "Bedriftsparametere", []string{
		fmt.Sprintf("Antall ansatte: %d", b.NumberOfEmployees),
		"Gjennomsnittlige timer per ansatt/år: " + formatNumber(float64(b.AverageHoursPerEmployee), 0),
		"Totale årlige produksjonstimer: " + formatNumber(float64(b.TotalAnnualHours), 0),
		"Totale årlige indirekte kostnader: " + formatAmount(b.TotalAnnualIndirectCosts) + " kr",
	})

	if y > pageBreakY {
		d.pdf.AddPage()
		y = 30
	} else {
		y += 25
	}

	d.font("B", 14)
	d.text(margin, y, "Detaljert kostnadssammendrag")

	y += 15
	y = d.items(y, "Overheadkostnader:", s.OverheadCosts)
	y += 5
	y = d.items(y, "Utstyrskostnader:", s.EquipmentCosts)
	y += 5
	d.items(y, "Generelle kostnader:", s.GeneralCosts)

	d.font("", 8)
	d.color(128, 128, 128)
	d.text(margin, pageHeight-15, "Rapport generert av Indirekte Kostnadskalkulator - "+formatDate(now))

	data, err := d.bytes()
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &File{
		Name: ProjectFileName(b.ProjectName, now),
		Data: data,
	}, nil
}

func (d *document) lines(y float64, title string, lines []string) float64 {
	y = d.breakAt(y, pageBreakY)
	d.font("B", 14)
	d.text(margin, y, title)

	y += 15
	d.font("", 11)
	for i, l := range lines {
		if i > 0 {
			y = d.breakAt(y+8, pageHeight-25)
		}
		d.text(margin, y, l)
	}

	return y
}

func (d *document) items(y float64, title string, items []costcalc.CostItem) float64 {
	y = d.breakAt(y, pageHeight-25)
	d.font("B", 10)
	d.text(margin, y, title)

	y += 8
	d.font("", 10)
	for _, item := range items {
		y = d.breakAt(y, pageHeight-25)
		d.text(margin+5, y, fmt.Sprintf("• %s: %s kr", item.Name, formatAmount(item.Amount)))
		y += 6
	}

	return y
}
