package report

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const dateLayout = "02.01.2006"

var printer = message.NewPrinter(language.MustParse("nb"))

// The Bokmål group separator is a no-break space, reports use a plain one.
var spaces = strings.NewReplacer("\u00a0", " ", "\u202f", " ")

// formatNumber renders v the Norwegian way: "1 234 567,89".
func formatNumber(v float64, decimals int) string {
	// strconv does the rounding, number.Scale only pads the fraction.
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)

	s := spaces.Replace(printer.Sprint(number.Decimal(math.Abs(rounded), number.Scale(decimals))))
	if rounded < 0 {
		return "-" + s
	}
	return s
}

// formatAmount drops the decimals of whole amounts.
func formatAmount(v float64) string {
	if v == math.Trunc(v) {
		return formatNumber(v, 0)
	}
	return formatNumber(v, 2)
}

func kroner(v float64) string {
	return formatNumber(v, 2) + " kr"
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ProjectFileName builds the download name of a project cost report.
func ProjectFileName(projectName string, now time.Time) string {
	if projectName == "" {
		return "prosjekt_kostnadsrapport_" + now.Format("2006-01-02") + ".pdf"
	}

	var b strings.Builder
	for _, r := range projectName {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}

	return b.String() + "_kostnadsrapport.pdf"
}

func InvoiceFileName(number string) string {
	return "Faktura-" + number + ".pdf"
}
