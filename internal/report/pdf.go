package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/phpdave11/gofpdf"

	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/internal/engine/batch"
	"github.com/rshade/solarfocus/internal/render"
)

// Page geometry in millimetres (A4 portrait).
const (
	pdfMargin      = 15.0
	pdfLabelWidth  = 70.0
	pdfValueWidth  = 100.0
	pdfLineHeight  = 7.0
	pdfChartHeight = 60.0
	pdfChartWidth  = 150.0
)

// rgb holds a fill color.
type rgb struct{ r, g, b int }

//nolint:gochecknoglobals // Static palette matching the chart package.
var pdfBarColors = []rgb{{46, 204, 113}, {231, 76, 60}, {241, 196, 15}}

func newPDF(opts Options) (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetCreationDate(opts.GeneratedAt)
	pdf.SetTitle(opts.Title, true)
	pdf.SetCreator("solarfocus", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(opts.Title))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, "Generated "+opts.GeneratedAt.Format("2006-01-02 15:04"))
	pdf.Ln(10)
	return pdf, tr
}

// WritePDF writes a one-page PDF report for e, including the comparison
// chart.
func WritePDF(w io.Writer, e *engine.Estimate, opts Options) error {
	opts = opts.withDefaults()
	f := opts.Formatter
	pdf, tr := newPDF(opts)

	for _, sec := range render.Sections(f, e) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, tr(sec.Heading))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, r := range sec.Lines {
			pdf.CellFormat(pdfLabelWidth, pdfLineHeight, tr(r.Label), "B", 0, "L", false, 0, "")
			pdf.CellFormat(pdfValueWidth, pdfLineHeight, tr(r.Value), "B", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	if !e.Equivalencies.IsEmpty {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, tr(e.Equivalencies.DisplayText), "", "L", false)
		pdf.Ln(4)
	}

	drawPDFChart(pdf, tr, e.Chart, f)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// drawPDFChart draws vertical bars below the current position.
func drawPDFChart(pdf *gofpdf.Fpdf, tr func(string) string, c engine.ComparisonChart, f *render.Formatter) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr(c.Title))
	pdf.Ln(10)

	top := pdf.GetY() + 6
	base := top + pdfChartHeight
	maxV := c.MaxValue()
	if len(c.Bars) == 0 {
		return
	}

	slot := pdfChartWidth / float64(len(c.Bars))
	barW := slot * 0.6
	pdf.SetFont("Helvetica", "", 9)
	for i, b := range c.Bars {
		h := 0.0
		if maxV > 0 && b.Value > 0 {
			h = b.Value / maxV * pdfChartHeight
		}
		x := pdfMargin + float64(i)*slot + (slot-barW)/2
		col := pdfBarColors[i%len(pdfBarColors)]
		pdf.SetFillColor(col.r, col.g, col.b)
		pdf.Rect(x, base-h, barW, h, "F")

		value := tr(f.BarValue(b))
		pdf.Text(x+(barW-pdf.GetStringWidth(value))/2, base-h-2, value)
		label := tr(b.Label)
		pdf.Text(x+(barW-pdf.GetStringWidth(label))/2, base+5, label)
	}
	pdf.SetDrawColor(85, 85, 85)
	pdf.Line(pdfMargin, base, pdfMargin+pdfChartWidth, base)
	pdf.SetY(base + 10)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, tr(c.YAxisLabel))
}

// WriteBatchPDF writes a tabular PDF of batch results with a summary.
func WriteBatchPDF(w io.Writer, results []batch.Result, opts Options) error {
	opts = opts.withDefaults()
	f := opts.Formatter
	pdf, tr := newPDF(opts)

	headers := []string{"Row", "Label", "kWh", "Bill", "Cost", "Payback", "CO2 t/yr", "Trees"}
	widths := []float64{12, 38, 18, 24, 28, 22, 20, 18}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], pdfLineHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range results {
		cells := []string{strconv.Itoa(r.Row), r.Label, "ERR", "-", "-", "-", "-", "-"}
		if e := r.Estimate; e != nil {
			cells = []string{
				strconv.Itoa(r.Row), r.Label,
				f.Number(e.Input.ConsumptionKWh, 0),
				f.Money(e.Input.Bill),
				f.Money(e.Economics.SystemCost),
				f.PaybackShort(e),
				f.Number(e.Environmental.CO2AvoidedTonnes, 2),
				strconv.FormatInt(e.Environmental.TreesEquivalent, 10),
			}
		}
		for i, c := range cells {
			align := "R"
			if i == 1 {
				align = "L"
			}
			pdf.CellFormat(widths[i], pdfLineHeight, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	s := batch.Summarize(results)
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, r := range []row{
		{"Households", strconv.Itoa(s.Households)},
		{"Failed", strconv.Itoa(s.Failed)},
		{"Payback not achievable", strconv.Itoa(s.NotViable)},
		{"Total system cost", f.Money(s.TotalSystemCost)},
		{"Total annual net savings", f.Money(s.AnnualSavings)},
		{"Total trees equivalent", strconv.FormatInt(s.Trees, 10)},
	} {
		pdf.CellFormat(pdfLabelWidth, pdfLineHeight, tr(r.label), "", 0, "L", false, 0, "")
		pdf.CellFormat(pdfValueWidth, pdfLineHeight, tr(r.value), "", 1, "R", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}
