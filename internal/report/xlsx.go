package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/internal/engine/batch"
	"github.com/rshade/solarfocus/internal/render"
)

// Sheet names.
const (
	SheetEstimate   = "Estimate"
	SheetChartData  = "ChartData"
	SheetHouseholds = "Households"
	SheetSummary    = "Summary"
)

const defaultSheet = "Sheet1"

// WriteXLSX writes a workbook with the estimate figures, the chart data and
// a native column chart built from it.
func WriteXLSX(w io.Writer, e *engine.Estimate, opts Options) error {
	opts = opts.withDefaults()
	f := opts.Formatter

	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName(defaultSheet, SheetEstimate); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	bold, err := x.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}

	cells := [][]interface{}{
		{opts.Title},
		{"Generated", opts.GeneratedAt.Format("2006-01-02 15:04")},
	}
	for _, sec := range render.Sections(f, e) {
		cells = append(cells, []interface{}{}, []interface{}{sec.Heading})
		for _, r := range sec.Lines {
			cells = append(cells, []interface{}{r.Label, r.Value})
		}
	}
	for i, c := range cells {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err = x.SetSheetRow(SheetEstimate, cell, &c); err != nil {
			return fmt.Errorf("writing %s: %w", cell, err)
		}
		if len(c) == 1 {
			_ = x.SetCellStyle(SheetEstimate, cell, cell, bold)
		}
	}
	_ = x.SetColWidth(SheetEstimate, "A", "A", 30)
	_ = x.SetColWidth(SheetEstimate, "B", "B", 28)

	if err = writeChartSheet(x, e.Chart); err != nil {
		return err
	}

	x.SetActiveSheet(0)
	if err = x.Write(w); err != nil {
		return fmt.Errorf("writing XLSX: %w", err)
	}
	return nil
}

// writeChartSheet stores raw bar values and adds a column chart over them.
func writeChartSheet(x *excelize.File, c engine.ComparisonChart) error {
	if _, err := x.NewSheet(SheetChartData); err != nil {
		return fmt.Errorf("creating chart sheet: %w", err)
	}
	if err := x.SetSheetRow(SheetChartData, "A1", &[]interface{}{"Bar", "Value", "Kind"}); err != nil {
		return err
	}
	for i, b := range c.Bars {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := x.SetSheetRow(SheetChartData, cell, &[]interface{}{b.Label, b.Value, string(b.Kind)}); err != nil {
			return err
		}
	}
	if len(c.Bars) == 0 {
		return nil
	}

	last := len(c.Bars) + 1
	err := x.AddChart(SheetChartData, "E2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       SheetChartData + "!$B$1",
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", SheetChartData, last),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", SheetChartData, last),
		}},
		Title:  []excelize.RichTextRun{{Text: c.Title}},
		Legend: excelize.ChartLegend{Position: "bottom"},
		YAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: c.YAxisLabel}}},
	})
	if err != nil {
		return fmt.Errorf("adding chart: %w", err)
	}
	return nil
}

// WriteBatchXLSX writes one row per household with numeric cells, and a
// summary sheet.
func WriteBatchXLSX(w io.Writer, results []batch.Result, opts Options) error {
	opts = opts.withDefaults()

	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName(defaultSheet, SheetHouseholds); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := []interface{}{
		"Row", "Label", "Consumption (kWh)", "Bill", "System power (kW)", "System cost",
		"Monthly net savings", "Payback (months)", "Payback status", "CO2 avoided (kg/yr)", "Trees", "Error",
	}
	if err := x.SetSheetRow(SheetHouseholds, "A1", &header); err != nil {
		return err
	}

	for i, r := range results {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{r.Row, r.Label}
		if e := r.Estimate; e != nil {
			var payback interface{} = e.Economics.PaybackMonths
			if !e.Viable() {
				payback = ""
			}
			values = append(values,
				e.Input.ConsumptionKWh, e.Input.Bill,
				e.Economics.SystemPowerKW, e.Economics.SystemCost,
				e.Economics.MonthlyNetSavings, payback, e.Economics.PaybackStatus.String(),
				e.Environmental.AnnualCO2AvoidedKg, e.Environmental.TreesEquivalent, "",
			)
		} else {
			values = append(values, "", "", "", "", "", "", "", "", "", r.Error)
		}
		if err := x.SetSheetRow(SheetHouseholds, cell, &values); err != nil {
			return fmt.Errorf("writing %s: %w", cell, err)
		}
	}

	if _, err := x.NewSheet(SheetSummary); err != nil {
		return err
	}
	s := batch.Summarize(results)
	rows := [][]interface{}{
		{opts.Title},
		{"Generated", opts.GeneratedAt.Format("2006-01-02 15:04")},
		{"Households", s.Households},
		{"Failed", s.Failed},
		{"Payback not achievable", s.NotViable},
		{"Total system cost", s.TotalSystemCost},
		{"Total system power (kW)", s.TotalPowerKW},
		{"Total annual net savings", s.AnnualSavings},
		{"Total CO2 avoided (kg/yr)", s.AnnualCO2Kg},
		{"Total trees equivalent", s.Trees},
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := x.SetSheetRow(SheetSummary, cell, &r); err != nil {
			return err
		}
	}

	if err := x.Write(w); err != nil {
		return fmt.Errorf("writing XLSX: %w", err)
	}
	return nil
}
