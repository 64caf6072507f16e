package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/internal/engine/batch"
	"github.com/rshade/solarfocus/internal/report"
)

// ReportParams holds the parameters for the report command execution.
type ReportParams struct {
	Consumption string
	Bill        string
	Unit        string
	Label       string
	File        string
	Format      string
	Out         string
	Title       string
}

// NewReportCmd creates the "report" command that writes PDF or XLSX files.
func NewReportCmd() *cobra.Command {
	var params ReportParams

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write an estimate report as PDF or XLSX",
		Long: `Write a report for one household (--consumption and --bill) or for a
households file (--file). XLSX reports for a single household include a
native bar chart; PDF reports draw the comparison chart inline.

Use --out - to write the report to standard output.`,
		Example: `  # PDF report for one household
  solarfocus report --consumption 300 --bill 250 --format pdf --out estimate.pdf

  # XLSX workbook for a batch
  solarfocus report --file households.csv --format xlsx --out households.xlsx`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeReport(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.Consumption, "consumption", "", "monthly electricity consumption")
	cmd.Flags().StringVar(&params.Bill, "bill", "", "monthly electricity bill")
	cmd.Flags().StringVar(&params.Unit, "unit", "kWh", "consumption unit: Wh, kWh or MWh")
	cmd.Flags().StringVar(&params.Label, "label", "", "household label")
	cmd.Flags().StringVar(&params.File, "file", "", "households file for a batch report")
	cmd.Flags().StringVar(&params.Format, "format", string(report.FormatPDF), "report format: pdf or xlsx")
	cmd.Flags().StringVar(&params.Out, "out", "", "output path (default solar-estimate.<format>)")
	cmd.Flags().StringVar(&params.Title, "title", "", "report title")

	return cmd
}

// ValidateReportFlags checks that exactly one input source is given.
func ValidateReportFlags(params *ReportParams) error {
	single := params.Consumption != "" || params.Bill != ""
	if single && params.File != "" {
		return errors.New("cannot combine --file with --consumption/--bill")
	}
	if !single && params.File == "" {
		return errors.New("either --file or both --consumption and --bill are required")
	}
	if single && (params.Consumption == "" || params.Bill == "") {
		return errors.New("--consumption and --bill must be given together")
	}
	return nil
}

func executeReport(cmd *cobra.Command, params ReportParams) error {
	if err := ValidateReportFlags(&params); err != nil {
		return err
	}

	format, err := report.ParseFormat(params.Format)
	if err != nil {
		return err
	}
	f, err := newFormatter()
	if err != nil {
		return err
	}
	opts := report.Options{Title: params.Title, Formatter: f, GeneratedAt: time.Now()}

	var buf bytes.Buffer
	if params.File != "" {
		results, runErr := estimateFile(cmd, params.File, batch.Options{})
		if runErr != nil {
			return runErr
		}
		err = report.WriteBatch(&buf, format, results, opts)
	} else {
		err = writeSingleReport(cmd, &buf, format, params, opts)
	}
	if err != nil {
		return err
	}

	out := params.Out
	if out == "" {
		out = "solar-estimate." + string(format)
	}
	if out == "-" {
		_, err = buf.WriteTo(cmd.OutOrStdout())
		return err
	}
	if err = os.WriteFile(out, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	cmd.PrintErrf("Report written to %s\n", out)
	return nil
}

func writeSingleReport(
	cmd *cobra.Command,
	buf *bytes.Buffer,
	format report.Format,
	params ReportParams,
	opts report.Options,
) error {
	in, err := engine.ParseInput(params.Consumption, params.Bill, params.Unit)
	if err != nil {
		return err
	}
	in.Label = params.Label

	eng, err := newEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = eng.Close() }()

	est, err := eng.Estimate(cmd.Context(), in)
	if err != nil {
		return err
	}
	return report.Write(buf, format, est, opts)
}
