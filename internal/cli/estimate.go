package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/solarfocus/internal/chart"
	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/internal/logging"
	"github.com/rshade/solarfocus/internal/render"
)

// EstimateParams holds the parameters for the estimate command execution.
// Exported for testing.
type EstimateParams struct {
	Consumption string
	Bill        string
	Unit        string
	Label       string
	Output      string
	Chart       bool
	Interactive bool
}

// NewEstimateCmd creates the "estimate" command for a single household.
func NewEstimateCmd() *cobra.Command {
	var params EstimateParams

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate solar system size, cost, payback and avoided CO2",
		Long: `Estimate the solar installation for one household from its monthly
electricity consumption and bill.

Consumption is given in kWh unless --unit says otherwise. A bill at or below
the minimum utility fee is reported as "payback not achievable".`,
		Example: `  # Table output
  solarfocus estimate --consumption 300 --bill 250

  # Consumption in MWh, JSON output
  solarfocus estimate --consumption 0.3 --unit MWh --bill 250 --output json

  # Add the comparison chart
  solarfocus estimate --consumption 300 --bill 250 --chart

  # Interactive form
  solarfocus estimate --interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeEstimate(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.Consumption, "consumption", "", "monthly electricity consumption")
	cmd.Flags().StringVar(&params.Bill, "bill", "", "monthly electricity bill")
	cmd.Flags().StringVar(&params.Unit, "unit", "kWh", "consumption unit: Wh, kWh or MWh")
	cmd.Flags().StringVar(&params.Label, "label", "", "household label shown in the output")
	cmd.Flags().StringVar(&params.Output, "output", "", "output format: table, json or ndjson (default from config)")
	cmd.Flags().BoolVar(&params.Chart, "chart", false, "draw the comparison chart after the table")
	cmd.Flags().BoolVar(&params.Interactive, "interactive", false, "launch the interactive form")

	return cmd
}

// ValidateEstimateFlags checks that the flags describe a runnable estimate.
// Exported for testing.
func ValidateEstimateFlags(params *EstimateParams) error {
	if params.Interactive {
		return nil
	}
	if params.Consumption == "" || params.Bill == "" {
		return errors.New("--consumption and --bill are required unless --interactive is set")
	}
	return nil
}

func executeEstimate(cmd *cobra.Command, params EstimateParams) error {
	if err := ValidateEstimateFlags(&params); err != nil {
		return err
	}

	ctx := cmd.Context()
	f, err := newFormatter()
	if err != nil {
		return err
	}
	eng, err := newEngine(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = eng.Close() }()

	if params.Interactive {
		if !isTerminal(stdinFile(cmd)) {
			return errors.New("--interactive requires a terminal")
		}
		return runInteractiveEstimate(cmd, eng, f, params)
	}

	format, err := outputFormat(params.Output)
	if err != nil {
		return err
	}

	in, err := engine.ParseInput(params.Consumption, params.Bill, params.Unit)
	if err != nil {
		return err
	}
	in.Label = params.Label

	est, err := eng.Estimate(ctx, in)
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().
		Ctx(ctx).
		Str("payback_status", est.Economics.PaybackStatus.String()).
		Bool("cached", est.Cached).
		Msg("estimate rendered")

	out := cmd.OutOrStdout()
	if err = render.Estimate(out, format, f, est); err != nil {
		return err
	}

	if params.Chart && format == render.FormatTable {
		r := chart.NewRenderer(chart.TerminalSink{}, f)
		r.Update(est.Chart)
		if _, err = fmt.Fprintln(out); err != nil {
			return err
		}
		return r.Render(out)
	}
	return nil
}
