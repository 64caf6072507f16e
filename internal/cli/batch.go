package cli

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/spf13/cobra"

	"github.com/rshade/solarfocus/internal/engine/batch"
	"github.com/rshade/solarfocus/internal/render"
)

// BatchParams holds the parameters for the batch command execution.
type BatchParams struct {
	File        string
	Output      string
	Concurrency int
	BatchSize   int
	Interactive bool
	Progress    bool
}

// NewBatchCmd creates the "batch" command for estimating many households.
func NewBatchCmd() *cobra.Command {
	var params BatchParams

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Estimate every household in a YAML, CSV or XLSX file",
		Long: `Estimate every household listed in a file.

YAML files hold a list (or a "households" key) of entries with label,
consumption, bill and an optional unit. CSV and XLSX files need a header row
with consumption and bill columns; label and unit columns are optional.

Rows that fail validation are reported individually and do not stop the run.`,
		Example: `  # Table with a summary footer
  solarfocus batch --file households.csv

  # JSON with summary, eight batches in parallel
  solarfocus batch --file households.xlsx --output json --concurrency 8

  # Large file, in order, with a progress line
  solarfocus batch --file households.csv --concurrency 1 --batch-size 500 --progress

  # Browse results interactively
  solarfocus batch --file households.yaml --interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeBatch(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.File, "file", "", "households file (.yaml, .yml, .csv or .xlsx)")
	cmd.Flags().StringVar(&params.Output, "output", "", "output format: table, json or ndjson (default from config)")
	cmd.Flags().IntVar(&params.Concurrency, "concurrency", 0, "batches estimated in parallel (0 = number of CPUs)")
	cmd.Flags().IntVar(&params.BatchSize, "batch-size", batch.DefaultBatchSize, "households per batch")
	cmd.Flags().BoolVar(&params.Interactive, "interactive", false, "browse the results in a table")
	cmd.Flags().BoolVar(&params.Progress, "progress", false, "report progress on stderr after each batch")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// estimateFile loads and estimates a households file.
func estimateFile(cmd *cobra.Command, path string, opts batch.Options) ([]batch.Result, error) {
	households, err := batch.Load(path)
	if err != nil {
		return nil, err
	}

	eng, err := newEngine(cmd.Context())
	if err != nil {
		return nil, err
	}
	defer func() { _ = eng.Close() }()

	return batch.Run(cmd.Context(), eng, households, opts)
}

func executeBatch(cmd *cobra.Command, params BatchParams) error {
	if params.Concurrency < 0 {
		return fmt.Errorf("--concurrency must be >= 0, got %d", params.Concurrency)
	}

	format, err := outputFormat(params.Output)
	if err != nil {
		return err
	}
	f, err := newFormatter()
	if err != nil {
		return err
	}

	opts := batch.Options{
		BatchSize:   params.BatchSize,
		Concurrency: params.Concurrency,
	}
	if params.Progress {
		opts.OnProgress = progressLine(cmd.ErrOrStderr())
	}

	results, err := estimateFile(cmd, params.File, opts)
	if err != nil {
		return err
	}

	if params.Interactive {
		if !isTerminal(stdinFile(cmd)) {
			return errors.New("--interactive requires a terminal")
		}
		return runInteractiveBatch(cmd, results, f)
	}

	return render.Batch(cmd.OutOrStdout(), format, f, results)
}

// progressLine rewrites a single status line on w and ends it once every
// household is done. Snapshots from concurrent batches may arrive out of
// order; anything after completion is dropped.
func progressLine(w io.Writer) batch.ProgressCallback {
	var (
		mu   sync.Mutex
		done bool
	)
	return func(s batch.ProgressSnapshot) {
		mu.Lock()
		defer mu.Unlock()
		if done {
			return
		}
		fmt.Fprintf(w, "\rEstimated %d/%d households (%.0f%%)", s.ProcessedItems, s.TotalItems, s.PercentComplete)
		if s.IsComplete() {
			fmt.Fprintln(w)
			done = true
		}
	}
}
