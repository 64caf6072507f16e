package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/internal/engine/batch"
	"github.com/rshade/solarfocus/internal/render"
	"github.com/rshade/solarfocus/internal/tui"
)

// stdinFile returns the command's input when it is a file, else os.Stdin.
func stdinFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		return f
	}
	return os.Stdin
}

func runInteractiveEstimate(cmd *cobra.Command, eng *engine.Engine, f *render.Formatter, params EstimateParams) error {
	m := tui.NewEstimateModel(cmd.Context(), f, func(ctx context.Context, in engine.Input) (*engine.Estimate, error) {
		in.Label = params.Label
		return eng.Estimate(ctx, in)
	})
	m.SetUnit(params.Unit)
	m.SetValues(params.Consumption, params.Bill)

	p := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}

	// Leave the last result on the normal screen.
	if est := m.Estimate(); est != nil {
		return render.EstimateTable(cmd.OutOrStdout(), f, est)
	}
	return nil
}

func runInteractiveBatch(cmd *cobra.Command, results []batch.Result, f *render.Formatter) error {
	p := tea.NewProgram(tui.NewBatchModel(results, f), tea.WithContext(cmd.Context()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
