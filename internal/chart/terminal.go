package chart

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/internal/render"
)

// DefaultTerminalWidth is the bar area width used when Width is zero.
const DefaultTerminalWidth = 40

const barGlyph = "█"

// TerminalSink draws horizontal bars with lipgloss colors.
type TerminalSink struct {
	// Width is the number of cells the longest bar occupies.
	Width int
}

// Draw implements Sink.
func (s TerminalSink) Draw(w io.Writer, c engine.ComparisonChart, f *render.Formatter) error {
	if f == nil {
		f = render.DefaultFormatter()
	}
	width := s.Width
	if width <= 0 {
		width = DefaultTerminalWidth
	}

	labelWidth := 0
	for _, b := range c.Bars {
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
	}

	title := lipgloss.NewStyle().Bold(true).Render(c.Title)
	axis := lipgloss.NewStyle().Faint(true).Render(c.YAxisLabel)

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n")

	maxV := c.MaxValue()
	for i, b := range c.Bars {
		n := 0
		if maxV > 0 && b.Value > 0 {
			n = int(math.Round(b.Value / maxV * float64(width)))
		}
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(colorFor(i))).Render(strings.Repeat(barGlyph, n))
		fmt.Fprintf(&sb, "%-*s │%s %s\n", labelWidth, b.Label, bar, f.BarValue(b))
	}
	sb.WriteString(axis)
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
