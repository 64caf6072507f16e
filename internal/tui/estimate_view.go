package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/solarfocus/internal/chart"
	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/internal/render"
)

// Layout constants for the result view.
const (
	sectionLabelWidth = 28
	chartLabelPadding = 40
	minChartWidth     = 10
)

// RenderEstimateHeader renders the title bar.
func RenderEstimateHeader() string {
	return TitleStyle.Render("Solar Savings Estimator")
}

// RenderPaybackStatus renders a one-line badge for the payback outcome.
func RenderPaybackStatus(f *render.Formatter, e *engine.Estimate) string {
	if !e.Viable() {
		return WarningStyle.Render(IconWarning + " " + render.NotAchievableText)
	}
	return OKStyle.Render(IconOK + " pays for itself in " + f.Payback(e))
}

// RenderSections renders the estimate's labelled sections.
func RenderSections(sections []render.Section) string {
	var sb strings.Builder
	label := LabelStyle.Width(sectionLabelWidth)

	for i, s := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(HeaderStyle.Render(strings.ToUpper(s.Heading)))
		sb.WriteString("\n")
		for _, l := range s.Lines {
			sb.WriteString(label.Render(l.Label))
			sb.WriteString(ValueStyle.Render(l.Value))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// RenderEstimateResult renders the full result: payback badge, sections,
// equivalencies and the comparison chart sized to width.
func RenderEstimateResult(f *render.Formatter, e *engine.Estimate, width int) string {
	if e == nil {
		return SubtleStyle.Render("No estimate yet.")
	}

	var sb strings.Builder
	sb.WriteString(RenderPaybackStatus(f, e))
	sb.WriteString("\n\n")
	sb.WriteString(RenderSections(render.Sections(f, e)))

	if !e.Equivalencies.IsEmpty {
		sb.WriteString("\n")
		sb.WriteString(SubtleStyle.Render(e.Equivalencies.DisplayText))
		sb.WriteString("\n")
	}

	r := chart.NewRenderer(chart.TerminalSink{Width: max(width-chartLabelPadding, minChartWidth)}, f)
	r.Update(e.Chart)
	var chartOut strings.Builder
	if err := r.Render(&chartOut); err == nil {
		sb.WriteString("\n")
		sb.WriteString(BoxStyle.Render(strings.TrimRight(chartOut.String(), "\n")))
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderEstimateHelp renders the keyboard shortcut help text for state.
func RenderEstimateHelp(state EstimateState) string {
	var shortcuts []string
	if state == EstimateStateResult {
		shortcuts = []string{"e/Enter: Edit", "q: Quit"}
	} else {
		shortcuts = []string{"Tab/↑/↓: Move", "Enter: Calculate", "Esc: Quit"}
	}
	return SubtleStyle.Render(strings.Join(shortcuts, " | "))
}

// RenderLoadingIndicator renders a loading indicator for a calculation.
func RenderLoadingIndicator() string {
	return lipgloss.NewStyle().
		Foreground(ColorSpinner).
		Bold(true).
		Render("Calculating estimate...")
}
