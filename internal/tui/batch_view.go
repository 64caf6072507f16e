package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/solarfocus/internal/engine/batch"
	"github.com/rshade/solarfocus/internal/greenops"
	"github.com/rshade/solarfocus/internal/render"
)

// Layout constants for the batch table.
const (
	maxLabelDisplayLen = 24
	truncateSuffix     = "..."
	borderPadding      = 2
	tableChromeHeight  = 10
	minTableHeight     = 3
	batchDefaultHeight = 20
)

// BatchView is the current screen of the batch TUI.
type BatchView int

const (
	// BatchViewList shows the results table.
	BatchViewList BatchView = iota
	// BatchViewDetail shows one household's full estimate.
	BatchViewDetail
)

// BatchModel browses batch results in a table with a detail view.
type BatchModel struct {
	results   []batch.Result
	summary   batch.Summary
	formatter *render.Formatter
	table     table.Model
	view      BatchView
	width     int
	height    int
}

// NewBatchModel creates the browser. A nil formatter uses the default.
func NewBatchModel(results []batch.Result, f *render.Formatter) *BatchModel {
	if f == nil {
		f = render.DefaultFormatter()
	}
	return &BatchModel{
		results:   results,
		summary:   batch.Summarize(results),
		formatter: f,
		table:     NewBatchTable(results, f, batchDefaultHeight-tableChromeHeight),
		width:     estimateDefaultWidth,
		height:    batchDefaultHeight,
	}
}

// View renders the active screen.
func (m *BatchModel) View() string {
	switch m.view {
	case BatchViewDetail:
		return m.renderDetail()
	case BatchViewList:
	}

	var sb strings.Builder
	sb.WriteString(RenderBatchSummary(m.formatter, m.summary, m.width))
	sb.WriteString("\n")
	sb.WriteString(m.table.View())
	sb.WriteString("\n")
	sb.WriteString(SubtleStyle.Render("↑/↓: Navigate | Enter: Details | q: Quit"))
	return sb.String()
}

// ActiveView reports the current screen.
func (m *BatchModel) ActiveView() BatchView {
	return m.view
}

// Selected returns the highlighted result.
func (m *BatchModel) Selected() (batch.Result, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.results) {
		return batch.Result{}, false
	}
	return m.results[i], true
}

// Init initializes the model.
func (m *BatchModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
//
//nolint:exhaustive // Only handling relevant key types for table navigation.
func (m *BatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-tableChromeHeight, minTableHeight))
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.view == BatchViewList && len(m.results) > 0 {
				m.view = BatchViewDetail
			}
			return m, nil
		case tea.KeyEsc:
			m.view = BatchViewList
			return m, nil
		case tea.KeyRunes:
			if string(msg.Runes) == "q" {
				if m.view == BatchViewDetail {
					m.view = BatchViewList
					return m, nil
				}
				return m, tea.Quit
			}
		}
	}

	if m.view != BatchViewList {
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *BatchModel) renderDetail() string {
	res, ok := m.Selected()
	if !ok {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(rowLabel(res)))
	sb.WriteString("\n\n")
	if res.Estimate == nil {
		sb.WriteString(CriticalStyle.Render("Error: " + res.Error))
		sb.WriteString("\n")
	} else {
		sb.WriteString(RenderEstimateResult(m.formatter, res.Estimate, m.width))
	}
	sb.WriteString("\n")
	sb.WriteString(SubtleStyle.Render("Esc/q: Back"))
	return sb.String()
}

// NewBatchTable creates a table model with one row per household.
func NewBatchTable(results []batch.Result, f *render.Formatter, height int) table.Model {
	columns := []table.Column{
		{Title: "Row", Width: 5},             //nolint:mnd // Column width.
		{Title: "Household", Width: 24},      //nolint:mnd // Column width.
		{Title: "Power", Width: 10},          //nolint:mnd // Column width.
		{Title: "Cost", Width: 16},           //nolint:mnd // Column width.
		{Title: "Payback", Width: 10},        //nolint:mnd // Column width.
		{Title: "Annual Savings", Width: 16}, //nolint:mnd // Column width.
		{Title: "CO2", Width: 10},            //nolint:mnd // Column width.
	}

	rows := make([]table.Row, len(results))
	for i, r := range results {
		rows[i] = NewBatchRow(r, f)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(height, minTableHeight)),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

// NewBatchRow converts a batch result into display cells. Failed rows show
// the error in place of figures.
func NewBatchRow(r batch.Result, f *render.Formatter) table.Row {
	label := truncate(rowLabel(r))
	if r.Estimate == nil {
		return table.Row{fmt.Sprint(r.Row), label, "-", "error", "-", "-", "-"}
	}

	e := r.Estimate
	return table.Row{
		fmt.Sprint(r.Row),
		label,
		f.Number(e.Economics.SystemPowerKW, 2) + " kW",
		f.Money(e.Economics.SystemCost),
		f.PaybackShort(e),
		f.Money(e.Economics.AnnualNetSavings),
		f.Tonnes(e.Environmental.CO2AvoidedTonnes),
	}
}

// RenderBatchSummary renders a boxed summary of a batch run.
func RenderBatchSummary(f *render.Formatter, s batch.Summary, width int) string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("BATCH SUMMARY"))
	content.WriteString("\n")
	writeSummaryLine(&content, "Households", fmt.Sprintf("%d (%d failed, %d not viable)",
		s.Households, s.Failed, s.NotViable))
	writeSummaryLine(&content, "Installed power", f.Number(s.TotalPowerKW, 2)+" kW")
	writeSummaryLine(&content, "Total system cost", f.Money(s.TotalSystemCost))
	writeSummaryLine(&content, "Annual savings", f.Money(s.AnnualSavings))
	writeSummaryLine(&content, "CO2 avoided per year", f.Tonnes(s.AnnualCO2Kg/greenops.KgPerTonne))
	writeSummaryLine(&content, "Trees equivalent", f.Number(float64(s.Trees), 0))

	return BoxStyle.Width(max(width-borderPadding, 0)).Render(strings.TrimRight(content.String(), "\n"))
}

func writeSummaryLine(sb *strings.Builder, label, value string) {
	sb.WriteString(LabelStyle.Render(label + ": "))
	sb.WriteString(ValueStyle.Render(value))
	sb.WriteString("\n")
}

func rowLabel(r batch.Result) string {
	if r.Label != "" {
		return r.Label
	}
	return fmt.Sprintf("row %d", r.Row)
}

func truncate(s string) string {
	if len([]rune(s)) <= maxLabelDisplayLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLabelDisplayLen-len(truncateSuffix)]) + truncateSuffix
}
