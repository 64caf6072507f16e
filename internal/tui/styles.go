// Package tui implements the interactive terminal views: the estimate form
// and the batch results browser.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by every view. The bar colors match the comparison chart.
const (
	ColorHeader    = lipgloss.Color("#2ECC71")
	ColorBorder    = lipgloss.Color("240")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("241")
	ColorOK        = lipgloss.Color("#2ECC71")
	ColorWarning   = lipgloss.Color("#F1C40F")
	ColorCritical  = lipgloss.Color("#E74C3C")
	ColorHighlight = lipgloss.Color("57")
	ColorSpinner   = lipgloss.Color("205")
)

// Status icons.
const (
	IconOK      = "✓"
	IconWarning = "!"
	IconCursor  = "▌"
	IconPointer = "›"
)

//nolint:gochecknoglobals // Styles are immutable values shared across views.
var (
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	OKStyle       = lipgloss.NewStyle().Foreground(ColorOK).Bold(true)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TableHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader).BorderBottom(true)
	TableSelectedStyle = lipgloss.NewStyle().Foreground(ColorValue).Background(ColorHighlight).Bold(true)
)
