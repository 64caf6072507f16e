package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/internal/render"
)

// EstimateState represents the current state of the estimate TUI.
type EstimateState int

const (
	// EstimateStateEditing indicates the user is filling in the form.
	EstimateStateEditing EstimateState = iota
	// EstimateStateCalculating indicates an estimate is being computed.
	EstimateStateCalculating
	// EstimateStateResult indicates the last estimate is on screen.
	EstimateStateResult
	// EstimateStateQuitting indicates the application is exiting.
	EstimateStateQuitting
)

// Form fields, in focus order.
const (
	fieldConsumption = iota
	fieldBill
	fieldCount
)

// Default dimensions for estimate model.
const (
	estimateDefaultWidth  = 80
	estimateDefaultHeight = 24
	inputCharLimit        = 16
	inputWidth            = 20
)

// EstimateFunc computes an estimate for validated input.
type EstimateFunc func(ctx context.Context, in engine.Input) (*engine.Estimate, error)

// estimateResultMsg is sent when a calculation completes.
type estimateResultMsg struct {
	estimate *engine.Estimate
	err      error
}

// EstimateModel is the Bubble Tea model for the interactive estimate form.
type EstimateModel struct {
	ctx        context.Context
	estimateFn EstimateFunc
	formatter  *render.Formatter
	unit       string

	inputs  []textinput.Model
	focused int

	estimate *engine.Estimate
	state    EstimateState
	err      error

	width  int
	height int
}

// NewEstimateModel creates the form. A nil formatter uses the default.
func NewEstimateModel(ctx context.Context, f *render.Formatter, fn EstimateFunc) *EstimateModel {
	if f == nil {
		f = render.DefaultFormatter()
	}

	m := &EstimateModel{
		ctx:        ctx,
		estimateFn: fn,
		formatter:  f,
		inputs:     make([]textinput.Model, fieldCount),
		state:      EstimateStateEditing,
		width:      estimateDefaultWidth,
		height:     estimateDefaultHeight,
	}

	m.inputs[fieldConsumption] = newNumberInput("Monthly consumption (kWh): ", "e.g. 300")
	m.inputs[fieldBill] = newNumberInput("Monthly bill ("+f.Symbol()+"): ", "e.g. 250")
	m.inputs[fieldConsumption].Focus()

	return m
}

func newNumberInput(prompt, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = placeholder
	ti.CharLimit = inputCharLimit
	ti.Width = inputWidth
	ti.PromptStyle = LabelStyle
	ti.TextStyle = ValueStyle
	return ti
}

// SetValues pre-fills the form, e.g. from command-line flags.
func (m *EstimateModel) SetValues(consumption, bill string) {
	m.inputs[fieldConsumption].SetValue(consumption)
	m.inputs[fieldBill].SetValue(bill)
}

// SetUnit sets the unit consumption is entered in. Empty means kWh.
func (m *EstimateModel) SetUnit(unit string) {
	m.unit = unit
	if u, err := engine.ParseUnit(unit); err == nil {
		m.inputs[fieldConsumption].Prompt = "Monthly consumption (" + string(u) + "): "
	}
}

// Estimate returns the last successful estimate, or nil.
func (m *EstimateModel) Estimate() *engine.Estimate {
	return m.estimate
}

// State returns the current state.
func (m *EstimateModel) State() EstimateState {
	return m.state
}

// Err returns the error shown under the form, if any.
func (m *EstimateModel) Err() error {
	return m.err
}

// Init initializes the model.
func (m *EstimateModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *EstimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case estimateResultMsg:
		return m.handleResult(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m.updateFocusedInput(msg)
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // Only handling relevant key types for form navigation.
func (m *EstimateModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.state = EstimateStateQuitting
		return m, tea.Quit
	}

	switch m.state {
	case EstimateStateCalculating:
		return m, nil
	case EstimateStateResult:
		return m.handleResultKey(msg)
	case EstimateStateEditing, EstimateStateQuitting:
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.state = EstimateStateQuitting
		return m, tea.Quit

	case tea.KeyUp, tea.KeyShiftTab:
		return m, m.focus((m.focused + fieldCount - 1) % fieldCount)

	case tea.KeyDown, tea.KeyTab:
		return m, m.focus((m.focused + 1) % fieldCount)

	case tea.KeyEnter:
		if m.focused < fieldCount-1 && m.inputs[m.focused+1].Value() == "" {
			return m, m.focus(m.focused + 1)
		}
		return m, m.submit()
	}

	return m.updateFocusedInput(msg)
}

// handleResultKey processes keys while the result is displayed.
//
//nolint:exhaustive // Only handling relevant key types for the result view.
func (m *EstimateModel) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.state = EstimateStateEditing
		return m, m.focus(fieldConsumption)

	case tea.KeyRunes:
		switch strings.ToLower(string(msg.Runes)) {
		case "q":
			m.state = EstimateStateQuitting
			return m, tea.Quit
		case "e":
			m.state = EstimateStateEditing
			return m, m.focus(fieldConsumption)
		}
	}
	return m, nil
}

func (m *EstimateModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state != EstimateStateEditing {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *EstimateModel) focus(field int) tea.Cmd {
	m.inputs[m.focused].Blur()
	m.focused = field
	return m.inputs[m.focused].Focus()
}

// submit validates the form and starts a calculation. Validation errors stay
// on the form.
func (m *EstimateModel) submit() tea.Cmd {
	in, err := engine.ParseInput(
		m.inputs[fieldConsumption].Value(),
		m.inputs[fieldBill].Value(),
		m.unit,
	)
	if err != nil {
		m.err = err
		return nil
	}

	m.err = nil
	m.state = EstimateStateCalculating

	// Capture references before the command runs off the update loop.
	ctx := m.ctx
	fn := m.estimateFn
	if fn == nil {
		fn = func(_ context.Context, in engine.Input) (*engine.Estimate, error) {
			return engine.Compute(in)
		}
	}

	return func() tea.Msg {
		est, estErr := fn(ctx, in)
		return estimateResultMsg{estimate: est, err: estErr}
	}
}

// handleResult processes a completed calculation.
func (m *EstimateModel) handleResult(msg estimateResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		m.state = EstimateStateEditing
		return m, nil
	}

	m.estimate = msg.estimate
	m.state = EstimateStateResult
	return m, nil
}

// View renders the current view.
func (m *EstimateModel) View() string {
	var sb strings.Builder

	switch m.state {
	case EstimateStateQuitting:
		return ""

	case EstimateStateCalculating:
		sb.WriteString(RenderEstimateHeader())
		sb.WriteString("\n\n")
		sb.WriteString(RenderLoadingIndicator())
		return sb.String()

	case EstimateStateResult:
		sb.WriteString(RenderEstimateHeader())
		sb.WriteString("\n\n")
		sb.WriteString(RenderEstimateResult(m.formatter, m.estimate, m.width))
		sb.WriteString("\n")
		sb.WriteString(RenderEstimateHelp(m.state))
		return sb.String()

	case EstimateStateEditing:
	}

	sb.WriteString(RenderEstimateHeader())
	sb.WriteString("\n\n")
	for i := range m.inputs {
		sb.WriteString(m.inputs[i].View())
		sb.WriteString("\n")
	}
	if m.err != nil {
		sb.WriteString("\n")
		sb.WriteString(CriticalStyle.Render(m.err.Error()))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(RenderEstimateHelp(m.state))
	return sb.String()
}
