package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hhkbp2/go-logging"
	"github.com/ngmaloney/truewind/internal/config"
	"github.com/ngmaloney/truewind/internal/models"
	"github.com/ngmaloney/truewind/internal/settings"
	"github.com/ngmaloney/truewind/internal/solver"
)

// InvalidInputText replaces the readout when a field does not parse
const InvalidInputText = "Invalid input"

// Input field indexes
const (
	FieldBoatSpeed = iota
	FieldHeading
	FieldWindSpeed
	FieldWindBearing
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Boat speed (kn)",
	"Heading (°)",
	"Wind speed (kn)",
	"Wind bearing (°)",
}

// chromeHeight is the number of lines used by everything but the compass
const chromeHeight = 21

// Options configures a new Model
type Options struct {
	ReferenceFrame models.ReferenceFrame
	Orientation    models.OrientationMode
	Preferences    *settings.Repository // nil disables saved preferences
}

// Model represents the application's state
type Model struct {
	width  int
	height int

	// Form
	inputs [fieldCount]textinput.Model
	focus  int
	frame  models.ReferenceFrame
	view   models.ViewState

	// Last successful solve, nil until the first one
	result  *models.TrueWindResult
	readout string
	invalid bool

	// Compass
	compass     *compassView
	compassText string

	// Preferences
	prefs   *settings.Repository
	toggled bool // a toggle was used, so a late load must not override it
	status  string
	err     error
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = "0.0"
		ti.CharLimit = 16
		ti.Width = 16
		inputs[i] = ti
	}
	inputs[FieldBoatSpeed].Focus()

	frame := opts.ReferenceFrame
	if frame == "" {
		frame = models.NorthReferenced
	}
	orientation := opts.Orientation
	if orientation == "" {
		orientation = models.NorthUp
	}

	return Model{
		inputs:  inputs,
		frame:   frame,
		view:    models.ViewState{Orientation: orientation},
		compass: &compassView{},
		prefs:   opts.Preferences,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	if m.prefs != nil {
		return tea.Batch(textinput.Blink, loadPreferences(m.prefs, m.preferences()))
	}
	return textinput.Blink
}

func (m Model) preferences() settings.Preferences {
	return settings.Preferences{ReferenceFrame: m.frame, Orientation: m.view.Orientation}
}

// Result returns the last successfully solved true wind
func (m Model) Result() (models.TrueWindResult, bool) {
	if m.result == nil {
		return models.TrueWindResult{}, false
	}
	return *m.result, true
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.redraw()
		return m, nil

	case preferencesLoadedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("loading preferences: %w", msg.err)
			return m, nil
		}
		if m.toggled {
			logging.GetLogger(config.LoggerName).Debugf("ignoring loaded preferences %+v after a toggle", msg.prefs)
			return m, nil
		}
		m.frame = msg.prefs.ReferenceFrame
		m.view.Orientation = msg.prefs.Orientation
		m.redraw()
		return m, nil

	case preferencesSavedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("saving preferences: %w", msg.err)
			m.status = ""
			return m, nil
		}
		m.err = nil
		m.status = "Preferences saved"
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		m.calculate()
		return m, nil

	case "tab", "down":
		return m.moveFocus(1), textinput.Blink

	case "shift+tab", "up":
		return m.moveFocus(-1), textinput.Blink

	case "ctrl+r":
		m.frame = m.frame.Next()
		m.toggled = true
		m.status = ""
		return m, nil

	case "ctrl+o":
		m.view.Orientation = m.view.Orientation.Next()
		m.toggled = true
		m.status = ""
		m.redraw()
		return m, nil

	case "ctrl+s":
		if m.prefs == nil {
			return m, nil
		}
		return m, savePreferences(m.prefs, m.preferences())
	}

	// Update focused text input
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) moveFocus(delta int) Model {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
	return m
}

// calculate solves the form. On invalid input the readout is replaced and
// the last compass is kept as it was.
func (m *Model) calculate() {
	logger := logging.GetLogger(config.LoggerName)

	result, err := solver.SolveInput(
		m.inputs[FieldBoatSpeed].Value(),
		m.inputs[FieldHeading].Value(),
		m.inputs[FieldWindSpeed].Value(),
		m.inputs[FieldWindBearing].Value(),
		m.frame,
	)
	if err != nil {
		logger.Infof("calculate: %v", err)
		m.readout = InvalidInputText
		m.invalid = true
		return
	}

	m.result = &result
	m.readout = result.String()
	m.invalid = false
	logger.Infof("calculate: %s", m.readout)
	m.redraw()
}

// redraw regenerates the compass from the last result
func (m *Model) redraw() {
	if m.result == nil || m.width == 0 {
		return
	}
	cols, rows := compassSize(m.width-2, m.height-chromeHeight)
	text, err := m.compass.render(cols, rows, *m.result, m.view.Orientation)
	if err != nil {
		m.err = fmt.Errorf("drawing compass: %w", err)
		return
	}
	m.compassText = text
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := titleStyle.Render("⚓ True Wind")
	subtitle := mutedStyle.Render("True wind from boat motion and apparent wind")

	var rows []string
	for i, in := range m.inputs {
		style := labelStyle
		if i == m.focus {
			style = activeLabelStyle
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, style.Render(fieldLabels[i]), in.View()))
	}
	rows = append(rows,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render("Reference (^R)"),
			renderToggle(models.NorthReferenced.Label(), m.frame == models.NorthReferenced),
			renderToggle(models.HeadingReferenced.Label(), m.frame == models.HeadingReferenced),
		),
		lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render("Display (^O)"),
			renderToggle(string(models.NorthUp), m.view.Orientation == models.NorthUp),
			renderToggle(string(models.HeadingUp), m.view.Orientation == models.HeadingUp),
		),
	)
	form := formBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	var sections []string
	sections = append(sections, title, subtitle, "", form, "")

	switch {
	case m.invalid:
		sections = append(sections, invalidStyle.Render("✗ "+m.readout))
	case m.readout != "":
		sections = append(sections, readoutStyle.Render(m.readout))
	default:
		sections = append(sections, mutedStyle.Render("Fill in the fields and press Enter"))
	}

	force := -1
	if m.result != nil {
		force = m.result.BeaufortForce
	}
	sections = append(sections, beaufortLegend(force))

	if m.compassText != "" {
		sections = append(sections, "", m.compassText)
	}

	if m.err != nil {
		sections = append(sections, invalidStyle.Render("✗ "+m.err.Error()))
	} else if m.status != "" {
		sections = append(sections, valueStyle.Render(m.status))
	}

	help := helpStyle.Render("Tab/↑↓: Move • Enter: Calculate • ^R: Reference • ^O: Display • ^S: Save • Esc: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderToggle(text string, on bool) string {
	if on {
		return toggleOnStyle.Render("● " + text)
	}
	return toggleOffStyle.Render("○ " + text)
}
