// Package tui provides the interactive terminal form, a thin adapter over the
// conversion pipeline for users who prefer prompts to flags.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"txt_to_excel/internal/config"
	"txt_to_excel/internal/processing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Form field indices
const (
	fieldTxt = iota
	fieldTemplate
	fieldOutput
	fieldStartRow
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"TXT copy file",
	"Excel template",
	"Output file",
	"Start row",
}

// Styles collects the lipgloss styles used by the form
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Help  lipgloss.Style
	Error lipgloss.Style
	Done  lipgloss.Style
}

// DefaultStyles returns the default form styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Label: lipgloss.NewStyle().Width(16),
		Help:  lipgloss.NewStyle().Faint(true).MarginTop(1),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Done:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// convertResultMsg carries the outcome of a conversion back into the model
type convertResultMsg struct {
	count  int
	output string
	err    error
}

// Model is the state of the interactive conversion form
type Model struct {
	inputs    []textinput.Model
	focused   int
	converter *processing.Converter

	running bool
	status  string
	errMsg  string

	styles Styles
}

// NewModel creates the conversion form. The template field is prefilled with
// defaultTemplate so a plain enter-through run uses the bundled workbook.
func NewModel(converter *processing.Converter, defaultTemplate string) Model {
	inputs := make([]textinput.Model, fieldCount)

	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Width = 48
		inputs[i] = ti
	}

	inputs[fieldTxt].Placeholder = "path/to/copy.txt"
	inputs[fieldTemplate].SetValue(defaultTemplate)
	inputs[fieldOutput].Placeholder = "path/to/output.xlsx"
	inputs[fieldStartRow].SetValue(strconv.Itoa(config.DefaultStartRow))
	inputs[fieldStartRow].Width = 6

	inputs[fieldTxt].Focus()

	return Model{
		inputs:    inputs,
		focused:   fieldTxt,
		converter: converter,
		styles:    DefaultStyles(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			m.setFocus((m.focused + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focused + fieldCount - 1) % fieldCount)
			return m, nil
		case "enter":
			if m.focused == fieldStartRow {
				return m.submit()
			}
			m.setFocus(m.focused + 1)
			return m, nil
		case "ctrl+s":
			return m.submit()
		}

	case convertResultMsg:
		m.running = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.status = ""
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("Wrote %d text units to %s", msg.count, msg.output)
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// setFocus moves keyboard focus to the given field
func (m *Model) setFocus(field int) {
	m.inputs[m.focused].Blur()
	m.focused = field
	m.inputs[m.focused].Focus()
}

// submit validates the form and starts a conversion
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.running {
		return m, nil
	}

	txtPath := strings.TrimSpace(m.inputs[fieldTxt].Value())
	templatePath := strings.TrimSpace(m.inputs[fieldTemplate].Value())
	outputPath := strings.TrimSpace(m.inputs[fieldOutput].Value())
	startRowRaw := strings.TrimSpace(m.inputs[fieldStartRow].Value())

	if txtPath == "" {
		m.errMsg = "Choose a TXT copy file first."
		return m, nil
	}
	if outputPath == "" {
		m.errMsg = "Choose where to save the Excel output."
		return m, nil
	}

	startRow, err := strconv.Atoi(startRowRaw)
	if err != nil {
		m.errMsg = fmt.Sprintf("Start row must be an integer, got %q.", startRowRaw)
		return m, nil
	}

	m.errMsg = ""
	m.status = "Converting..."
	m.running = true

	converter := m.converter
	return m, func() tea.Msg {
		count, err := converter.Convert(txtPath, templatePath, outputPath, startRow)
		return convertResultMsg{count: count, output: outputPath, err: err}
	}
}

// View renders the form
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("TXT copy to Excel"))
	b.WriteString("\n")

	for i, input := range m.inputs {
		b.WriteString(m.styles.Label.Render(fieldLabels[i] + ":"))
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.styles.Done.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("tab/shift+tab move between fields, enter on the last field converts, esc quits"))
	b.WriteString("\n")

	return b.String()
}

// Run starts the interactive form and blocks until the user quits
func Run(converter *processing.Converter, defaultTemplate string) error {
	program := tea.NewProgram(NewModel(converter, defaultTemplate))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interactive mode failed: %w", err)
	}
	return nil
}
