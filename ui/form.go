package ui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/videoinfo/video"
)

// fieldKind decides how an entered value is checked before it is accepted
type fieldKind int

const (
	kindText fieldKind = iota
	kindFormat
	kindFloat
	kindInt
)

// Field positions in the form
const (
	idxFilename = iota
	idxFormat
	idxDuration
	idxSize
	idxWidth
	idxHeight
	idxFrameRate
	idxCodec
)

type formField struct {
	label       string
	placeholder string
	kind        fieldKind
	errText     string
}

var formFields = []formField{
	{label: "Filename (without extension)", placeholder: "movie", kind: kindText},
	{label: "Format", placeholder: ".mp4", kind: kindFormat},
	{label: "Duration (seconds)", placeholder: "3600", kind: kindFloat, errText: "duration must be a number greater than zero"},
	{label: "Size (bytes)", placeholder: "1073741824", kind: kindFloat, errText: "size must be a number greater than zero"},
	{label: "Width (pixels)", placeholder: "1920", kind: kindInt, errText: "width must be a whole number greater than zero"},
	{label: "Height (pixels)", placeholder: "1080", kind: kindInt, errText: "height must be a whole number greater than zero"},
	{label: "Frame Rate (fps)", placeholder: "29.97", kind: kindFloat, errText: "frame rate must be a number greater than zero"},
	{label: "Video Codec", placeholder: "H.264", kind: kindText},
}

// FormModel is the TUI model for the metadata entry form
type FormModel struct {
	// Form state
	inputs   []textinput.Model
	focus    int
	accepted []bool // fields accepted with enter, by position
	errText  string

	// UI components
	prog progress.Model

	// Layout
	width int

	// Control state
	done    bool
	aborted bool

	// Version for display
	Version string
}

// NewFormModel creates the entry form with the first field focused
func NewFormModel(version string) FormModel {
	inputs := make([]textinput.Model, len(formFields))
	for i, field := range formFields {
		ti := textinput.New()
		ti.Placeholder = field.placeholder
		ti.CharLimit = 128
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[0].Focus()
	inputs[0].PromptStyle = FocusedStyle
	inputs[0].TextStyle = FocusedStyle

	return FormModel{
		inputs:   inputs,
		accepted: make([]bool, len(formFields)),
		prog:     progress.New(progress.WithDefaultGradient()),
		Version:  version,
	}
}

// Init implements tea.Model
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit

		case "enter":
			return m.acceptField()

		case "tab", "down":
			return m.focusField(m.focus + 1)

		case "shift+tab", "up":
			return m.focusField(m.focus - 1)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 24; w > 0 && w < m.prog.Width {
			m.prog.Width = w
		}
		return m, nil
	}

	// Editing a field takes its acceptance back until enter confirms it
	// again.
	var cmd tea.Cmd
	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		m.accepted[m.focus] = false
	}
	return m, cmd
}

// acceptField checks the focused value and moves on. Accepting the last
// field finishes the form once every field checks out.
func (m FormModel) acceptField() (tea.Model, tea.Cmd) {
	if err := validateField(m.focus, m.inputs[m.focus].Value()); err != nil {
		m.errText = err.Error()
		return m, nil
	}
	m.errText = ""
	m.accepted[m.focus] = true

	if m.focus < len(m.inputs)-1 {
		return m.focusField(m.focus + 1)
	}

	// Earlier fields can still be wrong when they were skipped over with
	// tab, so recheck everything before finishing.
	for i := range m.inputs {
		if err := validateField(i, m.inputs[i].Value()); err != nil {
			m.accepted[i] = false
			m.errText = err.Error()
			return m.focusField(i)
		}
	}
	m.done = true
	return m, tea.Quit
}

// focusField moves focus to field i, ignoring moves past either end
func (m FormModel) focusField(i int) (tea.Model, tea.Cmd) {
	if i < 0 || i >= len(m.inputs) {
		return m, nil
	}
	m.inputs[m.focus].Blur()
	m.inputs[m.focus].PromptStyle = BlurredStyle
	m.inputs[m.focus].TextStyle = lipgloss.NewStyle()

	m.focus = i
	m.inputs[i].PromptStyle = FocusedStyle
	m.inputs[i].TextStyle = FocusedStyle
	return m, m.inputs[i].Focus()
}

// validateField checks an entered value against its field's kind
func validateField(i int, value string) error {
	field := formFields[i]
	v := strings.TrimSpace(value)

	switch field.kind {
	case kindFormat:
		if !video.IsSupportedFormat(v) {
			return &video.UnsupportedFormatError{Format: v}
		}
	case kindFloat:
		// ParseFloat also accepts "Inf" and "NaN" spellings.
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || n <= 0 || math.IsInf(n, 0) || math.IsNaN(n) {
			return errors.New(field.errText)
		}
	case kindInt:
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return errors.New(field.errText)
		}
	}
	return nil
}

// View implements tea.Model
func (m FormModel) View() string {
	if m.aborted {
		return "Cancelled.\n"
	}
	if m.done {
		return ""
	}

	// Header
	header := HeaderStyle.Render(fmt.Sprintf("VideoInfo %s", m.Version))

	// Field list
	var fields strings.Builder
	for i := range m.inputs {
		label := formFields[i].label
		switch {
		case i == m.focus:
			fields.WriteString(FocusedStyle.Render("> " + label))
		case m.accepted[i]:
			fields.WriteString(SuccessStyle.Render("✓ " + label))
		default:
			fields.WriteString(BlurredStyle.Render("  " + label))
		}
		fields.WriteString("\n")
		fields.WriteString("  " + m.inputs[i].View())
		if i < len(m.inputs)-1 {
			fields.WriteString("\n")
		}
	}

	// Progress
	count := m.acceptedCount()
	status := fmt.Sprintf("Progress: %s (%d/%d)",
		m.prog.ViewAs(float64(count)/float64(len(m.inputs))),
		count,
		len(m.inputs))

	// Controls
	controls := HelpStyle.Render("Controls: [enter] Accept  [tab/shift+tab] Move  [esc] Cancel")

	sections := []string{header, fields.String()}
	if m.errText != "" {
		sections = append(sections, ErrorStyle.Render("❌ "+m.errText))
	}
	sections = append(sections, status, controls)

	return strings.Join(sections, "\n\n")
}

// acceptedCount is the number of fields accepted so far
func (m FormModel) acceptedCount() int {
	count := 0
	for _, ok := range m.accepted {
		if ok {
			count++
		}
	}
	return count
}

// Done reports whether every field was accepted
func (m FormModel) Done() bool {
	return m.done
}

// Aborted reports whether the form was cancelled
func (m FormModel) Aborted() bool {
	return m.aborted
}

// Metadata assembles the entered values. Only meaningful once Done
// reports true.
func (m FormModel) Metadata() video.Metadata {
	duration, _ := strconv.ParseFloat(strings.TrimSpace(m.inputs[idxDuration].Value()), 64)
	size, _ := strconv.ParseFloat(strings.TrimSpace(m.inputs[idxSize].Value()), 64)
	width, _ := strconv.Atoi(strings.TrimSpace(m.inputs[idxWidth].Value()))
	height, _ := strconv.Atoi(strings.TrimSpace(m.inputs[idxHeight].Value()))
	frameRate, _ := strconv.ParseFloat(strings.TrimSpace(m.inputs[idxFrameRate].Value()), 64)

	return video.Metadata{
		Filename:  m.inputs[idxFilename].Value(),
		Format:    strings.TrimSpace(m.inputs[idxFormat].Value()),
		Duration:  duration,
		Size:      size,
		Width:     width,
		Height:    height,
		FrameRate: frameRate,
		Codec:     m.inputs[idxCodec].Value(),
	}
}
