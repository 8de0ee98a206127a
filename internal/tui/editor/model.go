// Package editor is the interactive headline editor.
package editor

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	headlineapp "github.com/alexisbeaulieu97/headliner/internal/app/headline"
	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
	"github.com/alexisbeaulieu97/headliner/internal/preview"
)

// Model is the editor state. Settings live in the service; the model only
// keeps cursor, input buffers and status.
type Model struct {
	svc      *headlineapp.Service
	renderer preview.Renderer

	cursor int
	inputs map[ControlKind]*textinput.Model

	status     string
	statusErr  bool
	lastExport string

	width    int
	height   int
	quitting bool
}

// NewModel creates an editor bound to svc.
func NewModel(svc *headlineapp.Service, renderer preview.Renderer) Model {
	s := svc.Settings()

	m := Model{
		svc:      svc,
		renderer: renderer,
		inputs: map[ControlKind]*textinput.Model{
			ControlText:         newInput(s.Text, 0),
			ControlFontSize:     newInput(strconv.Itoa(s.FontSize), 3),
			ControlTextColor:    newInput(s.TextColor, 9),
			ControlGradientFrom: newInput(s.GradientFrom, 9),
			ControlGradientTo:   newInput(s.GradientTo, 9),
			ControlAddWord:      newInput("", 0),
		},
	}
	m.inputs[ControlAddWord].Placeholder = "word to style, enter to add"
	m.syncFocus()

	return m
}

func newInput(value string, limit int) *textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = limit
	in.SetValue(value)
	return &in
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Controls lists the focusable rows for the current settings. Gradient
// rows only exist while the gradient is on.
func (m Model) Controls() []Control {
	s := m.svc.Settings()

	controls := []Control{
		{Kind: ControlText},
		{Kind: ControlFontSize},
		{Kind: ControlFontFamily},
		{Kind: ControlFontWeight},
		{Kind: ControlTextColor},
		{Kind: ControlGradient},
	}
	if s.Gradient {
		controls = append(controls,
			Control{Kind: ControlDirection},
			Control{Kind: ControlGradientFrom},
			Control{Kind: ControlGradientTo},
		)
	}
	for _, flag := range headline.AllEffects {
		controls = append(controls, Control{Kind: ControlEffect, Effect: flag})
	}
	controls = append(controls, Control{Kind: ControlAddWord})
	for _, w := range s.StyledWords {
		controls = append(controls, Control{Kind: ControlWord, WordID: w.ID})
	}

	return controls
}

// Current returns the control under the cursor.
func (m Model) Current() Control {
	controls := m.Controls()
	if m.cursor < 0 || m.cursor >= len(controls) {
		return Control{Kind: ControlText}
	}
	return controls[m.cursor]
}

// Cursor returns the cursor position.
func (m Model) Cursor() int {
	return m.cursor
}

// Status returns the status line and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// Service returns the backing service.
func (m Model) Service() *headlineapp.Service {
	return m.svc
}

func (m *Model) moveCursor(delta int) {
	controls := m.Controls()
	if len(controls) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(controls)) % len(controls)
	m.syncFocus()
}

// clampCursor keeps the cursor valid after rows disappear.
func (m *Model) clampCursor() {
	if n := len(m.Controls()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.syncFocus()
}

func (m *Model) syncFocus() {
	current := m.Current().Kind
	for kind, in := range m.inputs {
		if kind == current {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}
