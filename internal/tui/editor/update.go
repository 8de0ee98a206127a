package editor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/headliner/internal/config"
	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ExportedMsg:
		m.lastExport = msg.Path
		m.setStatus(fmt.Sprintf("Exported to %s", msg.Path), false)
		return m, nil

	case ExportErrorMsg:
		m.setStatus(fmt.Sprintf("Export failed: %s", msg.Error), true)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		return m, exportCmd(m.svc, "")
	case "up", "shift+tab":
		m.moveCursor(-1)
		return m, nil
	case "down", "tab":
		m.moveCursor(1)
		return m, nil
	}

	current := m.Current()
	if in, ok := m.inputs[current.Kind]; ok {
		if current.Kind == ControlAddWord && msg.Type == tea.KeyEnter {
			return m.addWord()
		}

		updated, cmd := in.Update(msg)
		*in = updated
		m.applyInput(current.Kind, in.Value())
		return m, cmd
	}

	return m.handleControlKey(current, msg)
}

// applyInput pushes a text field into the settings as it is typed. Values
// that do not parse keep the previous setting.
func (m *Model) applyInput(kind ControlKind, value string) {
	switch kind {
	case ControlText:
		m.svc.SetText(value)
	case ControlFontSize:
		_ = m.svc.SetFontSizeInput(value)
	case ControlTextColor:
		if config.ValidColor(value) {
			m.svc.SetTextColor(value)
		}
	case ControlGradientFrom:
		if config.ValidColor(value) {
			m.svc.SetGradientFrom(value)
		}
	case ControlGradientTo:
		if config.ValidColor(value) {
			m.svc.SetGradientTo(value)
		}
	}
}

func (m Model) addWord() (tea.Model, tea.Cmd) {
	in := m.inputs[ControlAddWord]
	raw := in.Value()
	if strings.TrimSpace(raw) == "" {
		return m, nil
	}

	before := len(m.svc.Settings().StyledWords)
	m.svc.AddWord(raw)
	in.SetValue("")

	if len(m.svc.Settings().StyledWords) == before {
		m.setStatus(fmt.Sprintf("%q is already styled", headline.NormalizeWord(raw)), false)
	} else {
		m.setStatus(fmt.Sprintf("Added %q", headline.NormalizeWord(raw)), false)
	}
	return m, nil
}

func (m Model) handleControlKey(current Control, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "e":
		return m, exportCmd(m.svc, "")
	}

	forward := key == "right" || key == "enter" || key == " " || key == "l"
	backward := key == "left" || key == "h"
	s := m.svc.Settings()

	switch current.Kind {
	case ControlFontFamily:
		if forward || backward {
			next := cycle(m.svc.Fonts().Keys(), s.FontFamily, forward)
			if err := m.svc.SetFontFamily(next); err != nil {
				m.setStatus(err.Error(), true)
			}
		}

	case ControlFontWeight:
		if forward || backward {
			next := cycle(headline.FontWeights, s.FontWeight, forward)
			if err := m.svc.SetFontWeight(next); err != nil {
				m.setStatus(err.Error(), true)
			}
		}

	case ControlGradient:
		if key == "enter" || key == " " {
			m.svc.SetGradient(!s.Gradient)
			m.clampCursor()
		}

	case ControlDirection:
		if forward || backward {
			next := cycle(headline.Directions, s.GradientDirection, forward)
			if err := m.svc.SetGradientDirection(next); err != nil {
				m.setStatus(err.Error(), true)
			}
		}

	case ControlEffect:
		if key == "enter" || key == " " {
			if err := m.svc.ToggleEffect(current.Effect); err != nil {
				m.setStatus(err.Error(), true)
			}
		}

	case ControlWord:
		return m.handleWordKey(current.WordID, key)
	}

	return m, nil
}

func (m Model) handleWordKey(id, key string) (tea.Model, tea.Cmd) {
	switch key {
	case "h":
		m.svc.ToggleWordStyle(id, headline.StyleHighlight)
	case "u":
		m.svc.ToggleWordStyle(id, headline.StyleUnderline)
	case "b":
		m.svc.ToggleWordStyle(id, headline.StyleBlock)
	case "d", "delete", "backspace":
		if w, ok := headline.FindWord(m.svc.Settings(), id); ok {
			m.svc.RemoveWord(id)
			m.setStatus(fmt.Sprintf("Removed %q", w.Text), false)
			m.clampCursor()
		}
	}
	return m, nil
}

// cycle returns the neighbour of current in values, wrapping around. An
// unknown current yields the first value.
func cycle[T comparable](values []T, current T, forward bool) T {
	if len(values) == 0 {
		return current
	}
	for i, v := range values {
		if v != current {
			continue
		}
		if forward {
			return values[(i+1)%len(values)]
		}
		return values[(i-1+len(values))%len(values)]
	}
	return values[0]
}
