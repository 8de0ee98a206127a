package tui

import "github.com/charmbracelet/lipgloss"

// View renders the headline at the current clock.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render("headliner • preview"),
		headlineStyle.Render(m.renderer.RenderAt(m.input, m.clock)),
		m.renderer.Meta(m.input),
		m.timeline.View(m.clock),
	}

	hint := "press any key to exit"
	if m.settled {
		hint = "settled • " + hint
	}
	sections = append(sections, hintStyle.Render(hint))

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}
