package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and advances the clock.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.settled || m.quitting {
			return m, nil
		}
		m.ticks++
		m.clock = float64(m.ticks) * m.interval.Seconds()
		if m.clock >= m.settle {
			m.clock = m.settle
			m.settled = true
			return m, nil
		}
		return m, tick(m.interval)
	case ReplayMsg:
		m.ticks = 0
		m.clock = 0
		m.settled = m.settle == 0
		if m.settled {
			return m, nil
		}
		return m, tick(m.interval)
	case tea.WindowSizeMsg:
		if m.renderer.Width() == 0 || msg.Width < m.renderer.Width() {
			m.renderer = m.renderer.WithWidth(msg.Width)
		}
		return m, nil
	case tea.KeyMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}
