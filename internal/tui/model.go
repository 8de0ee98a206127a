// Package tui hosts the animation player for a composed headline.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/headliner/internal/preview"
	"github.com/alexisbeaulieu97/headliner/internal/tui/components"
)

// TickInterval is how often the player advances its clock.
const TickInterval = 50 * time.Millisecond

// TickMsg advances the animation clock by one interval.
type TickMsg struct {
	Time time.Time
}

// ReplayMsg restarts the animation from zero.
type ReplayMsg struct{}

// Model contains the Bubbletea state for the headline animation player.
type Model struct {
	input    preview.Input
	renderer preview.Renderer
	timeline components.Timeline
	interval time.Duration
	ticks    int
	clock    float64
	settle   float64
	settled  bool
	quitting bool
}

// NewModel constructs a player for in.
func NewModel(in preview.Input, renderer preview.Renderer) Model {
	settle := preview.SettleTime(in.Settings)
	return Model{
		input:    in,
		renderer: renderer,
		timeline: components.NewTimeline(settle),
		interval: TickInterval,
		settle:   settle,
		settled:  settle == 0,
	}
}

// Init starts ticking unless there is nothing to animate.
func (m Model) Init() tea.Cmd {
	if m.settled {
		return nil
	}
	return tick(m.interval)
}

// Clock returns the elapsed animation time in seconds.
func (m Model) Clock() float64 {
	return m.clock
}

// IsSettled reports whether every descriptor has finished.
func (m Model) IsSettled() bool {
	return m.settled
}

// IsQuitting reports whether the user asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return TickMsg{Time: t} })
}
