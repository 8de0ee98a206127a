package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Timeline renders how far an animation has played.
type Timeline struct {
	bar   progress.Model
	total float64
}

// NewTimeline creates a timeline for an animation lasting total seconds.
func NewTimeline(total float64) Timeline {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30
	return Timeline{bar: bar, total: total}
}

// View renders the timeline at clock seconds.
func (t Timeline) View(clock float64) string {
	ratio := 1.0
	if t.total > 0 {
		ratio = math.Max(0, math.Min(1.0, clock/t.total))
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%.2fs/%.2fs", math.Min(clock, t.total), t.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", t.bar.ViewAs(ratio))
}
