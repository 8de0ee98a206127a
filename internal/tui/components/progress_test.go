package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTimeline(t *testing.T) {
	t.Parallel()

	t.Run("creates timeline with specified total", func(t *testing.T) {
		t.Parallel()
		tl := NewTimeline(0.6)
		require.NotNil(t, tl.bar)
		require.InDelta(t, 0.6, tl.total, 1e-9)
	})

	t.Run("creates timeline with zero total", func(t *testing.T) {
		t.Parallel()
		tl := NewTimeline(0)
		require.Zero(t, tl.total)
	})
}

func TestTimelineView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total float64
		clock float64
		want  string
	}{
		{name: "start", total: 0.6, clock: 0, want: "0.00s/0.60s"},
		{name: "midway", total: 0.6, clock: 0.3, want: "0.30s/0.60s"},
		{name: "clock past the end is capped", total: 0.6, clock: 2, want: "0.60s/0.60s"},
		{name: "no animation", total: 0, clock: 0, want: "0.00s/0.00s"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			view := NewTimeline(tt.total).View(tt.clock)
			require.Contains(t, view, tt.want)
			require.True(t, len(strings.TrimSpace(view)) > len(tt.want),
				"expected view to contain progress bar in addition to label")
		})
	}
}
