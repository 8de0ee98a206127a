package editor

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	headlineapp "github.com/alexisbeaulieu97/headliner/internal/app/headline"
	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
	"github.com/alexisbeaulieu97/headliner/internal/fonts"
	"github.com/alexisbeaulieu97/headliner/internal/preview"
)

func newTestModel(t *testing.T, initial headline.HeadlineSettings) Model {
	t.Helper()

	svc := headlineapp.NewService(headlineapp.Options{
		Initial:    initial,
		Fonts:      fonts.Default(),
		IDs:        headline.NewSequentialIDs("w"),
		ExportPath: filepath.Join(t.TempDir(), "out", "headline-widget"),
	})

	lip := lipgloss.NewRenderer(io.Discard)
	lip.SetColorProfile(termenv.Ascii)

	return NewModel(svc, preview.New(preview.Options{Renderer: lip}))
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		next, ok := updated.(Model)
		require.True(t, ok)
		m = next
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	down      = tea.KeyMsg{Type: tea.KeyDown}
	up        = tea.KeyMsg{Type: tea.KeyUp}
	right     = tea.KeyMsg{Type: tea.KeyRight}
	left      = tea.KeyMsg{Type: tea.KeyLeft}
	space     = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
)

func moveTo(t *testing.T, m Model, index int) Model {
	t.Helper()
	for m.Cursor() != index {
		m = press(t, m, down)
	}
	return m
}

func TestControlsFollowGradient(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, headline.Defaults())
	controls := m.Controls()
	require.Len(t, controls, 14)
	assert.Equal(t, ControlDirection, controls[6].Kind)
	assert.Equal(t, ControlAddWord, controls[13].Kind)

	m = moveTo(t, m, 5)
	require.Equal(t, ControlGradient, m.Current().Kind)
	m = press(t, m, space)

	require.False(t, m.Service().Settings().Gradient)
	controls = m.Controls()
	require.Len(t, controls, 11)
	for _, c := range controls {
		assert.NotEqual(t, ControlDirection, c.Kind)
		assert.NotEqual(t, ControlGradientFrom, c.Kind)
	}
	assert.NotContains(t, m.View(), "Direction")
}

func TestTypingUpdatesText(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, headline.Defaults())
	m = press(t, m, runes("!"))

	require.Equal(t, "Editable Headline!", m.Service().Settings().Text)
	require.Contains(t, m.View(), "Editable Headline!")
}

func TestFontSizeKeepsPreviousOnRejectedInput(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, headline.Defaults())
	m = moveTo(t, m, 1)
	require.Equal(t, ControlFontSize, m.Current().Kind)

	m = press(t, m, backspace)
	require.Equal(t, 48, m.Service().Settings().FontSize, "4 is below the minimum")

	m = press(t, m, runes("0"))
	require.Equal(t, 40, m.Service().Settings().FontSize)

	m = press(t, m, runes("0"))
	require.Equal(t, 40, m.Service().Settings().FontSize, "400 is above the maximum")
}

func TestColorInputIgnoresPartialValues(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, headline.Defaults())
	m = moveTo(t, m, 4)
	require.Equal(t, ControlTextColor, m.Current().Kind)

	m = press(t, m, backspace)
	require.Equal(t, "#000000", m.Service().Settings().TextColor)

	m = press(t, m, runes("1"))
	require.Equal(t, "#000001", m.Service().Settings().TextColor)
}

func TestCyclingControls(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, headline.Defaults())

	m = moveTo(t, m, 2)
	m = press(t, m, right)
	require.Equal(t, "Inter", m.Service().Settings().FontFamily)
	m = press(t, m, left, left)
	require.Equal(t, "Poppins", m.Service().Settings().FontFamily)

	m = moveTo(t, m, 3)
	m = press(t, m, right)
	require.Equal(t, 900, m.Service().Settings().FontWeight)
	m = press(t, m, right)
	require.Equal(t, 400, m.Service().Settings().FontWeight)

	m = moveTo(t, m, 6)
	m = press(t, m, right)
	require.Equal(t, headline.DirectionLeft, m.Service().Settings().GradientDirection)
	m = press(t, m, left, left)
	require.Equal(t, headline.DirectionBottom, m.Service().Settings().GradientDirection)
}

func TestToggleEffect(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, headline.Defaults())
	m = moveTo(t, m, 11)
	require.Equal(t, headline.EffectPerLetter, m.Current().Effect)

	m = press(t, m, enter)
	require.True(t, m.Service().Settings().Effects.PerLetter)
	m = press(t, m, enter)
	require.False(t, m.Service().Settings().Effects.PerLetter)
}

func TestWordLifecycle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, headline.Defaults())
	m = press(t, m, up)
	require.Equal(t, ControlAddWord, m.Current().Kind)

	m = press(t, m, runes("Headline"), enter)
	words := m.Service().Settings().StyledWords
	require.Len(t, words, 1)
	require.Equal(t, "headline", words[0].Text)
	status, isErr := m.Status()
	require.Contains(t, status, `Added "headline"`)
	require.False(t, isErr)

	m = press(t, m, runes("HEADLINE"), enter)
	require.Len(t, m.Service().Settings().StyledWords, 1)
	status, _ = m.Status()
	require.Contains(t, status, "already styled")

	m = press(t, m, down)
	require.Equal(t, ControlWord, m.Current().Kind)
	require.Equal(t, "w1", m.Current().WordID)

	m = press(t, m, runes("h"), runes("b"))
	w := m.Service().Settings().StyledWords[0]
	require.True(t, w.Highlight)
	require.True(t, w.Block)
	require.Contains(t, m.View(), "H u B")

	m = press(t, m, runes("d"))
	require.Empty(t, m.Service().Settings().StyledWords)
	require.Equal(t, ControlAddWord, m.Current().Kind)
}

func TestExportWritesArtifact(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, headline.Defaults())
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	msg := cmd()
	exported, ok := msg.(ExportedMsg)
	require.True(t, ok)

	_, err := os.Stat(exported.Path)
	require.NoError(t, err)

	updated, _ = updated.(Model).Update(msg)
	m = updated.(Model)
	status, isErr := m.Status()
	require.False(t, isErr)
	require.Contains(t, status, exported.Path)
	require.Contains(t, m.View(), "exported to")
}

func TestExportFailureReportsStatus(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, headline.Defaults().WithFontFamily("Comic"))
	m = moveTo(t, m, 5)

	_, cmd := m.Update(runes("e"))
	require.NotNil(t, cmd)

	msg := cmd()
	failed, ok := msg.(ExportErrorMsg)
	require.True(t, ok)
	require.ErrorIs(t, failed.Error, headline.ErrUnknownFontFamily)

	updated, _ := m.Update(msg)
	status, isErr := updated.(Model).Status()
	require.True(t, isErr)
	require.Contains(t, status, "Export failed")
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, headline.Defaults())
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.Empty(t, updated.(Model).View())

	m = moveTo(t, m, 5)
	_, cmd = m.Update(runes("q"))
	require.NotNil(t, cmd)
}

func TestViewListsControls(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, headline.Defaults())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	view := updated.(Model).View()

	for _, want := range []string{"headliner • editor", "Editable Headline", "Font family", "Roboto", "Bold (700)", "Direction", "fadeIn", "no styled words yet"} {
		assert.Contains(t, view, want)
	}
}

func TestCycle(t *testing.T) {
	t.Parallel()

	values := []string{"a", "b", "c"}
	require.Equal(t, "b", cycle(values, "a", true))
	require.Equal(t, "a", cycle(values, "c", true))
	require.Equal(t, "c", cycle(values, "a", false))
	require.Equal(t, "a", cycle(values, "zzz", true))
	require.Equal(t, "x", cycle(nil, "x", true))
}
