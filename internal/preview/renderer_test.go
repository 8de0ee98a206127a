package preview

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
	"github.com/alexisbeaulieu97/headliner/internal/paint"
)

func renderer(t *testing.T, width int, profile termenv.Profile) Renderer {
	t.Helper()
	lip := lipgloss.NewRenderer(io.Discard)
	lip.SetColorProfile(profile)
	return New(Options{Width: width, Renderer: lip})
}

func input(t *testing.T, s headline.HeadlineSettings) Input {
	t.Helper()
	d, err := paint.ForSettings(s)
	require.NoError(t, err)
	return Input{Settings: s, Paint: d, FontString: "'Roboto', sans-serif"}
}

func TestRenderPlainProfileKeepsText(t *testing.T) {
	t.Parallel()

	r := renderer(t, 0, termenv.Ascii)
	out := r.Render(input(t, headline.Defaults()))

	require.Equal(t, "Editable Headline", out)
}

func TestRenderBlockWordIsPadded(t *testing.T) {
	t.Parallel()

	ids := headline.NewSequentialIDs("w")
	s := headline.AddWord(headline.Defaults(), "editable", ids)
	s = headline.ToggleStyle(s, "w1", headline.StyleBlock)

	out := renderer(t, 0, termenv.Ascii).Render(input(t, s))

	require.Equal(t, " Editable  Headline", out)
}

func TestRenderWrapsAtWhitespaceOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "two lines", text: "Editable Headline", width: 10, want: "Editable\nHeadline"},
		{name: "hyphenated word stays whole", text: "well-known fact", width: 6, want: "well-known\nfact"},
		{name: "wide enough", text: "Editable Headline", width: 40, want: "Editable Headline"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := headline.Defaults().WithText(tt.text)
			out := renderer(t, tt.width, termenv.Ascii).Render(input(t, s))
			require.Equal(t, tt.want, out)
		})
	}
}

func TestRenderEmptyText(t *testing.T) {
	t.Parallel()

	s := headline.Defaults().WithText("")
	require.Empty(t, renderer(t, 0, termenv.Ascii).Render(input(t, s)))
}

func TestRenderAtHidesUnstartedGlyphs(t *testing.T) {
	t.Parallel()

	r := renderer(t, 0, termenv.Ascii)
	in := input(t, headline.Defaults())

	start := r.RenderAt(in, 0)
	require.Empty(t, strings.TrimSpace(start))
	require.Equal(t, lipgloss.Width("Editable Headline"), lipgloss.Width(start))

	require.Equal(t, r.Render(in), r.RenderAt(in, SettleTime(in.Settings)))
}

func TestRenderAtStaggersLetters(t *testing.T) {
	t.Parallel()

	s := headline.Defaults().WithText("ab cde")
	s, err := s.WithEffect(headline.EffectFadeIn, false)
	require.NoError(t, err)
	s, err = s.WithEffect(headline.EffectPerLetter, true)
	require.NoError(t, err)

	r := renderer(t, 0, termenv.Ascii)
	in := input(t, s)

	// "a" starts at 0, "b" at 0.05, "c" at 0.15, "d" at 0.2.
	require.Equal(t, "a     ", r.RenderAt(in, 0.04))
	require.Equal(t, "ab c  ", r.RenderAt(in, 0.2))
	require.Equal(t, "ab cde", r.RenderAt(in, 0.6))
}

func TestSettleTime(t *testing.T) {
	t.Parallel()

	perLetterOnly := headline.Defaults().WithText("ab cde")
	perLetterOnly, err := perLetterOnly.WithEffect(headline.EffectFadeIn, false)
	require.NoError(t, err)
	perLetterOnly, err = perLetterOnly.WithEffect(headline.EffectPerLetter, true)
	require.NoError(t, err)

	both, err := perLetterOnly.WithEffect(headline.EffectFadeIn, true)
	require.NoError(t, err)

	none, err := headline.Defaults().WithEffect(headline.EffectFadeIn, false)
	require.NoError(t, err)

	require.InDelta(t, 0.6, SettleTime(headline.Defaults()), 1e-9)
	require.InDelta(t, 0.55, SettleTime(perLetterOnly), 1e-9)
	require.InDelta(t, 0.6, SettleTime(both), 1e-9)
	require.Zero(t, SettleTime(none))
}

func TestRenderTrueColorEmitsEscapes(t *testing.T) {
	t.Parallel()

	out := renderer(t, 0, termenv.TrueColor).Render(input(t, headline.Defaults()))

	require.Contains(t, out, "\x1b[")
	require.NotEqual(t, "Editable Headline", out)
}

func TestPainterBlendsAcrossHeading(t *testing.T) {
	t.Parallel()

	d := paint.Descriptor{Mode: paint.ModeGradient, Direction: paint.Rightward, From: "#000000", To: "#ffffff"}
	p := newPainter(d, "", 3, 1)
	require.Equal(t, lipgloss.Color("#000000"), p.colorAt(0, 0))
	require.Equal(t, lipgloss.Color("#ffffff"), p.colorAt(2, 0))

	d.Direction = paint.Leftward
	p = newPainter(d, "", 3, 1)
	require.Equal(t, lipgloss.Color("#ffffff"), p.colorAt(0, 0))
	require.Equal(t, lipgloss.Color("#000000"), p.colorAt(2, 0))

	d.Direction = paint.Downward
	p = newPainter(d, "", 3, 2)
	require.Equal(t, lipgloss.Color("#000000"), p.colorAt(2, 0))
	require.Equal(t, lipgloss.Color("#ffffff"), p.colorAt(0, 1))
}

func TestPainterFallsBack(t *testing.T) {
	t.Parallel()

	solid := newPainter(paint.Descriptor{Mode: paint.ModeSolid, Color: "#123456"}, "", 5, 1)
	require.Equal(t, lipgloss.Color("#123456"), solid.colorAt(4, 0))

	bad := newPainter(paint.Descriptor{Mode: paint.ModeGradient, Direction: paint.Rightward, From: "indigo", To: "#ffffff"}, "", 5, 1)
	require.Equal(t, lipgloss.Color("indigo"), bad.colorAt(0, 0))
}

func TestPosition(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 0.5, position(0, 1), 1e-9)
	require.InDelta(t, 0.0, position(0, 5), 1e-9)
	require.InDelta(t, 1.0, position(4, 5), 1e-9)
	require.InDelta(t, 1.0, position(9, 5), 1e-9)
}

func TestMetaSummarizesSettings(t *testing.T) {
	t.Parallel()

	meta := renderer(t, 0, termenv.Ascii).Meta(input(t, headline.Defaults()))

	require.Contains(t, meta, "'Roboto', sans-serif")
	require.Contains(t, meta, "48px")
	require.Contains(t, meta, "Bold (700)")
	require.Contains(t, meta, "gradient rightward #4f46e5→#ec4899")
	require.Contains(t, meta, "effects: fadeIn")
}

func TestMetaUnresolvedFont(t *testing.T) {
	t.Parallel()

	in := input(t, headline.Defaults().WithFontFamily("Comic"))
	in.FontString = ""

	meta := renderer(t, 0, termenv.Ascii).Meta(in)
	require.Contains(t, meta, "Comic (unresolved)")
}
