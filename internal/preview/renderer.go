// Package preview renders a composed headline for the terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"

	"github.com/alexisbeaulieu97/headliner/internal/compose"
	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
	"github.com/alexisbeaulieu97/headliner/internal/paint"
)

const (
	highlightBackground = "#fef08a"
	blockBackground     = "#e5e7eb"
	overlayForeground   = "#111827"
)

// Input is what the renderer needs from one settings revision.
type Input struct {
	Settings   headline.HeadlineSettings
	Paint      paint.Descriptor
	FontString string
}

// Options configures a Renderer.
type Options struct {
	// Width wraps the headline at this many cells; 0 disables wrapping.
	Width int
	// Renderer overrides the lipgloss renderer, mainly to pin a color profile.
	Renderer *lipgloss.Renderer
}

// Renderer draws headlines with lipgloss.
type Renderer struct {
	width int
	lip   *lipgloss.Renderer
}

// New constructs a Renderer.
func New(opts Options) Renderer {
	lip := opts.Renderer
	if lip == nil {
		lip = lipgloss.DefaultRenderer()
	}
	return Renderer{width: opts.Width, lip: lip}
}

// Render draws the headline in its settled state.
func (r Renderer) Render(in Input) string {
	return r.render(in, nil)
}

// RenderAt draws the headline as it looks clock seconds into its entrance
// and per-letter animations.
func (r Renderer) RenderAt(in Input, clock float64) string {
	return r.render(in, &clock)
}

// SettleTime returns when every animation of s has finished, in seconds.
func SettleTime(s headline.HeadlineSettings) float64 {
	var settle float64
	if entrance := compose.Entrance(s.Effects); entrance != nil {
		settle = entrance.End()
	}
	if last := compose.LastSettle(compose.ComposeSettings(s)); last > settle {
		settle = last
	}
	return settle
}

// Meta summarizes the non-visual settings on one line.
func (r Renderer) Meta(in Input) string {
	s := in.Settings
	parts := []string{
		valueOr(in.FontString, fmt.Sprintf("%s (unresolved)", s.FontFamily)),
		fmt.Sprintf("%dpx", s.FontSize),
		fmt.Sprintf("%s (%d)", headline.FontWeightLabel(s.FontWeight), s.FontWeight),
	}

	switch in.Paint.Mode {
	case paint.ModeGradient:
		parts = append(parts, fmt.Sprintf("gradient %s %s→%s", in.Paint.Direction, in.Paint.From, in.Paint.To))
	case paint.ModeSolid:
		parts = append(parts, fmt.Sprintf("solid %s", in.Paint.Color))
	}

	if active := s.Effects.Active(); len(active) > 0 {
		names := make([]string, 0, len(active))
		for _, flag := range active {
			names = append(names, string(flag))
		}
		parts = append(parts, "effects: "+strings.Join(names, ", "))
	}

	return r.lip.NewStyle().Faint(true).Render(strings.Join(parts, " · "))
}

type cell struct {
	char    string
	visible float64
}

func (r Renderer) render(in Input, clock *float64) string {
	s := in.Settings
	if s.Text == "" {
		return ""
	}

	lines := strings.Split(wrap(s.Text, r.width), "\n")

	letters := letterTimings(s)
	entrance := compose.Entrance(s.Effects)
	painter := newPainter(in.Paint, s.TextColor, maxLineWidth(lines), len(lines))

	base := r.lip.NewStyle()
	if s.FontWeight >= 700 {
		base = base.Bold(true)
	}

	entranceProgress := 1.0
	if clock != nil && entrance != nil {
		entranceProgress = entrance.At(*clock).Opacity
	}

	out := make([]string, 0, len(lines))
	wordOffset := 0
	for lineIndex, line := range lines {
		var b strings.Builder
		column := 0
		segments := compose.Compose(line, s.StyledWords, compose.Options{})
		for _, segment := range segments {
			if !segment.IsWord() {
				b.WriteString(r.fade(base, entranceProgress).Render(segment.Text))
				column += lipgloss.Width(segment.Text)
				continue
			}

			wordStyle := applyWordStyle(base, segment.Style)
			if segment.Style.Block {
				b.WriteString(r.fade(wordStyle, entranceProgress).Render(" "))
			}

			charIndex := 0
			for _, ch := range segment.Text {
				glyph := string(ch)
				progress := entranceProgress
				if clock != nil {
					if timing, ok := letters.at(wordOffset+segment.WordIndex, charIndex); ok {
						progress = min(progress, timing.At(*clock).Opacity)
					}
				}

				style := wordStyle.Foreground(painter.colorAt(column, lineIndex))
				if segment.Style.Highlight || segment.Style.Block {
					style = style.Foreground(lipgloss.Color(overlayForeground))
				}

				b.WriteString(r.drawGlyph(style, cell{char: glyph, visible: progress}))
				column += lipgloss.Width(glyph)
				charIndex++
			}

			if segment.Style.Block {
				b.WriteString(r.fade(wordStyle, entranceProgress).Render(" "))
			}
		}
		wordOffset += compose.WordCount(segments)
		out = append(out, b.String())
	}

	return strings.Join(out, "\n")
}

func (r Renderer) drawGlyph(style lipgloss.Style, c cell) string {
	switch {
	case c.visible <= 0:
		return style.Render(strings.Repeat(" ", lipgloss.Width(c.char)))
	case c.visible < 1:
		return style.Faint(true).Render(c.char)
	default:
		return style.Render(c.char)
	}
}

func (r Renderer) fade(style lipgloss.Style, progress float64) lipgloss.Style {
	if progress > 0 && progress < 1 {
		return style.Faint(true)
	}
	return style
}

func applyWordStyle(base lipgloss.Style, style compose.Style) lipgloss.Style {
	out := base
	if style.Highlight {
		out = out.Background(lipgloss.Color(highlightBackground))
	}
	if style.Block {
		out = out.Background(lipgloss.Color(blockBackground))
	}
	if style.Underline {
		out = out.Underline(true)
	}
	return out
}

// letterIndex maps word index and character index to the per-letter descriptor.
type letterIndex map[int][]compose.Animation

func letterTimings(s headline.HeadlineSettings) letterIndex {
	if !s.Effects.PerLetter {
		return nil
	}
	index := letterIndex{}
	for _, segment := range compose.ComposeSettings(s) {
		if !segment.IsWord() {
			continue
		}
		animations := make([]compose.Animation, 0, len(segment.Letters))
		for _, letter := range segment.Letters {
			animations = append(animations, letter.Animation)
		}
		index[segment.WordIndex] = animations
	}
	return index
}

func (l letterIndex) at(word, char int) (compose.Animation, bool) {
	animations, ok := l[word]
	if !ok || char >= len(animations) {
		return compose.Animation{}, false
	}
	return animations[char], true
}

// wrap breaks text at whitespace only so that every word keeps its index.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	w := wordwrap.NewWriter(width)
	w.Breakpoints = nil
	_, _ = w.Write([]byte(text))
	_ = w.Close()
	return w.String()
}

func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > widest {
			widest = w
		}
	}
	return widest
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// painter yields the foreground color of a cell.
type painter struct {
	solid    lipgloss.TerminalColor
	from, to colorful.Color
	gradient bool
	heading  paint.Heading
	columns  int
	lines    int
}

func newPainter(d paint.Descriptor, fallback string, columns, lines int) painter {
	if d.Mode != paint.ModeGradient {
		color := d.Color
		if color == "" {
			color = fallback
		}
		return painter{solid: lipgloss.Color(color)}
	}

	from, errFrom := colorful.Hex(d.From)
	to, errTo := colorful.Hex(d.To)
	if errFrom != nil || errTo != nil {
		return painter{solid: lipgloss.Color(d.From)}
	}

	return painter{
		from:     from,
		to:       to,
		gradient: true,
		heading:  d.Direction,
		columns:  columns,
		lines:    lines,
	}
}

func (p painter) colorAt(column, line int) lipgloss.TerminalColor {
	if !p.gradient {
		return p.solid
	}

	var t float64
	if p.heading.Horizontal() {
		t = position(column, p.columns)
	} else {
		t = position(line, p.lines)
	}
	if p.heading.Reversed() {
		t = 1 - t
	}

	return lipgloss.Color(p.from.BlendLab(p.to, t).Clamped().Hex())
}

// position maps index within count cells onto [0,1]. A single cell sits at the midpoint.
func position(index, count int) float64 {
	if count <= 1 {
		return 0.5
	}
	t := float64(index) / float64(count-1)
	return max(0, min(1, t))
}
