package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
	"github.com/alexisbeaulieu97/headliner/internal/preview"
	"github.com/alexisbeaulieu97/headliner/internal/tui/components"
)

// View renders the current model state
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content strings.Builder

	content.WriteString(titleStyle.Render("headliner • editor"))
	content.WriteString("\n")
	content.WriteString(m.renderPreview())
	content.WriteString("\n")
	content.WriteString(m.renderControls())
	content.WriteString("\n")
	content.WriteString(m.renderFooter())

	return content.String()
}

func (m Model) renderPreview() string {
	frame := m.svc.Frame()
	in := preview.FromFrame(frame)

	renderer := m.renderer
	if m.width > 8 {
		renderer = renderer.WithWidth(m.width - 8)
	}

	body := renderer.Render(in)
	if frame.PaintErr != nil {
		body = errorStyle.Render(frame.PaintErr.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		previewStyle.Render(body),
		renderer.Meta(in),
	)
}

func (m Model) renderControls() string {
	s := m.svc.Settings()
	controls := m.Controls()

	var lines []string
	var words []string
	wordEntries := components.NewWordList(s.StyledWords).Entries()
	wordIndex := 0

	for i, c := range controls {
		selected := i == m.cursor
		label, value := m.describe(c, s)

		if c.Kind == ControlWord {
			if wordIndex < len(wordEntries) {
				entry := wordEntries[wordIndex]
				value = fmt.Sprintf("%-16s %s", entry.Text, entry.Badges)
			}
			wordIndex++
			words = append(words, renderRow(label, value, selected))
			continue
		}
		if c.Kind == ControlEffect && c.Effect == headline.AllEffects[0] {
			lines = append(lines, sectionStyle.Render("Effects"))
		}
		if c.Kind == ControlAddWord {
			lines = append(lines, sectionStyle.Render("Word styles"))
		}
		lines = append(lines, renderRow(label, value, selected))
	}

	lines = append(lines, words...)
	if len(words) == 0 {
		lines = append(lines, mutedStyle.Render("  no styled words yet"))
	}

	return strings.Join(lines, "\n")
}

func renderRow(label, value string, selected bool) string {
	marker := "  "
	style := labelStyle
	if selected {
		marker = "› "
		style = selectedLabelStyle
	}
	return marker + style.Render(label) + value
}

func (m Model) describe(c Control, s headline.HeadlineSettings) (string, string) {
	switch c.Kind {
	case ControlText:
		return "Text", m.inputs[ControlText].View()
	case ControlFontSize:
		return "Font size", m.inputs[ControlFontSize].View() + mutedStyle.Render(" px")
	case ControlFontFamily:
		font, _ := m.svc.Fonts().Lookup(s.FontFamily)
		return "Font family", fmt.Sprintf("‹ %s › %s", s.FontFamily, mutedStyle.Render(font))
	case ControlFontWeight:
		return "Font weight", fmt.Sprintf("‹ %s (%d) ›", headline.FontWeightLabel(s.FontWeight), s.FontWeight)
	case ControlTextColor:
		return "Text color", m.inputs[ControlTextColor].View() + " " + swatch(s.TextColor)
	case ControlGradient:
		return "Gradient", checkbox(s.Gradient)
	case ControlDirection:
		return "Direction", fmt.Sprintf("‹ %s ›", s.GradientDirection)
	case ControlGradientFrom:
		return "From", m.inputs[ControlGradientFrom].View() + " " + swatch(s.GradientFrom)
	case ControlGradientTo:
		return "To", m.inputs[ControlGradientTo].View() + " " + swatch(s.GradientTo)
	case ControlEffect:
		return string(c.Effect), checkbox(s.Effects.Enabled(c.Effect))
	case ControlAddWord:
		return "Add word", m.inputs[ControlAddWord].View()
	case ControlWord:
		return "", ""
	default:
		return "", ""
	}
}

func (m Model) renderFooter() string {
	frame := m.svc.Frame()
	summary := components.NewSummary(components.SummaryData{
		Revision:   frame.Revision,
		Words:      frame.Settings.StyledWords,
		Effects:    frame.Settings.Effects.Active(),
		LastExport: m.lastExport,
	}).View()

	lines := []string{mutedStyle.Render(summary)}
	if m.status != "" {
		if m.statusErr {
			lines = append(lines, errorStyle.Render(m.status))
		} else {
			lines = append(lines, successStyle.Render(m.status))
		}
	}

	help := "↑/↓ move • ←/→ change • space toggle • h/u/b style word • d remove word • e/ctrl+s export • esc quit"
	lines = append(lines, helpStyle.Render(help))

	return strings.Join(lines, "\n")
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func swatch(color string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("  ")
}
