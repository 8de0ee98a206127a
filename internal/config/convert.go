package config

import (
	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
	"github.com/alexisbeaulieu97/headliner/internal/fonts"
)

// FontTable returns the built-in families overlaid with the configured ones.
func (c *Config) FontTable() fonts.Table {
	table := fonts.Default()
	if c == nil || len(c.Fonts) == 0 {
		return table
	}
	return table.Merge(fonts.Table(c.Fonts))
}

// Settings converts the headline section into domain settings, issuing word
// ids from ids.
func (c *Config) Settings(ids headline.IDGenerator) headline.HeadlineSettings {
	h := c.Headline
	s := headline.HeadlineSettings{
		Text:              h.Text,
		FontSize:          h.FontSize,
		TextColor:         h.TextColor,
		FontFamily:        h.FontFamily,
		FontWeight:        h.FontWeight,
		Gradient:          h.Gradient,
		GradientDirection: headline.Direction(h.GradientDirection),
		GradientFrom:      h.GradientFrom,
		GradientTo:        h.GradientTo,
		Effects: headline.Effects{
			FadeIn:    h.Effects.FadeIn,
			HoverGlow: h.Effects.HoverGlow,
			PerLetter: h.Effects.PerLetter,
			Shadow:    h.Effects.Shadow,
		},
	}

	for _, word := range h.Words {
		s = headline.AddWord(s, word.Text, ids)
		added, ok := headline.FindWordByText(s, word.Text)
		if !ok {
			continue
		}
		s = headline.SetStyle(s, added.ID, headline.StyleHighlight, word.Highlight)
		s = headline.SetStyle(s, added.ID, headline.StyleUnderline, word.Underline)
		s = headline.SetStyle(s, added.ID, headline.StyleBlock, word.Block)
	}

	return s
}
