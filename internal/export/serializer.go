// Package export serializes headline settings into the downloadable JSON artifact.
package export

import (
	"bytes"
	"encoding/json"

	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
	"github.com/alexisbeaulieu97/headliner/internal/fonts"
)

// DefaultFileName is the artifact name used when no destination is given.
const DefaultFileName = "headline-widget"

// Document is the exported shape of HeadlineSettings. FontFamily holds the
// resolved font string, not the symbolic key. Field order fixes key order.
type Document struct {
	Text              string          `json:"text"`
	FontSize          int             `json:"fontSize"`
	TextColor         string          `json:"textColor"`
	FontFamily        string          `json:"fontFamily"`
	FontWeight        int             `json:"fontWeight"`
	Gradient          bool            `json:"gradient"`
	GradientDirection string          `json:"gradientDirection"`
	GradientFrom      string          `json:"gradientFrom"`
	GradientTo        string          `json:"gradientTo"`
	Effects           EffectsDoc      `json:"effects"`
	StyledWords       []StyledWordDoc `json:"styledWords"`
}

// EffectsDoc is the exported shape of headline.Effects.
type EffectsDoc struct {
	FadeIn    bool `json:"fadeIn"`
	HoverGlow bool `json:"hoverGlow"`
	PerLetter bool `json:"perLetter"`
	Shadow    bool `json:"shadow"`
}

// StyledWordDoc is the exported shape of headline.StyledWord.
type StyledWordDoc struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Highlight bool   `json:"highlight"`
	Underline bool   `json:"underline"`
	Block     bool   `json:"block"`
}

// NewDocument resolves the font family of s against table and builds the
// exported document. It fails with headline.ErrUnknownFontFamily when the key
// does not resolve.
func NewDocument(s headline.HeadlineSettings, table fonts.Table) (Document, error) {
	fontFamily, ok := table.Lookup(s.FontFamily)
	if !ok {
		return Document{}, headline.NewUnknownFontFamilyError(s.FontFamily)
	}

	words := make([]StyledWordDoc, 0, len(s.StyledWords))
	for _, w := range s.StyledWords {
		words = append(words, StyledWordDoc{
			ID:        w.ID,
			Text:      w.Text,
			Highlight: w.Highlight,
			Underline: w.Underline,
			Block:     w.Block,
		})
	}

	return Document{
		Text:              s.Text,
		FontSize:          s.FontSize,
		TextColor:         s.TextColor,
		FontFamily:        fontFamily,
		FontWeight:        s.FontWeight,
		Gradient:          s.Gradient,
		GradientDirection: string(s.GradientDirection),
		GradientFrom:      s.GradientFrom,
		GradientTo:        s.GradientTo,
		Effects: EffectsDoc{
			FadeIn:    s.Effects.FadeIn,
			HoverGlow: s.Effects.HoverGlow,
			PerLetter: s.Effects.PerLetter,
			Shadow:    s.Effects.Shadow,
		},
		StyledWords: words,
	}, nil
}

// Marshal produces the UTF-8 JSON artifact for s, indented by two spaces.
// Output is byte-identical for identical inputs.
func Marshal(s headline.HeadlineSettings, table fonts.Table) ([]byte, error) {
	doc, err := NewDocument(s, table)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
