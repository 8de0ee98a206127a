package headline

import "strings"

// StyleField names one of the per-word style toggles.
type StyleField string

const (
	StyleHighlight StyleField = "highlight"
	StyleUnderline StyleField = "underline"
	StyleBlock     StyleField = "block"
)

// StyleFields lists the toggles in display order.
var StyleFields = []StyleField{StyleHighlight, StyleUnderline, StyleBlock}

// ParseStyleField accepts a style field name, case-insensitively.
func ParseStyleField(value string) (StyleField, error) {
	field := StyleField(strings.ToLower(strings.TrimSpace(value)))
	switch field {
	case StyleHighlight, StyleUnderline, StyleBlock:
		return field, nil
	default:
		return "", newStyleFieldError(value)
	}
}

// StyledWord is a per-token style override layered on top of the headline style.
type StyledWord struct {
	ID        string
	Text      string
	Highlight bool
	Underline bool
	Block     bool
}

// Flag reports the state of a single style toggle.
func (w StyledWord) Flag(field StyleField) bool {
	switch field {
	case StyleHighlight:
		return w.Highlight
	case StyleUnderline:
		return w.Underline
	case StyleBlock:
		return w.Block
	default:
		return false
	}
}

// Toggled returns a copy of w with field flipped. Unknown fields leave w as is.
func (w StyledWord) Toggled(field StyleField) StyledWord {
	switch field {
	case StyleHighlight:
		w.Highlight = !w.Highlight
	case StyleUnderline:
		w.Underline = !w.Underline
	case StyleBlock:
		w.Block = !w.Block
	}
	return w
}

// Styled reports whether any toggle is on.
func (w StyledWord) Styled() bool {
	return w.Highlight || w.Underline || w.Block
}
