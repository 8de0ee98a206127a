package components

import (
	"strings"

	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
)

// WordEntry is one styled word prepared for rendering.
type WordEntry struct {
	ID     string
	Text   string
	Badges string
}

// WordList renders the styled words in insertion order.
type WordList struct {
	entries []WordEntry
}

// NewWordList constructs a word list component.
func NewWordList(words []headline.StyledWord) WordList {
	entries := make([]WordEntry, 0, len(words))
	for _, w := range words {
		entries = append(entries, WordEntry{ID: w.ID, Text: w.Text, Badges: Badges(w)})
	}
	return WordList{entries: entries}
}

// Entries returns the ordered word entries.
func (l WordList) Entries() []WordEntry {
	clone := make([]WordEntry, len(l.entries))
	copy(clone, l.entries)
	return clone
}

// Badges renders the style flags of w as "h u b", upper-cased when set.
func Badges(w headline.StyledWord) string {
	badges := make([]string, 0, len(headline.StyleFields))
	for _, field := range headline.StyleFields {
		badge := string(field[0])
		if w.Flag(field) {
			badge = strings.ToUpper(badge)
		}
		badges = append(badges, badge)
	}
	return strings.Join(badges, " ")
}
