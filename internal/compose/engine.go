// Package compose turns headline text plus word overrides into ordered render
// segments with resolved style flags and optional per-letter timing.
package compose

import (
	"strings"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
)

// Kind distinguishes word segments from whitespace segments.
type Kind string

const (
	KindWord       Kind = "word"
	KindWhitespace Kind = "whitespace"
)

// Style carries the override flags resolved for a word segment.
type Style struct {
	Highlight bool `json:"highlight"`
	Underline bool `json:"underline"`
	Block     bool `json:"block"`
}

// Any reports whether any flag is set.
func (s Style) Any() bool {
	return s.Highlight || s.Underline || s.Block
}

// Letter is a single character of a word when per-letter animation is on.
type Letter struct {
	Char      string    `json:"char"`
	Index     int       `json:"index"`
	Animation Animation `json:"transition"`
}

// Segment is a contiguous run of headline text.
type Segment struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
	// WordIndex counts word segments only, starting at 0. It is -1 for whitespace.
	WordIndex int `json:"wordIndex"`
	// OverrideID is the id of the matching styled word, empty when none matched.
	OverrideID string   `json:"overrideId,omitempty"`
	Style      Style    `json:"style"`
	Letters    []Letter `json:"letters,omitempty"`
}

// IsWord reports whether the segment is a word.
func (s Segment) IsWord() bool {
	return s.Kind == KindWord
}

// Options tunes composition.
type Options struct {
	PerLetter bool
}

// Compose builds the render segments for text. Words are matched against
// overrides by exact normalized text; embedded punctuation is part of the
// token. When opts.PerLetter is set every word is broken into letters with
// staggered animation descriptors.
func Compose(text string, words []headline.StyledWord, opts Options) []Segment {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	overrides := make(map[string]headline.StyledWord, len(words))
	for _, w := range words {
		if _, exists := overrides[w.Text]; !exists {
			overrides[w.Text] = w
		}
	}

	segments := make([]Segment, 0, len(tokens))
	wordIndex := 0
	for _, token := range tokens {
		if token.Whitespace {
			segments = append(segments, Segment{Kind: KindWhitespace, Text: token.Text, WordIndex: -1})
			continue
		}

		segment := Segment{Kind: KindWord, Text: token.Text, WordIndex: wordIndex}
		if override, ok := overrides[headline.NormalizeWord(token.Text)]; ok {
			segment.OverrideID = override.ID
			segment.Style = Style{
				Highlight: override.Highlight,
				Underline: override.Underline,
				Block:     override.Block,
			}
		}
		if opts.PerLetter {
			segment.Letters = splitLetters(token.Text, wordIndex)
		}

		segments = append(segments, segment)
		wordIndex++
	}

	return segments
}

// ComposeSettings composes the text and overrides held by s.
func ComposeSettings(s headline.HeadlineSettings) []Segment {
	return Compose(s.Text, s.StyledWords, Options{PerLetter: s.Effects.PerLetter})
}

// Join concatenates segment texts in order.
func Join(segments []Segment) string {
	var b strings.Builder
	for _, segment := range segments {
		b.WriteString(segment.Text)
	}
	return b.String()
}

// WordCount returns the number of word segments.
func WordCount(segments []Segment) int {
	count := 0
	for _, segment := range segments {
		if segment.IsWord() {
			count++
		}
	}
	return count
}

// LastSettle returns the time at which every letter animation has settled,
// or 0 when no segment carries letters.
func LastSettle(segments []Segment) float64 {
	var last float64
	for _, segment := range segments {
		for _, letter := range segment.Letters {
			if end := letter.Animation.End(); end > last {
				last = end
			}
		}
	}
	return last
}

func splitLetters(word string, wordIndex int) []Letter {
	length := utf8.RuneCountInString(word)
	letters := make([]Letter, 0, length)
	charIndex := 0
	for _, r := range word {
		letters = append(letters, Letter{
			Char:      string(r),
			Index:     charIndex,
			Animation: letterAnimation(wordIndex, length, charIndex),
		})
		charIndex++
	}
	return letters
}
