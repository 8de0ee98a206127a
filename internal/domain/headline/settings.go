package headline

import (
	"strconv"
	"strings"
)

const (
	// MinFontSize and MaxFontSize bound the headline font size in pixels.
	MinFontSize = 8
	MaxFontSize = 200
)

// FontWeights lists the supported font weights in control order.
var FontWeights = []int{400, 600, 700, 900}

var fontWeightLabels = map[int]string{
	400: "Normal",
	600: "Semi Bold",
	700: "Bold",
	900: "Extra Bold",
}

// HeadlineSettings is the root value describing a headline's presentation.
// Values are never mutated in place; every With* method returns a new value
// that shares nothing mutable with its receiver.
type HeadlineSettings struct {
	Text              string
	FontSize          int
	TextColor         string
	FontFamily        string
	FontWeight        int
	Gradient          bool
	GradientDirection Direction
	GradientFrom      string
	GradientTo        string
	Effects           Effects
	StyledWords       []StyledWord
}

// Defaults returns the settings a freshly created widget starts with.
func Defaults() HeadlineSettings {
	return HeadlineSettings{
		Text:              "Editable Headline",
		FontSize:          48,
		TextColor:         "#000000",
		FontFamily:        "Roboto",
		FontWeight:        700,
		Gradient:          true,
		GradientDirection: DirectionRight,
		GradientFrom:      "#4f46e5",
		GradientTo:        "#ec4899",
		Effects: Effects{
			FadeIn: true,
		},
	}
}

// Clone returns a deep copy so later revisions never alias the word slice.
func (s HeadlineSettings) Clone() HeadlineSettings {
	clone := s
	if s.StyledWords != nil {
		clone.StyledWords = make([]StyledWord, len(s.StyledWords))
		copy(clone.StyledWords, s.StyledWords)
	}
	return clone
}

// WithText replaces the headline text.
func (s HeadlineSettings) WithText(text string) HeadlineSettings {
	next := s.Clone()
	next.Text = text
	return next
}

// WithFontSize replaces the font size when size is within bounds. Out of
// range values are rejected and the receiver is returned unchanged.
func (s HeadlineSettings) WithFontSize(size int) (HeadlineSettings, error) {
	if size < MinFontSize || size > MaxFontSize {
		return s, newNumericInputError(strconv.Itoa(size), nil)
	}
	next := s.Clone()
	next.FontSize = size
	return next, nil
}

// WithFontSizeInput parses raw user input and applies it, keeping the prior
// value on any failure.
func (s HeadlineSettings) WithFontSizeInput(input string) (HeadlineSettings, error) {
	size, err := ParseFontSize(input)
	if err != nil {
		return s, err
	}
	return s.WithFontSize(size)
}

// WithFontFamily replaces the font-family key. Whether the key resolves is
// checked against the font table by callers.
func (s HeadlineSettings) WithFontFamily(key string) HeadlineSettings {
	next := s.Clone()
	next.FontFamily = key
	return next
}

// WithFontWeight replaces the weight when it is one of FontWeights.
func (s HeadlineSettings) WithFontWeight(weight int) (HeadlineSettings, error) {
	if !ValidFontWeight(weight) {
		return s, newFontWeightError(weight)
	}
	next := s.Clone()
	next.FontWeight = weight
	return next, nil
}

// WithTextColor replaces the solid text color.
func (s HeadlineSettings) WithTextColor(color string) HeadlineSettings {
	next := s.Clone()
	next.TextColor = color
	return next
}

// WithGradient switches gradient painting on or off.
func (s HeadlineSettings) WithGradient(enabled bool) HeadlineSettings {
	next := s.Clone()
	next.Gradient = enabled
	return next
}

// WithGradientDirection replaces the gradient direction.
func (s HeadlineSettings) WithGradientDirection(d Direction) (HeadlineSettings, error) {
	if !d.Valid() {
		return s, newDirectionError(string(d))
	}
	next := s.Clone()
	next.GradientDirection = d
	return next, nil
}

// WithGradientFrom replaces the first gradient stop.
func (s HeadlineSettings) WithGradientFrom(color string) HeadlineSettings {
	next := s.Clone()
	next.GradientFrom = color
	return next
}

// WithGradientTo replaces the second gradient stop.
func (s HeadlineSettings) WithGradientTo(color string) HeadlineSettings {
	next := s.Clone()
	next.GradientTo = color
	return next
}

// WithEffect sets a single effect flag.
func (s HeadlineSettings) WithEffect(flag EffectFlag, value bool) (HeadlineSettings, error) {
	effects, err := s.Effects.With(flag, value)
	if err != nil {
		return s, err
	}
	next := s.Clone()
	next.Effects = effects
	return next, nil
}

// ParseFontSize converts raw input into a font size. Non-numeric and
// out-of-range input fail with ErrInvalidNumericInput.
func ParseFontSize(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	size, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, newNumericInputError(input, err)
	}
	if size < MinFontSize || size > MaxFontSize {
		return 0, newNumericInputError(input, nil)
	}
	return size, nil
}

// ValidFontWeight reports whether weight is a supported font weight.
func ValidFontWeight(weight int) bool {
	_, ok := fontWeightLabels[weight]
	return ok
}

// FontWeightLabel returns the human label for a weight, or the number itself.
func FontWeightLabel(weight int) string {
	if label, ok := fontWeightLabels[weight]; ok {
		return label
	}
	return strconv.Itoa(weight)
}

// NormalizeWord trims surrounding whitespace and folds case. The result is
// the matching key for word overrides.
func NormalizeWord(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
