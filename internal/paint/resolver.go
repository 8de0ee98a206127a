// Package paint resolves headline color settings into a paint descriptor.
package paint

import (
	"fmt"

	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
)

// Mode selects between solid and gradient painting.
type Mode string

const (
	ModeSolid    Mode = "solid"
	ModeGradient Mode = "gradient"
)

// Heading is the concrete direction a gradient runs in.
type Heading string

const (
	Rightward Heading = "rightward"
	Leftward  Heading = "leftward"
	Upward    Heading = "upward"
	Downward  Heading = "downward"
)

// Horizontal reports whether the heading runs along the text baseline.
func (h Heading) Horizontal() bool {
	return h == Rightward || h == Leftward
}

// Reversed reports whether the gradient runs against reading or line order.
func (h Heading) Reversed() bool {
	return h == Leftward || h == Upward
}

var cssHeadings = map[Heading]string{
	Rightward: "to right",
	Leftward:  "to left",
	Upward:    "to top",
	Downward:  "to bottom",
}

// Descriptor is the resolved paint instruction consumed by renderers. A
// gradient descriptor also asks the renderer to clip the paint to the glyph
// shapes and make the base text color transparent.
type Descriptor struct {
	Mode            Mode    `json:"mode"`
	Color           string  `json:"color,omitempty"`
	Direction       Heading `json:"direction,omitempty"`
	From            string  `json:"from,omitempty"`
	To              string  `json:"to,omitempty"`
	ClipToText      bool    `json:"clipToText,omitempty"`
	TransparentBase bool    `json:"transparentBase,omitempty"`
}

// Resolve maps the color settings to a Descriptor. The direction is only
// consulted when gradient is set; an unknown direction fails with
// headline.ErrInvalidDirection instead of falling back to a default.
func Resolve(gradient bool, direction headline.Direction, from, to, textColor string) (Descriptor, error) {
	if !gradient {
		return Descriptor{Mode: ModeSolid, Color: textColor}, nil
	}

	heading, err := MapDirection(direction)
	if err != nil {
		return Descriptor{}, err
	}

	return Descriptor{
		Mode:            ModeGradient,
		Direction:       heading,
		From:            from,
		To:              to,
		ClipToText:      true,
		TransparentBase: true,
	}, nil
}

// ForSettings resolves the paint of s.
func ForSettings(s headline.HeadlineSettings) (Descriptor, error) {
	return Resolve(s.Gradient, s.GradientDirection, s.GradientFrom, s.GradientTo, s.TextColor)
}

// MapDirection converts a symbolic direction into a Heading.
func MapDirection(direction headline.Direction) (Heading, error) {
	switch direction {
	case headline.DirectionRight:
		return Rightward, nil
	case headline.DirectionLeft:
		return Leftward, nil
	case headline.DirectionTop:
		return Upward, nil
	case headline.DirectionBottom:
		return Downward, nil
	default:
		return "", headline.ErrInvalidDirection.WithContext(map[string]interface{}{"value": string(direction)})
	}
}

// CSS renders the descriptor as CSS declarations keyed by property name.
func (d Descriptor) CSS() map[string]string {
	if d.Mode != ModeGradient {
		return map[string]string{"color": d.Color}
	}
	return map[string]string{
		"background-image":        fmt.Sprintf("linear-gradient(%s, %s, %s)", cssHeadings[d.Direction], d.From, d.To),
		"-webkit-background-clip": "text",
		"background-clip":         "text",
		"color":                   "transparent",
	}
}
