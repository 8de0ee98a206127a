package compose

import (
	"fmt"

	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
)

const (
	// EntranceDuration is the length of the headline fade-in, in seconds.
	EntranceDuration = 0.6
	// HoverScale is the scale applied while hovering with the glow effect.
	HoverScale = 1.05
)

// Hover describes the hover-glow effect of the headline.
type Hover struct {
	TextShadow []string `json:"textShadow"`
	Scale      float64  `json:"scale"`
	Duration   float64  `json:"duration"`
}

// Motion collects the headline-level effect descriptors.
type Motion struct {
	Entrance   *Animation `json:"entrance,omitempty"`
	Hover      *Hover     `json:"hover,omitempty"`
	DropShadow bool       `json:"dropShadow"`
}

// Entrance returns the fade-in descriptor, or nil when fadeIn is off.
func Entrance(effects headline.Effects) *Animation {
	if !effects.FadeIn {
		return nil
	}
	return &Animation{
		Initial:  Hidden,
		Final:    Settled,
		Duration: EntranceDuration,
	}
}

// HoverGlow returns the hover descriptor, or nil when hoverGlow is off. The
// glow uses the gradient stops whether or not the gradient is painted.
func HoverGlow(s headline.HeadlineSettings) *Hover {
	if !s.Effects.HoverGlow {
		return nil
	}
	return &Hover{
		TextShadow: []string{
			fmt.Sprintf("0 0 64px %s", s.GradientFrom),
			fmt.Sprintf("0 0 128px %s", s.GradientTo),
		},
		Scale:    HoverScale,
		Duration: EntranceDuration,
	}
}

// MotionFor resolves every headline-level effect of s.
func MotionFor(s headline.HeadlineSettings) Motion {
	return Motion{
		Entrance:   Entrance(s.Effects),
		Hover:      HoverGlow(s),
		DropShadow: s.Effects.Shadow,
	}
}
