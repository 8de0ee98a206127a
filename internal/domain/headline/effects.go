package headline

import "strings"

// EffectFlag names one of the independent headline effects.
type EffectFlag string

const (
	EffectFadeIn    EffectFlag = "fadeIn"
	EffectHoverGlow EffectFlag = "hoverGlow"
	EffectPerLetter EffectFlag = "perLetter"
	EffectShadow    EffectFlag = "shadow"
)

// AllEffects is the fixed, ordered list of effect flags.
var AllEffects = []EffectFlag{EffectFadeIn, EffectHoverGlow, EffectPerLetter, EffectShadow}

// Effects holds the effect toggles. The toggles are independent of each other.
type Effects struct {
	FadeIn    bool
	HoverGlow bool
	PerLetter bool
	Shadow    bool
}

// Enabled reports the state of a single flag. Unknown flags report false.
func (e Effects) Enabled(flag EffectFlag) bool {
	switch flag {
	case EffectFadeIn:
		return e.FadeIn
	case EffectHoverGlow:
		return e.HoverGlow
	case EffectPerLetter:
		return e.PerLetter
	case EffectShadow:
		return e.Shadow
	default:
		return false
	}
}

// With returns a copy of e with flag set to value.
func (e Effects) With(flag EffectFlag, value bool) (Effects, error) {
	switch flag {
	case EffectFadeIn:
		e.FadeIn = value
	case EffectHoverGlow:
		e.HoverGlow = value
	case EffectPerLetter:
		e.PerLetter = value
	case EffectShadow:
		e.Shadow = value
	default:
		return e, newEffectError(string(flag))
	}
	return e, nil
}

// Active returns the enabled flags in AllEffects order.
func (e Effects) Active() []EffectFlag {
	active := make([]EffectFlag, 0, len(AllEffects))
	for _, flag := range AllEffects {
		if e.Enabled(flag) {
			active = append(active, flag)
		}
	}
	return active
}

// ParseEffectFlag accepts the camelCase flag names, case-insensitively.
func ParseEffectFlag(value string) (EffectFlag, error) {
	needle := strings.TrimSpace(value)
	for _, flag := range AllEffects {
		if strings.EqualFold(string(flag), needle) {
			return flag, nil
		}
	}
	return "", newEffectError(value)
}
