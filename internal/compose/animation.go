package compose

const (
	// LetterStagger is the delay step between consecutive letters, in seconds.
	LetterStagger = 0.05
	// LetterDuration is the per-letter transition duration, in seconds.
	LetterDuration = 0.3
	// HiddenOffsetY is the vertical offset letters start from.
	HiddenOffsetY = 20
)

// State is one end of an animation: opacity in [0,1] and a vertical offset.
type State struct {
	Opacity float64 `json:"opacity"`
	OffsetY float64 `json:"y"`
}

// Hidden is the state animated elements start from.
var Hidden = State{Opacity: 0, OffsetY: HiddenOffsetY}

// Settled is the state animated elements end in.
var Settled = State{Opacity: 1, OffsetY: 0}

// Animation is a declarative descriptor handed to an animation runtime.
// Delay and Duration are in seconds.
type Animation struct {
	Initial  State   `json:"initial"`
	Final    State   `json:"animate"`
	Delay    float64 `json:"delay"`
	Duration float64 `json:"duration"`
}

// End returns the time at which the animation has settled.
func (a Animation) End() float64 {
	return a.Delay + a.Duration
}

// Progress returns how far the animation has advanced at clock seconds, in [0,1].
func (a Animation) Progress(clock float64) float64 {
	if clock <= a.Delay {
		return 0
	}
	if a.Duration <= 0 || clock >= a.End() {
		return 1
	}
	return (clock - a.Delay) / a.Duration
}

// At interpolates the animated state at clock seconds.
func (a Animation) At(clock float64) State {
	p := a.Progress(clock)
	return State{
		Opacity: a.Initial.Opacity + (a.Final.Opacity-a.Initial.Opacity)*p,
		OffsetY: a.Initial.OffsetY + (a.Final.OffsetY-a.Initial.OffsetY)*p,
	}
}

// LetterDelay computes the stagger for character charIndex of the word at
// wordIndex, where wordLength is that word's length in runes.
func LetterDelay(wordIndex, wordLength, charIndex int) float64 {
	return float64(wordIndex*wordLength+charIndex) * LetterStagger
}

func letterAnimation(wordIndex, wordLength, charIndex int) Animation {
	return Animation{
		Initial:  Hidden,
		Final:    Settled,
		Delay:    LetterDelay(wordIndex, wordLength, charIndex),
		Duration: LetterDuration,
	}
}
