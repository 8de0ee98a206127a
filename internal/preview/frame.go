package preview

import (
	headlineapp "github.com/alexisbeaulieu97/headliner/internal/app/headline"
)

// FromFrame builds renderer input from an application frame.
func FromFrame(frame headlineapp.Frame) Input {
	return Input{
		Settings:   frame.Settings,
		Paint:      frame.Paint,
		FontString: frame.FontString,
	}
}

// WithWidth returns a copy of r wrapping at width cells.
func (r Renderer) WithWidth(width int) Renderer {
	r.width = width
	return r
}

// Width reports the wrap width; 0 means unwrapped.
func (r Renderer) Width() int {
	return r.width
}
