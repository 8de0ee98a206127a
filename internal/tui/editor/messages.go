package editor

import "github.com/alexisbeaulieu97/headliner/internal/domain/headline"

// ControlKind identifies one row of the editor.
type ControlKind int

const (
	ControlText ControlKind = iota
	ControlFontSize
	ControlFontFamily
	ControlFontWeight
	ControlTextColor
	ControlGradient
	ControlDirection
	ControlGradientFrom
	ControlGradientTo
	ControlEffect
	ControlAddWord
	ControlWord
)

// Control is a focusable row. Effect and WordID are set for effect and word rows.
type Control struct {
	Kind   ControlKind
	Effect headline.EffectFlag
	WordID string
}

// ExportedMsg reports a successful export.
type ExportedMsg struct {
	Path string
}

// ExportErrorMsg reports a failed export. Nothing was written.
type ExportErrorMsg struct {
	Error error
}
