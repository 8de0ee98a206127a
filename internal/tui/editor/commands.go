package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Exporter writes the current settings to path, or to its configured
// destination when path is empty.
type Exporter interface {
	ExportTo(path string) (string, error)
}

// exportCmd exports asynchronously so the view stays responsive.
func exportCmd(svc Exporter, path string) tea.Cmd {
	return func() tea.Msg {
		written, err := svc.ExportTo(path)
		if err != nil {
			return ExportErrorMsg{Error: err}
		}
		return ExportedMsg{Path: written}
	}
}
