package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
)

// SummaryData aggregates editor state for the footer.
type SummaryData struct {
	Revision   uint64
	Words      []headline.StyledWord
	Effects    []headline.EffectFlag
	LastExport string
}

// Summary renders a one-line editor summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	styled := 0
	for _, w := range s.data.Words {
		if w.Styled() {
			styled++
		}
	}

	parts := []string{
		fmt.Sprintf("rev %d", s.data.Revision),
		fmt.Sprintf("words %d/%d styled", styled, len(s.data.Words)),
	}

	if len(s.data.Effects) > 0 {
		names := make([]string, 0, len(s.data.Effects))
		for _, flag := range s.data.Effects {
			names = append(names, string(flag))
		}
		parts = append(parts, "effects "+strings.Join(names, ","))
	}

	if s.data.LastExport != "" {
		parts = append(parts, "exported to "+s.data.LastExport)
	}

	return strings.Join(parts, " · ")
}
