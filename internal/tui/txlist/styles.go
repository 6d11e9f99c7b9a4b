package txlist

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/txview/internal/ui/theme"
)

type styles struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	hint    lipgloss.Style
	status  lipgloss.Style
	err     lipgloss.Style
	warning lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	p := t.Palette
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary.Base).
			PaddingLeft(1).
			PaddingRight(1),
		muted: lipgloss.NewStyle().
			Foreground(p.Neutral.Base),
		hint: lipgloss.NewStyle().
			Foreground(p.Primary.Contrast).
			Italic(true),
		status: lipgloss.NewStyle().
			Foreground(p.Success.Base).
			PaddingLeft(1),
		err: lipgloss.NewStyle().
			Foreground(p.Danger.Base).
			Bold(true).
			PaddingLeft(1),
		warning: lipgloss.NewStyle().
			Foreground(p.Danger.Base).
			Bold(true).
			Padding(1, 2),
	}
}
