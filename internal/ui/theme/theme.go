// Package theme resolves style tags into concrete appearances for table
// widgets. Styles are a closed set of tags; every lookup is a single switch
// over the tag, so widgets never hold styling objects of their own.
package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Style tags the visual role of a widget.
type Style int

const (
	StyleDefault Style = iota
	StyleHeader
	StyleEven
	StyleOdd
	StyleSelected
)

func (s Style) String() string {
	switch s {
	case StyleHeader:
		return "header"
	case StyleEven:
		return "even"
	case StyleOdd:
		return "odd"
	case StyleSelected:
		return "selected"
	default:
		return "default"
	}
}

// Appearance is the resolved look of a widget in one state.
// A nil TextColor inherits from the parent; a nil Background paints nothing.
type Appearance struct {
	TextColor    lipgloss.TerminalColor
	Background   lipgloss.TerminalColor
	BorderWidth  int
	BorderRadius int
	BorderColor  lipgloss.TerminalColor
	OffsetLeft   int
	OffsetRight  int
}

// Provider supplies appearances for style tags.
type Provider interface {
	Appearance(style Style) Appearance
	Hovered(style Style) Appearance
}

// ColourSet groups the colours of one semantic slot.
type ColourSet struct {
	Base     lipgloss.Color
	OnBase   lipgloss.Color
	Muted    lipgloss.Color
	Contrast lipgloss.Color
}

// Palette describes semantic colour slots used by the table widgets.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Neutral ColourSet
	Success ColourSet
	Danger  ColourSet
}

// Theme is an immutable Provider built from a Palette.
type Theme struct {
	Name    string
	Palette Palette

	// RowOffsetLeft and RowOffsetRight inset row backgrounds horizontally.
	RowOffsetLeft  int
	RowOffsetRight int
}

var _ Provider = Theme{}

// Appearance returns the resting appearance for style.
func (t Theme) Appearance(style Style) Appearance {
	p := t.Palette
	switch style {
	case StyleHeader:
		return Appearance{
			TextColor:  p.Primary.Base,
			Background: p.Surface.Muted,
		}
	case StyleEven:
		return Appearance{
			TextColor:   p.Surface.OnBase,
			Background:  p.Surface.Base,
			OffsetLeft:  t.RowOffsetLeft,
			OffsetRight: t.RowOffsetRight,
		}
	case StyleOdd:
		return Appearance{
			TextColor:   p.Surface.OnBase,
			Background:  p.Neutral.Muted,
			OffsetLeft:  t.RowOffsetLeft,
			OffsetRight: t.RowOffsetRight,
		}
	case StyleSelected:
		return Appearance{
			TextColor:   p.Primary.OnBase,
			Background:  p.Primary.Muted,
			BorderColor: p.Primary.Base,
			OffsetLeft:  t.RowOffsetLeft,
			OffsetRight: t.RowOffsetRight,
		}
	default:
		return Appearance{TextColor: p.Surface.OnBase}
	}
}

// Hovered returns the appearance for style while the cursor is over it.
func (t Theme) Hovered(style Style) Appearance {
	p := t.Palette
	switch style {
	case StyleHeader:
		return Appearance{
			TextColor:  p.Primary.Contrast,
			Background: p.Neutral.Base,
		}
	case StyleEven, StyleOdd:
		return Appearance{
			TextColor:   p.Primary.OnBase,
			Background:  p.Primary.Base,
			OffsetLeft:  t.RowOffsetLeft,
			OffsetRight: t.RowOffsetRight,
		}
	case StyleSelected:
		return Appearance{
			TextColor:   p.Primary.OnBase,
			Background:  p.Primary.Base,
			BorderColor: p.Primary.Contrast,
			OffsetLeft:  t.RowOffsetLeft,
			OffsetRight: t.RowOffsetRight,
		}
	default:
		return Appearance{
			TextColor:  p.Primary.Base,
			Background: p.Neutral.Muted,
		}
	}
}

// Dark returns the default dark theme.
func Dark() Theme {
	return Theme{
		Name: "dark",
		Palette: Palette{
			Primary: ColourSet{
				Base:     lipgloss.Color("#60a5fa"),
				OnBase:   lipgloss.Color("#0b1120"),
				Muted:    lipgloss.Color("#1d4ed8"),
				Contrast: lipgloss.Color("#facc15"),
			},
			Surface: ColourSet{
				Base:     lipgloss.Color("#111827"),
				OnBase:   lipgloss.Color("#f9fafb"),
				Muted:    lipgloss.Color("#1f2937"),
				Contrast: lipgloss.Color("#60a5fa"),
			},
			Neutral: ColourSet{
				Base:     lipgloss.Color("#334155"),
				OnBase:   lipgloss.Color("#0f172a"),
				Muted:    lipgloss.Color("#1e293b"),
				Contrast: lipgloss.Color("#f8fafc"),
			},
			Success: ColourSet{
				Base:     lipgloss.Color("#4ade80"),
				OnBase:   lipgloss.Color("#022c22"),
				Muted:    lipgloss.Color("#15803d"),
				Contrast: lipgloss.Color("#f8fafc"),
			},
			Danger: ColourSet{
				Base:     lipgloss.Color("#f87171"),
				OnBase:   lipgloss.Color("#450a0a"),
				Muted:    lipgloss.Color("#b91c1c"),
				Contrast: lipgloss.Color("#f8fafc"),
			},
		},
	}
}

// Light returns the light theme.
func Light() Theme {
	return Theme{
		Name: "light",
		Palette: Palette{
			Primary: ColourSet{
				Base:     lipgloss.Color("#3b82f6"),
				OnBase:   lipgloss.Color("#f8fafc"),
				Muted:    lipgloss.Color("#bfdbfe"),
				Contrast: lipgloss.Color("#ca8a04"),
			},
			Surface: ColourSet{
				Base:     lipgloss.Color("#f9fafb"),
				OnBase:   lipgloss.Color("#111827"),
				Muted:    lipgloss.Color("#e2e8f0"),
				Contrast: lipgloss.Color("#3b82f6"),
			},
			Neutral: ColourSet{
				Base:     lipgloss.Color("#cbd5e1"),
				OnBase:   lipgloss.Color("#0f172a"),
				Muted:    lipgloss.Color("#f1f5f9"),
				Contrast: lipgloss.Color("#0f172a"),
			},
			Success: ColourSet{
				Base:     lipgloss.Color("#22c55e"),
				OnBase:   lipgloss.Color("#052e16"),
				Muted:    lipgloss.Color("#16a34a"),
				Contrast: lipgloss.Color("#f8fafc"),
			},
			Danger: ColourSet{
				Base:     lipgloss.Color("#ef4444"),
				OnBase:   lipgloss.Color("#7f1d1d"),
				Muted:    lipgloss.Color("#dc2626"),
				Contrast: lipgloss.Color("#f8fafc"),
			},
		},
	}
}

var builtin = map[string]func() Theme{
	"dark":  Dark,
	"light": Light,
}

// ByName returns the built-in theme called name.
func ByName(name string) (Theme, bool) {
	ctor, ok := builtin[name]
	if !ok {
		return Theme{}, false
	}
	return ctor(), true
}

// Names lists the built-in theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
