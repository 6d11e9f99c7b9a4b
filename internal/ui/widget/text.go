package widget

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/txview/internal/ui/layout"
)

// Text is a single line of text.
type Text[Msg any] struct {
	content string
	width   layout.Length
	color   lipgloss.TerminalColor
	bold    bool
}

// NewText creates a text element sized to its content.
func NewText[Msg any](content string) *Text[Msg] {
	return &Text[Msg]{content: content, width: layout.Shrink()}
}

// Width sets the text width. Content wider than the resolved width is
// truncated with an ellipsis.
func (t *Text[Msg]) Width(width layout.Length) *Text[Msg] {
	t.width = width
	return t
}

// Color overrides the inherited text colour.
func (t *Text[Msg]) Color(c lipgloss.TerminalColor) *Text[Msg] {
	t.color = c
	return t
}

// Bold renders the text in bold.
func (t *Text[Msg]) Bold() *Text[Msg] {
	t.bold = true
	return t
}

// Content returns the text.
func (t *Text[Msg]) Content() string {
	return t.content
}

func (t *Text[Msg]) Size() (layout.Length, layout.Length) {
	return t.width, layout.Shrink()
}

func (t *Text[Msg]) Layout(limits layout.Limits) *layout.Node {
	intrinsic := layout.Size{Width: runewidth.StringWidth(t.content), Height: 1}
	return layout.NewNode(limits.Resolve(t.width, layout.Shrink(), intrinsic))
}

func (t *Text[Msg]) Draw(ctx DrawContext, node *layout.Node, _ layout.Point) {
	bounds := node.Bounds()
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	content := t.content
	if runewidth.StringWidth(content) > bounds.Width {
		content = runewidth.Truncate(content, bounds.Width, "…")
	}

	color := t.color
	if color == nil {
		color = ctx.TextColor
	}

	ctx.Renderer.DrawText(TextRun{
		Position: bounds.Position(),
		Content:  content,
		MaxWidth: bounds.Width,
		Color:    color,
		Bold:     t.bold,
	})
}

func (t *Text[Msg]) OnEvent(Event, *layout.Node, layout.Point, *Shell[Msg]) Status {
	return Ignored
}

func (t *Text[Msg]) Interaction(*layout.Node, layout.Point) Interaction {
	return InteractionIdle
}

// Space is an empty element used for margins and gaps.
type Space[Msg any] struct {
	width  layout.Length
	height layout.Length
}

// NewSpace creates a spacer.
func NewSpace[Msg any](width, height layout.Length) *Space[Msg] {
	return &Space[Msg]{width: width, height: height}
}

// HorizontalSpace creates a spacer of fixed width and shrink height.
func HorizontalSpace[Msg any](width int) *Space[Msg] {
	return NewSpace[Msg](layout.Fixed(width), layout.Shrink())
}

func (s *Space[Msg]) Size() (layout.Length, layout.Length) {
	return s.width, s.height
}

func (s *Space[Msg]) Layout(limits layout.Limits) *layout.Node {
	return layout.NewNode(limits.Resolve(s.width, s.height, layout.Size{}))
}

func (s *Space[Msg]) Draw(DrawContext, *layout.Node, layout.Point) {}

func (s *Space[Msg]) OnEvent(Event, *layout.Node, layout.Point, *Shell[Msg]) Status {
	return Ignored
}

func (s *Space[Msg]) Interaction(*layout.Node, layout.Point) Interaction {
	return InteractionIdle
}
