package widget

import (
	"github.com/alexisbeaulieu97/txview/internal/ui/layout"
	"github.com/alexisbeaulieu97/txview/internal/ui/theme"
)

// Surface is one laid-out pass over a root element.
// Build a new Surface whenever the tree is rebuilt.
type Surface[Msg any] struct {
	root Element[Msg]
	node *layout.Node
}

// NewSurface lays out root within size.
func NewSurface[Msg any](root Element[Msg], size layout.Size) *Surface[Msg] {
	limits := layout.NewLimits(layout.Size{}, size)
	return &Surface[Msg]{root: root, node: root.Layout(limits)}
}

// Node returns the root layout node.
func (s *Surface[Msg]) Node() *layout.Node {
	return s.node
}

// Dispatch delivers event to the tree and returns its status along with the
// messages published while handling it, in publish order.
func (s *Surface[Msg]) Dispatch(event Event) (Status, []Msg) {
	shell := &Shell[Msg]{}
	status := s.root.OnEvent(event, s.node, event.Position, shell)
	return status, shell.Messages()
}

// Draw paints the tree.
func (s *Surface[Msg]) Draw(r Renderer, provider theme.Provider, cursor layout.Point) {
	ctx := DrawContext{Renderer: r, Theme: provider}
	if provider != nil {
		ctx.TextColor = provider.Appearance(theme.StyleDefault).TextColor
	}
	s.root.Draw(ctx, s.node, cursor)
}

// Interaction returns the pointer affordance at cursor.
func (s *Surface[Msg]) Interaction(cursor layout.Point) Interaction {
	return s.root.Interaction(s.node, cursor)
}
