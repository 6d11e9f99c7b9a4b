package widget

import "github.com/alexisbeaulieu97/txview/internal/ui/layout"

// Stack arranges children along one axis using the flex layout.
type Stack[Msg any] struct {
	children []Element[Msg]
	flex     layout.Flex
}

// Row creates a horizontal stack.
func Row[Msg any](children ...Element[Msg]) *Stack[Msg] {
	return &Stack[Msg]{
		children: children,
		flex:     layout.Flex{Axis: layout.Horizontal, Width: layout.Shrink(), Height: layout.Shrink()},
	}
}

// Column creates a vertical stack.
func Column[Msg any](children ...Element[Msg]) *Stack[Msg] {
	return &Stack[Msg]{
		children: children,
		flex:     layout.Flex{Axis: layout.Vertical, Width: layout.Shrink(), Height: layout.Shrink()},
	}
}

// Push appends children.
func (s *Stack[Msg]) Push(children ...Element[Msg]) *Stack[Msg] {
	s.children = append(s.children, children...)
	return s
}

// Spacing sets the gap between children.
func (s *Stack[Msg]) Spacing(spacing int) *Stack[Msg] {
	s.flex.Spacing = spacing
	return s
}

// Padding sets the space around the children.
func (s *Stack[Msg]) Padding(p layout.Padding) *Stack[Msg] {
	s.flex.Padding = p
	return s
}

// Width sets the stack width.
func (s *Stack[Msg]) Width(width layout.Length) *Stack[Msg] {
	s.flex.Width = width
	return s
}

// Height sets the stack height.
func (s *Stack[Msg]) Height(height layout.Length) *Stack[Msg] {
	s.flex.Height = height
	return s
}

// Align sets the cross-axis alignment of the children.
func (s *Stack[Msg]) Align(a layout.Alignment) *Stack[Msg] {
	s.flex.Align = a
	return s
}

// Children returns the stacked elements.
func (s *Stack[Msg]) Children() []Element[Msg] {
	return s.children
}

func (s *Stack[Msg]) Size() (layout.Length, layout.Length) {
	return s.flex.Width, s.flex.Height
}

func (s *Stack[Msg]) Layout(limits layout.Limits) *layout.Node {
	return s.flex.Resolve(limits, items(s.children))
}

func (s *Stack[Msg]) Draw(ctx DrawContext, node *layout.Node, cursor layout.Point) {
	DrawChildren(s.children, ctx, node, cursor)
}

func (s *Stack[Msg]) OnEvent(event Event, node *layout.Node, cursor layout.Point, shell *Shell[Msg]) Status {
	return Forward(s.children, event, node, cursor, shell)
}

func (s *Stack[Msg]) Interaction(node *layout.Node, cursor layout.Point) Interaction {
	return ChildInteraction(s.children, node, cursor)
}
