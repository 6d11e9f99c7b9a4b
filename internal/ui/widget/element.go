// Package widget defines the element contract shared by the table widgets and
// a handful of leaf and container elements used to compose them.
//
// An element is rebuilt by its owner on every render pass. Layout produces a
// layout.Node tree that mirrors the element tree; Draw, OnEvent and
// Interaction receive the node that Layout produced for the same element.
// Elements keep no state between passes. Widgets that need persistent state
// borrow it from their owner by pointer.
package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/txview/internal/ui/layout"
	"github.com/alexisbeaulieu97/txview/internal/ui/theme"
)

// Element is one node of a widget tree producing messages of type Msg.
type Element[Msg any] interface {
	Size() (width, height layout.Length)
	Layout(limits layout.Limits) *layout.Node
	Draw(ctx DrawContext, node *layout.Node, cursor layout.Point)
	OnEvent(event Event, node *layout.Node, cursor layout.Point, shell *Shell[Msg]) Status
	Interaction(node *layout.Node, cursor layout.Point) Interaction
}

// Quad is a filled rectangle with an optional border.
type Quad struct {
	Bounds       layout.Rectangle
	Background   lipgloss.TerminalColor
	BorderWidth  int
	BorderRadius int
	BorderColor  lipgloss.TerminalColor
}

// TextRun is a single line of text clipped to MaxWidth cells.
type TextRun struct {
	Position layout.Point
	Content  string
	MaxWidth int
	Color    lipgloss.TerminalColor
	Bold     bool
}

// Renderer is the drawing backend.
type Renderer interface {
	FillQuad(q Quad)
	DrawText(t TextRun)
}

// DrawContext is handed down the tree during Draw.
type DrawContext struct {
	Renderer Renderer
	Theme    theme.Provider
	// TextColor is inherited by text that sets no colour of its own.
	TextColor lipgloss.TerminalColor
}

// WithTextColor returns a copy of ctx whose inherited text colour is c.
// A nil c leaves the context unchanged.
func (ctx DrawContext) WithTextColor(c lipgloss.TerminalColor) DrawContext {
	if c != nil {
		ctx.TextColor = c
	}
	return ctx
}

func items[Msg any](children []Element[Msg]) []layout.Item {
	out := make([]layout.Item, len(children))
	for i, child := range children {
		out[i] = child
	}
	return out
}

// Forward delivers event to every child, folding statuses so that Captured
// wins. Children without a matching node are skipped.
func Forward[Msg any](children []Element[Msg], event Event, node *layout.Node, cursor layout.Point, shell *Shell[Msg]) Status {
	status := Ignored
	for i, child := range children {
		childNode := node.Child(i)
		if childNode == nil {
			continue
		}
		status = status.Merge(child.OnEvent(event, childNode, cursor, shell))
	}
	return status
}

// DrawChildren draws each child at its laid-out node.
func DrawChildren[Msg any](children []Element[Msg], ctx DrawContext, node *layout.Node, cursor layout.Point) {
	for i, child := range children {
		if childNode := node.Child(i); childNode != nil {
			child.Draw(ctx, childNode, cursor)
		}
	}
}

// ChildInteraction returns the strongest interaction any child asks for.
func ChildInteraction[Msg any](children []Element[Msg], node *layout.Node, cursor layout.Point) Interaction {
	interaction := InteractionIdle
	for i, child := range children {
		if childNode := node.Child(i); childNode != nil {
			interaction = interaction.Max(child.Interaction(childNode, cursor))
		}
	}
	return interaction
}
