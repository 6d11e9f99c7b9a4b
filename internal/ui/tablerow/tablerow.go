// Package tablerow implements a styled, clickable row container.
//
// A row wraps one content element. Its interactive band can be shorter than
// its laid-out bounds, so content may grow downward (an expanded detail panel,
// say) without growing the area that hovers and accepts clicks.
package tablerow

import (
	"math"

	"github.com/alexisbeaulieu97/txview/internal/ui/layout"
	"github.com/alexisbeaulieu97/txview/internal/ui/theme"
	"github.com/alexisbeaulieu97/txview/internal/ui/widget"
)

// Row wraps content with padding, alignment, a style tag and a press handler.
type Row[Msg any] struct {
	content        widget.Element[Msg]
	width          layout.Length
	height         layout.Length
	maxWidth       int
	maxHeight      int
	innerRowHeight int
	hasInnerHeight bool
	alignX         layout.Alignment
	alignY         layout.Alignment
	padding        layout.Padding
	style          theme.Style
	onPress        func(widget.Event) Msg
}

// New wraps content in a row.
func New[Msg any](content widget.Element[Msg]) *Row[Msg] {
	return &Row[Msg]{
		content:   content,
		width:     layout.Shrink(),
		height:    layout.Shrink(),
		maxWidth:  math.MaxInt,
		maxHeight: math.MaxInt,
		style:     theme.StyleDefault,
	}
}

func (r *Row[Msg]) Width(width layout.Length) *Row[Msg] {
	r.width = width
	return r
}

func (r *Row[Msg]) Height(height layout.Length) *Row[Msg] {
	r.height = height
	return r
}

func (r *Row[Msg]) MaxWidth(width int) *Row[Msg] {
	r.maxWidth = width
	return r
}

func (r *Row[Msg]) MaxHeight(height int) *Row[Msg] {
	r.maxHeight = height
	return r
}

// InnerRowHeight limits the hoverable and clickable band to the top height
// cells of the row. Content below it is still drawn.
func (r *Row[Msg]) InnerRowHeight(height int) *Row[Msg] {
	r.innerRowHeight = height
	r.hasInnerHeight = true
	return r
}

func (r *Row[Msg]) AlignX(a layout.Alignment) *Row[Msg] {
	r.alignX = a
	return r
}

func (r *Row[Msg]) AlignY(a layout.Alignment) *Row[Msg] {
	r.alignY = a
	return r
}

// CenterX fills the available width and centres the content in it.
func (r *Row[Msg]) CenterX() *Row[Msg] {
	r.width = layout.Fill()
	r.alignX = layout.AlignCenter
	return r
}

// CenterY fills the available height and centres the content in it.
func (r *Row[Msg]) CenterY() *Row[Msg] {
	r.height = layout.Fill()
	r.alignY = layout.AlignCenter
	return r
}

func (r *Row[Msg]) Padding(p layout.Padding) *Row[Msg] {
	r.padding = p
	return r
}

func (r *Row[Msg]) Style(style theme.Style) *Row[Msg] {
	r.style = style
	return r
}

// OnPress sets the message published on a left press inside the interactive
// band that the content did not capture.
func (r *Row[Msg]) OnPress(fn func(widget.Event) Msg) *Row[Msg] {
	r.onPress = fn
	return r
}

// InteractiveBounds returns the hoverable and clickable part of node.
func (r *Row[Msg]) InteractiveBounds(node *layout.Node) layout.Rectangle {
	bounds := node.Bounds()
	if r.hasInnerHeight {
		bounds.Height = r.innerRowHeight
	}
	return bounds
}

func (r *Row[Msg]) Size() (layout.Length, layout.Length) {
	return r.width, r.height
}

func (r *Row[Msg]) Layout(limits layout.Limits) *layout.Node {
	limits = limits.MaxWidth(r.maxWidth).MaxHeight(r.maxHeight)
	return layout.Single(limits, r.width, r.height, r.padding, r.alignX, r.alignY, r.content)
}

func (r *Row[Msg]) appearance(provider theme.Provider, hovered bool) theme.Appearance {
	if provider == nil {
		return theme.Appearance{}
	}
	if hovered {
		return provider.Hovered(r.style)
	}
	return provider.Appearance(r.style)
}

func (r *Row[Msg]) Draw(ctx widget.DrawContext, node *layout.Node, cursor layout.Point) {
	bounds := node.Bounds()
	interactive := r.InteractiveBounds(node)
	app := r.appearance(ctx.Theme, interactive.Contains(cursor))

	ctx.Renderer.FillQuad(widget.Quad{
		Bounds: layout.Rectangle{
			X:      bounds.X + app.OffsetLeft,
			Y:      bounds.Y,
			Width:  max(bounds.Width-app.OffsetRight, 0),
			Height: max(interactive.Height, 0),
		},
		Background:   app.Background,
		BorderWidth:  app.BorderWidth,
		BorderRadius: app.BorderRadius,
		BorderColor:  app.BorderColor,
	})

	if child := node.Child(0); child != nil {
		r.content.Draw(ctx.WithTextColor(app.TextColor), child, cursor)
	}
}

func (r *Row[Msg]) OnEvent(event widget.Event, node *layout.Node, cursor layout.Point, shell *widget.Shell[Msg]) widget.Status {
	if child := node.Child(0); child != nil {
		if r.content.OnEvent(event, child, cursor, shell) == widget.Captured {
			return widget.Captured
		}
	}

	if r.onPress == nil || !event.IsLeftPress() || !r.InteractiveBounds(node).Contains(event.Position) {
		return widget.Ignored
	}
	shell.Publish(r.onPress(event))
	return widget.Captured
}

func (r *Row[Msg]) Interaction(node *layout.Node, cursor layout.Point) widget.Interaction {
	if node.Bounds().Contains(cursor) {
		return widget.InteractionPointer
	}
	if child := node.Child(0); child != nil {
		return r.content.Interaction(child, cursor)
	}
	return widget.InteractionIdle
}
