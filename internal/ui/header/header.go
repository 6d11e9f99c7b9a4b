// Package header implements a table header whose column dividers can be
// dragged to resize the columns on either side.
//
// The header does not own column widths. Each cell is laid out from whatever
// width its element asks for, and a drag publishes ResizeEvents that the
// owner applies to its column set before rebuilding the header.
package header

import (
	"github.com/alexisbeaulieu97/txview/internal/ui/layout"
	"github.com/alexisbeaulieu97/txview/internal/ui/widget"
)

// ResizeKind distinguishes resize events.
type ResizeKind int

const (
	ResizeColumn ResizeKind = iota
	Finished
)

// ResizeEvent is published while a divider is dragged.
type ResizeEvent struct {
	Kind       ResizeKind
	LeftName   string
	LeftWidth  uint16
	RightName  string
	RightWidth uint16
}

// Cell pairs a column name with its prebuilt header element.
type Cell[Msg any] struct {
	Name    string
	Element widget.Element[Msg]
}

// NewCell creates a cell.
func NewCell[Msg any](name string, element widget.Element[Msg]) Cell[Msg] {
	return Cell[Msg]{Name: name, Element: element}
}

// Header lays out its cells left to right and tracks divider drags.
type Header[Msg any] struct {
	state          *State
	cells          []Cell[Msg]
	leftMargin     *widget.Space[Msg]
	rightMargin    *widget.Space[Msg]
	spacing        int
	leeway         int
	minWidth       int
	onResize       func(ResizeEvent) Msg
	notifyFinished bool
	width          layout.Length
	height         layout.Length
}

// New creates a header over cells. state carries the drag state between
// rebuilds; a nil state gives the header a private one that is lost on the
// next rebuild.
func New[Msg any](state *State, cells ...Cell[Msg]) *Header[Msg] {
	if state == nil {
		state = NewState()
	}
	return &Header[Msg]{
		state:    state,
		cells:    cells,
		minWidth: MinColumnWidth,
		width:    layout.Fill(),
		height:   layout.Fill(),
	}
}

// LeftMargin adds a non-interactive leading spacer.
func (h *Header[Msg]) LeftMargin(width int) *Header[Msg] {
	h.leftMargin = widget.HorizontalSpace[Msg](width)
	return h
}

// RightMargin adds a non-interactive trailing spacer.
func (h *Header[Msg]) RightMargin(width int) *Header[Msg] {
	h.rightMargin = widget.HorizontalSpace[Msg](width)
	return h
}

// Spacing sets the gap between cells.
func (h *Header[Msg]) Spacing(spacing int) *Header[Msg] {
	h.spacing = spacing
	return h
}

// OnResize enables divider dragging. leeway is the distance in cells, exclusive,
// within which the cursor counts as over a divider.
func (h *Header[Msg]) OnResize(leeway int, fn func(ResizeEvent) Msg) *Header[Msg] {
	h.leeway = leeway
	h.onResize = fn
	return h
}

// MinWidth sets the floor applied to both columns of a drag. Defaults to
// MinColumnWidth.
func (h *Header[Msg]) MinWidth(cells int) *Header[Msg] {
	h.minWidth = max(cells, 0)
	return h
}

// NotifyFinished publishes a Finished event when a drag ends.
func (h *Header[Msg]) NotifyFinished() *Header[Msg] {
	h.notifyFinished = true
	return h
}

// Width sets the header width. Defaults to Fill.
func (h *Header[Msg]) Width(width layout.Length) *Header[Msg] {
	h.width = width
	return h
}

// Height sets the header height. Defaults to Fill.
func (h *Header[Msg]) Height(height layout.Length) *Header[Msg] {
	h.height = height
	return h
}

// State returns the drag state the header reads and writes.
func (h *Header[Msg]) State() *State {
	return h.state
}

func (h *Header[Msg]) children() []widget.Element[Msg] {
	children := make([]widget.Element[Msg], 0, len(h.cells)+2)
	if h.leftMargin != nil {
		children = append(children, h.leftMargin)
	}
	for _, cell := range h.cells {
		children = append(children, cell.Element)
	}
	if h.rightMargin != nil {
		children = append(children, h.rightMargin)
	}
	return children
}

// columnBounds returns the laid-out bounds of the cells, margins excluded.
func (h *Header[Msg]) columnBounds(node *layout.Node) []layout.Rectangle {
	start := 0
	if h.leftMargin != nil {
		start = 1
	}
	bounds := make([]layout.Rectangle, 0, len(h.cells))
	for i := range h.cells {
		child := node.Child(start + i)
		if child == nil {
			break
		}
		bounds = append(bounds, child.Bounds())
	}
	return bounds
}

func (h *Header[Msg]) Size() (layout.Length, layout.Length) {
	return h.width, h.height
}

func (h *Header[Msg]) Layout(limits layout.Limits) *layout.Node {
	children := h.children()
	items := make([]layout.Item, len(children))
	for i, child := range children {
		items[i] = child
	}
	return layout.Flex{
		Axis:    layout.Horizontal,
		Width:   h.width,
		Height:  h.height,
		Spacing: h.spacing,
	}.Resolve(limits, items)
}

func (h *Header[Msg]) Draw(ctx widget.DrawContext, node *layout.Node, cursor layout.Point) {
	widget.DrawChildren(h.children(), ctx, node, cursor)
}

func (h *Header[Msg]) OnEvent(event widget.Event, node *layout.Node, cursor layout.Point, shell *widget.Shell[Msg]) widget.Status {
	if h.onResize != nil && h.handleResize(event, node, cursor, shell) {
		return widget.Captured
	}
	return widget.Forward(h.children(), event, node, cursor, shell)
}

// handleResize runs the divider state machine and reports whether the event
// was captured.
func (h *Header[Msg]) handleResize(event widget.Event, node *layout.Node, cursor layout.Point, shell *widget.Shell[Msg]) bool {
	st := h.state
	if !st.hovered && !st.dragging && !node.Bounds().Contains(cursor) {
		st.hovered = false
		return false
	}

	columns := h.columnBounds(node)

	switch event.Kind {
	case widget.EventCursorMoved:
		if st.dragging {
			h.publishResize(cursor.X, shell)
			return true
		}
		h.scanDividers(cursor.X, columns)

	case widget.EventButtonPressed:
		if event.Button != widget.ButtonLeft || !st.hovered {
			return false
		}
		// The hover flag only tracks x, so a press below the header must not
		// pick it up.
		if !st.dragging && !node.Bounds().Contains(cursor) {
			return false
		}
		idx := st.resizingIdx
		if idx < 0 || idx+1 >= len(columns) {
			return false
		}
		st.startDrag(Drag{
			Divider:         idx,
			StartCursorX:    cursor.X,
			StartLeftWidth:  columns[idx].Width,
			StartRightWidth: columns[idx+1].Width,
		})
		return true

	case widget.EventButtonReleased:
		if event.Button != widget.ButtonLeft || !st.dragging {
			return false
		}
		st.endDrag()
		if h.notifyFinished {
			shell.Publish(h.onResize(ResizeEvent{Kind: Finished}))
		}
		return true
	}

	return false
}

// scanDividers clears the hover flag and tests every divider in ascending
// order. A later match overwrites an earlier one.
func (h *Header[Msg]) scanDividers(cursorX int, columns []layout.Rectangle) {
	st := h.state
	st.hovered = false
	for i := 0; i+1 < len(columns); i++ {
		divider := columns[i].X + columns[i].Width
		if abs(cursorX-divider) < h.leeway {
			st.hovered = true
			st.resizingIdx = i
		}
	}
}

func (h *Header[Msg]) publishResize(cursorX int, shell *widget.Shell[Msg]) {
	d := h.state.drag
	if d.Divider < 0 || d.Divider+1 >= len(h.cells) {
		return
	}
	left, right := d.Widths(cursorX, h.minWidth)
	shell.Publish(h.onResize(ResizeEvent{
		Kind:       ResizeColumn,
		LeftName:   h.cells[d.Divider].Name,
		LeftWidth:  toWidth(left),
		RightName:  h.cells[d.Divider+1].Name,
		RightWidth: toWidth(right),
	}))
}

func (h *Header[Msg]) Interaction(node *layout.Node, cursor layout.Point) widget.Interaction {
	if node.Bounds().Contains(cursor) {
		return widget.InteractionPointer
	}
	return widget.InteractionIdle
}

func toWidth(v int) uint16 {
	return uint16(clamp(v, 0, 0xffff))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
