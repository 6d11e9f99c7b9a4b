package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/txview/internal/ui/layout"
	"github.com/alexisbeaulieu97/txview/internal/ui/widget"
)

var names = []string{"time", "amount", "memo", "status"}

// probe records the events it receives.
type probe struct {
	width   int
	capture bool
	events  []widget.Event
}

func (p *probe) Size() (layout.Length, layout.Length) {
	return layout.Fixed(p.width), layout.Fixed(1)
}

func (p *probe) Layout(limits layout.Limits) *layout.Node {
	return layout.NewNode(limits.Resolve(layout.Fixed(p.width), layout.Fixed(1), layout.Size{}))
}

func (p *probe) Draw(widget.DrawContext, *layout.Node, layout.Point) {}

func (p *probe) OnEvent(event widget.Event, _ *layout.Node, _ layout.Point, _ *widget.Shell[ResizeEvent]) widget.Status {
	p.events = append(p.events, event)
	if p.capture {
		return widget.Captured
	}
	return widget.Ignored
}

func (p *probe) Interaction(*layout.Node, layout.Point) widget.Interaction {
	return widget.InteractionIdle
}

func identity(e ResizeEvent) ResizeEvent { return e }

func buildHeader(st *State, widths ...int) (*Header[ResizeEvent], []*probe) {
	probes := make([]*probe, len(widths))
	cells := make([]Cell[ResizeEvent], len(widths))
	for i, w := range widths {
		probes[i] = &probe{width: w}
		cells[i] = NewCell[ResizeEvent](names[i], probes[i])
	}
	return New(st, cells...).OnResize(3, identity), probes
}

func dispatch(h *Header[ResizeEvent], event widget.Event) (widget.Status, []ResizeEvent) {
	return widget.NewSurface[ResizeEvent](h, layout.Size{Width: 1000, Height: 1}).Dispatch(event)
}

func at(x int) layout.Point { return layout.Point{X: x} }

func TestLayoutPlacesColumnsLeftToRight(t *testing.T) {
	h, _ := buildHeader(NewState(), 100, 200, 300)
	node := h.Layout(layout.NewLimits(layout.Size{}, layout.Size{Width: 1000, Height: 1}))

	bounds := h.columnBounds(node)
	require.Len(t, bounds, 3)
	assert.Equal(t, 0, bounds[0].X)
	assert.Equal(t, 100, bounds[1].X)
	assert.Equal(t, 300, bounds[2].X)
}

func TestHoverPressDragRelease(t *testing.T) {
	st := NewState()
	h, _ := buildHeader(st, 100, 200, 300)

	status, msgs := dispatch(h, widget.CursorMoved(at(100)))
	assert.Equal(t, widget.Ignored, status)
	assert.Empty(t, msgs)
	assert.Equal(t, PhaseHovering, st.Phase())
	assert.Equal(t, 0, st.ResizingIndex())

	status, msgs = dispatch(h, widget.ButtonPressed(widget.ButtonLeft, at(100)))
	assert.Equal(t, widget.Captured, status)
	assert.Empty(t, msgs)
	drag, ok := st.Drag()
	require.True(t, ok)
	assert.Equal(t, Drag{Divider: 0, StartCursorX: 100, StartLeftWidth: 100, StartRightWidth: 200}, drag)

	status, msgs = dispatch(h, widget.CursorMoved(at(150)))
	assert.Equal(t, widget.Captured, status)
	require.Len(t, msgs, 1)
	assert.Equal(t, ResizeEvent{
		Kind:       ResizeColumn,
		LeftName:   "time",
		LeftWidth:  150,
		RightName:  "amount",
		RightWidth: 150,
	}, msgs[0])

	status, msgs = dispatch(h, widget.ButtonReleased(widget.ButtonLeft, at(150)))
	assert.Equal(t, widget.Captured, status)
	assert.Empty(t, msgs)
	_, ok = st.Drag()
	assert.False(t, ok)
}

func TestDragClampsToMinimumWidth(t *testing.T) {
	st := NewState()
	h, _ := buildHeader(st, 100, 200, 300)

	dispatch(h, widget.CursorMoved(at(100)))
	dispatch(h, widget.ButtonPressed(widget.ButtonLeft, at(100)))
	_, msgs := dispatch(h, widget.CursorMoved(at(10)))

	require.Len(t, msgs, 1)
	assert.Equal(t, uint16(30), msgs[0].LeftWidth)
	assert.Equal(t, uint16(270), msgs[0].RightWidth)
}

func TestDragWidthsStayInRange(t *testing.T) {
	d := Drag{Divider: 0, StartCursorX: 100, StartLeftWidth: 100, StartRightWidth: 200}

	for x := -500; x <= 1000; x += 7 {
		left, right := d.Widths(x, MinColumnWidth)
		assert.GreaterOrEqual(t, left, MinColumnWidth)
		assert.GreaterOrEqual(t, right, MinColumnWidth)
		assert.LessOrEqual(t, left, 270)
		assert.LessOrEqual(t, right, 270)
		assert.Equal(t, 300, left+right, "x=%d", x)
	}
}

func TestDragWidthsAreDeterministic(t *testing.T) {
	d := Drag{StartCursorX: 40, StartLeftWidth: 80, StartRightWidth: 90}

	l1, r1 := d.Widths(57, MinColumnWidth)
	l2, r2 := d.Widths(57, MinColumnWidth)
	assert.Equal(t, l1, l2)
	assert.Equal(t, r1, r2)
}

func TestDegenerateDragCollapsesToUpperBound(t *testing.T) {
	d := Drag{StartCursorX: 0, StartLeftWidth: 20, StartRightWidth: 20}

	for _, x := range []int{-50, 0, 3, 50} {
		left, right := d.Widths(x, MinColumnWidth)
		assert.Equal(t, 10, left)
		assert.Equal(t, 10, right)
	}
}

func TestMinWidthOverridesDefaultFloor(t *testing.T) {
	st := NewState()
	h, _ := buildHeader(st, 20, 13)
	h.MinWidth(4)

	dispatch(h, widget.CursorMoved(at(20)))
	dispatch(h, widget.ButtonPressed(widget.ButtonLeft, at(20)))
	_, msgs := dispatch(h, widget.CursorMoved(at(40)))

	require.Len(t, msgs, 1)
	assert.Equal(t, uint16(29), msgs[0].LeftWidth)
	assert.Equal(t, uint16(4), msgs[0].RightWidth)
}

func TestNegativeWidthsFloorAtZero(t *testing.T) {
	assert.Equal(t, uint16(0), toWidth(-12))
	assert.Equal(t, uint16(0xffff), toWidth(1<<20))
}

func TestOverlappingDividersLastMatchWins(t *testing.T) {
	st := NewState()
	h, _ := buildHeader(st, 2, 2, 100)

	dispatch(h, widget.CursorMoved(at(3)))

	assert.True(t, st.Hovered())
	assert.Equal(t, 1, st.ResizingIndex())
}

func TestHoverClearsButKeepsIndex(t *testing.T) {
	st := NewState()
	h, _ := buildHeader(st, 100, 200, 300)

	dispatch(h, widget.CursorMoved(at(299)))
	require.Equal(t, 1, st.ResizingIndex())

	dispatch(h, widget.CursorMoved(at(200)))
	assert.False(t, st.Hovered())
	assert.Equal(t, 1, st.ResizingIndex())
}

func TestLeewayIsExclusive(t *testing.T) {
	st := NewState()
	h, _ := buildHeader(st, 100, 200, 300)

	dispatch(h, widget.CursorMoved(at(103)))
	assert.False(t, st.Hovered())

	dispatch(h, widget.CursorMoved(at(98)))
	assert.True(t, st.Hovered())
}

func TestLastColumnEdgeIsNotADivider(t *testing.T) {
	st := NewState()
	h, _ := buildHeader(st, 100, 200, 300)

	dispatch(h, widget.CursorMoved(at(600)))
	assert.False(t, st.Hovered())
}

func TestMarginsShiftDividers(t *testing.T) {
	st := NewState()
	h, _ := buildHeader(st, 100, 200)
	h.LeftMargin(5).RightMargin(5).Spacing(1)

	dispatch(h, widget.CursorMoved(at(105)))
	assert.True(t, st.Hovered())
	assert.Equal(t, 0, st.ResizingIndex())

	dispatch(h, widget.CursorMoved(at(306)))
	assert.False(t, st.Hovered())
}

func TestPressWithoutHoverIsForwarded(t *testing.T) {
	st := NewState()
	h, probes := buildHeader(st, 100, 200, 300)
	probes[1].capture = true

	status, msgs := dispatch(h, widget.ButtonPressed(widget.ButtonLeft, at(150)))

	assert.Equal(t, widget.Captured, status)
	assert.Empty(t, msgs)
	assert.Equal(t, PhaseIdle, st.Phase())
	for _, p := range probes {
		require.Len(t, p.events, 1)
		assert.Equal(t, widget.EventButtonPressed, p.events[0].Kind)
	}
}

func TestReleaseWithoutDragIsIgnored(t *testing.T) {
	st := NewState()
	h, probes := buildHeader(st, 100, 200)

	status, msgs := dispatch(h, widget.ButtonReleased(widget.ButtonLeft, at(50)))

	assert.Equal(t, widget.Ignored, status)
	assert.Empty(t, msgs)
	assert.Len(t, probes[0].events, 1)
}

func TestRightPressDoesNotStartDrag(t *testing.T) {
	st := NewState()
	h, _ := buildHeader(st, 100, 200)

	dispatch(h, widget.CursorMoved(at(100)))
	status, _ := dispatch(h, widget.ButtonPressed(widget.ButtonRight, at(100)))

	assert.Equal(t, widget.Ignored, status)
	assert.Equal(t, PhaseHovering, st.Phase())
}

func TestEventsOutsideBoundsReachChildren(t *testing.T) {
	st := NewState()
	h, probes := buildHeader(st, 100, 200)

	status, msgs := dispatch(h, widget.CursorMoved(layout.Point{X: 100, Y: 5}))

	assert.Equal(t, widget.Ignored, status)
	assert.Empty(t, msgs)
	assert.False(t, st.Hovered())
	assert.Len(t, probes[0].events, 1)
	assert.Len(t, probes[1].events, 1)
}

func TestDragContinuesOutsideBounds(t *testing.T) {
	st := NewState()
	h, _ := buildHeader(st, 100, 200, 300)

	dispatch(h, widget.CursorMoved(at(100)))
	dispatch(h, widget.ButtonPressed(widget.ButtonLeft, at(100)))

	status, msgs := dispatch(h, widget.CursorMoved(layout.Point{X: 120, Y: 8}))
	assert.Equal(t, widget.Captured, status)
	require.Len(t, msgs, 1)
	assert.Equal(t, uint16(120), msgs[0].LeftWidth)

	status, _ = dispatch(h, widget.ButtonReleased(widget.ButtonLeft, layout.Point{X: 120, Y: 8}))
	assert.Equal(t, widget.Captured, status)
	assert.NotEqual(t, PhaseDragging, st.Phase())
}

func TestStaleIndexAfterRebuildIsNoOp(t *testing.T) {
	st := NewState()
	h, _ := buildHeader(st, 100, 200, 300)
	dispatch(h, widget.CursorMoved(at(300)))
	dispatch(h, widget.ButtonPressed(widget.ButtonLeft, at(300)))
	drag, ok := st.Drag()
	require.True(t, ok)
	require.Equal(t, 1, drag.Divider)

	// The owner hid a column mid-drag.
	rebuilt, _ := buildHeader(st, 100, 200)
	status, msgs := dispatch(rebuilt, widget.CursorMoved(at(320)))

	assert.Equal(t, widget.Captured, status)
	assert.Empty(t, msgs)
}

func TestStaleHoverIndexDoesNotStartDrag(t *testing.T) {
	st := NewState()
	h, _ := buildHeader(st, 100, 200, 300)
	dispatch(h, widget.CursorMoved(at(300)))
	require.Equal(t, 1, st.ResizingIndex())

	rebuilt, _ := buildHeader(st, 100, 200)
	status, _ := dispatch(rebuilt, widget.ButtonPressed(widget.ButtonLeft, at(300)))

	assert.Equal(t, widget.Ignored, status)
	assert.NotEqual(t, PhaseDragging, st.Phase())
}

func TestFinishedIsOptIn(t *testing.T) {
	run := func(h *Header[ResizeEvent]) []ResizeEvent {
		dispatch(h, widget.CursorMoved(at(100)))
		dispatch(h, widget.ButtonPressed(widget.ButtonLeft, at(100)))
		_, msgs := dispatch(h, widget.ButtonReleased(widget.ButtonLeft, at(100)))
		return msgs
	}

	plain, _ := buildHeader(NewState(), 100, 200)
	assert.Empty(t, run(plain))

	notifying, _ := buildHeader(NewState(), 100, 200)
	msgs := run(notifying.NotifyFinished())
	require.Len(t, msgs, 1)
	assert.Equal(t, Finished, msgs[0].Kind)
}

func TestWithoutOnResizeNothingHovers(t *testing.T) {
	st := NewState()
	h := New(st, NewCell[ResizeEvent]("time", &probe{width: 100}), NewCell[ResizeEvent]("amount", &probe{width: 100}))

	dispatch(h, widget.CursorMoved(at(100)))
	status, _ := dispatch(h, widget.ButtonPressed(widget.ButtonLeft, at(100)))

	assert.Equal(t, widget.Ignored, status)
	assert.Equal(t, PhaseIdle, st.Phase())
}

func TestInteraction(t *testing.T) {
	h, _ := buildHeader(NewState(), 100, 200)
	surface := widget.NewSurface[ResizeEvent](h, layout.Size{Width: 1000, Height: 1})

	assert.Equal(t, widget.InteractionPointer, surface.Interaction(at(42)))
	assert.Equal(t, widget.InteractionIdle, surface.Interaction(layout.Point{X: 42, Y: 3}))
}

func TestNilStateGetsPrivateState(t *testing.T) {
	h := New[ResizeEvent](nil)

	require.NotNil(t, h.State())
	assert.Equal(t, PhaseIdle, h.State().Phase())
}

func TestResetReturnsToIdle(t *testing.T) {
	st := NewState()
	h, _ := buildHeader(st, 100, 200)
	dispatch(h, widget.CursorMoved(at(100)))
	dispatch(h, widget.ButtonPressed(widget.ButtonLeft, at(100)))

	st.Reset()

	assert.Equal(t, PhaseIdle, st.Phase())
	assert.Equal(t, "idle", st.Phase().String())
}

func TestPressBelowHeaderDoesNotStartDrag(t *testing.T) {
	st := NewState()
	h, probes := buildHeader(st, 100, 200, 300)
	below := layout.Point{X: 100, Y: 5}

	dispatch(h, widget.CursorMoved(at(100)))
	dispatch(h, widget.CursorMoved(below))
	require.Equal(t, PhaseHovering, st.Phase())

	status, msgs := dispatch(h, widget.ButtonPressed(widget.ButtonLeft, below))

	assert.Equal(t, widget.Ignored, status)
	assert.Empty(t, msgs)
	assert.Equal(t, PhaseHovering, st.Phase())
	_, ok := st.Drag()
	assert.False(t, ok)
	assert.Len(t, probes[0].events, 3)
}
