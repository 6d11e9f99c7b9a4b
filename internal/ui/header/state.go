package header

// MinColumnWidth is the default floor for both columns of a drag.
const MinColumnWidth = 30

// Phase is the coarse state of the divider drag machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseHovering
	PhaseDragging
)

func (p Phase) String() string {
	switch p {
	case PhaseHovering:
		return "hovering"
	case PhaseDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// Drag is the origin of an active divider drag.
type Drag struct {
	Divider         int
	StartCursorX    int
	StartLeftWidth  int
	StartRightWidth int
}

// Widths returns the left and right column widths for the cursor at x.
//
// Both sides are clamped independently to [minWidth, L+R-minWidth]. When both
// clamps saturate the pair no longer sums to L+R. When L+R is below twice the
// minimum the range is inverted and both sides resolve to its upper bound.
func (d Drag) Widths(cursorX, minWidth int) (left, right int) {
	delta := cursorX - d.StartCursorX
	maxWidth := d.StartLeftWidth + d.StartRightWidth - minWidth
	left = clamp(d.StartLeftWidth+delta, minWidth, maxWidth)
	right = clamp(d.StartRightWidth-delta, minWidth, maxWidth)
	return left, right
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// State is the drag state of one header. The owner keeps it across rebuilds
// and hands the same pointer to every rebuilt Header; it must not be shared
// between two headers.
type State struct {
	hovered     bool
	resizingIdx int
	dragging    bool
	drag        Drag
}

// NewState returns an idle state.
func NewState() *State {
	return &State{}
}

// Phase reports the current phase.
func (s *State) Phase() Phase {
	switch {
	case s.dragging:
		return PhaseDragging
	case s.hovered:
		return PhaseHovering
	default:
		return PhaseIdle
	}
}

// Hovered reports whether the cursor is over a divider.
func (s *State) Hovered() bool {
	return s.hovered
}

// ResizingIndex returns the divider last found under the cursor. It is not
// cleared when the hover flag drops.
func (s *State) ResizingIndex() int {
	return s.resizingIdx
}

// Drag returns the active drag origin.
func (s *State) Drag() (Drag, bool) {
	if !s.dragging {
		return Drag{}, false
	}
	return s.drag, true
}

// Reset returns the state to idle.
func (s *State) Reset() {
	*s = State{}
}

func (s *State) startDrag(d Drag) {
	s.dragging = true
	s.drag = d
}

func (s *State) endDrag() {
	s.dragging = false
	s.drag = Drag{}
}
