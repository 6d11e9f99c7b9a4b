package widget

import "github.com/alexisbeaulieu97/txview/internal/ui/layout"

// EventKind enumerates the pointer events widgets react to.
type EventKind int

const (
	EventCursorMoved EventKind = iota
	EventButtonPressed
	EventButtonReleased
	EventWheelScrolled
)

// Button identifies a mouse button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Event is one pointer event delivered to a widget tree.
type Event struct {
	Kind     EventKind
	Button   Button
	Position layout.Point
	// ScrollDelta is positive when scrolling down.
	ScrollDelta int
}

// CursorMoved builds a motion event.
func CursorMoved(p layout.Point) Event {
	return Event{Kind: EventCursorMoved, Position: p}
}

// ButtonPressed builds a press event.
func ButtonPressed(b Button, p layout.Point) Event {
	return Event{Kind: EventButtonPressed, Button: b, Position: p}
}

// ButtonReleased builds a release event.
func ButtonReleased(b Button, p layout.Point) Event {
	return Event{Kind: EventButtonReleased, Button: b, Position: p}
}

// WheelScrolled builds a scroll event.
func WheelScrolled(delta int, p layout.Point) Event {
	return Event{Kind: EventWheelScrolled, Position: p, ScrollDelta: delta}
}

// IsLeftPress reports whether e is a left-button press.
func (e Event) IsLeftPress() bool {
	return e.Kind == EventButtonPressed && e.Button == ButtonLeft
}

// IsLeftRelease reports whether e is a left-button release.
func (e Event) IsLeftRelease() bool {
	return e.Kind == EventButtonReleased && e.Button == ButtonLeft
}

// Status tells the caller whether an event was consumed.
type Status int

const (
	Ignored Status = iota
	Captured
)

// Merge folds two statuses; Captured wins.
func (s Status) Merge(other Status) Status {
	if s == Captured || other == Captured {
		return Captured
	}
	return Ignored
}

func (s Status) String() string {
	if s == Captured {
		return "captured"
	}
	return "ignored"
}

// Interaction is the pointer affordance a widget asks for.
type Interaction int

const (
	InteractionIdle Interaction = iota
	InteractionPointer
)

// Max returns the stronger of two interactions.
func (i Interaction) Max(other Interaction) Interaction {
	if other > i {
		return other
	}
	return i
}

// Shell collects messages published while handling one event.
type Shell[Msg any] struct {
	messages []Msg
}

// Publish queues msg for the caller.
func (s *Shell[Msg]) Publish(msg Msg) {
	s.messages = append(s.messages, msg)
}

// Messages returns the published messages in publish order.
func (s *Shell[Msg]) Messages() []Msg {
	return s.messages
}
