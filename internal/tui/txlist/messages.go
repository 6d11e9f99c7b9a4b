package txlist

import (
	"github.com/alexisbeaulieu97/txview/internal/ui/header"
)

// Table messages are published by the widget tree while it handles a mouse
// event. Update applies them before it returns.

// SortMsg requests sorting by a column. Requesting the current sort column
// reverses the direction.
type SortMsg struct {
	Key string
}

// RowPressedMsg reports a press on the transaction at Index.
type RowPressedMsg struct {
	Index int
}

// ColumnResizedMsg carries a resize event from the table header.
type ColumnResizedMsg struct {
	Event header.ResizeEvent
}

// LayoutSavedMsg reports the result of persisting the column layout.
type LayoutSavedMsg struct {
	Err error
}
