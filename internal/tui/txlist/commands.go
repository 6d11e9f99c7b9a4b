package txlist

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/txview/internal/ui/columns"
)

// LayoutStore persists column layouts.
type LayoutStore interface {
	SaveLayout(set *columns.Set) error
}

// saveLayoutCmd writes set through store off the update loop. set must not be
// shared with the model.
func saveLayoutCmd(store LayoutStore, set *columns.Set) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return LayoutSavedMsg{Err: store.SaveLayout(set)}
	}
}
