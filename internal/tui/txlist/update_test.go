package txlist

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/txview/internal/ledger"
	"github.com/alexisbeaulieu97/txview/internal/ui/columns"
	"github.com/alexisbeaulieu97/txview/internal/ui/header"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func mouseAt(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

// runCmd executes cmd and flattens batches into their messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, runCmd(c)...)
	}
	return out
}

func widthOf(t *testing.T, m Model, key string) columns.Width {
	t.Helper()
	col, ok := m.Columns().Get(key)
	require.True(t, ok)
	return col.Width
}

func TestUpdateQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyCtrlC}} {
		m := newTestModel(t, nil)
		_, cmd := send(t, m, msg)
		require.NotNil(t, cmd)
		require.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestUpdateNavigationKeys(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, keyRunes("j"))
	require.Equal(t, 1, m.Cursor())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 2, m.Cursor())

	m, _ = send(t, m, keyRunes("k"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, m.Cursor())
}

func TestUpdateEnterTogglesDetails(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	id, ok := m.Expanded()
	require.True(t, ok)
	require.Equal(t, ledger.Sample()[0].ID, id)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	_, ok = m.Expanded()
	require.False(t, ok)
}

func TestUpdateSortKeys(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, keyRunes("s"))
	key, desc := m.Sort()
	require.Equal(t, ledger.KeyAmount, key)
	require.False(t, desc)

	m, _ = send(t, m, keyRunes("S"))
	_, desc = m.Sort()
	require.True(t, desc)

	// memo is the last visible column, so the next press wraps to time.
	m, _ = send(t, m, keyRunes("s"))
	m, _ = send(t, m, keyRunes("s"))
	key, _ = m.Sort()
	require.Equal(t, ledger.KeyTime, key)
}

func TestUpdateToggleColumnPersists(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store)

	m, cmd := send(t, m, keyRunes("4"))
	col, _ := m.Columns().Get(ledger.KeyID)
	require.False(t, col.Hidden)

	status, isErr := m.Status()
	require.Equal(t, "ID shown", status)
	require.False(t, isErr)

	msgs := runCmd(cmd)
	require.Equal(t, []tea.Msg{LayoutSavedMsg{}}, msgs)
	require.Len(t, store.saved, 1)

	saved, ok := store.saved[0].Get(ledger.KeyID)
	require.True(t, ok)
	require.False(t, saved.Hidden)
	require.NotSame(t, m.Columns(), store.saved[0])
}

func TestUpdateKeepsLastVisibleColumn(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store)

	m, _ = send(t, m, keyRunes("1"))
	m, _ = send(t, m, keyRunes("2"))
	require.Len(t, m.Columns().Visible(), 1)

	m, cmd := send(t, m, keyRunes("3"))
	require.Nil(t, cmd)
	require.Len(t, m.Columns().Visible(), 1)

	status, isErr := m.Status()
	require.Equal(t, "at least one column must stay visible", status)
	require.True(t, isErr)
}

func TestUpdateIgnoresUnknownColumnIndex(t *testing.T) {
	m := newTestModel(t, &fakeStore{})
	m, cmd := send(t, m, keyRunes("9"))
	require.Nil(t, cmd)
	require.Len(t, m.Columns().Visible(), 3)
}

func TestUpdateResetLayout(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store)

	require.NoError(t, m.Columns().Resize(ledger.KeyTime, 25, ledger.KeyAmount, 5))
	m, _ = send(t, m, keyRunes("1"))

	m, cmd := send(t, m, keyRunes("r"))
	require.NotNil(t, cmd)
	require.Equal(t, columns.Fixed(17), widthOf(t, m, ledger.KeyTime))
	require.Equal(t, columns.Fixed(13), widthOf(t, m, ledger.KeyAmount))
	require.Len(t, m.Columns().Visible(), 3)
	require.Equal(t, header.PhaseIdle, m.HeaderState().Phase())
}

func TestUpdateHelpToggle(t *testing.T) {
	m := newTestModel(t, nil)
	short := m.footerHeight()

	m, _ = send(t, m, keyRunes("?"))
	require.True(t, m.help.ShowAll)
	require.Greater(t, m.footerHeight(), short)
}

func TestUpdateLayoutSaved(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, LayoutSavedMsg{})
	status, isErr := m.Status()
	require.Equal(t, "layout saved", status)
	require.False(t, isErr)

	m, _ = send(t, m, LayoutSavedMsg{Err: errors.New("disk full")})
	status, isErr = m.Status()
	require.Contains(t, status, "disk full")
	require.True(t, isErr)
}

func TestUpdateWithoutStoreDoesNotPersist(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := send(t, m, keyRunes("4"))
	require.Nil(t, cmd)
}

func TestApplyResizeUnknownColumn(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := send(t, m, ColumnResizedMsg{Event: header.ResizeEvent{
		Kind:       header.ResizeColumn,
		LeftName:   "nope",
		LeftWidth:  10,
		RightName:  ledger.KeyAmount,
		RightWidth: 10,
	}})
	require.Nil(t, cmd)
	require.Equal(t, columns.Fixed(13), widthOf(t, m, ledger.KeyAmount))
}

// The time column starts at x=2 (margin plus spacing) with width 17, so its
// divider sits at x=19 on the header row, screen y=1.
func TestMouseDragResizesColumns(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store)

	m, cmd := send(t, m, mouseAt(tea.MouseActionMotion, tea.MouseButtonNone, 19, 1))
	require.Nil(t, cmd)
	require.Equal(t, header.PhaseHovering, m.HeaderState().Phase())

	m, cmd = send(t, m, mouseAt(tea.MouseActionPress, tea.MouseButtonLeft, 19, 1))
	require.Nil(t, cmd)
	require.Equal(t, header.PhaseDragging, m.HeaderState().Phase())

	drag, ok := m.HeaderState().Drag()
	require.True(t, ok)
	require.Equal(t, header.Drag{Divider: 0, StartCursorX: 19, StartLeftWidth: 17, StartRightWidth: 13}, drag)

	m, cmd = send(t, m, mouseAt(tea.MouseActionMotion, tea.MouseButtonLeft, 23, 1))
	require.Nil(t, cmd)
	require.Equal(t, columns.Fixed(21), widthOf(t, m, ledger.KeyTime))
	require.Equal(t, columns.Fixed(9), widthOf(t, m, ledger.KeyAmount))

	// Dragging far right stops at the minimum width.
	m, _ = send(t, m, mouseAt(tea.MouseActionMotion, tea.MouseButtonLeft, 90, 5))
	require.Equal(t, columns.Fixed(26), widthOf(t, m, ledger.KeyTime))
	require.Equal(t, columns.Fixed(4), widthOf(t, m, ledger.KeyAmount))
	require.Empty(t, store.saved)

	m, cmd = send(t, m, mouseAt(tea.MouseActionRelease, tea.MouseButtonNone, 90, 5))
	require.Equal(t, header.PhaseIdle, m.HeaderState().Phase())
	require.Equal(t, []tea.Msg{LayoutSavedMsg{}}, runCmd(cmd))
	require.Len(t, store.saved, 1)

	saved, _ := store.saved[0].Get(ledger.KeyTime)
	require.Equal(t, columns.Fixed(26), saved.Width)
}

func TestMouseHeaderPressSorts(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, mouseAt(tea.MouseActionPress, tea.MouseButtonLeft, 10, 1))
	key, desc := m.Sort()
	require.Equal(t, ledger.KeyTime, key)
	require.False(t, desc)

	m, _ = send(t, m, mouseAt(tea.MouseActionPress, tea.MouseButtonLeft, 25, 1))
	key, desc = m.Sort()
	require.Equal(t, ledger.KeyAmount, key)
	require.False(t, desc)
}

func TestMouseRowPress(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, mouseAt(tea.MouseActionPress, tea.MouseButtonLeft, 40, 3))
	require.Equal(t, 1, m.Cursor())
	_, ok := m.Expanded()
	require.False(t, ok)

	m, _ = send(t, m, mouseAt(tea.MouseActionPress, tea.MouseButtonLeft, 40, 3))
	id, ok := m.Expanded()
	require.True(t, ok)
	require.Equal(t, m.Transactions()[1].ID, id)
}

func TestMouseRightPressIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, mouseAt(tea.MouseActionPress, tea.MouseButtonRight, 40, 3))
	require.Equal(t, 0, m.Cursor())
}

func TestMouseWheelScrolls(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, mouseAt(tea.MouseActionPress, tea.MouseButtonWheelDown, 40, 5))
	require.Equal(t, 1, m.scrollOffset)

	// The first visible row is now the second transaction.
	m, _ = send(t, m, mouseAt(tea.MouseActionPress, tea.MouseButtonLeft, 40, 2))
	require.Equal(t, 1, m.Cursor())

	m, _ = send(t, m, mouseAt(tea.MouseActionPress, tea.MouseButtonWheelUp, 40, 5))
	require.Equal(t, 0, m.scrollOffset)
}

func TestToEvent(t *testing.T) {
	e, ok := toEvent(mouseAt(tea.MouseActionRelease, tea.MouseButtonNone, 4, 3))
	require.True(t, ok)
	require.True(t, e.IsLeftRelease())
	require.Equal(t, 2, e.Position.Y)

	_, ok = toEvent(mouseAt(tea.MouseActionPress, tea.MouseButtonBackward, 4, 3))
	require.False(t, ok)
}

// The hover flag set on the header survives moving straight down into the
// body, so the press there must only select the row.
func TestRowPressBelowHoveredDividerSelectsOnly(t *testing.T) {
	m := newTestModel(t, &fakeStore{})

	m, _ = send(t, m, mouseAt(tea.MouseActionMotion, tea.MouseButtonNone, 19, 1))
	require.Equal(t, header.PhaseHovering, m.HeaderState().Phase())
	m, _ = send(t, m, mouseAt(tea.MouseActionMotion, tea.MouseButtonNone, 19, 3))

	m, _ = send(t, m, mouseAt(tea.MouseActionPress, tea.MouseButtonLeft, 19, 3))
	require.Equal(t, 1, m.Cursor())
	require.NotEqual(t, header.PhaseDragging, m.HeaderState().Phase())

	m, _ = send(t, m, mouseAt(tea.MouseActionMotion, tea.MouseButtonLeft, 25, 3))
	require.Equal(t, columns.Fixed(17), widthOf(t, m, ledger.KeyTime))
	require.Equal(t, columns.Fixed(13), widthOf(t, m, ledger.KeyAmount))
}
