package txlist

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/txview/internal/ui/header"
	"github.com/alexisbeaulieu97/txview/internal/ui/layout"
	"github.com/alexisbeaulieu97/txview/internal/ui/widget"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ensureVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case SortMsg, RowPressedMsg, ColumnResizedMsg:
		cmd := m.apply(msg)
		return m, cmd

	case LayoutSavedMsg:
		if msg.Err != nil {
			m.log.Error(msg.Err, "save column layout")
			m.setStatus(fmt.Sprintf("save failed: %v", msg.Err), true)
		} else {
			m.setStatus("layout saved", false)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.MoveCursorUp()

	case key.Matches(msg, m.keys.Down):
		m.MoveCursorDown()

	case key.Matches(msg, m.keys.Details):
		m.toggleDetails(m.cursor)

	case key.Matches(msg, m.keys.Sort):
		m.cycleSort()

	case key.Matches(msg, m.keys.Reverse):
		m.sortDesc = !m.sortDesc
		m.resort()

	case key.Matches(msg, m.keys.Column):
		n, err := strconv.Atoi(msg.String())
		if err != nil {
			return m, nil
		}
		return m, m.toggleColumn(n - 1)

	case key.Matches(msg, m.keys.Reset):
		return m, m.resetLayout()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.ensureVisible()
	}

	return m, nil
}

// handleMouse runs one event through a freshly built widget tree and applies
// whatever it published.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	event, ok := toEvent(msg)
	if !ok {
		return m, nil
	}
	m.mouse = event.Position

	if event.Kind == widget.EventWheelScrolled {
		m.scroll(event.ScrollDelta)
		return m, nil
	}

	_, published := m.surface().Dispatch(event)

	var cmds []tea.Cmd
	for _, p := range published {
		if cmd := m.apply(p); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// toEvent converts a terminal mouse message into table coordinates.
func toEvent(msg tea.MouseMsg) (widget.Event, bool) {
	p := layout.Point{X: msg.X, Y: msg.Y - tableTop}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return widget.WheelScrolled(-1, p), true
	case tea.MouseButtonWheelDown:
		return widget.WheelScrolled(1, p), true
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		return widget.CursorMoved(p), true
	case tea.MouseActionPress:
		b, ok := toButton(msg.Button)
		if !ok {
			return widget.Event{}, false
		}
		return widget.ButtonPressed(b, p), true
	case tea.MouseActionRelease:
		// Some terminals do not report which button was released.
		b, ok := toButton(msg.Button)
		if !ok {
			b = widget.ButtonLeft
		}
		return widget.ButtonReleased(b, p), true
	}

	return widget.Event{}, false
}

func toButton(b tea.MouseButton) (widget.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return widget.ButtonLeft, true
	case tea.MouseButtonMiddle:
		return widget.ButtonMiddle, true
	case tea.MouseButtonRight:
		return widget.ButtonRight, true
	default:
		return widget.ButtonNone, false
	}
}

// apply handles one message published by the widget tree.
func (m *Model) apply(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SortMsg:
		if msg.Key == m.sortKey {
			m.sortDesc = !m.sortDesc
		} else {
			m.sortKey = msg.Key
			m.sortDesc = false
		}
		m.resort()

	case RowPressedMsg:
		if msg.Index < 0 || msg.Index >= len(m.txs) {
			return nil
		}
		if msg.Index == m.cursor {
			m.toggleDetails(msg.Index)
		} else {
			m.cursor = msg.Index
			m.ensureVisible()
		}

	case ColumnResizedMsg:
		return m.applyResize(msg.Event)
	}

	return nil
}

func (m *Model) applyResize(event header.ResizeEvent) tea.Cmd {
	switch event.Kind {
	case header.ResizeColumn:
		if err := m.cols.Resize(event.LeftName, event.LeftWidth, event.RightName, event.RightWidth); err != nil {
			m.log.Error(err, "apply column resize")
			return nil
		}
		m.log.WithFields(map[string]any{
			"left":        event.LeftName,
			"left_width":  event.LeftWidth,
			"right":       event.RightName,
			"right_width": event.RightWidth,
		}).Debug("column resized")
		return nil

	case header.Finished:
		m.log.Info("column drag finished")
		return m.persist()
	}
	return nil
}

// toggleColumn shows or hides the column at index in insertion order. The
// last visible column cannot be hidden.
func (m *Model) toggleColumn(index int) tea.Cmd {
	all := m.cols.Columns()
	if index < 0 || index >= len(all) {
		return nil
	}
	col := all[index]
	if !col.Hidden && len(m.cols.Visible()) == 1 {
		m.setStatus("at least one column must stay visible", true)
		return nil
	}

	hidden, err := m.cols.ToggleHidden(col.Key)
	if err != nil {
		m.log.Error(err, "toggle column")
		return nil
	}
	m.headerState.Reset()

	verb := "shown"
	if hidden {
		verb = "hidden"
	}
	m.log.With("column", col.Key).Info("column " + verb)
	m.setStatus(fmt.Sprintf("%s %s", col.Title, verb), false)
	return m.persist()
}

func (m *Model) resetLayout() tea.Cmd {
	m.cols = m.defaults.Clone()
	m.headerState.Reset()
	m.log.Info("column layout reset")
	m.setStatus("layout reset", false)
	return m.persist()
}

// cycleSort moves the sort to the next visible column.
func (m *Model) cycleSort() {
	visible := m.cols.Visible()
	if len(visible) == 0 {
		return
	}
	next := 0
	for i, col := range visible {
		if col.Key == m.sortKey {
			next = (i + 1) % len(visible)
			break
		}
	}
	m.sortKey = visible[next].Key
	m.sortDesc = false
	m.resort()
}

func (m *Model) persist() tea.Cmd {
	return saveLayoutCmd(m.store, m.cols.Clone())
}
