package txlist

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/txview/internal/ledger"
	"github.com/alexisbeaulieu97/txview/internal/ui/canvas"
	"github.com/alexisbeaulieu97/txview/internal/ui/columns"
	"github.com/alexisbeaulieu97/txview/internal/ui/header"
	"github.com/alexisbeaulieu97/txview/internal/ui/layout"
	"github.com/alexisbeaulieu97/txview/internal/ui/tablerow"
	"github.com/alexisbeaulieu97/txview/internal/ui/theme"
	"github.com/alexisbeaulieu97/txview/internal/ui/widget"
)

type element = widget.Element[tea.Msg]

// View renders the current state
func (m Model) View() string {
	if m.width < minWidth || m.height < minHeight {
		return m.styles.warning.Render(fmt.Sprintf(
			"Terminal too small (%dx%d). Minimum size: %dx%d",
			m.width, m.height, minWidth, minHeight))
	}

	surface := m.surface()
	c := canvas.New(m.width, m.tableHeight())
	surface.Draw(c, m.theme, m.mouse)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(surface),
		c.String(),
		m.renderFooter(),
	)
}

func (m Model) renderTitle(surface *widget.Surface[tea.Msg]) string {
	arrow := "↑"
	if m.sortDesc {
		arrow = "↓"
	}
	parts := []string{
		m.styles.title.Render("txview"),
		m.styles.muted.Render(fmt.Sprintf("%d transactions", len(m.txs))),
		m.styles.muted.Render(fmt.Sprintf("sorted by %s %s", m.sortKey, arrow)),
	}

	switch {
	case m.headerState.Phase() == header.PhaseDragging:
		parts = append(parts, m.styles.hint.Render("resizing"))
	case m.headerState.Phase() == header.PhaseHovering:
		parts = append(parts, m.styles.hint.Render("drag to resize"))
	case surface.Interaction(m.mouse) == widget.InteractionPointer:
		parts = append(parts, m.styles.hint.Render("click to select"))
	}

	return lipgloss.NewStyle().MaxWidth(m.width).Render(strings.Join(parts, "  "))
}

func (m Model) renderFooter() string {
	status := " "
	if m.status != "" {
		if m.statusErr {
			status = m.styles.err.Render(m.status)
		} else {
			status = m.styles.status.Render(m.status)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(m.keys))
}

func (m Model) footerHeight() int {
	return 1 + lipgloss.Height(m.help.View(m.keys))
}

// surface lays out a fresh widget tree for the table area.
func (m Model) surface() *widget.Surface[tea.Msg] {
	return widget.NewSurface[tea.Msg](m.buildTable(), layout.Size{Width: m.width, Height: m.tableHeight()})
}

func (m Model) buildTable() element {
	visible := m.cols.Visible()

	children := []element{m.buildHeader(visible)}
	used := 0
	for i := m.scrollOffset; i < len(m.txs) && used < m.bodyHeight(); i++ {
		children = append(children, m.buildRow(i, visible))
		used += m.rowHeight(i)
	}

	return widget.Column(children...).Width(layout.Fill()).Height(layout.Fill())
}

func (m Model) buildHeader(visible []columns.Column) element {
	cells := make([]header.Cell[tea.Msg], len(visible))
	for i, col := range visible {
		title := col.Title
		if col.Key == m.sortKey {
			if m.sortDesc {
				title += " ▼"
			} else {
				title += " ▲"
			}
		}
		key := col.Key
		cell := tablerow.New[tea.Msg](widget.NewText[tea.Msg](title).Width(layout.Fill()).Bold()).
			Width(col.Length()).
			Height(layout.Fixed(1)).
			Style(theme.StyleHeader).
			OnPress(func(widget.Event) tea.Msg { return SortMsg{Key: key} })
		cells[i] = header.NewCell[tea.Msg](col.Key, cell)
	}

	h := header.New(m.headerState, cells...).
		Spacing(m.table.Spacing).
		MinWidth(m.table.MinColumnWidth).
		OnResize(m.table.Leeway, func(e header.ResizeEvent) tea.Msg { return ColumnResizedMsg{Event: e} }).
		NotifyFinished().
		Height(layout.Fixed(1))
	if m.table.LeftMargin != nil {
		h.LeftMargin(*m.table.LeftMargin)
	}
	if m.table.RightMargin != nil {
		h.RightMargin(*m.table.RightMargin)
	}
	return h
}

func (m Model) rowStyle(index int) theme.Style {
	switch {
	case index == m.cursor:
		return theme.StyleSelected
	case index%2 == 0:
		return theme.StyleEven
	default:
		return theme.StyleOdd
	}
}

func (m Model) buildRow(index int, visible []columns.Column) element {
	tx := m.txs[index]

	cells := widget.Row[tea.Msg]().Spacing(m.table.Spacing).Width(layout.Fill())
	if m.table.LeftMargin != nil {
		cells.Push(widget.HorizontalSpace[tea.Msg](*m.table.LeftMargin))
	}
	for _, col := range visible {
		cells.Push(m.cell(tx, col))
	}
	if m.table.RightMargin != nil {
		cells.Push(widget.HorizontalSpace[tea.Msg](*m.table.RightMargin))
	}

	var content element = cells
	if tx.ID == m.expandedID {
		content = widget.Column[tea.Msg](cells, m.detailPanel(tx)).Width(layout.Fill())
	}

	return tablerow.New(content).
		Width(layout.Fill()).
		InnerRowHeight(m.table.InnerRowHeight).
		Style(m.rowStyle(index)).
		OnPress(func(widget.Event) tea.Msg { return RowPressedMsg{Index: index} })
}

func (m Model) cell(tx ledger.Transaction, col columns.Column) element {
	text := widget.NewText[tea.Msg](tx.Field(col.Key)).Width(col.Length())
	p := m.theme.Palette
	switch col.Key {
	case ledger.KeyAmount:
		if tx.Direction == ledger.Incoming {
			text.Color(p.Success.Base)
		} else {
			text.Color(p.Danger.Base)
		}
	case ledger.KeyStatus:
		if tx.Status == ledger.StatusFailed {
			text.Color(p.Danger.Base).Bold()
		}
	}
	return text
}

func (m Model) detailPanel(tx ledger.Transaction) element {
	indent := 2
	if m.table.LeftMargin != nil {
		indent += *m.table.LeftMargin
	}
	lines := []string{
		fmt.Sprintf("id     %s", tx.ID),
		fmt.Sprintf("net    %s BTC   fee %s BTC", ledger.FormatBTC(tx.Net()), ledger.FormatBTC(tx.Fee)),
		fmt.Sprintf("state  %s, %d confirmations, %s", tx.Status, tx.Confirmations, tx.Time.Format("Mon 2 Jan 2006 15:04 MST")),
	}

	panel := widget.Column[tea.Msg]().Padding(layout.Padding{Left: indent}).Width(layout.Fill())
	for _, line := range lines {
		panel.Push(widget.NewText[tea.Msg](line).Width(layout.Fill()))
	}
	return panel
}
