// Package txlist is the interactive transaction table. It owns the column
// layout and the header drag state, rebuilds the widget tree on every pass
// and applies the resize events the header publishes.
package txlist

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/txview/internal/ledger"
	"github.com/alexisbeaulieu97/txview/internal/logger"
	"github.com/alexisbeaulieu97/txview/internal/ui/columns"
	"github.com/alexisbeaulieu97/txview/internal/ui/header"
	"github.com/alexisbeaulieu97/txview/internal/ui/layout"
	"github.com/alexisbeaulieu97/txview/internal/ui/theme"
)

const (
	// tableTop is the screen row of the table header.
	tableTop = 1
	// detailLines is the height of the expanded detail panel.
	detailLines = 3

	minWidth  = 40
	minHeight = 8
)

// TableOptions controls table geometry.
type TableOptions struct {
	Leeway         int
	Spacing        int
	LeftMargin     *int
	RightMargin    *int
	InnerRowHeight int
	MinColumnWidth int
}

// Options configures a Model.
type Options struct {
	Transactions []ledger.Transaction
	// Columns is the starting layout. The model takes ownership of it.
	Columns *columns.Set
	// Defaults is the layout restored by reset. Defaults to a copy of Columns.
	Defaults *columns.Set
	Table    TableOptions
	Theme    theme.Theme
	Store    LayoutStore
	Logger   *logger.Logger
}

// Model is the transaction table model.
type Model struct {
	// Core data
	source []ledger.Transaction
	txs    []ledger.Transaction

	// Layout state
	cols        *columns.Set
	defaults    *columns.Set
	headerState *header.State
	table       TableOptions

	// UI state
	cursor       int
	expandedID   string
	sortKey      string
	sortDesc     bool
	scrollOffset int
	mouse        layout.Point

	// Status line
	status    string
	statusErr bool

	// Components
	keys   keyMap
	help   help.Model
	theme  theme.Theme
	styles styles

	store LayoutStore
	log   *logger.Logger

	// Dimensions
	width  int
	height int
}

// NewModel creates a model sorted newest first.
func NewModel(opts Options) Model {
	cols := opts.Columns
	if cols == nil {
		cols = fallbackColumns()
	}
	defaults := opts.Defaults
	if defaults == nil {
		defaults = cols.Clone()
	}

	table := opts.Table
	if table.Leeway <= 0 {
		table.Leeway = 1
	}
	if table.InnerRowHeight <= 0 {
		table.InnerRowHeight = 1
	}
	if table.MinColumnWidth <= 0 {
		table.MinColumnWidth = header.MinColumnWidth
	}

	t := opts.Theme
	if t.Name == "" {
		t = theme.Dark()
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	m := Model{
		source:      opts.Transactions,
		cols:        cols,
		defaults:    defaults,
		headerState: header.NewState(),
		table:       table,
		sortKey:     ledger.KeyTime,
		sortDesc:    true,
		mouse:       layout.Point{X: -1, Y: -1},
		keys:        defaultKeyMap(),
		help:        help.New(),
		theme:       t,
		styles:      newStyles(t),
		store:       opts.Store,
		log:         log.With("component", "txlist"),
		width:       80,
		height:      24,
	}
	m.resort()

	return m
}

func fallbackColumns() *columns.Set {
	keys := ledger.Keys()
	cols := make([]columns.Column, len(keys))
	for i, key := range keys {
		cols[i] = columns.Column{Key: key, Title: key, Width: columns.Fixed(12), Order: i}
	}
	return columns.MustSet(cols...)
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return nil
}

// Columns returns the live column layout.
func (m Model) Columns() *columns.Set {
	return m.cols
}

// HeaderState returns the drag state shared by every rebuilt header.
func (m Model) HeaderState() *header.State {
	return m.headerState
}

// Transactions returns the transactions in display order.
func (m Model) Transactions() []ledger.Transaction {
	return m.txs
}

// Cursor returns the index of the selected transaction.
func (m Model) Cursor() int {
	return m.cursor
}

// Selected returns the selected transaction.
func (m Model) Selected() (ledger.Transaction, bool) {
	if m.cursor < 0 || m.cursor >= len(m.txs) {
		return ledger.Transaction{}, false
	}
	return m.txs[m.cursor], true
}

// Expanded returns the id of the transaction whose details are open.
func (m Model) Expanded() (string, bool) {
	return m.expandedID, m.expandedID != ""
}

// Sort returns the sort column and direction.
func (m Model) Sort() (key string, desc bool) {
	return m.sortKey, m.sortDesc
}

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// resort re-sorts the transactions and keeps the selection on the same
// transaction.
func (m *Model) resort() {
	selected, hasSelection := m.Selected()

	sorted, err := ledger.SortBy(m.source, m.sortKey, m.sortDesc)
	if err != nil {
		m.log.Error(err, "sort transactions")
		sorted = append([]ledger.Transaction(nil), m.source...)
	}
	m.txs = sorted

	m.cursor = 0
	if hasSelection {
		for i, tx := range m.txs {
			if tx.ID == selected.ID {
				m.cursor = i
				break
			}
		}
	}
	m.ensureVisible()
}

// MoveCursorUp moves cursor up with wrapping
func (m *Model) MoveCursorUp() {
	if len(m.txs) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.txs) - 1
	}
	m.ensureVisible()
}

// MoveCursorDown moves cursor down with wrapping
func (m *Model) MoveCursorDown() {
	if len(m.txs) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(m.txs) {
		m.cursor = 0
	}
	m.ensureVisible()
}

func (m *Model) toggleDetails(index int) {
	if index < 0 || index >= len(m.txs) {
		return
	}
	id := m.txs[index].ID
	if m.expandedID == id {
		m.expandedID = ""
	} else {
		m.expandedID = id
	}
	m.ensureVisible()
}

func (m Model) rowHeight(index int) int {
	if m.txs[index].ID == m.expandedID {
		return 1 + detailLines
	}
	return 1
}

// bodyHeight is the number of screen rows available to transaction rows.
func (m Model) bodyHeight() int {
	return max(m.tableHeight()-1, 1)
}

func (m Model) tableHeight() int {
	return max(m.height-tableTop-m.footerHeight(), 1)
}

// ensureVisible scrolls so the selected row is fully on screen.
func (m *Model) ensureVisible() {
	if len(m.txs) == 0 {
		m.scrollOffset = 0
		return
	}
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	for m.scrollOffset < m.cursor {
		used := 0
		for i := m.scrollOffset; i <= m.cursor; i++ {
			used += m.rowHeight(i)
		}
		if used <= m.bodyHeight() {
			break
		}
		m.scrollOffset++
	}
}

func (m *Model) scroll(delta int) {
	m.scrollOffset = min(max(m.scrollOffset+delta, 0), max(len(m.txs)-1, 0))
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}
