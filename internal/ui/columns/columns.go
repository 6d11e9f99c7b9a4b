// Package columns holds the column layout of a table view: which columns
// exist, how wide they are, whether they are shown and in what order.
//
// A Set is owned by a single view. Widgets never mutate it; the view applies
// resize events from the header back into its Set and rebuilds.
package columns

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/txview/internal/ui/layout"
	txerrors "github.com/alexisbeaulieu97/txview/pkg/errors"
)

const fillToken = "fill"

// Width is either a fixed number of cells or "fill the remaining space".
// The zero value is a fixed width of 0.
type Width struct {
	fill  bool
	cells uint16
}

// Fixed returns a fixed width.
func Fixed(cells uint16) Width {
	return Width{cells: cells}
}

// Fill returns a width that takes the remaining space.
func Fill() Width {
	return Width{fill: true}
}

// IsFill reports whether the width fills the remaining space.
func (w Width) IsFill() bool {
	return w.fill
}

// Cells returns the fixed width, or 0 for fill widths.
func (w Width) Cells() uint16 {
	if w.fill {
		return 0
	}
	return w.cells
}

// Length converts the width to a layout length.
func (w Width) Length() layout.Length {
	if w.fill {
		return layout.Fill()
	}
	return layout.Fixed(int(w.cells))
}

func (w Width) String() string {
	if w.fill {
		return fillToken
	}
	return strconv.Itoa(int(w.cells))
}

// MarshalYAML writes fill widths as "fill" and fixed widths as integers.
func (w Width) MarshalYAML() (any, error) {
	if w.fill {
		return fillToken, nil
	}
	return int(w.cells), nil
}

// UnmarshalYAML accepts "fill" or a non-negative integer up to 65535.
func (w *Width) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: width must be a number or %q", node.Line, fillToken)
	}
	if strings.EqualFold(strings.TrimSpace(node.Value), fillToken) {
		*w = Fill()
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(node.Value))
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("line %d: invalid width %q", node.Line, node.Value)
	}
	*w = Fixed(uint16(n))
	return nil
}

// Column describes one table column.
type Column struct {
	Key    string
	Title  string
	Width  Width
	Hidden bool
	Order  int
}

// Length returns the column width as a layout length.
func (c Column) Length() layout.Length {
	return c.Width.Length()
}

// Set is an ordered collection of columns with unique keys.
type Set struct {
	columns []Column
	index   map[string]int
}

// NewSet builds a set, rejecting empty or duplicate keys.
func NewSet(cols ...Column) (*Set, error) {
	s := &Set{
		columns: make([]Column, 0, len(cols)),
		index:   make(map[string]int, len(cols)),
	}
	for _, col := range cols {
		if strings.TrimSpace(col.Key) == "" {
			return nil, txerrors.NewColumnError("", fmt.Errorf("column key is required"))
		}
		if _, exists := s.index[col.Key]; exists {
			return nil, txerrors.NewColumnError(col.Key, txerrors.ErrDuplicateColumn)
		}
		s.index[col.Key] = len(s.columns)
		s.columns = append(s.columns, col)
	}
	return s, nil
}

// MustSet is NewSet for static layouts; it panics on invalid input.
func MustSet(cols ...Column) *Set {
	s, err := NewSet(cols...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of columns, hidden ones included.
func (s *Set) Len() int {
	return len(s.columns)
}

// Columns returns a copy of all columns in insertion order.
func (s *Set) Columns() []Column {
	out := make([]Column, len(s.columns))
	copy(out, s.columns)
	return out
}

// Get returns the column with key.
func (s *Set) Get(key string) (Column, bool) {
	i, ok := s.index[key]
	if !ok {
		return Column{}, false
	}
	return s.columns[i], true
}

// Visible returns the shown columns sorted by Order. Ties keep insertion order.
func (s *Set) Visible() []Column {
	out := make([]Column, 0, len(s.columns))
	for _, col := range s.columns {
		if !col.Hidden {
			out = append(out, col)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

func (s *Set) lookup(key string) (int, error) {
	i, ok := s.index[key]
	if !ok {
		return 0, txerrors.NewColumnError(key, txerrors.ErrUnknownColumn)
	}
	return i, nil
}

// SetWidth pins the column to a fixed width.
func (s *Set) SetWidth(key string, cells uint16) error {
	i, err := s.lookup(key)
	if err != nil {
		return err
	}
	s.columns[i].Width = Fixed(cells)
	return nil
}

// Resize sets the widths of two adjacent columns. Neither column changes
// unless both keys exist.
func (s *Set) Resize(leftKey string, left uint16, rightKey string, right uint16) error {
	li, err := s.lookup(leftKey)
	if err != nil {
		return err
	}
	ri, err := s.lookup(rightKey)
	if err != nil {
		return err
	}
	s.columns[li].Width = Fixed(left)
	s.columns[ri].Width = Fixed(right)
	return nil
}

// SetHidden shows or hides a column. Its stored width is kept.
func (s *Set) SetHidden(key string, hidden bool) error {
	i, err := s.lookup(key)
	if err != nil {
		return err
	}
	s.columns[i].Hidden = hidden
	return nil
}

// ToggleHidden flips the visibility of a column and returns the new hidden state.
func (s *Set) ToggleHidden(key string) (bool, error) {
	i, err := s.lookup(key)
	if err != nil {
		return false, err
	}
	s.columns[i].Hidden = !s.columns[i].Hidden
	return s.columns[i].Hidden, nil
}

// SetOrder changes the display position of a column.
func (s *Set) SetOrder(key string, order int) error {
	i, err := s.lookup(key)
	if err != nil {
		return err
	}
	s.columns[i].Order = order
	return nil
}

// FillCount returns how many columns use a fill width. Layout is only
// well-defined with at most one, but the set does not enforce it.
func (s *Set) FillCount() int {
	n := 0
	for _, col := range s.columns {
		if col.Width.IsFill() {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	c := &Set{
		columns: s.Columns(),
		index:   make(map[string]int, len(s.index)),
	}
	for k, v := range s.index {
		c.index[k] = v
	}
	return c
}
