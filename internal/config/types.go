package config

import (
	"github.com/alexisbeaulieu97/txview/internal/ledger"
	"github.com/alexisbeaulieu97/txview/internal/ui/columns"
)

// Config represents the full txview configuration document.
type Config struct {
	Theme   string        `yaml:"theme" validate:"required,theme_name"`
	Logging LoggingConfig `yaml:"logging"`
	Table   TableConfig   `yaml:"table"`
}

// LoggingConfig controls where diagnostic logs go. The terminal belongs to
// the UI, so logs are only written when File is set.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	File  string `yaml:"file,omitempty"`
}

// TableConfig holds the transaction table layout.
type TableConfig struct {
	Leeway         int            `yaml:"leeway" validate:"min=1,max=10"`
	Spacing        int            `yaml:"spacing" validate:"min=0,max=10"`
	LeftMargin     *int           `yaml:"left_margin,omitempty" validate:"omitempty,min=0,max=40"`
	RightMargin    *int           `yaml:"right_margin,omitempty" validate:"omitempty,min=0,max=40"`
	InnerRowHeight int            `yaml:"inner_row_height" validate:"min=1,max=10"`
	MinColumnWidth int            `yaml:"min_column_width" validate:"min=1,max=30"`
	Columns        []ColumnConfig `yaml:"columns" validate:"required,min=1,dive"`
}

// ColumnConfig is the persisted form of one table column.
type ColumnConfig struct {
	Key    string        `yaml:"key" validate:"required,column_key"`
	Title  string        `yaml:"title,omitempty"`
	Width  columns.Width `yaml:"width"`
	Order  int           `yaml:"order"`
	Hidden bool          `yaml:"hidden,omitempty"`
}

func intPtr(v int) *int {
	return &v
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:   "dark",
		Logging: LoggingConfig{Level: "info"},
		Table: TableConfig{
			Leeway:         2,
			Spacing:        1,
			LeftMargin:     intPtr(1),
			RightMargin:    intPtr(1),
			InnerRowHeight: 1,
			MinColumnWidth: 4,
			Columns:        DefaultColumns(),
		},
	}
}

// DefaultColumns returns the default column layout.
func DefaultColumns() []ColumnConfig {
	return []ColumnConfig{
		{Key: ledger.KeyTime, Title: "Time", Width: columns.Fixed(17), Order: 0},
		{Key: ledger.KeyAmount, Title: "Amount", Width: columns.Fixed(13), Order: 1},
		{Key: ledger.KeyStatus, Title: "Status", Width: columns.Fixed(10), Order: 2},
		{Key: ledger.KeyMemo, Title: "Memo", Width: columns.Fill(), Order: 3},
		{Key: ledger.KeyID, Title: "ID", Width: columns.Fixed(9), Order: 4, Hidden: true},
		{Key: ledger.KeyDirection, Title: "Direction", Width: columns.Fixed(10), Order: 5, Hidden: true},
		{Key: ledger.KeyFee, Title: "Fee", Width: columns.Fixed(11), Order: 6, Hidden: true},
		{Key: ledger.KeyConfirmations, Title: "Confs", Width: columns.Fixed(7), Order: 7, Hidden: true},
	}
}

// ColumnSet builds a column set from the configured columns.
func (c *Config) ColumnSet() (*columns.Set, error) {
	cols := make([]columns.Column, len(c.Table.Columns))
	for i, col := range c.Table.Columns {
		title := col.Title
		if title == "" {
			title = col.Key
		}
		cols[i] = columns.Column{
			Key:    col.Key,
			Title:  title,
			Width:  col.Width,
			Hidden: col.Hidden,
			Order:  col.Order,
		}
	}
	return columns.NewSet(cols...)
}

// SetColumns replaces the configured columns with the contents of set.
func (c *Config) SetColumns(set *columns.Set) {
	cols := set.Columns()
	c.Table.Columns = make([]ColumnConfig, len(cols))
	for i, col := range cols {
		c.Table.Columns[i] = ColumnConfig{
			Key:    col.Key,
			Title:  col.Title,
			Width:  col.Width,
			Order:  col.Order,
			Hidden: col.Hidden,
		}
	}
}

// Warnings lists configuration choices that are accepted but likely wrong.
func (c *Config) Warnings() []string {
	var warnings []string
	fills := 0
	for _, col := range c.Table.Columns {
		if col.Width.IsFill() && !col.Hidden {
			fills++
		}
	}
	if fills > 1 {
		warnings = append(warnings, "more than one visible column uses width fill; they will share the remaining space")
	}
	return warnings
}
