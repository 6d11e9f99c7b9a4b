package config

import (
	"fmt"

	txerrors "github.com/alexisbeaulieu97/txview/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return txerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Table.Columns))
	visible := 0
	for i, col := range cfg.Table.Columns {
		if first, exists := seen[col.Key]; exists {
			return txerrors.NewValidationError(fieldForColumn(i, "key"), fmt.Sprintf("duplicate column %q (first at index %d)", col.Key, first), txerrors.ErrDuplicateColumn)
		}
		seen[col.Key] = i
		if !col.Hidden {
			visible++
		}
	}

	if visible == 0 {
		return txerrors.NewValidationError("table.columns", "at least one column must be visible", nil)
	}

	return nil
}
