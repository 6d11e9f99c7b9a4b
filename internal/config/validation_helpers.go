package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	txerrors "github.com/alexisbeaulieu97/txview/pkg/errors"
)

// convertValidationError normalizes validator errors into txview validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return txerrors.NewValidationError(field, msg, err)
	}

	return txerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns Config.Table.Columns[0].Key into
// table.columns[0].key.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func fieldForColumn(index int, field string) string {
	return fmt.Sprintf("table.columns[%d].%s", index, field)
}
