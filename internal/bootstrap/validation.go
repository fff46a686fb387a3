// Package bootstrap wires a table's declarative configuration into the
// upsert context handed to the engine: it cross-checks the upsert config
// against the schema and stages the context builder.
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/meridiandb/meridian/pkg/types"
)

// ValidationError represents a single upsert config validation error.
type ValidationError struct {
	Field   string
	Column  string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("field %q, column %q: %s", e.Field, e.Column, e.Message)
	}
	return fmt.Sprintf("field %q: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// UpsertValidator cross-checks a table's upsert config against its schema.
// These are the checks the context builder itself does not do: the builder
// only enforces presence, the validator enforces that the named columns
// actually exist and carry usable types.
type UpsertValidator struct {
	tableConfig *types.TableConfig
	schema      *types.Schema
}

// NewUpsertValidator creates a new upsert validator.
func NewUpsertValidator(tableConfig *types.TableConfig, schema *types.Schema) *UpsertValidator {
	return &UpsertValidator{tableConfig: tableConfig, schema: schema}
}

// Validate runs all checks and returns the collected errors, or nil when
// the configuration is coherent.
func (v *UpsertValidator) Validate() error {
	var errs ValidationErrors

	uc := v.tableConfig.Upsert
	if uc == nil {
		errs = append(errs, &ValidationError{
			Field:   "upsert",
			Message: "upsert config is required for an upsert-enabled table",
		})
		return errs
	}

	if v.tableConfig.Type != types.TableTypeRealtime {
		errs = append(errs, &ValidationError{
			Field:   "type",
			Message: fmt.Sprintf("upsert is only supported on %s tables, got %s", types.TableTypeRealtime, v.tableConfig.Type),
		})
	}

	switch uc.Mode {
	case types.UpsertModeFull, types.UpsertModePartial:
	default:
		errs = append(errs, &ValidationError{
			Field:   "mode",
			Message: fmt.Sprintf("upsert mode must be %q or %q, got %q", types.UpsertModeFull, types.UpsertModePartial, uc.Mode),
		})
	}

	errs = append(errs, v.validatePrimaryKeys()...)
	errs = append(errs, v.validateComparisonColumns(uc)...)
	errs = append(errs, v.validateDeleteRecordColumn(uc)...)

	if !uc.HashFunction.Valid() && uc.HashFunction != "" {
		errs = append(errs, &ValidationError{
			Field:   "hash_function",
			Message: fmt.Sprintf("unknown hash function %q", uc.HashFunction),
		})
	}

	if !uc.ConsistencyMode.Valid() {
		errs = append(errs, &ValidationError{
			Field:   "consistency_mode",
			Message: fmt.Sprintf("unknown consistency mode %q", uc.ConsistencyMode),
		})
	}

	errs = append(errs, v.validateTTLs(uc)...)

	if uc.UpsertViewRefreshIntervalMs < 0 {
		errs = append(errs, &ValidationError{
			Field:   "upsert_view_refresh_interval_ms",
			Message: fmt.Sprintf("refresh interval must not be negative, got %d", uc.UpsertViewRefreshIntervalMs),
		})
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validatePrimaryKeys checks that the schema declares primary key columns
// and that each of them exists.
func (v *UpsertValidator) validatePrimaryKeys() ValidationErrors {
	var errs ValidationErrors

	if len(v.schema.PrimaryKeyColumns) == 0 {
		errs = append(errs, &ValidationError{
			Field:   "primary_key_columns",
			Message: "schema must declare primary key columns for an upsert-enabled table",
		})
		return errs
	}

	for _, col := range v.schema.PrimaryKeyColumns {
		if !v.schema.HasColumn(col) {
			errs = append(errs, &ValidationError{
				Field:   "primary_key_columns",
				Column:  col,
				Message: "primary key column not found in schema",
			})
		}
	}
	return errs
}

// validateComparisonColumns checks that the comparison columns (or the time
// column they default to) exist in the schema.
func (v *UpsertValidator) validateComparisonColumns(uc *types.UpsertConfig) ValidationErrors {
	var errs ValidationErrors

	if len(uc.ComparisonColumns) == 0 {
		if v.tableConfig.TimeColumn == "" {
			errs = append(errs, &ValidationError{
				Field:   "comparison_columns",
				Message: "comparison columns are empty and the table has no time column to fall back to",
			})
		} else if !v.schema.HasColumn(v.tableConfig.TimeColumn) {
			errs = append(errs, &ValidationError{
				Field:   "time_column",
				Column:  v.tableConfig.TimeColumn,
				Message: "time column not found in schema",
			})
		}
		return errs
	}

	for _, col := range uc.ComparisonColumns {
		if !v.schema.HasColumn(col) {
			errs = append(errs, &ValidationError{
				Field:   "comparison_columns",
				Column:  col,
				Message: "comparison column not found in schema",
			})
		}
	}
	return errs
}

// validateDeleteRecordColumn checks the delete-marker column, when set.
func (v *UpsertValidator) validateDeleteRecordColumn(uc *types.UpsertConfig) ValidationErrors {
	if uc.DeleteRecordColumn == "" {
		return nil
	}

	spec := v.schema.FieldSpecFor(uc.DeleteRecordColumn)
	if spec == nil {
		return ValidationErrors{{
			Field:   "delete_record_column",
			Column:  uc.DeleteRecordColumn,
			Message: "delete record column not found in schema",
		}}
	}
	if spec.Type != types.DataTypeBoolean {
		return ValidationErrors{{
			Field:   "delete_record_column",
			Column:  uc.DeleteRecordColumn,
			Message: fmt.Sprintf("delete record column must be %s, got %s", types.DataTypeBoolean, spec.Type),
		}}
	}
	return nil
}

// validateTTLs checks the TTL constraints.
func (v *UpsertValidator) validateTTLs(uc *types.UpsertConfig) ValidationErrors {
	var errs ValidationErrors

	if uc.MetadataTTL < 0 {
		errs = append(errs, &ValidationError{
			Field:   "metadata_ttl",
			Message: fmt.Sprintf("metadata TTL must not be negative, got %v", uc.MetadataTTL),
		})
	}
	if uc.DeletedKeysTTL < 0 {
		errs = append(errs, &ValidationError{
			Field:   "deleted_keys_ttl",
			Message: fmt.Sprintf("deleted keys TTL must not be negative, got %v", uc.DeletedKeysTTL),
		})
	}

	// A metadata TTL compares a single numeric comparison column against
	// the watermark, so multi-column comparison is incompatible with it.
	if uc.MetadataTTL > 0 && len(uc.ComparisonColumns) > 1 {
		errs = append(errs, &ValidationError{
			Field:   "metadata_ttl",
			Message: fmt.Sprintf("metadata TTL requires a single comparison column, got %d", len(uc.ComparisonColumns)),
		})
	}

	if uc.DeletedKeysTTL > 0 && uc.DeleteRecordColumn == "" {
		errs = append(errs, &ValidationError{
			Field:   "deleted_keys_ttl",
			Message: "deleted keys TTL requires a delete record column",
		})
	}

	if uc.EnableDeletedKeysCompactionConsistency && uc.DeletedKeysTTL <= 0 {
		errs = append(errs, &ValidationError{
			Field:   "enable_deleted_keys_compaction_consistency",
			Message: "deleted keys compaction consistency requires a deleted keys TTL",
		})
	}

	return errs
}
