package upsert

import (
	"github.com/meridiandb/meridian/pkg/types"
)

// ContextBuilder accumulates the fields of a Context and validates them at
// build time. Setters store values without checking them and overwrite
// earlier values for the same field; all validation happens in Build. A
// builder is not safe for concurrent use; confine it to the goroutine doing
// the bring-up.
type ContextBuilder struct {
	tableConfig                            *types.TableConfig
	schema                                 *types.Schema
	primaryKeyColumns                      []string
	comparisonColumns                      []string
	deleteRecordColumn                     string
	hashFunction                           types.HashFunction
	partialUpsertHandler                   PartialUpsertHandler
	enableSnapshot                         bool
	enablePreload                          bool
	metadataTTL                            float64
	deletedKeysTTL                         float64
	consistencyMode                        types.ConsistencyMode
	upsertViewRefreshIntervalMs            int64
	tableIndexDir                          string
	dropOutOfOrderRecord                   bool
	enableDeletedKeysCompactionConsistency bool
	tableDataManager                       TableDataManager
}

// NewContextBuilder returns a builder with all optional fields at their
// defaults: hash function none, flags false, TTLs and intervals zero.
func NewContextBuilder() *ContextBuilder {
	return &ContextBuilder{
		hashFunction: types.HashFunctionNone,
	}
}

// SetTableConfig sets the table configuration.
func (b *ContextBuilder) SetTableConfig(tableConfig *types.TableConfig) *ContextBuilder {
	b.tableConfig = tableConfig
	return b
}

// SetSchema sets the record schema.
func (b *ContextBuilder) SetSchema(schema *types.Schema) *ContextBuilder {
	b.schema = schema
	return b
}

// SetPrimaryKeyColumns sets the ordered primary key columns.
func (b *ContextBuilder) SetPrimaryKeyColumns(columns []string) *ContextBuilder {
	b.primaryKeyColumns = columns
	return b
}

// SetComparisonColumns sets the ordered comparison columns.
func (b *ContextBuilder) SetComparisonColumns(columns []string) *ContextBuilder {
	b.comparisonColumns = columns
	return b
}

// SetDeleteRecordColumn sets the delete-marker column.
func (b *ContextBuilder) SetDeleteRecordColumn(column string) *ContextBuilder {
	b.deleteRecordColumn = column
	return b
}

// SetHashFunction sets the primary key hash function.
func (b *ContextBuilder) SetHashFunction(fn types.HashFunction) *ContextBuilder {
	b.hashFunction = fn
	return b
}

// SetPartialUpsertHandler sets the partial upsert merge handler. The
// builder does not own the handler; the caller keeps it alive for the
// lifetime of the built Context.
func (b *ContextBuilder) SetPartialUpsertHandler(handler PartialUpsertHandler) *ContextBuilder {
	b.partialUpsertHandler = handler
	return b
}

// SetEnableSnapshot toggles key index snapshots.
func (b *ContextBuilder) SetEnableSnapshot(enable bool) *ContextBuilder {
	b.enableSnapshot = enable
	return b
}

// SetEnablePreload toggles snapshot preloading.
func (b *ContextBuilder) SetEnablePreload(enable bool) *ContextBuilder {
	b.enablePreload = enable
	return b
}

// SetMetadataTTL sets the key metadata TTL; 0 disables it.
func (b *ContextBuilder) SetMetadataTTL(ttl float64) *ContextBuilder {
	b.metadataTTL = ttl
	return b
}

// SetDeletedKeysTTL sets the deleted-keys TTL; 0 disables it.
func (b *ContextBuilder) SetDeletedKeysTTL(ttl float64) *ContextBuilder {
	b.deletedKeysTTL = ttl
	return b
}

// SetConsistencyMode sets the consistency mode. Leaving it unset is a
// distinct, valid state; no default is inferred.
func (b *ContextBuilder) SetConsistencyMode(mode types.ConsistencyMode) *ContextBuilder {
	b.consistencyMode = mode
	return b
}

// SetUpsertViewRefreshIntervalMs sets the upsert view refresh interval.
func (b *ContextBuilder) SetUpsertViewRefreshIntervalMs(intervalMs int64) *ContextBuilder {
	b.upsertViewRefreshIntervalMs = intervalMs
	return b
}

// SetTableIndexDir sets the directory holding the table's index files. The
// directory is not required to exist; whoever consumes the Context creates
// and checks it.
func (b *ContextBuilder) SetTableIndexDir(dir string) *ContextBuilder {
	b.tableIndexDir = dir
	return b
}

// SetDropOutOfOrderRecord toggles dropping of out-of-order records.
func (b *ContextBuilder) SetDropOutOfOrderRecord(drop bool) *ContextBuilder {
	b.dropOutOfOrderRecord = drop
	return b
}

// SetEnableDeletedKeysCompactionConsistency couples deleted-key removal to
// compaction progress.
func (b *ContextBuilder) SetEnableDeletedKeysCompactionConsistency(enable bool) *ContextBuilder {
	b.enableDeletedKeysCompactionConsistency = enable
	return b
}

// SetTableDataManager sets the owning table's data manager. Like the
// partial upsert handler, the reference is non-owning.
func (b *ContextBuilder) SetTableDataManager(manager TableDataManager) *ContextBuilder {
	b.tableDataManager = manager
	return b
}

// Build validates the accumulated fields and returns the immutable Context.
// The first violation found is reported, checked in a fixed order: table
// config, schema, primary key columns, comparison columns, hash function,
// table index directory. A failed Build leaves the builder unchanged, so
// the caller can correct the missing field and build again.
func (b *ContextBuilder) Build() (*Context, error) {
	if b.tableConfig == nil {
		return nil, newMissingFieldError("table_config", "table config must be set")
	}
	if b.schema == nil {
		return nil, newMissingFieldError("schema", "schema must be set")
	}
	if len(b.primaryKeyColumns) == 0 {
		return nil, newMissingFieldError("primary_key_columns", "primary key columns must be set")
	}
	if len(b.comparisonColumns) == 0 {
		return nil, newMissingFieldError("comparison_columns", "comparison columns must be set")
	}
	if b.hashFunction == "" {
		// Unreachable through NewContextBuilder, but a zero-valued
		// builder or an explicit SetHashFunction("") can get here.
		return nil, newMissingFieldError("hash_function", "hash function must be set")
	}
	if b.tableIndexDir == "" {
		return nil, newMissingFieldError("table_index_dir", "table index directory must be set")
	}

	return &Context{
		tableConfig:                            b.tableConfig,
		schema:                                 b.schema,
		primaryKeyColumns:                      b.primaryKeyColumns,
		comparisonColumns:                      b.comparisonColumns,
		deleteRecordColumn:                     b.deleteRecordColumn,
		hashFunction:                           b.hashFunction,
		partialUpsertHandler:                   b.partialUpsertHandler,
		enableSnapshot:                         b.enableSnapshot,
		enablePreload:                          b.enablePreload,
		metadataTTL:                            b.metadataTTL,
		deletedKeysTTL:                         b.deletedKeysTTL,
		consistencyMode:                        b.consistencyMode,
		upsertViewRefreshIntervalMs:            b.upsertViewRefreshIntervalMs,
		tableIndexDir:                          b.tableIndexDir,
		dropOutOfOrderRecord:                   b.dropOutOfOrderRecord,
		enableDeletedKeysCompactionConsistency: b.enableDeletedKeysCompactionConsistency,
		tableDataManager:                       b.tableDataManager,
	}, nil
}
