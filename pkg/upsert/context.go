// Package upsert provides the configuration descriptor handed to the upsert
// subsystem when a table partition is brought up. The descriptor is built
// once through ContextBuilder, validated at build time, and read-only
// afterwards; the subsystems consuming it (key index, compaction, snapshots,
// view refresh) live outside this package.
package upsert

import (
	"github.com/meridiandb/meridian/pkg/types"
)

// Context is the immutable, validated configuration of one upsert-enabled
// table partition. A Context is safe for concurrent reads: no field is ever
// mutated after construction.
type Context struct {
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

// TableConfig returns the table configuration the context was built for.
func (c *Context) TableConfig() *types.TableConfig {
	return c.tableConfig
}

// Schema returns the record schema the context was built for.
func (c *Context) Schema() *types.Schema {
	return c.schema
}

// PrimaryKeyColumns returns the ordered primary key columns.
func (c *Context) PrimaryKeyColumns() []string {
	return c.primaryKeyColumns
}

// ComparisonColumns returns the ordered columns used to decide which record
// for a primary key wins.
func (c *Context) ComparisonColumns() []string {
	return c.comparisonColumns
}

// DeleteRecordColumn returns the delete-marker column, or the empty string
// when none is configured.
func (c *Context) DeleteRecordColumn() string {
	return c.deleteRecordColumn
}

// HashFunction returns the primary key hash function. Never empty: the
// builder defaults it to types.HashFunctionNone.
func (c *Context) HashFunction() types.HashFunction {
	return c.hashFunction
}

// PartialUpsertHandler returns the partial upsert merge handler, or nil when
// the table runs in full upsert mode.
func (c *Context) PartialUpsertHandler() PartialUpsertHandler {
	return c.partialUpsertHandler
}

// SnapshotEnabled reports whether key index snapshots are enabled.
func (c *Context) SnapshotEnabled() bool {
	return c.enableSnapshot
}

// PreloadEnabled reports whether snapshot preloading is enabled.
func (c *Context) PreloadEnabled() bool {
	return c.enablePreload
}

// MetadataTTL returns the key metadata TTL; 0 means disabled.
func (c *Context) MetadataTTL() float64 {
	return c.metadataTTL
}

// DeletedKeysTTL returns the deleted-keys TTL; 0 means disabled.
func (c *Context) DeletedKeysTTL() float64 {
	return c.deletedKeysTTL
}

// ConsistencyMode returns the configured consistency mode, or
// types.ConsistencyModeUnset when none was configured.
func (c *Context) ConsistencyMode() types.ConsistencyMode {
	return c.consistencyMode
}

// UpsertViewRefreshIntervalMs returns the upsert view refresh interval in
// milliseconds; 0 means refresh on every read.
func (c *Context) UpsertViewRefreshIntervalMs() int64 {
	return c.upsertViewRefreshIntervalMs
}

// TableIndexDir returns the directory holding the table's index files.
func (c *Context) TableIndexDir() string {
	return c.tableIndexDir
}

// DropOutOfOrderRecord reports whether out-of-order records are dropped.
func (c *Context) DropOutOfOrderRecord() bool {
	return c.dropOutOfOrderRecord
}

// DeletedKeysCompactionConsistencyEnabled reports whether deleted-key
// removal is coupled to compaction progress.
func (c *Context) DeletedKeysCompactionConsistencyEnabled() bool {
	return c.enableDeletedKeysCompactionConsistency
}

// TableDataManager returns the owning table's data manager, or nil when the
// caller did not provide one.
func (c *Context) TableDataManager() TableDataManager {
	return c.tableDataManager
}
