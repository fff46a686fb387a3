package bootstrap

import (
	"fmt"

	"github.com/meridiandb/meridian/pkg/types"
	"github.com/meridiandb/meridian/pkg/upsert"
)

// Options carries the runtime collaborators that cannot be derived from the
// declarative table config. Both references are optional and non-owning.
type Options struct {
	// PartialUpsertHandler is required when the table runs in partial
	// upsert mode; the engine invokes it to merge partial records
	PartialUpsertHandler upsert.PartialUpsertHandler

	// TableDataManager is the owning table's runtime manager, when it
	// already exists at bring-up time
	TableDataManager upsert.TableDataManager
}

// NewContext validates the table config against the schema and builds the
// upsert context for one partition of the table. Comparison columns default
// to the table's time column when the upsert config leaves them empty, and
// the hash function defaults to none.
func NewContext(tableConfig *types.TableConfig, schema *types.Schema, indexDir string, opts Options) (*upsert.Context, error) {
	if err := NewUpsertValidator(tableConfig, schema).Validate(); err != nil {
		return nil, fmt.Errorf("bootstrap: upsert config validation failed: %w", err)
	}

	uc := tableConfig.Upsert

	comparisonColumns := uc.ComparisonColumns
	if len(comparisonColumns) == 0 {
		comparisonColumns = []string{tableConfig.TimeColumn}
	}

	builder := upsert.NewContextBuilder().
		SetTableConfig(tableConfig).
		SetSchema(schema).
		SetPrimaryKeyColumns(schema.PrimaryKeyColumns).
		SetComparisonColumns(comparisonColumns).
		SetDeleteRecordColumn(uc.DeleteRecordColumn).
		SetEnableSnapshot(uc.EnableSnapshot).
		SetEnablePreload(uc.EnablePreload).
		SetMetadataTTL(uc.MetadataTTL).
		SetDeletedKeysTTL(uc.DeletedKeysTTL).
		SetConsistencyMode(uc.ConsistencyMode).
		SetUpsertViewRefreshIntervalMs(uc.UpsertViewRefreshIntervalMs).
		SetTableIndexDir(indexDir).
		SetDropOutOfOrderRecord(uc.DropOutOfOrderRecord).
		SetEnableDeletedKeysCompactionConsistency(uc.EnableDeletedKeysCompactionConsistency)

	if uc.HashFunction != "" {
		builder.SetHashFunction(uc.HashFunction)
	}
	if opts.PartialUpsertHandler != nil {
		builder.SetPartialUpsertHandler(opts.PartialUpsertHandler)
	}
	if opts.TableDataManager != nil {
		builder.SetTableDataManager(opts.TableDataManager)
	}

	ctx, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	return ctx, nil
}
