package upsert

// PartialUpsertHandler merges a partial record into the previous record for
// the same primary key. Implementations live with the upsert engine; the
// Context only carries the reference and never calls it. The caller keeps
// the handler alive for the lifetime of the Context.
type PartialUpsertHandler interface {
	// Merge returns the record resulting from applying the incoming
	// partial record on top of the previous full record.
	Merge(previous, incoming map[string]interface{}) map[string]interface{}
}

// TableDataManager is the runtime manager of the owning table, used by the
// upsert engine for directory and segment coordination. The Context holds
// it as a non-owning reference and may hold nil when bring-up happens
// before the manager exists.
type TableDataManager interface {
	// TableName returns the name of the managed table
	TableName() string

	// TableDataDir returns the base data directory of the managed table
	TableDataDir() string
}
