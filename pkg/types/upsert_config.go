package types

// UpsertMode selects how records sharing a primary key are merged.
type UpsertMode string

const (
	// UpsertModeNone disables upsert for the table
	UpsertModeNone UpsertMode = ""

	// UpsertModeFull replaces the previous record wholesale
	UpsertModeFull UpsertMode = "full"

	// UpsertModePartial merges incoming columns into the previous record
	UpsertModePartial UpsertMode = "partial"
)

// HashFunction selects how primary keys are hashed before being stored in
// the key index. HashFunctionNone stores the raw key.
type HashFunction string

const (
	HashFunctionNone    HashFunction = "none"
	HashFunctionMD5     HashFunction = "md5"
	HashFunctionMurmur3 HashFunction = "murmur3"
)

// Valid reports whether the hash function is a known variant.
func (f HashFunction) Valid() bool {
	switch f {
	case HashFunctionNone, HashFunctionMD5, HashFunctionMurmur3:
		return true
	}
	return false
}

// ParseHashFunction parses a hash function name. Empty input maps to
// HashFunctionNone.
func ParseHashFunction(s string) (HashFunction, error) {
	switch HashFunction(s) {
	case "":
		return HashFunctionNone, nil
	case HashFunctionNone, HashFunctionMD5, HashFunctionMurmur3:
		return HashFunction(s), nil
	}
	return "", ErrUnknownHashFunction
}

// ConsistencyMode describes the read-consistency guarantee of the upsert
// view. The zero value means no mode was configured; downstream components
// decide what that implies.
type ConsistencyMode string

const (
	ConsistencyModeUnset    ConsistencyMode = ""
	ConsistencyModeSync     ConsistencyMode = "sync"
	ConsistencyModeSnapshot ConsistencyMode = "snapshot"
)

// Valid reports whether the consistency mode is known. The unset mode is
// valid: it is a distinct state, not an error.
func (m ConsistencyMode) Valid() bool {
	switch m {
	case ConsistencyModeUnset, ConsistencyModeSync, ConsistencyModeSnapshot:
		return true
	}
	return false
}

// ParseConsistencyMode parses a consistency mode name. Empty input maps to
// ConsistencyModeUnset.
func ParseConsistencyMode(s string) (ConsistencyMode, error) {
	m := ConsistencyMode(s)
	if !m.Valid() {
		return "", ErrUnknownConsistencyMode
	}
	return m, nil
}

// UpsertConfig holds the upsert section of a table configuration.
type UpsertConfig struct {
	// Mode selects full or partial upsert
	Mode UpsertMode `json:"mode" yaml:"mode"`

	// ComparisonColumns decide which record for a key wins; defaults to
	// the table's time column when empty
	ComparisonColumns []string `json:"comparison_columns,omitempty" yaml:"comparison_columns,omitempty"`

	// DeleteRecordColumn is a boolean column marking a record as a delete
	DeleteRecordColumn string `json:"delete_record_column,omitempty" yaml:"delete_record_column,omitempty"`

	// HashFunction hashes primary keys before indexing
	HashFunction HashFunction `json:"hash_function,omitempty" yaml:"hash_function,omitempty"`

	// EnableSnapshot persists the key index alongside segments
	EnableSnapshot bool `json:"enable_snapshot,omitempty" yaml:"enable_snapshot,omitempty"`

	// EnablePreload warms the key index from snapshots at startup
	EnablePreload bool `json:"enable_preload,omitempty" yaml:"enable_preload,omitempty"`

	// MetadataTTL bounds how long key metadata is retained, in the unit of
	// the comparison column; 0 disables the TTL
	MetadataTTL float64 `json:"metadata_ttl,omitempty" yaml:"metadata_ttl,omitempty"`

	// DeletedKeysTTL bounds how long deleted keys are retained; 0 disables
	DeletedKeysTTL float64 `json:"deleted_keys_ttl,omitempty" yaml:"deleted_keys_ttl,omitempty"`

	// ConsistencyMode selects the read-consistency protocol, empty when unset
	ConsistencyMode ConsistencyMode `json:"consistency_mode,omitempty" yaml:"consistency_mode,omitempty"`

	// UpsertViewRefreshIntervalMs is the upsert view refresh cadence; 0
	// means refresh on every read
	UpsertViewRefreshIntervalMs int64 `json:"upsert_view_refresh_interval_ms,omitempty" yaml:"upsert_view_refresh_interval_ms,omitempty"`

	// DropOutOfOrderRecord drops records older than the current winner
	// instead of keeping them in segments
	DropOutOfOrderRecord bool `json:"drop_out_of_order_record,omitempty" yaml:"drop_out_of_order_record,omitempty"`

	// EnableDeletedKeysCompactionConsistency couples deleted-key removal
	// with compaction progress
	EnableDeletedKeysCompactionConsistency bool `json:"enable_deleted_keys_compaction_consistency,omitempty" yaml:"enable_deleted_keys_compaction_consistency,omitempty"`
}
