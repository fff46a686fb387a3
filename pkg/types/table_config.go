package types

// TableType distinguishes realtime from offline tables.
type TableType string

const (
	TableTypeRealtime TableType = "REALTIME"
	TableTypeOffline  TableType = "OFFLINE"
)

// TableConfig holds the declarative configuration of a single table.
type TableConfig struct {
	// TableName is the raw table name without the type suffix
	TableName string `json:"table_name" yaml:"table_name"`

	// Type is the table type (realtime or offline)
	Type TableType `json:"type" yaml:"type"`

	// TimeColumn is the primary time column used for record ordering
	TimeColumn string `json:"time_column,omitempty" yaml:"time_column,omitempty"`

	// Upsert holds the upsert configuration, nil when upsert is disabled
	Upsert *UpsertConfig `json:"upsert,omitempty" yaml:"upsert,omitempty"`
}

// UpsertEnabled reports whether the table has upsert configured.
func (c *TableConfig) UpsertEnabled() bool {
	return c.Upsert != nil && c.Upsert.Mode != UpsertModeNone
}
