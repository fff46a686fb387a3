// Package types provides the core configuration types for Meridian tables.
package types

// DataType is the storage type of a column.
type DataType string

const (
	DataTypeString  DataType = "STRING"
	DataTypeInt     DataType = "INT"
	DataTypeLong    DataType = "LONG"
	DataTypeFloat   DataType = "FLOAT"
	DataTypeDouble  DataType = "DOUBLE"
	DataTypeBoolean DataType = "BOOLEAN"
	DataTypeBytes   DataType = "BYTES"
)

// Schema defines the column structure of a table.
type Schema struct {
	// SchemaName is the logical name of the schema
	SchemaName string `json:"schema_name" yaml:"schema_name"`

	// Columns defines the columns in the schema
	Columns []FieldSpec `json:"columns" yaml:"columns"`

	// PrimaryKeyColumns lists the columns forming the primary key
	PrimaryKeyColumns []string `json:"primary_key_columns" yaml:"primary_key_columns"`
}

// FieldSpec defines a single column in the schema.
type FieldSpec struct {
	// Name is the column name
	Name string `json:"name" yaml:"name"`

	// Type is the column data type
	Type DataType `json:"type" yaml:"type"`

	// NotNull indicates whether the column rejects NULL values
	NotNull bool `json:"not_null,omitempty" yaml:"not_null,omitempty"`
}

// HasColumn reports whether the schema contains a column with the given name.
func (s *Schema) HasColumn(name string) bool {
	return s.FieldSpecFor(name) != nil
}

// FieldSpecFor returns the field spec for the named column, or nil if the
// column is not part of the schema.
func (s *Schema) FieldSpecFor(name string) *FieldSpec {
	for i := range s.Columns {
		if s.Columns[i].Name == name {
			return &s.Columns[i]
		}
	}
	return nil
}
