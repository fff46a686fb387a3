package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	merrors "github.com/meridiandb/meridian/internal/errors"
	"github.com/meridiandb/meridian/pkg/types"
)

func TestConfig_Resolve(t *testing.T) {
	cfg := &Config{}
	cfg.Resolve()

	if cfg.DataDir != "./data/meridian" {
		t.Errorf("DataDir = %q, want ./data/meridian", cfg.DataDir)
	}
	if cfg.IndexDir != filepath.Join("./data/meridian", "index") {
		t.Errorf("IndexDir = %q, want index under data dir", cfg.IndexDir)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Resolve()

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate should fail without a table config file")
	}
	if merrors.GetCode(err) != merrors.CodeMissingField {
		t.Errorf("error code = %q, want MISSING_FIELD", merrors.GetCode(err))
	}

	cfg.TableConfigFile = "orders.yaml"
	cfg.SchemaFile = "orders_schema.yaml"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestConfig_TableIndexDir(t *testing.T) {
	cfg := &Config{IndexDir: "/data/index"}
	if got := cfg.TableIndexDir("orders"); got != filepath.Join("/data/index", "orders") {
		t.Errorf("TableIndexDir = %q", got)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MERIDIAN_DATA_DIR", "/tmp/meridian-data")
	t.Setenv("MERIDIAN_TABLE_CONFIG_FILE", "/etc/meridian/orders.yaml")
	t.Setenv("MERIDIAN_SCHEMA_FILE", "/etc/meridian/orders_schema.json")
	t.Setenv("MERIDIAN_INDEX_DIR", "/tmp/meridian-index")

	cfg := DefaultConfig()
	LoadFromEnv(cfg)

	if cfg.DataDir != "/tmp/meridian-data" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.TableConfigFile != "/etc/meridian/orders.yaml" {
		t.Errorf("TableConfigFile = %q", cfg.TableConfigFile)
	}
	if cfg.SchemaFile != "/etc/meridian/orders_schema.json" {
		t.Errorf("SchemaFile = %q", cfg.SchemaFile)
	}
	if cfg.IndexDir != "/tmp/meridian-index" {
		t.Errorf("IndexDir = %q", cfg.IndexDir)
	}
}

func TestLoadTableConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.yaml")
	content := `
table_name: orders
type: REALTIME
time_column: updated_at
upsert:
  mode: full
  hash_function: murmur3
  enable_snapshot: true
  metadata_ttl: 3600
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	tc, err := LoadTableConfig(path)
	if err != nil {
		t.Fatalf("LoadTableConfig failed: %v", err)
	}

	if tc.TableName != "orders" {
		t.Errorf("TableName = %q, want orders", tc.TableName)
	}
	if tc.Type != types.TableTypeRealtime {
		t.Errorf("Type = %q, want REALTIME", tc.Type)
	}
	if tc.Upsert == nil {
		t.Fatal("Upsert should be populated")
	}
	if tc.Upsert.Mode != types.UpsertModeFull {
		t.Errorf("Mode = %q, want full", tc.Upsert.Mode)
	}
	if tc.Upsert.HashFunction != types.HashFunctionMurmur3 {
		t.Errorf("HashFunction = %q, want murmur3", tc.Upsert.HashFunction)
	}
	if !tc.Upsert.EnableSnapshot {
		t.Error("EnableSnapshot should be true")
	}
	if tc.Upsert.MetadataTTL != 3600 {
		t.Errorf("MetadataTTL = %v, want 3600", tc.Upsert.MetadataTTL)
	}
}

func TestLoadSchema_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders_schema.json")
	content := `{
		"schema_name": "orders",
		"columns": [
			{"name": "id", "type": "STRING"},
			{"name": "updated_at", "type": "LONG"},
			{"name": "deleted", "type": "BOOLEAN"}
		],
		"primary_key_columns": ["id"]
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write schema file: %v", err)
	}

	s, err := LoadSchema(path)
	if err != nil {
		t.Fatalf("LoadSchema failed: %v", err)
	}

	if s.SchemaName != "orders" {
		t.Errorf("SchemaName = %q, want orders", s.SchemaName)
	}
	if len(s.Columns) != 3 {
		t.Fatalf("Columns = %d, want 3", len(s.Columns))
	}
	if !s.HasColumn("deleted") {
		t.Error("schema should have the deleted column")
	}
	if len(s.PrimaryKeyColumns) != 1 || s.PrimaryKeyColumns[0] != "id" {
		t.Errorf("PrimaryKeyColumns = %v, want [id]", s.PrimaryKeyColumns)
	}
}

func TestLoadTableConfig_Errors(t *testing.T) {
	if _, err := LoadTableConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	} else if merrors.GetCode(err) != merrors.CodeUnreadableFile {
		t.Errorf("error code = %q, want UNREADABLE_FILE", merrors.GetCode(err))
	}

	badExt := filepath.Join(t.TempDir(), "orders.toml")
	if err := os.WriteFile(badExt, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	_, err := LoadTableConfig(badExt)
	if err == nil {
		t.Fatal("unsupported extension should fail")
	}
	var me *merrors.MeridianError
	if !errors.As(err, &me) || me.Code != merrors.CodeUnsupportedFormat {
		t.Errorf("error = %v, want UNSUPPORTED_FORMAT", err)
	}

	badYAML := filepath.Join(t.TempDir(), "orders.yaml")
	if err := os.WriteFile(badYAML, []byte("{not: [valid"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := LoadTableConfig(badYAML); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := &Config{
		DataDir:  filepath.Join(base, "data"),
		IndexDir: filepath.Join(base, "data", "index"),
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}

	for _, dir := range []string{cfg.DataDir, cfg.IndexDir} {
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			t.Errorf("directory %s was not created", dir)
		}
	}
}
