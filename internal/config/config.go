// Package config provides configuration loading for the Meridian bring-up
// tooling: where the table config and schema files live and where table
// index directories go.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/meridiandb/meridian/internal/errors"
	"github.com/meridiandb/meridian/pkg/types"
)

// Config holds the bring-up tool configuration.
type Config struct {
	// DataDir is the base directory for all table data
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// TableConfigFile is the path to the table config file (YAML or JSON)
	TableConfigFile string `json:"table_config_file" yaml:"table_config_file"`

	// SchemaFile is the path to the schema file (YAML or JSON)
	SchemaFile string `json:"schema_file" yaml:"schema_file"`

	// IndexDir is the base directory for table index files
	IndexDir string `json:"index_dir" yaml:"index_dir"`
}

// DefaultConfig returns the default configuration for local development.
func DefaultConfig() *Config {
	return &Config{
		DataDir: "./data/meridian",
	}
}

// Resolve resolves relative paths and sets defaults based on DataDir.
func (c *Config) Resolve() {
	if c.DataDir == "" {
		c.DataDir = "./data/meridian"
	}
	if c.IndexDir == "" {
		c.IndexDir = filepath.Join(c.DataDir, "index")
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.NewConfigError(errors.CodeMissingField, "data_dir is required")
	}
	if c.TableConfigFile == "" {
		return errors.NewConfigError(errors.CodeMissingField, "table_config_file is required")
	}
	if c.SchemaFile == "" {
		return errors.NewConfigError(errors.CodeMissingField, "schema_file is required")
	}
	return nil
}

// TableIndexDir returns the index directory for the named table.
func (c *Config) TableIndexDir(tableName string) string {
	return filepath.Join(c.IndexDir, tableName)
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables use the MERIDIAN_ prefix.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("MERIDIAN_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("MERIDIAN_TABLE_CONFIG_FILE"); v != "" {
		cfg.TableConfigFile = v
	}
	if v := os.Getenv("MERIDIAN_SCHEMA_FILE"); v != "" {
		cfg.SchemaFile = v
	}
	if v := os.Getenv("MERIDIAN_INDEX_DIR"); v != "" {
		cfg.IndexDir = v
	}
}

// EnsureDirectories creates all required directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.DataDir, c.IndexDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// LoadTableConfig loads a table config from a YAML or JSON file.
func LoadTableConfig(path string) (*types.TableConfig, error) {
	var tc types.TableConfig
	if err := loadFile(path, &tc); err != nil {
		return nil, err
	}
	return &tc, nil
}

// LoadSchema loads a schema from a YAML or JSON file.
func LoadSchema(path string) (*types.Schema, error) {
	var s types.Schema
	if err := loadFile(path, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// loadFile unmarshals a YAML or JSON file into out, picking the codec by
// file extension.
func loadFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapConfigError(errors.CodeUnreadableFile,
			fmt.Sprintf("failed to read %s", path), err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, out); err != nil {
			return errors.WrapConfigError(errors.CodeInvalidValue,
				fmt.Sprintf("failed to parse YAML file %s", path), err)
		}
	case ".json":
		if err := json.Unmarshal(data, out); err != nil {
			return errors.WrapConfigError(errors.CodeInvalidValue,
				fmt.Sprintf("failed to parse JSON file %s", path), err)
		}
	default:
		return errors.NewConfigError(errors.CodeUnsupportedFormat,
			fmt.Sprintf("unsupported config file format: %s", ext))
	}

	return nil
}
