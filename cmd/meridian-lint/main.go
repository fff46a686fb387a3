// Package main implements meridian-lint, a checker for upsert table
// configuration. It loads a table config and schema, cross-validates them,
// builds the upsert context a partition would receive, and prints the
// resolved descriptor.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/meridiandb/meridian/internal/bootstrap"
	"github.com/meridiandb/meridian/internal/config"
	"github.com/meridiandb/meridian/pkg/upsert"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	var (
		tableConfigFile string
		schemaFile      string
		dataDir         string
		indexDir        string
		showVersion     bool
	)

	flag.StringVar(&tableConfigFile, "table-config", "", "Path to the table config file (YAML or JSON)")
	flag.StringVar(&schemaFile, "schema", "", "Path to the schema file (YAML or JSON)")
	flag.StringVar(&dataDir, "data-dir", "", "Base directory for table data")
	flag.StringVar(&indexDir, "index-dir", "", "Base directory for table index files")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "meridian-lint - Upsert table configuration checker\n\n")
		fmt.Fprintf(os.Stderr, "Usage: meridian-lint [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  meridian-lint --table-config orders.yaml --schema orders_schema.yaml\n")
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  MERIDIAN_TABLE_CONFIG_FILE  Path to the table config file\n")
		fmt.Fprintf(os.Stderr, "  MERIDIAN_SCHEMA_FILE        Path to the schema file\n")
		fmt.Fprintf(os.Stderr, "  MERIDIAN_DATA_DIR           Base directory for table data\n")
		fmt.Fprintf(os.Stderr, "  MERIDIAN_INDEX_DIR          Base directory for index files\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("meridian-lint version %s (commit: %s)\n", version, commit)
		os.Exit(0)
	}

	cfg := config.DefaultConfig()
	config.LoadFromEnv(cfg)

	// Command line flags take precedence over the environment.
	if tableConfigFile != "" {
		cfg.TableConfigFile = tableConfigFile
	}
	if schemaFile != "" {
		cfg.SchemaFile = schemaFile
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if indexDir != "" {
		cfg.IndexDir = indexDir
	}

	cfg.Resolve()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	tableConfig, err := config.LoadTableConfig(cfg.TableConfigFile)
	if err != nil {
		log.Fatalf("Failed to load table config: %v", err)
	}
	schema, err := config.LoadSchema(cfg.SchemaFile)
	if err != nil {
		log.Fatalf("Failed to load schema: %v", err)
	}

	ctx, err := bootstrap.NewContext(tableConfig, schema, cfg.TableIndexDir(tableConfig.TableName), bootstrap.Options{})
	if err != nil {
		log.Fatalf("Upsert config check failed: %v", err)
	}

	printContext(ctx)
	log.Printf("OK: table %q upsert configuration is valid", tableConfig.TableName)
}

// printContext prints the resolved upsert context.
func printContext(ctx *upsert.Context) {
	log.Printf("Resolved upsert context:")
	log.Printf("  Table:                %s", ctx.TableConfig().TableName)
	log.Printf("  Primary key columns:  %v", ctx.PrimaryKeyColumns())
	log.Printf("  Comparison columns:   %v", ctx.ComparisonColumns())
	if col := ctx.DeleteRecordColumn(); col != "" {
		log.Printf("  Delete record column: %s", col)
	}
	log.Printf("  Hash function:        %s", ctx.HashFunction())
	log.Printf("  Snapshot enabled:     %v", ctx.SnapshotEnabled())
	log.Printf("  Preload enabled:      %v", ctx.PreloadEnabled())
	if ttl := ctx.MetadataTTL(); ttl > 0 {
		log.Printf("  Metadata TTL:         %v", ttl)
	}
	if ttl := ctx.DeletedKeysTTL(); ttl > 0 {
		log.Printf("  Deleted keys TTL:     %v", ttl)
	}
	if mode := ctx.ConsistencyMode(); mode != "" {
		log.Printf("  Consistency mode:     %s", mode)
	}
	if interval := ctx.UpsertViewRefreshIntervalMs(); interval > 0 {
		log.Printf("  View refresh (ms):    %d", interval)
	}
	log.Printf("  Table index dir:      %s", ctx.TableIndexDir())
	log.Printf("  Drop out-of-order:    %v", ctx.DropOutOfOrderRecord())
}
