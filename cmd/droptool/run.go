package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/duneanalytics/droptool"
	"github.com/pkg/errors"
)

// previewLimit caps how many tables the production confirmation lists
const previewLimit = 10

func run(in io.Reader, out io.Writer, opts *options) error {
	if opts.target != "dev" && opts.target != "prod" {
		return errors.Errorf("invalid --target %q: must be 'dev' or 'prod'", opts.target)
	}

	if opts.table != "" && opts.schema == "" {
		return errors.New("--table requires --schema to be specified")
	}

	isProd := opts.target == "prod"
	dryRun := !opts.execute

	// For safety, prod only ever drops one specific table/view at a time
	if isProd && (opts.schema == "" || opts.table == "") {
		return errors.New("production drops require BOTH --schema and --table")
	}

	cfg := droptool.FromEnv()
	if opts.apiKey != "" {
		cfg.APIKey = opts.apiKey
	}
	cfg.Host = opts.host
	cfg.Port = opts.port
	cfg.Catalog = opts.catalog

	var (
		schemaOrPattern string
		usePattern      bool
	)

	switch {
	case opts.schema != "":
		schemaOrPattern = opts.schema
		usePattern = opts.table == ""
	case isProd:
		schemaOrPattern = cfg.ProdSchema()
	default:
		schemaOrPattern = cfg.DevPattern()
		usePattern = true
	}

	if dryRun {
		slog.Warn("DRY RUN MODE - no operations will be executed; add --execute to drop")
	}

	label := "DEV"
	if isProd {
		label = "PROD"
	}

	switch {
	case opts.table != "":
		slog.Info("target", "env", label, "schema", opts.schema, "table", opts.table)
	case usePattern:
		slog.Info("target", "env", label, "pattern", schemaOrPattern)
	default:
		slog.Info("target", "env", label, "schema", schemaOrPattern)
	}

	db, err := cfg.Connect()
	if err != nil {
		return err
	}
	defer db.Close()

	var tables []droptool.Table

	switch {
	case opts.table != "":
		tables, err = droptool.FindTable(db, cfg.Catalog, opts.schema, opts.table)
		if err == nil && len(tables) == 0 {
			slog.Warn("table not found", "schema", opts.schema, "table", opts.table)
			return nil
		}
	case usePattern:
		tables, err = droptool.ListByPattern(db, cfg.Catalog, schemaOrPattern)
	default:
		tables, err = droptool.ListBySchema(db, cfg.Catalog, schemaOrPattern)
	}

	if err != nil {
		return err
	}

	if isProd && !dryRun && len(tables) > 0 {
		if !confirm(in, out, tables, schemaOrPattern) {
			slog.Info("operation cancelled by user")
			return nil
		}
		slog.Info("confirmed, proceeding with drop operations")
	}

	droptool.DropAll(db, cfg.Catalog, tables, dryRun)

	if dryRun {
		slog.Info("DRY RUN COMPLETE - above are the DROP commands that would be executed")
	}

	return nil
}

// confirm previews the tables about to be dropped from production and
// requires the user to type exactly 'yes'. Anything else, including a
// failed read on stdin, cancels.
func confirm(in io.Reader, out io.Writer, tables []droptool.Table, schema string) bool {
	slog.Warn("PRODUCTION DROP WARNING", "count", len(tables), "schema", schema)

	preview := len(tables)
	if preview > previewLimit {
		preview = previewLimit
	}

	for i, t := range tables[:preview] {
		slog.Warn(fmt.Sprintf("  %d. %s.%s (%s)", i+1, t.Schema, t.Name, t.Type))
	}
	if len(tables) > preview {
		slog.Warn(fmt.Sprintf("  ... and %d more table(s)", len(tables)-preview))
	}

	fmt.Fprint(out, "Are you sure you want to proceed? Type 'yes' to confirm: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	return strings.TrimSpace(line) == "yes"
}
