package droptool

import (
	"log/slog"

	"github.com/duneanalytics/droptool/qb"
	"github.com/pkg/errors"
)

// Summary reports the outcome of a batch of drops
type Summary struct {
	Total   int
	Success int
	Failed  int
}

// Drop removes a single table or view from the metastore. The statement
// is always logged; in dry-run mode it is never sent to the server.
// Invalid identifiers fail before any DDL is built.
func Drop(db DB, catalog string, t Table, dryRun bool) error {
	action := qb.DropTable(catalog, t.Schema, t.Name)
	if t.IsView() {
		action = qb.DropView(catalog, t.Schema, t.Name)
	}

	stmt, err := action.IfExists().SQL()
	if err != nil {
		return errors.Wrapf(err, "%s.%s", t.Schema, t.Name)
	}

	slog.Info("DROP", "statement", stmt)

	if dryRun {
		slog.Debug("dry run mode, statement not executed")
		return nil
	}

	if err := Exec(db, stmt); err != nil {
		return errors.Wrapf(err, "dropping %s.%s", t.Schema, t.Name)
	}

	slog.Info("dropped", "schema", t.Schema, "table", t.Name)
	return nil
}

// DropAll drops every table in the list, continuing past per-table
// failures. The returned summary always satisfies Success+Failed == Total.
func DropAll(db DB, catalog string, tables []Table, dryRun bool) Summary {
	summary := Summary{Total: len(tables)}

	if len(tables) == 0 {
		slog.Info("no tables found to drop")
		return summary
	}

	slog.Info("preparing to drop tables", "count", len(tables))

	for _, t := range tables {
		if err := Drop(db, catalog, t, dryRun); err != nil {
			slog.Error("drop failed", "schema", t.Schema, "table", t.Name, "error", err)
			summary.Failed++
			continue
		}
		summary.Success++
	}

	slog.Info("drop summary", "success", summary.Success, "failed", summary.Failed)
	return summary
}
