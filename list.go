package droptool

import (
	"log/slog"

	"github.com/duneanalytics/droptool/qb"
	"github.com/pkg/errors"
)

// ListByPattern returns all tables and views whose schema matches the
// given LIKE pattern, ordered by schema then name.
func ListByPattern(db DB, catalog, pattern string) ([]Table, error) {
	slog.Info("querying tables by schema pattern", "pattern", pattern)

	q, err := tablesQuery(catalog, qb.Like("table_schema", pattern))
	if err != nil {
		return nil, err
	}

	return queryTables(db, q.OrderBy("table_schema", "table_name"))
}

// ListBySchema returns all tables and views in the schema using an exact
// equality match rather than pattern matching.
func ListBySchema(db DB, catalog, schema string) ([]Table, error) {
	slog.Info("querying tables in schema", "schema", schema)

	q, err := tablesQuery(catalog, qb.Eq("table_schema", schema))
	if err != nil {
		return nil, err
	}

	return queryTables(db, q.OrderBy("table_schema", "table_name"))
}

// FindTable looks up a single table by exact schema and name.
// An empty result means the table does not exist.
func FindTable(db DB, catalog, schema, table string) ([]Table, error) {
	slog.Info("querying table", "catalog", catalog, "schema", schema, "table", table)

	q, err := tablesQuery(catalog, qb.Eq("table_schema", schema), qb.Eq("table_name", table))
	if err != nil {
		return nil, err
	}

	return queryTables(db, q)
}

func tablesQuery(catalog string, conds ...qb.BuildFunc) (qb.SelectBuilder, error) {
	quoted, err := qb.QuoteIdent(catalog)
	if err != nil {
		return qb.SelectBuilder{}, err
	}

	conds = append([]qb.BuildFunc{qb.Eq("table_catalog", catalog)}, conds...)

	q := qb.Select("table_schema", "table_name", "table_type").
		From(quoted + ".information_schema.tables").
		Where(qb.And(conds...))

	return q, nil
}

func queryTables(db DB, q qb.SelectBuilder) ([]Table, error) {
	slog.Debug("running metadata query", "sql", q.String(), "values", q.Values())

	rows, err := db.Query(q.String(), q.Values()...)
	if err != nil {
		return nil, errors.Wrap(err, "querying information_schema")
	}
	defer rows.Close()

	var tables []Table
	for rows.Next() {
		var t Table
		if err := rows.Scan(&t.Schema, &t.Name, &t.Type); err != nil {
			return nil, errors.Wrap(err, "scanning table row")
		}
		tables = append(tables, t)
	}

	return tables, errors.Wrap(rows.Err(), "reading table rows")
}
