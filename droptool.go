package droptool

import (
	"database/sql"
)

type (
	// DB interface allows for interoperability between sql.Tx and sql.DB types
	DB interface {
		Exec(sql string, args ...any) (sql.Result, error)
		Query(sql string, args ...any) (*sql.Rows, error)
		QueryRow(sql string, args ...any) *sql.Row
	}

	// Table identifies a metastore table or view
	Table struct {
		Schema string
		Name   string
		Type   string
	}
)

// IsView is true when the metastore reports the object as a view.
// Anything else (BASE TABLE and friends) is dropped as a table.
func (t Table) IsView() bool {
	return t.Type == "VIEW"
}

// Exec executes the sql string returning any error encountered
func Exec(db DB, sql string, args ...any) error {
	_, err := db.Exec(sql, args...)
	return err
}
