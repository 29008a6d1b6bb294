package qb_test

import (
	"testing"

	"github.com/duneanalytics/droptool/qb"
)

func TestSelect(t *testing.T) {
	tt := [][]string{
		{
			qb.Select().From("users").Where(qb.Eq("id", 123)).String(),
			"SELECT * FROM users WHERE id = ?",
		},
		{
			qb.Select("table_schema", "table_name", "table_type").
				From("dune.information_schema.tables").
				Where(qb.And(qb.Eq("table_catalog", "dune"), qb.Like("table_schema", "dune__tmp_%"))).
				OrderBy("table_schema", "table_name").
				String(),
			"SELECT table_schema, table_name, table_type FROM dune.information_schema.tables WHERE table_catalog = ? AND table_schema LIKE ? ORDER BY table_schema, table_name",
		},
	}

	for _, tc := range tt {
		got := tc[0]
		expected := tc[1]
		if got != expected {
			t.Fatalf("expected: %s\ngot: %s", expected, got)
		}
	}
}

func TestSelectPostgresDialect(t *testing.T) {
	b := qb.Select("username").From("users")
	b.SetDialect(qb.PostgresDialect{})
	got := b.Where(qb.Eq("username", "frank")).String()
	expected := "SELECT username FROM users WHERE username = $1"
	if got != expected {
		t.Fatalf("expected: %s\ngot: %s", expected, got)
	}
}

func TestSelectValues(t *testing.T) {
	b := qb.Select("table_name").
		From("dune.information_schema.tables").
		Where(qb.And(qb.Eq("table_catalog", "dune"), qb.Eq("table_schema", "spellbook")))

	values := b.Values()
	if len(values) != 2 {
		t.Fatalf("expected 2 bound values, got %d", len(values))
	}

	if values[0] != "dune" || values[1] != "spellbook" {
		t.Fatalf("unexpected bound values: %v", values)
	}
}
