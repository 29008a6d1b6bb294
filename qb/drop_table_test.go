package qb_test

import (
	"errors"
	"testing"

	"github.com/duneanalytics/droptool/qb"
)

func TestDropTable(t *testing.T) {
	tt := []struct {
		action   *qb.DropTableAction
		expected string
	}{
		{
			qb.DropTable("dune", "spellbook", "trades"),
			`DROP TABLE "dune"."spellbook"."trades"`,
		},
		{
			qb.DropTable("dune", "dune__tmp_jeff", "scratch").IfExists(),
			`DROP TABLE IF EXISTS "dune"."dune__tmp_jeff"."scratch"`,
		},
		{
			qb.DropView("dune", "spellbook", "trades_daily").IfExists(),
			`DROP VIEW IF EXISTS "dune"."spellbook"."trades_daily"`,
		},
	}

	for _, tc := range tt {
		got, err := tc.action.SQL()
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.expected {
			t.Fatalf("expected: %s\ngot: %s", tc.expected, got)
		}
	}
}

func TestDropTableInvalidIdent(t *testing.T) {
	actions := []*qb.DropTableAction{
		qb.DropTable(`du"ne`, "spellbook", "trades"),
		qb.DropTable("dune", `spell"book`, "trades"),
		qb.DropTable("dune", "spellbook", `tra"des`).IfExists(),
		qb.DropView("dune", "spellbook", `v"iew`),
	}

	for _, action := range actions {
		stmt, err := action.SQL()
		if !errors.Is(err, qb.ErrInvalidIdent) {
			t.Fatalf("expected ErrInvalidIdent, got %v", err)
		}
		if stmt != "" {
			t.Fatalf("expected no statement, got %s", stmt)
		}
	}
}

func TestQuoteIdent(t *testing.T) {
	tt := [][]string{
		{"spellbook", `"spellbook"`},
		{"dune__tmp_jeff", `"dune__tmp_jeff"`},
		{"weird name", `"weird name"`},
	}

	for _, tc := range tt {
		got, err := qb.QuoteIdent(tc[0])
		if err != nil {
			t.Fatal(err)
		}
		if got != tc[1] {
			t.Fatalf("expected: %s\ngot: %s", tc[1], got)
		}
	}

	if _, err := qb.QuoteIdent(`tab"le`); !errors.Is(err, qb.ErrInvalidIdent) {
		t.Fatalf("expected ErrInvalidIdent, got %v", err)
	}
}

func TestQualifiedName(t *testing.T) {
	got, err := qb.QualifiedName("dune", "spellbook", "trades")
	if err != nil {
		t.Fatal(err)
	}

	expected := `"dune"."spellbook"."trades"`
	if got != expected {
		t.Fatalf("expected: %s\ngot: %s", expected, got)
	}

	if _, err := qb.QualifiedName("dune", `s"`, "trades"); !errors.Is(err, qb.ErrInvalidIdent) {
		t.Fatalf("expected ErrInvalidIdent, got %v", err)
	}
}
