package qb

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidIdent is returned when an identifier cannot be safely quoted
var ErrInvalidIdent = errors.New("invalid identifier")

// QuoteIdent wraps an identifier in double quotes for use in DDL.
// Identifiers containing a double quote are rejected outright rather
// than escaped, since no metastore object should ever carry one.
func QuoteIdent(ident string) (string, error) {
	if strings.Contains(ident, `"`) {
		return "", fmt.Errorf("%w: contains double quote: %s", ErrInvalidIdent, ident)
	}
	return `"` + ident + `"`, nil
}

// QualifiedName returns the fully qualified, quoted catalog.schema.table name
func QualifiedName(catalog, schema, table string) (string, error) {
	parts := make([]string, 0, 3)
	for _, ident := range []string{catalog, schema, table} {
		quoted, err := QuoteIdent(ident)
		if err != nil {
			return "", err
		}
		parts = append(parts, quoted)
	}
	return strings.Join(parts, "."), nil
}
