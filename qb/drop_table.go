package qb

func DropTable(catalog, schema, table string) *DropTableAction {
	return &DropTableAction{catalog: catalog, schema: schema, table: table}
}

func DropView(catalog, schema, view string) *DropTableAction {
	return &DropTableAction{catalog: catalog, schema: schema, table: view, view: true}
}

type DropTableAction struct {
	catalog  string
	schema   string
	table    string
	view     bool
	ifExists bool
}

func (action *DropTableAction) IfExists() *DropTableAction {
	action.ifExists = true
	return action
}

// SQL renders the statement with all identifiers quoted.
// Fails without producing DDL when any identifier is invalid.
func (action *DropTableAction) SQL() (string, error) {
	name, err := QualifiedName(action.catalog, action.schema, action.table)
	if err != nil {
		return "", err
	}

	stmt := "DROP TABLE "
	if action.view {
		stmt = "DROP VIEW "
	}

	if action.ifExists {
		stmt += "IF EXISTS "
	}

	return stmt + name, nil
}
