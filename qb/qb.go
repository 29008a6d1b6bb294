package qb

import (
	"strconv"
	"strings"
)

type Dialect interface {
	Placeholder(n int) string
}

// TrinoDialect binds every parameter positionally with '?'.
type TrinoDialect struct{}

func (TrinoDialect) Placeholder(int) string { return "?" }

type PostgresDialect struct{}

func (PostgresDialect) Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

var DefaultDialect Dialect = TrinoDialect{}

type QueryBuilder struct {
	dialect Dialect
	b       *strings.Builder
	v       []interface{}
}

func (qb *QueryBuilder) apply(v ...BuildFunc) {
	for i := range v {
		v[i](qb)
	}
}

func (qb *QueryBuilder) n() int {
	return len(qb.v)
}

func (qb *QueryBuilder) String() string {
	return qb.b.String()
}

// Values returns the bound parameters in placeholder order
func (qb *QueryBuilder) Values() []interface{} {
	return qb.v
}

func New() *QueryBuilder {
	return &QueryBuilder{
		b:       new(strings.Builder),
		v:       make([]interface{}, 0),
		dialect: DefaultDialect,
	}
}

func (qb *QueryBuilder) SetDialect(d Dialect) *QueryBuilder {
	qb.dialect = d
	return qb
}

func (qb *QueryBuilder) write(sql string) {
	qb.b.WriteString(sql)
}

func (qb *QueryBuilder) addValues(values ...interface{}) {
	qb.v = append(qb.v, values...)
}
