package qb

import "strings"

type (
	SelectBuilder struct{ *QueryBuilder }
	BuildFunc     func(*QueryBuilder)
)

func Select(v ...string) SelectBuilder {
	qb := New()
	b := SelectBuilder{qb}
	b.write("SELECT ")
	if len(v) == 0 {
		b.write("*")
	} else {
		b.write(strings.Join(v, ", "))
	}
	return b
}

func (b SelectBuilder) From(table string) SelectBuilder {
	b.write(" FROM ")
	b.write(table)
	return b
}

func (b SelectBuilder) Where(v ...BuildFunc) SelectBuilder {
	b.write(" WHERE ")
	b.apply(v...)
	return b
}

func (b SelectBuilder) OrderBy(cols ...string) SelectBuilder {
	b.write(" ORDER BY ")
	b.write(strings.Join(cols, ", "))
	return b
}

func And(v ...BuildFunc) BuildFunc {
	return func(qb *QueryBuilder) {
		for i := range v {
			if i > 0 {
				qb.write(" AND ")
			}
			v[i](qb)
		}
	}
}

func Eq(lhs string, rhs any) BuildFunc {
	return func(qb *QueryBuilder) {
		qb.write(lhs)
		qb.write(" = ")
		qb.addValues(rhs)
		qb.write(qb.dialect.Placeholder(qb.n()))
	}
}

func Like(lhs string, rhs any) BuildFunc {
	return func(qb *QueryBuilder) {
		qb.write(lhs)
		qb.write(" LIKE ")
		qb.addValues(rhs)
		qb.write(qb.dialect.Placeholder(qb.n()))
	}
}
