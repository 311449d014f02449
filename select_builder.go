package bingo

import (
	"fmt"
	"strings"
)

// SelectBuilder is a QueryBuilder for building SQL SELECT queries.
// Example:
//
//	query, err := Select("blog_title", "blog_id").
//		From("dummy_posts").
//		Where("WHERE blog_title LIKE :title").
//		BuildQuery()
type SelectBuilder struct {
	fields []string

	from tableName

	condition    string
	hasCondition bool

	err error
}

// Select will construct a new SelectBuilder. The fields are used verbatim.
func Select(fields ...string) SelectBuilder {
	return SelectBuilder{fields: fields}
}

// From will set the table name, which is lower-cased. This cannot be called more than once.
func (b SelectBuilder) From(tableName string) SelectBuilder {
	if b.err != nil {
		return b
	}
	if b.from.isSet() {
		b.err = ErrTableNameAlreadySet
		return b
	}

	t, err := newTableNameFromString(tableName, "SelectBuilder.From")
	if err != nil {
		b.err = err
		return b
	}

	b.from = *t
	return b
}

// Where will append a condition such as "WHERE blog_id = :id" after the table name.
// Where cannot be called more than once.
func (b SelectBuilder) Where(condition string) SelectBuilder {
	if b.err != nil {
		return b
	}
	if b.hasCondition {
		b.err = ErrDoubleWhereClause
		return b
	}

	c, err := validateCondition(condition, "SelectBuilder.Where")
	if err != nil {
		b.err = err
		return b
	}

	b.condition = c
	b.hasCondition = true
	return b
}

// BuildQuery will construct the SQL query SelectBuilder is currently representing.
// Without a condition the query keeps its trailing space:
//
//	SELECT blog_title, blog_id FROM dummy_posts
func (b SelectBuilder) BuildQuery() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if !b.from.isSet() {
		return "", ErrInvalidParameter{"", "SelectBuilder.From"}
	}

	return fmt.Sprintf("SELECT %s FROM %s %s", strings.Join(b.fields, ", "), b.from, b.condition), nil
}
