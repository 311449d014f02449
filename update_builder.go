package bingo

import (
	"fmt"
)

// UpdateBuilder is a QueryBuilder for building SQL UPDATE queries.
// Example:
//
//	query, err := Update("dummy_posts").
//		Set("blog_title = :title").
//		BuildQuery() // UPDATE dummy_posts SET blog_title = :title
type UpdateBuilder struct {
	from tableName

	assignment string

	err error
}

// Update will construct a new UpdateBuilder for the given table, which is lower-cased.
func Update(tableName string) UpdateBuilder {
	var b UpdateBuilder

	t, err := newTableNameFromString(tableName, "Update")
	if err != nil {
		b.err = err
		return b
	}

	b.from = *t
	return b
}

// Set will apply the text following SET. It must read as "column operand", otherwise
// ErrInvalidParameter is reported. Set cannot be called more than once.
func (b UpdateBuilder) Set(assignment string) UpdateBuilder {
	if b.err != nil {
		return b
	}
	if b.assignment != "" {
		b.err = ErrDoubleSetClause
		return b
	}

	a, err := validateAssignment(assignment, "UpdateBuilder.Set")
	if err != nil {
		b.err = err
		return b
	}

	b.assignment = a
	return b
}

// BuildQuery will construct the SQL query UpdateBuilder is currently representing.
func (b UpdateBuilder) BuildQuery() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if b.assignment == "" {
		return "", ErrInvalidParameter{"", "UpdateBuilder.Set"}
	}

	return fmt.Sprintf("UPDATE %s SET %s", b.from, b.assignment), nil
}
