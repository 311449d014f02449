package bingo

import (
	"fmt"
)

// DeleteBuilder is a QueryBuilder for building SQL DELETE queries, which always carry a condition.
type DeleteBuilder struct {
	from tableName

	condition string

	err error
}

// Delete will construct a new DeleteBuilder for the given table, which is lower-cased.
func Delete(tableName string) DeleteBuilder {
	var b DeleteBuilder

	t, err := newTableNameFromString(tableName, "Delete")
	if err != nil {
		b.err = err
		return b
	}

	b.from = *t
	return b
}

// Where will apply the text following WHERE, such as "blog_id = :id".
// A condition is mandatory, and a malformed one is reported as ErrInvalidParameter.
// Where cannot be called more than once.
func (b DeleteBuilder) Where(condition string) DeleteBuilder {
	if b.err != nil {
		return b
	}
	if b.condition != "" {
		b.err = ErrDoubleWhereClause
		return b
	}

	c, err := validateAssignment(condition, "DeleteBuilder.Where")
	if err != nil {
		b.err = err
		return b
	}

	b.condition = c
	return b
}

// BuildQuery will construct the SQL query DeleteBuilder is currently representing.
//
//	DELETE FROM dummy_posts WHERE blog_id = :id
func (b DeleteBuilder) BuildQuery() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if b.condition == "" {
		return "", ErrInvalidParameter{"", "DeleteBuilder.Where"}
	}

	return fmt.Sprintf("DELETE FROM %s WHERE %s", b.from, b.condition), nil
}
