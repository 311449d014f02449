package bingo

import (
	"fmt"
	"strings"
)

// InsertBuilder is a QueryBuilder for building SQL INSERT queries from fields and placeholders.
type InsertBuilder struct {
	into tableName

	fields       []string
	placeholders []string

	err error
}

// Insert will construct a new InsertBuilder for the given table, which is lower-cased.
func Insert(tableName string) InsertBuilder {
	var b InsertBuilder

	t, err := newTableNameFromString(tableName, "Insert")
	if err != nil {
		b.err = err
		return b
	}

	b.into = *t
	return b
}

// Fields sets the column list, used verbatim.
func (b InsertBuilder) Fields(fields ...string) InsertBuilder {
	b.fields = fields
	return b
}

// Values sets the placeholders for each field. Anything which is not a ":name" or
// "?" placeholder is silently dropped.
func (b InsertBuilder) Values(placeholders ...string) InsertBuilder {
	b.placeholders = filterPlaceholders(placeholders)
	return b
}

// BuildQuery will construct the SQL query InsertBuilder is currently representing.
//
//	INSERT INTO dummy_posts(blog_id, blog_title) VALUES (:id, :title)
func (b InsertBuilder) BuildQuery() (string, error) {
	if b.err != nil {
		return "", b.err
	}

	return fmt.Sprintf(
		"INSERT INTO %s(%s) VALUES (%s)",
		b.into,
		strings.Join(b.fields, ", "),
		strings.Join(b.placeholders, ", "),
	), nil
}
