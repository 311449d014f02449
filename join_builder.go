package bingo

import (
	"fmt"
	"slices"
	"strings"
)

type JoinType string

const (
	JoinLeft  JoinType = "LEFT"
	JoinRight JoinType = "RIGHT"
)

// keyword returns the JOIN keyword, a plain JOIN for anything but LEFT or RIGHT.
func (j JoinType) keyword() string {
	switch j {
	case JoinLeft, JoinRight:
		return string(j) + " JOIN"
	default:
		return "JOIN"
	}
}

// JoinBuilder is a QueryBuilder for selecting across two tables which share exactly one field.
// Example:
//
//	query, err := Join("blog").
//		With("tokens").
//		Fields([]string{"blog_text", "token_id"}, []string{"token_id", "token_string"}).
//		Type(JoinLeft).
//		BuildQuery()
//
// Produces:
//
//	SELECT blog.blog_text, blog.token_id, tokens.token_id, tokens.token_string FROM blog LEFT JOIN tokens ON blog.token_id = tokens.token_id
type JoinBuilder struct {
	first  tableName
	second tableName

	firstFields  []string
	secondFields []string
	key          string
	hasFields    bool

	joinType JoinType

	err error
}

// Join will construct a new JoinBuilder with the left-hand table, which is lower-cased.
func Join(tableName string) JoinBuilder {
	var b JoinBuilder

	t, err := newTableNameFromString(tableName, "Join")
	if err != nil {
		b.err = err
		return b
	}

	b.first = *t
	return b
}

// With sets the right-hand table. This cannot be called more than once.
func (b JoinBuilder) With(tableName string) JoinBuilder {
	if b.err != nil {
		return b
	}
	if b.second.isSet() {
		b.err = ErrTableNameAlreadySet
		return b
	}

	t, err := newTableNameFromString(tableName, "JoinBuilder.With")
	if err != nil {
		b.err = err
		return b
	}

	b.second = *t
	return b
}

// Fields takes exactly two field lists, one per table. The lists must have exactly one
// field in common, which becomes the join key.
func (b JoinBuilder) Fields(fieldLists ...[]string) JoinBuilder {
	if b.err != nil {
		return b
	}
	if b.hasFields {
		b.err = ErrDoubleJoinFields
		return b
	}

	if len(fieldLists) != 2 {
		b.err = ErrExceededArgumentCount{len(fieldLists), 2, "JoinBuilder.Fields"}
		return b
	}

	shared := intersect(fieldLists[0], fieldLists[1])
	if len(shared) != 1 {
		b.err = ErrExceededArgumentCount{len(shared), 1, "JoinBuilder.Fields"}
		return b
	}

	b.firstFields = fieldLists[0]
	b.secondFields = fieldLists[1]
	b.key = shared[0]
	b.hasFields = true
	return b
}

// Type selects a LEFT or RIGHT join. Any other value results in a plain JOIN.
func (b JoinBuilder) Type(joinType JoinType) JoinBuilder {
	b.joinType = joinType
	return b
}

func (b JoinBuilder) BuildQuery() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if !b.second.isSet() {
		return "", ErrInvalidParameter{"", "JoinBuilder.With"}
	}
	if !b.hasFields {
		return "", ErrExceededArgumentCount{0, 2, "JoinBuilder.Fields"}
	}

	return fmt.Sprintf(
		"SELECT %s, %s FROM %s %s %s ON %s = %s",
		strings.Join(b.first.qualify(b.firstFields), ", "),
		strings.Join(b.second.qualify(b.secondFields), ", "),
		b.first,
		b.joinType.keyword(),
		b.second,
		b.first.qualify([]string{b.key})[0],
		b.second.qualify([]string{b.key})[0],
	), nil
}

// intersect returns the values of a which are also present in b, in the order of a.
// Duplicates in a are kept, so a key listed twice counts twice.
func intersect(a, b []string) []string {
	var shared []string
	for _, v := range a {
		if slices.Contains(b, v) {
			shared = append(shared, v)
		}
	}
	return shared
}
