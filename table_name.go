package bingo

import (
	"strings"
)

type tableName struct {
	schema    string
	tableName string
}

// newTableNameFromString lower-cases s and splits off an optional schema.
// operation names the builder stage reporting the failure.
func newTableNameFromString(s, operation string) (*tableName, error) {
	parts := strings.Split(strings.ToLower(s), ".")
	if s == "" || len(parts) > 2 {
		return nil, ErrInvalidParameter{s, operation}
	}
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			return nil, ErrInvalidParameter{s, operation}
		}
	}

	var t tableName
	if len(parts) > 1 {
		// Schema was provided in tableName, it comes before the actual table name.
		t.schema = parts[0]
	}

	// Whether a schema is provided or not, the table name is always the last part.
	t.tableName = parts[len(parts)-1]

	return &t, nil
}

func (t tableName) isSet() bool {
	return t.tableName != ""
}

func (t tableName) String() string {
	if t.schema != "" {
		return t.schema + "." + t.tableName
	}

	return t.tableName
}

// qualify prefixes each field with the table, as in "blog.token_id".
func (t tableName) qualify(fields []string) []string {
	qualified := make([]string, len(fields))
	for i, f := range fields {
		qualified[i] = t.String() + "." + f
	}
	return qualified
}
