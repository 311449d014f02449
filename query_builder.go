package bingo

// QueryBuilder is implemented by every statement builder. BuildQuery reports the
// first error recorded while the builder was being configured.
type QueryBuilder interface {
	BuildQuery() (query string, err error)
}

var (
	_ QueryBuilder = SelectBuilder{}
	_ QueryBuilder = InsertBuilder{}
	_ QueryBuilder = UpdateBuilder{}
	_ QueryBuilder = DeleteBuilder{}
	_ QueryBuilder = JoinBuilder{}
)
