package bingo

import (
	"context"
	"database/sql"
	"slices"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// Conn is the connection a Query prepares statements against. Both *sqlx.DB and *sqlx.Tx satisfy it.
type Conn interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

var (
	_ Conn = (*sqlx.DB)(nil)
	_ Conn = (*sqlx.Tx)(nil)
)

// Query executes raw SQL through prepared statements, one stage at a time:
//
//	result, err := NewQuery(db).
//		Query(ctx, "SELECT blog_id, blog_title FROM dummy_posts WHERE blog_title LIKE :title").
//		Bind(ctx, Bind{":title", "%cool%", ParamStr}).
//		Mode("fetch-all").
//		Fetch(nil)
//
// A Query keeps only the statement it prepared last, and is not safe for concurrent use.
type Query struct {
	conn Conn
	stmt *sqlx.NamedStmt

	cfg    Config
	logger Logger
}

// NewQuery will construct a Query on the connection, using DefaultConfig and a NopLogger unless options say otherwise.
func NewQuery(conn Conn, opts ...Option) *Query {
	q := &Query{
		conn:   conn,
		cfg:    DefaultConfig(),
		logger: NopLogger{},
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Get returns the connection the Query was constructed with.
func (q *Query) Get() Conn {
	return q.conn
}

// New returns a Query for another connection, with the same configuration and logger.
// The statement prepared by q is not shared.
func (q *Query) New(conn Conn) *Query {
	return &Query{
		conn:   conn,
		cfg:    q.cfg,
		logger: q.logger,
	}
}

// Close releases the statement prepared last, if any.
func (q *Query) Close() error {
	if q.stmt == nil {
		return nil
	}
	err := q.stmt.Close()
	q.stmt = nil
	return err
}

// Prepared is a statement ready to have its parameters bound.
type Prepared struct {
	q     *Query
	query string
	stmt  *sqlx.NamedStmt

	err error
}

// Query validates the raw query text and prepares it, replacing any statement
// prepared earlier. Named placeholders (":title") are rewritten to the driver's bind style.
func (q *Query) Query(ctx context.Context, query string) Prepared {
	p := Prepared{q: q, query: query}

	if _, err := validateRawQuery(query, "Query.Query"); err != nil {
		p.err = err
		return p
	}

	if err := q.Close(); err != nil {
		p.err = err
		return p
	}

	stmt, err := q.conn.PrepareNamedContext(ctx, escapeQuotedColons(query))
	if err != nil {
		p.err = err
		return p
	}

	q.stmt = stmt
	p.stmt = stmt
	return p
}

// escapeQuotedColons doubles every colon inside a quoted literal or identifier, so that
// '12:30' is not read as a ":30" placeholder. sqlx turns "::" back into ":".
func escapeQuotedColons(query string) string {
	if !strings.Contains(query, ":") {
		return query
	}

	sb := strings.Builder{}
	var quote rune
	escaped := false
	for _, r := range query {
		switch {
		case quote == 0:
			if r == '\'' || r == '"' || r == '`' {
				quote = r
			}
		case escaped:
			escaped = false
		case r == '\\' && quote != '`':
			escaped = true
		case r == quote:
			quote = 0
		case r == ':':
			sb.WriteRune(':')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Build prepares the query represented by a builder.
func (q *Query) Build(ctx context.Context, qb QueryBuilder) Prepared {
	query, err := qb.BuildQuery()
	if err != nil {
		return Prepared{q: q, err: err}
	}
	return q.Query(ctx, query)
}

// Executed holds the outcome of running a statement, waiting for a fetch mode.
type Executed struct {
	q        *Query
	columns  []string
	rows     []Row
	affected int64

	err error
}

// Bind binds the parameters in order and executes the statement.
// Statements with named placeholders are bound by name, others by position.
// Errors from the driver are returned as they are.
func (p Prepared) Bind(ctx context.Context, binds ...Bind) Executed {
	e := Executed{q: p.q}
	if p.err != nil {
		e.err = p.err
		return e
	}
	if p.stmt == nil {
		e.err = ErrNoStatement
		return e
	}

	var (
		named = make(map[string]any, len(binds))
		args  = make([]any, 0, len(binds))
	)
	for _, b := range binds {
		v := b.coerce()
		named[b.name()] = v
		args = append(args, v)
	}

	start := time.Now()
	if returnsRows(p.query) {
		e.columns, e.rows, e.err = p.queryRows(ctx, named, args)
		e.affected = int64(len(e.rows))
	} else {
		e.affected, e.err = p.exec(ctx, named, args)
	}
	p.q.logger.Log(p.query, args, time.Since(start), e.err)

	return e
}

func (p Prepared) queryRows(ctx context.Context, named map[string]any, args []any) ([]string, []Row, error) {
	var (
		rows *sqlx.Rows
		err  error
	)
	if len(p.stmt.Params) > 0 {
		rows, err = p.stmt.QueryxContext(ctx, named)
	} else {
		rows, err = p.stmt.Stmt.QueryxContext(ctx, args...)
	}
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var scanned []Row
	for rows.Next() {
		row := make(map[string]any)
		if err = rows.MapScan(row); err != nil {
			return nil, nil, err
		}

		// Text columns come back as bytes from most drivers.
		for k, v := range row {
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}

		scanned = append(scanned, row)
	}

	return columns, scanned, rows.Err()
}

func (p Prepared) exec(ctx context.Context, named map[string]any, args []any) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if len(p.stmt.Params) > 0 {
		res, err = p.stmt.ExecContext(ctx, named)
	} else {
		res, err = p.stmt.Stmt.ExecContext(ctx, args...)
	}
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

// rowKeywords are the leading keywords of statements producing a result set. Statements are
// judged by their first word only, apart from a RETURNING clause, so queries opening with "(" or
// a comment are not recognised (validateRawQuery rejects those anyway).
var rowKeywords = []string{"SELECT", "WITH", "SHOW", "PRAGMA", "EXPLAIN", "DESCRIBE", "DESC", "VALUES"}

// returnsRows reports whether the statement produces a result set. INSERT, UPDATE and DELETE
// with a RETURNING clause are queried too.
func returnsRows(query string) bool {
	fields := strings.Fields(strings.ToUpper(query))
	if len(fields) == 0 {
		return false
	}

	if slices.Contains(rowKeywords, fields[0]) {
		return true
	}
	return slices.Contains(fields, "RETURNING")
}

// Fetcher shapes the executed rows into a ResultSet.
type Fetcher struct {
	e    Executed
	mode FetchMode

	err error
}

// Mode selects how rows are fetched, by a name such as "fetch-all", "fetch" or "fetch-column".
func (e Executed) Mode(name string) Fetcher {
	f := Fetcher{e: e}
	if e.err != nil {
		f.err = e.err
		return f
	}

	f.mode, f.err = ParseFetchMode(name)
	return f
}

// Fetch returns the result. The callback is only applied when Config.CallbackFetch is set,
// and may be nil.
func (f Fetcher) Fetch(callback RowFunc) (*ResultSet, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.e.q == nil {
		return nil, ErrNoStatement
	}

	var rows []Row
	switch f.mode {
	case FetchAll:
		rows = f.e.rows
	case FetchRow:
		if len(f.e.rows) > 0 {
			rows = f.e.rows[:1]
		}
	case FetchColumn:
		if len(f.e.rows) > 0 {
			column := f.e.columns[0]
			rows = []Row{{column: f.e.rows[0][column]}}
		}
	}

	if f.e.q.cfg.CallbackFetch && callback != nil {
		mapped := make([]Row, len(rows))
		for i, row := range rows {
			mapped[i] = callback(row)
		}
		rows = mapped
	}

	return newResultSet(f.e.affected, rows), nil
}
