package bingo

// SQLStateSuccess is the SQLSTATE reported when a statement completed without error.
const SQLStateSuccess = "00000"

// Row maps a column name to its value.
type Row map[string]any

// RowFunc transforms a single fetched row. It is only applied when Config.CallbackFetch is set.
type RowFunc func(Row) Row

// ResultSet is what a fetch returns: the affected row count, the SQLSTATE and the rows.
type ResultSet struct {
	AffectedRows int64    `json:"affectedRows"`
	ErrorCode    string   `json:"errCode"`
	ErrorInfo    []string `json:"errMsg"`
	Rows         []Row    `json:"rows"`
}

func newResultSet(affected int64, rows []Row) *ResultSet {
	if rows == nil {
		rows = []Row{}
	}
	return &ResultSet{
		AffectedRows: affected,
		ErrorCode:    SQLStateSuccess,
		ErrorInfo:    []string{SQLStateSuccess, "", ""},
		Rows:         rows,
	}
}

// Output wraps the rows of the ResultSet.
func (r *ResultSet) Output() Output {
	return NewOutput(r.Rows)
}
