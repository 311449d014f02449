package bingo

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// Transaction runs queries against a database, inside a transaction between Begin
// and Commit or Cancel.
//
//	t := NewTransaction(db)
//	if err := t.Begin(ctx); err != nil {
//		return err
//	}
//	if _, err := t.Query().Build(ctx, Delete("dummy_posts").Where("blog_id = :id")).
//		Bind(ctx, Bind{":id", 1, ParamInt}).
//		Mode("fetch").
//		Fetch(nil); err != nil {
//		_ = t.Cancel()
//		return err
//	}
//	return t.Commit()
type Transaction struct {
	db *sqlx.DB
	tx *sqlx.Tx

	opts   []Option
	logger Logger
}

func NewTransaction(db *sqlx.DB, opts ...Option) *Transaction {
	t := &Transaction{db: db, opts: opts}
	t.logger = NewQuery(db, opts...).logger
	return t
}

// Begin starts a transaction. Only one can be active at a time.
func (t *Transaction) Begin(ctx context.Context) error {
	if t.tx != nil {
		return ErrTransactionActive
	}

	start := time.Now()
	tx, err := t.db.BeginTxx(ctx, nil)
	t.logger.Log("BEGIN", nil, time.Since(start), err)
	if err != nil {
		return err
	}

	t.tx = tx
	return nil
}

// Commit commits the active transaction.
func (t *Transaction) Commit() error {
	if t.tx == nil {
		return ErrNoActiveTransaction
	}

	start := time.Now()
	err := t.tx.Commit()
	t.logger.Log("COMMIT", nil, time.Since(start), err)
	t.tx = nil
	return err
}

// Cancel rolls back the active transaction.
func (t *Transaction) Cancel() error {
	if t.tx == nil {
		return ErrNoActiveTransaction
	}

	start := time.Now()
	err := t.tx.Rollback()
	t.logger.Log("ROLLBACK", nil, time.Since(start), err)
	t.tx = nil
	return err
}

// Validate reports whether a transaction is active.
func (t *Transaction) Validate() bool {
	return t.tx != nil
}

// Query returns a new Query running inside the active transaction, or directly against
// the database when none is active. Statements prepared inside a transaction are released
// when it ends; otherwise the caller must Close the Query.
func (t *Transaction) Query() *Query {
	if t.tx != nil {
		return NewQuery(t.tx, t.opts...)
	}
	return NewQuery(t.db, t.opts...)
}
