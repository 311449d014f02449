package bingo

import (
	"errors"
	"fmt"
)

var (
	ErrTableNameAlreadySet = errors.New("table name has already been set")

	ErrDoubleWhereClause = errors.New("where clause is already present")
	ErrDoubleSetClause   = errors.New("set clause is already present")
	ErrDoubleJoinFields  = errors.New("join fields have already been set")

	ErrNoStatement         = errors.New("no statement has been prepared")
	ErrUnknownFetchMode    = errors.New("unknown fetch mode")
	ErrTransactionActive   = errors.New("a transaction is already active")
	ErrNoActiveTransaction = errors.New("no transaction is active")
)

// ErrInvalidParameter occurs when a table name, condition or argument fails validation.
type ErrInvalidParameter struct {
	Value     any
	Operation string
}

func (e ErrInvalidParameter) Error() string {
	return fmt.Sprintf(`the parameter "%v" in %s is invalid`, e.Value, e.Operation)
}

// ErrInvalidQuery occurs when raw query text is rejected before being prepared.
type ErrInvalidQuery struct {
	Query     string
	Operation string
}

func (e ErrInvalidQuery) Error() string {
	return fmt.Sprintf(`the query "%s" in %s is invalid`, e.Query, e.Operation)
}

// ErrInvalidCondition occurs when a condition clause does not look like "KEYWORD operand".
type ErrInvalidCondition struct {
	Condition string
	Operation string
}

func (e ErrInvalidCondition) Error() string {
	return fmt.Sprintf(`the condition "%s" in %s is invalid`, e.Condition, e.Operation)
}

// ErrInvalidCallback occurs when a nil function is given where a transform is required.
type ErrInvalidCallback struct {
	Operation string
}

func (e ErrInvalidCallback) Error() string {
	return fmt.Sprintf("the callback in %s is invalid", e.Operation)
}

// ErrExceededArgumentCount occurs when a join is given the wrong number of field lists,
// or when those lists do not share exactly one field.
type ErrExceededArgumentCount struct {
	Actual    int
	Expected  int
	Operation string
}

func (e ErrExceededArgumentCount) Error() string {
	return fmt.Sprintf("supplied %d arguments instead of %d in %s", e.Actual, e.Expected, e.Operation)
}
