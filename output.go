package bingo

import (
	"encoding/json"
	"slices"
)

// MapFunc transforms a full row sequence into any other value.
type MapFunc func([]Row) any

// Output wraps a row sequence. Its rows are never modified after construction.
type Output struct {
	rows []Row
}

func NewOutput(rows []Row) Output {
	if rows == nil {
		return Output{rows: []Row{}}
	}
	return Output{rows: slices.Clone(rows)}
}

func (o Output) GetData() []Row {
	return o.rows
}

// Map returns fn applied to the rows. A nil fn is an ErrInvalidCallback.
func (o Output) Map(fn MapFunc) (any, error) {
	if fn == nil {
		return nil, ErrInvalidCallback{"Output.Map"}
	}
	return fn(slices.Clone(o.rows)), nil
}

// MapOutput is the typed form of Output.Map.
func MapOutput[T any](o Output, fn func([]Row) T) (T, error) {
	if fn == nil {
		var zero T
		return zero, ErrInvalidCallback{"MapOutput"}
	}
	return fn(slices.Clone(o.rows)), nil
}

// JSON encodes the rows. No rows encode as "[]".
func (o Output) JSON() (string, error) {
	b, err := json.Marshal(o.rows)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
