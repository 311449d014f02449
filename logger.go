package bingo

import (
	"log"
	"time"
)

// Logger receives every statement the executor runs, with its arguments,
// how long it took and the error it produced, if any.
type Logger interface {
	Log(query string, args []any, duration time.Duration, err error)
}

// NopLogger discards everything. It is the default.
type NopLogger struct{}

func (NopLogger) Log(string, []any, time.Duration, error) {}

// StdLogger writes one line per statement to a standard library logger.
type StdLogger struct {
	*log.Logger
}

func (l StdLogger) Log(query string, args []any, duration time.Duration, err error) {
	if err != nil {
		l.Printf("query failed after %s: %s %v: %v", duration, query, args, err)
		return
	}
	l.Printf("query took %s: %s %v", duration, query, args)
}
