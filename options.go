package bingo

type Option func(*Query)

// WithConfig sets the configuration a Query fetches with. DefaultConfig is used otherwise.
func WithConfig(cfg Config) Option {
	return func(q *Query) {
		q.cfg = cfg
	}
}

// WithLogger sets the Logger each executed statement is reported to.
func WithLogger(logger Logger) Option {
	return func(q *Query) {
		if logger == nil {
			logger = NopLogger{}
		}
		q.logger = logger
	}
}
