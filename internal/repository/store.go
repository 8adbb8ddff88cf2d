package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// QueryObserver receives timing for every gateway query.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// Option tunes a SQL repository.
type Option func(*store)

// WithQueryTimeout bounds each query with a context deadline.
func WithQueryTimeout(d time.Duration) Option {
	return func(s *store) { s.timeout = d }
}

// WithQueryObserver reports query durations, typically to Prometheus.
func WithQueryObserver(o QueryObserver) Option {
	return func(s *store) { s.observer = o }
}

type store struct {
	db       *sqlx.DB
	timeout  time.Duration
	observer QueryObserver
}

func newStore(db *sqlx.DB, opts []Option) store {
	s := store{db: db}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// begin derives the query context and returns a func that must run when the query ends.
func (s store) begin(ctx context.Context, label string) (context.Context, func()) {
	start := time.Now()
	cancel := func() {}
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
	}
	return ctx, func() {
		cancel()
		if s.observer != nil {
			s.observer.ObserveDBQuery(label, time.Since(start))
		}
	}
}
