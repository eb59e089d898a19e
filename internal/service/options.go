package service

import (
	"time"

	"go.uber.org/zap"
)

// Option configures a service constructor.
type Option func(*options)

type options struct {
	clock    func() time.Time
	logger   *zap.Logger
	observer UseCaseObserver
}

// WithClock replaces time.Now, for tests and replays.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithObserver(obs UseCaseObserver) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		clock:    time.Now,
		logger:   zap.NewNop(),
		observer: NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
