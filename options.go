package circstack

import (
	"github.com/rs/zerolog"
)

// Option is a stack configuration option.
type Option interface {
	apply(*stackOptions)
}

type stackOptions struct {
	logger   zerolog.Logger
	capacity int
}

func newDefaultStackOptions() stackOptions {
	return stackOptions{
		logger:   zerolog.Nop(),
		capacity: 0,
	}
}

// WithCapacity option configures the initial capacity of the backing slice.
//
// The zero value allocates on first insertion.
func WithCapacity(capacity int) Option {
	return funcOption(func(opts *stackOptions) {
		if capacity < 0 {
			panic("circstack: invalid capacity")
		}
		opts.capacity = capacity
	})
}

// WithLogger option configures a logger that records structural mutations at debug level.
//
// The default logger discards all events.
func WithLogger(logger zerolog.Logger) Option {
	return funcOption(func(opts *stackOptions) {
		opts.logger = logger
	})
}

type funcOption func(*stackOptions)

func (o funcOption) apply(opts *stackOptions) {
	o(opts)
}
