package motion

import "github.com/zeusync/motion/internal/core/observability/log"

type options struct {
	logger log.Log
}

// Option configures a motion model at construction.
type Option func(*options)

// WithLogger sets the logger used for update diagnostics.
func WithLogger(logger log.Log) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: log.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
