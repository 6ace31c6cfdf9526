package keyedset

import "log/slog"

type options struct {
	capacity int
	logger   *slog.Logger
}

// Option configures a Set at construction time.
type Option func(*options)

// WithCapacity pre-sizes the internal index for n elements.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithLogger enables structured debug logging of displacements and
// relocations. Logging is off by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
