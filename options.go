package strutils

import (
	"log/slog"
)

const (
	// DefaultMaxSequences is the starting capacity of the sequence registry.
	DefaultMaxSequences = 1000
	// DefaultMaxLists is the starting capacity of the list registry.
	DefaultMaxLists = 500
)

type options struct {
	maxSequences  int
	maxLists      int
	chunkSize     int
	registryLimit int
	arenaLimit    int
	trace         TraceLevel
	handler       Handler
	logger        *slog.Logger
	panicOnError  bool
}

func defaultOptions() options {
	return options{
		maxSequences: DefaultMaxSequences,
		maxLists:     DefaultMaxLists,
		logger:       defaultLogger(),
	}
}

// Option configures a Context.
type Option func(*options)

// WithCapacity overrides the starting capacities of the two registries.
// Values <= 0 keep the defaults.
func WithCapacity(maxSequences, maxLists int) Option {
	return func(o *options) {
		if maxSequences > 0 {
			o.maxSequences = maxSequences
		}
		if maxLists > 0 {
			o.maxLists = maxLists
		}
	}
}

// WithChunkSize sets the arena chunk size in bytes.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithRegistryLimit caps the capacity either registry may grow to.
// Growth past the cap fails with CodeAllocationFailure. 0 means unlimited.
func WithRegistryLimit(n int) Option {
	return func(o *options) {
		o.registryLimit = n
	}
}

// WithArenaLimit caps the bytes the backing arena may reserve.
// 0 means unlimited.
func WithArenaLimit(bytes int) Option {
	return func(o *options) {
		o.arenaLimit = bytes
	}
}

// WithTraceLevel sets the initial trace level.
func WithTraceLevel(l TraceLevel) Option {
	return func(o *options) {
		o.trace = l
	}
}

// WithHandler installs a failure handler.
func WithHandler(fn Handler) Option {
	return func(o *options) {
		o.handler = fn
	}
}

// WithLogger sets the logger used for warn-level traces and lifecycle
// debug records. If nil is passed, a text logger on stderr is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = defaultLogger()
		}
		o.logger = l
	}
}

// WithPanicOnError makes every failure panic with its *Error after the
// handler ran, instead of returning it.
func WithPanicOnError() Option {
	return func(o *options) {
		o.panicOnError = true
	}
}
