package strutils

import (
	"sync"
)

// SafeContext is a mutex-protected wrapper around Context for concurrent
// access. Each call holds the lock for its whole duration, so a function
// passed to Do sees a consistent registry.
type SafeContext struct {
	mu sync.Mutex
	c  *Context
}

// NewSafeContext creates a new thread-safe Context.
func NewSafeContext(opts ...Option) *SafeContext {
	return &SafeContext{c: New(opts...)}
}

// Do runs fn with exclusive access to the Context. Sequences produced inside
// fn must not be used after the next Release.
func (s *SafeContext) Do(fn func(c *Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.c)
}

// Release thread-safely releases everything the Context owns.
func (s *SafeContext) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Release()
}

// Init thread-safely starts a new epoch.
func (s *SafeContext) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Init()
}

// Metrics thread-safely returns a snapshot of the Context.
func (s *SafeContext) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Metrics()
}

// Collector returns a Prometheus collector that takes the lock on scrape.
func (s *SafeContext) Collector(namespace string) *Collector {
	return newCollector(s.Metrics, namespace)
}
