package strutils

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

var errRegistryFull = errors.New("registry limit reached")

// Registry is the growable table of handles a Context owns.
//
// Entries[:Occupancy] are the live handles in registration order and
// len(Entries) == Capacity. Callers reaching in through Context.Sequences or
// Context.Lists may edit the fields directly, but must keep
// Occupancy <= Capacity == len(Entries) and must not drop a sequence that a
// registered List still references.
type Registry[T any] struct {
	Entries   []T
	Occupancy int
	Capacity  int

	limit int
}

// newRegistry starts at capacity, clamped to limit when one is set.
func newRegistry[T any](capacity, limit int) *Registry[T] {
	if limit > 0 && capacity > limit {
		capacity = limit
	}
	return &Registry[T]{
		Entries:  make([]T, capacity),
		Capacity: capacity,
		limit:    limit,
	}
}

// Len returns the number of live entries.
func (r *Registry[T]) Len() int {
	return r.Occupancy
}

// At returns the i-th registered handle.
func (r *Registry[T]) At(i int) T {
	return r.Entries[:r.Occupancy][i]
}

// All iterates the live entries in registration order.
func (r *Registry[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range r.Entries[:r.Occupancy] {
			if !yield(i, v) {
				return
			}
		}
	}
}

// insert appends v, doubling capacity when the table is full.
func (r *Registry[T]) insert(v T) error {
	if err := r.reserve(); err != nil {
		return err
	}
	r.Entries[r.Occupancy] = v
	r.Occupancy++
	return nil
}

// reserve makes room for one more entry. After it succeeds, the next insert
// cannot fail.
func (r *Registry[T]) reserve() error {
	if r.Occupancy < r.Capacity {
		return nil
	}
	return r.grow()
}

func (r *Registry[T]) grow() error {
	newCap := r.Capacity * 2
	switch {
	case r.Capacity == 0:
		newCap = 1
	case r.Capacity > math.MaxInt/2:
		return fmt.Errorf("%w: capacity %d cannot double", errRegistryFull, r.Capacity)
	}
	if r.limit > 0 && newCap > r.limit {
		return fmt.Errorf("%w: %d > %d", errRegistryFull, newCap, r.limit)
	}
	entries := make([]T, newCap)
	copy(entries, r.Entries[:r.Occupancy])
	r.Entries = entries
	r.Capacity = newCap
	return nil
}

// clear drops every entry in registration order and empties the table.
func (r *Registry[T]) clear() int {
	n := r.Occupancy
	var zero T
	for i := range r.Entries[:n] {
		r.Entries[i] = zero
	}
	r.Entries = nil
	r.Occupancy = 0
	r.Capacity = 0
	return n
}
