/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package reactive provides a shared value container with synchronous,
// ordered change notification.
package reactive

import "sync"

// Value holds one shared value and the observers watching it.
//
// Writes are visible immediately. Observers run synchronously, in the order
// they subscribed, before the write returns, and only when the stored value
// actually changes. The lock is released before observers run, so an observer
// may write to the same Value again. When that happens the nested write
// notifies everyone and the outer round stops, so no observer ever receives
// an older value after a newer one.
type Value[T comparable] struct {
	mu     sync.Mutex
	v      T
	gen    uint64
	subs   []subscriber[T]
	nextID uint64
}

type subscriber[T comparable] struct {
	id uint64
	fn func(T)
}

// NewValue creates a Value holding initial.
func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{v: initial}
}

// Get returns the current value.
func (r *Value[T]) Get() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.v
}

// Set stores next and reports whether the value changed.
func (r *Value[T]) Set(next T) bool {
	return r.Update(func(T) T { return next })
}

// Update replaces the value with fn(current) as a single step and reports
// whether the value changed. fn must not touch r. If an observer writes
// again before the round finishes, observers later in the order never see
// the superseded value; they only see the newer one.
func (r *Value[T]) Update(fn func(T) T) bool {
	r.mu.Lock()
	prev := r.v
	next := fn(prev)
	if next == prev {
		r.mu.Unlock()
		return false
	}
	r.v = next
	r.gen++
	gen := r.gen
	subs := make([]subscriber[T], len(r.subs))
	copy(subs, r.subs)
	r.mu.Unlock()

	for _, s := range subs {
		if r.generation() != gen {
			break
		}
		s.fn(next)
	}
	return true
}

func (r *Value[T]) generation() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen
}

// Subscribe registers fn to run after every change. The returned function
// removes the subscription; calling it more than once is harmless.
func (r *Value[T]) Subscribe(fn func(T)) (cancel func()) {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.subs = append(r.subs, subscriber[T]{id: id, fn: fn})
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, s := range r.subs {
			if s.id == id {
				r.subs = append(r.subs[:i:i], r.subs[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of registered observers.
func (r *Value[T]) Subscribers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}
