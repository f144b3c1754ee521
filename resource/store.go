package resource

import (
	"slices"
	"sync"

	"github.com/wippyai/mapbox-gl/errors"
)

// Store retains values keyed by opaque identifiers.
//
// Every mutation takes an exclusive borrow with TryLock. A mutation attempted
// while the store is already borrowed (for instance from inside an Each
// callback) fails with a KindBorrowConflict error instead of blocking, since
// all access happens on one goroutine and waiting would never finish.
type Store[K comparable, V any] struct {
	entries   map[K]V
	name      string
	order     []K
	observers []subscription
	mu        sync.Mutex
	obsMu     sync.RWMutex
	nextSub   Subscription
}

// Subscription identifies an observer registration.
type Subscription uint64

type subscription struct {
	o  Observer
	id Subscription
}

// NewStore creates an empty store. name appears in borrow-conflict errors.
func NewStore[K comparable, V any](name string) *Store[K, V] {
	return &Store[K, V]{
		name:    name,
		entries: make(map[K]V),
	}
}

// NewCallbackStore creates a store for foreign callbacks. Removing a callback
// releases it.
func NewCallbackStore[K comparable, F Releaser](name string) *Store[K, F] {
	return NewStore[K, F](name)
}

// Add inserts value under key, replacing (and dropping) any previous value.
func (s *Store[K, V]) Add(key K, value V) error {
	if !s.mu.TryLock() {
		return errors.BorrowConflict(s.name)
	}
	old, replaced := s.entries[key]
	s.entries[key] = value
	if !replaced {
		s.order = append(s.order, key)
	}
	s.mu.Unlock()

	if replaced {
		drop(old)
		s.notify(Event{Type: EventDropped, Store: s.name, Key: key, Value: old})
	}
	s.notify(Event{Type: EventCreated, Store: s.name, Key: key, Value: value})
	return nil
}

// Get retrieves a value by key.
func (s *Store[K, V]) Get(key K) (V, bool, error) {
	var zero V
	if !s.mu.TryLock() {
		return zero, false, errors.BorrowConflict(s.name)
	}
	defer s.mu.Unlock()

	v, ok := s.entries[key]
	return v, ok, nil
}

// Remove drops the value under key. Removing an absent key succeeds with
// ok == false.
func (s *Store[K, V]) Remove(key K) (V, bool, error) {
	var zero V
	if !s.mu.TryLock() {
		return zero, false, errors.BorrowConflict(s.name)
	}
	v, ok := s.entries[key]
	if ok {
		delete(s.entries, key)
		if i := slices.Index(s.order, key); i >= 0 {
			s.order = slices.Delete(s.order, i, i+1)
		}
	}
	s.mu.Unlock()

	if !ok {
		return zero, false, nil
	}

	drop(v)
	s.notify(Event{Type: EventDropped, Store: s.name, Key: key, Value: v})
	return v, true, nil
}

// Len returns the number of retained values.
func (s *Store[K, V]) Len() int {
	if !s.mu.TryLock() {
		// Called from inside Each; the map is stable for the borrow holder.
		return len(s.entries)
	}
	defer s.mu.Unlock()
	return len(s.entries)
}

// Each iterates over retained values in insertion order while holding the
// exclusive borrow. fn returning false stops the iteration.
func (s *Store[K, V]) Each(fn func(K, V) bool) error {
	if !s.mu.TryLock() {
		return errors.BorrowConflict(s.name)
	}
	defer s.mu.Unlock()

	for _, k := range s.order {
		if !fn(k, s.entries[k]) {
			break
		}
	}
	return nil
}

// Keys returns a snapshot of the keys in insertion order.
func (s *Store[K, V]) Keys() ([]K, error) {
	if !s.mu.TryLock() {
		return nil, errors.BorrowConflict(s.name)
	}
	defer s.mu.Unlock()
	return slices.Clone(s.order), nil
}

// Clear drops every value in insertion order.
func (s *Store[K, V]) Clear() error {
	if !s.mu.TryLock() {
		return errors.BorrowConflict(s.name)
	}
	keys := s.order
	entries := s.entries
	s.order = nil
	s.entries = make(map[K]V)
	s.mu.Unlock()

	for _, k := range keys {
		v := entries[k]
		drop(v)
		s.notify(Event{Type: EventDropped, Store: s.name, Key: k, Value: v})
	}
	return nil
}

// Subscribe adds an observer for lifecycle events. Observers need not be
// comparable; the returned Subscription is what Unsubscribe matches.
func (s *Store[K, V]) Subscribe(o Observer) Subscription {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	s.nextSub++
	s.observers = append(s.observers, subscription{o: o, id: s.nextSub})
	return s.nextSub
}

// Unsubscribe removes the observer registered under sub. Unknown
// subscriptions are ignored.
func (s *Store[K, V]) Unsubscribe(sub Subscription) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	s.observers = slices.DeleteFunc(s.observers, func(e subscription) bool { return e.id == sub })
}

func (s *Store[K, V]) notify(e Event) {
	s.obsMu.RLock()
	observers := slices.Clone(s.observers)
	s.obsMu.RUnlock()
	for _, sub := range observers {
		sub.o.OnResourceEvent(e)
	}
}

func drop(v any) {
	switch d := v.(type) {
	case Dropper:
		d.Drop()
	case Releaser:
		d.Release()
	}
}

var _ Registry[int, string] = (*Store[int, string])(nil)
