package keyedset

import (
	"fmt"
)

// Keyed is a value that carries its own index key.
//
// Key must be pure and O(1). Its result may change between calls as a
// consequence of mutation elsewhere in the element; handling exactly that
// situation is what Set exists for.
type Keyed[K comparable] interface {
	Key() K
}

// Set is a collection of values indexed by their own keys.
//
// Set is not safe for concurrent use.
type Set[K comparable, E Keyed[K]] struct {
	// Each element lives in its own heap box so a Ref can hold a stable
	// pointer to the stored element while the map is rekeyed around it.
	items map[K]*E

	// borrowed is set while a Ref is outstanding or a mutation callback is
	// running. Every public operation checks it: mutable access is exclusive
	// over the whole container.
	borrowed bool

	logger *relocationLogger
	stats  Stats
}

// New creates an empty set.
func New[K comparable, E Keyed[K]](opts ...Option) *Set[K, E] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Set[K, E]{
		items:  make(map[K]*E, o.capacity),
		logger: newRelocationLogger(o.logger),
	}
}

// Insert stores e under its current key. If that slot was occupied, the
// prior occupant is removed and returned with true.
func (s *Set[K, E]) Insert(e E) (E, bool) {
	s.checkBorrow()
	key := e.Key()
	prev, displaced := s.items[key]
	box := e
	s.items[key] = &box
	s.stats.Inserts++
	if displaced {
		s.stats.Displacements++
		s.logger.displaced(key)
		return *prev, true
	}
	var zero E
	return zero, false
}

// Get returns the element stored at key.
func (s *Set[K, E]) Get(key K) (E, bool) {
	s.checkBorrow()
	box, ok := s.items[key]
	if !ok {
		var zero E
		return zero, false
	}
	return *box, true
}

// Contains reports whether an element is stored at key.
func (s *Set[K, E]) Contains(key K) bool {
	s.checkBorrow()
	_, ok := s.items[key]
	return ok
}

// MustGet returns the element stored at key and panics when the key is
// absent. Use it only where presence has already been established; a miss is
// a programming error, not a runtime condition.
func (s *Set[K, E]) MustGet(key K) E {
	e, ok := s.Get(key)
	if !ok {
		panic(fmt.Sprintf("keyedset: key not found: %v", key))
	}
	return e
}

// Remove removes and returns the element stored at key.
func (s *Set[K, E]) Remove(key K) (E, bool) {
	s.checkBorrow()
	box, ok := s.items[key]
	if !ok {
		var zero E
		return zero, false
	}
	delete(s.items, key)
	s.stats.Removes++
	return *box, true
}

// Len returns the number of stored elements.
func (s *Set[K, E]) Len() int {
	s.checkBorrow()
	return len(s.items)
}

// Empty reports whether the set holds no elements.
func (s *Set[K, E]) Empty() bool {
	return s.Len() == 0
}

// Clear removes all elements.
func (s *Set[K, E]) Clear() {
	s.checkBorrow()
	s.stats.Removes += uint64(len(s.items))
	s.items = make(map[K]*E)
}

// Clone returns a deep copy of the set. Element boxes are duplicated, so
// mutations and guards on the clone never touch the original.
func (s *Set[K, E]) Clone() *Set[K, E] {
	s.checkBorrow()
	c := &Set[K, E]{
		items:  make(map[K]*E, len(s.items)),
		logger: s.logger,
		stats:  s.stats,
	}
	for k, box := range s.items {
		b := *box
		c.items[k] = &b
	}
	return c
}

func (s *Set[K, E]) checkBorrow() {
	if s.borrowed {
		panic("keyedset: container is mutably borrowed")
	}
}

// relocate moves box to the slot of its current key if that differs from
// oldKey. It is the single place index coherence is restored after a
// key-changing mutation.
func (s *Set[K, E]) relocate(oldKey K, box *E) {
	newKey := (*box).Key()
	if newKey == oldKey {
		return
	}
	delete(s.items, oldKey)
	if _, occupied := s.items[newKey]; occupied {
		s.stats.Displacements++
		s.logger.displaced(newKey)
	}
	s.items[newKey] = box
	s.stats.Relocations++
	s.logger.relocated(oldKey, newKey)
}
