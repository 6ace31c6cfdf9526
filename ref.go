package keyedset

// Ref is a scoped mutable reference to one stored element. A live Ref holds
// exclusive access to the whole container: every Set method panics until the
// Ref is released.
//
// Release is idempotent, so the intended pattern is
//
//	ref, ok := s.GetMut(key)
//	if !ok {
//	    return
//	}
//	defer ref.Release()
//	ref.Value().Rename("other") // mutate freely, rekeying included
//
// which guarantees the relocation check runs on every exit path, early
// returns and panics included.
type Ref[K comparable, E Keyed[K]] struct {
	set      *Set[K, E]
	key      K
	box      *E
	released bool
}

// GetMut returns a mutable reference to the element stored at key, or
// (nil, false) when the key is absent.
func (s *Set[K, E]) GetMut(key K) (*Ref[K, E], bool) {
	s.checkBorrow()
	box, ok := s.items[key]
	if !ok {
		return nil, false
	}
	s.borrowed = true
	return &Ref[K, E]{set: s, key: key, box: box}, true
}

// GetOrInsertWith returns a mutable reference to the element stored at key,
// first inserting factory(key) when the slot is empty. factory is never
// invoked for a present key.
//
// factory is expected to produce an element whose own key equals the
// requested key. A mismatch is tolerated rather than rejected: the element
// is filed under the requested key and moved at the next relocation check,
// which is this Ref's release at the latest.
//
// factory runs with the container exclusively held: calling any Set method
// from inside it panics.
func (s *Set[K, E]) GetOrInsertWith(key K, factory func(K) E) *Ref[K, E] {
	s.checkBorrow()
	box, ok := s.items[key]
	if !ok {
		// factory runs with the container exclusively held, like a Modify
		// callback. No Ref exists yet, so clear the flag if it unwinds.
		s.borrowed = true
		acquired := false
		defer func() {
			if !acquired {
				s.borrowed = false
			}
		}()
		e := factory(key)
		box = &e
		s.items[key] = box
		s.stats.Inserts++
		acquired = true
		return &Ref[K, E]{set: s, key: key, box: box}
	}
	s.borrowed = true
	return &Ref[K, E]{set: s, key: key, box: box}
}

// Value returns a pointer to the stored element. Reads and writes through it
// act directly on the container's entry. Value panics after Release.
func (r *Ref[K, E]) Value() *E {
	if r.released {
		panic("keyedset: use of released Ref")
	}
	return r.box
}

// Key returns the key the element was stored under when the Ref was issued.
func (r *Ref[K, E]) Key() K {
	return r.key
}

// Release re-reads the element's key, relocates the element if the key
// changed, and returns exclusive access to the container. Calls after the
// first are no-ops.
func (r *Ref[K, E]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.set.borrowed = false
	r.set.relocate(r.key, r.box)
}
