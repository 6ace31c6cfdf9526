package keyedset

// Modify applies fn to the element stored at key and reports whether an
// element was found. fn is invoked exactly once with mutable access; if it
// changes the element's key, the element is moved to its new slot before
// Modify returns, so no caller can observe it filed under the stale key.
//
// The container is exclusively held for the duration of fn: calling any Set
// method from inside fn panics. The relocation check runs even if fn panics.
func (s *Set[K, E]) Modify(key K, fn func(*E)) bool {
	s.checkBorrow()
	box, ok := s.items[key]
	if !ok {
		return false
	}
	s.borrowed = true
	defer func() {
		s.borrowed = false
		s.relocate(key, box)
	}()
	fn(box)
	return true
}

// Modify applies fn to the element stored at key and returns its result,
// relocating the element if fn changed its key. It is the result-capturing
// form of Set.Modify; it lives at package level because Go methods cannot
// introduce additional type parameters.
func Modify[K comparable, E Keyed[K], R any](s *Set[K, E], key K, fn func(*E) R) (R, bool) {
	var res R
	ok := s.Modify(key, func(e *E) {
		res = fn(e)
	})
	return res, ok
}

// ModifyAll applies fn to every stored element in unspecified order,
// relocating any element whose key changed. It is a Retain that never drops.
func (s *Set[K, E]) ModifyAll(fn func(*E)) {
	s.Retain(func(e *E) bool {
		fn(e)
		return true
	})
}

// Retain keeps only the elements for which keep returns true. keep may also
// mutate the element it is given; kept elements end up indexed under their
// post-mutation keys and dropped elements are removed regardless of any key
// change.
//
// The set of keys to visit is snapshotted up front, so the index is never
// iterated while it is being altered, and relocations are applied after the
// pass so a rekeyed element cannot overwrite a slot keep has not visited
// yet. Each element present at the start is therefore visited exactly once;
// if two kept elements end up with equal keys, one displaces the other.
//
// The relocation check runs even if keep panics: the element being visited
// is moved to its current key and the already-relocated elements are
// reinserted before the panic propagates.
func (s *Set[K, E]) Retain(keep func(*E) bool) {
	s.checkBorrow()

	keys := make([]K, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}

	var moved []*E

	// The element inside a keep call; relocated on unwind, like Modify.
	var inflight *E
	var inflightKey K

	s.borrowed = true
	defer func() {
		s.borrowed = false
		if inflight != nil {
			s.relocate(inflightKey, inflight)
		}
		for _, box := range moved {
			newKey := (*box).Key()
			if _, occupied := s.items[newKey]; occupied {
				s.stats.Displacements++
				s.logger.displaced(newKey)
			}
			s.items[newKey] = box
		}
	}()

	for _, key := range keys {
		box := s.items[key]
		inflight, inflightKey = box, key
		kept := keep(box)
		inflight = nil
		newKey := (*box).Key()
		switch {
		case !kept:
			delete(s.items, key)
			s.stats.Removes++
		case newKey != key:
			delete(s.items, key)
			s.stats.Relocations++
			s.logger.relocated(key, newKey)
			moved = append(moved, box)
		}
	}
}
