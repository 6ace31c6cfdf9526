package keyedset

import "iter"

// Keys returns a sequence of the stored keys, in no particular order. The
// sequence is lazy and restartable; each range starts a fresh pass. The set
// must not be mutated during iteration.
func (s *Set[K, E]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		s.checkBorrow()
		for k := range s.items {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns a sequence of the stored elements, in no particular order.
// Elements are yielded by value; mutation still has to go through Modify or
// a Ref.
func (s *Set[K, E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		s.checkBorrow()
		for _, box := range s.items {
			if !yield(*box) {
				return
			}
		}
	}
}

// All returns a sequence of key/element pairs, in no particular order.
func (s *Set[K, E]) All() iter.Seq2[K, E] {
	return func(yield func(K, E) bool) {
		s.checkBorrow()
		for k, box := range s.items {
			if !yield(k, *box) {
				return
			}
		}
	}
}

// Drain returns a consuming sequence: every yielded element is removed from
// the set. A full pass leaves the set empty; breaking early keeps the
// elements not yet yielded.
func (s *Set[K, E]) Drain() iter.Seq[E] {
	return func(yield func(E) bool) {
		s.checkBorrow()
		for k, box := range s.items {
			delete(s.items, k)
			s.stats.Removes++
			if !yield(*box) {
				return
			}
		}
	}
}
