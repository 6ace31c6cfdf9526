package keyedset

// Stats holds cumulative operation counters for a Set. The counters are
// plain integers; Set is single-threaded, so no atomics are involved.
type Stats struct {
	// Inserts counts elements stored via Insert or GetOrInsertWith.
	Inserts uint64
	// Removes counts elements dropped via Remove, Retain, Drain or Clear.
	Removes uint64
	// Displacements counts prior occupants overwritten by Insert or by a
	// relocation landing on an occupied slot.
	Displacements uint64
	// Relocations counts elements moved to a new slot after a key change.
	Relocations uint64
}

// Stats returns a copy of the set's counters.
func (s *Set[K, E]) Stats() Stats {
	return s.stats
}
