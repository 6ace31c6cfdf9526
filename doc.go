// Package keyedset provides a generic in-memory container for elements that
// carry their own index key.
//
// Unlike a plain map, mutating a stored element in a way that changes its key
// is not a logic error: the set's mutation protocols detect the change and
// move the element to its new slot, so lookups by the new key succeed and
// lookups by the stale key fail.
//
// # Quick Start
//
//	type session struct {
//	    Token string
//	    Hits  int
//	}
//
//	func (s session) Key() string { return s.Token }
//
//	s := keyedset.New[string, session]()
//	s.Insert(session{Token: "abc"})
//
//	s.Modify("abc", func(sess *session) {
//	    sess.Token = "xyz" // rekey; the set relocates the element
//	    sess.Hits++
//	})
//
//	s.Contains("abc") // false
//	s.Contains("xyz") // true
//
// # Mutation Protocols
//
// All mutation of stored elements goes through one of two protocols, both of
// which restore index coherence before returning control:
//
//   - Closure-based: Modify, ModifyAll and Retain apply a function to the
//     element in place and relocate it afterwards if its key changed.
//   - Scoped guard: GetMut and GetOrInsertWith return a Ref granting direct
//     mutable access; Ref.Release performs the deferred relocation check.
//     Release with defer so the check runs on every exit path.
//
// # Concurrency
//
// Set is single-threaded by design and has no internal locking. A live Ref
// holds exclusive access to the whole container; this is enforced at runtime
// and violations panic.
package keyedset
