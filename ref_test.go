package keyedset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_GetMut(t *testing.T) {
	s := New[string, entry]()
	s.Insert(entry{ID: "a", Count: 1})

	// 1. Mutate the value through the guard; no relocation needed.
	ref, ok := s.GetMut("a")
	require.True(t, ok)
	assert.Equal(t, "a", ref.Key())
	ref.Value().Count = 7
	ref.Release()
	assert.Equal(t, 7, s.MustGet("a").Count)

	// 2. Absent key yields no guard and leaves the set unborrowed.
	_, ok = s.GetMut("missing")
	assert.False(t, ok)
	assert.True(t, s.Contains("a"))
}

func TestSet_GetMut_RelocatesOnRelease(t *testing.T) {
	s := New[string, entry]()
	s.Insert(entry{ID: "a", Count: 1})

	// Rekeying through the guard must end up exactly where Modify would.
	ref, ok := s.GetMut("a")
	require.True(t, ok)
	ref.Value().ID = "b"
	ref.Release()

	assert.False(t, s.Contains("a"))
	require.True(t, s.Contains("b"))
	assert.Equal(t, 1, s.MustGet("b").Count)
	assert.Equal(t, uint64(1), s.Stats().Relocations)
	assertCoherent(t, s)
}

func TestSet_GetMut_RelocatesOnUnwind(t *testing.T) {
	s := New[string, entry]()
	s.Insert(entry{ID: "a", Count: 1})

	assert.Panics(t, func() {
		ref, _ := s.GetMut("a")
		defer ref.Release()
		ref.Value().ID = "b"
		panic("boom")
	})

	assert.False(t, s.Contains("a"))
	assert.True(t, s.Contains("b"))
	assertCoherent(t, s)
}

func TestSet_BorrowExclusivity(t *testing.T) {
	s := New[string, entry]()
	s.Insert(entry{ID: "a", Count: 1})

	ref, ok := s.GetMut("a")
	require.True(t, ok)

	// A live Ref has exclusive access to the whole container.
	assert.Panics(t, func() { s.Get("a") })
	assert.Panics(t, func() { s.Insert(entry{ID: "b"}) })
	assert.Panics(t, func() { s.Remove("a") })
	assert.Panics(t, func() { s.Modify("a", func(e *entry) {}) })
	assert.Panics(t, func() { s.GetMut("a") })
	assert.Panics(t, func() {
		for range s.Keys() {
		}
	})

	ref.Release()
	assert.NotPanics(t, func() { s.Get("a") })

	// Release is idempotent; Value after Release is a contract violation.
	assert.NotPanics(t, func() { ref.Release() })
	assert.Panics(t, func() { ref.Value() })
}

func TestSet_GetOrInsertWith(t *testing.T) {
	s := New[string, entry]()

	// 1. Absent key: factory runs once, guard is positioned at the new
	// element.
	calls := 0
	ref := s.GetOrInsertWith("a", func(key string) entry {
		calls++
		return entry{ID: key, Count: 10}
	})
	assert.Equal(t, 10, ref.Value().Count)
	ref.Release()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 10, s.MustGet("a").Count)

	// 2. Present key: factory is never invoked.
	ref = s.GetOrInsertWith("a", func(key string) entry {
		calls++
		return entry{ID: key}
	})
	ref.Value().Count++
	ref.Release()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 11, s.MustGet("a").Count)
	assertCoherent(t, s)
}

func TestSet_GetOrInsertWith_ExclusiveDuringFactory(t *testing.T) {
	s := New[string, entry]()

	// The factory runs under the exclusivity flag, so reentrant container
	// calls panic instead of racing the pending insertion.
	ref := s.GetOrInsertWith("a", func(key string) entry {
		assert.Panics(t, func() { s.Insert(entry{ID: "b"}) })
		assert.Panics(t, func() { s.Get("a") })
		return entry{ID: key, Count: 1}
	})
	ref.Release()

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.MustGet("a").Count)
	assertCoherent(t, s)
}

func TestSet_GetOrInsertWith_FactoryPanic(t *testing.T) {
	s := New[string, entry]()

	// No Ref is issued when the factory unwinds; the container stays
	// usable and nothing is inserted.
	assert.Panics(t, func() {
		s.GetOrInsertWith("a", func(string) entry { panic("boom") })
	})
	assert.NotPanics(t, func() { s.Get("a") })
	assert.False(t, s.Contains("a"))
	assert.True(t, s.Empty())
}

func TestSet_GetOrInsertWith_FactoryKeyMismatch(t *testing.T) {
	s := New[string, entry]()

	// The factory ignores the requested key. The element is filed under the
	// requested key and the mismatch is resolved at the guard's release.
	ref := s.GetOrInsertWith("a", func(key string) entry {
		return entry{ID: "b", Count: 7}
	})
	ref.Release()

	assert.False(t, s.Contains("a"))
	require.True(t, s.Contains("b"))
	assert.Equal(t, 7, s.MustGet("b").Count)
	assertCoherent(t, s)
}
