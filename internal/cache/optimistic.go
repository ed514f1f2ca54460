package cache

// Optimistic applies a speculative edit to a cached collection before
// the backing write is known to succeed: snapshot, apply, commit on
// success, restore the snapshot on failure. The generic shape keeps
// call sites from re-implementing the rollback by hand.
func Optimistic[T any](s *Store, key Key, apply func(T) T, commit func() error) error {
	snapshot, hadSnapshot := s.Get(key)

	if hadSnapshot {
		if current, ok := snapshot.(T); ok {
			s.Put(key, apply(current))
		}
	}

	if err := commit(); err != nil {
		if hadSnapshot {
			s.Put(key, snapshot)
		} else {
			s.Invalidate(key)
		}
		return err
	}

	// The speculative value may drift from what the store committed;
	// drop it so the next read re-fetches.
	s.Invalidate(key)
	return nil
}
