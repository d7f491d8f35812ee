/* store.go
 * Contains the Store struct and NewStore function. Store wraps the key-value
 * medium with typed accessors for each persisted record and notifies the
 * remote mirror after every successful write. The accessor methods were split
 * into contest.go, matches.go and scores.go.
 *
 * Access is single-threaded by design: the medium has no transactions and no
 * concurrent-writer protocol, so two admins sharing one data file race with
 * last-write-wins. That hazard is accepted, not handled here.
 */

package store

import "fmt"

type Store struct {
	kv     KV
	mirror *Mirror
}

// NewStore wraps the given medium. mirror may be nil, in which case writes
// stay local only.
// Preconditions: receives the key-value medium and an optional mirror
// Postconditions: returns a pointer to the Store object, or an error if no
// medium was provided
func NewStore(kv KV, mirror *Mirror) (*Store, error) {
	if kv == nil {
		return nil, fmt.Errorf("a key-value medium is required")
	}
	return &Store{kv: kv, mirror: mirror}, nil
}

// put writes one record and wakes the mirror. Mirror notification never
// blocks and mirror failures never surface here.
func (s *Store) put(key string, v any) error {
	if err := s.kv.Put(key, v); err != nil {
		return err
	}
	if s.mirror != nil {
		s.mirror.Notify()
	}
	return nil
}

// ResetContestData wipes every contest-scoped record: scores, buckets, picks,
// joker purchases, meta, matches, lock records and tie stats. Destructive and
// irreversible; the calling surface must have confirmed twice before getting
// here.
func (s *Store) ResetContestData() error {
	empty := map[string]struct{}{
		KeyMatches: {},
	}
	for _, key := range contestKeys {
		var err error
		if _, isList := empty[key]; isList {
			err = s.kv.Put(key, []Match{})
		} else {
			err = s.kv.Put(key, map[string]any{})
		}
		if err != nil {
			return fmt.Errorf("failed to reset record %q: %w", key, err)
		}
	}
	if s.mirror != nil {
		s.mirror.Notify()
	}
	return nil
}
