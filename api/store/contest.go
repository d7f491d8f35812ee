/* contest.go
 * Contains the Store methods for the active-contest pointer, per-contest
 * metadata, the user roster, joker purchases and the next-contest start date
 */

package store

import (
	"totopool/api/shared"
)

// ActiveContest returns the current active-contest pointer. The second return
// is false when no contest has been created yet.
func (s *Store) ActiveContest() (ActiveContest, bool) {
	var ac ActiveContest
	if !s.kv.Get(KeyActiveContest, &ac) || ac.ID == "" {
		return ActiveContest{}, false
	}
	return ac, true
}

// SetActiveContest replaces the active-contest pointer wholesale
func (s *Store) SetActiveContest(ac ActiveContest) error {
	return s.put(KeyActiveContest, ac)
}

// Meta returns the metadata record for a contest, or the default record
// (round 1, everything unlocked) when none exists yet.
func (s *Store) Meta(contestID string) ContestMeta {
	all := s.metaAll()
	meta, ok := all[contestID]
	if !ok {
		return defaultMeta()
	}
	if meta.Round < 1 {
		meta.Round = 1
	}
	return meta
}

// SetMeta writes the metadata record for a contest
func (s *Store) SetMeta(contestID string, meta ContestMeta) error {
	all := s.metaAll()
	all[contestID] = meta
	return s.put(KeyMeta, all)
}

func (s *Store) metaAll() map[string]ContestMeta {
	all := map[string]ContestMeta{}
	s.kv.Get(KeyMeta, &all)
	if all == nil {
		all = map[string]ContestMeta{}
	}
	return all
}

// Users returns the registered-user roster. Missing or corrupt roster data
// reads as an empty roster.
func (s *Store) Users() []shared.User {
	var users []shared.User
	s.kv.Get(KeyUsers, &users)
	return users
}

// Picks returns user -> matchID -> pick for one contest. Read-only input to
// scoring; the pick-submission flow owns the record.
func (s *Store) Picks(contestID string) ContestPicks {
	all := map[string]ContestPicks{}
	s.kv.Get(KeyPicks, &all)
	cp := all[contestID]
	if cp == nil {
		cp = ContestPicks{}
	}
	return cp
}

// HelpPurchases returns user -> joker purchase record for one contest
func (s *Store) HelpPurchases(contestID string) map[string]HelpPurchase {
	all := map[string]map[string]HelpPurchase{}
	s.kv.Get(KeyHelpPurchases, &all)
	m := all[contestID]
	if m == nil {
		m = map[string]HelpPurchase{}
	}
	return m
}

// ClearPickLock deletes a contest's entry from the pick-lock record. Called
// on round advance; the record itself belongs to the pick-submission flow.
func (s *Store) ClearPickLock(contestID string) error {
	locks := map[string]any{}
	s.kv.Get(KeyPickLocks, &locks)
	if _, ok := locks[contestID]; !ok {
		return nil
	}
	delete(locks, contestID)
	return s.put(KeyPickLocks, locks)
}

// SetRoundLockedAt records when a contest's round had its results locked
func (s *Store) SetRoundLockedAt(contestID string, round int, unixMillis int64) error {
	all := map[string]map[int]int64{}
	s.kv.Get(KeyRoundLockedAt, &all)
	if all[contestID] == nil {
		all[contestID] = map[int]int64{}
	}
	all[contestID][round] = unixMillis
	return s.put(KeyRoundLockedAt, all)
}

// NextContestStart returns the announced start date of the next contest, or
// empty when none has been set. Display-only.
func (s *Store) NextContestStart() string {
	var iso string
	s.kv.Get(KeyNextContestStart, &iso)
	return iso
}

// SetNextContestStart writes the announced next-contest start date; an empty
// value clears the announcement
func (s *Store) SetNextContestStart(iso string) error {
	return s.put(KeyNextContestStart, iso)
}
