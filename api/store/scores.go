/* scores.go
 * Contains the Store methods for cumulative scores and tie-break stats
 */

package store

// ScoresByContest returns the per-contest score buckets,
// contest -> user -> points
func (s *Store) ScoresByContest() map[string]map[string]int {
	by := map[string]map[string]int{}
	s.kv.Get(KeyScoresByContest, &by)
	if by == nil {
		by = map[string]map[string]int{}
	}
	return by
}

// SetScoresByContest writes the per-contest score buckets
func (s *Store) SetScoresByContest(by map[string]map[string]int) error {
	return s.put(KeyScoresByContest, by)
}

// Scores returns the global cumulative totals, user -> points
func (s *Store) Scores() map[string]int {
	totals := map[string]int{}
	s.kv.Get(KeyScores, &totals)
	if totals == nil {
		totals = map[string]int{}
	}
	return totals
}

// SetScores writes the global cumulative totals. Callers always write a full
// rebuild from the buckets, never an incremental patch.
func (s *Store) SetScores(totals map[string]int) error {
	return s.put(KeyScores, totals)
}

// TieStats returns the cumulative tie-break counters for one contest,
// user -> TieStats
func (s *Store) TieStats(contestID string) map[string]TieStats {
	all := map[string]map[string]TieStats{}
	s.kv.Get(KeyTieStats, &all)
	stats := all[contestID]
	if stats == nil {
		stats = map[string]TieStats{}
	}
	return stats
}

// SetTieStats writes the cumulative tie-break counters for one contest
func (s *Store) SetTieStats(contestID string, stats map[string]TieStats) error {
	all := map[string]map[string]TieStats{}
	s.kv.Get(KeyTieStats, &all)
	if all == nil {
		all = map[string]map[string]TieStats{}
	}
	all[contestID] = stats
	return s.put(KeyTieStats, all)
}
