/* tiebreak.go
 * Contains the cross-round tie-break accumulation. Stats fold forward exactly
 * once per locked round.
 */

package logic

import (
	"totopool/api/store"
)

// FoldRoundStats folds one round's stats into the cumulative tie-break
// counters. For each user present in the round: bonus count and near-perfect
// count accumulate; the bonus streak extends on a hit and resets to zero on a
// played-but-missed round, with the max updated against the new current
// streak. Users absent from the round (no picks submitted) are left
// untouched: not playing does not break a streak, only playing and missing
// the bonus does. The existing map is mutated in place and returned.
func FoldRoundStats(existing map[string]store.TieStats, stats map[string]RoundStats) map[string]store.TieStats {
	if existing == nil {
		existing = map[string]store.TieStats{}
	}

	for user, st := range stats {
		cur := existing[user]

		if st.BonusHit {
			cur.BonusCount++
			cur.BonusStreakCur++
		} else {
			cur.BonusStreakCur = 0
		}
		if cur.BonusStreakCur > cur.BonusStreakMax {
			cur.BonusStreakMax = cur.BonusStreakCur
		}
		if st.NearPerfect {
			cur.NearPerfectCount++
		}

		existing[user] = cur
	}

	return existing
}
