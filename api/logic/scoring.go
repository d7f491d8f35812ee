/* scoring.go
 * Contains the round scoring engine: per-user points for a finished round,
 * the per-round stats that feed tie-breaks, and the cumulative accumulation
 * helpers. All functions are pure over their inputs.
 */

package logic

import (
	"strings"

	"totopool/api/store"
)

// perfectRoundBonus is the flat bonus for answering every required match
// correctly in a round
const perfectRoundBonus = 2

// RoundStats summarises one user's round for tie-break purposes. Req counts
// the enabled matches with a recorded result, OK how many of those the user
// got right (the joker always counts as right).
type RoundStats struct {
	Req         int
	OK          int
	BonusHit    bool
	NearPerfect bool
}

// ComputeRoundPoints calculates each user's points for the current round.
// Per match: a disabled match pays 1 point for a joker pick only and never
// counts toward the requirement; an enabled match without a result is not yet
// scoreable and is skipped; an enabled match with a result pays 1 point for
// the joker or an exact outcome match. A user who answers every required
// match correctly gets the flat bonus on top.
// Preconditions: receives the round's match list and the contest's picks map
// Postconditions: returns user -> points for every user present in the picks
// map, including zero scores
func ComputeRoundPoints(matches []store.Match, picks store.ContestPicks) map[string]int {
	perRound := make(map[string]int, len(picks))

	for user, userPicks := range picks {
		var pts, ok, req int

		for _, m := range matches {
			pick := strings.TrimSpace(userPicks[m.ID].Pick)

			if m.Off {
				if pick == store.PickJoker {
					pts++
				}
				continue
			}
			if m.Result == "" {
				continue
			}

			req++
			if pick == store.PickJoker || (pick != "" && pick == m.Result) {
				pts++
				ok++
			}
		}

		if req > 0 && ok == req {
			pts += perfectRoundBonus
		}
		perRound[user] = pts
	}

	return perRound
}

// ComputeRoundStats mirrors the scoring denominator/numerator logic but
// reports the per-round tie-break flags instead of points. NearPerfect
// requires more than one required match, since missing exactly one of one is
// indistinguishable from missing none.
func ComputeRoundStats(matches []store.Match, picks store.ContestPicks) map[string]RoundStats {
	out := make(map[string]RoundStats, len(picks))

	for user, userPicks := range picks {
		var req, ok int

		for _, m := range matches {
			if m.Off {
				continue
			}
			result := strings.TrimSpace(m.Result)
			if result == "" {
				continue
			}

			req++
			pick := strings.TrimSpace(userPicks[m.ID].Pick)
			if pick == store.PickJoker || (pick != "" && pick == result) {
				ok++
			}
		}

		out[user] = RoundStats{
			Req:         req,
			OK:          ok,
			BonusHit:    req > 0 && ok == req,
			NearPerfect: req > 1 && ok == req-1,
		}
	}

	return out
}

// AddRoundScores adds a round's points into a contest's running bucket,
// creating entries at zero as needed. The bucket is mutated in place and also
// returned for convenience.
func AddRoundScores(bucket map[string]int, perRound map[string]int) map[string]int {
	if bucket == nil {
		bucket = map[string]int{}
	}
	for user, pts := range perRound {
		bucket[user] += pts
	}
	return bucket
}

// RebuildTotals computes the global cumulative totals as a full rebuild: the
// sum of every contest's bucket for every user. Never an incremental patch.
func RebuildTotals(byContest map[string]map[string]int) map[string]int {
	totals := map[string]int{}
	for _, bucket := range byContest {
		for user, pts := range bucket {
			totals[user] += pts
		}
	}
	return totals
}
