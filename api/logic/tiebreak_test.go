/* tiebreak_test.go
 * Contains unit tests for the tie-break accumulation
 */

package logic

import (
	"testing"

	"totopool/api/store"

	"github.com/stretchr/testify/assert"
)

func hit() RoundStats  { return RoundStats{Req: 3, OK: 3, BonusHit: true} }
func miss() RoundStats { return RoundStats{Req: 3, OK: 1} }

// TestFoldRoundStats_StreakAcrossRounds tests bonus counting and streak
// tracking over hit, hit, miss, hit
func TestFoldRoundStats_StreakAcrossRounds(t *testing.T) {
	tie := map[string]store.TieStats{}

	tie = FoldRoundStats(tie, map[string]RoundStats{"maria": hit()})
	tie = FoldRoundStats(tie, map[string]RoundStats{"maria": hit()})
	tie = FoldRoundStats(tie, map[string]RoundStats{"maria": miss()})
	tie = FoldRoundStats(tie, map[string]RoundStats{"maria": hit()})

	assert.Equal(t, store.TieStats{
		BonusCount:     3,
		BonusStreakCur: 1,
		BonusStreakMax: 2,
	}, tie["maria"])
}

// TestFoldRoundStats_AbsenceKeepsStreak tests that a round with no picks
// leaves the streak alone: only playing and missing the bonus resets it
func TestFoldRoundStats_AbsenceKeepsStreak(t *testing.T) {
	tie := map[string]store.TieStats{}

	tie = FoldRoundStats(tie, map[string]RoundStats{"maria": hit()})
	tie = FoldRoundStats(tie, map[string]RoundStats{"maria": hit()})
	// round three: maria absent, someone else plays
	tie = FoldRoundStats(tie, map[string]RoundStats{"costas": miss()})
	tie = FoldRoundStats(tie, map[string]RoundStats{"maria": hit()})

	assert.Equal(t, store.TieStats{
		BonusCount:     3,
		BonusStreakCur: 3,
		BonusStreakMax: 3,
	}, tie["maria"])
}

// TestFoldRoundStats_NearPerfectCount tests near-perfect accumulation
// independent of the streak fields
func TestFoldRoundStats_NearPerfectCount(t *testing.T) {
	near := RoundStats{Req: 3, OK: 2, NearPerfect: true}
	tie := map[string]store.TieStats{}

	tie = FoldRoundStats(tie, map[string]RoundStats{"costas": near})
	tie = FoldRoundStats(tie, map[string]RoundStats{"costas": near})
	tie = FoldRoundStats(tie, map[string]RoundStats{"costas": hit()})

	assert.Equal(t, store.TieStats{
		BonusCount:       1,
		BonusStreakCur:   1,
		BonusStreakMax:   1,
		NearPerfectCount: 2,
	}, tie["costas"])
}

// TestFoldRoundStats_NilExisting tests that a missing cumulative map is
// created rather than written through
func TestFoldRoundStats_NilExisting(t *testing.T) {
	tie := FoldRoundStats(nil, map[string]RoundStats{"maria": hit()})

	assert.Equal(t, 1, tie["maria"].BonusCount)
}
