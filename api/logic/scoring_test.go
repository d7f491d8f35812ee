/* scoring_test.go
 * Contains unit tests for the round scoring engine
 */

package logic

import (
	"testing"

	"totopool/api/store"

	"github.com/stretchr/testify/assert"
)

func threeMatches() []store.Match {
	return []store.Match{
		{ID: "m1", Seq: 1, Home: "Omonoia", Away: "APOEL", Result: "1"},
		{ID: "m2", Seq: 2, Home: "AEK", Away: "Aris", Result: "X"},
		{ID: "m3", Seq: 3, Home: "Anorthosis", Away: "Apollon", Result: "2"},
	}
}

func picksFor(user string, byMatch map[string]string) store.ContestPicks {
	m := map[string]store.Pick{}
	for id, pick := range byMatch {
		m[id] = store.Pick{Pick: pick}
	}
	return store.ContestPicks{user: m}
}

// TestComputeRoundPoints_PerfectRound tests that three correct picks out of
// three score 3 plus the flat bonus
func TestComputeRoundPoints_PerfectRound(t *testing.T) {
	picks := picksFor("maria", map[string]string{"m1": "1", "m2": "X", "m3": "2"})

	points := ComputeRoundPoints(threeMatches(), picks)

	assert.Equal(t, 5, points["maria"])
}

// TestComputeRoundPoints_OneMiss tests that missing exactly one match pays
// the two hits and no bonus
func TestComputeRoundPoints_OneMiss(t *testing.T) {
	picks := picksFor("costas", map[string]string{"m1": "1", "m2": "X", "m3": "1"})

	points := ComputeRoundPoints(threeMatches(), picks)

	assert.Equal(t, 2, points["costas"])
}

// TestComputeRoundPoints_AllJoker tests that the joker on every match is
// identical to a perfect literal round
func TestComputeRoundPoints_AllJoker(t *testing.T) {
	picks := picksFor("eleni", map[string]string{"m1": "HELP", "m2": "HELP", "m3": "HELP"})

	points := ComputeRoundPoints(threeMatches(), picks)

	assert.Equal(t, 5, points["eleni"])
}

// TestComputeRoundPoints_DisabledMatch tests that an OFF match pays a joker
// point only and stays out of the bonus denominator
func TestComputeRoundPoints_DisabledMatch(t *testing.T) {
	matches := threeMatches()
	matches[2].Off = true
	matches[2].Result = ""

	// two enabled matches correct, joker on the OFF one: 2 + 1 + bonus
	joker := picksFor("maria", map[string]string{"m1": "1", "m2": "X", "m3": "HELP"})
	assert.Equal(t, 5, ComputeRoundPoints(matches, joker)["maria"])

	// a literal pick on the OFF match pays nothing
	literal := picksFor("costas", map[string]string{"m1": "1", "m2": "X", "m3": "2"})
	assert.Equal(t, 4, ComputeRoundPoints(matches, literal)["costas"])
}

// TestComputeRoundPoints_UnresolvedMatchSkipped tests that an enabled match
// without a result is not yet scoreable and does not block the bonus
func TestComputeRoundPoints_UnresolvedMatchSkipped(t *testing.T) {
	matches := threeMatches()
	matches[1].Result = ""

	picks := picksFor("maria", map[string]string{"m1": "1", "m2": "X", "m3": "2"})
	points := ComputeRoundPoints(matches, picks)

	// two required, two correct, bonus applies
	assert.Equal(t, 4, points["maria"])
}

// TestComputeRoundPoints_NoPicks tests that a user present with no usable
// picks still appears with zero points
func TestComputeRoundPoints_NoPicks(t *testing.T) {
	picks := store.ContestPicks{"ghost": {}}

	points := ComputeRoundPoints(threeMatches(), picks)

	assert.Equal(t, 0, points["ghost"])
}

// TestComputeRoundStats_Flags tests bonusHit and nearPerfect across hit,
// one-miss and joker rounds
func TestComputeRoundStats_Flags(t *testing.T) {
	matches := threeMatches()
	picks := store.ContestPicks{}
	for user, m := range map[string]map[string]string{
		"perfect": {"m1": "1", "m2": "X", "m3": "2"},
		"onemiss": {"m1": "1", "m2": "X", "m3": "1"},
		"joker":   {"m1": "HELP", "m2": "HELP", "m3": "HELP"},
		"twomiss": {"m1": "2", "m2": "1", "m3": "2"},
	} {
		picks[user] = map[string]store.Pick{}
		for id, p := range m {
			picks[user][id] = store.Pick{Pick: p}
		}
	}

	stats := ComputeRoundStats(matches, picks)

	assert.Equal(t, RoundStats{Req: 3, OK: 3, BonusHit: true}, stats["perfect"])
	assert.Equal(t, RoundStats{Req: 3, OK: 2, NearPerfect: true}, stats["onemiss"])
	assert.Equal(t, RoundStats{Req: 3, OK: 3, BonusHit: true}, stats["joker"])
	assert.Equal(t, RoundStats{Req: 3, OK: 1}, stats["twomiss"])
}

// TestComputeRoundStats_SingleMatchNoNearPerfect tests that near-perfect is
// never flagged with only one required match
func TestComputeRoundStats_SingleMatchNoNearPerfect(t *testing.T) {
	matches := []store.Match{{ID: "m1", Result: "1"}}
	picks := picksFor("solo", map[string]string{"m1": "2"})

	stats := ComputeRoundStats(matches, picks)

	assert.Equal(t, RoundStats{Req: 1, OK: 0}, stats["solo"])
}

// TestComputeRoundStats_DisabledExcluded tests that OFF matches stay out of
// the requirement denominator entirely
func TestComputeRoundStats_DisabledExcluded(t *testing.T) {
	matches := threeMatches()
	matches[0].Off = true
	matches[0].Result = ""

	picks := picksFor("maria", map[string]string{"m1": "HELP", "m2": "X", "m3": "2"})
	stats := ComputeRoundStats(matches, picks)

	assert.Equal(t, RoundStats{Req: 2, OK: 2, BonusHit: true}, stats["maria"])
}

// TestAddRoundScores_Accumulates tests bucket accumulation with creation at
// zero
func TestAddRoundScores_Accumulates(t *testing.T) {
	bucket := map[string]int{"maria": 7}

	bucket = AddRoundScores(bucket, map[string]int{"maria": 5, "costas": 2})
	bucket = AddRoundScores(bucket, map[string]int{"costas": 3})

	assert.Equal(t, map[string]int{"maria": 12, "costas": 5}, bucket)
}

// TestAddRoundScores_NilBucket tests that a nil bucket is created rather
// than written through
func TestAddRoundScores_NilBucket(t *testing.T) {
	bucket := AddRoundScores(nil, map[string]int{"maria": 5})
	assert.Equal(t, map[string]int{"maria": 5}, bucket)
}

// TestRebuildTotals_SumsAllContests tests that the global totals are the sum
// over every contest bucket regardless of how the buckets were built
func TestRebuildTotals_SumsAllContests(t *testing.T) {
	by := map[string]map[string]int{
		"AAAAA": {"maria": 12, "costas": 5},
		"BBBBB": {"maria": 3, "eleni": 9},
	}

	totals := RebuildTotals(by)

	assert.Equal(t, map[string]int{"maria": 15, "costas": 5, "eleni": 9}, totals)
}

// TestRebuildTotals_SelfHeals tests that a hand-edited bucket is reflected
// exactly on the next rebuild instead of drifting
func TestRebuildTotals_SelfHeals(t *testing.T) {
	by := map[string]map[string]int{"AAAAA": {"maria": 10}}
	first := RebuildTotals(by)
	assert.Equal(t, 10, first["maria"])

	by["AAAAA"]["maria"] = 4
	second := RebuildTotals(by)
	assert.Equal(t, 4, second["maria"])
}
