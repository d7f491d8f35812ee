/* store_test.go
 * Contains unit tests for the key-value medium and the typed Store accessors
 */

package store

import (
	"os"
	"path/filepath"
	"testing"

	"totopool/api/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *MemKV) {
	t.Helper()
	kv := NewMemKV()
	s, err := NewStore(kv, nil)
	require.NoError(t, err)
	return s, kv
}

// TestMemKV_MissingKeyLeavesFallback tests that Get on a missing key leaves
// the caller's default untouched
func TestMemKV_MissingKeyLeavesFallback(t *testing.T) {
	kv := NewMemKV()

	value := "fallback"
	ok := kv.Get("absent", &value)

	assert.False(t, ok)
	assert.Equal(t, "fallback", value)
}

// TestMemKV_CorruptValueLeavesFallback tests that a value of the wrong shape
// reads as missing instead of clobbering the default
func TestMemKV_CorruptValueLeavesFallback(t *testing.T) {
	kv := NewMemKV()
	require.NoError(t, kv.Put("scores", "not-a-map"))

	totals := map[string]int{"maria": 3}
	ok := kv.Get("scores", &totals)

	assert.False(t, ok)
	assert.Equal(t, map[string]int{"maria": 3}, totals)
}

// TestFileKV_RoundTrip tests that a reopened file medium sees earlier writes
func TestFileKV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.json")

	kv, err := OpenFileKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Put(KeyScores, map[string]int{"maria": 7}))

	reopened, err := OpenFileKV(path)
	require.NoError(t, err)

	totals := map[string]int{}
	require.True(t, reopened.Get(KeyScores, &totals))
	assert.Equal(t, 7, totals["maria"])
}

// TestFileKV_MissingFileIsEmpty tests that a nonexistent data file opens as
// an empty medium
func TestFileKV_MissingFileIsEmpty(t *testing.T) {
	kv, err := OpenFileKV(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	var v int
	assert.False(t, kv.Get("anything", &v))
}

// TestFileKV_InvalidJSONRefused tests that a mangled data file fails to open
// rather than silently starting empty
func TestFileKV_InvalidJSONRefused(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := OpenFileKV(path)
	assert.Error(t, err)
}

// TestMeta_DefaultRecord tests that an unknown contest reads as the default
// record at round one
func TestMeta_DefaultRecord(t *testing.T) {
	s, _ := newTestStore(t)

	meta := s.Meta("XXXXX")

	assert.Equal(t, 1, meta.Round)
	assert.False(t, meta.ContestStarted)
	assert.False(t, meta.ResultsLocked)
	assert.Equal(t, 0, meta.LastScoredRound)
}

// TestMeta_WriteRead tests the metadata write/read round trip
func TestMeta_WriteRead(t *testing.T) {
	s, _ := newTestStore(t)

	meta := s.Meta("AAAAA")
	meta.Round = 4
	meta.MatchesLocked = true
	meta.EligibleUsers = []string{"maria", "costas"}
	require.NoError(t, s.SetMeta("AAAAA", meta))

	got := s.Meta("AAAAA")
	assert.Equal(t, 4, got.Round)
	assert.True(t, got.MatchesLocked)
	assert.Equal(t, []string{"maria", "costas"}, got.EligibleUsers)
}

// TestActiveContest_UnsetThenSet tests the active-contest pointer lifecycle
func TestActiveContest_UnsetThenSet(t *testing.T) {
	s, _ := newTestStore(t)

	_, ok := s.ActiveContest()
	assert.False(t, ok)

	require.NoError(t, s.SetActiveContest(ActiveContest{ID: "AB12C"}))
	ac, ok := s.ActiveContest()
	require.True(t, ok)
	assert.Equal(t, "AB12C", ac.ID)
}

// TestResetContestData_WipesContestScope tests that the reset clears every
// contest-scoped record but not the roster or the active pointer
func TestResetContestData_WipesContestScope(t *testing.T) {
	s, kv := newTestStore(t)

	require.NoError(t, s.SetActiveContest(ActiveContest{ID: "AAAAA"}))
	require.NoError(t, s.SetScores(map[string]int{"maria": 9}))
	require.NoError(t, s.SetTieStats("AAAAA", map[string]TieStats{"maria": {BonusCount: 2}}))
	require.NoError(t, s.PutMatches([]Match{{ID: "m1"}}))
	require.NoError(t, kv.Put(KeyUsers, []shared.User{{Username: "maria"}}))
	require.NoError(t, kv.Put(KeyPicks, map[string]ContestPicks{
		"AAAAA": {"maria": {"m1": Pick{Pick: "1"}}},
	}))

	require.NoError(t, s.ResetContestData())

	assert.Empty(t, s.Scores())
	assert.Empty(t, s.TieStats("AAAAA"))
	assert.Empty(t, s.Matches())
	assert.Empty(t, s.Picks("AAAAA"))
	// roster and pointer survive
	assert.Len(t, s.Users(), 1)
	_, ok := s.ActiveContest()
	assert.True(t, ok)
}

// TestClearPickLock_RemovesOnlyThatContest tests pick-lock clearing leaves
// other contests' records alone
func TestClearPickLock_RemovesOnlyThatContest(t *testing.T) {
	s, kv := newTestStore(t)
	require.NoError(t, kv.Put(KeyPickLocks, map[string]any{"AAAAA": true, "BBBBB": true}))

	require.NoError(t, s.ClearPickLock("AAAAA"))

	locks := map[string]any{}
	kv.Get(KeyPickLocks, &locks)
	assert.NotContains(t, locks, "AAAAA")
	assert.Contains(t, locks, "BBBBB")
}

// TestPicks_MissingContest tests that an unknown contest reads as empty picks
func TestPicks_MissingContest(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Empty(t, s.Picks("XXXXX"))
}

// TestNextContestStart_SetClear tests the announcement date round trip
func TestNextContestStart_SetClear(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.SetNextContestStart("2025-09-01"))
	assert.Equal(t, "2025-09-01", s.NextContestStart())

	require.NoError(t, s.SetNextContestStart(""))
	assert.Equal(t, "", s.NextContestStart())
}
