/* lifecycle.go
 * Contains the contest state machine: create, start, lock toggles, results
 * lock with scoring, and round advance. Each transition validates all of its
 * guards before the first write, so a refused transition leaves every record
 * exactly as it found it.
 */

package api

import (
	"strings"

	"totopool/api/logic"
	"totopool/api/shared"
	"totopool/api/store"
)

// maxMatchesPerRound caps the match list of one round
const maxMatchesPerRound = 10

// NewContest wipes all contest-scoped data and installs a fresh contest with
// default metadata at round 1. Destructive and irreversible; the calling
// surface owns the two-step confirmation and this method is the committed
// action.
// Preconditions: receives the acting session, which must be an admin
// Postconditions: returns the new contest id, or an error if the reset or
// install failed
func (a *API) NewContest(sess shared.Session) (string, error) {
	if err := requireAdmin(sess); err != nil {
		return "", err
	}

	if err := a.Store.ResetContestData(); err != nil {
		return "", err
	}

	id := newContestID()
	if err := a.Store.SetActiveContest(store.ActiveContest{ID: id}); err != nil {
		return "", err
	}
	if err := a.Store.PutMatches([]store.Match{}); err != nil {
		return "", err
	}
	if err := a.Store.SetMeta(id, store.ContestMeta{Round: 1, EligibleUsers: []string{}}); err != nil {
		return "", err
	}
	return id, nil
}

// StartContest marks the contest started, records the start instant and
// snapshots the current roster usernames as the eligible-user list. One-way:
// a started contest reports ErrAlreadyStarted and changes nothing. Prize and
// end date become immutable from here on, enforced by their editing
// operations.
func (a *API) StartContest(sess shared.Session) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	cid, err := a.activeContest()
	if err != nil {
		return err
	}

	meta := a.Store.Meta(cid)
	if meta.ContestStarted {
		return ErrAlreadyStarted
	}

	eligible := []string{}
	for _, u := range a.Store.Users() {
		name := strings.TrimSpace(u.Username)
		if name != "" {
			eligible = append(eligible, name)
		}
	}

	meta.ContestStarted = true
	meta.StartedAt = a.Now().UnixMilli()
	meta.EligibleUsers = eligible
	return a.Store.SetMeta(cid, meta)
}

// ToggleMatchesLock flips the match-list lock. Refused once results are
// locked or the submission deadline has passed.
// Postconditions: returns the new lock state, or an error if a guard refused
func (a *API) ToggleMatchesLock(sess shared.Session) (bool, error) {
	if err := requireAdmin(sess); err != nil {
		return false, err
	}
	cid, err := a.activeContest()
	if err != nil {
		return false, err
	}

	meta := a.Store.Meta(cid)
	if meta.ResultsLocked {
		return false, ErrLocked
	}
	if logic.DeadlinePassed(a.Store.Matches(), a.Now()) {
		return false, ErrDeadlinePassed
	}

	meta.MatchesLocked = !meta.MatchesLocked
	if err := a.Store.SetMeta(cid, meta); err != nil {
		return false, err
	}
	return meta.MatchesLocked, nil
}

// LockResults freezes the round's results and commits its points: per-user
// round scores go into the contest bucket, the global totals are rebuilt from
// all buckets, and the round's tie-break stats fold into the cumulative
// counters. The lastScoredRound guard makes the whole operation idempotent:
// a second call for the same round is refused before anything is touched.
func (a *API) LockResults(sess shared.Session) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	cid, err := a.activeContest()
	if err != nil {
		return err
	}

	meta := a.Store.Meta(cid)
	if meta.ResultsLocked {
		return ErrAlreadyLocked
	}

	matches := a.Store.Matches()
	for _, m := range matches {
		if !m.Off && m.Result == "" {
			return ErrIncompleteResults
		}
	}

	if meta.LastScoredRound == meta.Round {
		return ErrAlreadyScored
	}

	meta.ResultsLocked = true
	if err := a.Store.SetMeta(cid, meta); err != nil {
		return err
	}

	picks := a.Store.Picks(cid)

	perRound := logic.ComputeRoundPoints(matches, picks)
	by := a.Store.ScoresByContest()
	by[cid] = logic.AddRoundScores(by[cid], perRound)
	if err := a.Store.SetScoresByContest(by); err != nil {
		return err
	}
	if err := a.Store.SetScores(logic.RebuildTotals(by)); err != nil {
		return err
	}

	stats := logic.ComputeRoundStats(matches, picks)
	tie := logic.FoldRoundStats(a.Store.TieStats(cid), stats)
	if err := a.Store.SetTieStats(cid, tie); err != nil {
		return err
	}

	if err := a.Store.SetRoundLockedAt(cid, meta.Round, a.Now().UnixMilli()); err != nil {
		return err
	}

	// points changed, so any previously declared winner is stale
	meta.LastScoredRound = meta.Round
	meta.FinalWinner = ""
	meta.FinalWinnerAt = 0
	return a.Store.SetMeta(cid, meta)
}

// NextRound advances to the next round: the match list is wiped, the lock
// flags reset and the contest's pick-lock record cleared. Scores and tie
// stats from completed rounds are untouched. Picks keyed by the wiped match
// ids stay behind as orphaned entries; that growth is accepted, not
// reclaimed.
// Postconditions: returns the new round number, or an error if results were
// not locked first
func (a *API) NextRound(sess shared.Session) (int, error) {
	if err := requireAdmin(sess); err != nil {
		return 0, err
	}
	cid, err := a.activeContest()
	if err != nil {
		return 0, err
	}

	meta := a.Store.Meta(cid)
	if !meta.ResultsLocked {
		return 0, ErrNotLocked
	}

	if err := a.Store.PutMatches([]store.Match{}); err != nil {
		return 0, err
	}

	meta.Round++
	meta.MatchesLocked = false
	meta.ResultsLocked = false
	meta.RoundClosed = false
	meta.FinalWinner = ""
	meta.FinalWinnerAt = 0
	if err := a.Store.SetMeta(cid, meta); err != nil {
		return 0, err
	}

	if err := a.Store.ClearPickLock(cid); err != nil {
		return 0, err
	}
	return meta.Round, nil
}

// ToggleFinalWeek flips the final-week flag. A winner determination is only
// valid for the flag state it was computed under, so both fields clear on
// every toggle.
// Postconditions: returns the new flag state, or an error if a guard refused
func (a *API) ToggleFinalWeek(sess shared.Session) (bool, error) {
	if err := requireAdmin(sess); err != nil {
		return false, err
	}
	cid, err := a.activeContest()
	if err != nil {
		return false, err
	}

	meta := a.Store.Meta(cid)
	meta.FinalWeek = !meta.FinalWeek
	meta.FinalWinner = ""
	meta.FinalWinnerAt = 0
	if err := a.Store.SetMeta(cid, meta); err != nil {
		return false, err
	}
	return meta.FinalWeek, nil
}
