/* matches.go
 * Contains the match-list operations: add, off-toggle and result entry.
 * The list belongs to the active contest's current round only.
 */

package api

import (
	"fmt"
	"strings"

	"totopool/api/logic"
	"totopool/api/shared"
	"totopool/api/store"
)

// AddMatch appends a fixture to the current round. Refused once results are
// locked, after the deadline, while the list is locked, or at the cap of 10.
// Postconditions: returns the stored match, or an error if a guard or
// validation refused
func (a *API) AddMatch(sess shared.Session, date, kickoff, home, away string) (store.Match, error) {
	if err := requireAdmin(sess); err != nil {
		return store.Match{}, err
	}
	cid, err := a.activeContest()
	if err != nil {
		return store.Match{}, err
	}

	meta := a.Store.Meta(cid)
	matches := a.Store.Matches()

	if meta.ResultsLocked {
		return store.Match{}, ErrLocked
	}
	if logic.DeadlinePassed(matches, a.Now()) {
		return store.Match{}, ErrDeadlinePassed
	}
	if meta.MatchesLocked {
		return store.Match{}, ErrLocked
	}
	if len(matches) >= maxMatchesPerRound {
		return store.Match{}, ErrCapacity
	}

	date = strings.TrimSpace(date)
	kickoff = strings.TrimSpace(kickoff)
	home = strings.TrimSpace(home)
	away = strings.TrimSpace(away)
	if date == "" || kickoff == "" || home == "" || away == "" {
		return store.Match{}, fmt.Errorf("%w: date, time, home and away are all required", ErrValidation)
	}

	m := store.Match{
		ID:       a.newMatchID(),
		Seq:      len(matches) + 1,
		Date:     date,
		Time:     kickoff,
		Home:     home,
		Away:     away,
		StartISO: date + "T" + kickoff + ":00",
		Off:      false,
		Result:   "",
	}
	matches = append(matches, m)
	if err := a.Store.PutMatches(matches); err != nil {
		return store.Match{}, err
	}
	return m, nil
}

// ToggleOff flips a match's disabled flag. Turning a match off clears its
// result, since a result cannot coexist with off. Refused once results are
// locked.
// Postconditions: returns the new off state, or an error if a guard refused
func (a *API) ToggleOff(sess shared.Session, matchID string) (bool, error) {
	if err := requireAdmin(sess); err != nil {
		return false, err
	}
	cid, err := a.activeContest()
	if err != nil {
		return false, err
	}

	if a.Store.Meta(cid).ResultsLocked {
		return false, ErrLocked
	}

	matches := a.Store.Matches()
	for i := range matches {
		if matches[i].ID != matchID {
			continue
		}
		matches[i].Off = !matches[i].Off
		if matches[i].Off {
			matches[i].Result = ""
		}
		if err := a.Store.PutMatches(matches); err != nil {
			return false, err
		}
		return matches[i].Off, nil
	}
	return false, ErrMatchNotFound
}

// SetResult records a match's final outcome. Refused once results are locked,
// on a disabled match, or for a value outside the 1/X/2 alphabet.
func (a *API) SetResult(sess shared.Session, matchID, value string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	cid, err := a.activeContest()
	if err != nil {
		return err
	}

	if a.Store.Meta(cid).ResultsLocked {
		return ErrLocked
	}

	value = strings.TrimSpace(value)
	if !store.ValidResult(value) {
		return fmt.Errorf("%w: result must be 1, X or 2", ErrValidation)
	}

	matches := a.Store.Matches()
	for i := range matches {
		if matches[i].ID != matchID {
			continue
		}
		if matches[i].Off {
			return fmt.Errorf("%w: an off match takes no result", ErrValidation)
		}
		matches[i].Result = value
		return a.Store.PutMatches(matches)
	}
	return ErrMatchNotFound
}
