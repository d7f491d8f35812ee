/* errors.go
 * Contains the sentinel errors for every way an admin action can be refused.
 * Guard failures are ordinary return values: the state machine stays in its
 * prior valid state and the calling surface decides how to display them.
 */

package api

import "errors"

var (
	// ErrNotAdmin rejects any lifecycle call from a non-admin session
	ErrNotAdmin = errors.New("caller is not an admin")
	// ErrNoActiveContest rejects transitions before any contest exists
	ErrNoActiveContest = errors.New("no active contest")
	// ErrValidation covers missing or malformed input fields
	ErrValidation = errors.New("invalid input")
	// ErrCapacity rejects adding past the per-round match cap
	ErrCapacity = errors.New("match list is full")
	// ErrLocked rejects edits forbidden by a current lock flag
	ErrLocked = errors.New("locked")
	// ErrDeadlinePassed rejects list edits after the submission deadline
	ErrDeadlinePassed = errors.New("deadline has passed")
	// ErrIncompleteResults rejects locking while enabled matches lack results
	ErrIncompleteResults = errors.New("enabled matches are missing results")
	// ErrAlreadyScored is the idempotency guard: this round's points were
	// already committed
	ErrAlreadyScored = errors.New("round already scored")
	// ErrAlreadyLocked rejects locking results twice
	ErrAlreadyLocked = errors.New("results already locked")
	// ErrNotLocked rejects advancing the round before results are locked
	ErrNotLocked = errors.New("results not locked")
	// ErrAlreadyStarted reports that the contest start is a no-op
	ErrAlreadyStarted = errors.New("contest already started")
	// ErrContestStarted rejects prize and end-date edits after start
	ErrContestStarted = errors.New("contest has started")
	// ErrMatchNotFound rejects operations naming an unknown match
	ErrMatchNotFound = errors.New("match not found")
)
