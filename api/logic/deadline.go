/* deadline.go
 * Contains the pick-submission deadline arithmetic. Both functions are pure
 * and are recomputed on every guard check, never cached.
 */

package logic

import (
	"time"

	"totopool/api/store"
)

// deadlineLead is how long before the earliest kickoff picks close
const deadlineLead = 10 * time.Minute

// Deadline derives the pick-submission cutoff from the match list: the
// earliest start among enabled matches with a valid start time, minus the
// lead. The second return is false when no eligible match exists.
func Deadline(matches []store.Match) (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, m := range matches {
		if m.Off {
			continue
		}
		start, ok := m.StartTime()
		if !ok {
			continue
		}
		if !found || start.Before(earliest) {
			earliest = start
			found = true
		}
	}
	if !found {
		return time.Time{}, false
	}
	return earliest.Add(-deadlineLead), true
}

// DeadlinePassed reports whether the submission deadline has elapsed at now.
// An empty list has no deadline, and a list where any match lacks a valid
// start time is treated as not yet comparable rather than an error.
func DeadlinePassed(matches []store.Match, now time.Time) bool {
	if len(matches) == 0 {
		return false
	}
	for _, m := range matches {
		if _, ok := m.StartTime(); !ok {
			return false
		}
	}
	deadline, ok := Deadline(matches)
	if !ok {
		return false
	}
	return !now.Before(deadline)
}
