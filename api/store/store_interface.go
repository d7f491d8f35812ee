/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 */

package store

import (
	"totopool/api/shared"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	ActiveContest() (ActiveContest, bool)
	SetActiveContest(ac ActiveContest) error
	ResetContestData() error

	Meta(contestID string) ContestMeta
	SetMeta(contestID string, meta ContestMeta) error

	Matches() []Match
	PutMatches(matches []Match) error

	Users() []shared.User
	Picks(contestID string) ContestPicks
	HelpPurchases(contestID string) map[string]HelpPurchase
	ClearPickLock(contestID string) error
	SetRoundLockedAt(contestID string, round int, unixMillis int64) error

	ScoresByContest() map[string]map[string]int
	SetScoresByContest(by map[string]map[string]int) error
	Scores() map[string]int
	SetScores(totals map[string]int) error
	TieStats(contestID string) map[string]TieStats
	SetTieStats(contestID string, stats map[string]TieStats) error

	NextContestStart() string
	SetNextContestStart(iso string) error
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)
