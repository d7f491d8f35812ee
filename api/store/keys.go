/* keys.go
 * Contains the key constants for every record kept in the key-value medium
 */

package store

const (
	// KeyActiveContest holds the single active-contest pointer
	KeyActiveContest = "activeContest"
	// KeyMatches holds the match list of the active contest's current round
	KeyMatches = "contestMatches"
	// KeyPicks holds contest -> user -> matchID -> pick
	KeyPicks = "picks"
	// KeyUsers holds the registered-user roster
	KeyUsers = "users"
	// KeyHelpPurchases holds contest -> user -> joker purchase record
	KeyHelpPurchases = "help199"
	// KeyScores holds the global cumulative totals, user -> points
	KeyScores = "scores"
	// KeyScoresByContest holds contest -> user -> points buckets
	KeyScoresByContest = "scoresByContest"
	// KeyMeta holds contest -> ContestMeta
	KeyMeta = "contestMeta"
	// KeyRoundLockedAt holds contest -> round -> lock timestamp
	KeyRoundLockedAt = "roundLockedAt"
	// KeyNextContestStart holds the announced next-contest start date
	KeyNextContestStart = "nextContestStartISO"
	// KeyPickLocks holds contest -> opaque pick-lock record, owned by the
	// pick-submission flow; the core only clears a contest's entry on round
	// advance
	KeyPickLocks = "picksLocked"
	// KeyTieStats holds contest -> user -> TieStats
	KeyTieStats = "tieStatsByContest"
)

// contestKeys are the records wiped wholesale when a new contest is created
var contestKeys = []string{
	KeyScores,
	KeyScoresByContest,
	KeyPicks,
	KeyHelpPurchases,
	KeyMeta,
	KeyMatches,
	KeyRoundLockedAt,
	KeyPickLocks,
	KeyTieStats,
}
