/* models.go
 * This file contains the structs for the records kept in the key-value
 * medium: the active-contest pointer, matches, contest metadata, picks,
 * joker purchases and tie-break stats
 */

package store

import "time"

// Outcome symbols a match result may take, and the joker pick token that
// counts as correct on any match.
const (
	ResultHome = "1"
	ResultDraw = "X"
	ResultAway = "2"
	PickJoker  = "HELP"
)

// ValidResult reports whether v is one of the three outcome symbols
func ValidResult(v string) bool {
	return v == ResultHome || v == ResultDraw || v == ResultAway
}

// ActiveContest is the single process-wide pointer to the contest being
// administered. Replaced wholesale on new-contest, never mutated in place.
type ActiveContest struct {
	ID string `json:"id"`
}

// Match is one scheduled fixture of the current round. Date and Time are the
// admin-entered parts; StartISO is their combination and is what deadline
// arithmetic parses. A match with Off=true never requires nor accepts a
// result.
type Match struct {
	ID       string `json:"id"`
	Seq      int    `json:"n"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Home     string `json:"home"`
	Away     string `json:"away"`
	StartISO string `json:"startISO"`
	Off      bool   `json:"off"`
	Result   string `json:"result"`
}

// StartTime parses the match start instant. The second return is false when
// the stored value is absent or malformed; callers treat that as "not yet
// comparable" rather than an error.
func (m Match) StartTime() (time.Time, bool) {
	if m.StartISO == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05", m.StartISO, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ContestMeta is the per-contest metadata record. Timestamps are Unix
// milliseconds, zero meaning unset.
type ContestMeta struct {
	Round           int      `json:"round"`
	PrizeText       string   `json:"prizeText"`
	ContestEndsAt   string   `json:"contestEndsAtISO,omitempty"`
	ContestStarted  bool     `json:"contestStarted"`
	StartedAt       int64    `json:"startedAt,omitempty"`
	MatchesLocked   bool     `json:"matchesLocked"`
	ResultsLocked   bool     `json:"resultsLocked"`
	RoundClosed     bool     `json:"roundClosed"`
	EligibleUsers   []string `json:"eligibleUsers"`
	LastScoredRound int      `json:"lastScoredRound"`
	FinalWeek       bool     `json:"finalWeek"`
	FinalWinner     string   `json:"finalWinner,omitempty"`
	FinalWinnerAt   int64    `json:"finalWinnerAt,omitempty"`
}

// defaultMeta is the record installed for a contest that has none yet
func defaultMeta() ContestMeta {
	return ContestMeta{Round: 1, EligibleUsers: []string{}}
}

// Pick is one user's submitted outcome guess for one match
type Pick struct {
	Pick string `json:"pick"`
}

// ContestPicks is user -> matchID -> Pick for one contest
type ContestPicks map[string]map[string]Pick

// HelpPurchase records a user's joker purchases for one contest. Owned by the
// purchase flow; read here for admin reports only.
type HelpPurchase struct {
	UsedMatchIDs []string `json:"usedMatchIds"`
	Remaining    int      `json:"remaining"`
}

// TieStats are the cumulative per-user tie-break counters for one contest,
// folded forward once per locked round and never decremented except by a
// full contest reset.
type TieStats struct {
	BonusCount       int `json:"bonusCount"`
	BonusStreakCur   int `json:"bonusStreakCur"`
	BonusStreakMax   int `json:"bonusStreakMax"`
	NearPerfectCount int `json:"nearPerfectCount"`
}
