/* reports.go
 * Contains the read side of the admin panel: the status summary, the
 * leaderboard, active users, the roster and joker purchases. Reports build
 * display strings the same way the command surface sends them.
 */

package api

import (
	"fmt"
	"sort"
	"strings"

	"totopool/api/logic"
	"totopool/api/shared"
)

// Status summarises the active contest for the admin: id, round, flags,
// deadline and the match list.
// Postconditions: returns the summary lines, or an error if the caller is
// not an admin or no contest exists
func (a *API) Status(sess shared.Session) ([]string, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	cid, err := a.activeContest()
	if err != nil {
		return nil, err
	}

	meta := a.Store.Meta(cid)
	matches := a.Store.Matches()

	lines := []string{
		fmt.Sprintf("Contest: %s", cid),
		fmt.Sprintf("Round: %d", meta.Round),
		fmt.Sprintf("Started: %s", yesNo(meta.ContestStarted)),
		fmt.Sprintf("Matches locked: %s", yesNo(meta.MatchesLocked)),
		fmt.Sprintf("Results locked: %s", yesNo(meta.ResultsLocked)),
		fmt.Sprintf("Final week: %s", yesNo(meta.FinalWeek)),
	}

	if deadline, ok := logic.Deadline(matches); ok {
		passed := ""
		if logic.DeadlinePassed(matches, a.Now()) {
			passed = " (passed)"
		}
		lines = append(lines, fmt.Sprintf("Deadline: %s%s", deadline.Format("02/01/2006 15:04"), passed))
	} else {
		lines = append(lines, "Deadline: -")
	}

	if meta.PrizeText != "" {
		lines = append(lines, fmt.Sprintf("Prize: %s", meta.PrizeText))
	}
	if next := a.Store.NextContestStart(); next != "" {
		lines = append(lines, fmt.Sprintf("Next contest starts: %s", next))
	}

	lines = append(lines, fmt.Sprintf("Matches (%d):", len(matches)))
	for _, m := range matches {
		state := "ON"
		if m.Off {
			state = "OFF"
		}
		result := m.Result
		if result == "" {
			result = "-"
		}
		lines = append(lines, fmt.Sprintf("%d. %s %s  %s vs %s  [%s]  result: %s",
			m.Seq, m.Date, m.Time, m.Home, m.Away, state, result))
	}
	return lines, nil
}

// Leaderboard builds the cumulative standings from the global totals, highest
// first with username as the stable tiebreak for display. During the final
// week each line carries the tie-break counters the winner decision rests on.
func (a *API) Leaderboard() (string, error) {
	cid, err := a.activeContest()
	if err != nil {
		return "", err
	}

	totals := a.Store.Scores()
	if len(totals) == 0 {
		return "No scores yet", nil
	}

	type entry struct {
		user   string
		points int
	}
	entries := make([]entry, 0, len(totals))
	for user, pts := range totals {
		entries = append(entries, entry{user: user, points: pts})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].points != entries[j].points {
			return entries[i].points > entries[j].points
		}
		return entries[i].user < entries[j].user
	})

	meta := a.Store.Meta(cid)
	tie := a.Store.TieStats(cid)

	var response strings.Builder
	response.WriteString("Standings:\n")
	for i, e := range entries {
		response.WriteString(fmt.Sprintf("%d. %s: %d points", i+1, e.user, e.points))
		if meta.FinalWeek {
			st := tie[e.user]
			response.WriteString(fmt.Sprintf(" (bonus weeks: %d, best streak: %d, near-perfect: %d)",
				st.BonusCount, st.BonusStreakMax, st.NearPerfectCount))
		}
		response.WriteString("\n")
	}
	return response.String(), nil
}

// ActiveUsers lists the users who have submitted picks in the active contest,
// sorted by name
func (a *API) ActiveUsers(sess shared.Session) ([]string, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	cid, err := a.activeContest()
	if err != nil {
		return nil, err
	}

	picks := a.Store.Picks(cid)
	users := make([]string, 0, len(picks))
	for user := range picks {
		users = append(users, user)
	}
	sort.Strings(users)
	return users, nil
}

// Roster returns the registered-user roster for the admin report
func (a *API) Roster(sess shared.Session) ([]shared.User, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	return a.Store.Users(), nil
}

// HelpPurchases summarises joker purchases for the active contest, one line
// per buyer sorted by name
func (a *API) HelpPurchases(sess shared.Session) ([]string, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	cid, err := a.activeContest()
	if err != nil {
		return nil, err
	}

	purchases := a.Store.HelpPurchases(cid)
	users := make([]string, 0, len(purchases))
	for user := range purchases {
		users = append(users, user)
	}
	sort.Strings(users)

	lines := make([]string, 0, len(users))
	for _, user := range users {
		p := purchases[user]
		lines = append(lines, fmt.Sprintf("%s: used %d, remaining %d", user, len(p.UsedMatchIDs), p.Remaining))
	}
	return lines, nil
}

// EligibleUsers returns the roster snapshot frozen at contest start
func (a *API) EligibleUsers(sess shared.Session) ([]string, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	cid, err := a.activeContest()
	if err != nil {
		return nil, err
	}
	return a.Store.Meta(cid).EligibleUsers, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
