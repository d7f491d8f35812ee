/* lookup.go
 * Contains the match resolution used by $off and $result: a numeric argument
 * is the match's list number, anything else is matched fuzzily against the
 * round's team names so a slightly misspelled name still lands.
 */

package bot

import (
	"strconv"
	"strings"

	"totopool/api/api"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// resolveMatch maps a command argument to a match id in the current round
// Preconditions: receives the user-supplied match reference (number or team
// name)
// Postconditions: returns the match id, or ErrMatchNotFound when nothing in
// the round matches
func (b *Bot) resolveMatch(ref string) (string, error) {
	matches := b.APIPtr.Store.Matches()

	if n, err := strconv.Atoi(ref); err == nil {
		for _, m := range matches {
			if m.Seq == n {
				return m.ID, nil
			}
		}
		return "", api.ErrMatchNotFound
	}

	// Build a lowercase team-name index; both sides of a fixture point at it
	lookup := make(map[string]string)
	var names []string
	for _, m := range matches {
		for _, team := range []string{m.Home, m.Away} {
			lower := strings.ToLower(team)
			lookup[lower] = m.ID
			names = append(names, lower)
		}
	}

	ranked := fuzzy.RankFind(strings.ToLower(ref), names)
	if len(ranked) == 0 {
		return "", api.ErrMatchNotFound
	}

	// Prefer an exact hit over the best-ranked fuzzy one
	best := ranked[0].Target
	for _, r := range ranked {
		if r.Target == strings.ToLower(ref) {
			best = r.Target
			break
		}
	}
	return lookup[best], nil
}
