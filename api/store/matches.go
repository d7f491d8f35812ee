/* matches.go
 * Contains the Store methods for the active round's match list
 */

package store

// Matches returns the match list of the active contest's current round.
// Missing or corrupt data reads as an empty list.
func (s *Store) Matches() []Match {
	var matches []Match
	s.kv.Get(KeyMatches, &matches)
	return matches
}

// PutMatches replaces the match list wholesale. The list is exclusively owned
// by the current round; round advance writes an empty list through here and
// no history of past rounds' lists is retained.
func (s *Store) PutMatches(matches []Match) error {
	if matches == nil {
		matches = []Match{}
	}
	return s.put(KeyMatches, matches)
}
