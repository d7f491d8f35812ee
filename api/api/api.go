/* api.go
 * Contains the API struct and the shared guard helpers. The API is the only
 * entry point for admin actions: every exported method authorises the acting
 * session first, then validates lifecycle guards, then applies its writes.
 * The lifecycle transitions live in lifecycle.go, match-list edits in
 * matches.go, pre-start settings in settings.go and the read side in
 * reports.go.
 *
 * Methods run to completion on the calling goroutine; the store is a
 * synchronous transactionless medium, so the no-interleaving guarantee of a
 * transition holds only under single-threaded, non-reentrant invocation.
 */

package api

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"totopool/api/shared"
	"totopool/api/store"
)

// API provides the admin operations over the pool's data layer
type API struct {
	Store store.Interface

	// Now supplies the current instant for deadline guards and timestamps.
	// Tests substitute a fixed clock.
	Now func() time.Time
}

// NewAPI creates a new API instance over the given store
func NewAPI(s store.Interface) (*API, error) {
	if s == nil {
		return nil, fmt.Errorf("a store is required")
	}
	return &API{Store: s, Now: time.Now}, nil
}

// requireAdmin rejects calls from non-admin sessions. Checked before any
// read or write in every exported operation.
func requireAdmin(sess shared.Session) error {
	if !sess.IsAdmin {
		return ErrNotAdmin
	}
	return nil
}

// activeContest returns the id of the active contest, or ErrNoActiveContest
func (a *API) activeContest() (string, error) {
	ac, ok := a.Store.ActiveContest()
	if !ok {
		return "", ErrNoActiveContest
	}
	return ac.ID, nil
}

// contestIDAlphabet matches the short upper-case base36 codes the pool has
// always used for contest ids
const contestIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newContestID generates a fresh 5-character contest code
func newContestID() string {
	var b strings.Builder
	for i := 0; i < 5; i++ {
		b.WriteByte(contestIDAlphabet[rand.Intn(len(contestIDAlphabet))])
	}
	return b.String()
}

// newMatchID generates a match id unique within the medium's lifetime
func (a *API) newMatchID() string {
	return fmt.Sprintf("m_%d_%04d", a.Now().UnixMilli(), rand.Intn(10000))
}
