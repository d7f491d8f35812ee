/* settings.go
 * Contains the pre-start contest settings (prize text, contest end date) and
 * the next-contest announcement date. Prize and end date freeze the moment
 * the contest starts.
 */

package api

import (
	"fmt"
	"strings"
	"time"

	"totopool/api/shared"
)

// notStarted refuses prize/end-date edits once the contest has started
func (a *API) notStarted() (string, error) {
	cid, err := a.activeContest()
	if err != nil {
		return "", err
	}
	if a.Store.Meta(cid).ContestStarted {
		return "", ErrContestStarted
	}
	return cid, nil
}

// SavePrize sets the prize text shown to participants
func (a *API) SavePrize(sess shared.Session, text string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	cid, err := a.notStarted()
	if err != nil {
		return err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("%w: prize text is required", ErrValidation)
	}

	meta := a.Store.Meta(cid)
	meta.PrizeText = text
	return a.Store.SetMeta(cid, meta)
}

// ClearPrize removes the prize text
func (a *API) ClearPrize(sess shared.Session) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	cid, err := a.notStarted()
	if err != nil {
		return err
	}

	meta := a.Store.Meta(cid)
	meta.PrizeText = ""
	return a.Store.SetMeta(cid, meta)
}

// SaveEndDate sets the contest end date from a YYYY-MM-DD value
func (a *API) SaveEndDate(sess shared.Session, date string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	cid, err := a.notStarted()
	if err != nil {
		return err
	}

	date = strings.TrimSpace(date)
	if date == "" {
		return fmt.Errorf("%w: end date is required", ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: end date must be YYYY-MM-DD", ErrValidation)
	}

	meta := a.Store.Meta(cid)
	meta.ContestEndsAt = date + "T00:00:00"
	return a.Store.SetMeta(cid, meta)
}

// ClearEndDate removes the contest end date
func (a *API) ClearEndDate(sess shared.Session) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	cid, err := a.notStarted()
	if err != nil {
		return err
	}

	meta := a.Store.Meta(cid)
	meta.ContestEndsAt = ""
	return a.Store.SetMeta(cid, meta)
}

// SetNextContestDate announces when the next contest begins. Display-only
// data, not tied to any contest's lifecycle, so it is editable at any time.
func (a *API) SetNextContestDate(sess shared.Session, date string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	date = strings.TrimSpace(date)
	if date == "" {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	return a.Store.SetNextContestStart(date)
}

// ClearNextContestDate removes the next-contest announcement
func (a *API) ClearNextContestDate(sess shared.Session) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	return a.Store.SetNextContestStart("")
}
