/* handlers.go
 * Contains the command handlers. Each handler accepts a DiscordSession
 * interface so it can be exercised in tests with a recording session.
 */

package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"totopool/api/api"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"
)

// args tokenizes a command message, honouring double-quoted tokens so team
// names with spaces survive ("AEK Larnaca"). The command word itself is
// dropped.
func args(content string) []string {
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	tokens, _ := spaceSplitter.Split(content)

	out := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		if i == 0 {
			continue
		}
		tok = strings.Trim(tok, "\"")
		tok = strings.Trim(tok, "“”")
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// send delivers one reply, logging delivery failures. A failed send is never
// retried; the admin reissues the command.
func (b *Bot) send(session DiscordSession, channelID, content string) {
	if _, err := session.ChannelMessageSend(channelID, content); err != nil {
		log.Printf("failed to send message to channel %s: %v", channelID, err)
	}
}

// errMessage turns a refused operation into a message the admin can act on
func errMessage(err error) string {
	switch {
	case errors.Is(err, api.ErrNotAdmin):
		return "You are not an admin"
	case errors.Is(err, api.ErrNoActiveContest):
		return "There is no active contest. Use $newcontest first"
	case errors.Is(err, api.ErrValidation):
		return err.Error()
	case errors.Is(err, api.ErrCapacity):
		return "Max 10 matches per round"
	case errors.Is(err, api.ErrLocked):
		return "Locked. Unlock first or wait for the next round"
	case errors.Is(err, api.ErrDeadlinePassed):
		return "The deadline has passed, the match list can no longer change"
	case errors.Is(err, api.ErrIncompleteResults):
		return "Some ON matches are missing results"
	case errors.Is(err, api.ErrAlreadyScored):
		return "This round's points were already added"
	case errors.Is(err, api.ErrAlreadyLocked):
		return "Results are already locked"
	case errors.Is(err, api.ErrNotLocked):
		return "Lock results first so the round's points are added"
	case errors.Is(err, api.ErrAlreadyStarted):
		return "The contest is already active"
	case errors.Is(err, api.ErrContestStarted):
		return "Locked: the contest has started"
	case errors.Is(err, api.ErrMatchNotFound):
		return "No such match. Use $status for the list"
	default:
		log.Println(err)
		return "An unexpected error occurred"
	}
}

// helpMessageHandler handles the $help command
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Toto Pool admin bot\n")
	res.WriteString("`$status`: contest, round, locks, deadline and match list\n")
	res.WriteString("`$newcontest`: reset everything and create a fresh contest (asks to confirm twice)\n")
	res.WriteString("`$startcontest`: start the contest and freeze prize/end date (confirm twice)\n")
	res.WriteString("`$addmatch <YYYY-MM-DD> <HH:MM> <home> <away>`: add a match; quote names with spaces (e.g. \"AEK Larnaca\")\n")
	res.WriteString("`$off <n|team>`: toggle a match OFF/ON (OFF matches take no result)\n")
	res.WriteString("`$result <n|team> <1|X|2>`: save a match's final result\n")
	res.WriteString("`$lockmatches`: toggle the match-list lock\n")
	res.WriteString("`$lockresults`: lock results and add the round's points (confirm twice)\n")
	res.WriteString("`$nextround`: clear the list and move to the next round (confirm twice)\n")
	res.WriteString("`$finalweek`: toggle final week (confirm twice)\n")
	res.WriteString("`$prize <text>` / `$prize clear`: set or clear the prize (before start only)\n")
	res.WriteString("`$enddate <YYYY-MM-DD>` / `$enddate clear`: set or clear the contest end date\n")
	res.WriteString("`$nextstart <YYYY-MM-DD>` / `$nextstart clear`: announce the next contest's start\n")
	res.WriteString("`$leaderboard`: cumulative standings (tie-break stats during final week)\n")
	res.WriteString("`$users` / `$active` / `$help199`: roster, users with picks, joker purchases\n")
	b.send(session, message.ChannelID, res.String())
}

// statusHandler handles the $status command
func (b *Bot) statusHandler(session DiscordSession, message *discordgo.MessageCreate) {
	lines, err := b.APIPtr.Status(b.session(message))
	if err != nil {
		b.send(session, message.ChannelID, errMessage(err))
		return
	}
	b.send(session, message.ChannelID, strings.Join(lines, "\n"))
}

// stage parks a destructive action behind the double-confirm conversation
func (b *Bot) stage(session DiscordSession, message *discordgo.MessageCreate, label string, run func() string) {
	b.pending[message.Author.ID] = &pendingAction{label: label, confirmsLeft: 2, run: run}
	b.send(session, message.ChannelID,
		fmt.Sprintf("%s. This cannot be undone. Type $confirm twice to proceed, $cancel to abort", label))
}

// confirmHandler handles the $confirm command
func (b *Bot) confirmHandler(session DiscordSession, message *discordgo.MessageCreate) {
	p, ok := b.pending[message.Author.ID]
	if !ok {
		b.send(session, message.ChannelID, "Nothing to confirm")
		return
	}
	p.confirmsLeft--
	if p.confirmsLeft > 0 {
		b.send(session, message.ChannelID,
			fmt.Sprintf("%s. Are you SURE? Type $confirm once more", p.label))
		return
	}
	delete(b.pending, message.Author.ID)
	b.send(session, message.ChannelID, p.run())
}

// cancelHandler handles the $cancel command
func (b *Bot) cancelHandler(session DiscordSession, message *discordgo.MessageCreate) {
	if _, ok := b.pending[message.Author.ID]; !ok {
		b.send(session, message.ChannelID, "Nothing to cancel")
		return
	}
	delete(b.pending, message.Author.ID)
	b.send(session, message.ChannelID, "Cancelled")
}

// newContestHandler handles the $newcontest command
func (b *Bot) newContestHandler(session DiscordSession, message *discordgo.MessageCreate) {
	sess := b.session(message)
	if !sess.IsAdmin {
		b.send(session, message.ChannelID, errMessage(api.ErrNotAdmin))
		return
	}
	b.stage(session, message, "New contest: scores, picks, jokers and meta will be RESET", func() string {
		id, err := b.APIPtr.NewContest(sess)
		if err != nil {
			return errMessage(err)
		}
		return fmt.Sprintf("New contest created: %s", id)
	})
}

// startContestHandler handles the $startcontest command
func (b *Bot) startContestHandler(session DiscordSession, message *discordgo.MessageCreate) {
	sess := b.session(message)
	if !sess.IsAdmin {
		b.send(session, message.ChannelID, errMessage(api.ErrNotAdmin))
		return
	}
	b.stage(session, message, "Start contest: prize and end date will lock", func() string {
		if err := b.APIPtr.StartContest(sess); err != nil {
			return errMessage(err)
		}
		return "The contest is now ACTIVE"
	})
}

// toggleMatchesLockHandler handles the $lockmatches command
func (b *Bot) toggleMatchesLockHandler(session DiscordSession, message *discordgo.MessageCreate) {
	locked, err := b.APIPtr.ToggleMatchesLock(b.session(message))
	if err != nil {
		b.send(session, message.ChannelID, errMessage(err))
		return
	}
	if locked {
		b.send(session, message.ChannelID, "Match list locked")
	} else {
		b.send(session, message.ChannelID, "Match list unlocked")
	}
}

// addMatchHandler handles the $addmatch command
func (b *Bot) addMatchHandler(session DiscordSession, message *discordgo.MessageCreate) {
	fields := args(message.Content)
	if len(fields) != 4 {
		b.send(session, message.ChannelID,
			"Usage: $addmatch <YYYY-MM-DD> <HH:MM> <home> <away>")
		return
	}
	m, err := b.APIPtr.AddMatch(b.session(message), fields[0], fields[1], fields[2], fields[3])
	if err != nil {
		b.send(session, message.ChannelID, errMessage(err))
		return
	}
	b.send(session, message.ChannelID,
		fmt.Sprintf("Added match %d: %s vs %s on %s %s", m.Seq, m.Home, m.Away, m.Date, m.Time))
}

// toggleOffHandler handles the $off command
func (b *Bot) toggleOffHandler(session DiscordSession, message *discordgo.MessageCreate) {
	fields := args(message.Content)
	if len(fields) != 1 {
		b.send(session, message.ChannelID, "Usage: $off <match number or team name>")
		return
	}
	matchID, err := b.resolveMatch(fields[0])
	if err != nil {
		b.send(session, message.ChannelID, errMessage(err))
		return
	}
	off, err := b.APIPtr.ToggleOff(b.session(message), matchID)
	if err != nil {
		b.send(session, message.ChannelID, errMessage(err))
		return
	}
	if off {
		b.send(session, message.ChannelID, "Match is OFF (its result was cleared)")
	} else {
		b.send(session, message.ChannelID, "Match is back ON")
	}
}

// setResultHandler handles the $result command
func (b *Bot) setResultHandler(session DiscordSession, message *discordgo.MessageCreate) {
	fields := args(message.Content)
	if len(fields) != 2 {
		b.send(session, message.ChannelID, "Usage: $result <match number or team name> <1|X|2>")
		return
	}
	matchID, err := b.resolveMatch(fields[0])
	if err != nil {
		b.send(session, message.ChannelID, errMessage(err))
		return
	}
	if err := b.APIPtr.SetResult(b.session(message), matchID, strings.ToUpper(fields[1])); err != nil {
		b.send(session, message.ChannelID, errMessage(err))
		return
	}
	b.send(session, message.ChannelID, "Result saved")
}

// lockResultsHandler handles the $lockresults command
func (b *Bot) lockResultsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	sess := b.session(message)
	if !sess.IsAdmin {
		b.send(session, message.ChannelID, errMessage(api.ErrNotAdmin))
		return
	}
	b.stage(session, message, "Lock results: the round's points will be added to the totals", func() string {
		if err := b.APIPtr.LockResults(sess); err != nil {
			return errMessage(err)
		}
		return "Results locked and points ADDED to the cumulative standings"
	})
}

// nextRoundHandler handles the $nextround command
func (b *Bot) nextRoundHandler(session DiscordSession, message *discordgo.MessageCreate) {
	sess := b.session(message)
	if !sess.IsAdmin {
		b.send(session, message.ChannelID, errMessage(api.ErrNotAdmin))
		return
	}
	b.stage(session, message, "Next round: ALL matches will be removed from the list (points are kept)", func() string {
		round, err := b.APIPtr.NextRound(sess)
		if err != nil {
			return errMessage(err)
		}
		return fmt.Sprintf("Done. The list is empty, add matches for round %d", round)
	})
}

// finalWeekHandler handles the $finalweek command
func (b *Bot) finalWeekHandler(session DiscordSession, message *discordgo.MessageCreate) {
	sess := b.session(message)
	if !sess.IsAdmin {
		b.send(session, message.ChannelID, errMessage(api.ErrNotAdmin))
		return
	}
	b.stage(session, message, "Toggle final week (any declared winner is cleared)", func() string {
		on, err := b.APIPtr.ToggleFinalWeek(sess)
		if err != nil {
			return errMessage(err)
		}
		if on {
			return "Final week: ON"
		}
		return "Final week: OFF"
	})
}

// prizeHandler handles the $prize command
func (b *Bot) prizeHandler(session DiscordSession, message *discordgo.MessageCreate) {
	fields := args(message.Content)
	if len(fields) == 1 && strings.EqualFold(fields[0], "clear") {
		if err := b.APIPtr.ClearPrize(b.session(message)); err != nil {
			b.send(session, message.ChannelID, errMessage(err))
			return
		}
		b.send(session, message.ChannelID, "Prize cleared")
		return
	}
	if len(fields) == 0 {
		b.send(session, message.ChannelID, "Usage: $prize <text> or $prize clear")
		return
	}
	if err := b.APIPtr.SavePrize(b.session(message), strings.Join(fields, " ")); err != nil {
		b.send(session, message.ChannelID, errMessage(err))
		return
	}
	b.send(session, message.ChannelID, "Prize saved")
}

// endDateHandler handles the $enddate command
func (b *Bot) endDateHandler(session DiscordSession, message *discordgo.MessageCreate) {
	fields := args(message.Content)
	if len(fields) != 1 {
		b.send(session, message.ChannelID, "Usage: $enddate <YYYY-MM-DD> or $enddate clear")
		return
	}
	if strings.EqualFold(fields[0], "clear") {
		if err := b.APIPtr.ClearEndDate(b.session(message)); err != nil {
			b.send(session, message.ChannelID, errMessage(err))
			return
		}
		b.send(session, message.ChannelID, "End date cleared")
		return
	}
	if err := b.APIPtr.SaveEndDate(b.session(message), fields[0]); err != nil {
		b.send(session, message.ChannelID, errMessage(err))
		return
	}
	b.send(session, message.ChannelID, "End date saved")
}

// nextStartHandler handles the $nextstart command
func (b *Bot) nextStartHandler(session DiscordSession, message *discordgo.MessageCreate) {
	fields := args(message.Content)
	if len(fields) != 1 {
		b.send(session, message.ChannelID, "Usage: $nextstart <YYYY-MM-DD> or $nextstart clear")
		return
	}
	if strings.EqualFold(fields[0], "clear") {
		if err := b.APIPtr.ClearNextContestDate(b.session(message)); err != nil {
			b.send(session, message.ChannelID, errMessage(err))
			return
		}
		b.send(session, message.ChannelID, "Next contest date cleared")
		return
	}
	if err := b.APIPtr.SetNextContestDate(b.session(message), fields[0]); err != nil {
		b.send(session, message.ChannelID, errMessage(err))
		return
	}
	b.send(session, message.ChannelID, "Next contest date saved")
}

// leaderboardHandler handles the $leaderboard command
func (b *Bot) leaderboardHandler(session DiscordSession, message *discordgo.MessageCreate) {
	res, err := b.APIPtr.Leaderboard()
	if err != nil {
		b.send(session, message.ChannelID, errMessage(err))
		return
	}
	b.send(session, message.ChannelID, res)
}

// rosterHandler handles the $users command
func (b *Bot) rosterHandler(session DiscordSession, message *discordgo.MessageCreate) {
	users, err := b.APIPtr.Roster(b.session(message))
	if err != nil {
		b.send(session, message.ChannelID, errMessage(err))
		return
	}
	if len(users) == 0 {
		b.send(session, message.ChannelID, "No users")
		return
	}
	var res strings.Builder
	res.WriteString(fmt.Sprintf("Users: %d\n", len(users)))
	for _, u := range users {
		admin := ""
		if u.IsAdmin {
			admin = " (admin)"
		}
		res.WriteString(fmt.Sprintf("- %s <%s>%s\n", u.Username, u.Email, admin))
	}
	b.send(session, message.ChannelID, res.String())
}

// activeUsersHandler handles the $active command
func (b *Bot) activeUsersHandler(session DiscordSession, message *discordgo.MessageCreate) {
	users, err := b.APIPtr.ActiveUsers(b.session(message))
	if err != nil {
		b.send(session, message.ChannelID, errMessage(err))
		return
	}
	if len(users) == 0 {
		b.send(session, message.ChannelID, "Nobody has picks in this contest yet")
		return
	}
	var res strings.Builder
	res.WriteString(fmt.Sprintf("Users with picks: %d\n", len(users)))
	for _, u := range users {
		res.WriteString(fmt.Sprintf("- %s\n", u))
	}
	b.send(session, message.ChannelID, res.String())
}

// helpPurchasesHandler handles the $help199 command
func (b *Bot) helpPurchasesHandler(session DiscordSession, message *discordgo.MessageCreate) {
	lines, err := b.APIPtr.HelpPurchases(b.session(message))
	if err != nil {
		b.send(session, message.ChannelID, errMessage(err))
		return
	}
	if len(lines) == 0 {
		b.send(session, message.ChannelID, "No joker purchases")
		return
	}
	b.send(session, message.ChannelID, strings.Join(lines, "\n"))
}
