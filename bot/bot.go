/* bot.go
 * Contains the Bot struct, command dispatch and the Run loop. The bot is the
 * admin surface of the pool: every contest lifecycle action is a $-command,
 * and the destructive ones go through a two-step $confirm conversation
 * before the API is called.
 */

package bot

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"

	"totopool/api/api"
	"totopool/api/shared"

	"github.com/bwmarrin/discordgo"
)

// pendingAction is a staged destructive command awaiting confirmation.
// confirmsLeft starts at 2; each $confirm decrements and the action runs
// when it reaches zero. Any other command from the same user discards it.
type pendingAction struct {
	label        string
	confirmsLeft int
	run          func() string
}

type Bot struct {
	BotToken string
	APIPtr   *api.API

	// admins maps Discord usernames allowed to act as admin
	admins map[string]bool
	// pending holds each user's staged destructive action
	pending map[string]*pendingAction
	// mu serializes dispatch: the gateway delivers events on separate
	// goroutines, but pending and the store both require a single writer
	mu sync.Mutex
}

// NewBot creates the bot.
// Preconditions: receives the Discord token, the API and the list of admin
// Discord usernames
// Postconditions: returns a pointer to the Bot, or an error if the token is
// missing
func NewBot(botToken string, apiPtr *api.API, adminUsers []string) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}

	admins := make(map[string]bool, len(adminUsers))
	for _, name := range adminUsers {
		name = strings.TrimSpace(strings.ToLower(name))
		if name != "" {
			admins[name] = true
		}
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
		admins:   admins,
		pending:  make(map[string]*pendingAction),
	}, nil
}

// Run opens the gateway session and blocks until interrupted
func (b *Bot) Run() error {
	discord, err := discordgo.New("Bot " + b.BotToken)
	if err != nil {
		return err
	}

	discord.AddHandler(b.newMessage)

	if err := discord.Open(); err != nil {
		return err
	}
	defer discord.Close()

	fmt.Println("Bot running....")
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c
	return nil
}

func (b *Bot) newMessage(discord *discordgo.Session, message *discordgo.MessageCreate) {
	if message.Author.ID == discord.State.User.ID {
		return
	}
	b.dispatch(discord, message)
}

// session derives the acting session from the message author. Admin is a
// fact looked up in the configured admin list; the core rejects everything
// else.
func (b *Bot) session(message *discordgo.MessageCreate) shared.Session {
	name := message.Author.Username
	return shared.Session{
		Username: name,
		IsAdmin:  b.admins[strings.ToLower(name)],
	}
}

// dispatch routes a message to its handler. Any command other than $confirm
// discards the author's staged action. Commands run one at a time: the whole
// handler, including its store writes, executes under the bot mutex so no
// transition interleaves inside another.
func (b *Bot) dispatch(session DiscordSession, message *discordgo.MessageCreate) {
	content := message.Content
	if !strings.HasPrefix(content, "$") {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if !startsWith(content, "$confirm") {
		delete(b.pending, message.Author.ID)
	}

	switch {
	case startsWith(content, "$help199"):
		b.helpPurchasesHandler(session, message)
	case startsWith(content, "$help"):
		b.helpMessageHandler(session, message)
	case startsWith(content, "$status"):
		b.statusHandler(session, message)
	case startsWith(content, "$newcontest"):
		b.newContestHandler(session, message)
	case startsWith(content, "$startcontest"):
		b.startContestHandler(session, message)
	case startsWith(content, "$lockmatches"):
		b.toggleMatchesLockHandler(session, message)
	case startsWith(content, "$addmatch"):
		b.addMatchHandler(session, message)
	case startsWith(content, "$off"):
		b.toggleOffHandler(session, message)
	case startsWith(content, "$result"):
		b.setResultHandler(session, message)
	case startsWith(content, "$lockresults"):
		b.lockResultsHandler(session, message)
	case startsWith(content, "$nextround"):
		b.nextRoundHandler(session, message)
	case startsWith(content, "$finalweek"):
		b.finalWeekHandler(session, message)
	case startsWith(content, "$prize"):
		b.prizeHandler(session, message)
	case startsWith(content, "$enddate"):
		b.endDateHandler(session, message)
	case startsWith(content, "$nextstart"):
		b.nextStartHandler(session, message)
	case startsWith(content, "$leaderboard"):
		b.leaderboardHandler(session, message)
	case startsWith(content, "$users"):
		b.rosterHandler(session, message)
	case startsWith(content, "$active"):
		b.activeUsersHandler(session, message)
	case startsWith(content, "$confirm"):
		b.confirmHandler(session, message)
	case startsWith(content, "$cancel"):
		b.cancelHandler(session, message)
	}
}

// startsWith reports whether the message begins with the given command word
func startsWith(inputString string, command string) bool {
	if !strings.HasPrefix(inputString, command) {
		return false
	}
	rest := inputString[len(command):]
	return rest == "" || rest[0] == ' ' || rest[0] == '\n'
}
