/* session.go
 * Contains the DiscordSession interface the handlers talk to, and the mock
 * used in tests. Handlers never touch *discordgo.Session directly so that
 * command behaviour is testable without a gateway connection.
 */

package bot

import "github.com/bwmarrin/discordgo"

// DiscordSession is the slice of the Discord session the handlers need
type DiscordSession interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ DiscordSession = (*discordgo.Session)(nil)

// RecordingSession captures sent messages for assertions in tests
type RecordingSession struct {
	Sent []string
	// Channels records the channel each message went to, index-aligned
	// with Sent
	Channels []string
	// Err, when set, is returned from every send
	Err error
}

func (r *RecordingSession) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.Sent = append(r.Sent, content)
	r.Channels = append(r.Channels, channelID)
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

// Last returns the most recently sent message, or empty if none
func (r *RecordingSession) Last() string {
	if len(r.Sent) == 0 {
		return ""
	}
	return r.Sent[len(r.Sent)-1]
}
