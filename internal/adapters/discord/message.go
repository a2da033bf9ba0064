package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"translatorbot/internal/domain/entities"
)

// handleMessage converts an inbound Discord message to the platform-agnostic
// form and hands it to the relay. discordgo dispatches handlers on their own
// goroutines, so the translation calls made downstream do not stall the
// gateway connection.
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}

	msg := entities.Message{
		ChannelID:  m.ChannelID,
		AuthorBot:  m.Author.Bot,
		AuthorName: resolveDisplayName(m),
		Content:    m.Content,
	}
	for _, att := range m.Attachments {
		if att == nil {
			continue
		}
		msg.Attachments = append(msg.Attachments, entities.Attachment{
			URL:         att.URL,
			Filename:    att.Filename,
			ContentType: att.ContentType,
		})
	}

	b.relay.Relay(context.Background(), msg)
}
