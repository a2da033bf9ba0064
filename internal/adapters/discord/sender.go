package discord

import (
	"bytes"

	"github.com/bwmarrin/discordgo"

	"translatorbot/internal/domain/entities"
	"translatorbot/internal/ports/output"
)

var _ output.ChannelSender = (*Sender)(nil)

// Sender performs outbound Discord sends for the dispatch queue.
type Sender struct {
	session *discordgo.Session
}

func NewSender(session *discordgo.Session) *Sender {
	return &Sender{session: session}
}

func (s *Sender) SendText(channelID, text string) error {
	_, err := s.session.ChannelMessageSend(channelID, text)
	return err
}

func (s *Sender) SendFile(channelID string, file entities.OutboundFile) error {
	_, err := s.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Files: []*discordgo.File{{
			Name:        file.Name,
			ContentType: file.ContentType,
			Reader:      bytes.NewReader(file.Data),
		}},
	})
	return err
}
