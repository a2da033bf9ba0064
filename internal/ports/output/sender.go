package output

import "translatorbot/internal/domain/entities"

// ChannelSender performs the actual platform send for one outbound item.
type ChannelSender interface {
	SendText(channelID, text string) error
	SendFile(channelID string, file entities.OutboundFile) error
}
