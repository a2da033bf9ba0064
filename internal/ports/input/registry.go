package input

import (
	"context"

	"translatorbot/internal/domain/entities"
)

type RegistryUseCase interface {
	Bind(ctx context.Context, channelID, language string) error
	Unbind(ctx context.Context, channelID string) (bool, error)
	List() []entities.ChannelBinding
	Language(channelID string) (string, bool)
	SetHealthChannel(ctx context.Context, channelID string) error
	HealthChannel() string
}
