package output

import (
	"context"

	"translatorbot/internal/domain/entities"
)

type BindingRepository interface {
	Upsert(ctx context.Context, binding entities.ChannelBinding) error
	Delete(ctx context.Context, channelID string) error
	List(ctx context.Context) ([]entities.ChannelBinding, error)
}
