package input

import (
	"context"

	"translatorbot/internal/domain/entities"
)

type RelayUseCase interface {
	Relay(ctx context.Context, msg entities.Message)
}
