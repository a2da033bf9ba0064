package application

import (
	"context"
	"time"

	"translatorbot/internal/domain/entities"
	"translatorbot/internal/ports/output"
	"translatorbot/pkg/tz"
)

// healthChannelSource is the slice of the registry the monitor needs.
type healthChannelSource interface {
	HealthChannel() string
}

// HealthMonitor periodically enqueues a liveness notice to the configured
// health channel. When no channel is configured the tick is skipped silently.
type HealthMonitor struct {
	registry healthChannelSource
	queue    enqueuer
	t        output.T
	interval time.Duration
	ready    <-chan struct{}
}

func NewHealthMonitor(registry healthChannelSource, queue enqueuer, t output.T, interval time.Duration, ready <-chan struct{}) *HealthMonitor {
	return &HealthMonitor{
		registry: registry,
		queue:    queue,
		t:        t,
		interval: interval,
		ready:    ready,
	}
}

// Run ticks until ctx is cancelled. It does not start before the platform
// connection is ready.
func (m *HealthMonitor) Run(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-m.ready:
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.tick()
		}
	}
}

func (m *HealthMonitor) tick() {
	channelID := m.registry.HealthChannel()
	if channelID == "" {
		return
	}
	m.queue.Enqueue(entities.OutboundItem{
		ChannelID: channelID,
		Text: m.t.T("", "health_alive", map[string]any{
			"Time": time.Now().In(tz.Seoul).Format("2006-01-02 15:04:05"),
		}),
	})
}
