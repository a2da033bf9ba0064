package application

import (
	"context"
	"log"
	"time"
)

// RedeployTrigger fires the external redeploy hook.
type RedeployTrigger interface {
	Trigger(ctx context.Context) error
}

// RestartSupervisor periodically fires the redeploy trigger so the hosting
// platform cycles the process. It runs independently of message traffic;
// failures are logged and the next cycle tries again.
type RestartSupervisor struct {
	trigger  RedeployTrigger
	interval time.Duration
}

func NewRestartSupervisor(trigger RedeployTrigger, interval time.Duration) *RestartSupervisor {
	return &RestartSupervisor{trigger: trigger, interval: interval}
}

func (s *RestartSupervisor) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.trigger.Trigger(ctx); err != nil {
				log.Printf("⚠️ Redeploy trigger failed: %v", err)
			}
		}
	}
}
