package session

import (
	"context"
	"log"
	"time"

	"github.com/playpool/eightball/internal/config"
)

// StartIdleWorker starts a background worker that removes sessions nobody
// has sent input to for SessionIdleMinutes.
func StartIdleWorker(ctx context.Context, m *Manager, cfg *config.Config) {
	if m == nil || cfg == nil {
		log.Println("[IDLE] Manager or config missing; idle worker not started")
		return
	}

	poll := time.Duration(cfg.IdleWorkerPollInterval) * time.Second
	if poll <= 0 {
		poll = 30 * time.Second
	}
	maxIdle := time.Duration(cfg.SessionIdleMinutes) * time.Minute

	log.Println("[IDLE] Idle worker started")
	go func() {
		ticker := time.NewTicker(poll)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("[IDLE] Idle worker stopping")
				return
			case now := <-ticker.C:
				if ids := m.ReapIdle(now, maxIdle); len(ids) > 0 {
					log.Printf("[IDLE] Reaped %d idle sessions: %v (%d active)", len(ids), ids, m.Count())
				}
			}
		}
	}()
}
