package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/playpool/eightball/internal/config"
)

func setupManager(t *testing.T, maxSessions int) *Manager {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	m := NewManager(ctx, &config.Config{TickRate: 60, MaxSessions: maxSessions})
	t.Cleanup(func() {
		m.StopAll()
		cancel()
	})
	return m
}

func TestManagerCreateGetRemove(t *testing.T) {
	m := setupManager(t, 10)

	s, err := m.Create()
	if err != nil {
		t.Fatal(err)
	}
	got, err := m.Get(s.ID)
	if err != nil || got != s {
		t.Fatalf("Get(%s) = %v, %v", s.ID, got, err)
	}

	if err := m.Remove(s.ID); err != nil {
		t.Fatal(err)
	}
	if !s.Closed() {
		t.Errorf("removed session still running")
	}
	if _, err := m.Get(s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get after remove err = %v", err)
	}
	if err := m.Remove(s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second Remove err = %v", err)
	}
}

func TestManagerLimit(t *testing.T) {
	m := setupManager(t, 2)
	for i := 0; i < 2; i++ {
		if _, err := m.Create(); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := m.Create(); !errors.Is(err, ErrTooManySessions) {
		t.Errorf("err = %v, want ErrTooManySessions", err)
	}
	if len(m.List()) != 2 {
		t.Errorf("List = %d sessions", len(m.List()))
	}
}

func TestManagerReapIdle(t *testing.T) {
	m := setupManager(t, 10)
	idle, _ := m.Create()
	busy, _ := m.Create()
	stopped, _ := m.Create()
	stopped.Stop()

	busy.Submit(Input{Kind: InputScroll, Delta: 1})
	idle.mu.Lock()
	idle.lastActivity = time.Now().Add(-time.Hour)
	idle.mu.Unlock()

	ids := m.ReapIdle(time.Now(), 30*time.Minute)
	if len(ids) != 2 {
		t.Fatalf("reaped %v, want the idle and the stopped session", ids)
	}
	if _, err := m.Get(busy.ID); err != nil {
		t.Errorf("busy session reaped")
	}
	if !idle.Closed() {
		t.Errorf("idle session not stopped")
	}
}

func TestIdleWorkerReaps(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m := NewManager(ctx, &config.Config{TickRate: 60})
	defer m.StopAll()

	s, _ := m.Create()
	s.Stop()

	StartIdleWorker(ctx, m, &config.Config{IdleWorkerPollInterval: 1, SessionIdleMinutes: 30})

	deadline := time.Now().Add(3 * time.Second)
	for m.Count() > 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}
	if m.Count() != 0 {
		t.Errorf("stopped session was never reaped")
	}
}
