package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/playpool/eightball/internal/config"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many active sessions")
)

// Manager tracks every running session.
type Manager struct {
	sessions map[string]*Session
	ctx      context.Context
	config   *config.Config
	mu       sync.RWMutex
}

// NewManager creates a manager whose sessions run until ctx is cancelled.
func NewManager(ctx context.Context, cfg *config.Config) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ctx:      ctx,
		config:   cfg,
	}
}

// generateToken generates a random hex token
func generateToken(length int) string {
	bytes := make([]byte, length)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

func generateSessionID() string {
	return "s_" + generateToken(8)
}

// Create starts a new session with a racked game.
func (m *Manager) Create() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config.MaxSessions > 0 && len(m.sessions) >= m.config.MaxSessions {
		return nil, ErrTooManySessions
	}

	id := generateSessionID()
	for _, exists := m.sessions[id]; exists; _, exists = m.sessions[id] {
		id = generateSessionID()
	}

	s := New(id, m.config.TickRate)
	m.sessions[id] = s
	go s.Run(m.ctx)

	log.Printf("[SESSION] Created %s (%d active)", id, len(m.sessions))
	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Remove stops the session and forgets it.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	s.Stop()
	log.Printf("[SESSION] Removed %s", id)
	return nil
}

// List returns the active sessions, oldest first.
func (m *Manager) List() []*Session {
	m.mu.RLock()
	out := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// ReapIdle stops and removes sessions with no input for longer than maxIdle,
// as well as sessions that already stopped on their own. It returns the
// removed IDs.
func (m *Manager) ReapIdle(now time.Time, maxIdle time.Duration) []string {
	m.mu.Lock()
	var reaped []*Session
	for id, s := range m.sessions {
		if s.Closed() || now.Sub(s.LastActivity()) > maxIdle {
			reaped = append(reaped, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	ids := make([]string, 0, len(reaped))
	for _, s := range reaped {
		s.Stop()
		ids = append(ids, s.ID)
	}
	sort.Strings(ids)
	return ids
}

// StopAll stops every session, used on shutdown.
func (m *Manager) StopAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Stop()
	}
	log.Printf("[SESSION] Stopped %d sessions", len(sessions))
}
