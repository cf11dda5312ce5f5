package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/playpool/eightball/internal/game"
)

var (
	ErrSessionClosed  = errors.New("session closed")
	ErrInputQueueFull = errors.New("input queue full")
)

const inputQueueSize = 64

// InputKind names one of the player inputs a session accepts.
type InputKind string

const (
	InputPointer  InputKind = "pointer"
	InputTrigger  InputKind = "trigger"
	InputScroll   InputKind = "scroll"
	InputReset    InputKind = "reset"
	InputScenario InputKind = "scenario"
)

// Input is one queued player action. Only the fields for its Kind are read.
type Input struct {
	Kind     InputKind
	X, Y     float64
	Delta    float64
	Scenario string
}

// Session owns one engine. The engine is only touched by the goroutine
// running Run (or by step in tests); everything else goes through the
// input queue or reads the last published snapshot.
type Session struct {
	ID        string
	CreatedAt time.Time

	tickRate float64
	engine   game.Engine
	inputs   chan Input
	stop     chan struct{}
	stopOnce sync.Once

	mu           sync.RWMutex
	closed       bool
	last         game.Snapshot
	lastActivity time.Time
	subscribers  map[chan game.Snapshot]struct{}
}

// New creates a session with a freshly racked 8-ball game. tickRate is in Hz.
func New(id string, tickRate int) *Session {
	if tickRate <= 0 {
		tickRate = 60
	}
	now := time.Now()
	s := &Session{
		ID:           id,
		CreatedAt:    now,
		tickRate:     float64(tickRate),
		inputs:       make(chan Input, inputQueueSize),
		stop:         make(chan struct{}),
		lastActivity: now,
		subscribers:  make(map[chan game.Snapshot]struct{}),
	}
	s.engine = s.newGame()
	s.last = s.engine.Snapshot()
	return s
}

func (s *Session) newGame() *game.Game {
	g := game.NewGame()
	g.SetObserver(func(from, to game.RoundKind) {
		log.Printf("[ROUND] session=%s %s -> %s", s.ID, from, to)
	})
	return g
}

// Run ticks the engine until ctx is cancelled or the session is stopped.
// dt comes from the wall clock between ticks.
func (s *Session) Run(ctx context.Context) {
	interval := time.Duration(float64(time.Second) / s.tickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("[SESSION] %s running at %.0f Hz", s.ID, s.tickRate)
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Printf("[SESSION] %s context done: %v", s.ID, ctx.Err())
			s.Stop()
			return
		case <-s.stop:
			log.Printf("[SESSION] %s stopped", s.ID)
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			if dt <= 0 {
				dt = 1 / s.tickRate
			}
			last = now
			s.step(dt)
		}
	}
}

// step applies every queued input, advances the engine once and publishes
// the resulting snapshot.
func (s *Session) step(dt float64) {
drain:
	for {
		select {
		case in := <-s.inputs:
			s.apply(in)
		default:
			break drain
		}
	}

	s.engine.Tick(dt)
	s.publish(s.engine.Snapshot())
}

func (s *Session) apply(in Input) {
	switch in.Kind {
	case InputPointer:
		s.engine.PointerMoved(in.X, in.Y)
	case InputTrigger:
		s.engine.Trigger()
	case InputScroll:
		s.engine.Scroll(in.Delta)
	case InputReset:
		s.engine = s.newGame()
		log.Printf("[SESSION] %s reset to a new game", s.ID)
	case InputScenario:
		sb, err := game.NewScenario(in.Scenario)
		if err != nil {
			log.Printf("[SESSION] %s: %v", s.ID, err)
			return
		}
		s.engine = sb
		log.Printf("[SESSION] %s loaded scenario %q", s.ID, in.Scenario)
	default:
		log.Printf("[SESSION] %s ignoring unknown input %q", s.ID, in.Kind)
	}
}

func (s *Session) publish(snap game.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = snap
	if s.closed {
		return
	}
	for ch := range s.subscribers {
		// keep only the newest snapshot for slow readers
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

// Submit queues an input for the next tick.
func (s *Session) Submit(in Input) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	s.lastActivity = time.Now()
	s.mu.Unlock()

	select {
	case s.inputs <- in:
		return nil
	default:
		log.Printf("[SESSION] %s input queue full, dropping %s", s.ID, in.Kind)
		return ErrInputQueueFull
	}
}

// LoadScenario switches the session to the named physics scenario on the
// next tick.
func (s *Session) LoadScenario(name string) error {
	if _, err := game.NewScenario(name); err != nil {
		return err
	}
	return s.Submit(Input{Kind: InputScenario, Scenario: name})
}

// Subscribe returns a channel receiving the snapshot published after each
// tick. The channel is closed by Unsubscribe or when the session stops.
func (s *Session) Subscribe() (<-chan game.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrSessionClosed
	}
	ch := make(chan game.Snapshot, 1)
	s.subscribers[ch] = struct{}{}
	return ch, nil
}

func (s *Session) Unsubscribe(sub <-chan game.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subscribers {
		if ch == sub {
			delete(s.subscribers, ch)
			close(ch)
			return
		}
	}
}

// Snapshot returns the most recently published state.
func (s *Session) Snapshot() game.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

func (s *Session) LastActivity() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActivity
}

func (s *Session) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// Stop ends Run and closes every subscription. It is safe to call more
// than once.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		for ch := range s.subscribers {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
		close(s.stop)
	})
}
