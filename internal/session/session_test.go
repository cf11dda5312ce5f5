package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/playpool/eightball/internal/game"
)

const frame = 1.0 / 60

func TestNewSessionStartsInPlacement(t *testing.T) {
	s := New("s_test", 60)
	snap := s.Snapshot()
	if snap.Mode != game.ModeEightBall || snap.Round != "BALL_PLACEMENT" {
		t.Errorf("mode=%s round=%s", snap.Mode, snap.Round)
	}
	if len(snap.Balls) != 16 {
		t.Errorf("balls = %d", len(snap.Balls))
	}
}

func TestInputsAppliedOnStep(t *testing.T) {
	s := New("s_test", 60)

	for _, in := range []Input{
		{Kind: InputTrigger},
		{Kind: InputPointer, X: 1275, Y: 520},
		{Kind: InputScroll, Delta: -50},
	} {
		if err := s.Submit(in); err != nil {
			t.Fatalf("Submit(%s): %v", in.Kind, err)
		}
	}

	if got := s.Snapshot().Round; got != "BALL_PLACEMENT" {
		t.Fatalf("inputs applied before the tick: %s", got)
	}
	s.step(frame)

	snap := s.Snapshot()
	if snap.Round != "AIMING" {
		t.Errorf("round = %s, want AIMING", snap.Round)
	}
	if snap.Cue.Strength != 1 {
		t.Errorf("strength = %v, want 1", snap.Cue.Strength)
	}

	s.Submit(Input{Kind: InputTrigger})
	s.step(frame)
	if got := s.Snapshot().Round; got != "SIMULATION" {
		t.Errorf("round = %s, want SIMULATION", got)
	}

	s.Submit(Input{Kind: InputReset})
	s.step(frame)
	if got := s.Snapshot().Round; got != "BALL_PLACEMENT" {
		t.Errorf("round after reset = %s", got)
	}
}

func TestLoadScenario(t *testing.T) {
	s := New("s_test", 60)

	err := s.LoadScenario("missing")
	if !errors.Is(err, game.ErrUnknownScenario) {
		t.Fatalf("err = %v, want ErrUnknownScenario", err)
	}

	if err := s.LoadScenario("cradle"); err != nil {
		t.Fatal(err)
	}
	s.step(frame)
	snap := s.Snapshot()
	if snap.Mode != game.ModeSandbox || snap.Round != "cradle" || len(snap.Balls) != 6 {
		t.Errorf("mode=%s round=%s balls=%d", snap.Mode, snap.Round, len(snap.Balls))
	}
}

func TestInputQueueFull(t *testing.T) {
	s := New("s_test", 60)
	for i := 0; i < inputQueueSize; i++ {
		if err := s.Submit(Input{Kind: InputScroll, Delta: 1}); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	if err := s.Submit(Input{Kind: InputScroll}); !errors.Is(err, ErrInputQueueFull) {
		t.Errorf("err = %v, want ErrInputQueueFull", err)
	}
}

func TestSubscribeKeepsLatest(t *testing.T) {
	s := New("s_test", 60)
	sub, err := s.Subscribe()
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 5; i++ {
		s.step(frame)
	}
	snap := <-sub
	if snap.Clock < 5*frame-1e-9 {
		t.Errorf("got stale snapshot at clock %v", snap.Clock)
	}

	s.Unsubscribe(sub)
	if _, ok := <-sub; ok {
		t.Errorf("subscription still open after Unsubscribe")
	}
	s.Unsubscribe(sub) // second call is a no-op
}

func TestStopClosesSession(t *testing.T) {
	s := New("s_test", 60)
	sub, _ := s.Subscribe()

	s.Stop()
	s.Stop()

	if _, ok := <-sub; ok {
		t.Errorf("subscription still open after Stop")
	}
	if err := s.Submit(Input{Kind: InputTrigger}); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("Submit err = %v, want ErrSessionClosed", err)
	}
	if _, err := s.Subscribe(); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("Subscribe err = %v, want ErrSessionClosed", err)
	}
}

func TestRunTicksUntilCancelled(t *testing.T) {
	s := New("s_test", 200)
	sub, _ := s.Subscribe()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case snap := <-sub:
		if snap.Clock <= 0 {
			t.Errorf("clock did not advance: %v", snap.Clock)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot published")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if !s.Closed() {
		t.Errorf("session not closed after its context ended")
	}
}
