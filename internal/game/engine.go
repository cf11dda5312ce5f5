package game

// MaxTickDelta caps a single step. A long stall (e.g. a backgrounded tab)
// would otherwise let balls tunnel straight through cushions.
const MaxTickDelta = 0.1

// Engine is what an external loop drives: one Tick per frame plus the three
// pointer-style inputs, and a read-only Snapshot for drawing.
type Engine interface {
	Tick(dt float64)
	PointerMoved(x, y float64)
	Trigger()
	Scroll(delta float64)
	Snapshot() Snapshot
}

// Observer is notified of every round transition.
type Observer func(from, to RoundKind)

func clampDelta(dt float64) (float64, bool) {
	if !(dt > 0) {
		return 0, false
	}
	if dt > MaxTickDelta {
		dt = MaxTickDelta
	}
	return dt, true
}

// stepBalls integrates every ball and then resolves collisions. Per ball the
// walls are checked before the remaining balls.
func stepBalls(balls []*Ball, walls []Wall, dt float64) {
	for _, b := range balls {
		b.Update(dt)
	}

	for i := 0; i < len(balls); i++ {
		for _, w := range walls {
			balls[i].Collide(w)
		}
		for k := i + 1; k < len(balls); k++ {
			balls[i].Collide(balls[k])
		}
	}
}

func anyMoving(balls []*Ball) bool {
	for _, b := range balls {
		if b.IsMoving() {
			return true
		}
	}
	return false
}
