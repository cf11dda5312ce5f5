package game

import "fmt"

// Game is the root aggregate of one 8-ball session: the balls on the table,
// the fixed table geometry, both players' scored balls and the round machine.
// It is not safe for concurrent use; a single owner drives it.
type Game struct {
	table    *Table
	balls    []*Ball
	white    *Ball
	scored   [2][]*Ball
	player   int
	winner   int
	round    RoundState
	cue      *Cue
	clock    float64
	observer Observer

	announcement announcement
}

var _ Engine = (*Game)(nil)

// NewGame racks the balls and moves straight into the first placement.
func NewGame() *Game {
	g := &Game{
		table: NewStandardTable(),
		cue:   NewCue(NoTarget),
	}
	g.Reset()
	return g
}

// SetObserver installs a hook called on every round transition.
func (g *Game) SetObserver(o Observer) {
	g.observer = o
}

// Reset starts a new game on the same table.
func (g *Game) Reset() {
	g.balls = StandardRack()
	g.white = g.balls[0]
	g.scored = [2][]*Ball{}
	g.player = Player1
	g.winner = 0
	g.announcement = announcement{}

	g.cue.TargetID = g.white.ID
	g.cue.Enabled = false

	g.round = RoundState{Kind: RoundInit}
	g.enter()
}

// Tick advances the game clock and, while balls are rolling, the physics.
func (g *Game) Tick(dt float64) {
	dt, ok := clampDelta(dt)
	if !ok {
		return
	}
	g.clock += dt
	g.expireAnnouncement()

	if g.round.Kind == RoundSimulation {
		g.simulate(dt)
	}
}

// PointerMoved updates the aim point and, while placing, drags the white ball.
func (g *Game) PointerMoved(x, y float64) {
	p := Vec2{X: x, Y: y}
	g.cue.AimPoint = p
	if g.round.Kind == RoundBallPlacement {
		g.white.Position = ClampPlacement(p, g.round.Constrained)
	}
}

// Trigger confirms a placement or strikes the white ball.
func (g *Game) Trigger() {
	switch g.round.Kind {
	case RoundBallPlacement:
		if g.whiteOverlaps() {
			g.Announce("The white ball cannot be placed on another ball!", ShortAnnouncement)
			return
		}
		g.dispatch(Event{Kind: EventPlaced})
	case RoundAiming:
		if g.cue.Strike(g.white) {
			g.dispatch(Event{Kind: EventCueStruck})
		}
	}
}

// Scroll adjusts the cue strength.
func (g *Game) Scroll(delta float64) {
	g.cue.AdjustStrength(delta)
}

func (g *Game) Round() RoundState  { return g.round }
func (g *Game) CurrentPlayer() int { return g.player }
func (g *Game) Winner() int        { return g.winner }
func (g *Game) Cue() Cue           { return *g.cue }
func (g *Game) Table() *Table      { return g.table }
func (g *Game) WhiteBall() *Ball   { return g.white }

// BallsOnTable returns the balls still in play.
func (g *Game) BallsOnTable() []*Ball {
	out := make([]*Ball, len(g.balls))
	copy(out, g.balls)
	return out
}

// Scored returns the balls credited to the given player.
func (g *Game) Scored(player int) []*Ball {
	if player != Player1 && player != Player2 {
		return nil
	}
	s := g.scored[player-1]
	out := make([]*Ball, len(s))
	copy(out, s)
	return out
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Mode:          ModeEightBall,
		Round:         g.round.Kind.String(),
		Balls:         viewBalls(g.balls),
		Walls:         copyWalls(g.table.Walls),
		Pockets:       copyPockets(g.table.Pockets),
		ScoredP1:      viewBalls(g.scored[0]),
		ScoredP2:      viewBalls(g.scored[1]),
		CurrentPlayer: g.player,
		Player1Group:  GroupOf(Player1),
		Player2Group:  GroupOf(Player2),
		Announcement:  g.announcement.text,
		Winner:        g.winner,
		Clock:         g.clock,
		Cue: CueView{
			Enabled:  g.cue.Enabled,
			Target:   g.white.Position,
			Strength: g.cue.Strength,
		},
	}
	s.Cue.Direction = g.cue.DirectionFromTarget(g.white)
	s.Cue.Offset = g.cue.StickOffset(g.white)
	return s
}

func (g *Game) opponent() int {
	if g.player == Player1 {
		return Player2
	}
	return Player1
}

func (g *Game) switchPlayer() {
	g.player = g.opponent()
}

// dispatch runs one transition: exit hook, state swap, observer, enter hook.
func (g *Game) dispatch(ev Event) {
	next, ok := nextRound(g.round, ev)
	if !ok {
		return
	}
	from := g.round.Kind
	g.exit()
	g.round = next
	if g.observer != nil {
		g.observer(from, next.Kind)
	}
	g.enter()
}

func (g *Game) enter() {
	switch g.round.Kind {
	case RoundInit:
		g.dispatch(Event{Kind: EventStart})
	case RoundBallPlacement:
		g.cue.Enabled = false
		g.white.Velocity = Vec2{}
		g.white.Position = ClampPlacement(g.white.Position, g.round.Constrained)
	case RoundAiming:
		g.cue.Enabled = true
	case RoundSimulation, RoundGameOver:
		g.cue.Enabled = false
	case RoundConclusion:
		g.conclude()
	}
}

func (g *Game) exit() {
	if g.round.Kind == RoundAiming {
		g.cue.Enabled = false
	}
}

func (g *Game) simulate(dt float64) {
	stepBalls(g.balls, g.table.Walls, dt)
	g.checkPockets()

	if !anyMoving(g.balls) {
		g.dispatch(Event{Kind: EventSettled})
	}
}

// checkPockets moves at most one ball per pocket per tick from the table
// into the round's captured list.
func (g *Game) checkPockets() {
	for _, p := range g.table.Pockets {
		for j, b := range g.balls {
			if !p.IsBallCaptured(b) {
				continue
			}
			b.Velocity = Vec2{}
			g.round.Captured = append(g.round.Captured, b)
			g.balls = append(g.balls[:j:j], g.balls[j+1:]...)
			break
		}
	}
}

func (g *Game) conclude() {
	v := Classify(g.round.Captured, g.player, len(g.balls))
	g.scored[0] = append(g.scored[0], v.Solids...)
	g.scored[1] = append(g.scored[1], v.Stripes...)

	switch v.Outcome {
	case OutcomeNoScore:
		g.switchPlayer()
		g.Announce(fmt.Sprintf("No ball scored! Player %d's turn!", g.player), ShortAnnouncement)
	case OutcomeWon:
		g.winner = g.player
		g.Announce(fmt.Sprintf("Player %d won!", g.winner), 0)
	case OutcomeBlackFoul:
		g.winner = g.opponent()
		g.Announce(fmt.Sprintf("Foul! Player %d won!", g.winner), 0)
	case OutcomeWhiteScored:
		g.balls = append(g.balls, g.white)
		g.switchPlayer()
		g.Announce(fmt.Sprintf("Foul! White ball scored! Player %d's turn!", g.player), LongAnnouncement)
	case OutcomeWrongVariant:
		g.switchPlayer()
		g.Announce(fmt.Sprintf("Foul! Incorrect ball scored! Player %d's turn!", g.player), LongAnnouncement)
	default:
		g.Announce("Scored!", ShortAnnouncement)
	}

	g.dispatch(Event{Kind: EventConcluded, Outcome: v.Outcome})
}

func (g *Game) whiteOverlaps() bool {
	for _, b := range g.balls {
		if b == g.white {
			continue
		}
		if b.Position.DistanceTo(g.white.Position) < b.Radius+g.white.Radius {
			return true
		}
	}
	return false
}
