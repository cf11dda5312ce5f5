package game

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScenario is returned for a scenario name that is not registered.
var ErrUnknownScenario = errors.New("unknown scenario")

// ScenarioBallRadius is the size of the large demo balls.
const ScenarioBallRadius = 50.0

// pushDuration is how long a scenario's initial push force is applied, in
// simulated seconds.
const pushDuration = 1.0

// Sandbox is a rules-free table: balls and walls only, no pockets, no
// players. It is used to demonstrate the collision model in isolation.
type Sandbox struct {
	name    string
	balls   []*Ball
	walls   []Wall
	clock   float64
	release float64 // clock time at which push forces are reset
}

var _ Engine = (*Sandbox)(nil)

// NewSandbox creates an empty sandbox.
func NewSandbox(name string, balls []*Ball, walls []Wall) *Sandbox {
	return &Sandbox{name: name, balls: balls, walls: walls, release: pushDuration}
}

func (s *Sandbox) Name() string    { return s.name }
func (s *Sandbox) Balls() []*Ball  { return s.balls }
func (s *Sandbox) Walls() []Wall   { return s.walls }
func (s *Sandbox) Clock() float64  { return s.clock }
func (s *Sandbox) IsSettled() bool { return !anyMoving(s.balls) }

// Tick advances the sandbox physics.
func (s *Sandbox) Tick(dt float64) {
	dt, ok := clampDelta(dt)
	if !ok {
		return
	}
	s.clock += dt
	if s.release > 0 && s.clock >= s.release {
		for _, b := range s.balls {
			b.ResetPushForce()
		}
		s.release = 0
	}
	stepBalls(s.balls, s.walls, dt)
}

// The sandbox has no cue; pointer input is ignored.
func (s *Sandbox) PointerMoved(x, y float64) {}
func (s *Sandbox) Trigger()                  {}
func (s *Sandbox) Scroll(delta float64)      {}

func (s *Sandbox) Snapshot() Snapshot {
	return Snapshot{
		Mode:    ModeSandbox,
		Round:   s.name,
		Balls:   viewBalls(s.balls),
		Walls:   copyWalls(s.walls),
		Pockets: []Pocket{},
		Clock:   s.clock,
	}
}

type scenarioBall struct {
	pos, push Vec2
	radius    float64
}

type scenario struct {
	balls []scenarioBall
	walls [][2]Vec2
}

func big(x, y, px, py float64) scenarioBall {
	return scenarioBall{pos: Vec2{x, y}, push: Vec2{px, py}, radius: ScenarioBallRadius}
}

var scenarios = map[string]scenario{
	"head-on": {balls: []scenarioBall{
		big(300, 400, 300, 0),
		big(700, 400, 0, 0),
	}},
	"glancing": {balls: []scenarioBall{
		big(300, 400, 400, -60),
		big(700, 400, 0, 0),
	}},
	"chase": {balls: []scenarioBall{
		big(300, 400, 300, 0),
		big(700, 400, 60, 0),
	}},
	"opposing": {balls: []scenarioBall{
		big(300, 400, 300, 0),
		big(800, 400, -300, 0),
	}},
	"diagonal": {balls: []scenarioBall{
		big(300, 200, 400, 400),
		big(800, 600, -200, -200),
	}},
	"crossing": {balls: []scenarioBall{
		big(300, 200, 400, 400),
		big(700, 230, -300, 500),
	}},
	"cradle": {balls: []scenarioBall{
		{pos: Vec2{100, 400}, push: Vec2{400, 0}, radius: 48},
		{pos: Vec2{400, 400}, radius: 48},
		{pos: Vec2{500, 400}, radius: 48},
		{pos: Vec2{600, 400}, radius: 48},
		{pos: Vec2{700, 400}, radius: 48},
		{pos: Vec2{800, 400}, radius: 48},
	}},
	"walls": {
		balls: []scenarioBall{big(300, 250, 800, 0)},
		walls: [][2]Vec2{
			{{1000, 150}, {1100, 250}},
			{{1100, 450}, {1000, 550}},
			{{400, 400}, {400, 500}},
			{{200, 200}, {100, 300}},
			{{100, 600}, {250, 600}},
		},
	},
}

// ScenarioNames lists the registered demo scenarios in stable order.
func ScenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewScenario builds a fresh sandbox for the named scenario.
func NewScenario(name string) (*Sandbox, error) {
	sc, ok := scenarios[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}

	balls := make([]*Ball, 0, len(sc.balls))
	for i, sb := range sc.balls {
		b, err := NewBall(i, BallVariant(i), sb.pos, sb.radius)
		if err != nil {
			return nil, err
		}
		b.ApplyPushForce(sb.push)
		balls = append(balls, b)
	}

	walls := make([]Wall, 0, len(sc.walls))
	for _, w := range sc.walls {
		walls = append(walls, NewWall(w[0], w[1]))
	}
	return NewSandbox(name, balls, walls), nil
}
