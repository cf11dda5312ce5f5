package game

// RoundKind identifies which phase of a turn the game is in.
type RoundKind int

const (
	RoundInit RoundKind = iota
	RoundBallPlacement
	RoundAiming
	RoundSimulation
	RoundConclusion
	RoundGameOver
)

func (k RoundKind) String() string {
	switch k {
	case RoundInit:
		return "INIT"
	case RoundBallPlacement:
		return "BALL_PLACEMENT"
	case RoundAiming:
		return "AIMING"
	case RoundSimulation:
		return "SIMULATION"
	case RoundConclusion:
		return "CONCLUSION"
	case RoundGameOver:
		return "GAME_OVER"
	}
	return "UNKNOWN"
}

// RoundState is the active round phase plus the data that phase carries.
type RoundState struct {
	Kind RoundKind
	// Constrained limits white ball placement to the kitchen (BallPlacement only).
	Constrained bool
	// Captured lists balls pocketed during this shot (Simulation and Conclusion).
	Captured []*Ball
}

// EventKind is something that can move the round machine forward.
type EventKind int

const (
	EventStart EventKind = iota
	EventPlaced
	EventCueStruck
	EventSettled
	EventConcluded
)

// Event is consumed by nextRound. Outcome is only meaningful for EventConcluded.
type Event struct {
	Kind    EventKind
	Outcome Outcome
}

// nextRound is the transition table. It reports false when the event does
// not apply to the current state, in which case the state is unchanged.
func nextRound(s RoundState, ev Event) (RoundState, bool) {
	switch {
	case s.Kind == RoundInit && ev.Kind == EventStart:
		return RoundState{Kind: RoundBallPlacement, Constrained: true}, true

	case s.Kind == RoundBallPlacement && ev.Kind == EventPlaced:
		return RoundState{Kind: RoundAiming}, true

	case s.Kind == RoundAiming && ev.Kind == EventCueStruck:
		return RoundState{Kind: RoundSimulation}, true

	case s.Kind == RoundSimulation && ev.Kind == EventSettled:
		return RoundState{Kind: RoundConclusion, Captured: s.Captured}, true

	case s.Kind == RoundConclusion && ev.Kind == EventConcluded:
		switch ev.Outcome {
		case OutcomeWon, OutcomeBlackFoul:
			return RoundState{Kind: RoundGameOver}, true
		case OutcomeWhiteScored:
			return RoundState{Kind: RoundBallPlacement, Constrained: false}, true
		default:
			return RoundState{Kind: RoundAiming}, true
		}
	}
	return s, false
}

// Outcome is the result of a shot once every ball has stopped.
type Outcome int

const (
	OutcomeNoScore Outcome = iota
	OutcomeScored
	OutcomeWrongVariant
	OutcomeWhiteScored
	OutcomeWon
	OutcomeBlackFoul
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoScore:
		return "no_score"
	case OutcomeScored:
		return "scored"
	case OutcomeWrongVariant:
		return "wrong_variant"
	case OutcomeWhiteScored:
		return "white_scored"
	case OutcomeWon:
		return "won"
	case OutcomeBlackFoul:
		return "black_foul"
	}
	return "unknown"
}

// IsFoul reports whether the outcome penalises the shooter.
func (o Outcome) IsFoul() bool {
	return o == OutcomeWrongVariant || o == OutcomeWhiteScored || o == OutcomeBlackFoul
}

// Verdict is the classification of the balls captured during one shot.
type Verdict struct {
	Outcome Outcome
	Solids  []*Ball // credited to player 1
	Stripes []*Ball // credited to player 2
}

// Classify decides the outcome of a shot. ballsOnTable is the number of
// balls still in play after the captured ones were removed.
//
// Priority when several things happen at once: black ball, then white
// ball, then wrong group, then a plain score.
func Classify(captured []*Ball, player, ballsOnTable int) Verdict {
	var v Verdict
	if len(captured) == 0 {
		v.Outcome = OutcomeNoScore
		return v
	}

	var scoredWhite, scoredBlack, wrongVariant, won bool
	for i, b := range captured {
		switch {
		case b.Variant.IsStriped():
			v.Stripes = append(v.Stripes, b)
		case b.Variant.IsSolid() && !b.Variant.IsBlack():
			v.Solids = append(v.Solids, b)
		}

		switch {
		case b.Variant.IsWhite():
			scoredWhite = true
		case b.Variant.IsBlack():
			scoredBlack = true
			if i == len(captured)-1 && ballsOnTable <= 1 {
				won = true
			}
		case (player == Player1 && b.Variant.IsStriped()) ||
			(player == Player2 && b.Variant.IsSolid()):
			wrongVariant = true
		}
	}

	switch {
	case scoredBlack && won:
		v.Outcome = OutcomeWon
	case scoredBlack:
		v.Outcome = OutcomeBlackFoul
	case scoredWhite:
		v.Outcome = OutcomeWhiteScored
	case wrongVariant:
		v.Outcome = OutcomeWrongVariant
	default:
		v.Outcome = OutcomeScored
	}
	return v
}
