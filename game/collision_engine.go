package game

import (
	"fmt"

	"github.com/lguibr/plethora/utils"
)

type ReactionKind int

const (
	ReactionDeflect ReactionKind = iota
	ReactionScore
)

func (k ReactionKind) String() string {
	if k == ReactionDeflect {
		return "deflect"
	}
	return "score"
}

// Reaction tells the engine whether a pair keeps being tested.
type Reaction int

const (
	ContinueListening Reaction = iota
	StopListening
)

// Pair is a ball and the paddle or goal line it can hit.
type Pair struct {
	ID     int
	Ball   EntityID
	Target EntityID
	Kind   ReactionKind

	listening bool
}

func (p Pair) Listening() bool { return p.listening }

// ContactEvent is one begun contact of a pair.
type ContactEvent struct {
	Pair   int
	Ball   *Ball
	Paddle *Paddle   // set for deflect pairs
	Goal   *GoalLine // set for score pairs
}

// ContactHandler receives the events of one Step.
type ContactHandler interface {
	// HandleDeflect runs after the bounce was applied to the ball.
	HandleDeflect(ev ContactEvent)
	HandleGoal(ev ContactEvent) Reaction
}

// CollisionEngine tests the registered pairs once per tick and dispatches
// contact transitions. Pairs can only be added until Seal.
type CollisionEngine struct {
	registry *Registry
	arena    *Arena
	status   StatusView
	tracker  *CollisionTracker
	pairs    []Pair
	sealed   bool

	angleFactor float64
	epsilon     float64
}

func NewCollisionEngine(registry *Registry, arena *Arena, status StatusView, cfg utils.Config) *CollisionEngine {
	return &CollisionEngine{
		registry:    registry,
		arena:       arena,
		status:      status,
		tracker:     NewCollisionTracker(),
		angleFactor: cfg.PaddleAngleFactor,
		epsilon:     cfg.ContactEpsilon,
	}
}

// Register adds a pair and returns its ID. Both handles must exist, ball must
// be a *Ball and target a *Paddle for deflect pairs or a *GoalLine for score pairs.
func (e *CollisionEngine) Register(ball, target EntityID, kind ReactionKind) (int, error) {
	if e.Sealed() {
		return 0, ErrPairsSealed
	}
	b, ok := e.registry.Get(ball)
	if !ok {
		return 0, fmt.Errorf("%w: unknown ball handle %d", ErrPairMisconfigured, ball)
	}
	if _, ok := b.(*Ball); !ok {
		return 0, fmt.Errorf("%w: handle %d is a %T, not a ball", ErrPairMisconfigured, ball, b)
	}
	t, ok := e.registry.Get(target)
	if !ok {
		return 0, fmt.Errorf("%w: unknown target handle %d", ErrPairMisconfigured, target)
	}
	switch kind {
	case ReactionDeflect:
		if _, ok := t.(*Paddle); !ok {
			return 0, fmt.Errorf("%w: deflect target %d is a %T, not a paddle", ErrPairMisconfigured, target, t)
		}
	case ReactionScore:
		if _, ok := t.(*GoalLine); !ok {
			return 0, fmt.Errorf("%w: score target %d is a %T, not a goal line", ErrPairMisconfigured, target, t)
		}
	default:
		return 0, fmt.Errorf("%w: unknown reaction kind %d", ErrPairMisconfigured, kind)
	}

	id := len(e.pairs)
	e.pairs = append(e.pairs, Pair{ID: id, Ball: ball, Target: target, Kind: kind, listening: true})
	return id, nil
}

// Seal freezes the pair list.
func (e *CollisionEngine) Seal() { e.sealed = true }

func (e *CollisionEngine) Sealed() bool { return e.sealed }

// Pairs returns a copy of the registered pairs.
func (e *CollisionEngine) Pairs() []Pair {
	out := make([]Pair, len(e.pairs))
	copy(out, e.pairs)
	return out
}

// ClearContacts forgets every overlap, so contacts still present when play
// resumes fire again.
func (e *CollisionEngine) ClearContacts() { e.tracker.ClearAll() }

// Step tests every listening pair. Deflections are applied and reported
// first, then all goal crossings are collected and delivered to h in
// registration order. Nothing is tested unless the match is playing.
func (e *CollisionEngine) Step(h ContactHandler) {
	if !e.status.Playing() {
		return
	}

	for i := range e.pairs {
		p := &e.pairs[i]
		if !p.Listening() || p.Kind != ReactionDeflect {
			continue
		}
		ball, paddle := e.ball(p.Ball), e.paddle(p.Target)
		if !e.tracker.Observe(CollisionKey{Ball: p.Ball, Target: p.Target}, TouchesPaddle(ball, paddle)) {
			continue
		}
		Deflect(e.arena, ball, paddle, e.angleFactor, e.epsilon)
		h.HandleDeflect(ContactEvent{Pair: p.ID, Ball: ball, Paddle: paddle})
	}

	var goals []ContactEvent
	for i := range e.pairs {
		p := &e.pairs[i]
		if !p.Listening() || p.Kind != ReactionScore {
			continue
		}
		ball, goal := e.ball(p.Ball), e.goal(p.Target)
		if e.tracker.Observe(CollisionKey{Ball: p.Ball, Target: p.Target}, CrossesGoal(e.arena, ball, goal)) {
			goals = append(goals, ContactEvent{Pair: p.ID, Ball: ball, Goal: goal})
		}
	}

	for _, ev := range goals {
		if h.HandleGoal(ev) == StopListening {
			e.pairs[ev.Pair].listening = false
		}
	}

	if !e.status.Playing() {
		e.ClearContacts()
	}
}

// Register validated the kinds, so the assertions below cannot fail.
func (e *CollisionEngine) ball(id EntityID) *Ball {
	ent, _ := e.registry.Get(id)
	return ent.(*Ball)
}

func (e *CollisionEngine) paddle(id EntityID) *Paddle {
	ent, _ := e.registry.Get(id)
	return ent.(*Paddle)
}

func (e *CollisionEngine) goal(id EntityID) *GoalLine {
	ent, _ := e.registry.Get(id)
	return ent.(*GoalLine)
}
