package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lguibr/plethora/utils"
)

// Match wires the arena, the entities, the collision engine and the round
// for one game. It is not safe for concurrent use; the MatchActor serializes
// every call.
type Match struct {
	ID   string
	Name string

	cfg   utils.Config
	setup Setup

	arena    *Arena
	registry *Registry
	engine   *CollisionEngine
	round    *Round

	balls   []*Ball
	paddles []*Paddle
	goals   []*GoalLine
	keymap  map[rune][]*Paddle

	sound  SoundPlayer
	ticks  uint64
	logger *slog.Logger
}

// NewMatch builds a match ready to Start. It fails with
// ErrInvalidConfiguration for an unusable setup or config.
func NewMatch(cfg utils.Config, setup Setup, sound SoundPlayer, clock CountdownClock, logger *slog.Logger) (*Match, error) {
	if err := setup.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if clock == nil {
		return nil, fmt.Errorf("%w: a countdown clock is required", ErrInvalidConfiguration)
	}
	if sound == nil {
		sound = NopPlayer{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	arena, err := NewArena(setup.Players, cfg.ArenaRadius)
	if err != nil {
		return nil, err
	}
	goals, paddles, err := arena.BuildPlayers(cfg)
	if err != nil {
		return nil, err
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	start := utils.NewVector(cfg.BallStartX, cfg.BallStartY)

	id := uuid.New().String()
	name := cases.Title(language.English).String(petname.Generate(2, " "))
	logger = logger.With("match", id)

	m := &Match{
		ID:       id,
		Name:     name,
		cfg:      cfg,
		setup:    setup,
		arena:    arena,
		registry: NewRegistry(),
		goals:    goals,
		paddles:  paddles,
		keymap:   make(map[rune][]*Paddle),
		sound:    sound,
		logger:   logger,
	}

	ballIDs := make([]EntityID, setup.Balls)
	for i := range ballIDs {
		b := NewBall(i, arena, start, cfg.BallRadius, cfg.BallSpeed, rng)
		m.balls = append(m.balls, b)
		ballIDs[i] = m.registry.Add(b)
	}
	goalIDs := make([]EntityID, setup.Players)
	paddleIDs := make([]EntityID, setup.Players)
	for i := range goals {
		goalIDs[i] = m.registry.Add(goals[i])
		paddleIDs[i] = m.registry.Add(paddles[i])
		m.keymap[paddles[i].Keys.Positive] = append(m.keymap[paddles[i].Keys.Positive], paddles[i])
		m.keymap[paddles[i].Keys.Negative] = append(m.keymap[paddles[i].Keys.Negative], paddles[i])
	}

	m.round = NewRound(goals, m.balls, sound, clock, cfg.CountdownPeriod, cfg.CountdownSeconds, logger)
	m.engine = NewCollisionEngine(m.registry, arena, m.round.State(), cfg)
	for _, ball := range ballIDs {
		for i := range goals {
			if _, err := m.engine.Register(ball, paddleIDs[i], ReactionDeflect); err != nil {
				return nil, err
			}
			if _, err := m.engine.Register(ball, goalIDs[i], ReactionScore); err != nil {
				return nil, err
			}
		}
	}
	m.engine.Seal()

	logger.Info("match created", "name", name, "players", setup.Players, "balls", setup.Balls, "entities", m.registry.Len(), "pairs", len(m.engine.Pairs()), "seed", seed)
	return m, nil
}

// Start runs the first countdown.
func (m *Match) Start() {
	m.round.Begin()
}

// Tick moves every entity and resolves collisions. Nothing moves outside play.
func (m *Match) Tick() {
	m.ticks++
	state := m.round.State()
	if !state.Playing() {
		return
	}
	m.registry.UpdateAll()
	m.engine.Step(m)

	if state.Playing() {
		for _, i := range m.strayBalls() {
			m.logger.Warn("ball left the arena without scoring", "ball", i, "position", m.balls[i].Position, "tick", m.ticks)
		}
	}
}

// strayBalls lists the balls whose center is beyond an edge line. While play
// goes on every such ball has already scored and been reset, so the list is
// expected to be empty.
func (m *Match) strayBalls() []int {
	var stray []int
	for i, b := range m.balls {
		if !m.arena.Contains(b.Position, 0) {
			stray = append(stray, i)
		}
	}
	return stray
}

// CountdownTick forwards a countdown timer tick to the round.
func (m *Match) CountdownTick(generation int) bool {
	return m.round.CountdownTick(generation)
}

// HandleKey drives every paddle bound to the key. It reports whether any
// paddle is bound to it.
func (m *Match) HandleKey(ev KeyEvent) bool {
	paddles, ok := m.keymap[ev.Key]
	if !ok {
		return false
	}
	for _, p := range paddles {
		if ev.Pressed {
			p.Press(ev.Key)
		} else {
			p.Release(ev.Key)
		}
	}
	return true
}

// HandleDeflect implements ContactHandler.
func (m *Match) HandleDeflect(ev ContactEvent) {
	m.logger.Debug("paddle hit", "player", ev.Paddle.Player(), "ball", ev.Ball.Index)
	m.sound.Play(SoundChirp)
}

// HandleGoal implements ContactHandler.
func (m *Match) HandleGoal(ev ContactEvent) Reaction {
	return m.round.HandleGoal(ev)
}

func (m *Match) Overlay() Overlay { return overlayFor(m.round.State()) }

func (m *Match) State() StatusView { return m.round.State() }

// Generation is the generation of the running countdown timer.
func (m *Match) Generation() int { return m.round.Generation() }

func (m *Match) Arena() *Arena            { return m.arena }
func (m *Match) Balls() []*Ball           { return m.balls }
func (m *Match) Paddles() []*Paddle       { return m.paddles }
func (m *Match) Goals() []*GoalLine       { return m.goals }
func (m *Match) Engine() *CollisionEngine { return m.engine }
func (m *Match) Setup() Setup             { return m.setup }

// Snapshot copies the current match for rendering.
func (m *Match) Snapshot() Snapshot {
	arena := m.Arena()
	s := Snapshot{
		MatchID:   m.ID,
		MatchName: m.Name,
		Tick:      m.ticks,
		Status:    m.State().Status(),
		Radius:    arena.Radius,
		Vertices:  append([]utils.Vector(nil), arena.Vertices...),
		Goals:     make([]GoalView, len(m.goals)),
		Paddles:   make([]PaddleView, len(m.paddles)),
		Balls:     make([]BallView, len(m.balls)),
		Overlay:   m.Overlay(),
	}
	for i, g := range m.Goals() {
		s.Goals[i] = GoalView{Player: g.Player, Segment: g.Segment, Score: g.Score(), Eliminated: g.Eliminated(), Color: g.Color}
	}
	for i, p := range m.Paddles() {
		s.Paddles[i] = PaddleView{Player: p.Player(), Segment: p.Segment()}
	}
	for i, b := range m.Balls() {
		s.Balls[i] = BallView{Position: b.Position, Radius: b.Radius}
	}
	return s
}

// Stop cancels the countdown timer.
func (m *Match) Stop() {
	m.round.Stop()
	m.logger.Info("match stopped", "ticks", m.ticks)
}
