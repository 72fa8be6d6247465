package game

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lguibr/plethora/bollywood"
)

// SnapshotBoard holds the latest published snapshot of a match. It is safe
// for concurrent use.
type SnapshotBoard struct {
	latest atomic.Value // Snapshot
}

func (b *SnapshotBoard) Publish(s Snapshot) { b.latest.Store(s) }

// Latest returns the last published snapshot, false before the first one.
func (b *SnapshotBoard) Latest() (Snapshot, bool) {
	s, ok := b.latest.Load().(Snapshot)
	return s, ok
}

// ActorClock is a CountdownClock whose timers send CountdownTick messages to
// an actor. The target is bound when the actor starts.
type ActorClock struct {
	engine *bollywood.Engine
	target *bollywood.PID
}

func NewActorClock(engine *bollywood.Engine) *ActorClock {
	return &ActorClock{engine: engine}
}

func (c *ActorClock) bind(pid *bollywood.PID) { c.target = pid }

func (c *ActorClock) Start(period time.Duration, generation int) TimerHandle {
	t := newTickerLoop(period)
	engine, target := c.engine, c.target
	go t.run(func() { engine.Send(target, CountdownTick{Generation: generation}, nil) })
	return t
}

// tickerLoop calls a function every period until stopped.
type tickerLoop struct {
	ticker *time.Ticker
	stopCh chan struct{}
	once   sync.Once
}

func newTickerLoop(period time.Duration) *tickerLoop {
	return &tickerLoop{ticker: time.NewTicker(period), stopCh: make(chan struct{})}
}

func (t *tickerLoop) run(fire func()) {
	for {
		select {
		case <-t.stopCh:
			return
		case <-t.ticker.C:
			select {
			case <-t.stopCh:
				return
			default:
				fire()
			}
		}
	}
}

func (t *tickerLoop) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.stopCh)
	})
}

// MatchActor hosts a Match on its own goroutine. Every message that reaches
// the match is followed by a fresh snapshot on the board.
type MatchActor struct {
	match  *Match
	clock  *ActorClock
	board  *SnapshotBoard
	period time.Duration
	ticker *tickerLoop
	status Status
	logger *slog.Logger
}

// NewMatchActorProducer creates a Producer hosting match. clock must be the
// clock the match was built with.
func NewMatchActorProducer(match *Match, clock *ActorClock, board *SnapshotBoard, tickPeriod time.Duration, logger *slog.Logger) bollywood.Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return func() bollywood.Actor {
		return &MatchActor{
			match:  match,
			clock:  clock,
			board:  board,
			period: tickPeriod,
			logger: logger.With("match", match.ID),
		}
	}
}

func (a *MatchActor) Receive(ctx bollywood.Context) {
	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		a.clock.bind(ctx.Self())
		a.match.Start()
		a.ticker = newTickerLoop(a.period)
		engine, self := ctx.Engine(), ctx.Self()
		go a.ticker.run(func() { engine.Send(self, GameTick{}, nil) })
		a.logger.Info("match actor started", "pid", self.ID, "players", a.match.Setup().Players, "balls", a.match.Setup().Balls)

	case GameTick:
		a.match.Tick()

	case CountdownTick:
		a.match.CountdownTick(msg.Generation)

	case KeyEvent:
		a.match.HandleKey(msg)

	case bollywood.Stopping:
		if a.ticker != nil {
			a.ticker.Stop()
		}
		a.match.Stop()
		return

	case bollywood.Stopped:
		a.logger.Info("match actor stopped")
		return

	default:
		a.logger.Warn("unknown message", "type", fmt.Sprintf("%T", msg))
		return
	}

	a.publish()
}

func (a *MatchActor) publish() {
	s := a.match.Snapshot()
	if s.Status != a.status {
		a.logger.Info("status", "from", a.status, "to", s.Status, "generation", a.match.Generation())
		a.status = s.Status
	}
	a.board.Publish(s)
}
