package game

import (
	"log/slog"
	"time"
)

// TimerHandle stops a running countdown timer. Stop is idempotent.
type TimerHandle interface {
	Stop()
}

// CountdownClock starts a timer that delivers CountdownTick(generation) to
// the round every period until stopped.
type CountdownClock interface {
	Start(period time.Duration, generation int) TimerHandle
}

// Round is the match state machine. It owns the MatchState and is the only
// writer of the status, the countdown and the losing player.
type Round struct {
	state MatchState

	goals []*GoalLine
	balls []*Ball
	sound SoundPlayer
	clock CountdownClock

	period  time.Duration
	seconds int

	timer      TimerHandle
	generation int

	logger *slog.Logger
}

func NewRound(goals []*GoalLine, balls []*Ball, sound SoundPlayer, clock CountdownClock, period time.Duration, seconds int, logger *slog.Logger) *Round {
	if sound == nil {
		sound = NopPlayer{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Round{
		state:   MatchState{status: StatusCountdown, countdown: seconds},
		goals:   goals,
		balls:   balls,
		sound:   sound,
		clock:   clock,
		period:  period,
		seconds: seconds,
		logger:  logger,
	}
}

func (r *Round) State() StatusView { return &r.state }

// Generation identifies the running countdown timer.
func (r *Round) Generation() int { return r.generation }

// Begin starts the first countdown.
func (r *Round) Begin() {
	r.restartCountdown()
}

// CountdownTick decrements the countdown. Ticks of a stopped timer and ticks
// outside the countdown are ignored; it reports whether the tick was used.
// At zero the timer is stopped before play resumes.
func (r *Round) CountdownTick(generation int) bool {
	if generation != r.generation || r.state.status != StatusCountdown {
		r.logger.Debug("stale countdown tick", "generation", generation, "current", r.generation, "status", r.state.status)
		return false
	}
	r.state.countdown--
	if r.state.countdown > 0 {
		return true
	}
	r.state.countdown = 0
	r.stopTimer()
	r.state.status = StatusPlaying
	r.logger.Info("round started")
	return true
}

// HandleGoal scores a point against the goal's player.
func (r *Round) HandleGoal(ev ContactEvent) Reaction {
	goal := ev.Goal
	if !goal.IncrementScore() {
		return ContinueListening
	}
	goal.UpdateColor()
	r.logger.Info("point", "player", goal.Player, "score", goal.Score())

	if goal.Eliminated() {
		if r.state.status == StatusMatchOver {
			return ContinueListening
		}
		r.resetBalls()
		r.stopTimer()
		r.state.status = StatusMatchOver
		r.state.loser = goal.Player
		r.sound.Play(SoundDeath)
		r.logger.Info("match over", "loser", goal.Player)
		return ContinueListening
	}

	if r.state.status == StatusMatchOver {
		return ContinueListening
	}
	r.state.status = StatusRoundOver
	r.resetBalls()
	r.sound.Play(SoundOops)
	r.restartCountdown()
	return ContinueListening
}

// Stop cancels the running countdown timer.
func (r *Round) Stop() { r.stopTimer() }

func (r *Round) restartCountdown() {
	r.stopTimer()
	r.generation++
	r.timer = r.clock.Start(r.period, r.generation)
	r.state.status = StatusCountdown
	r.state.countdown = r.seconds
	r.logger.Debug("countdown", "generation", r.generation, "seconds", r.seconds)
}

func (r *Round) stopTimer() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Round) resetBalls() {
	for _, b := range r.balls {
		b.Reset()
	}
}
