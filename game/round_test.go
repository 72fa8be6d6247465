package game_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lguibr/plethora/game"
	"github.com/lguibr/plethora/game/mocks"
	"github.com/lguibr/plethora/utils"
)

type roundFixture struct {
	round *game.Round
	clock *game.FakeClock
	goals []*game.GoalLine
	balls []*game.Ball
}

func newRoundFixture(t *testing.T, players, losingScore int, sound game.SoundPlayer) roundFixture {
	t.Helper()
	cfg := game.FixedSeedConfig()
	cfg.LosingScore = losingScore
	arena, err := game.NewArena(players, cfg.ArenaRadius)
	require.NoError(t, err)
	goals, _, err := arena.BuildPlayers(cfg)
	require.NoError(t, err)
	balls := []*game.Ball{game.NewBall(0, arena, utils.Vector{}, cfg.BallRadius, cfg.BallSpeed, rand.New(rand.NewSource(5)))}
	clock := &game.FakeClock{}
	round := game.NewRound(goals, balls, sound, clock, time.Second, utils.CountdownDelay, nil)
	return roundFixture{round: round, clock: clock, goals: goals, balls: balls}
}

// countdown fires the current timer until the round is playing and returns
// the number of ticks it took.
func (f roundFixture) countdown(t *testing.T) int {
	t.Helper()
	gen := f.round.Generation()
	ticks := 0
	for f.round.State().Status() == game.StatusCountdown {
		require.True(t, f.round.CountdownTick(gen))
		ticks++
		require.LessOrEqual(t, ticks, utils.CountdownDelay)
	}
	return ticks
}

func (f roundFixture) goal(i int) game.Reaction {
	return f.round.HandleGoal(game.ContactEvent{Ball: f.balls[0], Goal: f.goals[i]})
}

func TestRound_ScenarioA(t *testing.T) {
	ctrl := gomock.NewController(t)
	sound := mocks.NewMockSoundPlayer(ctrl)
	gomock.InOrder(
		sound.EXPECT().Play(game.SoundOops),
		sound.EXPECT().Play(game.SoundOops),
		sound.EXPECT().Play(game.SoundDeath),
	)
	f := newRoundFixture(t, 2, 3, sound)

	f.round.Begin()
	assert.Equal(t, game.StatusCountdown, f.round.State().Status())
	f.countdown(t)

	var plays int
	for i := 0; i < 2; i++ {
		assert.Equal(t, game.ContinueListening, f.goal(0))
		assert.Equal(t, game.StatusCountdown, f.round.State().Status())
		assert.Equal(t, utils.CountdownDelay, f.round.State().Countdown())
		f.countdown(t)
		assert.Equal(t, game.StatusPlaying, f.round.State().Status())
		plays++
	}
	assert.Equal(t, 2, plays)

	f.goal(0)
	state := f.round.State()
	assert.Equal(t, game.StatusMatchOver, state.Status())
	assert.Equal(t, 1, state.Loser())
	assert.Equal(t, 3, f.goals[0].Score())
	assert.True(t, f.goals[0].Eliminated())
	assert.Empty(t, f.clock.Running(), "no countdown survives the match")
}

func TestRound_ScenarioC(t *testing.T) {
	f := newRoundFixture(t, 3, 3, game.NopPlayer{})
	f.round.Begin()
	gen := f.round.Generation()

	seen := []int{f.round.State().Countdown()}
	transitions := 0
	for i := 0; i < 5; i++ {
		before := f.round.State().Status()
		require.True(t, f.round.CountdownTick(gen))
		seen = append(seen, f.round.State().Countdown())
		if before != game.StatusPlaying && f.round.State().Status() == game.StatusPlaying {
			transitions++
		}
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1, 0}, seen)
	assert.Equal(t, 1, transitions)
	assert.True(t, f.clock.Latest().Stopped, "timer stopped once play starts")

	assert.False(t, f.round.CountdownTick(gen), "ticks while playing are ignored")
	assert.Equal(t, game.StatusPlaying, f.round.State().Status())
	assert.Equal(t, time.Second, f.clock.Latest().Period)
}

func TestRound_ResetRestartsCountdown(t *testing.T) {
	f := newRoundFixture(t, 3, 3, game.NopPlayer{})
	f.round.Begin()
	f.countdown(t)

	ball := f.balls[0]
	ball.Update()
	ball.Velocity = utils.NewVector(9, 9)
	oldGen := f.round.Generation()

	f.goal(1)

	assert.Equal(t, utils.Vector{}, ball.Position)
	assert.Equal(t, ball.StartVelocity, ball.Velocity)
	assert.Equal(t, 1, f.goals[1].Score())
	assert.NotEqual(t, f.goals[1].Color, f.goals[0].Color, "scored line was recolored")
	require.Len(t, f.clock.Timers, 2)
	assert.True(t, f.clock.Timers[0].Stopped)
	assert.False(t, f.clock.Timers[1].Stopped)
	assert.Equal(t, oldGen+1, f.round.Generation())

	assert.False(t, f.round.CountdownTick(oldGen), "stale timer")
	assert.Equal(t, utils.CountdownDelay, f.round.State().Countdown())
	assert.True(t, f.round.CountdownTick(f.round.Generation()))
	assert.Equal(t, utils.CountdownDelay-1, f.round.State().Countdown())
}

func TestRound_DoubleGoalAfterMatchOver(t *testing.T) {
	ctrl := gomock.NewController(t)
	sound := mocks.NewMockSoundPlayer(ctrl)
	sound.EXPECT().Play(game.SoundDeath).Times(1)
	f := newRoundFixture(t, 3, 1, sound)
	f.round.Begin()
	f.countdown(t)

	f.goal(0)
	f.goal(2)
	f.goal(0)

	state := f.round.State()
	assert.Equal(t, game.StatusMatchOver, state.Status())
	assert.Equal(t, 1, state.Loser(), "the first loser is kept")
	assert.Equal(t, 1, f.goals[0].Score())
	assert.Equal(t, 1, f.goals[2].Score(), "same tick goals still count")
	assert.True(t, f.goals[2].Eliminated())
	assert.Equal(t, 0, f.goals[1].Score())
}

func TestRound_PointAfterMatchOverDoesNotReset(t *testing.T) {
	f := newRoundFixture(t, 3, 2, game.NopPlayer{})
	f.round.Begin()
	f.countdown(t)

	f.goal(0)
	f.countdown(t)
	f.goal(0)
	require.Equal(t, game.StatusMatchOver, f.round.State().Status())
	timers := len(f.clock.Timers)

	f.goal(1)
	assert.Equal(t, 1, f.goals[1].Score())
	assert.Equal(t, game.StatusMatchOver, f.round.State().Status())
	assert.Equal(t, 1, f.round.State().Loser())
	assert.Len(t, f.clock.Timers, timers, "no new countdown")
	assert.False(t, f.round.CountdownTick(f.round.Generation()))
}

func TestRound_Stop(t *testing.T) {
	f := newRoundFixture(t, 3, 3, nil)
	f.round.Begin()
	f.round.Stop()
	assert.True(t, f.clock.Latest().Stopped)
	assert.NotPanics(t, f.round.Stop)
}
