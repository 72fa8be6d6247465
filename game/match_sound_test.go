package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lguibr/plethora/game"
	"github.com/lguibr/plethora/game/mocks"
)

func TestMatch_ChirpsOncePerPaddleHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	sound := mocks.NewMockSoundPlayer(ctrl)
	sound.EXPECT().Play(game.SoundChirp).Times(1)

	cfg := game.FixedSeedConfig()
	m, err := game.NewMatch(cfg, game.Setup{Players: 3, Balls: 1}, sound, &game.FakeClock{}, nil)
	require.NoError(t, err)
	m.Start()
	for m.State().Status() == game.StatusCountdown {
		m.CountdownTick(m.Generation())
	}

	n := m.Arena().OutwardNormal(0)
	ball := m.Balls()[0]
	ball.Velocity = n.Scale(cfg.BallSpeed)
	ball.Position = m.Paddles()[0].Center().Sub(n.Scale(cfg.BallRadius + 1))

	m.Tick()
	m.Tick()
	m.Tick()
	require.Equal(t, game.StatusPlaying, m.State().Status())
}

func TestMatch_OopsOnPoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	sound := mocks.NewMockSoundPlayer(ctrl)
	sound.EXPECT().Play(game.SoundOops).Times(1)

	clock := &game.FakeClock{}
	m, err := game.NewMatch(game.FixedSeedConfig(), game.Setup{Players: 4, Balls: 1}, sound, clock, nil)
	require.NoError(t, err)
	m.Start()
	for m.State().Status() == game.StatusCountdown {
		m.CountdownTick(m.Generation())
	}

	arena := m.Arena()
	ball := m.Balls()[0]
	edge := arena.Edges[2]
	ball.Velocity = arena.OutwardNormal(2).Scale(1)
	ball.Position = edge.A.Add(edge.Direction().Scale(4))

	m.Tick()
	require.Equal(t, game.StatusCountdown, m.State().Status())
	require.Equal(t, 1, m.Goals()[2].Score())
	require.Len(t, clock.Running(), 1)
}
