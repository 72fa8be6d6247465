package terminal

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lguibr/plethora/game"
)

func collect(t *testing.T, ctx context.Context, input string) ([]game.KeyEvent, error) {
	t.Helper()
	var got []game.KeyEvent
	err := ReadKeys(ctx, strings.NewReader(input), func(ev game.KeyEvent) { got = append(got, ev) }, nil)
	return got, err
}

func TestReadKeys(t *testing.T) {
	got, err := collect(t, context.Background(), "1Zq")
	require.NoError(t, err, "end of input is a clean stop")
	assert.Equal(t, []game.KeyEvent{
		{Key: '1', Pressed: true},
		{Key: 'z', Pressed: true},
		{Key: 'q', Pressed: true},
	}, got, "q is a player key and letters are folded")
}

func TestReadKeys_Quit(t *testing.T) {
	for name, input := range map[string]string{"escape": "ab\x1bcd", "ctrl-c": "ab\x03cd"} {
		t.Run(name, func(t *testing.T) {
			got, err := collect(t, context.Background(), input)
			assert.ErrorIs(t, err, ErrQuit)
			assert.Len(t, got, 2, "keys after the quit key are not read")
		})
	}
}

func TestReadKeys_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := collect(t, ctx, "abc")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, got)
}

func TestReadKeys_SkipsInvalidBytes(t *testing.T) {
	got, err := collect(t, context.Background(), "a\xffb")
	require.NoError(t, err)
	assert.Equal(t, []game.KeyEvent{{Key: 'a', Pressed: true}, {Key: 'b', Pressed: true}}, got)
}
