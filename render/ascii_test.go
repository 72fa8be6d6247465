package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lguibr/plethora/game"
	"github.com/lguibr/plethora/utils"
)

func testSnapshot() game.Snapshot {
	edge := utils.Segment{A: utils.NewVector(-100, -100), B: utils.NewVector(100, -100)}
	return game.Snapshot{
		MatchName: "Brave Otter",
		Radius:    100,
		Goals: []game.GoalView{
			{Player: 1, Segment: edge, Score: 2, Color: utils.Color{10, 20, 30}},
			{Player: 2, Segment: utils.Segment{A: utils.NewVector(-100, 100), B: utils.NewVector(100, 100)}, Score: 3, Eliminated: true},
		},
		Paddles: []game.PaddleView{{Player: 1, Segment: utils.Segment{A: utils.NewVector(-20, -100), B: utils.NewVector(20, -100)}}},
		Balls:   []game.BallView{{Position: utils.NewVector(0, 90), Radius: 2}},
	}
}

func frameLines(frame string) []string {
	return strings.Split(strings.TrimSuffix(frame, "\r\n"), "\r\n")
}

func TestHeader(t *testing.T) {
	title, scores := Header(testSnapshot())
	assert.Equal(t, "Plethora of Pong v1.02 | Brave Otter", title)
	assert.Equal(t, "P1:2 P2:3x", scores)
}

func TestFrame_Layout(t *testing.T) {
	r := NewRenderer(21, 11, false)
	lines := frameLines(r.Frame(testSnapshot()))
	require.Len(t, lines, 2+11)

	grid := lines[2:]
	for _, line := range grid {
		assert.Len(t, strings.TrimSuffix(line, clearLine), 2*21, "every cell is two characters wide")
	}
	assert.Equal(t, strings.Repeat(".", 42), strings.TrimSuffix(grid[0], clearLine), "eliminated goal on top")
	bottom := strings.TrimSuffix(grid[10], clearLine)
	assert.Contains(t, bottom, "##")
	assert.True(t, strings.HasPrefix(bottom, "**"), "open goal at the bottom")

	assert.Contains(t, grid[1]+grid[0], "OO", "Y points up")
	assert.NotContains(t, strings.Join(grid[2:], ""), "O")
}

func TestFrame_Overlay(t *testing.T) {
	r := NewRenderer(21, 11, false)

	s := testSnapshot()
	s.Overlay = game.Overlay{Countdown: 3, Message: "3"}
	lines := frameLines(r.Frame(s))
	middle := strings.TrimSuffix(lines[2+5], clearLine)
	assert.Len(t, middle, 42)
	assert.Equal(t, "3 ", middle[20:22], "single digit padded to one cell in the middle")

	s.Overlay = game.Overlay{Loser: 2, Message: "Player 2 Loses!"}
	middle = strings.TrimSuffix(frameLines(r.Frame(s))[2+5], clearLine)
	assert.Contains(t, middle, "Player 2 Loses! ")
	assert.Len(t, middle, 42)
}

func TestFrame_Colors(t *testing.T) {
	plain := NewRenderer(21, 11, false).Frame(testSnapshot())
	assert.NotContains(t, plain, "\033[38;2")

	colored := NewRenderer(21, 11, true).Frame(testSnapshot())
	assert.Contains(t, colored, "\033[38;2;10;20;30m**"+resetColor)
}

func TestDraw(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(11, 5, false)
	require.NoError(t, r.Draw(&buf, testSnapshot()))
	assert.True(t, strings.HasPrefix(buf.String(), cursorHome))
}
