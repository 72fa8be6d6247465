package game

import (
	"github.com/lguibr/plethora/utils"
)

var (
	safeColor = utils.Color{0, 255, 0}
	deadColor = utils.Color{255, 0, 0}
)

// GoalLine covers a player's whole edge. A ball crossing it scores against
// that player; reaching LosingScore eliminates them.
type GoalLine struct {
	Player      int           `json:"player"` // 1-based
	Segment     utils.Segment `json:"segment"`
	LosingScore int           `json:"losingScore"`
	Color       utils.Color   `json:"color"`

	score      int
	eliminated bool
}

func NewGoalLine(player, losingScore int, edge utils.Segment) *GoalLine {
	g := &GoalLine{
		Player:      player,
		Segment:     edge,
		LosingScore: losingScore,
	}
	g.UpdateColor()
	return g
}

func (g *GoalLine) Index() int       { return g.Player - 1 }
func (g *GoalLine) Score() int       { return g.score }
func (g *GoalLine) Eliminated() bool { return g.eliminated }

// Update is a no-op; goal lines never move.
func (g *GoalLine) Update() {}

// IncrementScore adds one point. Once the losing score is reached the line is
// eliminated and further calls are ignored; it reports whether the score changed.
func (g *GoalLine) IncrementScore() bool {
	if g.eliminated {
		return false
	}
	g.score++
	if g.score >= g.LosingScore {
		g.score = g.LosingScore
		g.eliminated = true
	}
	return true
}

// UpdateColor shades the line from green to red as points are lost.
func (g *GoalLine) UpdateColor() {
	g.Color = utils.LerpColor(safeColor, deadColor, float64(g.score)/float64(g.LosingScore))
}
