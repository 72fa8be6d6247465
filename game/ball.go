package game

import (
	"math"
	"math/rand"

	"github.com/lguibr/plethora/utils"
)

type Ball struct {
	Index    int          `json:"index"`
	Position utils.Vector `json:"position"`
	Previous utils.Vector `json:"-"` // position before the last Update
	Velocity utils.Vector `json:"velocity"`
	Radius   float64      `json:"radius"`

	Start         utils.Vector `json:"-"`
	StartVelocity utils.Vector `json:"-"`

	Arena *Arena `json:"-"`
}

// NewBall creates a ball at start moving at speed with a heading drawn from rng.
// The heading is kept for every later reset.
func NewBall(index int, arena *Arena, start utils.Vector, radius, speed float64, rng *rand.Rand) *Ball {
	velocity := utils.Polar(speed, rng.Float64()*2*math.Pi)
	return &Ball{
		Index:         index,
		Position:      start,
		Previous:      start,
		Velocity:      velocity,
		Radius:        radius,
		Start:         start,
		StartVelocity: velocity,
		Arena:         arena,
	}
}

// Update advances the ball by one tick of its velocity.
func (b *Ball) Update() {
	b.Previous = b.Position
	b.Position = b.Position.Add(b.Velocity)
}

// Reset puts the ball back on its start position with its start velocity.
func (b *Ball) Reset() {
	b.Position = b.Start
	b.Previous = b.Start
	b.Velocity = b.StartVelocity
}

// Motion is the path covered by the last Update.
func (b *Ball) Motion() utils.Segment {
	return utils.Segment{A: b.Previous, B: b.Position}
}

func (b *Ball) Speed() float64 { return b.Velocity.Length() }
