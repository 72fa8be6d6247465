package game

import (
	"fmt"
	"math"

	"github.com/lguibr/plethora/utils"
)

// paddleEdgeMargin is the share of an edge kept free at each end so a paddle
// never reaches a vertex.
const paddleEdgeMargin = 0.02

// Arena is the regular polygon play field. Edge i runs from vertex i to
// vertex i+1 and belongs to the player with index i.
type Arena struct {
	Radius   float64         `json:"radius"`
	Vertices []utils.Vector  `json:"vertices"`
	Edges    []utils.Segment `json:"edges"`

	step    float64 // central angle of one edge
	apothem float64
}

// NewArena places nPlayers vertices evenly on a circle of the given radius:
// vertex i sits at angle i*2π/nPlayers.
func NewArena(nPlayers int, radius float64) (*Arena, error) {
	if nPlayers < utils.MinPlayers {
		return nil, fmt.Errorf("%w: need at least %d players, got %d", ErrInvalidConfiguration, utils.MinPlayers, nPlayers)
	}
	if nPlayers > utils.MaxPlayers {
		return nil, fmt.Errorf("%w: at most %d players have key bindings, got %d", ErrInvalidConfiguration, utils.MaxPlayers, nPlayers)
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: arena radius must be positive, got %v", ErrInvalidConfiguration, radius)
	}

	step := 2 * math.Pi / float64(nPlayers)
	vertices := make([]utils.Vector, nPlayers)
	for i := range vertices {
		vertices[i] = utils.Polar(radius, float64(i)*step)
	}

	edges := make([]utils.Segment, nPlayers)
	for i := range edges {
		edges[i] = utils.Segment{A: vertices[i], B: vertices[(i+1)%nPlayers]}
	}

	return &Arena{
		Radius:   radius,
		Vertices: vertices,
		Edges:    edges,
		step:     step,
		apothem:  radius * math.Cos(step/2),
	}, nil
}

func (a *Arena) Players() int { return len(a.Edges) }

// Apothem is the distance from the center to every edge line.
func (a *Arena) Apothem() float64 { return a.apothem }

// OutwardNormal is the unit normal of edge i pointing away from the center.
func (a *Arena) OutwardNormal(i int) utils.Vector {
	return utils.Polar(1, (float64(i)+0.5)*a.step)
}

// SignedDistance of p from the line of edge i: negative inside, positive beyond it.
func (a *Arena) SignedDistance(i int, p utils.Vector) float64 {
	return p.Dot(a.OutwardNormal(i)) - a.Apothem()
}

// Sector returns the edge whose angular span [i*step, (i+1)*step) contains the
// heading of p from the center. Sectors partition the plane.
func (a *Arena) Sector(p utils.Vector) int {
	i := int(p.Angle() / a.step)
	if n := a.Players(); i >= n {
		i = n - 1
	}
	return i
}

// Contains reports whether p is inside every edge line by at least margin.
func (a *Arena) Contains(p utils.Vector, margin float64) bool {
	for i := range a.Edges {
		if a.SignedDistance(i, p) > -margin {
			return false
		}
	}
	return true
}

// BuildPlayers derives one goal line and one paddle per edge. Goal lines take
// the whole edge; paddles are centered on it and bound to the player's keys.
func (a *Arena) BuildPlayers(cfg utils.Config) ([]*GoalLine, []*Paddle, error) {
	if !(cfg.PaddleFraction > 0) || cfg.PaddleFraction+2*paddleEdgeMargin >= 1 {
		return nil, nil, fmt.Errorf("%w: paddle fraction %v leaves no room on the edge", ErrInvalidConfiguration, cfg.PaddleFraction)
	}
	if cfg.LosingScore < 1 {
		return nil, nil, fmt.Errorf("%w: losing score must be at least 1, got %d", ErrInvalidConfiguration, cfg.LosingScore)
	}

	goals := make([]*GoalLine, len(a.Edges))
	paddles := make([]*Paddle, len(a.Edges))
	for i, edge := range a.Edges {
		goals[i] = NewGoalLine(i+1, cfg.LosingScore, edge)
		paddles[i] = NewPaddle(i, edge, cfg.PaddleFraction, cfg.PaddleSpeed, cfg.KeyHoldTicks, utils.PlayerKeys[i])
	}
	return goals, paddles, nil
}
