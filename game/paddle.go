package game

import (
	"github.com/lguibr/plethora/utils"
)

type Direction int

const (
	DirectionNone     Direction = iota
	DirectionPositive           // towards the edge's end vertex
	DirectionNegative           // towards the edge's start vertex
)

func (d Direction) String() string {
	switch d {
	case DirectionPositive:
		return "positive"
	case DirectionNegative:
		return "negative"
	default:
		return "none"
	}
}

func (d Direction) sign() float64 {
	switch d {
	case DirectionPositive:
		return 1
	case DirectionNegative:
		return -1
	default:
		return 0
	}
}

// Paddle slides along one arena edge. Offset is the distance of its center
// from the edge's start vertex and stays within [minOffset, maxOffset], so
// the paddle never touches a vertex.
type Paddle struct {
	Index     int           `json:"index"`
	Edge      utils.Segment `json:"edge"`
	Length    float64       `json:"length"`
	Offset    float64       `json:"offset"`
	Keys      utils.KeyPair `json:"-"`
	Direction Direction     `json:"direction"`
	Speed     float64       `json:"speed"`

	minOffset float64
	maxOffset float64
	holdTicks int // ticks a press keeps moving, 0 moves until release
	remaining int
}

// NewPaddle centers a paddle of fraction * edge length on the edge.
func NewPaddle(index int, edge utils.Segment, fraction, speed float64, holdTicks int, keys utils.KeyPair) *Paddle {
	edgeLength := edge.Length()
	length := edgeLength * fraction
	margin := edgeLength * paddleEdgeMargin
	return &Paddle{
		Index:     index,
		Edge:      edge,
		Length:    length,
		Offset:    edgeLength / 2,
		Keys:      keys,
		Speed:     speed,
		minOffset: margin + length/2,
		maxOffset: edgeLength - margin - length/2,
		holdTicks: holdTicks,
	}
}

// Player is the 1-based number of the owning player.
func (p *Paddle) Player() int { return p.Index + 1 }

func (p *Paddle) Center() utils.Vector {
	return p.Edge.A.Add(p.Edge.Direction().Scale(p.Offset))
}

// Segment returns the current paddle endpoints, always strictly inside the edge.
func (p *Paddle) Segment() utils.Segment {
	dir := p.Edge.Direction()
	half := dir.Scale(p.Length / 2)
	c := p.Center()
	return utils.Segment{A: c.Sub(half), B: c.Add(half)}
}

// HitOffset maps a point on the paddle line to [-1, 1], -1 at the end
// nearest the edge's start vertex.
func (p *Paddle) HitOffset(point utils.Vector) float64 {
	if p.Length == 0 {
		return 0
	}
	along := point.Sub(p.Center()).Dot(p.Edge.Direction())
	return utils.ClampFloat(along/(p.Length/2), -1, 1)
}

// Press starts moving the paddle if key is one of its controls. It reports
// whether the key is bound to this paddle.
func (p *Paddle) Press(key rune) bool {
	switch key {
	case p.Keys.Positive:
		p.Direction = DirectionPositive
	case p.Keys.Negative:
		p.Direction = DirectionNegative
	default:
		return false
	}
	p.remaining = p.holdTicks
	return true
}

// Release stops the paddle if key drives its current direction.
func (p *Paddle) Release(key rune) bool {
	switch {
	case key == p.Keys.Positive && p.Direction == DirectionPositive,
		key == p.Keys.Negative && p.Direction == DirectionNegative:
		p.Direction = DirectionNone
		p.remaining = 0
		return true
	}
	return false
}

// Update moves the paddle one tick in its current direction.
func (p *Paddle) Update() {
	if p.Direction == DirectionNone {
		return
	}
	p.SlideBy(p.Direction.sign() * p.Speed)
	if p.holdTicks > 0 {
		p.remaining--
		if p.remaining <= 0 {
			p.Direction = DirectionNone
		}
	}
}

// SlideBy moves the center by delta along the edge, clamped to the margins.
func (p *Paddle) SlideBy(delta float64) {
	p.Offset = utils.ClampFloat(p.Offset+delta, p.minOffset, p.maxOffset)
}
