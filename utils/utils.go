package utils

import "math"

// Vector is a point or displacement in arena space.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewVector(x, y float64) Vector { return Vector{X: x, Y: y} }

// Polar returns the vector of the given length pointing at angle (radians).
func Polar(length, angle float64) Vector {
	return Vector{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
}

func (v Vector) Add(o Vector) Vector       { return Vector{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vector) Sub(o Vector) Vector       { return Vector{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vector) Scale(s float64) Vector    { return Vector{X: v.X * s, Y: v.Y * s} }
func (v Vector) Dot(o Vector) float64      { return v.X*o.X + v.Y*o.Y }
func (v Vector) Cross(o Vector) float64    { return v.X*o.Y - v.Y*o.X }
func (v Vector) Length() float64           { return math.Hypot(v.X, v.Y) }
func (v Vector) Distance(o Vector) float64 { return v.Sub(o).Length() }

// Angle returns the heading of v in [0, 2π).
func (v Vector) Angle() float64 {
	a := math.Atan2(v.Y, v.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Normalize returns the unit vector of v, or the zero vector if v has no length.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// Lerp interpolates between a and b, t=0 giving a and t=1 giving b.
func Lerp(a, b Vector, t float64) Vector {
	return a.Add(b.Sub(a).Scale(t))
}

// Segment is a closed line segment between A and B.
type Segment struct {
	A Vector `json:"a"`
	B Vector `json:"b"`
}

func (s Segment) Length() float64   { return s.A.Distance(s.B) }
func (s Segment) Direction() Vector { return s.B.Sub(s.A).Normalize() }

// Project returns the distance along the segment (from A) of the projection of p,
// clamped to [0, Length].
func (s Segment) Project(p Vector) float64 {
	length := s.Length()
	if length == 0 {
		return 0
	}
	t := p.Sub(s.A).Dot(s.Direction())
	return ClampFloat(t, 0, length)
}

// ClosestPoint returns the point of the segment closest to p.
func (s Segment) ClosestPoint(p Vector) Vector {
	return s.A.Add(s.Direction().Scale(s.Project(p)))
}

// DistanceTo returns the shortest distance between p and the segment.
func (s Segment) DistanceTo(p Vector) float64 {
	return p.Distance(s.ClosestPoint(p))
}

// SegmentsIntersect reports whether the closed segments s and o share a point.
func SegmentsIntersect(s, o Segment) bool {
	d1 := orientation(o.A, o.B, s.A)
	d2 := orientation(o.A, o.B, s.B)
	d3 := orientation(s.A, s.B, o.A)
	d4 := orientation(s.A, s.B, o.B)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// collinear touching cases
	if d1 == 0 && onSegment(o, s.A) {
		return true
	}
	if d2 == 0 && onSegment(o, s.B) {
		return true
	}
	if d3 == 0 && onSegment(s, o.A) {
		return true
	}
	if d4 == 0 && onSegment(s, o.B) {
		return true
	}
	return false
}

func orientation(a, b, p Vector) float64 {
	return b.Sub(a).Cross(p.Sub(a))
}

func onSegment(s Segment, p Vector) bool {
	return p.X >= math.Min(s.A.X, s.B.X) && p.X <= math.Max(s.A.X, s.B.X) &&
		p.Y >= math.Min(s.A.Y, s.B.Y) && p.Y <= math.Max(s.A.Y, s.B.Y)
}

func ClampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Color is an RGB triple with components in [0, 255].
type Color [3]int

// LerpColor blends a towards b, t clamped to [0, 1].
func LerpColor(a, b Color, t float64) Color {
	t = ClampFloat(t, 0, 1)
	var c Color
	for i := range c {
		c[i] = int(math.Round(float64(a[i]) + (float64(b[i])-float64(a[i]))*t))
	}
	return c
}
