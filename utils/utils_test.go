package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestVector_Basics(t *testing.T) {
	a := NewVector(3, 4)
	b := NewVector(1, -2)

	assert.Equal(t, NewVector(4, 2), a.Add(b))
	assert.Equal(t, NewVector(2, 6), a.Sub(b))
	assert.Equal(t, NewVector(6, 8), a.Scale(2))
	assert.InDelta(t, -5.0, a.Dot(b), eps)
	assert.InDelta(t, -10.0, a.Cross(b), eps)
	assert.InDelta(t, 5.0, a.Length(), eps)
	assert.InDelta(t, 1.0, a.Normalize().Length(), eps)
	assert.Equal(t, Vector{}, Vector{}.Normalize(), "zero vector normalizes to zero")
}

func TestVector_Angle(t *testing.T) {
	testCases := []struct {
		name  string
		v     Vector
		angle float64
	}{
		{"east", NewVector(1, 0), 0},
		{"north", NewVector(0, 1), math.Pi / 2},
		{"west", NewVector(-1, 0), math.Pi},
		{"south", NewVector(0, -1), 3 * math.Pi / 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.angle, tc.v.Angle(), eps)
			unit := Polar(1, tc.angle)
			assert.InDelta(t, tc.v.X, unit.X, eps)
			assert.InDelta(t, tc.v.Y, unit.Y, eps)
		})
	}

	p := Polar(2, math.Pi/3)
	assert.InDelta(t, 2.0, p.Length(), eps)
	assert.InDelta(t, math.Pi/3, p.Angle(), eps)
}

func TestSegment_ClosestPointAndDistance(t *testing.T) {
	s := Segment{A: NewVector(0, 0), B: NewVector(10, 0)}

	tests := []struct {
		name     string
		p        Vector
		closest  Vector
		distance float64
		project  float64
	}{
		{"above middle", NewVector(5, 3), NewVector(5, 0), 3, 5},
		{"before A", NewVector(-4, 3), NewVector(0, 0), 5, 0},
		{"after B", NewVector(13, -4), NewVector(10, 0), 5, 10},
		{"on segment", NewVector(7, 0), NewVector(7, 0), 0, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := s.ClosestPoint(tt.p)
			assert.InDelta(t, tt.closest.X, c.X, eps)
			assert.InDelta(t, tt.closest.Y, c.Y, eps)
			assert.InDelta(t, tt.distance, s.DistanceTo(tt.p), eps)
			assert.InDelta(t, tt.project, s.Project(tt.p), eps)
		})
	}

	assert.InDelta(t, 10.0, s.Length(), eps)
}

func TestSegmentsIntersect(t *testing.T) {
	base := Segment{A: NewVector(0, 0), B: NewVector(10, 0)}
	tests := []struct {
		name string
		o    Segment
		want bool
	}{
		{"crossing", Segment{A: NewVector(5, -5), B: NewVector(5, 5)}, true},
		{"touching endpoint", Segment{A: NewVector(10, 0), B: NewVector(10, 5)}, true},
		{"parallel apart", Segment{A: NewVector(0, 1), B: NewVector(10, 1)}, false},
		{"collinear overlap", Segment{A: NewVector(8, 0), B: NewVector(12, 0)}, true},
		{"collinear disjoint", Segment{A: NewVector(11, 0), B: NewVector(12, 0)}, false},
		{"short of segment", Segment{A: NewVector(5, 1), B: NewVector(5, 5)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentsIntersect(base, tt.o); got != tt.want {
				t.Errorf("SegmentsIntersect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampAndMax(t *testing.T) {
	assert.Equal(t, 1.0, ClampFloat(-1, 1, 2))
	assert.Equal(t, 2.0, ClampFloat(3, 1, 2))
	assert.Equal(t, 1.5, ClampFloat(1.5, 1, 2))
	assert.Equal(t, 4, MaxInt(4, 2))
}

func TestColors(t *testing.T) {
	green := Color{0, 255, 0}
	red := Color{255, 0, 0}
	assert.Equal(t, green, LerpColor(green, red, 0))
	assert.Equal(t, red, LerpColor(green, red, 1))
	assert.Equal(t, red, LerpColor(green, red, 7), "t is clamped")
	assert.Equal(t, Color{128, 128, 0}, LerpColor(green, red, 0.5))
}
