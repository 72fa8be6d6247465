package game

import (
	"math"

	"github.com/lguibr/plethora/utils"
)

// minInwardShare is the smallest share of the speed a deflected ball keeps
// pointing back into the arena.
const minInwardShare = 0.25

// TouchesPaddle reports whether the ball rim overlaps the paddle segment, or
// the ball center crossed it during the last tick.
func TouchesPaddle(ball *Ball, paddle *Paddle) bool {
	seg := paddle.Segment()
	if seg.DistanceTo(ball.Position) <= ball.Radius {
		return true
	}
	return utils.SegmentsIntersect(ball.Motion(), seg)
}

// CrossesGoal reports whether the ball center is beyond the goal's edge line
// and inside that edge's sector.
func CrossesGoal(arena *Arena, ball *Ball, goal *GoalLine) bool {
	i := goal.Index()
	return arena.SignedDistance(i, ball.Position) > 0 && arena.Sector(ball.Position) == i
}

// Deflect bounces the ball off the paddle. An approaching ball is reflected
// about the edge normal and tilted by where it hit the paddle, up to
// Pi/angleFactor at the ends, keeping its speed. The ball is then moved inside
// so its rim clears the edge line by epsilon.
func Deflect(arena *Arena, ball *Ball, paddle *Paddle, angleFactor, epsilon float64) {
	n := arena.OutwardNormal(paddle.Index)
	u := paddle.Edge.Direction()
	v := ball.Velocity
	speed := ball.Speed()

	if vn := v.Dot(n); vn > 0 && speed > 0 {
		reflected := v.Sub(n.Scale(2 * vn))
		offset := paddle.HitOffset(paddle.Segment().ClosestPoint(ball.Position))
		tilted := reflected.Add(u.Scale(offset * speed * math.Sin(math.Pi/angleFactor)))
		out := tilted.Normalize().Scale(speed)

		minInward := speed * minInwardShare
		if -out.Dot(n) < minInward {
			along := out.Dot(u)
			limit := math.Sqrt(speed*speed - minInward*minInward)
			along = utils.ClampFloat(along, -limit, limit)
			out = u.Scale(along).Sub(n.Scale(minInward))
		}
		ball.Velocity = out
	}

	if d := arena.SignedDistance(paddle.Index, ball.Position); d > -(ball.Radius + epsilon) {
		ball.Position = ball.Position.Sub(n.Scale(d + ball.Radius + epsilon))
	}
}
