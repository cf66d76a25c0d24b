package putt

import (
	"github.com/akmonengine/putt/actor"
	"github.com/akmonengine/putt/sweep"
)

// BroadPhase returns the segments the ball could touch while moving for budget
// ticks: those referenced by the tiles under the box swept by the ball.
// The result may hold segments that are never hit, but never misses one.
func BroadPhase(field *Field, ball actor.Ball, budget float64) []*actor.Segment {
	if field == nil {
		return nil
	}

	region := ball.SweptAABB(budget).Expand(EPSILON)

	return field.SegmentsNear(region)
}

// NarrowPhase computes the exact time of impact against every candidate and
// returns the earliest contacts. An empty manifold means free flight.
func NarrowPhase(ball actor.Ball, candidates []*actor.Segment, budget float64) sweep.Manifold {
	return sweep.Collide(ball, candidates, budget)
}
