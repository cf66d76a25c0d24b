// Package sweep implements continuous collision detection between a moving
// circle and static line segments.
//
// A ball of radius r touches a segment when its center reaches either:
//   - the segment translated by r along its normal, toward the ball (flat hit)
//   - a circle of radius r centered on one of the segment endpoints (corner hit)
//
// Both are solved analytically for the time of impact along the ball's
// straight trajectory, so a thin wall is never tunneled through, whatever the
// speed. Corner hits round off the convex corners where segments meet.
//
// Line intersections only use cross products (2x2 determinants): there is no
// slope anywhere, so vertical and horizontal segments need no special case.
package sweep

import (
	"math"

	"github.com/akmonengine/putt/actor"
	"github.com/akmonengine/putt/constraint"
	"github.com/go-gl/mathgl/mgl64"
)

// SegmentTOI computes when the ball first touches the flat part of segment,
// within budget ticks.
//
// The segment is offset by the ball radius on the side the ball is on, and the
// trajectory center + velocity*s is intersected with that offset segment:
//
//	center + v*s = q1 + d*u,  s in [0, budget], u in [0, 1]
//
// Crossing both sides with d (resp. v) gives s = (w×d)/(v×d) and u = (w×v)/(v×d),
// with w = q1 - center.
func SegmentTOI(ball actor.Ball, segment *actor.Segment, budget float64) (constraint.ContactConstraint, bool) {
	side := segment.Side(ball.Position)
	if side == 0 {
		// Center on the segment line, already overlapping
		return constraint.ContactConstraint{}, false
	}

	v := ball.Velocity
	normal := segment.Normal().Mul(side)
	if v.Dot(normal) >= -actor.EPSILON {
		// Moving away from, or parallel to, the segment
		return constraint.ContactConstraint{}, false
	}

	d := segment.Direction()
	offset := normal.Mul(ball.Radius())
	q1 := segment.P1().Add(offset)
	w := q1.Sub(ball.Position)

	// Never zero here: v has a component along the normal
	det := actor.Cross(v, d)
	s := actor.Cross(w, d) / det
	u := actor.Cross(w, v) / det

	if u < 0 || u > 1 || s < 0 || s > budget {
		return constraint.ContactConstraint{}, false
	}

	center := q1.Add(d.Mul(u))

	return constraint.ContactConstraint{
		Kind:    constraint.ContactSegment,
		Time:    s,
		Center:  center,
		Point:   center.Sub(offset),
		Normal:  normal,
		Tangent: [2]mgl64.Vec2{segment.P1(), segment.P2()},
		Segment: segment,
	}, true
}

// CornerTOI computes when the ball first touches corner, an endpoint of
// segment, within budget ticks.
//
// Substituting center + v*s into |p - corner|² = r² gives
//
//	(v·v) s² + 2 v·(center - corner) s + |center - corner|² - r² = 0
//
// A root is kept when the ball moves toward it (same sign as the velocity on
// each axis), actually travels more than EPSILON to get there, and is
// approaching the corner at that point. The last rule drops the exit root of a
// ball already overlapping the corner.
//
// A trajectory passing within EPSILON of the tangent to the corner circle is a
// graze, not a contact: a ball sliding along a wall, within EPSILON of it,
// never hits the wall's own endpoint.
func CornerTOI(ball actor.Ball, corner mgl64.Vec2, segment *actor.Segment, budget float64) (constraint.ContactConstraint, bool) {
	v := ball.Velocity
	r := ball.Radius()

	a := v.Dot(v)
	if a == 0 {
		return constraint.ContactConstraint{}, false
	}
	f := ball.Position.Sub(corner)

	// Distance from the corner to the trajectory line
	miss := math.Abs(actor.Cross(f, v)) / math.Sqrt(a)
	if miss >= r-actor.EPSILON {
		return constraint.ContactConstraint{}, false
	}

	b := 2 * v.Dot(f)
	c := f.Dot(f) - r*r

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return constraint.ContactConstraint{}, false
	}
	sq := math.Sqrt(discriminant)

	// Smallest root first
	for _, s := range [2]float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
		if s > budget {
			continue
		}

		center := ball.Position.Add(v.Mul(s))
		travel := center.Sub(ball.Position)
		if !sameDirection(travel, v) || travel.Len() <= actor.EPSILON {
			continue
		}

		normal := center.Sub(corner).Mul(1 / r)
		if v.Dot(normal) >= -actor.EPSILON {
			continue
		}

		return constraint.ContactConstraint{
			Kind:    constraint.ContactCorner,
			Time:    s,
			Center:  center,
			Point:   corner,
			Normal:  normal,
			Tangent: [2]mgl64.Vec2{corner, corner.Add(actor.Perp(normal))},
			Segment: segment,
		}, true
	}

	return constraint.ContactConstraint{}, false
}

// sameDirection reports whether travel never points against v on any axis
func sameDirection(travel, v mgl64.Vec2) bool {
	return travel.X()*v.X() >= 0 && travel.Y()*v.Y() >= 0
}

// Collide runs the flat and corner tests of every candidate segment and
// returns the set of earliest contacts. The manifold is empty when the ball
// flies freely for the whole budget.
func Collide(ball actor.Ball, segments []*actor.Segment, budget float64) Manifold {
	var manifold Manifold

	speed := ball.Velocity.Len()
	if speed == 0 || budget <= 0 {
		return manifold
	}

	for _, segment := range segments {
		best, found := SegmentTOI(ball, segment, budget)

		for _, corner := range [2]mgl64.Vec2{segment.P1(), segment.P2()} {
			contact, ok := CornerTOI(ball, corner, segment, budget)
			if ok && (!found || contact.Time < best.Time) {
				best, found = contact, true
			}
		}

		if found {
			manifold.Add(best, speed)
		}
	}

	return manifold
}
