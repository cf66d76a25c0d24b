package constraint

import (
	"github.com/akmonengine/putt/actor"
	"github.com/go-gl/mathgl/mgl64"
)

type ContactKind uint8

const (
	// ContactSegment is a hit on the flat part of a segment
	ContactSegment ContactKind = iota
	// ContactCorner is a hit on the rounded end of a segment
	ContactCorner
)

func (k ContactKind) String() string {
	switch k {
	case ContactSegment:
		return "segment"
	case ContactCorner:
		return "corner"
	}
	return "unknown"
}

// ContactConstraint is one ball/obstacle contact found by the narrow phase.
type ContactConstraint struct {
	Kind ContactKind
	// Time of impact, as a fraction of a tick from the start of the substep
	Time float64
	// Time of impact from the start of the tick, filled in by the stepper
	At float64
	// Center of the ball at the time of impact
	Center mgl64.Vec2
	// Point where the ball touches the obstacle
	Point mgl64.Vec2
	// Unit normal, from the obstacle toward the ball center
	Normal mgl64.Vec2
	// Two points on the tangent line at Point. For a flat hit these are the
	// segment endpoints, for a corner hit a synthetic line through the corner.
	Tangent [2]mgl64.Vec2
	Segment *actor.Segment
}

// Separating reports whether velocity leaves the contact surface (or slides along it)
func (c *ContactConstraint) Separating(velocity mgl64.Vec2) bool {
	return velocity.Dot(c.Normal) >= 0
}

// SolveVelocity mirrors velocity across the tangent line:
// the tangential part is kept and the normal part is flipped.
func (c *ContactConstraint) SolveVelocity(velocity mgl64.Vec2) mgl64.Vec2 {
	d := c.Tangent[1].Sub(c.Tangent[0])
	dd := d.Dot(d)
	if dd == 0 {
		return velocity
	}
	n := actor.Perp(d)

	proj := d.Mul(velocity.Dot(d) / dd)
	projN := n.Mul(velocity.Dot(n) / n.Dot(n))

	return snapSmallComponents(proj.Sub(projN))
}
