package constraint

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// VelocitySnapThreshold clamps nearly-zero velocity components to exactly zero
// after a reflection, so axis-aligned bounces stay axis-aligned.
const VelocitySnapThreshold = 1e-9

// Solve reflects velocity off every contact, in discovery order.
// Each reflection operates on the velocity produced by the previous one.
// A contact the velocity already separates from is skipped: two contacts
// sharing a normal (a wall made of several collinear segments, or the same
// corner reached through two segments) must not cancel each other out.
func Solve(velocity mgl64.Vec2, contacts []ContactConstraint) mgl64.Vec2 {
	for i := range contacts {
		c := &contacts[i]
		if c.Separating(velocity) {
			continue
		}
		velocity = c.SolveVelocity(velocity)
	}

	return velocity
}

func snapSmallComponents(v mgl64.Vec2) mgl64.Vec2 {
	if math.Abs(v[0]) < VelocitySnapThreshold {
		v[0] = 0
	}
	if math.Abs(v[1]) < VelocitySnapThreshold {
		v[1] = 0
	}

	return v
}
