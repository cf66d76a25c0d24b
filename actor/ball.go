package actor

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrInvalidRadius = errors.New("actor: ball radius must be positive")

// Ball is the player's ball: a circle moving at constant velocity between contacts.
type Ball struct {
	// Center of the ball, in field coordinates
	Position mgl64.Vec2
	// Displacement per tick
	Velocity mgl64.Vec2

	radius float64
}

// NewBall creates a ball at rest. The radius cannot change afterwards.
func NewBall(position mgl64.Vec2, radius float64) (*Ball, error) {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, ErrInvalidRadius
	}

	return &Ball{
		Position: position,
		radius:   radius,
	}, nil
}

func (b *Ball) Radius() float64 {
	return b.radius
}

// SetVelocity is called by the launcher when the player releases a flick
func (b *Ball) SetVelocity(velocity mgl64.Vec2) {
	b.Velocity = velocity
}

// Moving reports whether the ball has a non-zero velocity
func (b *Ball) Moving() bool {
	return b.Velocity.LenSqr() > 0
}

// SweptAABB covers the ball at its current position and after moving
// for budget ticks at its current velocity.
func (b *Ball) SweptAABB(budget float64) AABB {
	projected := b.Position.Add(b.Velocity.Mul(budget))

	return boundsOf(b.Position, projected).Expand(b.radius)
}
