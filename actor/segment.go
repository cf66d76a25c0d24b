package actor

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrDegenerateSegment = errors.New("actor: degenerate segment")

// Segment is a static wall of the obstacle field.
// It is immutable once built; use NewSegment to get a valid one.
type Segment struct {
	p1 mgl64.Vec2
	p2 mgl64.Vec2
}

// NewSegment builds a segment from p1 to p2.
// Segments shorter than EPSILON are rejected with ErrDegenerateSegment.
func NewSegment(p1, p2 mgl64.Vec2) (Segment, error) {
	if p2.Sub(p1).Len() <= EPSILON {
		return Segment{}, ErrDegenerateSegment
	}

	return Segment{p1: p1, p2: p2}, nil
}

func (s Segment) P1() mgl64.Vec2 {
	return s.p1
}

func (s Segment) P2() mgl64.Vec2 {
	return s.p2
}

// Direction returns p2 - p1 (not normalized)
func (s Segment) Direction() mgl64.Vec2 {
	return s.p2.Sub(s.p1)
}

func (s Segment) Length() float64 {
	return s.Direction().Len()
}

// Normal returns the unit vector Perp(p2 - p1).
// Points p with Side(p) > 0 lie in the half-plane this normal points to.
func (s Segment) Normal() mgl64.Vec2 {
	return Perp(s.Direction()).Normalize()
}

// Side returns the sign of Cross(p - p1, p2 - p1): 1, -1, or 0 when p is on the line
func (s Segment) Side(p mgl64.Vec2) float64 {
	c := Cross(p.Sub(s.p1), s.Direction())
	switch {
	case c > 0:
		return 1
	case c < 0:
		return -1
	}
	return 0
}

// ClosestPoint returns the point of the segment nearest to p
func (s Segment) ClosestPoint(p mgl64.Vec2) mgl64.Vec2 {
	ab := s.Direction()
	t := p.Sub(s.p1).Dot(ab) / ab.Dot(ab)
	t = mgl64.Clamp(t, 0, 1)

	return s.p1.Add(ab.Mul(t))
}

// Distance returns the euclidean distance between p and the segment
func (s Segment) Distance(p mgl64.Vec2) float64 {
	return p.Sub(s.ClosestPoint(p)).Len()
}

func (s Segment) AABB() AABB {
	return boundsOf(s.p1, s.p2)
}
