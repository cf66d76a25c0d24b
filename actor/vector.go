package actor

import "github.com/go-gl/mathgl/mgl64"

// EPSILON is the geometric tolerance shared by the whole collision pipeline:
// contact distances, time ties and segment degeneracy are compared against it.
const EPSILON = 1e-5

// Cross returns the z component of the 3D cross product of a and b.
// Its sign tells on which side of a the vector b lies.
func Cross(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// Perp rotates v by a quarter turn: (x, y) -> (y, -x)
func Perp(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{v.Y(), -v.X()}
}
