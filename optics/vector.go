package optics

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vector2 is a 2D vector value. Every operation returns a new vector.
type Vector2 r2.Vec

// V is a shorthand constructor for Vector2
func V(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(u Vector2) Vector2 {
	return Vector2(r2.Add(r2.Vec(v), r2.Vec(u)))
}

func (v Vector2) Sub(u Vector2) Vector2 {
	return Vector2(r2.Sub(r2.Vec(v), r2.Vec(u)))
}

func (v Vector2) Scale(k float64) Vector2 {
	return Vector2(r2.Scale(k, r2.Vec(v)))
}

func (v Vector2) Dot(u Vector2) float64 {
	return r2.Dot(r2.Vec(v), r2.Vec(u))
}

// Norm is the Euclidean length sqrt(x²+y²).
func (v Vector2) Norm() float64 {
	return r2.Norm(r2.Vec(v))
}

// Normalize returns the unit vector pointing along v.
//
// A zero-length vector has no direction: the zero vector is returned and a
// warning is logged. Rays built from it never hit anything.
func (v Vector2) Normalize() Vector2 {
	n := v.Norm()
	if n == 0 {
		logger.Warn("normalizing zero-length vector")
		return Vector2{}
	}
	return v.Scale(1 / n)
}

// LeftPerpendicular rotates v by +90°: (-y, x).
func (v Vector2) LeftPerpendicular() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

// IsZero reports whether both components are exactly zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vector2) String() string {
	return fmt.Sprintf("Vector2(x=%.3f, y=%.3f)", v.X, v.Y)
}
