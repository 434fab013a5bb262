package optics

import "errors"

var ErrZeroDirection = errors.New("ray direction has zero length")

// Ray is parametrized as P(t) = Origin + t·Direction, t ≥ 0. Direction does
// not need to be unit length.
type Ray struct {
	Origin    Point
	Direction Vector2
}

// NewRay rejects zero-length directions, which could never hit anything.
func NewRay(origin Point, direction Vector2) (Ray, error) {
	if direction.IsZero() {
		return Ray{}, ErrZeroDirection
	}
	return Ray{Origin: origin, Direction: direction}, nil
}

// UnitDirection returns a normalized copy of Direction.
func (r Ray) UnitDirection() Vector2 {
	return r.Direction.Normalize()
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Point {
	return r.Origin.Offset(r.Direction.Scale(t))
}
