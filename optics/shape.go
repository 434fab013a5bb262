package optics

import (
	"errors"
	"math"
)

var (
	ErrNonPositiveRadius = errors.New("radius must be > 0")
	ErrNonPositiveSize   = errors.New("width and height must be > 0")
	ErrNonPositiveScale  = errors.New("scale factor must be > 0")
)

// Box is an axis-aligned bounding box (xmin, ymin, xmax, ymax).
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

func (b Box) Width() float64  { return b.MaxX - b.MinX }
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Extend grows b so that it contains p.
func (b Box) Extend(p Point) Box {
	return b.Union(Box{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y})
}

// Hit is the nearest intersection of a ray with a single shape.
type Hit struct {
	// Ray parameter of the intersection, P = O + T·D
	T float64
	// Intersection point
	Point Point
	// Unit outward normal at Point
	Normal Vector2
}

// Shape is implemented by Circle and Rectangle only. Every variant answers the
// same metric, containment, transform and ray queries, so callers never need
// to probe for capabilities.
type Shape interface {
	Area() float64
	Perimeter() float64
	BoundingBox() Box
	// Contains reports whether p lies inside or on the boundary.
	Contains(p Point) bool
	// Transform returns a new shape. The receiver is never modified.
	Transform(t AffineTransform) (Shape, error)
	// Intersect returns the nearest hit with t ≥ 0.
	Intersect(ray Ray) (Hit, bool)

	// intersect returns the nearest hit with t ≥ tMin. It also seals the set
	// of implementations to this package.
	intersect(ray Ray, tMin float64) (Hit, bool)
}
