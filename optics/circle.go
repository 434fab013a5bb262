package optics

import (
	"fmt"
	"math"
)

const circleTolerance = 1e-12

// Circle is a disc with a strictly positive radius.
type Circle struct {
	center Point
	radius float64
}

var _ Shape = Circle{}

func NewCircle(center Point, radius float64) (Circle, error) {
	if !(radius > 0) {
		return Circle{}, fmt.Errorf("circle radius %v: %w", radius, ErrNonPositiveRadius)
	}
	return Circle{center: center, radius: radius}, nil
}

func (c Circle) Center() Point   { return c.center }
func (c Circle) Radius() float64 { return c.radius }

func (c *Circle) SetRadius(r float64) error {
	if !(r > 0) {
		return fmt.Errorf("circle radius %v: %w", r, ErrNonPositiveRadius)
	}
	c.radius = r
	return nil
}

// Scale multiplies the radius in place.
func (c *Circle) Scale(k float64) error {
	if !(k > 0) {
		return fmt.Errorf("circle scale %v: %w", k, ErrNonPositiveScale)
	}
	c.radius *= k
	return nil
}

func (c Circle) Area() float64      { return math.Pi * c.radius * c.radius }
func (c Circle) Perimeter() float64 { return 2 * math.Pi * c.radius }

func (c Circle) BoundingBox() Box {
	return Box{
		MinX: c.center.X - c.radius,
		MinY: c.center.Y - c.radius,
		MaxX: c.center.X + c.radius,
		MaxY: c.center.Y + c.radius,
	}
}

func (c Circle) Contains(p Point) bool {
	v := p.Sub(c.center)
	return v.Dot(v) <= c.radius*c.radius+circleTolerance
}

// Transform maps the center through t and scales the radius by sqrt(|det M|).
// Anisotropic transforms still produce a circle, never an ellipse. A singular
// linear part leaves the radius unchanged.
func (c Circle) Transform(t AffineTransform) (Shape, error) {
	k := math.Sqrt(math.Abs(t.Det()))
	if k == 0 {
		k = 1
	}
	return NewCircle(t.ApplyPoint(c.center), c.radius*k)
}

func (c Circle) Intersect(ray Ray) (Hit, bool) {
	return c.intersect(ray, 0)
}

// intersect solves |O + tD - C|² = r² for t.
func (c Circle) intersect(ray Ray, tMin float64) (Hit, bool) {
	d := ray.Direction
	oc := ray.Origin.Sub(c.center)
	a := d.Dot(d)
	if a == 0 {
		return Hit{}, false
	}
	b := 2 * d.Dot(oc)
	cc := oc.Dot(oc) - c.radius*c.radius
	disc := b*b - 4*a*cc
	if disc < 0 {
		return Hit{}, false
	}
	s := math.Sqrt(disc)
	t1 := (-b - s) / (2 * a)
	t2 := (-b + s) / (2 * a)

	t := math.Inf(1)
	for _, cand := range [2]float64{t1, t2} {
		if cand >= tMin && cand < t {
			t = cand
		}
	}
	if math.IsInf(t, 1) {
		return Hit{}, false
	}
	p := ray.At(t)
	return Hit{
		T:      t,
		Point:  p,
		Normal: p.Sub(c.center).Normalize(),
	}, true
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle(center=%v, radius=%.3f)", c.center, c.radius)
}
