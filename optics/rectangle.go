package optics

import (
	"fmt"
	"math"
)

const (
	rectangleTolerance = 1e-12
	// Direction components below this are treated as parallel to the slab.
	parallelEpsilon = 1e-15
)

var faceNormals = [4]Vector2{
	{X: -1, Y: 0}, // xmin
	{X: 1, Y: 0},  // xmax
	{X: 0, Y: -1}, // ymin
	{X: 0, Y: 1},  // ymax
}

// Rectangle is an axis-aligned rectangle anchored at its minimum corner.
type Rectangle struct {
	corner        Point
	width, height float64
}

var _ Shape = Rectangle{}

func NewRectangle(corner Point, width, height float64) (Rectangle, error) {
	if !(width > 0) || !(height > 0) {
		return Rectangle{}, fmt.Errorf("rectangle %vx%v: %w", width, height, ErrNonPositiveSize)
	}
	return Rectangle{corner: corner, width: width, height: height}, nil
}

func (r Rectangle) Corner() Point   { return r.corner }
func (r Rectangle) Width() float64  { return r.width }
func (r Rectangle) Height() float64 { return r.height }

func (r *Rectangle) SetWidth(w float64) error {
	if !(w > 0) {
		return fmt.Errorf("rectangle width %v: %w", w, ErrNonPositiveSize)
	}
	r.width = w
	return nil
}

func (r *Rectangle) SetHeight(h float64) error {
	if !(h > 0) {
		return fmt.Errorf("rectangle height %v: %w", h, ErrNonPositiveSize)
	}
	r.height = h
	return nil
}

// Translate moves the rectangle in place.
func (r *Rectangle) Translate(dx, dy float64) {
	r.corner.Translate(dx, dy)
}

// Scale multiplies width and height in place, keeping the corner fixed.
func (r *Rectangle) Scale(kx, ky float64) error {
	if !(kx > 0) || !(ky > 0) {
		return fmt.Errorf("rectangle scale %v,%v: %w", kx, ky, ErrNonPositiveScale)
	}
	r.width *= kx
	r.height *= ky
	return nil
}

func (r Rectangle) Area() float64      { return r.width * r.height }
func (r Rectangle) Perimeter() float64 { return 2 * (r.width + r.height) }

func (r Rectangle) BoundingBox() Box {
	return Box{
		MinX: r.corner.X,
		MinY: r.corner.Y,
		MaxX: r.corner.X + r.width,
		MaxY: r.corner.Y + r.height,
	}
}

// Contains is inclusive of the boundary.
func (r Rectangle) Contains(p Point) bool {
	b := r.BoundingBox()
	return b.MinX-rectangleTolerance <= p.X && p.X <= b.MaxX+rectangleTolerance &&
		b.MinY-rectangleTolerance <= p.Y && p.Y <= b.MaxY+rectangleTolerance
}

// Transform maps the four corners through t and returns their axis-aligned
// bounding box. A rotated rectangle therefore grows.
func (r Rectangle) Transform(t AffineTransform) (Shape, error) {
	b := r.BoundingBox()
	corners := [4]Point{
		{X: b.MinX, Y: b.MinY},
		{X: b.MaxX, Y: b.MinY},
		{X: b.MinX, Y: b.MaxY},
		{X: b.MaxX, Y: b.MaxY},
	}
	first := t.ApplyPoint(corners[0])
	out := Box{MinX: first.X, MinY: first.Y, MaxX: first.X, MaxY: first.Y}
	for _, c := range corners[1:] {
		out = out.Extend(t.ApplyPoint(c))
	}
	return NewRectangle(Point{X: out.MinX, Y: out.MinY}, out.Width(), out.Height())
}

func (r Rectangle) Intersect(ray Ray) (Hit, bool) {
	return r.intersect(ray, 0)
}

// slab returns the parametric interval during which o + t·d lies within
// [lo, hi]. A direction parallel to the slab yields (-inf, +inf) when the
// origin is inside it and no interval otherwise.
func slab(o, d, lo, hi float64) (float64, float64, bool) {
	if math.Abs(d) < parallelEpsilon {
		if o < lo || o > hi {
			return 0, 0, false
		}
		return math.Inf(-1), math.Inf(1), true
	}
	inv := 1 / d
	t1 := (lo - o) * inv
	t2 := (hi - o) * inv
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2, true
}

func (r Rectangle) intersect(ray Ray, tMin float64) (Hit, bool) {
	b := r.BoundingBox()
	o, d := ray.Origin, ray.Direction

	txMin, txMax, ok := slab(o.X, d.X, b.MinX, b.MaxX)
	if !ok {
		return Hit{}, false
	}
	tyMin, tyMax, ok := slab(o.Y, d.Y, b.MinY, b.MaxY)
	if !ok {
		return Hit{}, false
	}
	tEnter := math.Max(txMin, tyMin)
	tExit := math.Min(txMax, tyMax)
	if tExit < tMin || tEnter > tExit {
		return Hit{}, false
	}
	t := tEnter
	if t < tMin {
		t = tExit
	}
	if math.IsInf(t, 0) {
		return Hit{}, false
	}

	p := ray.At(t)
	return Hit{T: t, Point: p, Normal: r.faceNormal(p)}, true
}

// faceNormal picks the face whose boundary value is closest to p. Ties go to
// the first face in xmin, xmax, ymin, ymax order.
func (r Rectangle) faceNormal(p Point) Vector2 {
	b := r.BoundingBox()
	deviations := [4]float64{
		math.Abs(p.X - b.MinX),
		math.Abs(p.X - b.MaxX),
		math.Abs(p.Y - b.MinY),
		math.Abs(p.Y - b.MaxY),
	}
	best := 0
	for i := 1; i < len(deviations); i++ {
		if deviations[i] < deviations[best] {
			best = i
		}
	}
	return faceNormals[best]
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(corner=%v, width=%.3f, height=%.3f)", r.corner, r.width, r.height)
}
