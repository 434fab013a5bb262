package optics

import (
	"fmt"
	"math"
)

// Point is a mutable position in the scene plane.
type Point struct {
	X, Y float64
}

// P is a shorthand constructor for Point
func P(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Vector returns the position vector of p.
func (p Point) Vector() Vector2 {
	return Vector2{X: p.X, Y: p.Y}
}

// Translate moves p in place.
func (p *Point) Translate(dx, dy float64) {
	p.X += dx
	p.Y += dy
}

func (p *Point) SetX(x float64) { p.X = x }
func (p *Point) SetY(y float64) { p.Y = y }

// Offset returns p displaced by v. p is left untouched.
func (p Point) Offset(v Vector2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector going from q to p.
func (p Point) Sub(q Point) Vector2 {
	return Vector2{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("Point(x=%.3f, y=%.3f)", p.X, p.Y)
}
