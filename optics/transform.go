package optics

import "math"

// AffineTransform is a 2x2 linear map followed by a translation:
//
//	| A  B  TX |
//	| C  D  TY |
//
// so that Apply(P) = M·P + t.
type AffineTransform struct {
	A, B, C, D float64
	TX, TY     float64
}

// Identity returns the transform leaving every point in place.
func Identity() AffineTransform {
	return AffineTransform{A: 1, D: 1}
}

// Translation returns a pure translation by (dx, dy).
func Translation(dx, dy float64) AffineTransform {
	return AffineTransform{A: 1, D: 1, TX: dx, TY: dy}
}

// Rotation returns a counter-clockwise rotation about the origin.
func Rotation(theta float64) AffineTransform {
	cos := math.Cos(theta)
	sin := math.Sin(theta)
	return AffineTransform{A: cos, B: -sin, C: sin, D: cos}
}

// Scale returns an axis-aligned scaling about the origin.
func Scale(sx, sy float64) AffineTransform {
	return AffineTransform{A: sx, D: sy}
}

// ApplyPoint maps p through the transform. p is not modified.
func (t AffineTransform) ApplyPoint(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.TX,
		Y: t.C*p.X + t.D*p.Y + t.TY,
	}
}

// ApplyVector maps v through the linear part only.
func (t AffineTransform) ApplyVector(v Vector2) Vector2 {
	return Vector2{
		X: t.A*v.X + t.B*v.Y,
		Y: t.C*v.X + t.D*v.Y,
	}
}

// Compose returns t∘other: the result applies other first, then t.
func (t AffineTransform) Compose(other AffineTransform) AffineTransform {
	return AffineTransform{
		A:  t.A*other.A + t.B*other.C,
		B:  t.A*other.B + t.B*other.D,
		C:  t.C*other.A + t.D*other.C,
		D:  t.C*other.B + t.D*other.D,
		TX: t.A*other.TX + t.B*other.TY + t.TX,
		TY: t.C*other.TX + t.D*other.TY + t.TY,
	}
}

// Det is the determinant of the linear part.
func (t AffineTransform) Det() float64 {
	return t.A*t.D - t.B*t.C
}

// Inverse returns the inverse transform, if it exists.
func (t AffineTransform) Inverse() (AffineTransform, bool) {
	det := t.Det()
	if math.Abs(det) < 1e-12 {
		return AffineTransform{}, false
	}
	inv := 1 / det
	return AffineTransform{
		A:  t.D * inv,
		B:  -t.B * inv,
		C:  -t.C * inv,
		D:  t.A * inv,
		TX: (t.B*t.TY - t.D*t.TX) * inv,
		TY: (t.C*t.TX - t.A*t.TY) * inv,
	}, true
}
