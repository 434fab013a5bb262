package optics

// Path is an ordered polyline, as produced by TracePath. Escaped marks paths
// whose last point is the end of an escape segment rather than a reflection.
type Path struct {
	Points  []Point
	Escaped bool
}

// Translate returns a copy of the path moved by (x, y).
func (p Path) Translate(x, y float64) Path {
	translated := Path{Points: make([]Point, len(p.Points)), Escaped: p.Escaped}
	for i, pt := range p.Points {
		pt.Translate(x, y)
		translated.Points[i] = pt
	}
	return translated
}

// BoundingBox returns the box enclosing every vertex. An empty path yields the
// zero box.
func (p Path) BoundingBox() Box {
	if len(p.Points) == 0 {
		return Box{}
	}
	first := p.Points[0]
	box := Box{MinX: first.X, MinY: first.Y, MaxX: first.X, MaxY: first.Y}
	for _, pt := range p.Points[1:] {
		box = box.Extend(pt)
	}
	return box
}

// Length is the summed length of the segments.
func (p Path) Length() float64 {
	total := 0.0
	for i := 1; i < len(p.Points); i++ {
		total += p.Points[i].Distance(p.Points[i-1])
	}
	return total
}

// Bounces is the number of reflection points: every point after the origin,
// except the escape end.
func (p Path) Bounces() int {
	n := len(p.Points) - 1
	if p.Escaped {
		n--
	}
	return max(n, 0)
}
