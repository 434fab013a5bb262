package optics

import "fmt"

// Scene owns an ordered list of shapes. Shapes are appended, never removed;
// an Impact refers back to its shape by index.
type Scene struct {
	shapes []Shape
}

func NewScene(shapes ...Shape) *Scene {
	s := &Scene{}
	for _, shape := range shapes {
		s.Add(shape)
	}
	return s
}

// Add appends a shape. nil is ignored.
func (s *Scene) Add(shape Shape) {
	if shape == nil {
		return
	}
	s.shapes = append(s.shapes, shape)
}

func (s *Scene) Len() int {
	return len(s.shapes)
}

// Shape returns the i-th shape in insertion order.
func (s *Scene) Shape(i int) Shape {
	return s.shapes[i]
}

// Shapes returns a copy of the shape list.
func (s *Scene) Shapes() []Shape {
	out := make([]Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

func (s *Scene) TotalArea() float64 {
	total := 0.0
	for _, shape := range s.shapes {
		total += shape.Area()
	}
	return total
}

func (s *Scene) TotalPerimeter() float64 {
	total := 0.0
	for _, shape := range s.shapes {
		total += shape.Perimeter()
	}
	return total
}

// BoundingBox is the union of every shape's box. An empty scene yields the
// degenerate box (0, 0, 0, 0).
func (s *Scene) BoundingBox() Box {
	if len(s.shapes) == 0 {
		return Box{}
	}
	box := s.shapes[0].BoundingBox()
	for _, shape := range s.shapes[1:] {
		box = box.Union(shape.BoundingBox())
	}
	return box
}

// TransformAll replaces every shape with its transformed counterpart. If any
// transform fails the scene is left unchanged.
func (s *Scene) TransformAll(t AffineTransform) error {
	next := make([]Shape, len(s.shapes))
	for i, shape := range s.shapes {
		transformed, err := shape.Transform(t)
		if err != nil {
			return fmt.Errorf("transforming shape %d: %w", i, err)
		}
		next[i] = transformed
	}
	s.shapes = next
	return nil
}

// TranslateAll moves every shape by (dx, dy).
func (s *Scene) TranslateAll(dx, dy float64) error {
	return s.TransformAll(Translation(dx, dy))
}
