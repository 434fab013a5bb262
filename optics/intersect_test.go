package optics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersect(t *testing.T) {
	circle := Circle{center: P(0, 0), radius: 1}
	rect := Rectangle{corner: P(0, 0), width: 2, height: 1}

	tests := []struct {
		name   string
		shape  Shape
		ray    Ray
		hit    bool
		t      float64
		point  Point
		normal Vector2
	}{
		{"circle_head_on", circle, Ray{P(-2, 0), V(1, 0)}, true, 1, P(-1, 0), V(-1, 0)},
		{"circle_from_above", circle, Ray{P(0, 5), V(0, -1)}, true, 4, P(0, 1), V(0, 1)},
		{"circle_non_unit_direction", circle, Ray{P(-2, 0), V(2, 0)}, true, 0.5, P(-1, 0), V(-1, 0)},
		{"circle_from_inside", circle, Ray{P(0, 0), V(1, 0)}, true, 1, P(1, 0), V(1, 0)},
		{"circle_pointing_away", circle, Ray{P(-2, 0), V(-1, 0)}, false, 0, Point{}, Vector2{}},
		{"circle_miss", circle, Ray{P(-2, 2), V(1, 0)}, false, 0, Point{}, Vector2{}},
		{"rect_left_face", rect, Ray{P(-1, 0.5), V(1, 0)}, true, 1, P(0, 0.5), V(-1, 0)},
		{"rect_right_face", rect, Ray{P(3, 0.5), V(-1, 0)}, true, 1, P(2, 0.5), V(1, 0)},
		{"rect_bottom_face", rect, Ray{P(1, -1), V(0, 1)}, true, 1, P(1, 0), V(0, -1)},
		{"rect_top_face", rect, Ray{P(1, 2), V(0, -1)}, true, 1, P(1, 1), V(0, 1)},
		{"rect_oblique_bottom", rect, Ray{P(1, -1), V(0.5, 1)}, true, 1, P(1.5, 0), V(0, -1)},
		{"rect_from_inside", rect, Ray{P(1, 0.5), V(1, 0)}, true, 1, P(2, 0.5), V(1, 0)},
		{"rect_parallel_outside", rect, Ray{P(-1, 2), V(1, 0)}, false, 0, Point{}, Vector2{}},
		{"rect_behind", rect, Ray{P(3, 0.5), V(1, 0)}, false, 0, Point{}, Vector2{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert := assert.New(t)
			hit, ok := test.shape.Intersect(test.ray)
			assert.Equal(test.hit, ok)
			if !test.hit {
				return
			}
			assert.InDelta(test.t, hit.T, 1e-9)
			assertPointNear(t, test.point, hit.Point)
			assert.InDelta(test.normal.X, hit.Normal.X, 1e-9)
			assert.InDelta(test.normal.Y, hit.Normal.Y, 1e-9)
		})
	}
}

// A ray aimed at the center of a circle from outside travels |O-C| - r.
func TestCircleDistanceToCenter(t *testing.T) {
	circle := Circle{center: P(1, -2), radius: 1.5}
	origins := []Point{P(10, -2), P(-7, 3), P(1, 20), P(4.5, -6.25)}

	for _, origin := range origins {
		t.Run(origin.String(), func(t *testing.T) {
			ray := Ray{Origin: origin, Direction: circle.Center().Sub(origin).Normalize()}
			hit, ok := circle.Intersect(ray)
			assert.True(t, ok)
			assert.InDelta(t, origin.Distance(circle.Center())-circle.Radius(), hit.T, 1e-9)
			assert.InDelta(t, 1.0, hit.Normal.Norm(), 1e-12)
		})
	}
}

// Every hit lies on the boundary and its normal is unit length and faces
// against the incoming ray.
func TestHitOnBoundary(t *testing.T) {
	shapes := []Shape{
		Circle{center: P(0, 0), radius: 2},
		Rectangle{corner: P(-1, -3), width: 2, height: 6},
	}
	for _, shape := range shapes {
		for i := 0; i < 36; i++ {
			theta := float64(i) * math.Pi / 18
			origin := P(10*math.Cos(theta), 10*math.Sin(theta))
			ray := Ray{Origin: origin, Direction: P(0, 0).Sub(origin).Normalize()}
			hit, ok := shape.Intersect(ray)
			if !assert.True(t, ok) {
				continue
			}
			assert.True(t, shape.Contains(hit.Point), "%v not on %v", hit.Point, shape)
			assert.InDelta(t, 1.0, hit.Normal.Norm(), 1e-12)
			assert.LessOrEqual(t, ray.Direction.Dot(hit.Normal), 1e-12)
		}
	}
}
