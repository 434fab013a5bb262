package optics

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	// Upper bound on accepted impact distances
	INF = 1e9
	// Impacts closer than this are tangential or self re-collisions and are ignored
	T_MIN = 1e-6
	// Distance a bounced ray is pushed off the surface along the outward normal
	BOUNCE_OFFSET = 1e-9
	// Length of the segment drawn when a ray leaves the scene
	ESCAPE_LENGTH = 1000.0
)

// Impact is the nearest intersection of a ray with a scene.
type Impact struct {
	// The shape that was struck. Owned by the scene.
	Shape Shape
	// Index of Shape within the scene, -1 when nothing was hit
	Index int
	// Distance along the unit ray direction
	T float64
	// Position of the impact
	Point Point
	// Unit outward normal at Point
	Normal Vector2
}

var NoImpact = Impact{Index: -1, T: INF}

// Ok reports whether the impact refers to a struck shape.
func (i Impact) Ok() bool {
	return i.Index >= 0
}

// NearestImpact tests the ray against every shape and keeps the hit with the
// smallest t inside [tMin, tMax]. The ray direction is normalized first so t
// is a distance.
func (s *Scene) NearestImpact(ray Ray, tMin, tMax float64) Impact {
	unit := Ray{Origin: ray.Origin, Direction: ray.UnitDirection()}
	best := NoImpact
	for i, shape := range s.shapes {
		hit, ok := shape.intersect(unit, tMin)
		if !ok || hit.T > tMax {
			continue
		}
		if !best.Ok() || hit.T < best.T {
			best = Impact{
				Shape:  shape,
				Index:  i,
				T:      hit.T,
				Point:  hit.Point,
				Normal: hit.Normal,
			}
		}
	}
	return best
}

// FirstImpact is NearestImpact over [T_MIN, INF].
func (s *Scene) FirstImpact(ray Ray) Impact {
	return s.NearestImpact(ray, T_MIN, INF)
}

// Reflect mirrors d across the surface with normal n: d - 2(d·n̂)n̂. The
// result is unit length.
func Reflect(d, n Vector2) Vector2 {
	unit := n.Normalize()
	return d.Sub(unit.Scale(2 * d.Dot(unit))).Normalize()
}

// Trace follows a ray through perfect specular reflections and returns the
// points of TracePath.
func (s *Scene) Trace(ray Ray, maxBounces int) ([]Point, error) {
	path, err := s.TracePath(ray, maxBounces)
	if err != nil {
		return nil, err
	}
	return path.Points, nil
}

// TracePath follows a ray through perfect specular reflections.
//
// The returned path is [origin, hit1, hit2, ..., end]. When the ray leaves the
// scene the path ends with a point ESCAPE_LENGTH further along the last
// direction and is marked Escaped. Tracing stops after maxBounces reflections;
// the escape check is still made for the last reflected ray.
func (s *Scene) TracePath(ray Ray, maxBounces int) (Path, error) {
	if maxBounces < 0 {
		return Path{}, fmt.Errorf("max bounces %d must be non-negative", maxBounces)
	}
	if ray.Direction.IsZero() {
		return Path{}, ErrZeroDirection
	}

	current := Ray{Origin: ray.Origin, Direction: ray.UnitDirection()}
	path := Path{Points: []Point{ray.Origin}}
	for bounce := 0; ; bounce++ {
		hit := s.FirstImpact(current)
		if !hit.Ok() {
			logger.Debug("ray escaped scene",
				zap.Int("bounces", bounce),
				zap.Stringer("origin", current.Origin),
				zap.Stringer("direction", current.Direction))
			path.Points = append(path.Points, current.At(ESCAPE_LENGTH))
			path.Escaped = true
			return path, nil
		}
		if bounce == maxBounces {
			return path, nil
		}
		path.Points = append(path.Points, hit.Point)

		reflected := Ray{
			Origin:    hit.Point.Offset(hit.Normal.Scale(BOUNCE_OFFSET)),
			Direction: Reflect(current.Direction, hit.Normal),
		}
		verifyReflectionLaw(current, hit.Normal, reflected)
		current = reflected
	}
}
