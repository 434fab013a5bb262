// Package scenario builds reproducible scenes for scans and traces.
package scenario

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/jdginn/go-lidar2d/optics"
)

// Thickness of the walls enclosing generated scenes
const WALL_THICKNESS = 0.12

// Thickness of the interior partitions of a labyrinth
const PARTITION_THICKNESS = 0.10

func mustRectangle(x, y, w, h float64) optics.Rectangle {
	r, err := optics.NewRectangle(optics.P(x, y), w, h)
	if err != nil {
		panic(err)
	}
	return r
}

func mustCircle(x, y, r float64) optics.Circle {
	c, err := optics.NewCircle(optics.P(x, y), r)
	if err != nil {
		panic(err)
	}
	return c
}

// Example is a closed 8 x 5 room with a unit circle slightly right of center.
func Example() *optics.Scene {
	return optics.NewScene(
		mustRectangle(-4, -2.5, 8, 0.1), // floor
		mustRectangle(-4, 2.4, 8, 0.1),  // ceiling
		mustRectangle(-4, -2.5, 0.1, 5), // left
		mustRectangle(3.9, -2.5, 0.1, 5),
		mustCircle(0.5, 0, 1),
	)
}

// Forward is a road seen from a vehicle at the origin facing +x: two long
// side walls, a circular obstacle ahead and a wall across the far end.
func Forward() *optics.Scene {
	return optics.NewScene(
		mustRectangle(-5, -2.5, 16, 0.1),
		mustRectangle(-5, 2.4, 16, 0.1),
		mustCircle(3, 0, 1),
		mustRectangle(8, -2, 0.1, 4),
	)
}

// enclosure returns four walls lining the inside of bounds.
func enclosure(bounds optics.Box) []optics.Shape {
	w, h := bounds.Width(), bounds.Height()
	return []optics.Shape{
		mustRectangle(bounds.MinX, bounds.MinY, w, WALL_THICKNESS),
		mustRectangle(bounds.MinX, bounds.MaxY-WALL_THICKNESS, w, WALL_THICKNESS),
		mustRectangle(bounds.MinX, bounds.MinY, WALL_THICKNESS, h),
		mustRectangle(bounds.MaxX-WALL_THICKNESS, bounds.MinY, WALL_THICKNESS, h),
	}
}

// sampler draws every random quantity of a scene from one seeded source, so
// a seed always reproduces the same scene.
type sampler struct {
	src rand.Source
}

func newSampler(seed uint64) *sampler {
	return &sampler{src: rand.NewSource(seed)}
}

func (s *sampler) uniform(min, max float64) float64 {
	return distuv.Uniform{Min: min, Max: max, Src: s.src}.Rand()
}

func (s *sampler) coin() bool {
	return s.uniform(0, 1) < 0.5
}

// LabyrinthBounds is the outer box of Labyrinth.
var LabyrinthBounds = optics.Box{MinX: -8, MinY: -5, MaxX: 8, MaxY: 5}

// Labyrinth is an enclosed 16 x 10 box with six thin partitions, each
// vertical or horizontal with equal chance, and seven circular obstacles.
func Labyrinth(seed uint64) *optics.Scene {
	s := newSampler(seed)
	b := LabyrinthBounds
	scene := optics.NewScene(enclosure(b)...)

	for i := 0; i < 6; i++ {
		if s.coin() {
			x := s.uniform(b.MinX+1, b.MaxX-1)
			h := s.uniform(1, 4)
			y := s.uniform(b.MinY+0.5, b.MaxY-h-0.5)
			scene.Add(mustRectangle(x, y, PARTITION_THICKNESS, h))
		} else {
			y := s.uniform(b.MinY+1, b.MaxY-1)
			w := s.uniform(1, 6)
			x := s.uniform(b.MinX+0.5, b.MaxX-w-0.5)
			scene.Add(mustRectangle(x, y, w, PARTITION_THICKNESS))
		}
	}

	for i := 0; i < 7; i++ {
		r := s.uniform(0.25, 0.9)
		cx := s.uniform(b.MinX+1, b.MaxX-1)
		cy := s.uniform(b.MinY+1, b.MaxY-1)
		scene.Add(mustCircle(cx, cy, r))
	}
	return scene
}

// MIN_RANDOM_SIZE is the smallest width and height Random accepts.
const MIN_RANDOM_SIZE = 5

// DefaultRandomBounds is the box used by Random when callers have no
// preference.
var DefaultRandomBounds = optics.Box{MinX: -10, MinY: -6, MaxX: 10, MaxY: 6}

// Random is an enclosed box filled with nRects thin rectangles, randomly
// oriented along x or y, and nCircles circles. Obstacles keep a margin of one
// unit from the walls. bounds must be at least 5 wide and high.
func Random(bounds optics.Box, nRects, nCircles int, seed uint64) (*optics.Scene, error) {
	if bounds.Width() < MIN_RANDOM_SIZE || bounds.Height() < MIN_RANDOM_SIZE {
		return nil, fmt.Errorf("random scene bounds %v must be at least %d x %d", bounds, MIN_RANDOM_SIZE, MIN_RANDOM_SIZE)
	}
	if nRects < 0 || nCircles < 0 {
		return nil, fmt.Errorf("obstacle counts %d, %d must be non-negative", nRects, nCircles)
	}

	s := newSampler(seed)
	b := bounds
	scene := optics.NewScene(enclosure(b)...)

	for i := 0; i < nRects; i++ {
		w := s.uniform(0.3, 3)
		h := s.uniform(0.08, 0.3)
		if s.coin() {
			w, h = h, w
		}
		x := s.uniform(b.MinX+1, b.MaxX-1-w)
		y := s.uniform(b.MinY+1, b.MaxY-1-h)
		r, err := optics.NewRectangle(optics.P(x, y), w, h)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		scene.Add(r)
	}

	for i := 0; i < nCircles; i++ {
		r := s.uniform(0.2, 1)
		cx := s.uniform(b.MinX+1, b.MaxX-1)
		cy := s.uniform(b.MinY+1, b.MaxY-1)
		c, err := optics.NewCircle(optics.P(cx, cy), r)
		if err != nil {
			return nil, fmt.Errorf("circle %d: %w", i, err)
		}
		scene.Add(c)
	}
	return scene, nil
}
