package config

import (
	"fmt"
	"math"

	"github.com/jdginn/go-lidar2d/optics"
	"github.com/jdginn/go-lidar2d/optics/scenario"
)

const (
	SHAPE_CIRCLE    = "circle"
	SHAPE_RECTANGLE = "rectangle"

	GENERATOR_EXAMPLE   = "example"
	GENERATOR_FORWARD   = "forward"
	GENERATOR_LABYRINTH = "labyrinth"
	GENERATOR_RANDOM    = "random"
)

// Defaults and limits of the random generator
const (
	DEFAULT_RANDOM_RECTANGLES = 12
	DEFAULT_RANDOM_CIRCLES    = 12
	MIN_RANDOM_SIZE           = scenario.MIN_RANDOM_SIZE
)

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func point(p [2]float64) optics.Point {
	return optics.P(p[0], p[1])
}

// Build returns the shape described by the config
func (s ShapeConfig) Build() (optics.Shape, error) {
	switch s.Kind {
	case SHAPE_CIRCLE:
		return optics.NewCircle(point(s.Center), s.Radius)
	case SHAPE_RECTANGLE:
		return optics.NewRectangle(point(s.Corner), s.Width, s.Height)
	}
	return nil, fmt.Errorf("unknown shape kind %q", s.Kind)
}

// Build generates the scene, if a generator is configured, then appends the
// listed shapes in order. Shapes from from_file must have been merged first.
func (s SceneConfig) Build() (*optics.Scene, error) {
	scene := optics.NewScene()
	if s.Generator != nil {
		generated, err := s.Generator.Build()
		if err != nil {
			return nil, fmt.Errorf("generating scene: %w", err)
		}
		scene = generated
	}
	for i, sc := range s.Shapes {
		shape, err := sc.Build()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		scene.Add(shape)
	}
	return scene, nil
}

func (g GeneratorConfig) Build() (*optics.Scene, error) {
	switch g.Kind {
	case GENERATOR_EXAMPLE:
		return scenario.Example(), nil
	case GENERATOR_FORWARD:
		return scenario.Forward(), nil
	case GENERATOR_LABYRINTH:
		return scenario.Labyrinth(g.Seed), nil
	case GENERATOR_RANDOM:
		bounds := scenario.DefaultRandomBounds
		if g.Bounds != [4]float64{} {
			bounds = optics.Box{MinX: g.Bounds[0], MinY: g.Bounds[1], MaxX: g.Bounds[2], MaxY: g.Bounds[3]}
		}
		rects, circles := g.Rectangles, g.Circles
		if rects == 0 && circles == 0 {
			rects, circles = DEFAULT_RANDOM_RECTANGLES, DEFAULT_RANDOM_CIRCLES
		}
		return scenario.Random(bounds, rects, circles, g.Seed)
	}
	return nil, fmt.Errorf("unknown generator %q", g.Kind)
}

// Build converts angles from degrees and returns a validated sensor
func (s SensorConfig) Build() (optics.Sensor, error) {
	sensor := optics.Sensor{
		Position:    point(s.Position),
		Orientation: degToRad(s.OrientationDeg),
		FieldOfView: degToRad(s.FieldOfViewDeg),
		Resolution:  s.Resolution,
		MaxRange:    s.MaxRange,
		NoiseSigma:  s.NoiseSigma,
		NoiseCurve:  optics.NewNoiseCurve(s.NoiseCurve),
		Seed:        s.Seed,
	}
	if err := sensor.Validate(); err != nil {
		return optics.Sensor{}, err
	}
	return sensor, nil
}

// Build returns one ray per configured origin and direction
func (t TraceConfig) Build() ([]optics.Ray, error) {
	rays := make([]optics.Ray, len(t.Rays))
	for i, rc := range t.Rays {
		ray, err := optics.NewRay(point(rc.Origin), optics.V(rc.Direction[0], rc.Direction[1]))
		if err != nil {
			return nil, fmt.Errorf("ray %d: %w", i, err)
		}
		rays[i] = ray
	}
	return rays, nil
}
