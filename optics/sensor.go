package optics

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	lin "github.com/sgreben/piecewiselinear"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"
)

var ErrInvalidSensor = errors.New("invalid sensor")

// Measurement is one range return.
type Measurement struct {
	// Angle relative to the sensor orientation, in radians
	Angle float64
	// Measured range, noise included
	Distance float64
}

// Absolute returns the angle of the measurement in the scene frame.
func (m Measurement) Absolute(s Sensor) float64 {
	return s.Orientation + m.Angle
}

// NoiseCurve maps a true range to the standard deviation of its noise.
type NoiseCurve struct {
	f lin.Function
}

// NewNoiseCurve builds a curve from range (m) -> sigma (m) samples. Between
// samples sigma is interpolated linearly; beyond the outermost samples it is
// held constant.
func NewNoiseCurve(points map[float64]float64) *NoiseCurve {
	if len(points) == 0 {
		return nil
	}
	xs := make([]float64, 0, len(points))
	for x := range points {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = points[x]
	}
	return &NoiseCurve{f: lin.Function{X: xs, Y: ys}}
}

// Sigma returns the noise standard deviation at the given range.
func (c *NoiseCurve) Sigma(distance float64) float64 {
	xs := c.f.X
	if len(xs) == 1 {
		return c.f.Y[0]
	}
	distance = math.Max(xs[0], math.Min(xs[len(xs)-1], distance))
	return c.f.At(distance)
}

// Sensor is a 2D range scanner sweeping a fan of rays from a pose. It holds
// configuration only: scanning never changes it.
type Sensor struct {
	Position Point
	// Start of the sweep, in radians
	Orientation float64
	// Angular span of the sweep, in radians
	FieldOfView float64
	// Number of rays in the sweep
	Resolution int
	// Returns farther than this are dropped
	MaxRange float64
	// Standard deviation of the additive Gaussian range noise. 0 disables noise.
	NoiseSigma float64
	// Optional range-dependent noise. Overrides NoiseSigma when set.
	NoiseCurve *NoiseCurve
	// Seed of the noise generator. Equal seeds give equal scans.
	Seed uint64
}

// NewSensor returns a validated sensor without noise.
func NewSensor(position Point, orientation, fieldOfView float64, resolution int, maxRange float64) (Sensor, error) {
	s := Sensor{
		Position:    position,
		Orientation: orientation,
		FieldOfView: fieldOfView,
		Resolution:  resolution,
		MaxRange:    maxRange,
	}
	return s, s.Validate()
}

func (s Sensor) Validate() error {
	switch {
	case s.Resolution < 1:
		return fmt.Errorf("%w: resolution %d must be at least 1", ErrInvalidSensor, s.Resolution)
	case s.FieldOfView < 0 || math.IsNaN(s.FieldOfView):
		return fmt.Errorf("%w: field of view %v must be non-negative", ErrInvalidSensor, s.FieldOfView)
	case !(s.MaxRange > 0):
		return fmt.Errorf("%w: max range %v must be positive", ErrInvalidSensor, s.MaxRange)
	case s.NoiseSigma < 0 || math.IsNaN(s.NoiseSigma):
		return fmt.Errorf("%w: noise sigma %v must be non-negative", ErrInvalidSensor, s.NoiseSigma)
	}
	return nil
}

// Angles returns the Resolution sweep angles, relative to Orientation, evenly
// spaced over [0, FieldOfView].
func (s Sensor) Angles() []float64 {
	if s.Resolution < 1 {
		return nil
	}
	angles := make([]float64, s.Resolution)
	if s.Resolution == 1 {
		return angles
	}
	step := s.FieldOfView / float64(s.Resolution-1)
	for i := range angles {
		angles[i] = float64(i) * step
	}
	return angles
}

// Rays returns one unit-direction ray per sweep angle.
func (s Sensor) Rays() []Ray {
	angles := s.Angles()
	rays := make([]Ray, len(angles))
	for i, angle := range angles {
		theta := s.Orientation + angle
		rays[i] = Ray{
			Origin:    s.Position,
			Direction: V(math.Cos(theta), math.Sin(theta)),
		}
	}
	return rays
}

// Scan sweeps the scene and returns the valid returns in angle order. Rays
// hitting nothing, or hitting beyond MaxRange, produce no measurement.
func (s Sensor) Scan(scene *Scene) []Measurement {
	rays := s.Rays()
	impacts := make([]Impact, len(rays))
	for i, ray := range rays {
		impacts[i] = scene.FirstImpact(ray)
	}
	return s.measure(impacts)
}

// ScanParallel is Scan with the rays sharded across workers. The scene is
// only read. The result is identical to Scan's.
func (s Sensor) ScanParallel(ctx context.Context, scene *Scene, workers int) ([]Measurement, error) {
	if workers < 1 {
		return nil, fmt.Errorf("workers %d must be at least 1", workers)
	}
	rays := s.Rays()
	impacts := make([]Impact, len(rays))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, ray := range rays {
		i, ray := i, ray
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			impacts[i] = scene.FirstImpact(ray)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scanning: %w", err)
	}
	return s.measure(impacts), nil
}

// measure turns per-angle impacts into measurements. Noise is drawn in angle
// order so that results do not depend on how the impacts were computed.
func (s Sensor) measure(impacts []Impact) []Measurement {
	angles := s.Angles()
	noise := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(s.Seed)}

	measurements := make([]Measurement, 0, len(impacts))
	for i, impact := range impacts {
		if !impact.Ok() || impact.T > s.MaxRange {
			continue
		}
		distance := impact.T
		if sigma := s.sigma(distance); sigma > 0 {
			distance = math.Max(0, distance+sigma*noise.Rand())
		}
		measurements = append(measurements, Measurement{Angle: angles[i], Distance: distance})
	}
	return measurements
}

func (s Sensor) sigma(distance float64) float64 {
	if s.NoiseCurve != nil {
		return s.NoiseCurve.Sigma(distance)
	}
	return s.NoiseSigma
}

// ToPoints converts measurements to points in the scene frame.
func (s Sensor) ToPoints(measurements []Measurement) []Point {
	points := make([]Point, len(measurements))
	for i, m := range measurements {
		theta := m.Absolute(s)
		points[i] = s.Position.Offset(V(math.Cos(theta), math.Sin(theta)).Scale(m.Distance))
	}
	return points
}

// Cone returns the end points of the two edge rays of the sweep, drawn with
// the given length.
func (s Sensor) Cone(length float64) (Point, Point) {
	start := s.Orientation
	end := s.Orientation + s.FieldOfView
	return s.Position.Offset(V(math.Cos(start), math.Sin(start)).Scale(length)),
		s.Position.Offset(V(math.Cos(end), math.Sin(end)).Scale(length))
}
