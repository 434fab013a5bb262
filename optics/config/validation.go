package config

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Validation helper functions
func validatePositive(field string, value float64) []ValidationError {
	if !(value > 0) {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateNonNegative(field string, value float64) []ValidationError {
	if value < 0 || math.IsNaN(value) {
		return []ValidationError{{
			Field:   field,
			Message: "must be non-negative",
		}}
	}
	return nil
}

func validateAtLeast(field string, value, min float64) []ValidationError {
	if !(value >= min) {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be at least %v", min),
		}}
	}
	return nil
}

func validateInRange(field string, value, min, max float64) []ValidationError {
	if value < min || value > max || math.IsNaN(value) {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		}}
	}
	return nil
}

func validateNonZeroVector(field string, vec [2]float64) []ValidationError {
	if math.Hypot(vec[0], vec[1]) == 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must have non-zero length",
		}}
	}
	return nil
}

func validateAngleRange(field string, angle float64) []ValidationError {
	if angle < -360 || angle > 360 {
		return []ValidationError{{
			Field:   field,
			Message: "angle must be between -360 and 360 degrees",
		}}
	}
	return nil
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors groups validation errors by top-level section
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	// Group errors by category
	categories := map[string][]ValidationError{}
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		categories[category] = append(categories[category], err)
	}
	names := make([]string, 0, len(categories))
	for category := range categories {
		names = append(names, category)
	}
	sort.Strings(names)

	for _, category := range names {
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category)))
		for _, err := range categories[category] {
			// Remove category prefix from field for cleaner display
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			b.WriteString(fmt.Sprintf("  - %s: %s\n", field, err.Message))
		}
	}

	return b.String()
}

// Validate performs validation on the entire configuration
func (c *ScenarioConfig) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.Scene.Validate()...)
	if c.Sensor == nil && c.Trace == nil {
		errors = append(errors, ValidationError{
			Field:   "scenario",
			Message: "at least one of sensor or trace must be specified",
		})
	}
	if c.Sensor != nil {
		errors = append(errors, c.Sensor.Validate()...)
	}
	if c.Trace != nil {
		errors = append(errors, c.Trace.Validate()...)
	}
	errors = append(errors, c.Render.Validate()...)
	return errors
}

func (s *SceneConfig) Validate() []ValidationError {
	var errors []ValidationError

	if s.Generator == nil && len(s.Shapes) == 0 && s.FromFile == "" {
		errors = append(errors, ValidationError{
			Field:   "scene",
			Message: "one of generator, shapes or from_file must be specified",
		})
		return errors
	}

	if s.Generator != nil {
		errors = append(errors, s.Generator.Validate()...)
	}
	for i, shape := range s.Shapes {
		errors = append(errors, shape.Validate(fmt.Sprintf("scene.shapes[%d]", i))...)
	}

	return errors
}

func (g *GeneratorConfig) Validate() []ValidationError {
	var errors []ValidationError

	switch g.Kind {
	case GENERATOR_EXAMPLE, GENERATOR_FORWARD, GENERATOR_LABYRINTH:
	case GENERATOR_RANDOM:
		if g.Bounds != [4]float64{} {
			errors = append(errors, validateAtLeast("scene.generator.bounds.width", g.Bounds[2]-g.Bounds[0], MIN_RANDOM_SIZE)...)
			errors = append(errors, validateAtLeast("scene.generator.bounds.height", g.Bounds[3]-g.Bounds[1], MIN_RANDOM_SIZE)...)
		}
		errors = append(errors, validateNonNegative("scene.generator.rectangles", float64(g.Rectangles))...)
		errors = append(errors, validateNonNegative("scene.generator.circles", float64(g.Circles))...)
	default:
		errors = append(errors, ValidationError{
			Field:   "scene.generator.kind",
			Message: fmt.Sprintf("unknown generator '%s'", g.Kind),
		})
	}

	return errors
}

func (s *ShapeConfig) Validate(field string) []ValidationError {
	var errors []ValidationError

	switch s.Kind {
	case SHAPE_CIRCLE:
		errors = append(errors, validatePositive(field+".radius", s.Radius)...)
	case SHAPE_RECTANGLE:
		errors = append(errors, validatePositive(field+".width", s.Width)...)
		errors = append(errors, validatePositive(field+".height", s.Height)...)
	default:
		errors = append(errors, ValidationError{
			Field:   field + ".kind",
			Message: fmt.Sprintf("unknown shape '%s'", s.Kind),
		})
	}

	return errors
}

func (s *SensorConfig) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, validateAngleRange("sensor.orientation_deg", s.OrientationDeg)...)
	errors = append(errors, validateInRange("sensor.field_of_view_deg", s.FieldOfViewDeg, 0, 360)...)
	errors = append(errors, validatePositive("sensor.resolution", float64(s.Resolution))...)
	errors = append(errors, validatePositive("sensor.max_range", s.MaxRange)...)
	errors = append(errors, validateNonNegative("sensor.noise_sigma", s.NoiseSigma)...)
	errors = append(errors, validateNonNegative("sensor.workers", float64(s.Workers))...)
	for distance, sigma := range s.NoiseCurve {
		errors = append(errors, validateNonNegative(fmt.Sprintf("sensor.noise_curve.%v", distance), sigma)...)
	}

	return errors
}

func (t *TraceConfig) Validate() []ValidationError {
	var errors []ValidationError

	if len(t.Rays) == 0 {
		errors = append(errors, ValidationError{
			Field:   "trace.rays",
			Message: "at least one ray is required",
		})
	}
	for i, ray := range t.Rays {
		errors = append(errors, validateNonZeroVector(fmt.Sprintf("trace.rays[%d].direction", i), ray.Direction)...)
	}
	errors = append(errors, validateNonNegative("trace.max_bounces", float64(t.MaxBounces))...)

	return errors
}

func (r *RenderConfig) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, validateNonNegative("render.width", float64(r.Width))...)
	errors = append(errors, validateNonNegative("render.height", float64(r.Height))...)
	errors = append(errors, validateInRange("render.padding", r.Padding, 0, 1)...)

	return errors
}
