//go:build verify_reflections
// +build verify_reflections

package optics

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

const (
	lengthEpsilon = 1e-7
	angleEpsilon  = 1e-7
)

func init() {
	fmt.Println("Reflection verification enabled.")
}

// verifyReflectionLaw panics when a bounce breaks the law of reflection.
func verifyReflectionLaw(incident Ray, normal Vector2, reflected Ray) {
	in := incident.UnitDirection()
	out := reflected.Direction
	n := normal.Normalize()

	// Angle of incidence equals angle of reflection
	incidentAngle := math.Acos(clampUnit(-in.Dot(n)))
	reflectedAngle := math.Acos(clampUnit(out.Dot(n)))
	if math.Abs(incidentAngle-reflectedAngle) > angleEpsilon {
		logger.Error("reflection angle mismatch",
			zap.Float64("incident", incidentAngle),
			zap.Float64("reflected", reflectedAngle))
		panic("Angle of incidence should equal angle of reflection")
	}

	// Reflected direction keeps unit length
	if math.Abs(out.Norm()-1.0) > lengthEpsilon {
		panic("Reflected direction should be a unit vector")
	}

	// The tangential component is preserved
	tangent := n.LeftPerpendicular()
	if math.Abs(in.Dot(tangent)-out.Dot(tangent)) > angleEpsilon {
		panic("Tangential component should be preserved")
	}
}

func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
