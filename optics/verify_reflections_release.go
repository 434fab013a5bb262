//go:build !verify_reflections
// +build !verify_reflections

package optics

// Empty stub that will be optimized out
func verifyReflectionLaw(incident Ray, normal Vector2, reflected Ray) {}
