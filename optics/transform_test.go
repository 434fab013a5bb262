package optics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertPointNear(t *testing.T, expect, actual Point) {
	t.Helper()
	if math.Abs(expect.X-actual.X) > 1e-9 || math.Abs(expect.Y-actual.Y) > 1e-9 {
		t.Errorf("got %v, want %v", actual, expect)
	}
}

func TestApplyPoint(t *testing.T) {
	tests := []struct {
		name      string
		transform AffineTransform
		point     Point
		expect    Point
	}{
		{"identity", Identity(), P(3, 4), P(3, 4)},
		{"translation", Translation(1, -2), P(3, 4), P(4, 2)},
		{"rotation_90deg", Rotation(math.Pi / 2), P(1, 0), P(0, 1)},
		{"rotation_180deg", Rotation(math.Pi), P(1, 2), P(-1, -2)},
		{"scale", Scale(2, 3), P(1, 1), P(2, 3)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assertPointNear(t, test.expect, test.transform.ApplyPoint(test.point))
		})
	}
}

func TestComposeOrder(t *testing.T) {
	translate := Translation(1, 0)
	rotate := Rotation(math.Pi / 2)

	// translate first, then rotate
	assertPointNear(t, P(0, 2), rotate.Compose(translate).ApplyPoint(P(1, 0)))
	// rotate first, then translate
	assertPointNear(t, P(1, 1), translate.Compose(rotate).ApplyPoint(P(1, 0)))

	// composing matches applying one after the other
	scale := Scale(2, 0.5)
	p := P(-3, 7)
	assertPointNear(t, scale.ApplyPoint(rotate.ApplyPoint(p)), scale.Compose(rotate).ApplyPoint(p))
}

func TestInverse(t *testing.T) {
	assert := assert.New(t)

	transform := Translation(3, -1).Compose(Rotation(0.3)).Compose(Scale(2, 4))
	inv, ok := transform.Inverse()
	assert.True(ok)
	assertPointNear(t, P(5, 6), inv.ApplyPoint(transform.ApplyPoint(P(5, 6))))
	assert.InDelta(8.0, transform.Det(), 1e-12)

	_, ok = Scale(0, 1).Inverse()
	assert.False(ok)
}
