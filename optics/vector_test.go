package optics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorAlgebra(t *testing.T) {
	assert := assert.New(t)

	a := V(1, 2)
	b := V(3, -4)

	assert.Equal(V(4, -2), a.Add(b))
	assert.Equal(V(-2, 6), a.Sub(b))
	assert.Equal(V(2.5, 5), a.Scale(2.5))
	assert.Equal(-5.0, a.Dot(b))
	assert.Equal(5.0, b.Norm())
	assert.Equal(V(-2, 1), a.LeftPerpendicular())
	// operations never modify the receiver
	assert.Equal(V(1, 2), a)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		input  Vector2
		expect Vector2
	}{
		{"unit_x", V(1, 0), V(1, 0)},
		{"three_four_five", V(3, 4), V(0.6, 0.8)},
		{"negative", V(0, -7), V(0, -1)},
		{"zero", V(0, 0), V(0, 0)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual := test.input.Normalize()
			assert.InDelta(t, test.expect.X, actual.X, 1e-12)
			assert.InDelta(t, test.expect.Y, actual.Y, 1e-12)
		})
	}
}

func TestPointTranslate(t *testing.T) {
	assert := assert.New(t)

	p := P(1, 1)
	p.Translate(2, -3)
	assert.Equal(P(3, -2), p)
	assert.Equal(V(3, -2), p.Vector())

	p.SetX(0)
	p.SetY(4)
	assert.Equal(P(0, 4), p)
	assert.InDelta(5.0, p.Distance(P(3, 0)), 1e-12)
	assert.InDelta(math.Sqrt2, P(1, 1).Vector().Norm(), 1e-12)
}
