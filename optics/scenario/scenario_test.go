package scenario

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdginn/go-lidar2d/optics"
)

func assertBoxNear(t *testing.T, expect, actual optics.Box) {
	t.Helper()
	assert.InDelta(t, expect.MinX, actual.MinX, 1e-9)
	assert.InDelta(t, expect.MinY, actual.MinY, 1e-9)
	assert.InDelta(t, expect.MaxX, actual.MaxX, 1e-9)
	assert.InDelta(t, expect.MaxY, actual.MaxY, 1e-9)
}

func TestExample(t *testing.T) {
	assert := assert.New(t)

	scene := Example()
	assert.Equal(5, scene.Len())
	assertBoxNear(t, optics.Box{MinX: -4, MinY: -2.5, MaxX: 4, MaxY: 2.5}, scene.BoundingBox())

	// a ray from inside the room never escapes
	path, err := scene.Trace(optics.Ray{Origin: optics.P(-3, 0), Direction: optics.V(1, 0.3)}, 12)
	require.NoError(t, err)
	assert.Len(path, 13)
	for _, p := range path {
		assert.True(p.X >= -4 && p.X <= 4 && p.Y >= -2.5 && p.Y <= 2.5, "%v left the room", p)
	}
}

func TestForward(t *testing.T) {
	assert := assert.New(t)

	scene := Forward()
	sensor := optics.Sensor{
		Position:    optics.P(0, 0),
		Orientation: -math.Pi / 6,
		FieldOfView: math.Pi / 3,
		Resolution:  61,
		MaxRange:    20,
	}
	measurements := sensor.Scan(scene)
	require.NotEmpty(t, measurements)

	// straight ahead is the obstacle at x = 2
	ahead := measurements[len(measurements)/2]
	assert.InDelta(0.0, ahead.Absolute(sensor), 1e-9)
	assert.InDelta(2.0, ahead.Distance, 1e-9)
	for _, m := range measurements {
		assert.LessOrEqual(m.Distance, 8.0+1e-9)
	}
}

func TestLabyrinthIsReproducible(t *testing.T) {
	assert := assert.New(t)

	a := Labyrinth(42)
	b := Labyrinth(42)
	assert.Equal(4+6+7, a.Len())
	assert.Equal(a.Shapes(), b.Shapes())
	assert.NotEqual(a.Shapes(), Labyrinth(7).Shapes())

	assertBoxNear(t, LabyrinthBounds, a.BoundingBox())
}

func TestRandom(t *testing.T) {
	assert := assert.New(t)

	scene, err := Random(DefaultRandomBounds, 12, 12, 1337)
	require.NoError(t, err)
	assert.Equal(4+12+12, scene.Len())
	again, err := Random(DefaultRandomBounds, 12, 12, 1337)
	require.NoError(t, err)
	assert.Equal(scene.Shapes(), again.Shapes())

	// obstacles stay inside the enclosure
	b := DefaultRandomBounds
	for _, shape := range scene.Shapes()[4:] {
		box := shape.BoundingBox()
		assert.GreaterOrEqual(box.MinX, b.MinX)
		assert.LessOrEqual(box.MaxX, b.MaxX)
		assert.GreaterOrEqual(box.MinY, b.MinY)
		assert.LessOrEqual(box.MaxY, b.MaxY)
	}

	_, err = Random(optics.Box{MaxX: 2, MaxY: 10}, 1, 1, 1)
	assert.Error(err)
	_, err = Random(DefaultRandomBounds, -1, 1, 1)
	assert.Error(err)
}
