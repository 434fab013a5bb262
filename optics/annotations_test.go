package optics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAnnotations(t *testing.T) {
	assert := assert.New(t)

	scene := NewScene(mustCircle(t, 0, 0, 1), mustRectangle(t, 2, 0, 1, 2))
	path := Path{Points: []Point{P(-3, 0), P(-1, 0), P(-1000, 0)}, Escaped: true}

	a := BuildAnnotations(scene, []Path{path}, nil, nil)
	require.Len(t, a.Shapes, 2)
	assert.Equal("circle", a.Shapes[0].Kind)
	assert.Equal(1.0, a.Shapes[0].Radius)
	assert.Equal("rectangle", a.Shapes[1].Kind)
	assert.Equal(PointJSON{X: 2, Y: 0}, *a.Shapes[1].Corner)
	assert.Equal(BoxJSON{MinX: -1, MinY: -1, MaxX: 3, MaxY: 2}, a.BoundingBox)
	require.Len(t, a.Paths, 1)
	assert.Equal(1, a.Paths[0].Bounces)
	assert.True(a.Paths[0].Escaped)
	assert.Nil(a.Sensor)
}

func TestSaveAnnotationsToJSON(t *testing.T) {
	s := wallSensor()
	scene := wallScene(t)
	measurements := s.Scan(scene)

	filename := filepath.Join(t.TempDir(), "annotations.json")
	require.NoError(t, SaveAnnotationsToJSON(filename, scene, nil, &s, measurements))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	var a AnnotationsJSON
	require.NoError(t, json.Unmarshal(data, &a))
	require.NotNil(t, a.Sensor)
	assert.Len(t, a.Sensor.Returns, len(measurements))
	assert.Len(t, a.Sensor.Points, len(measurements))
	assert.InDelta(t, 10.0, a.Sensor.Points[0].X, 1e-9)
}
