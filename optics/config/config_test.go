package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdginn/go-lidar2d/optics"
)

func loadTestdata(t *testing.T, name string, opts LoadOptions) *ScenarioConfig {
	t.Helper()
	config, err := LoadFromFile(filepath.Join("testdata", name), opts)
	require.NoError(t, err)
	return config
}

func TestLoadFromFile(t *testing.T) {
	assert := assert.New(t)

	config := loadTestdata(t, "scan.yaml", LoadOptions{ValidateImmediately: true, ResolvePaths: true, MergeFiles: true})

	require.Len(t, config.Scene.Shapes, 3)
	assert.Equal(SHAPE_RECTANGLE, config.Scene.Shapes[0].Kind)
	assert.Equal([2]float64{10, -50}, config.Scene.Shapes[0].Corner)
	assert.Equal(1.0, config.Scene.Shapes[1].Radius)
	// shapes from the file come after the inline shapes
	assert.Equal([2]float64{-5, -5}, config.Scene.Shapes[2].Corner)

	require.NotNil(t, config.Sensor)
	assert.Equal(9, config.Sensor.Resolution)
	assert.Equal(map[float64]float64{0: 0, 50: 0.05}, config.Sensor.NoiseCurve)
	assert.Equal(uint64(42), config.Sensor.Seed)

	require.NotNil(t, config.Trace)
	assert.Equal(5, config.Trace.MaxBounces)

	w, h := config.Render.Size()
	assert.Equal(640, w)
	assert.Equal(480, h)
}

func TestLoadWithoutMerge(t *testing.T) {
	config := loadTestdata(t, "scan.yaml", LoadOptions{})
	assert.Len(t, config.Scene.Shapes, 2)
	assert.Equal(t, "shapes.yaml", config.Scene.FromFile)
}

func TestLoadErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := LoadFromFile(filepath.Join("testdata", "missing.yaml"), LoadOptions{})
	assert.Error(err)

	_, err = LoadFromFile(filepath.Join("testdata", "invalid.yaml"), LoadOptions{ValidateImmediately: true})
	assert.ErrorContains(err, "validation errors")

	dir := t.TempDir()
	path := filepath.Join(dir, "dangling.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scene:\n  from_file: nowhere.yaml\n"), 0644))
	_, err = LoadFromFile(path, LoadOptions{ResolvePaths: true})
	assert.ErrorContains(err, "nowhere.yaml")
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	config := loadTestdata(t, "invalid.yaml", LoadOptions{})
	errs := config.Validate()

	fields := map[string]bool{}
	for _, err := range errs {
		fields[err.Field] = true
	}
	assert.True(fields["scene.shapes[0].kind"])
	assert.True(fields["scene.shapes[1].radius"])
	assert.True(fields["sensor.field_of_view_deg"])
	assert.True(fields["sensor.resolution"])
	assert.True(fields["trace.rays[0].direction"])
	assert.False(fields["sensor.max_range"])

	formatted := FormatValidationErrors(errs)
	assert.True(strings.HasPrefix(formatted, "Validation Errors:\n"))
	assert.Contains(formatted, "SCENE:")
	assert.Contains(formatted, "  - shapes[1].radius: must be positive")
	// sections are listed alphabetically
	assert.Less(strings.Index(formatted, "SCENE:"), strings.Index(formatted, "SENSOR:"))
	assert.Less(strings.Index(formatted, "SENSOR:"), strings.Index(formatted, "TRACE:"))

	assert.Empty(FormatValidationErrors(nil))

	empty := ScenarioConfig{}
	errs = empty.Validate()
	require.Len(t, errs, 2)
	assert.Equal("scene", errs[0].Field)
	assert.Equal("scenario", errs[1].Field)
}

func TestBuild(t *testing.T) {
	assert := assert.New(t)

	config := loadTestdata(t, "scan.yaml", LoadOptions{ResolvePaths: true, MergeFiles: true})

	scene, err := config.Scene.Build()
	require.NoError(t, err)
	assert.Equal(3, scene.Len())
	assert.IsType(optics.Circle{}, scene.Shape(1))

	sensor, err := config.Sensor.Build()
	require.NoError(t, err)
	assert.InDelta(-math.Pi/8, sensor.Orientation, 1e-12)
	assert.InDelta(math.Pi/4, sensor.FieldOfView, 1e-12)
	require.NotNil(t, sensor.NoiseCurve)
	assert.InDelta(0.025, sensor.NoiseCurve.Sigma(25), 1e-12)

	rays, err := config.Trace.Build()
	require.NoError(t, err)
	require.Len(t, rays, 1)
	assert.Equal(optics.P(0, 0), rays[0].Origin)

	// every ray of the sweep returns, from the wall or the circle
	assert.Len(sensor.Scan(scene), 9)
}

func TestBuildGenerator(t *testing.T) {
	tests := []struct {
		name      string
		generator GeneratorConfig
		shapes    int
	}{
		{"example", GeneratorConfig{Kind: GENERATOR_EXAMPLE}, 5},
		{"forward", GeneratorConfig{Kind: GENERATOR_FORWARD}, 4},
		{"labyrinth", GeneratorConfig{Kind: GENERATOR_LABYRINTH, Seed: 7}, 17},
		{"random_default", GeneratorConfig{Kind: GENERATOR_RANDOM, Seed: 1}, 4 + DEFAULT_RANDOM_RECTANGLES + DEFAULT_RANDOM_CIRCLES},
		{"random_sized", GeneratorConfig{Kind: GENERATOR_RANDOM, Seed: 1, Bounds: [4]float64{0, 0, 20, 20}, Rectangles: 3, Circles: 2}, 9},
		{"random_smallest", GeneratorConfig{Kind: GENERATOR_RANDOM, Seed: 3, Bounds: [4]float64{0, 0, MIN_RANDOM_SIZE, MIN_RANDOM_SIZE}, Rectangles: 2, Circles: 1}, 7},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Empty(t, test.generator.Validate())
			scene, err := test.generator.Build()
			require.NoError(t, err)
			assert.Equal(t, test.shapes, scene.Len())
		})
	}

	narrow := GeneratorConfig{Kind: GENERATOR_RANDOM, Bounds: [4]float64{0, 0, 4.9, MIN_RANDOM_SIZE}}
	errs := narrow.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "scene.generator.bounds.width", errs[0].Field)
	_, err := narrow.Build()
	assert.Error(t, err)

	bad := GeneratorConfig{Kind: "maze"}
	assert.Len(t, bad.Validate(), 1)
	_, err = bad.Build()
	assert.Error(t, err)
}

func TestBuildLabyrinthScenario(t *testing.T) {
	config := loadTestdata(t, "labyrinth.yaml", LoadOptions{ValidateImmediately: true})
	scene, err := config.Scene.Build()
	require.NoError(t, err)
	rays, err := config.Trace.Build()
	require.NoError(t, err)

	path, err := scene.Trace(rays[0], config.Trace.MaxBounces)
	require.NoError(t, err)
	// the labyrinth is enclosed, so the ray uses its whole budget
	assert.Len(t, path, config.Trace.MaxBounces+1)
}

func TestSaveToFile(t *testing.T) {
	assert := assert.New(t)

	config := loadTestdata(t, "scan.yaml", LoadOptions{})
	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, SaveToFile(config, path))

	assert.NotEmpty(config.Metadata.Timestamp)
	assert.NotEmpty(config.Metadata.GitCommit)

	reloaded, err := LoadFromFile(path, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(config.Metadata, reloaded.Metadata)
	assert.Equal(config.Scene.Shapes, reloaded.Scene.Shapes)
	assert.Equal(config.Sensor, reloaded.Sensor)
}

func TestPathResolver(t *testing.T) {
	assert := assert.New(t)

	resolver := NewPathResolver("testdata")
	assert.Equal(filepath.Join("testdata", "shapes.yaml"), resolver.ResolvePath("shapes.yaml"))
	assert.Equal("/abs/shapes.yaml", resolver.ResolvePath("/abs/shapes.yaml"))
	assert.True(resolver.FileExists("shapes.yaml"))
	assert.False(resolver.FileExists("nothing.yaml"))
}
