package config

// ScenarioConfig represents a complete scan or trace run over a 2D scene
type ScenarioConfig struct {
	Metadata Metadata      `yaml:"metadata"`
	Scene    SceneConfig   `yaml:"scene"`
	Sensor   *SensorConfig `yaml:"sensor,omitempty"`
	Trace    *TraceConfig  `yaml:"trace,omitempty"`
	Render   RenderConfig  `yaml:"render,omitempty"`
}

type Metadata struct {
	Timestamp string `yaml:"timestamp"` // YYYY-MM-DD HH:MM:SS in UTC
	GitCommit string `yaml:"git_commit"`
}

// SceneConfig lists shapes inline, loads them from a file, or generates
// them. Generated shapes come first, then inline shapes, then file shapes.
type SceneConfig struct {
	Generator *GeneratorConfig `yaml:"generator,omitempty"`
	Shapes    []ShapeConfig    `yaml:"shapes,omitempty"`
	FromFile  string           `yaml:"from_file,omitempty"`
}

type GeneratorConfig struct {
	Kind string `yaml:"kind"` // example, forward, labyrinth or random
	Seed uint64 `yaml:"seed"`

	// Only used by random
	Bounds     [4]float64 `yaml:"bounds,omitempty"` // xmin, ymin, xmax, ymax
	Rectangles int        `yaml:"rectangles,omitempty"`
	Circles    int        `yaml:"circles,omitempty"`
}

type ShapeConfig struct {
	Kind   string     `yaml:"kind"` // circle or rectangle
	Center [2]float64 `yaml:"center,omitempty"`
	Radius float64    `yaml:"radius,omitempty"`
	Corner [2]float64 `yaml:"corner,omitempty"` // lower-left
	Width  float64    `yaml:"width,omitempty"`
	Height float64    `yaml:"height,omitempty"`
}

type SensorConfig struct {
	Position       [2]float64          `yaml:"position"`
	OrientationDeg float64             `yaml:"orientation_deg"`
	FieldOfViewDeg float64             `yaml:"field_of_view_deg"`
	Resolution     int                 `yaml:"resolution"`
	MaxRange       float64             `yaml:"max_range"`
	NoiseSigma     float64             `yaml:"noise_sigma,omitempty"`
	NoiseCurve     map[float64]float64 `yaml:"noise_curve,omitempty"` // range -> sigma
	Seed           uint64              `yaml:"seed,omitempty"`
	Workers        int                 `yaml:"workers,omitempty"`
}

type TraceConfig struct {
	Rays       []RayConfig `yaml:"rays"`
	MaxBounces int         `yaml:"max_bounces"`
}

type RayConfig struct {
	Origin    [2]float64 `yaml:"origin"`
	Direction [2]float64 `yaml:"direction"`
}

type RenderConfig struct {
	Width   int     `yaml:"width,omitempty"`  // pixels
	Height  int     `yaml:"height,omitempty"` // pixels
	Padding float64 `yaml:"padding,omitempty"`
}

const (
	DEFAULT_RENDER_WIDTH  = 1200
	DEFAULT_RENDER_HEIGHT = 800
)

// Size returns the configured image size, falling back to the defaults.
func (r RenderConfig) Size() (int, int) {
	w, h := r.Width, r.Height
	if w <= 0 {
		w = DEFAULT_RENDER_WIDTH
	}
	if h <= 0 {
		h = DEFAULT_RENDER_HEIGHT
	}
	return w, h
}
