package optics

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSON schema types
type PointJSON struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Name string  `json:"name,omitempty"`
}

type ShapeJSON struct {
	Kind   string     `json:"kind"`
	Center *PointJSON `json:"center,omitempty"`
	Radius float64    `json:"radius,omitempty"`
	Corner *PointJSON `json:"corner,omitempty"`
	Width  float64    `json:"width,omitempty"`
	Height float64    `json:"height,omitempty"`
}

type BoxJSON struct {
	MinX float64 `json:"xmin"`
	MinY float64 `json:"ymin"`
	MaxX float64 `json:"xmax"`
	MaxY float64 `json:"ymax"`
}

type PathJSON struct {
	Points  []PointJSON `json:"points"`
	Length  float64     `json:"length"`
	Bounces int         `json:"bounces"`
	Escaped bool        `json:"escaped"`
	Color   string      `json:"color,omitempty"`
}

type MeasurementJSON struct {
	Angle    float64 `json:"angle"`
	Distance float64 `json:"distance"`
}

type SensorJSON struct {
	Position    PointJSON         `json:"position"`
	Orientation float64           `json:"orientation"`
	FieldOfView float64           `json:"fieldOfView"`
	MaxRange    float64           `json:"maxRange"`
	Returns     []MeasurementJSON `json:"returns"`
	Points      []PointJSON       `json:"points"`
}

type AnnotationsJSON struct {
	Shapes      []ShapeJSON `json:"shapes"`
	BoundingBox BoxJSON     `json:"boundingBox"`
	Paths       []PathJSON  `json:"paths,omitempty"`
	Sensor      *SensorJSON `json:"sensor,omitempty"`
}

// Conversion functions
func PointToJSON(p Point) PointJSON {
	return PointJSON{X: p.X, Y: p.Y}
}

func ShapeToJSON(shape Shape) ShapeJSON {
	switch s := shape.(type) {
	case Circle:
		center := PointToJSON(s.Center())
		return ShapeJSON{Kind: "circle", Center: &center, Radius: s.Radius()}
	case Rectangle:
		corner := PointToJSON(s.Corner())
		return ShapeJSON{Kind: "rectangle", Corner: &corner, Width: s.Width(), Height: s.Height()}
	}
	return ShapeJSON{}
}

func PathToJSON(p Path) PathJSON {
	points := make([]PointJSON, len(p.Points))
	for i, pt := range p.Points {
		points[i] = PointToJSON(pt)
	}
	return PathJSON{
		Points:  points,
		Length:  p.Length(),
		Bounces: p.Bounces(),
		Escaped: p.Escaped,
		Color:   "#1F77B4",
	}
}

func ScanToJSON(s Sensor, measurements []Measurement) SensorJSON {
	out := SensorJSON{
		Position:    PointToJSON(s.Position),
		Orientation: s.Orientation,
		FieldOfView: s.FieldOfView,
		MaxRange:    s.MaxRange,
		Returns:     make([]MeasurementJSON, len(measurements)),
	}
	for i, m := range measurements {
		out.Returns[i] = MeasurementJSON{Angle: m.Angle, Distance: m.Distance}
	}
	for _, p := range s.ToPoints(measurements) {
		out.Points = append(out.Points, PointToJSON(p))
	}
	return out
}

// BuildAnnotations collects everything an external viewer needs to draw a run.
// sensor may be nil.
func BuildAnnotations(scene *Scene, paths []Path, sensor *Sensor, measurements []Measurement) AnnotationsJSON {
	b := scene.BoundingBox()
	a := AnnotationsJSON{
		Shapes:      make([]ShapeJSON, 0, scene.Len()),
		BoundingBox: BoxJSON{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY},
	}
	for _, shape := range scene.Shapes() {
		a.Shapes = append(a.Shapes, ShapeToJSON(shape))
	}
	for _, p := range paths {
		a.Paths = append(a.Paths, PathToJSON(p))
	}
	if sensor != nil {
		scan := ScanToJSON(*sensor, measurements)
		a.Sensor = &scan
	}
	return a
}

// SaveAnnotationsToJSON writes the annotations of a run to filename.
func SaveAnnotationsToJSON(filename string, scene *Scene, paths []Path, sensor *Sensor, measurements []Measurement) error {
	data, err := json.MarshalIndent(BuildAnnotations(scene, paths, sensor, measurements), "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling annotations: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}
