package optics

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

var (
	ShapeColor = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	BoxColor   = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	PathColor  = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	ScanColor  = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	ConeColor  = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x99}
)

// View renders a scene, traced paths and scan returns to an image. The scene
// y axis points up; the image y axis points down.
type View struct {
	Scene *Scene
	XSize int
	YSize int
	// Extra margin around the framed region, as a fraction of its size
	Padding float64
	// Optional sensor whose position is framed and whose fan is drawn
	Sensor *Sensor
	// These cache the values needed to scale and translate from the scene to the requested image size
	scale      float64
	xTranslate float64
	yTranslate float64
}

func (view *View) frame() Box {
	box := view.Scene.BoundingBox()
	if view.Sensor != nil {
		if view.Scene.Len() == 0 {
			box = Box{MinX: view.Sensor.Position.X, MinY: view.Sensor.Position.Y, MaxX: view.Sensor.Position.X, MaxY: view.Sensor.Position.Y}
		}
		box = box.Extend(view.Sensor.Position)
	}
	pad := view.Padding * math.Max(1.0, box.Width()+box.Height())
	return Box{MinX: box.MinX - pad, MinY: box.MinY - pad, MaxX: box.MaxX + pad, MaxY: box.MaxY + pad}
}

func (view *View) computeScaleAndTranslation() {
	box := view.frame()
	view.xTranslate = -box.MinX
	view.yTranslate = -box.MinY
	width := math.Max(box.Width(), 1e-9)
	height := math.Max(box.Height(), 1e-9)
	XScale := float64(view.XSize) / width
	YScale := float64(view.YSize) / height
	view.scale = math.Min(XScale, YScale)
}

func (view *View) getScale() float64 {
	if view.scale == 0 {
		view.computeScaleAndTranslation()
	}
	return view.scale
}

// toImage maps a scene point to image coordinates.
func (view *View) toImage(p Point) (float64, float64) {
	s := view.getScale()
	x := (p.X + view.xTranslate) * s
	y := (p.Y + view.yTranslate) * s
	return x, float64(view.YSize) - y
}

func (view *View) drawShape(c *gg.Context, shape Shape) {
	switch s := shape.(type) {
	case Circle:
		x, y := view.toImage(s.Center())
		c.DrawCircle(x, y, s.Radius()*view.getScale())
	case Rectangle:
		b := s.BoundingBox()
		x, y := view.toImage(Point{X: b.MinX, Y: b.MaxY})
		c.DrawRectangle(x, y, b.Width()*view.getScale(), b.Height()*view.getScale())
	}
	c.Stroke()
}

// Render draws the scene, its bounding box, the traced paths and the scan
// points. paths and scan may be nil.
func (view *View) Render(paths []Path, scan []Point) image.Image {
	c := gg.NewContext(view.XSize, view.YSize)
	c.SetColor(color.White)
	c.Clear()

	c.SetColor(ShapeColor)
	c.SetLineWidth(2)
	for _, shape := range view.Scene.Shapes() {
		view.drawShape(c, shape)
	}

	if view.Scene.Len() > 0 {
		b := view.Scene.BoundingBox()
		x, y := view.toImage(Point{X: b.MinX, Y: b.MaxY})
		c.SetColor(BoxColor)
		c.SetLineWidth(1)
		c.SetDash(4, 4)
		c.DrawRectangle(x, y, b.Width()*view.getScale(), b.Height()*view.getScale())
		c.Stroke()
		c.SetDash()
	}

	c.SetColor(PathColor)
	c.SetLineWidth(1)
	for _, path := range paths {
		points := path.Points
		for i := 0; i < len(points)-1; i++ {
			x1, y1 := view.toImage(points[i])
			x2, y2 := view.toImage(points[i+1])
			c.DrawLine(x1, y1, x2, y2)
		}
		c.Stroke()
		for _, p := range points {
			x, y := view.toImage(p)
			c.DrawCircle(x, y, 2)
		}
		c.Fill()
	}

	if view.Sensor != nil {
		view.drawSensor(c)
	}

	c.SetColor(ScanColor)
	for _, p := range scan {
		x, y := view.toImage(p)
		c.DrawCircle(x, y, 1.5)
	}
	c.Fill()

	return c.Image()
}

func (view *View) drawSensor(c *gg.Context) {
	s := view.Sensor
	box := view.Scene.BoundingBox()
	length := math.Max(1.0, 0.25*math.Max(box.Width(), box.Height()))
	start, end := s.Cone(length)

	sx, sy := view.toImage(s.Position)
	c.SetColor(ConeColor)
	c.SetLineWidth(1)
	c.SetDash(6, 3)
	for _, p := range []Point{start, end} {
		x, y := view.toImage(p)
		c.DrawLine(sx, sy, x, y)
		c.Stroke()
	}
	c.SetDash()
	c.DrawCircle(sx, sy, 4)
	c.Fill()
}

// SavePNG renders the view and writes it to filename.
func (view *View) SavePNG(filename string, paths []Path, scan []Point) error {
	return gg.SavePNG(filename, view.Render(paths, scan))
}
