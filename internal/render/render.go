package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/drakos74/neuron/internal/geometry"
	"github.com/drakos74/neuron/internal/palette"
	"github.com/drakos74/neuron/internal/session"
)

var (
	background = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	grid       = color.RGBA{R: 215, G: 215, B: 215, A: 255}
	boundary   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

const (
	pointRadius   = 5
	boundaryWidth = 2
	// sampling step of the boundary line in canvas pixels
	step = 4
)

// Draw renders the scene for the given session snapshot :
// background, axis gridlines, the decision boundary and the training points
// colored by the current network output.
func Draw(s session.Session, p palette.Palette) *image.RGBA {
	w, h := s.Dim.Width, s.Dim.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	drawAxes(img, w, h)
	drawBoundary(img, s)

	for _, pt := range s.Points {
		cx := geometry.ToCanvas(w, pt.X1)
		cy := geometry.ToCanvasY(h, pt.X2)
		// the ring shows the expected label, the core the current network output
		fillCircle(img, cx, cy, pointRadius+2, p.ColorFor(pt.Expected))
		fillCircle(img, cx, cy, pointRadius, p.ColorFor(s.Evaluate(pt)))
	}
	return img
}

// Encode writes the scene as png.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// drawAxes draws the gridlines through the graph origin.
func drawAxes(img *image.RGBA, w, h int) {
	axisX := int(geometry.ToCanvas(w, 0))
	axisY := int(geometry.ToCanvasY(h, 0))
	for x := 0; x < w; x++ {
		img.SetRGBA(x, axisY, grid)
	}
	for y := 0; y < h; y++ {
		img.SetRGBA(axisX, y, grid)
	}
}

// drawBoundary samples the decision boundary across the canvas width and
// strokes the segments between consecutive samples.
// NOTE : a zero x2-weight makes the boundary non-finite, those segments are skipped.
func drawBoundary(img *image.RGBA, s session.Session) {
	w, h := s.Dim.Width, s.Dim.Height

	prevOk := false
	var prevX, prevY float64
	for x := 0; x <= w; x += step {
		gx := geometry.ToGraph(w, float64(x))
		gy := s.BoundaryY(gx)
		if math.IsNaN(gy) || math.IsInf(gy, 0) {
			prevOk = false
			continue
		}
		cx := float64(x)
		cy := geometry.ToCanvasY(h, gy)
		if prevOk {
			strokeSegment(img, prevX, prevY, cx, cy, boundaryWidth, boundary)
		}
		prevX, prevY = cx, cy
		prevOk = true
	}
}

// strokeSegment rasterizes a straight segment of the given width as a filled quad.
func strokeSegment(img *image.RGBA, x0, y0, x1, y1, width float64, c color.RGBA) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// perpendicular half-width offset
	ox := -dy / length * width / 2
	oy := dx / length * width / 2

	z := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	z.MoveTo(float32(x0+ox), float32(y0+oy))
	z.LineTo(float32(x1+ox), float32(y1+oy))
	z.LineTo(float32(x1-ox), float32(y1-oy))
	z.LineTo(float32(x0-ox), float32(y0-oy))
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}

// fillCircle rasterizes a disc approximated by four cubic beziers.
func fillCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	// control point distance for a cubic circle approximation
	const k = 0.5522847498
	d := k * r

	z := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	z.MoveTo(float32(cx+r), float32(cy))
	z.CubeTo(float32(cx+r), float32(cy+d), float32(cx+d), float32(cy+r), float32(cx), float32(cy+r))
	z.CubeTo(float32(cx-d), float32(cy+r), float32(cx-r), float32(cy+d), float32(cx-r), float32(cy))
	z.CubeTo(float32(cx-r), float32(cy-d), float32(cx-d), float32(cy-r), float32(cx), float32(cy-r))
	z.CubeTo(float32(cx+d), float32(cy-r), float32(cx+r), float32(cy-d), float32(cx+r), float32(cy))
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}
