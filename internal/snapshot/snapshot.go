// Package snapshot rasterizes worlds into images.
package snapshot

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"iter"
	"math"
	"strconv"

	"github.com/mkacz/turnip"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Options configures rendering.
type Options struct {
	Width, Height int
	// Margin is the space in pixels kept free around the content.
	Margin float64
	// LineWidth is the width in pixels of segment outlines.
	LineWidth float64
	// Labels draws the index of each loop next to its origin.
	Labels bool

	// Trace is a sequence of body positions drawn as a path.
	Trace []turnip.Point
	// Body, if non-nil, is drawn as a disc.
	Body *turnip.Body
}

// DefaultOptions returns the options used by the command line tool.
func DefaultOptions() Options {
	return Options{
		Width:     800,
		Height:    600,
		Margin:    20,
		LineWidth: 2,
		Labels:    true,
	}
}

var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorFill       = color.RGBA{221, 231, 240, 255}
	colorOutline    = color.RGBA{51, 51, 51, 255}
	colorNode       = color.RGBA{21, 101, 192, 255}
	colorTrace      = color.RGBA{230, 81, 0, 255}
	colorBody       = color.RGBA{46, 125, 50, 255}
	colorLabel      = color.RGBA{102, 102, 102, 255}
)

// ErrEmpty is returned by Render when there is nothing to draw.
var ErrEmpty = errors.New("snapshot: nothing to render")

// Render draws the loops of w, filled where they enclose an area, scaled
// uniformly to fit the image.
func Render(w *turnip.World, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.New("snapshot: image size must be positive")
	}
	bounds, ok := contentBounds(w, opts)
	if !ok {
		return nil, ErrEmpty
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)

	dst := turnip.Rect{
		X0: opts.Margin,
		Y0: opts.Margin,
		X1: float64(opts.Width) - opts.Margin,
		Y1: float64(opts.Height) - opts.Margin,
	}
	c := canvas{
		img: img,
		z:   vector.NewRasterizer(opts.Width, opts.Height),
		aff: turnip.FitRect(bounds, dst),
	}
	lineWidth := max(opts.LineWidth, 1)

	for l := range w.Loops() {
		if l.Count() >= 3 {
			c.polygon(l.Positions(), colorFill)
		}
	}
	for s := range w.Segments() {
		if !s.IsDegenerate() {
			c.line(s.Line(), lineWidth, colorOutline)
		}
	}
	for n := range w.Nodes() {
		c.disc(n.Position, 1.5*lineWidth, colorNode)
	}
	for i := 1; i < len(opts.Trace); i++ {
		c.line(turnip.Line{P0: opts.Trace[i-1], P1: opts.Trace[i]}, lineWidth/2, colorTrace)
	}
	if b := opts.Body; b != nil {
		c.disc(b.Position, b.Radius*c.aff.ScaleFactor(), colorBody)
	}
	if opts.Labels {
		i := 0
		for l := range w.Loops() {
			c.label(l.Origin().Position, strconv.Itoa(i))
			i++
		}
	}
	return img, nil
}

// Encode writes img as a PNG.
func Encode(out io.Writer, img image.Image) error {
	return png.Encode(out, img)
}

// contentBounds returns the world-space rectangle that needs to be visible.
func contentBounds(w *turnip.World, opts Options) (turnip.Rect, bool) {
	r, ok := w.BoundingBox()
	for _, pt := range opts.Trace {
		if !ok {
			r, ok = turnip.Rect{X0: pt.X, Y0: pt.Y, X1: pt.X, Y1: pt.Y}, true
		}
		r = r.UnionPoint(pt)
	}
	if b := opts.Body; b != nil {
		br := turnip.PointRect(b.Position).Inflate(b.Radius, b.Radius)
		if !ok {
			r, ok = br, true
		}
		r = r.Union(br)
	}
	return r, ok
}

// canvas draws world-space shapes onto an image.
type canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
	aff turnip.Affine
}

func (c *canvas) fill(col color.Color) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
	c.z.Reset(c.img.Bounds().Dx(), c.img.Bounds().Dy())
}

func (c *canvas) polygon(pts iter.Seq[turnip.Point], col color.Color) {
	first := true
	for pt := range turnip.Transform(pts, c.aff) {
		if first {
			c.moveTo(pt)
			first = false
			continue
		}
		c.lineTo(pt)
	}
	c.z.ClosePath()
	c.fill(col)
}

// line strokes l with the given pixel width.
func (c *canvas) line(l turnip.Line, width float64, col color.Color) {
	px := l.Transform(c.aff)
	n := px.Direction().Lhp().Mul(width / 2)
	left, right := px.Offset(n), px.Offset(n.Negate())
	c.moveTo(left.P0)
	c.lineTo(left.P1)
	c.lineTo(right.P1)
	c.lineTo(right.P0)
	c.z.ClosePath()
	c.fill(col)
}

// disc draws a disc of the given pixel radius centered at world point p.
func (c *canvas) disc(p turnip.Point, radius float64, col color.Color) {
	const segments = 24
	center := p.Transform(c.aff)
	for i := range segments {
		pt := center.Translate(turnip.VecFromAngle(2 * math.Pi * float64(i) / segments).Mul(radius))
		if i == 0 {
			c.moveTo(pt)
		} else {
			c.lineTo(pt)
		}
	}
	c.z.ClosePath()
	c.fill(col)
}

func (c *canvas) label(p turnip.Point, s string) {
	pt := p.Transform(c.aff)
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(colorLabel),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(pt.X)+4, int(pt.Y)-4),
	}
	d.DrawString(s)
}

func (c *canvas) moveTo(pt turnip.Point) { c.z.MoveTo(c.clip(pt)) }
func (c *canvas) lineTo(pt turnip.Point) { c.z.LineTo(c.clip(pt)) }

// clip clamps pt to the rasterizer's area, which it must not leave.
func (c *canvas) clip(pt turnip.Point) (float32, float32) {
	size := c.z.Size()
	x := min(max(pt.X, 0), float64(size.X))
	y := min(max(pt.Y, 0), float64(size.Y))
	return float32(x), float32(y)
}
