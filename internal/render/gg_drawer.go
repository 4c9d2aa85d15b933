package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
)

// GGDrawer rasterizes each shape with fogleman/gg into a scratch layer and
// stamps the thresholded coverage onto the canvas.
type GGDrawer struct {
	canvas  *image.RGBA
	scratch *image.RGBA
	mask    *image.Alpha
	dc      *gg.Context
}

func NewGGDrawer(canvas *image.RGBA) *GGDrawer {
	b := canvas.Bounds()
	scratch := image.NewRGBA(b)
	dc := gg.NewContextForRGBA(scratch)
	dc.SetLineCap(gg.LineCapButt)
	dc.SetColor(color.White)
	return &GGDrawer{canvas: canvas, scratch: scratch, mask: image.NewAlpha(b), dc: dc}
}

func (d *GGDrawer) Size() (int, int) { return d.dc.Width(), d.dc.Height() }

func (d *GGDrawer) FillBackground() {
	draw.Draw(d.canvas, d.canvas.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
}

func (d *GGDrawer) StrokeCircle(cx, cy, r, width float64) {
	d.begin()
	d.dc.DrawCircle(cx, cy, r)
	if inner := r - width; inner > 0 {
		d.dc.DrawCircle(cx, cy, inner)
	}
	d.dc.SetFillRule(gg.FillRuleEvenOdd)
	d.dc.Fill()
	d.dc.SetFillRule(gg.FillRuleWinding)
	d.flush()
}

func (d *GGDrawer) FillCircle(cx, cy, r float64) {
	d.begin()
	d.dc.DrawCircle(cx, cy, r)
	d.dc.Fill()
	d.flush()
}

func (d *GGDrawer) Line(x0, y0, x1, y1, width float64) {
	d.begin()
	d.dc.SetLineWidth(width)
	d.dc.DrawLine(x0, y0, x1, y1)
	d.dc.Stroke()
	d.flush()
}

func (d *GGDrawer) Image() *image.RGBA { return d.canvas }

func (d *GGDrawer) begin() {
	draw.Draw(d.scratch, d.scratch.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (d *GGDrawer) flush() {
	b := d.scratch.Bounds()
	draw.Draw(d.mask, b, d.scratch, b.Min, draw.Src)
	stamp(d.canvas, d.mask)
}
