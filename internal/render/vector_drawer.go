package render

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498307936

// VectorDrawer rasterizes with golang.org/x/image/vector. Paths are built
// by hand, one rasterizer pass per shape into a coverage mask that is then
// thresholded onto the canvas.
type VectorDrawer struct {
	canvas *image.RGBA
	z      *vector.Rasterizer
	mask   *image.Alpha
}

func NewVectorDrawer(canvas *image.RGBA) *VectorDrawer {
	b := canvas.Bounds()
	return &VectorDrawer{
		canvas: canvas,
		z:      vector.NewRasterizer(b.Dx(), b.Dy()),
		mask:   image.NewAlpha(b),
	}
}

func (d *VectorDrawer) Size() (int, int) {
	b := d.canvas.Bounds()
	return b.Dx(), b.Dy()
}

func (d *VectorDrawer) FillBackground() {
	draw.Draw(d.canvas, d.canvas.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
}

func (d *VectorDrawer) StrokeCircle(cx, cy, r, width float64) {
	inner := r - width
	d.begin()
	circlePath(d.z, cx, cy, r, false)
	if inner > 0 {
		// Opposite winding cancels coverage inside the inner edge.
		circlePath(d.z, cx, cy, inner, true)
	}
	d.flush()
}

func (d *VectorDrawer) FillCircle(cx, cy, r float64) {
	if r <= 0 {
		return
	}
	d.begin()
	circlePath(d.z, cx, cy, r, false)
	d.flush()
}

func (d *VectorDrawer) Line(x0, y0, x1, y1, width float64) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	// Unit normal scaled to half the stroke width.
	nx, ny := -dy/length*width/2, dx/length*width/2

	d.begin()
	d.z.MoveTo(float32(x0+nx), float32(y0+ny))
	d.z.LineTo(float32(x1+nx), float32(y1+ny))
	d.z.LineTo(float32(x1-nx), float32(y1-ny))
	d.z.LineTo(float32(x0-nx), float32(y0-ny))
	d.z.ClosePath()
	d.flush()
}

func (d *VectorDrawer) Image() *image.RGBA { return d.canvas }

func (d *VectorDrawer) begin() {
	b := d.canvas.Bounds()
	d.z.Reset(b.Dx(), b.Dy())
	d.z.DrawOp = draw.Src
}

func (d *VectorDrawer) flush() {
	d.z.Draw(d.mask, d.mask.Bounds(), image.Opaque, image.Point{})
	stamp(d.canvas, d.mask)
}

// circlePath appends a closed circle as four cubic segments starting at
// (cx+r, cy). reverse flips the winding direction.
func circlePath(z *vector.Rasterizer, cx, cy, r float64, reverse bool) {
	s := 1.0
	if reverse {
		s = -1
	}
	k := kappa * r
	pt := func(x, y float64) (float32, float32) { return float32(cx + x), float32(cy + s*y) }

	z.MoveTo(pt(r, 0))
	cube(z, pt, r, k, k, r, 0, r)
	cube(z, pt, -k, r, -r, k, -r, 0)
	cube(z, pt, -r, -k, -k, -r, 0, -r)
	cube(z, pt, k, -r, r, -k, r, 0)
	z.ClosePath()
}

func cube(z *vector.Rasterizer, pt func(x, y float64) (float32, float32), bx, by, cx, cy, dx, dy float64) {
	x1, y1 := pt(bx, by)
	x2, y2 := pt(cx, cy)
	x3, y3 := pt(dx, dy)
	z.CubeTo(x1, y1, x2, y2, x3, y3)
}
