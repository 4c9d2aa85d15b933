package render

import (
	"github.com/rook-computer/favicon/internal/render/layout"
)

const (
	ringWidth = 2.0
	markWidth = 2.0
)

// Shape boxes are inclusive pixel ranges. The centre pixel is 16, so in
// continuous coordinates every shape is centred on (16.5, 16.5).
const (
	outerMin, outerMax = 4, 28
	markAxis           = 16
	markNear, markFar  = 2, 6
)

// TargetIcon is the green target: two rings, a filled centre disc and
// four crosshair marks running in from the canvas edges.
type TargetIcon struct{}

func (TargetIcon) Draw(d Drawer) {
	w, h := d.Size()

	d.FillBackground()

	outer := layout.PixelBox(outerMin, outerMin, outerMax, outerMax)
	cx, cy := layout.Center(outer)
	d.StrokeCircle(cx, cy, layout.Radius(outer), ringWidth)

	middle := layout.Inset(outer, 5)
	d.StrokeCircle(cx, cy, layout.Radius(middle), ringWidth)

	inner := layout.Inset(middle, 4)
	d.FillCircle(cx, cy, layout.Radius(inner))

	for _, m := range crosshairMarks(w, h) {
		d.Line(m[0], m[1], m[2], m[3], markWidth)
	}
}

// crosshairMarks returns the four marks as continuous {x0, y0, x1, y1}
// segments. A 2px mark on axis pixel a covers pixels a and a+1 across its
// length, and runs from pixel 2 to pixel 6 inside an edge, both inclusive.
func crosshairMarks(w, h int) [4][4]float64 {
	axis := float64(markAxis + 1)
	near, far := float64(markNear), float64(markFar+1)
	fw, fh := float64(w), float64(h)
	return [4][4]float64{
		{axis, near, axis, far},
		{axis, fh - far, axis, fh - near},
		{near, axis, far, axis},
		{fw - far, axis, fw - near, axis},
	}
}
