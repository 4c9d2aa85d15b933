package render

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

// coverageThreshold is the mask alpha at or above which a pixel takes the
// foreground colour. Icons are two-colour: no blended edge pixels.
const coverageThreshold = 0x80

// Drawer is an abstraction over the rasterizer so icons can draw primitives
// without depending on a particular library.
//
// Coordinates are continuous: pixel (x, y) covers [x, x+1) × [y, y+1).
// Shapes are hard-edged: each pixel ends up either Foreground or unchanged.
type Drawer interface {
	// Size returns the canvas size (in pixels) that icons draw into.
	Size() (width int, height int)

	FillBackground()

	// StrokeCircle outlines the circle of radius r around (cx, cy).
	// The outline is width pixels wide and lies inside the radius.
	StrokeCircle(cx, cy, r, width float64)
	FillCircle(cx, cy, r float64)

	// Line strokes the segment from (x0, y0) to (x1, y1) with butt caps.
	Line(x0, y0, x1, y1, width float64)

	// Image returns the canvas. Subsequent draw calls mutate it in place.
	Image() *image.RGBA
}

// Icon draws itself onto a Drawer.
type Icon interface {
	Draw(d Drawer)
}

type Backend string

const (
	BackendGG     Backend = "gg"
	BackendVector Backend = "vector"

	DefaultBackend = BackendGG
)

var ErrUnknownBackend = errors.New("unknown render backend")

// ParseBackend maps a backend name to a Backend. An empty name selects
// DefaultBackend.
func ParseBackend(name string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(name))) {
	case "":
		return DefaultBackend, nil
	case BackendGG:
		return BackendGG, nil
	case BackendVector:
		return BackendVector, nil
	}
	return "", fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownBackend, name, BackendGG, BackendVector)
}

// NewDrawer allocates a CanvasSize × CanvasSize canvas for the backend.
func NewDrawer(backend Backend) (Drawer, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, CanvasSize, CanvasSize))
	switch backend {
	case BackendGG, "":
		return NewGGDrawer(canvas), nil
	case BackendVector:
		return NewVectorDrawer(canvas), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

// Render draws icon with the given backend and returns the finished canvas.
func Render(backend Backend, icon Icon) (*image.RGBA, error) {
	d, err := NewDrawer(backend)
	if err != nil {
		return nil, err
	}
	icon.Draw(d)
	return d.Image(), nil
}

// stamp paints Foreground wherever mask coverage reaches the threshold.
func stamp(canvas *image.RGBA, mask *image.Alpha) {
	b := canvas.Bounds().Intersect(mask.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask.AlphaAt(x, y).A >= coverageThreshold {
				canvas.SetRGBA(x, y, Foreground)
			}
		}
	}
}
