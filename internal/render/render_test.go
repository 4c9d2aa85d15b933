package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"
)

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in      string
		want    Backend
		wantErr bool
	}{
		{"", BackendGG, false},
		{"gg", BackendGG, false},
		{" GG ", BackendGG, false},
		{"vector", BackendVector, false},
		{"Vector", BackendVector, false},
		{"cairo", "", true},
	}
	for _, tt := range tests {
		got, err := ParseBackend(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownBackend) {
				t.Errorf("ParseBackend(%q) error = %v, want ErrUnknownBackend", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseBackend(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBackend(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewDrawerUnknownBackend(t *testing.T) {
	_, err := NewDrawer(Backend("skia"))
	if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("NewDrawer error = %v, want ErrUnknownBackend", err)
	}
	if _, err := Render(Backend("skia"), TargetIcon{}); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("Render error = %v, want ErrUnknownBackend", err)
	}
}

// recorder captures the draw calls an icon issues.
type recorder struct {
	calls []string
}

func (r *recorder) Size() (int, int)   { return CanvasSize, CanvasSize }
func (r *recorder) FillBackground()    { r.calls = append(r.calls, "background") }
func (r *recorder) Image() *image.RGBA { return nil }

func (r *recorder) StrokeCircle(cx, cy, rad, width float64) {
	r.calls = append(r.calls, fmt.Sprintf("ring %g,%g r=%g w=%g", cx, cy, rad, width))
}

func (r *recorder) FillCircle(cx, cy, rad float64) {
	r.calls = append(r.calls, fmt.Sprintf("disc %g,%g r=%g", cx, cy, rad))
}

func (r *recorder) Line(x0, y0, x1, y1, width float64) {
	r.calls = append(r.calls, fmt.Sprintf("line %g,%g-%g,%g w=%g", x0, y0, x1, y1, width))
}

func TestTargetIconDrawSequence(t *testing.T) {
	rec := &recorder{}
	TargetIcon{}.Draw(rec)

	want := []string{
		"background",
		"ring 16.5,16.5 r=12.5 w=2",
		"ring 16.5,16.5 r=7.5 w=2",
		"disc 16.5,16.5 r=3.5",
		"line 17,2-17,7 w=2",
		"line 17,26-17,31 w=2",
		"line 2,17-7,17 w=2",
		"line 26,17-31,17 w=2",
	}
	if len(rec.calls) != len(want) {
		t.Fatalf("got %d calls, want %d: %v", len(rec.calls), len(want), rec.calls)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, rec.calls[i], want[i])
		}
	}
}

var backends = []Backend{BackendGG, BackendVector}

func renderTarget(t *testing.T, backend Backend) *image.RGBA {
	t.Helper()
	img, err := Render(backend, TargetIcon{})
	if err != nil {
		t.Fatalf("Render(%s): %v", backend, err)
	}
	if b := img.Bounds(); b.Dx() != CanvasSize || b.Dy() != CanvasSize {
		t.Fatalf("bounds = %v, want %dx%d", b, CanvasSize, CanvasSize)
	}
	return img
}

// centreLine is row 16 (and, by symmetry, column 16) of the target:
// left mark over the outer ring, middle ring, disc 13..19, and the
// mirror image on the right.
const centreLine = "..#####..##..#######..##..#####."

func TestTargetIconCentreLines(t *testing.T) {
	for _, backend := range backends {
		t.Run(string(backend), func(t *testing.T) {
			img := renderTarget(t, backend)
			var row, col []byte
			for i := 0; i < CanvasSize; i++ {
				row = append(row, cell(img.RGBAAt(i, 16)))
				col = append(col, cell(img.RGBAAt(16, i)))
			}
			if string(row) != centreLine {
				t.Errorf("row 16    = %s\nwant        %s", row, centreLine)
			}
			if string(col) != centreLine {
				t.Errorf("column 16 = %s\nwant        %s", col, centreLine)
			}
		})
	}
}

func cell(c color.RGBA) byte {
	switch c {
	case Foreground:
		return '#'
	case Background:
		return '.'
	}
	return '+'
}

func TestTargetIconPixels(t *testing.T) {
	probes := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"top-left corner", 0, 0, Background},
		{"top-right corner", 31, 0, Background},
		{"bottom-left corner", 0, 31, Background},
		{"bottom-right corner", 31, 31, Background},
		{"centre", 16, 16, Foreground},
		{"disc left edge", 13, 16, Foreground},
		{"disc right edge", 19, 16, Foreground},
		{"middle ring left", 9, 16, Foreground},
		{"middle ring right", 23, 16, Foreground},
		{"top mark near column", 16, 2, Foreground},
		{"top mark far column", 17, 2, Foreground},
		{"top mark inner end", 17, 6, Foreground},
		{"beside top mark", 15, 2, Background},
		{"past top mark", 17, 7, Background},
		{"bottom mark", 17, 30, Foreground},
		{"left mark", 2, 17, Foreground},
		{"right mark", 30, 17, Foreground},
		{"above top mark", 16, 1, Background},
	}

	for _, backend := range backends {
		t.Run(string(backend), func(t *testing.T) {
			img := renderTarget(t, backend)
			for _, p := range probes {
				if got := img.RGBAAt(p.x, p.y); got != p.want {
					t.Errorf("%s (%d,%d) = %v, want %v", p.name, p.x, p.y, got, p.want)
				}
			}
		})
	}
}

func TestTargetIconIsTwoColour(t *testing.T) {
	for _, backend := range backends {
		img := renderTarget(t, backend)
		for y := 0; y < CanvasSize; y++ {
			for x := 0; x < CanvasSize; x++ {
				if c := img.RGBAAt(x, y); c != Foreground && c != Background {
					t.Fatalf("%s: blended pixel (%d,%d) = %v", backend, x, y, c)
				}
			}
		}
	}
}

// onMark reports whether (x, y) lies on a crosshair mark or its mirror
// image about pixel 16. The 2px marks sit on pixels 16 and 17, so they are
// the only shapes not symmetric about the centre pixel.
func onMark(x, y int) bool {
	across := func(v int) bool { return v >= 15 && v <= 17 }
	along := func(v int) bool { return (v >= 2 && v <= 6) || (v >= 26 && v <= 30) }
	return (across(x) && along(y)) || (across(y) && along(x))
}

func TestTargetIconSymmetricAboutCentrePixel(t *testing.T) {
	for _, backend := range backends {
		img := renderTarget(t, backend)
		for y := 1; y < CanvasSize; y++ {
			for x := 1; x < CanvasSize; x++ {
				if onMark(x, y) || onMark(32-x, y) || onMark(x, 32-y) {
					continue
				}
				if a, b := img.RGBAAt(x, y), img.RGBAAt(32-x, y); a != b {
					t.Errorf("%s: (%d,%d)=%v but mirror (%d,%d)=%v", backend, x, y, a, 32-x, y, b)
				}
				if a, b := img.RGBAAt(x, y), img.RGBAAt(x, 32-y); a != b {
					t.Errorf("%s: (%d,%d)=%v but mirror (%d,%d)=%v", backend, x, y, a, x, 32-y, b)
				}
			}
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, backend := range backends {
		a, err := Render(backend, TargetIcon{})
		if err != nil {
			t.Fatalf("%s: %v", backend, err)
		}
		b, err := Render(backend, TargetIcon{})
		if err != nil {
			t.Fatalf("%s: %v", backend, err)
		}
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("%s: two renders differ", backend)
		}
	}
}

func TestStrokeCircleLeavesHole(t *testing.T) {
	for _, backend := range backends {
		d, err := NewDrawer(backend)
		if err != nil {
			t.Fatalf("%s: %v", backend, err)
		}
		d.FillBackground()
		d.StrokeCircle(16, 16, 12, 2)

		canvas := d.Image()
		if got := canvas.RGBAAt(16, 16); got != Background {
			t.Errorf("%s: ring interior (16,16) = %v, want background", backend, got)
		}
		if got := canvas.RGBAAt(18, 5); got != Foreground {
			t.Errorf("%s: ring body (18,5) = %v, want foreground", backend, got)
		}
		if got := canvas.RGBAAt(18, 3); got != Background {
			t.Errorf("%s: outside ring (18,3) = %v, want background", backend, got)
		}
	}
}

func TestVectorDegenerateShapesAreNoops(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, CanvasSize, CanvasSize))
	d := NewVectorDrawer(canvas)
	d.FillBackground()
	before := append([]byte(nil), canvas.Pix...)

	d.Line(5, 5, 5, 5, 2)
	d.Line(1, 1, 9, 9, 0)
	d.FillCircle(16, 16, 0)

	if !bytes.Equal(before, canvas.Pix) {
		t.Error("degenerate shapes modified the canvas")
	}
}

func TestDrawerSize(t *testing.T) {
	for _, backend := range backends {
		d, err := NewDrawer(backend)
		if err != nil {
			t.Fatalf("%s: %v", backend, err)
		}
		if w, h := d.Size(); w != CanvasSize || h != CanvasSize {
			t.Errorf("%s: Size() = %dx%d, want %dx%d", backend, w, h, CanvasSize, CanvasSize)
		}
	}
}
