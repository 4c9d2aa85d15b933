// Package preview shows a rendered icon on a Linux framebuffer console.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	fb "github.com/gonutz/framebuffer"
	"github.com/rook-computer/favicon/internal/render"
	"github.com/rook-computer/favicon/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

// Surface is the part of a framebuffer device the preview writes to.
type Surface interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// Show opens the framebuffer at device (e.g. /dev/fb0) and blits icon onto it.
func Show(device string, icon image.Image) error {
	dev, err := fb.Open(device)
	if err != nil {
		return fmt.Errorf("failed to open framebuffer %s: %w", device, err)
	}
	defer dev.Close()
	return Blit(dev, icon)
}

// Blit clears dst to the icon background and draws icon centered at the
// largest integer scale that fits, using nearest-neighbour sampling so the
// pixel grid stays visible.
func Blit(dst Surface, icon image.Image) error {
	bounds := dst.Bounds()
	src := icon.Bounds()
	scale := layout.FitScale(bounds, max(src.Dx(), src.Dy()))
	if scale == 0 {
		return fmt.Errorf("framebuffer %dx%d is smaller than icon %dx%d", bounds.Dx(), bounds.Dy(), src.Dx(), src.Dy())
	}

	frame := image.NewRGBA(bounds)
	draw.Draw(frame, bounds, &image.Uniform{C: render.Background}, image.Point{}, draw.Src)
	target := layout.CenterSquare(bounds, max(src.Dx(), src.Dy())*scale)
	xdraw.NearestNeighbor.Scale(frame, target, icon, src, xdraw.Over, nil)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixel := frame.RGBAAt(x, y)
			dst.Set(x, y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
	return nil
}
