package render

import "image/color"

// Global render configuration for colors and canvas.
var (
	// Foreground is the target green, Background the near-black behind it.
	Foreground = color.RGBA{R: 0x22, G: 0xC5, B: 0x5E, A: 0xFF} // #22c55e
	Background = color.RGBA{R: 0x09, G: 0x09, B: 0x0B, A: 0xFF} // #09090b
)

// CanvasSize is the width and height of the icon in pixels.
const CanvasSize = 32
