package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// PixelBox returns the rectangle covering pixels x0..x1 and y0..y1, both
// ends inclusive.
func PixelBox(x0, y0, x1, y1 int) image.Rectangle {
	return Normalize(image.Rect(x0, y0, x1+1, y1+1))
}

// Center returns the midpoint of rect in continuous coordinates.
func Center(rect image.Rectangle) (x, y float64) {
	rect = Normalize(rect)
	return float64(rect.Min.X+rect.Max.X) / 2, float64(rect.Min.Y+rect.Max.Y) / 2
}

// Radius returns the radius of the largest circle inscribed in rect.
func Radius(rect image.Rectangle) float64 {
	rect = Normalize(rect)
	size := rect.Dx()
	if rect.Dy() < size {
		size = rect.Dy()
	}
	return float64(size) / 2
}

// CenterSquare returns a square of side sizePx centered in rect.
// sizePx is clamped to [0, min(rect.Dx(), rect.Dy())].
func CenterSquare(rect image.Rectangle, sizePx int) image.Rectangle {
	rect = Normalize(rect)
	maxSize := rect.Dx()
	if rect.Dy() < maxSize {
		maxSize = rect.Dy()
	}
	if sizePx < 0 {
		sizePx = 0
	}
	if sizePx > maxSize {
		sizePx = maxSize
	}
	x := rect.Min.X + (rect.Dx()-sizePx)/2
	y := rect.Min.Y + (rect.Dy()-sizePx)/2
	return image.Rect(x, y, x+sizePx, y+sizePx)
}

// FitScale returns the largest integer factor by which a srcPx square
// fits into rect, or 0 if it does not fit at all.
func FitScale(rect image.Rectangle, srcPx int) int {
	if srcPx <= 0 {
		return 0
	}
	rect = Normalize(rect)
	size := rect.Dx()
	if rect.Dy() < size {
		size = rect.Dy()
	}
	return size / srcPx
}
