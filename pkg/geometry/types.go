// Package geometry provides basic geometric types used throughout the application.
package geometry

import "image"

// Box represents an axis-aligned rectangle in pixel coordinates, stored
// in corner form: (X1,Y1) is the top-left corner, (X2,Y2) the
// bottom-right. A well-formed box has X1<X2 and Y1<Y2.
type Box struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// NewBox creates a Box from two corners.
func NewBox(x1, y1, x2, y2 int) Box {
	return Box{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() int {
	return b.X2 - b.X1
}

// Height returns the vertical extent of the box.
func (b Box) Height() int {
	return b.Y2 - b.Y1
}

// Empty reports whether the box encloses zero area.
func (b Box) Empty() bool {
	return b.X2 <= b.X1 || b.Y2 <= b.Y1
}

// Clamp returns the box clipped to an image of the given dimensions.
// A box lying entirely outside the image clamps to an empty box.
func (b Box) Clamp(width, height int) Box {
	return Box{
		X1: clamp(b.X1, 0, width),
		Y1: clamp(b.Y1, 0, height),
		X2: clamp(b.X2, 0, width),
		Y2: clamp(b.Y2, 0, height),
	}
}

// Expand returns the box grown by margin pixels on every side.
// The result is not clamped; callers clamp against their image bounds.
func (b Box) Expand(margin int) Box {
	return Box{
		X1: b.X1 - margin,
		Y1: b.Y1 - margin,
		X2: b.X2 + margin,
		Y2: b.Y2 + margin,
	}
}

// Rect converts the box to the stdlib image.Rectangle form.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X1, b.Y1, b.X2, b.Y2)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
