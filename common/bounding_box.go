// Package common - Shared geometry types for the surveillance pipeline.
package common

import (
	"fmt"
	"image"
)

// BoundingBox represents an axis-aligned detection rectangle in pixel
// coordinates. X and Y locate the top-left corner; Width and Height are
// always positive for a box produced by the detector.
type BoundingBox struct {
	X, Y, Width, Height int
}

// FromRect converts an image.Rectangle into a BoundingBox.
//
// Arguments:
//   - r: The rectangle to convert. It is canonicalized first so an
//     inverted rectangle yields a zero-size box rather than negative extents.
//
// Returns:
//   - BoundingBox: The equivalent x/y/width/height box.
func FromRect(r image.Rectangle) BoundingBox {
	r = r.Canon()
	return BoundingBox{
		X:      r.Min.X,
		Y:      r.Min.Y,
		Width:  r.Dx(),
		Height: r.Dy(),
	}
}

// ToRect converts the bounding box to an image.Rectangle.
//
// Returns:
//   - image.Rectangle: The rectangle spanning (X, Y) to (X+Width, Y+Height).
//
// @example
// box := BoundingBox{X: 10, Y: 20, Width: 30, Height: 40}
// rect := box.ToRect() // (10,20)-(40,60)
func (b BoundingBox) ToRect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Area returns the bounding-rectangle area in pixels. This is the quantity
// the detector compares against MinContourArea.
func (b BoundingBox) Area() int {
	return b.Width * b.Height
}

// String formats the bounding box for display.
func (b BoundingBox) String() string {
	return fmt.Sprintf("Box (%d, %d) %dx%d", b.X, b.Y, b.Width, b.Height)
}

// Intersection calculates the intersection area between two bounding boxes.
//
// Arguments:
//   - other: The other bounding box to intersect with.
//
// Returns:
//   - int: The area of overlap in pixels, 0 when the boxes are disjoint.
//
// @example
// a := BoundingBox{X: 0, Y: 0, Width: 100, Height: 100}
// b := BoundingBox{X: 50, Y: 50, Width: 100, Height: 100}
// area := a.Intersection(b) // 2500
func (b BoundingBox) Intersection(other BoundingBox) int {
	size := b.ToRect().Intersect(other.ToRect()).Size()
	return size.X * size.Y
}

// Union calculates the union area between two bounding boxes.
//
// Arguments:
//   - other: The other bounding box to union with.
//
// Returns:
//   - int: The combined area in pixels, counting overlap once.
func (b BoundingBox) Union(other BoundingBox) int {
	return b.Area() + other.Area() - b.Intersection(other)
}

// IoU calculates the Intersection over Union between two bounding boxes.
//
// Useful for judging whether two detections cover the same region.
//
// Arguments:
//   - other: The other bounding box to compare against.
//
// Returns:
//   - float64: The IoU value between 0 and 1; 0 when both boxes are empty.
func (b BoundingBox) IoU(other BoundingBox) float64 {
	union := b.Union(other)
	if union == 0 {
		return 0
	}
	return float64(b.Intersection(other)) / float64(union)
}
