// Package annotate - Rendering of detection results onto display frames.
package annotate

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/quanngo018/smart-city-surveilance-system/common"
)

// Fixed visual contract: green box outlines with numbered labels, a red
// object-count banner near the top-left of the frame.
var (
	boxColor    = color.RGBA{R: 0, G: 255, B: 0}
	bannerColor = color.RGBA{R: 255, G: 0, B: 0}
)

const (
	boxThickness  = 2
	labelScale    = 0.5
	bannerScale   = 1.0
	labelOffsetY  = 10
	bannerOffsetX = 10
	bannerOffsetY = 30
)

// Draw renders detection boxes and an object-count label onto a copy of the
// given frame.
//
// The input frame is never modified; drawing happens on a clone, so the
// caller may keep reusing the original buffer. Output is deterministic for
// the same inputs: fixed colors, thickness, font, and label placement.
//
// Arguments:
//   - frame: The frame to annotate. Borrowed, left untouched.
//   - boxes: Detection boxes to outline. Each gets an "Object N" label
//     just above its top-left corner, numbered in slice order from 1.
//   - count: Object count shown in the "Detected: N objects" banner.
//
// Returns:
//   - gocv.Mat: The annotated copy. The caller owns it and must Close it.
//
// @example
// annotated := annotate.Draw(frame, result.Boxes, len(result.Boxes))
// defer annotated.Close()
// window.IMShow(annotated)
func Draw(frame gocv.Mat, boxes []common.BoundingBox, count int) gocv.Mat {
	out := frame.Clone()

	for i, box := range boxes {
		gocv.Rectangle(&out, box.ToRect(), boxColor, boxThickness)
		gocv.PutText(&out, fmt.Sprintf("Object %d", i+1),
			image.Pt(box.X, box.Y-labelOffsetY),
			gocv.FontHersheySimplex, labelScale, boxColor, boxThickness)
	}

	gocv.PutText(&out, fmt.Sprintf("Detected: %d objects", count),
		image.Pt(bannerOffsetX, bannerOffsetY),
		gocv.FontHersheySimplex, bannerScale, bannerColor, boxThickness)

	return out
}
