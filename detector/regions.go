package detector

import (
	"gocv.io/x/gocv"

	"github.com/quanngo018/smart-city-surveilance-system/common"
)

// RegionsFromMask extracts the bounding boxes of connected foreground
// regions from a binary mask.
//
// Regions are maximal 8-connected components of non-zero pixels; each is
// summarized by its smallest enclosing axis-aligned rectangle. Regions whose
// bounding-rectangle area is below minArea are discarded. The mask is
// treated as already cleaned; Detect calls this after morphology, and tests
// call it directly with synthetic masks to exercise region extraction
// without an adaptive background model.
//
// Arguments:
//   - mask: Single-channel binary mask, non-zero pixels are foreground.
//   - minArea: Minimum bounding-rectangle area, in pixels, to keep a region.
//
// Returns:
//   - []common.BoundingBox: Boxes in contour-discovery order, deterministic
//     for a given mask.
func RegionsFromMask(mask gocv.Mat, minArea int) []common.BoundingBox {
	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	boxes := make([]common.BoundingBox, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		box := common.FromRect(gocv.BoundingRect(contours.At(i)))
		if box.Area() < minArea {
			continue
		}
		boxes = append(boxes, box)
	}
	return boxes
}
