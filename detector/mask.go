package detector

import "gocv.io/x/gocv"

// binarizeThreshold separates true foreground (255) from background (0) and
// shadow (127) pixels in the raw MOG2 mask. Any value above it survives
// binarization, so shadows are always excluded from detection.
const binarizeThreshold = 200

// BinarizeForeground reduces a raw background-subtraction mask to a strictly
// binary one, in place. True foreground pixels (255) stay 255; background
// (0) and shadow (127) pixels both become 0. Detect applies this before
// morphology, and tests call it directly with synthetic masks to pin down
// the shadow-exclusion rule.
//
// Arguments:
//   - mask: Single-channel mask as produced by the background model;
//     overwritten with its binarized form.
func BinarizeForeground(mask *gocv.Mat) {
	gocv.Threshold(*mask, mask, binarizeThreshold, 255, gocv.ThresholdBinary)
}
