// Package detector - Moving-object detection using adaptive background
// subtraction and contour extraction.
//
// The ObjectDetector encapsulates the per-frame pipeline:
//  1. Background subtraction (MOG2) against an adaptively learned model.
//  2. Binarization of the foreground mask, mapping shadow pixels to
//     background.
//  3. Morphological opening to remove isolated noise pixels, then closing
//     to fill small gaps inside real objects.
//  4. External contour extraction and minimum-area filtering.
//
// The detector is stateful: every Detect call feeds the frame to the
// background model as a learning sample. See the Detect documentation for
// the ordering contract this imposes on callers.
package detector

import (
	"image"
	"sync"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/quanngo018/smart-city-surveilance-system/common"
)

// Result holds the outcome of one Detect call.
//
// Boxes are listed in contour-discovery order; the order carries no meaning
// but is deterministic for a given mask. Mask is the cleaned binary
// foreground mask the boxes were extracted from. The caller owns the mask
// and must Close the result when done with it.
type Result struct {
	Boxes []common.BoundingBox
	Mask  gocv.Mat
}

// Close releases the native memory backing the result's mask. Safe on a
// zero-value Result, such as the one returned alongside an error.
func (r *Result) Close() {
	if r.Mask.Ptr() == nil {
		return
	}
	r.Mask.Close()
}

// ObjectDetector detects moving foreground objects in a frame sequence.
//
// It owns an adaptive per-pixel background model that mutates on every
// Detect call, so one detector instance serves exactly one camera session.
// Construct it once, feed it every frame of the session in order, and Close
// it when the session ends.
type ObjectDetector struct {
	config     Config
	background gocv.BackgroundSubtractorMOG2
	kernel     gocv.Mat
	frameCount int64
	mu         sync.Mutex
}

// NewObjectDetector creates a detector for the given configuration.
//
// Arguments:
//   - config: Detection parameters; validated here, never at Detect time.
//
// Returns:
//   - *ObjectDetector: The initialized detector.
//   - error: An error wrapping ErrInvalidConfig if any parameter is out of
//     range. No native resources are allocated on failure.
//
// @example
// det, err := NewObjectDetector(DefaultConfig())
//
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// defer det.Close()
func NewObjectDetector(config Config) (*ObjectDetector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &ObjectDetector{
		config:     config,
		background: newBackgroundModel(config),
		kernel: gocv.GetStructuringElement(gocv.MorphRect,
			image.Pt(config.MorphKernelSize, config.MorphKernelSize)),
	}, nil
}

func newBackgroundModel(config Config) gocv.BackgroundSubtractorMOG2 {
	return gocv.NewBackgroundSubtractorMOG2WithParams(
		config.History,
		config.VarThreshold,
		config.DetectShadows,
	)
}

// Detect finds moving foreground objects in the given frame.
//
// The frame is first absorbed into the background model as a learning
// sample. Because of that side effect, Detect is not idempotent: presenting
// the same frame twice yields a different mask the second time. Callers must
// hand each frame of a session to the detector exactly once, in temporal
// order; replaying or reordering frames corrupts the learned background.
//
// For the first frames of a session the model has little history and may
// classify most of the frame as foreground. This is expected and settles as
// the model converges; on a static scene the box list eventually becomes
// empty.
//
// Arguments:
//   - frame: The frame to analyze. Borrowed for the duration of the call,
//     never retained, never modified.
//
// Returns:
//   - Result: Bounding boxes of detected objects plus the cleaned binary
//     mask. The caller must Close it.
//   - error: An error wrapping ErrInvalidFrame if the frame is empty or its
//     channel count does not match the detector's configuration. A
//     structurally valid frame never fails, all-black and all-white frames
//     included.
func (od *ObjectDetector) Detect(frame gocv.Mat) (Result, error) {
	if frame.Empty() || frame.Rows() == 0 || frame.Cols() == 0 {
		return Result{}, errors.Wrap(ErrInvalidFrame, "frame has no pixels")
	}
	if frame.Channels() != od.config.Channels {
		return Result{}, errors.Wrapf(ErrInvalidFrame,
			"frame has %d channels, detector expects %d",
			frame.Channels(), od.config.Channels)
	}

	od.mu.Lock()
	defer od.mu.Unlock()

	mask := gocv.NewMat()
	od.background.Apply(frame, &mask)
	od.frameCount++

	BinarizeForeground(&mask)

	// Opening removes isolated noise pixels, closing fills small gaps
	// inside real objects. Same square element for both.
	gocv.MorphologyEx(mask, &mask, gocv.MorphOpen, od.kernel)
	gocv.MorphologyEx(mask, &mask, gocv.MorphClose, od.kernel)

	return Result{
		Boxes: RegionsFromMask(mask, od.config.MinContourArea),
		Mask:  mask,
	}, nil
}

// FrameCount returns the number of frames the background model has learned
// from since construction or the last Reset.
func (od *ObjectDetector) FrameCount() int64 {
	od.mu.Lock()
	defer od.mu.Unlock()
	return od.frameCount
}

// Config returns the detector's configuration.
func (od *ObjectDetector) Config() Config {
	return od.config
}

// Reset discards the learned background model and starts adapting from
// scratch. Use this when switching the detector to a different scene or
// after a long pause in the frame stream.
func (od *ObjectDetector) Reset() {
	od.mu.Lock()
	defer od.mu.Unlock()

	od.background.Close()
	od.background = newBackgroundModel(od.config)
	od.frameCount = 0
}

// Close releases the native resources held by the detector. The detector
// must not be used afterwards.
func (od *ObjectDetector) Close() {
	od.mu.Lock()
	defer od.mu.Unlock()

	od.background.Close()
	od.kernel.Close()
}
