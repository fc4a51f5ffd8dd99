// Package images - Frame plumbing between decoded Go images and the
// OpenCV-backed detection pipeline.
package images

import (
	"image"
	"time"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Frame is a single frame of video, as handed over by whatever decoded it
// (video capture, image file, upload handler). The core borrows frames for
// the duration of a call and never retains them.
type Frame struct {
	ID        int
	Image     image.Image
	Timestamp time.Time
}

// ToMat converts a decoded Go image into a BGR gocv.Mat suitable for the
// detector.
//
// Arguments:
//   - img: The image to convert.
//
// Returns:
//   - gocv.Mat: An 8-bit 3-channel BGR Mat. The caller owns it and must
//     Close it.
//   - error: An error if the image is nil or has zero extent.
func ToMat(img image.Image) (gocv.Mat, error) {
	if img == nil {
		return gocv.NewMat(), errors.New("input image is nil")
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return gocv.NewMat(), errors.Errorf("input image has zero extent (%dx%d)", width, height)
	}

	mat := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// 16-bit to 8-bit, BGR channel order for OpenCV.
			mat.SetUCharAt(y-bounds.Min.Y, (x-bounds.Min.X)*3+0, uint8(b>>8))
			mat.SetUCharAt(y-bounds.Min.Y, (x-bounds.Min.X)*3+1, uint8(g>>8))
			mat.SetUCharAt(y-bounds.Min.Y, (x-bounds.Min.X)*3+2, uint8(r>>8))
		}
	}

	return mat, nil
}

// ToMat converts the frame's image. See the package-level ToMat.
func (f Frame) ToMat() (gocv.Mat, error) {
	return ToMat(f.Image)
}
