package images

import (
	"image"

	"github.com/nfnt/resize"
)

// Scale resizes an image to exactly width x height using Lanczos3
// resampling.
//
// Arguments:
//   - img: The image to resize.
//   - width: Target width in pixels.
//   - height: Target height in pixels.
//
// Returns:
//   - image.Image: The resized image; a new image, the input is untouched.
func Scale(img image.Image, width, height uint) image.Image {
	return resize.Resize(width, height, img, resize.Lanczos3)
}

// ScaleToWidth resizes an image to the given width, preserving its aspect
// ratio. Useful for shrinking large stills before detection so the
// background model works at a consistent scale.
//
// Arguments:
//   - img: The image to resize.
//   - width: Target width in pixels.
//
// Returns:
//   - image.Image: The resized image.
func ScaleToWidth(img image.Image, width uint) image.Image {
	return resize.Resize(width, 0, img, resize.Lanczos3)
}
