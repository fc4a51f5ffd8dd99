package detector

import (
	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned (wrapped with detail) when a detector is
// constructed with out-of-range parameters. Invalid configuration is
// rejected at construction time, never deep inside the detection loop.
var ErrInvalidConfig = errors.New("invalid detector config")

// ErrInvalidFrame is returned (wrapped with detail) when Detect is handed a
// frame that is empty, has zero extent, or has a channel count different
// from the one the detector was constructed for.
var ErrInvalidFrame = errors.New("invalid frame")

// Config contains configuration parameters for the object detector.
type Config struct {
	// MinContourArea is the minimum bounding-rectangle area, in pixels, for
	// a foreground region to be reported as an object. Recommended range is
	// 100-2000.
	MinContourArea int
	// MorphKernelSize is the side length of the square structuring element
	// used for morphological opening and closing. Must be odd.
	MorphKernelSize int
	// DetectShadows enables shadow marking in the background model. Shadow
	// pixels are always excluded from the foreground before region
	// extraction; this flag only controls whether the model spends time
	// telling shadows apart from true foreground.
	DetectShadows bool
	// Channels is the pixel channel count every frame must carry. The
	// detector is constructed for one channel layout and keeps it for life.
	Channels int
	// History is the number of frames the background model considers when
	// adapting to the scene.
	History int
	// VarThreshold is the squared-distance threshold on the model's pixel
	// variance beyond which a pixel is classified as foreground.
	VarThreshold float64
}

// DefaultConfig returns the configuration used by the stock surveillance
// pipeline: BGR frames, 500-frame background history, variance threshold 16,
// shadow detection on, 5x5 kernel, minimum object area 500.
func DefaultConfig() Config {
	return Config{
		MinContourArea:  500,
		MorphKernelSize: 5,
		DetectShadows:   true,
		Channels:        3,
		History:         500,
		VarThreshold:    16.0,
	}
}

// Validate checks the configuration, returning an error wrapping
// ErrInvalidConfig for the first out-of-range parameter found.
func (c Config) Validate() error {
	if c.MinContourArea <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "MinContourArea must be positive, got %d", c.MinContourArea)
	}
	if c.MorphKernelSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "MorphKernelSize must be positive, got %d", c.MorphKernelSize)
	}
	if c.MorphKernelSize%2 == 0 {
		return errors.Wrapf(ErrInvalidConfig, "MorphKernelSize must be odd, got %d", c.MorphKernelSize)
	}
	if c.Channels != 1 && c.Channels != 3 {
		return errors.Wrapf(ErrInvalidConfig, "Channels must be 1 or 3, got %d", c.Channels)
	}
	if c.History <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "History must be positive, got %d", c.History)
	}
	if c.VarThreshold <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "VarThreshold must be positive, got %g", c.VarThreshold)
	}
	return nil
}
