// Package util - Frame-sequence loading for directory-based ingestion.
package util

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ImageFile is one frame of an extracted image sequence on disk. Files are
// expected to be named frame-<N>.<ext>, where N is the frame number.
type ImageFile struct {
	// Path is the path to the image file.
	Path string
	// Data is the raw bytes of the image file.
	Data []byte
	// Frame is the frame number parsed from the file name.
	Frame int
}

// Decode decodes the raw bytes into an image.Image. JPEG and PNG are
// supported.
func (f ImageFile) Decode() (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(f.Data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", f.Path)
	}
	return img, nil
}

// LoadDirectoryImageFiles reads a frame sequence from a directory, sorted by
// frame number so callers can feed the detector in true temporal order.
// Files without a frame-<N> name or with an unrecognized extension are
// skipped.
//
// Arguments:
//   - dir: Directory path containing frame-<N>.<ext> image files.
//
// Returns:
//   - []ImageFile: Frames in ascending frame-number order.
//   - error: Error if the directory or a matching file cannot be read.
func LoadDirectoryImageFiles(dir string) ([]ImageFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var frames []ImageFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		switch ext {
		case ".jpg", ".jpeg", ".png":
		default:
			continue
		}

		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if !strings.HasPrefix(stem, "frame-") {
			continue
		}
		number, err := strconv.Atoi(strings.TrimPrefix(stem, "frame-"))
		if err != nil {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		frames = append(frames, ImageFile{Path: path, Data: data, Frame: number})
	}

	sort.Slice(frames, func(i, j int) bool {
		return frames[i].Frame < frames[j].Frame
	})

	return frames, nil
}
