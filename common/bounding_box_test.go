package common

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRectToRectRoundTrip(t *testing.T) {
	rect := image.Rect(10, 20, 40, 60)
	box := FromRect(rect)

	assert.Equal(t, BoundingBox{X: 10, Y: 20, Width: 30, Height: 40}, box)
	assert.Equal(t, rect, box.ToRect())
}

func TestFromRectCanonicalizes(t *testing.T) {
	// Inverted rectangles must not produce negative extents.
	box := FromRect(image.Rect(40, 60, 10, 20))
	assert.Equal(t, BoundingBox{X: 10, Y: 20, Width: 30, Height: 40}, box)
}

func TestArea(t *testing.T) {
	assert.Equal(t, 1200, BoundingBox{X: 5, Y: 5, Width: 30, Height: 40}.Area())
	assert.Equal(t, 0, BoundingBox{}.Area())
}

func TestOverlapMath(t *testing.T) {
	tests := []struct {
		name         string
		a, b         BoundingBox
		intersection int
		union        int
		iou          float64
	}{
		{
			name:         "half overlap",
			a:            BoundingBox{X: 0, Y: 0, Width: 100, Height: 100},
			b:            BoundingBox{X: 50, Y: 50, Width: 100, Height: 100},
			intersection: 2500,
			union:        17500,
			iou:          2500.0 / 17500.0,
		},
		{
			name:         "disjoint",
			a:            BoundingBox{X: 0, Y: 0, Width: 10, Height: 10},
			b:            BoundingBox{X: 100, Y: 100, Width: 10, Height: 10},
			intersection: 0,
			union:        200,
			iou:          0,
		},
		{
			name:         "identical",
			a:            BoundingBox{X: 5, Y: 5, Width: 20, Height: 20},
			b:            BoundingBox{X: 5, Y: 5, Width: 20, Height: 20},
			intersection: 400,
			union:        400,
			iou:          1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.intersection, tt.a.Intersection(tt.b))
			require.Equal(t, tt.union, tt.a.Union(tt.b))
			assert.InDelta(t, tt.iou, tt.a.IoU(tt.b), 1e-9)
		})
	}
}

func TestIoUEmptyBoxes(t *testing.T) {
	// Both boxes empty: union is zero, IoU must not divide by zero.
	assert.Equal(t, 0.0, BoundingBox{}.IoU(BoundingBox{}))
}
