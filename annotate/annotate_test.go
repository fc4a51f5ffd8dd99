package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"github.com/quanngo018/smart-city-surveilance-system/common"
)

func testFrame(t *testing.T) gocv.Mat {
	t.Helper()
	frame := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { frame.Close() })
	return frame
}

func TestDrawDoesNotMutateInput(t *testing.T) {
	frame := testFrame(t)
	before := frame.Clone()
	defer before.Close()

	boxes := []common.BoundingBox{
		{X: 10, Y: 20, Width: 40, Height: 30},
		{X: 80, Y: 60, Width: 30, Height: 30},
	}

	out := Draw(frame, boxes, len(boxes))
	defer out.Close()

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(frame, before, &diff)
	assert.Zero(t, gocv.CountNonZero(diff.Reshape(1, diff.Rows())))
}

func TestDrawProducesVisibleAnnotations(t *testing.T) {
	frame := testFrame(t) // all black
	boxes := []common.BoundingBox{{X: 10, Y: 20, Width: 40, Height: 30}}

	out := Draw(frame, boxes, 1)
	defer out.Close()

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(frame, out, &diff)
	assert.Positive(t, gocv.CountNonZero(diff.Reshape(1, diff.Rows())))
}

func TestDrawIsDeterministic(t *testing.T) {
	frame := testFrame(t)
	boxes := []common.BoundingBox{
		{X: 10, Y: 20, Width: 40, Height: 30},
		{X: 100, Y: 40, Width: 25, Height: 50},
	}

	first := Draw(frame, boxes, 2)
	defer first.Close()
	second := Draw(frame, boxes, 2)
	defer second.Close()

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(first, second, &diff)
	assert.Zero(t, gocv.CountNonZero(diff.Reshape(1, diff.Rows())))
}

func TestDrawWithNoBoxes(t *testing.T) {
	frame := testFrame(t)

	// Only the count banner is drawn; the call must still copy, not alias.
	out := Draw(frame, nil, 0)
	defer out.Close()

	require.Equal(t, frame.Rows(), out.Rows())
	require.Equal(t, frame.Cols(), out.Cols())

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(frame, out, &diff)
	assert.Positive(t, gocv.CountNonZero(diff.Reshape(1, diff.Rows())))
}
