package pupil

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func TestToNormalizedGrayStretchesRange(t *testing.T) {
	gray := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(150, 0, 0, 0), 50, 50, gocv.MatTypeCV8UC1)
	defer gray.Close()
	gocv.Rectangle(&gray, image.Rect(0, 0, 25, 50), color.RGBA{50, 50, 50, 0}, -1)

	norm, err := toNormalizedGray(gray)
	require.NoError(t, err)
	defer norm.Close()

	minVal, maxVal, _, _ := gocv.MinMaxLoc(norm)
	assert.EqualValues(t, 0, minVal)
	assert.EqualValues(t, 255, maxVal)
}

func TestToNormalizedGrayConvertsColor(t *testing.T) {
	frame := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(90, 90, 90, 0), 40, 60, gocv.MatTypeCV8UC3)
	defer frame.Close()

	norm, err := toNormalizedGray(frame)
	require.NoError(t, err)
	defer norm.Close()

	assert.Equal(t, 1, norm.Channels())
	assert.Equal(t, 40, norm.Rows())
	assert.Equal(t, 60, norm.Cols())
}

func TestApplyRegionMaskRendersExcludedAreaWhite(t *testing.T) {
	frame := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(40, 0, 0, 0), 100, 100, gocv.MatTypeCV8UC1)
	defer frame.Close()

	mask := gocv.Zeros(100, 100, gocv.MatTypeCV8UC1)
	defer mask.Close()
	gocv.Rectangle(&mask, image.Rect(0, 0, 50, 100), color.RGBA{255, 255, 255, 0}, -1)

	out := applyRegionMask(frame, mask)
	defer out.Close()

	assert.EqualValues(t, 40, out.GetUCharAt(50, 25), "selected pixels keep their intensity")
	assert.EqualValues(t, 255, out.GetUCharAt(50, 75), "masked-out pixels read as white, not black")
}
