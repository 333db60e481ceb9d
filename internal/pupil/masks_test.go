package pupil

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"gocv.io/x/gocv"
)

// splitFrame has a dark left half (10) and a bright right half (100).
func splitFrame() gocv.Mat {
	gray := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(100, 0, 0, 0), 100, 100, gocv.MatTypeCV8UC1)
	gocv.Rectangle(&gray, image.Rect(0, 0, 50, 100), color.RGBA{10, 10, 10, 0}, -1)
	return gray
}

func TestBuildDarkMaskCoversDilatedDarkRegion(t *testing.T) {
	gray := splitFrame()
	defer gray.Close()

	mask := buildDarkMask(gray, 10, 11)
	defer mask.Close()

	assert.EqualValues(t, 255, mask.GetUCharAt(50, 25), "dark region center selected")
	assert.EqualValues(t, 255, mask.GetUCharAt(50, 53), "dilation extends past the boundary")
	assert.EqualValues(t, 0, mask.GetUCharAt(50, 90), "far bright region excluded")
}

func TestBuildGlintMaskErodesAllowedRegion(t *testing.T) {
	gray := splitFrame()
	defer gray.Close()

	mask := buildGlintMask(gray, 100, 5)
	defer mask.Close()

	assert.EqualValues(t, 255, mask.GetUCharAt(50, 25), "below-threshold region selected")
	assert.EqualValues(t, 0, mask.GetUCharAt(50, 48), "erosion retreats from the boundary")
	assert.EqualValues(t, 0, mask.GetUCharAt(50, 75), "bright side excluded")
}
