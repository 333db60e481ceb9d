package display

import (
	"image/color"

	"gocv.io/x/gocv"

	"pupiltrack/internal/pupil"
)

var (
	outlineColor = color.RGBA{R: 255}
	shadeColor   = color.RGBA{R: 255, B: 255}
)

// shadeAlpha is the weight of the camera frame when blending the shaded
// pupil area over it.
const shadeAlpha = 0.7

// Annotate draws the fitted ellipse onto frame: a red boundary outline plus
// a translucent magenta shading of the pupil area. The frame must be a
// 3-channel image.
func Annotate(frame *gocv.Mat, e pupil.Ellipse) {
	axes := e.SemiAxes()
	gocv.Ellipse(frame, e.Center, axes, e.Angle, 0, 360, outlineColor, 1)

	shade := gocv.Zeros(frame.Rows(), frame.Cols(), frame.Type())
	defer shade.Close()
	gocv.Ellipse(&shade, e.Center, axes, e.Angle, 0, 360, shadeColor, -1)
	gocv.AddWeighted(*frame, shadeAlpha, shade, 1-shadeAlpha, 0, frame)
}
