package pupil

import (
	"fmt"

	"gocv.io/x/gocv"
)

// toNormalizedGray produces the working grayscale frame: single channel,
// intensities stretched to the full 0-255 range. The min-max stretch
// compensates for exposure variance between cameras and frames.
func toNormalizedGray(frame gocv.Mat) (gocv.Mat, error) {
	gray := gocv.NewMat()
	switch frame.Channels() {
	case 1:
		frame.CopyTo(&gray)
	case 3:
		gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
	case 4:
		gocv.CvtColor(frame, &gray, gocv.ColorBGRAToGray)
	default:
		gray.Close()
		return gocv.NewMat(), fmt.Errorf("unsupported channel count: %d", frame.Channels())
	}

	gocv.Normalize(gray, &gray, 255, 0, gocv.NormMinMax)
	return gray, nil
}

// applyRegionMask copies the pixels selected by mask out of frame, with the
// unselected area forced to white. The pipeline reads dark regions as pupil
// candidates, so a conventional black fill would be picked up as a giant
// false pupil; inverting around the masked copy renders it bright instead.
func applyRegionMask(frame, mask gocv.Mat) gocv.Mat {
	inverted := gocv.NewMat()
	defer inverted.Close()
	gocv.BitwiseNot(frame, &inverted)

	masked := gocv.Zeros(frame.Rows(), frame.Cols(), frame.Type())
	defer masked.Close()
	inverted.CopyToWithMask(&masked, mask)

	out := gocv.NewMat()
	gocv.BitwiseNot(masked, &out)
	return out
}
