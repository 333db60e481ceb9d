package pupil

import (
	"image"

	"gocv.io/x/gocv"
)

const morphKernelSize = 7

// buildDarkMask marks the candidate pupil region: every pixel at or below
// the lowest histogram spike plus the configured offset. The mask is grown
// by two passes of an elliptical dilation so an underestimated threshold
// still covers the true boundary.
func buildDarkMask(gray gocv.Mat, lowestSpike, offset int) gocv.Mat {
	mask := gocv.NewMat()
	gocv.InRangeWithScalar(gray,
		gocv.NewScalar(0, 0, 0, 0),
		gocv.NewScalar(float64(lowestSpike+offset), 0, 0, 0),
		&mask)

	kernel := gocv.GetStructuringElement(gocv.MorphEllipse, image.Pt(morphKernelSize, morphKernelSize))
	defer kernel.Close()
	for i := 0; i < 2; i++ {
		gocv.Dilate(mask, &mask, kernel)
	}
	return mask
}

// buildGlintMask marks the non-glint region: every pixel at or below the
// highest histogram spike minus the configured offset. Eroding the mask
// shrinks the allowed region, which conservatively drops edges that touch
// a specular reflection.
func buildGlintMask(gray gocv.Mat, highestSpike, offset int) gocv.Mat {
	mask := gocv.NewMat()
	gocv.InRangeWithScalar(gray,
		gocv.NewScalar(0, 0, 0, 0),
		gocv.NewScalar(float64(highestSpike-offset), 0, 0, 0),
		&mask)

	kernel := gocv.GetStructuringElement(gocv.MorphEllipse, image.Pt(morphKernelSize, morphKernelSize))
	defer kernel.Close()
	gocv.Erode(mask, &mask, kernel)
	return mask
}
