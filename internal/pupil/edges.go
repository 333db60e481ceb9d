package pupil

import (
	"image"

	"gocv.io/x/gocv"
)

// blurFrame applies the configured box blur to suppress high-frequency
// noise ahead of edge detection. A kernel size <= 1 returns a plain copy.
func blurFrame(gray gocv.Mat, kernelSize int) gocv.Mat {
	blurred := gocv.NewMat()
	if kernelSize > 1 {
		gocv.Blur(gray, &blurred, image.Pt(kernelSize, kernelSize))
	} else {
		gray.CopyTo(&blurred)
	}
	return blurred
}

// detectEdges runs the Canny detector with the configured hysteresis
// thresholds.
func detectEdges(blurred gocv.Mat, cfg Config) gocv.Mat {
	edges := gocv.NewMat()
	gocv.Canny(blurred, &edges, cfg.CannyThreshold, cfg.CannyThreshold*cfg.CannyRatio)
	return edges
}

// pruneEdges restricts edges in place to pixels set in both region masks.
// The pixelwise minimum keeps an edge pixel only where edges, darkMask,
// and glintMask are all 255, discarding edges outside the plausible pupil
// region and edges coincident with glints.
func pruneEdges(edges *gocv.Mat, darkMask, glintMask gocv.Mat) {
	gocv.Min(*edges, darkMask, edges)
	gocv.Min(*edges, glintMask, edges)
}
