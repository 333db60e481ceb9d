// Package maskio loads region-of-interest mask images from disk.
package maskio

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	"gocv.io/x/gocv"
)

// Load reads a mask image file and returns it as a single-channel 0/255
// Mat. Any nonzero source pixel selects, so hand-painted masks saved with
// antialiased edges still behave as binary masks.
func Load(path string) (gocv.Mat, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("unable to read mask image %q: %w", path, err)
	}

	mat, err := gocv.ImageGrayToMatGray(toGray(imaging.Grayscale(img)))
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("unable to convert mask image %q: %w", path, err)
	}

	gocv.Threshold(mat, &mat, 0, 255, gocv.ThresholdBinary)
	return mat, nil
}

func toGray(img image.Image) *image.Gray {
	if gray, ok := img.(*image.Gray); ok {
		return gray
	}
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	return gray
}
