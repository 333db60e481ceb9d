package pupil

import (
	"image"

	"gocv.io/x/gocv"
)

// Ellipse describes a fitted pupil boundary. Axes are full axis lengths,
// matching the rotated-rectangle convention of the fitting routine; Angle
// is in degrees.
type Ellipse struct {
	Center image.Point
	Axes   image.Point
	Angle  float64
}

func ellipseFromRect(rect gocv.RotatedRect) Ellipse {
	return Ellipse{
		Center: rect.Center,
		Axes:   image.Pt(rect.Width, rect.Height),
		Angle:  rect.Angle,
	}
}

// SemiAxes returns the half axis lengths used when rendering the ellipse.
func (e Ellipse) SemiAxes() image.Point {
	return image.Pt(e.Axes.X/2, e.Axes.Y/2)
}
