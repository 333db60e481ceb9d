package pupil

import "fmt"

// Config holds the tunable parameters for the pupil detection pipeline.
// A Config is a plain value: the tracker copies it at construction and the
// pipeline never mutates it, so a frame's result is a function of
// (frame, region mask, config) only.
type Config struct {
	// BlurKernelSize is the edge length of the box blur applied before
	// edge detection. Values <= 1 disable blurring.
	BlurKernelSize int

	// CannyThreshold is the low hysteresis threshold for the Canny edge
	// detector. The high threshold is CannyThreshold * CannyRatio.
	CannyThreshold float32
	CannyRatio     float32

	// CannyAperture is the Sobel aperture of the reference tool's edge
	// detector. The gocv Canny binding does not expose the aperture and
	// always uses OpenCV's 3x3 default, so this value is carried for
	// parameter-set compatibility only.
	CannyAperture int

	// PupilIntensityOffset widens the dark-mask cutoff past the lowest
	// histogram spike.
	PupilIntensityOffset int

	// GlintIntensityOffset narrows the bright-mask cutoff below the
	// highest histogram spike.
	GlintIntensityOffset int

	// MinContourSize is the minimum point count for an edge fragment to
	// join the merge set before relaxation begins.
	MinContourSize int
}

// DefaultConfig returns the tracker settings of the reference headset rig.
func DefaultConfig() Config {
	return Config{
		BlurKernelSize:       5,
		CannyThreshold:       159,
		CannyRatio:           2,
		CannyAperture:        5,
		PupilIntensityOffset: 11,
		GlintIntensityOffset: 5,
		MinContourSize:       80,
	}
}

// Validate rejects settings the pipeline cannot run with. MinContourSize
// values <= 0 are accepted; the merge step degenerates to "merge every
// fragment" for them rather than looping.
func (c Config) Validate() error {
	if c.CannyThreshold <= 0 {
		return fmt.Errorf("canny threshold must be positive, got %v", c.CannyThreshold)
	}
	if c.CannyRatio < 1 {
		return fmt.Errorf("canny ratio must be >= 1, got %v", c.CannyRatio)
	}
	if c.PupilIntensityOffset < 0 {
		return fmt.Errorf("pupil intensity offset must be >= 0, got %d", c.PupilIntensityOffset)
	}
	if c.GlintIntensityOffset < 0 {
		return fmt.Errorf("glint intensity offset must be >= 0, got %d", c.GlintIntensityOffset)
	}
	return nil
}
