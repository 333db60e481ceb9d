package pupil

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"pupiltrack/internal/logger"
)

// ErrEmptyFrame reports a frame with no pixel data. It is distinct from a
// no-detection result: callers must not confuse "no pupil" with "no image".
var ErrEmptyFrame = errors.New("empty frame")

// fitEllipse requires at least five points to determine the conic.
const minFitPoints = 5

// StageSink receives intermediate pipeline images when debug capture is
// enabled. The sink owns each Mat it is handed and must Close it. Stage is
// called synchronously from FindPupil, once per pipeline stage, in order.
type StageSink interface {
	Stage(name string, img gocv.Mat)
}

// Tracker locates a pupil in eye camera frames and fits an ellipse to its
// boundary. A Tracker is stateful across frames only through its settings,
// the optional region-of-interest mask, and the last successful result; it
// is not safe for concurrent use — run one Tracker per stream.
type Tracker struct {
	cfg Config
	log logger.Logger

	sink StageSink

	frameWidth  int
	frameHeight int

	regionMask gocv.Mat
	hasRegion  bool

	ellipse Ellipse
	tracked bool
}

// NewTracker creates a tracker with the given settings. A nil logger is
// replaced with a no-op logger.
func NewTracker(cfg Config, log logger.Logger) (*Tracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tracker config: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Tracker{cfg: cfg, log: log}, nil
}

// Close releases the region-of-interest mask, if any.
func (t *Tracker) Close() {
	if t.hasRegion {
		t.regionMask.Close()
		t.hasRegion = false
	}
}

// SetStageSink installs a debug capture sink. A nil sink disables capture;
// with capture disabled the pipeline performs no extra clones.
func (t *Tracker) SetStageSink(sink StageSink) {
	t.sink = sink
}

// SetFrameDimensions records the session frame size. The region mask is
// resized to it on assignment, and again here if the dimensions change.
func (t *Tracker) SetFrameDimensions(width, height int) {
	if width == t.frameWidth && height == t.frameHeight {
		return
	}
	t.frameWidth = width
	t.frameHeight = height
	if t.hasRegion && (t.regionMask.Cols() != width || t.regionMask.Rows() != height) {
		gocv.Resize(t.regionMask, &t.regionMask, image.Pt(width, height), 0, 0, gocv.InterpolationLinear)
	}
}

// SetRegionOfInterest installs a session mask restricting which pixels the
// pipeline may consider. Nonzero mask pixels select; the mask is cloned,
// reduced to a single channel, and resized to the session frame size if the
// dimensions differ. The mask persists across frames until replaced.
func (t *Tracker) SetRegionOfInterest(mask gocv.Mat) error {
	if mask.Empty() {
		return fmt.Errorf("set region of interest: %w", ErrEmptyFrame)
	}

	gray := gocv.NewMat()
	switch mask.Channels() {
	case 1:
		mask.CopyTo(&gray)
	case 3:
		gocv.CvtColor(mask, &gray, gocv.ColorBGRToGray)
	case 4:
		gocv.CvtColor(mask, &gray, gocv.ColorBGRAToGray)
	default:
		gray.Close()
		return fmt.Errorf("unsupported mask channel count: %d", mask.Channels())
	}

	if t.frameWidth > 0 && t.frameHeight > 0 &&
		(gray.Cols() != t.frameWidth || gray.Rows() != t.frameHeight) {
		gocv.Resize(gray, &gray, image.Pt(t.frameWidth, t.frameHeight), 0, 0, gocv.InterpolationLinear)
	}

	if t.hasRegion {
		t.regionMask.Close()
	}
	t.regionMask = gray
	t.hasRegion = true
	return nil
}

// EllipseCenter returns the center of the last successfully fitted ellipse.
// The value is stale until FindPupil has succeeded at least once.
func (t *Tracker) EllipseCenter() image.Point {
	return t.ellipse.Center
}

// EllipseRectangle returns the last successfully fitted ellipse.
func (t *Tracker) EllipseRectangle() Ellipse {
	return t.ellipse
}

// Tracked reports whether any frame has produced a successful fit yet.
func (t *Tracker) Tracked() bool {
	return t.tracked
}

// FindPupil runs the detection pipeline on one frame. It returns true and
// updates the stored ellipse when a pupil boundary was fitted; it returns
// false with a nil error when no boundary fragment qualified, which is the
// expected steady state for closed eyes or heavy occlusion. The caller's
// frame is never modified.
func (t *Tracker) FindPupil(frame gocv.Mat) (bool, error) {
	if frame.Empty() || frame.Cols() <= 0 || frame.Rows() <= 0 {
		return false, fmt.Errorf("find pupil: %w", ErrEmptyFrame)
	}

	src := frame
	if t.hasRegion {
		mask := t.regionMask
		if mask.Cols() != frame.Cols() || mask.Rows() != frame.Rows() {
			resized := gocv.NewMat()
			defer resized.Close()
			gocv.Resize(mask, &resized, image.Pt(frame.Cols(), frame.Rows()), 0, 0, gocv.InterpolationLinear)
			mask = resized
		}
		masked := applyRegionMask(frame, mask)
		defer masked.Close()
		src = masked
	}

	gray, err := toNormalizedGray(src)
	if err != nil {
		return false, fmt.Errorf("find pupil: %w", err)
	}
	defer gray.Close()
	t.capture("grayscale", gray)

	lowestSpike, highestSpike, err := findHistogramSpikes(gray)
	if err != nil {
		return false, fmt.Errorf("find pupil: %w", err)
	}

	darkMask := buildDarkMask(gray, lowestSpike, t.cfg.PupilIntensityOffset)
	defer darkMask.Close()
	t.capture("darkMask", darkMask)

	glintMask := buildGlintMask(gray, highestSpike, t.cfg.GlintIntensityOffset)
	defer glintMask.Close()
	t.capture("glintMask", glintMask)

	blurred := blurFrame(gray, t.cfg.BlurKernelSize)
	defer blurred.Close()
	t.capture("imageBlurred", blurred)

	edges := detectEdges(blurred, t.cfg)
	defer edges.Close()
	t.capture("edges", edges)

	pruneEdges(&edges, darkMask, glintMask)
	t.capture("edgesPruned", edges)

	contours := gocv.FindContours(edges, gocv.RetrievalCComp, gocv.ChainApproxSimple)
	defer contours.Close()

	mergeable, found := selectMergeable(contours, t.cfg.MinContourSize)
	if t.sink != nil {
		t.captureContours(edges, contours, mergeable)
	}

	if !found {
		t.log.Debug("pupil", "no contour qualified for merging", map[string]interface{}{
			"contours":      contours.Size(),
			"lowest_spike":  lowestSpike,
			"highest_spike": highestSpike,
		})
		return false, nil
	}

	merged := mergePoints(contours, mergeable)
	if len(merged) < minFitPoints {
		t.log.Debug("pupil", "merged boundary too small for ellipse fit", map[string]interface{}{
			"points": len(merged),
		})
		return false, nil
	}

	points := gocv.NewPointVectorFromPoints(merged)
	defer points.Close()
	t.ellipse = ellipseFromRect(gocv.FitEllipse(points))
	t.tracked = true

	t.log.Debug("pupil", "pupil located", map[string]interface{}{
		"center_x":      t.ellipse.Center.X,
		"center_y":      t.ellipse.Center.Y,
		"axes_x":        t.ellipse.Axes.X,
		"axes_y":        t.ellipse.Axes.Y,
		"angle":         t.ellipse.Angle,
		"merged_points": len(merged),
	})
	return true, nil
}

func (t *Tracker) capture(name string, img gocv.Mat) {
	if t.sink == nil {
		return
	}
	t.sink.Stage(name, img.Clone())
}

// captureContours renders the raw and the merge-selected contours for the
// debug display.
func (t *Tracker) captureContours(edges gocv.Mat, contours gocv.PointsVector, mergeable []bool) {
	all := gocv.Zeros(edges.Rows(), edges.Cols(), gocv.MatTypeCV8UC1)
	filtered := gocv.Zeros(edges.Rows(), edges.Cols(), gocv.MatTypeCV8UC1)

	white := color.RGBA{255, 255, 255, 0}
	for i := 0; i < contours.Size(); i++ {
		gocv.DrawContours(&all, contours, i, white, 1)
		if mergeable != nil && mergeable[i] {
			gocv.DrawContours(&filtered, contours, i, white, 1)
		}
	}

	t.sink.Stage("edgesContoured", all)
	t.sink.Stage("filteredContours", filtered)
}
