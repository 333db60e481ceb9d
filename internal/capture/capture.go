// Package capture opens and configures the eye camera video source.
package capture

import (
	"fmt"
	"strconv"
	"strings"

	"gocv.io/x/gocv"
)

// Eye camera defaults for the headset rig. Applied only to device sources;
// file sources keep their recorded properties.
const (
	FrameWidth  = 640
	FrameHeight = 360
	FrameRate   = 30
	Brightness  = 128
	Contrast    = 10
	Saturation  = 0
	Hue         = 0
	Gain        = 0
	Exposure    = -6
)

// Source wraps a video capture device or file. A source string consisting
// only of digits is opened as a device index; anything else is opened as a
// file path.
type Source struct {
	cap    *gocv.VideoCapture
	isFile bool
	name   string
}

// IsDeviceSource reports whether source names a capture device index
// rather than a video file.
func IsDeviceSource(source string) bool {
	if source == "" {
		return false
	}
	return strings.IndexFunc(source, func(r rune) bool {
		return r < '0' || r > '9'
	}) == -1
}

// Open opens the named video source and, for devices, applies the eye
// camera parameter set.
func Open(source string) (*Source, error) {
	if IsDeviceSource(source) {
		id, err := strconv.Atoi(source)
		if err != nil {
			return nil, fmt.Errorf("invalid device index %q: %w", source, err)
		}
		cap, err := gocv.VideoCaptureDevice(id)
		if err != nil {
			return nil, fmt.Errorf("unable to open capture device %d: %w", id, err)
		}
		s := &Source{cap: cap, name: source}
		s.configure()
		return s, nil
	}

	cap, err := gocv.VideoCaptureFile(source)
	if err != nil {
		return nil, fmt.Errorf("unable to open video file %q: %w", source, err)
	}
	return &Source{cap: cap, isFile: true, name: source}, nil
}

func (s *Source) configure() {
	s.cap.Set(gocv.VideoCaptureFrameWidth, FrameWidth)
	s.cap.Set(gocv.VideoCaptureFrameHeight, FrameHeight)
	s.cap.Set(gocv.VideoCaptureFPS, FrameRate)
	s.cap.Set(gocv.VideoCaptureBrightness, Brightness)
	s.cap.Set(gocv.VideoCaptureContrast, Contrast)
	s.cap.Set(gocv.VideoCaptureSaturation, Saturation)
	s.cap.Set(gocv.VideoCaptureHue, Hue)
	s.cap.Set(gocv.VideoCaptureGain, Gain)
	s.cap.Set(gocv.VideoCaptureExposure, Exposure)
	s.cap.Set(gocv.VideoCaptureConvertRGB, 0)
}

// Name returns the source string the capture was opened with.
func (s *Source) Name() string {
	return s.name
}

// Read grabs the next frame into dst. File sources rewind to the first
// frame on a failed read so recorded clips loop; a second consecutive
// failure reports false.
func (s *Source) Read(dst *gocv.Mat) bool {
	if s.cap.Read(dst) {
		return true
	}
	if s.isFile {
		s.cap.Set(gocv.VideoCapturePosFrames, 0)
		return s.cap.Read(dst)
	}
	return false
}

// Close releases the underlying capture.
func (s *Source) Close() error {
	return s.cap.Close()
}
