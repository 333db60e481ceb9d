package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gocv.io/x/gocv"

	"pupiltrack/internal/capture"
	"pupiltrack/internal/display"
	"pupiltrack/internal/logger"
	"pupiltrack/internal/maskio"
	"pupiltrack/internal/pupil"
)

// Options holds the command line configuration for a tracking run.
type Options struct {
	Source      string
	Display     bool
	FlipDisplay bool
	MaskPath    string
	Frames      int
	LogLevel    string

	Blur           int
	CannyThreshold float32
	CannyRatio     float32
	PupilOffset    int
	GlintOffset    int
	MinContourSize int
}

var opts Options

var rootCmd = &cobra.Command{
	Use:   "pupiltrack",
	Short: "Canny edge based pupil tracker for eye camera streams",
	Long: `pupiltrack locates the pupil in each frame of an eye camera stream and
fits an ellipse to its boundary. The source may be a capture device index
or a video file path. With --display enabled, the intermediate pipeline
images are tiled in a diagnostic window alongside the annotated frame.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&opts.Source, "source", "s", "0", "video source: device index or file path")
	flags.BoolVarP(&opts.Display, "display", "d", false, "show the diagnostic tile window")
	flags.BoolVar(&opts.FlipDisplay, "flip", false, "mirror the annotated frame horizontally")
	flags.StringVarP(&opts.MaskPath, "mask", "m", "", "region of interest mask image file")
	flags.IntVar(&opts.Frames, "frames", 0, "stop after this many frames (0 = run until interrupted)")
	flags.StringVar(&opts.LogLevel, "log-level", "info", "log level: debug, info, warn, error")

	flags.IntVar(&opts.Blur, "blur", 5, "box blur kernel size (<=1 disables)")
	flags.Float32Var(&opts.CannyThreshold, "canny-threshold", 159, "canny low threshold")
	flags.Float32Var(&opts.CannyRatio, "canny-ratio", 2, "canny high threshold ratio")
	flags.IntVar(&opts.PupilOffset, "pupil-offset", 11, "dark mask offset past the lowest histogram spike")
	flags.IntVar(&opts.GlintOffset, "glint-offset", 5, "bright mask offset below the highest histogram spike")
	flags.IntVar(&opts.MinContourSize, "min-contour-size", 80, "minimum contour point count before relaxation")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	log := logger.NewConsoleLogger(parseLogLevel(opts.LogLevel))

	cfg := pupil.DefaultConfig()
	cfg.BlurKernelSize = opts.Blur
	cfg.CannyThreshold = opts.CannyThreshold
	cfg.CannyRatio = opts.CannyRatio
	cfg.PupilIntensityOffset = opts.PupilOffset
	cfg.GlintIntensityOffset = opts.GlintOffset
	cfg.MinContourSize = opts.MinContourSize

	tracker, err := pupil.NewTracker(cfg, log)
	if err != nil {
		return err
	}
	defer tracker.Close()

	source, err := capture.Open(opts.Source)
	if err != nil {
		return err
	}
	defer source.Close()

	if opts.MaskPath != "" {
		mask, err := maskio.Load(opts.MaskPath)
		if err != nil {
			return err
		}
		err = tracker.SetRegionOfInterest(mask)
		mask.Close()
		if err != nil {
			return err
		}
		log.Info("main", "region of interest mask loaded", map[string]interface{}{
			"path": opts.MaskPath,
		})
	}

	var board *display.TileBoard
	var window *gocv.Window
	if opts.Display {
		board = display.NewTileBoard(capture.FrameWidth, capture.FrameHeight)
		defer board.Close()
		tracker.SetStageSink(board)
		window = gocv.NewWindow("pupiltrack")
		defer window.Close()
	}

	log.Info("main", "tracking started", map[string]interface{}{
		"source":  source.Name(),
		"display": opts.Display,
	})

	frame := gocv.NewMat()
	defer frame.Close()

	for processed := 0; opts.Frames == 0 || processed < opts.Frames; processed++ {
		if !source.Read(&frame) {
			log.Warning("main", "unable to capture image from source", nil)
			break
		}

		tracker.SetFrameDimensions(frame.Cols(), frame.Rows())

		start := time.Now()
		tracked, err := tracker.FindPupil(frame)
		if err != nil {
			return fmt.Errorf("tracking failed: %w", err)
		}
		elapsed := time.Since(start)

		if !tracked {
			log.Warning("main", "unable to locate pupil", nil)
		}

		center := tracker.EllipseCenter()
		log.Debug("main", "frame processed", map[string]interface{}{
			"process_ms": elapsed.Milliseconds(),
			"tracked":    tracked,
			"center_x":   center.X,
			"center_y":   center.Y,
		})

		if opts.Display {
			if !showFrame(window, board, tracker, frame, tracked) {
				break
			}
		}
	}

	return nil
}

// showFrame annotates the camera frame, composes the stage tile board, and
// presents it. Returns false when the user quits the window.
func showFrame(window *gocv.Window, board *display.TileBoard, tracker *pupil.Tracker, frame gocv.Mat, tracked bool) bool {
	annotated := gocv.NewMat()
	if frame.Channels() == 1 {
		gocv.CvtColor(frame, &annotated, gocv.ColorGrayToBGR)
	} else {
		frame.CopyTo(&annotated)
	}
	if tracked {
		display.Annotate(&annotated, tracker.EllipseRectangle())
	}
	if opts.FlipDisplay {
		gocv.Flip(annotated, &annotated, 1)
	}
	board.Add(annotated)

	tiled := board.Compose()
	window.IMShow(tiled)
	tiled.Close()
	board.Reset()

	return window.WaitKey(1) != 'q'
}

func parseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
