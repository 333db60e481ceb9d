package pupil

import (
	"fmt"

	"gocv.io/x/gocv"
)

const (
	histogramBins = 256

	// minSpikeSize is the bin count above which a bin is treated as a
	// dominant intensity mode.
	minSpikeSize = 40
)

// findHistogramSpikes builds the intensity histogram of gray and returns the
// lowest and highest spike bins. A bimodal eye image yields the dark pupil
// mode and the bright sclera/background mode; anything with fewer than two
// spikes falls back to the permissive (0, 255) range instead of failing.
func findHistogramSpikes(gray gocv.Mat) (lowest, highest int, err error) {
	hist := gocv.NewMat()
	defer hist.Close()
	mask := gocv.NewMat()
	defer mask.Close()

	if err := gocv.CalcHist([]gocv.Mat{gray}, []int{0}, mask, &hist,
		[]int{histogramBins}, []float64{0, 256}, false); err != nil {
		return 0, 255, fmt.Errorf("histogram calculation failed: %w", err)
	}

	lowest = histogramBins - 1
	highest = 0
	spikes := 0
	for i := 0; i < histogramBins; i++ {
		if hist.GetFloatAt(i, 0) >= minSpikeSize {
			spikes++
			if i < lowest {
				lowest = i
			}
			if i > highest {
				highest = i
			}
		}
	}

	if spikes < 2 {
		return 0, 255, nil
	}
	return lowest, highest, nil
}
