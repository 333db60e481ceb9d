package pupil

import (
	"image"

	"gocv.io/x/gocv"
)

// selectMergeable decides which edge fragments are large enough to join the
// merged pupil boundary. A fragment qualifies when its point count is at
// least minSize; if no fragment qualifies, the requirement is relaxed by 2
// and every fragment is re-evaluated. The relaxation only ever loosens the
// criterion, so passes are capped at ceil(minSize/2)+1 — beyond that the
// threshold is non-positive and every non-empty fragment qualifies. A
// minSize <= 0 therefore selects everything on the first pass.
func selectMergeable(contours gocv.PointsVector, minSize int) ([]bool, bool) {
	count := contours.Size()
	if count == 0 {
		return nil, false
	}

	maxPasses := minSize/2 + 2
	if maxPasses < 1 {
		maxPasses = 1
	}

	mergeable := make([]bool, count)
	found := false
	relax := 0
	for pass := 0; pass < maxPasses && !found; pass++ {
		for i := 0; i < count; i++ {
			if contours.At(i).Size() >= minSize-relax {
				mergeable[i] = true
				found = true
			}
		}
		relax += 2
	}
	return mergeable, found
}

// mergePoints pools the points of every mergeable fragment into a single
// sequence. The pupil boundary is routinely broken by eyelashes and glint
// overlap, so all qualifying fragments contribute to the fit rather than
// just the largest one.
func mergePoints(contours gocv.PointsVector, mergeable []bool) []image.Point {
	var merged []image.Point
	for i := 0; i < contours.Size(); i++ {
		if mergeable[i] {
			merged = append(merged, contours.At(i).ToPoints()...)
		}
	}
	return merged
}
