package irt

import (
	"math"
	"sort"
)

// edgeOffset is how far past the covered difficulty range the next target
// moves when theta sits outside it.
const edgeOffset = 0.5

// maxGapMidpointDistance limits gap targeting to midpoints near theta.
const maxGapMidpointDistance = 1.0

// OptimalNextDifficulty returns the difficulty the next item should target
// given the current estimate and the difficulties already answered.
//
// With no history the target is theta itself. When theta lies outside the
// covered difficulty range, the target steps 0.5 past theta toward the
// uncovered side. Otherwise consecutive covered difficulties are scanned in
// ascending order for the widest gap whose midpoint is within 1.0 of theta;
// the first gap strictly wider than the best seen so far wins, which makes
// the choice deterministic. With no qualifying gap the target stays at theta.
func OptimalNextDifficulty(theta float64, answered []float64) float64 {
	if len(answered) == 0 {
		return ClampTheta(theta)
	}

	covered := make([]float64, len(answered))
	copy(covered, answered)
	sort.Float64s(covered)

	lo := covered[0]
	hi := covered[len(covered)-1]

	if theta < lo {
		return ClampTheta(theta - edgeOffset)
	}
	if theta > hi {
		return ClampTheta(theta + edgeOffset)
	}

	target := theta
	bestGap := 0.0
	for i := 0; i+1 < len(covered); i++ {
		gap := covered[i+1] - covered[i]
		mid := (covered[i] + covered[i+1]) / 2
		if gap > bestGap && math.Abs(mid-theta) <= maxGapMidpointDistance {
			bestGap = gap
			target = mid
		}
	}
	return ClampTheta(target)
}
