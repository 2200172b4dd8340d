// Package diag collects summary statistics about extraction runs, for
// tuning merge heuristics and spotting regressions across builds.
package diag

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// MergeSample is one extraction's before/after triangle counts.
type MergeSample struct {
	TrianglesBeforeMerge int
	TrianglesAfterMerge  int
}

// Ratio returns TrianglesAfterMerge / TrianglesBeforeMerge, or 0 if the
// sample had no geometry.
func (s MergeSample) Ratio() float64 {
	if s.TrianglesBeforeMerge == 0 {
		return 0
	}
	return float64(s.TrianglesAfterMerge) / float64(s.TrianglesBeforeMerge)
}

// MergeStats summarizes merge-ratio behavior across a batch of extraction
// runs (e.g. every chunk remeshed this frame).
type MergeStats struct {
	Mean     float64
	StdDev   float64
	Min, Max float64
	Count    int
}

// Summarize computes mean, standard deviation, and range of the merge
// ratios in samples. An empty input yields a zero-value MergeStats.
func Summarize(samples []MergeSample) MergeStats {
	if len(samples) == 0 {
		return MergeStats{}
	}

	ratios := make([]float64, len(samples))
	for i, s := range samples {
		ratios[i] = s.Ratio()
	}

	mean, variance := stat.MeanVariance(ratios, nil)
	lo, hi := ratios[0], ratios[0]
	for _, r := range ratios[1:] {
		if r < lo {
			lo = r
		}
		if r > hi {
			hi = r
		}
	}

	return MergeStats{
		Mean:   mean,
		StdDev: math.Sqrt(variance),
		Min:    lo,
		Max:    hi,
		Count:  len(samples),
	}
}
