package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gobs-go/internal/diag"
)

func TestSummarizeEmptyIsZeroValue(t *testing.T) {
	s := diag.Summarize(nil)
	assert.Equal(t, diag.MergeStats{}, s)
}

func TestSummarizeComputesMeanMinMax(t *testing.T) {
	samples := []diag.MergeSample{
		{TrianglesBeforeMerge: 192, TrianglesAfterMerge: 12}, // ratio 1/16
		{TrianglesBeforeMerge: 100, TrianglesAfterMerge: 100},
	}
	s := diag.Summarize(samples)

	assert.Equal(t, 2, s.Count)
	assert.InDelta(t, 0.0625, s.Min, 1e-9)
	assert.Equal(t, 1.0, s.Max)
	assert.InDelta(t, (0.0625+1.0)/2, s.Mean, 1e-9)
}

func TestMergeSampleRatioWithZeroBeforeIsZero(t *testing.T) {
	s := diag.MergeSample{TrianglesBeforeMerge: 0, TrianglesAfterMerge: 0}
	assert.Equal(t, 0.0, s.Ratio())
}
