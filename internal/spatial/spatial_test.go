package spatial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gobs-go/internal/core/region"
	"gobs-go/internal/spatial"
)

func TestOverlappingFindsIntersectingRegions(t *testing.T) {
	idx := spatial.NewIndex()
	a := idx.Insert(region.New(0, 0, 0, 15, 15, 15), "chunk-a")
	idx.Insert(region.New(100, 100, 100, 115, 115, 115), "chunk-b")

	hits := idx.Overlapping(region.New(5, 5, 5, 10, 10, 10))
	assert.Len(t, hits, 1)
	assert.Equal(t, a.Owner, hits[0].Owner)
}

func TestRemoveDropsEntryFromFutureQueries(t *testing.T) {
	idx := spatial.NewIndex()
	a := idx.Insert(region.New(0, 0, 0, 15, 15, 15), "chunk-a")
	assert.Equal(t, 1, idx.Size())

	assert.True(t, idx.Remove(a))
	assert.Equal(t, 0, idx.Size())

	hits := idx.Overlapping(region.New(0, 0, 0, 15, 15, 15))
	assert.Empty(t, hits)
}

func TestNonOverlappingRegionsYieldNoHits(t *testing.T) {
	idx := spatial.NewIndex()
	idx.Insert(region.New(0, 0, 0, 15, 15, 15), "chunk-a")

	hits := idx.Overlapping(region.New(1000, 1000, 1000, 1015, 1015, 1015))
	assert.Empty(t, hits)
}
