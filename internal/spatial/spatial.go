// Package spatial provides a broad-phase index over extracted regions
// (e.g. loaded chunks), so queries like "which regions overlap this
// camera frustum's bounding box" don't need a linear scan.
package spatial

import (
	"github.com/dhconnelly/rtreego"

	"gobs-go/internal/core/region"
)

const dims = 3

// minChildren and maxChildren bound the R-tree's fanout; 25/50 mirrors
// rtreego's own recommended defaults for small-to-medium indexes.
const (
	minChildren = 25
	maxChildren = 50
)

// Entry is one indexed region, tagged with an arbitrary owner value
// (a chunk coordinate, a model handle, whatever the caller needs back
// out of a query).
type Entry struct {
	Region region.Region
	Owner  any
}

func (e *Entry) Bounds() *rtreego.Rect {
	lx, ly, lz := float64(e.Region.LowerX()), float64(e.Region.LowerY()), float64(e.Region.LowerZ())
	lengths := []float64{
		float64(e.Region.Width()),
		float64(e.Region.Height()),
		float64(e.Region.Depth()),
	}
	rect, err := rtreego.NewRect(rtreego.Point{lx, ly, lz}, lengths)
	if err != nil {
		// A Region's bounds are validated at construction (upper >= lower
		// on every axis), so lengths are always positive here.
		panic(err)
	}
	return rect
}

// Index is a broad-phase spatial index over Regions.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{tree: rtreego.NewTree(dims, minChildren, maxChildren)}
}

// Insert adds reg to the index, tagged with owner.
func (idx *Index) Insert(reg region.Region, owner any) *Entry {
	e := &Entry{Region: reg, Owner: owner}
	idx.tree.Insert(e)
	return e
}

// Remove removes a previously inserted entry.
func (idx *Index) Remove(e *Entry) bool {
	return idx.tree.Delete(e)
}

// Size returns the number of indexed entries.
func (idx *Index) Size() int {
	return idx.tree.Size()
}

// Overlapping returns every indexed entry whose bounds intersect reg.
func (idx *Index) Overlapping(reg region.Region) []*Entry {
	lx, ly, lz := float64(reg.LowerX()), float64(reg.LowerY()), float64(reg.LowerZ())
	lengths := []float64{float64(reg.Width()), float64(reg.Height()), float64(reg.Depth())}
	rect, err := rtreego.NewRect(rtreego.Point{lx, ly, lz}, lengths)
	if err != nil {
		panic(err)
	}

	results := idx.tree.SearchIntersect(rect)
	entries := make([]*Entry, 0, len(results))
	for _, r := range results {
		entries = append(entries, r.(*Entry))
	}
	return entries
}
