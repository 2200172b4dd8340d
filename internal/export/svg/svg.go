// Package svg renders per-Z-slice debug views of a VoxelStore, one
// filled square per occupied cell, for eyeballing extraction results
// without a GPU viewer.
package svg

import (
	"fmt"
	"io"

	svgo "github.com/ajstarks/svgo"

	"gobs-go/internal/core/store"
	"gobs-go/internal/core/voxel"
)

// CellSize is the pixel size of one voxel cell in the rendered slice.
const CellSize = 16

// ColorFunc maps a voxel value to a fill color string (e.g. "#ff8800").
type ColorFunc[T voxel.Voxel] func(v T) string

// WriteSlice renders the single Z slice z of s to w as an SVG document.
func WriteSlice[T voxel.Voxel](w io.Writer, s *store.VoxelStore[T], z int32, color ColorFunc[T]) error {
	reg := s.Region()
	width := int(reg.Width()) * CellSize
	height := int(reg.Height()) * CellSize

	canvas := svgo.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#101010")

	for y := reg.LowerY(); y <= reg.UpperY(); y++ {
		for x := reg.LowerX(); x <= reg.UpperX(); x++ {
			v := s.Get(x, y, z)
			if v.IsEmpty() {
				continue
			}
			px := int(x-reg.LowerX()) * CellSize
			py := int(y-reg.LowerY()) * CellSize
			style := fmt.Sprintf("fill:%s;stroke:#000000", color(v))
			canvas.Square(px, py, CellSize, style)
		}
	}

	canvas.End()
	return nil
}
