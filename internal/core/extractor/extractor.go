// Package extractor implements the cubic surface extractor: the
// three-dimensional sweep that turns a sampled VoxelStore into a
// cube-faceted Mesh, deduplicating vertices across adjacent cells under
// a material-equality constraint and optionally merging coplanar
// same-material quads.
package extractor

import (
	"errors"

	"gobs-go/internal/core/mesh"
	"gobs-go/internal/core/region"
	"gobs-go/internal/core/sampler"
	"gobs-go/internal/core/voxel"
)

// ErrVertexSlotExhausted is returned when a lattice position needs a
// ninth distinct material at the same (x, y) within a slab; the design
// limit is eight (MaxVerticesPerPosition). In practice a single lattice
// point is shared by at most eight cells, so the limit is tight but not
// conservative — hitting it means the extraction aborts with no mesh.
var ErrVertexSlotExhausted = errors.New("extractor: vertex slot exhausted at lattice position")

// MaxVerticesPerPosition caps the number of distinct materials that can
// simultaneously claim one (x, y) lattice point within a slab.
const MaxVerticesPerPosition = 8

// FaceNeeded decides whether a face should be emitted between two
// adjacent voxels along some axis. back is the voxel the face belongs to
// and front the voxel it faces: the sweep calls it once as
// (current, neighbor), for a face whose normal points toward -axis, and
// once as (neighbor, current), for a face whose normal points toward
// +axis. ok=true emits a face carrying material; ok=false suppresses the
// face. Must be a pure function with no
// mesh access (see spec.md §9's note on dropping closure-captured mesh
// access from the original).
type FaceNeeded[T voxel.Voxel] func(back, front T) (material T, ok bool)

// DefaultFaceNeeded emits a face, carrying the material of the solid
// side, wherever a non-empty voxel borders an empty one.
func DefaultFaceNeeded[T voxel.Voxel](back, front T) (T, bool) {
	if !back.IsEmpty() && front.IsEmpty() {
		return back, true
	}
	var zero T
	return zero, false
}

// quad holds four vertex indices in consistent winding, plus a merged
// flag used transiently by the merge pass.
type quad struct {
	v0, v1, v2, v3 int32
	merged         bool
}

func newQuad(v0, v1, v2, v3 int32) quad { return quad{v0: v0, v1: v1, v2: v2, v3: v3} }

// maybeMerge absorbs other into q when they share material and an edge,
// per the four coincidence patterns in spec.md §4.5.5. Returns true on a
// successful merge (other should then be marked merged by the caller).
func (q *quad) maybeMerge(other *quad, material func(int32) any) bool {
	if material(q.v0) != material(other.v0) {
		return false
	}
	switch {
	case q.v0 == other.v1 && q.v3 == other.v2:
		q.v0, q.v3 = other.v0, other.v3
	case q.v3 == other.v0 && q.v2 == other.v1:
		q.v3, q.v2 = other.v3, other.v2
	case q.v1 == other.v0 && q.v2 == other.v3:
		q.v1, q.v2 = other.v1, other.v2
	case q.v0 == other.v3 && q.v1 == other.v2:
		q.v0, q.v1 = other.v0, other.v1
	default:
		return false
	}
	return true
}

// performQuadMerging runs one full greedy sweep over quads, merging
// wherever possible, and reports whether any merge happened. The caller
// loops this to a fixed point; each successful merge strictly shrinks
// the slice so termination is guaranteed.
func performQuadMerging(quads []quad, material func(int32) any) ([]quad, bool) {
	mergeFound := false
	for i := range quads {
		a := &quads[i]
		if a.merged {
			continue
		}
		for j := i + 1; j < len(quads); j++ {
			b := &quads[j]
			if b.merged {
				continue
			}
			if a.maybeMerge(b, material) {
				b.merged = true
				mergeFound = true
			}
		}
	}
	if !mergeFound {
		return quads, false
	}
	out := quads[:0]
	for _, q := range quads {
		if !q.merged {
			out = append(out, q)
		}
	}
	return out, true
}

// indexAndMaterial is one slot of the slab vertex-dedup table: -1 means
// empty, otherwise index names a vertex already emitted into the mesh
// carrying material.
type indexAndMaterial[T voxel.Voxel] struct {
	index    int32
	material T
}

// slabTable is the (width+2) x (height+2) x MaxVerticesPerPosition
// lookup used to dedup vertices across cells within, and across, a
// z-slab (spec.md §4.5.3).
type slabTable[T voxel.Voxel] struct {
	data   []indexAndMaterial[T]
	width  int32
	height int32
	area   int32
}

func newSlabTable[T voxel.Voxel](width, height int32) *slabTable[T] {
	area := width * height
	data := make([]indexAndMaterial[T], area*MaxVerticesPerPosition)
	for i := range data {
		data[i].index = -1
	}
	return &slabTable[T]{data: data, width: width, height: height, area: area}
}

func (t *slabTable[T]) clearIndices() {
	for i := range t.data {
		t.data[i].index = -1
	}
}

// addVertex reuses an existing vertex at (x, y) carrying material if one
// exists, otherwise claims the first empty slot and appends a fresh
// vertex at (x, y, z) into result. Returns ErrVertexSlotExhausted if all
// MaxVerticesPerPosition slots at (x, y) are taken by other materials.
func addVertex[T voxel.Voxel](t *slabTable[T], x, y, z int32, material T, result *mesh.Mesh[CubicVertex[T]]) (int32, error) {
	for ct := int32(0); ct < MaxVerticesPerPosition; ct++ {
		idx := x + y*t.width + ct*t.area
		item := &t.data[idx]
		if item.index == -1 {
			item.index = result.AddVertex(newCubicVertex(uint8(x), uint8(y), uint8(z), material))
			item.material = material
			return item.index, nil
		}
		if item.material == material {
			return item.index, nil
		}
	}
	return 0, ErrVertexSlotExhausted
}

// ExtractCubic is the ergonomic entry point: default face predicate
// (solid -> empty emits the solid material), merge-quads on, triangle
// arity.
func ExtractCubic[T voxel.Voxel](s *sampler.Sampler[T], reg region.Region) (*mesh.Mesh[CubicVertex[T]], error) {
	m := mesh.New[CubicVertex[T]](mesh.Three)
	if err := ExtractCubicCustom(s, reg, m, DefaultFaceNeeded[T], true); err != nil {
		return nil, err
	}
	return m, nil
}

// ExtractCubicCustom runs the full sweep described in spec.md §4.5 into
// m (cleared on entry), using isQuadNeeded to decide and material-ize
// each of the three per-cell separations, and merging coplanar
// same-material quads when mergeQuads is set.
func ExtractCubicCustom[T voxel.Voxel](
	s *sampler.Sampler[T],
	reg region.Region,
	m *mesh.Mesh[CubicVertex[T]],
	isQuadNeeded FaceNeeded[T],
	mergeQuads bool,
) error {
	m.Clear()

	width := reg.Width() + 2
	height := reg.Height() + 2
	depth := reg.Depth() + 2

	if reg.Width()+1 > maxAxisCoord || reg.Height()+1 > maxAxisCoord || reg.Depth()+1 > maxAxisCoord {
		panic("extractor: region too large for 8-bit-per-axis vertex encoding (max 254 per side)")
	}

	prevSlice := newSlabTable[T](width, height)
	currSlice := newSlabTable[T](width, height)

	negX := make([][]quad, width)
	posX := make([][]quad, width)
	negY := make([][]quad, height)
	posY := make([][]quad, height)
	negZ := make([][]quad, depth)
	posZ := make([][]quad, depth)

	materialOf := func(idx int32) any { return m.Vertices()[idx].Data }

	for z := reg.LowerZ(); z <= reg.UpperZ(); z++ {
		regZ := z - reg.LowerZ()

		for y := reg.LowerY(); y <= reg.UpperY(); y++ {
			regY := y - reg.LowerY()
			s.SetPosition(reg.LowerX(), y, z)

			for x := reg.LowerX(); x <= reg.UpperX(); x++ {
				regX := x - reg.LowerX()

				current := s.Voxel()
				negXVoxel := s.PeekNegX()
				negYVoxel := s.PeekNegY()
				negZVoxel := s.PeekNegZ()

				if err := emitFace(prevSlice, currSlice, m, regX, regY, regZ, current, negXVoxel, isQuadNeeded, true, negX); err != nil {
					return err
				}
				if err := emitFace(prevSlice, currSlice, m, regX, regY, regZ, negXVoxel, current, isQuadNeeded, false, posX); err != nil {
					return err
				}
				if err := emitFaceY(prevSlice, currSlice, m, regX, regY, regZ, current, negYVoxel, isQuadNeeded, true, negY); err != nil {
					return err
				}
				if err := emitFaceY(prevSlice, currSlice, m, regX, regY, regZ, negYVoxel, current, isQuadNeeded, false, posY); err != nil {
					return err
				}
				if err := emitFaceZ(prevSlice, m, regX, regY, regZ, current, negZVoxel, isQuadNeeded, true, negZ); err != nil {
					return err
				}
				if err := emitFaceZ(prevSlice, m, regX, regY, regZ, negZVoxel, current, isQuadNeeded, false, posZ); err != nil {
					return err
				}

				s.StepPositiveX()
			}
		}

		prevSlice, currSlice = currSlice, prevSlice
		currSlice.clearIndices()
	}

	buckets := [][][]quad{posX, negX, posY, negY, posZ, negZ}
	for _, face := range buckets {
		for plane, quads := range face {
			if mergeQuads {
				for {
					next, found := performQuadMerging(quads, materialOf)
					quads = next
					if !found {
						break
					}
				}
			}

			switch m.FaceArity() {
			case mesh.Three:
				for _, q := range quads {
					m.AddTriangle(q.v0, q.v1, q.v2)
					m.AddTriangle(q.v0, q.v2, q.v3)
				}
			case mesh.Four:
				for _, q := range quads {
					m.AddQuad(q.v0, q.v1, q.v2, q.v3)
				}
			}
			face[plane] = nil
		}
	}

	m.SetOffset(reg.LowerCorner())
	m.RemoveUnusedVertices()

	return nil
}

// emitFace handles the X-axis separation: the face between (x,y,z) and
// its -X neighbor, in both orientations (back,front) and (front,back).
// forward selects the winding: true keeps (v0,v1,v2,v3), false reverses
// to (v0,v3,v2,v1) so +X faces wind the opposite way from -X faces.
func emitFace[T voxel.Voxel](
	prevSlice, currSlice *slabTable[T],
	m *mesh.Mesh[CubicVertex[T]],
	x, y, z int32,
	back, front T,
	needed FaceNeeded[T],
	forward bool,
	bucket [][]quad,
) error {
	material, ok := needed(back, front)
	if !ok {
		return nil
	}

	v0, err := addVertex(prevSlice, x, y, z, material, m)
	if err != nil {
		return err
	}
	v1, err := addVertex(currSlice, x, y, z+1, material, m)
	if err != nil {
		return err
	}
	v2, err := addVertex(currSlice, x, y+1, z+1, material, m)
	if err != nil {
		return err
	}
	v3, err := addVertex(prevSlice, x, y+1, z, material, m)
	if err != nil {
		return err
	}

	if forward {
		bucket[x] = append(bucket[x], newQuad(v0, v1, v2, v3))
	} else {
		bucket[x] = append(bucket[x], newQuad(v0, v3, v2, v1))
	}
	return nil
}

// emitFaceY handles the Y-axis separation, symmetric to emitFace.
func emitFaceY[T voxel.Voxel](
	prevSlice, currSlice *slabTable[T],
	m *mesh.Mesh[CubicVertex[T]],
	x, y, z int32,
	back, front T,
	needed FaceNeeded[T],
	forward bool,
	bucket [][]quad,
) error {
	material, ok := needed(back, front)
	if !ok {
		return nil
	}

	v0, err := addVertex(prevSlice, x, y, z, material, m)
	if err != nil {
		return err
	}
	v1, err := addVertex(prevSlice, x+1, y, z, material, m)
	if err != nil {
		return err
	}
	v2, err := addVertex(currSlice, x+1, y, z+1, material, m)
	if err != nil {
		return err
	}
	v3, err := addVertex(currSlice, x, y, z+1, material, m)
	if err != nil {
		return err
	}

	if forward {
		bucket[y] = append(bucket[y], newQuad(v0, v1, v2, v3))
	} else {
		bucket[y] = append(bucket[y], newQuad(v0, v3, v2, v1))
	}
	return nil
}

// emitFaceZ handles the Z-axis separation. All four corners lie on the
// prevSlice plane (the face is flush with the slab's lower plane), so it
// only ever touches prevSlice.
//
// Bucketed by regZ, not regY: spec.md §9 flags the original's regY
// bucketing for Z-faces as a latent bug (Z-faces on different z-planes
// would share a merge-candidate bucket) that happens not to corrupt
// output only because distinct planes' vertex indices never coincide.
// Indexing by regZ removes the spurious candidates entirely.
func emitFaceZ[T voxel.Voxel](
	prevSlice *slabTable[T],
	m *mesh.Mesh[CubicVertex[T]],
	x, y, z int32,
	back, front T,
	needed FaceNeeded[T],
	forward bool,
	bucket [][]quad,
) error {
	material, ok := needed(back, front)
	if !ok {
		return nil
	}

	v0, err := addVertex(prevSlice, x, y, z, material, m)
	if err != nil {
		return err
	}
	v1, err := addVertex(prevSlice, x, y+1, z, material, m)
	if err != nil {
		return err
	}
	v2, err := addVertex(prevSlice, x+1, y+1, z, material, m)
	if err != nil {
		return err
	}
	v3, err := addVertex(prevSlice, x+1, y, z, material, m)
	if err != nil {
		return err
	}

	if forward {
		bucket[z] = append(bucket[z], newQuad(v0, v1, v2, v3))
	} else {
		bucket[z] = append(bucket[z], newQuad(v0, v3, v2, v1))
	}
	return nil
}
