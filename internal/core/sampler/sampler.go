// Package sampler provides a moveable cursor over a VoxelStore that
// answers "voxel here" and 26-neighbor peek queries in O(1), by keeping
// a cached linear offset in sync with the cursor position.
package sampler

import (
	"gobs-go/internal/core/region"
	"gobs-go/internal/core/store"
	"gobs-go/internal/core/voxel"
)

// Sampler is a cursor (x, y, z) into a VoxelStore. Reads at or around the
// cursor are O(1): set_position recomputes a cached linear offset and
// three per-axis validity flags; stepping by one unit updates the cached
// offset by a single additive delta instead of recomputing it.
type Sampler[T voxel.Voxel] struct {
	data   []T
	region region.Region
	border T

	x, y, z int32

	offset  int32
	hasOff  bool
	xValid  bool
	yValid  bool
	zValid  bool
}

// New creates a sampler positioned at the store's region's lower corner.
func New[T voxel.Voxel](s *store.VoxelStore[T]) *Sampler[T] {
	reg := s.Region()
	sm := &Sampler[T]{
		data:   s.RawData(),
		region: reg,
		border: s.BorderValue(),
	}
	sm.SetPosition(reg.LowerX(), reg.LowerY(), reg.LowerZ())
	return sm
}

func (s *Sampler[T]) width() int32 { return s.region.Width() }
func (s *Sampler[T]) area() int32  { return s.region.Area() }

func (s *Sampler[T]) valid() bool { return s.xValid && s.yValid && s.zValid }

func (s *Sampler[T]) linearOffset(x, y, z int32) (int32, bool) {
	if !s.region.ContainsPoint(x, y, z) {
		return 0, false
	}
	lx := x - s.region.LowerX()
	ly := y - s.region.LowerY()
	lz := z - s.region.LowerZ()
	return lx + ly*s.width() + lz*s.area(), true
}

// SetPosition performs an absolute seek, recomputing the cached offset
// and validity flags from scratch.
func (s *Sampler[T]) SetPosition(x, y, z int32) {
	s.x, s.y, s.z = x, y, z
	s.xValid = s.region.ContainsPointInX(x)
	s.yValid = s.region.ContainsPointInY(y)
	s.zValid = s.region.ContainsPointInZ(z)

	off, ok := s.linearOffset(x, y, z)
	s.offset, s.hasOff = off, ok
}

// Voxel returns the value at the cursor, or the border value when the
// cursor is outside the region.
func (s *Sampler[T]) Voxel() T {
	if s.hasOff {
		return s.data[s.offset]
	}
	return s.border
}

func (s *Sampler[T]) canGoNegX() bool { return s.x > s.region.LowerX() }
func (s *Sampler[T]) canGoNegY() bool { return s.y > s.region.LowerY() }
func (s *Sampler[T]) canGoNegZ() bool { return s.z > s.region.LowerZ() }
func (s *Sampler[T]) canGoPosX() bool { return s.x < s.region.UpperX() }
func (s *Sampler[T]) canGoPosY() bool { return s.y < s.region.UpperY() }
func (s *Sampler[T]) canGoPosZ() bool { return s.z < s.region.UpperZ() }

// StepPositiveX moves the cursor one unit in +X, updating the cached
// offset by +1 when the move stays inside the region.
func (s *Sampler[T]) StepPositiveX() { s.stepX(1) }

// StepNegativeX moves the cursor one unit in -X.
func (s *Sampler[T]) StepNegativeX() { s.stepX(-1) }

// StepPositiveY moves the cursor one unit in +Y, updating the cached
// offset by +width.
func (s *Sampler[T]) StepPositiveY() { s.stepY(1) }

// StepNegativeY moves the cursor one unit in -Y.
func (s *Sampler[T]) StepNegativeY() { s.stepY(-1) }

// StepPositiveZ moves the cursor one unit in +Z, updating the cached
// offset by +area.
func (s *Sampler[T]) StepPositiveZ() { s.stepZ(1) }

// StepNegativeZ moves the cursor one unit in -Z.
func (s *Sampler[T]) StepNegativeZ() { s.stepZ(-1) }

func (s *Sampler[T]) stepX(delta int32) {
	wasValid := s.valid()
	s.x += delta
	s.xValid = s.region.ContainsPointInX(s.x)
	if wasValid && s.valid() {
		s.offset += delta
	} else {
		s.offset, s.hasOff = s.linearOffset(s.x, s.y, s.z)
	}
}

func (s *Sampler[T]) stepY(delta int32) {
	wasValid := s.valid()
	s.y += delta
	s.yValid = s.region.ContainsPointInY(s.y)
	if wasValid && s.valid() {
		s.offset += delta * s.width()
	} else {
		s.offset, s.hasOff = s.linearOffset(s.x, s.y, s.z)
	}
}

func (s *Sampler[T]) stepZ(delta int32) {
	wasValid := s.valid()
	s.z += delta
	s.zValid = s.region.ContainsPointInZ(s.z)
	if wasValid && s.valid() {
		s.offset += delta * s.area()
	} else {
		s.offset, s.hasOff = s.linearOffset(s.x, s.y, s.z)
	}
}

// Peek returns the voxel at (cursor + (dx, dy, dz)), each in {-1, 0, 1}.
// When the cursor is inside the region and every stepped axis also stays
// inside, the peek reads the neighbor directly off the cached offset;
// otherwise it returns the border value. This is the extractor's only
// mechanism for seeing across cell boundaries.
func (s *Sampler[T]) Peek(dx, dy, dz int32) T {
	if !s.valid() {
		return s.border
	}
	if dx < 0 && !s.canGoNegX() || dx > 0 && !s.canGoPosX() {
		return s.border
	}
	if dy < 0 && !s.canGoNegY() || dy > 0 && !s.canGoPosY() {
		return s.border
	}
	if dz < 0 && !s.canGoNegZ() || dz > 0 && !s.canGoPosZ() {
		return s.border
	}
	delta := dx + dy*s.width() + dz*s.area()
	return s.data[s.offset+delta]
}

// PeekNegX, PeekNegY, PeekNegZ are the three peeks the cubic extractor
// actually uses (spec.md §9: the wider 26-peek surface is provided for
// future extractors such as marching cubes or AO baking).
func (s *Sampler[T]) PeekNegX() T { return s.Peek(-1, 0, 0) }
func (s *Sampler[T]) PeekNegY() T { return s.Peek(0, -1, 0) }
func (s *Sampler[T]) PeekNegZ() T { return s.Peek(0, 0, -1) }
