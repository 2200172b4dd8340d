// Package store provides the dense 3D voxel buffer the sampler and
// extractor read from.
package store

import (
	"errors"
	"unsafe"

	"gobs-go/internal/core/region"
	"gobs-go/internal/core/voxel"
)

// ErrOutOfRange is returned by Set when the target coordinate falls
// outside the store's region. Reads never fail this way; Get returns the
// border value instead.
var ErrOutOfRange = errors.New("store: position outside region")

// VoxelStore is a dense, flat array of voxels bound to a Region. Any
// query outside the region reads as BorderValue (the type's zero value
// unless overridden).
type VoxelStore[T voxel.Voxel] struct {
	region      region.Region
	data        []T
	borderValue T
}

// New allocates a store sized to hold every voxel in reg.
func New[T voxel.Voxel](reg region.Region) *VoxelStore[T] {
	return &VoxelStore[T]{
		region: reg,
		data:   make([]T, reg.Volume()),
	}
}

// Region returns the bound region.
func (s *VoxelStore[T]) Region() region.Region { return s.region }

// BorderValue returns the value substituted for any out-of-range query.
func (s *VoxelStore[T]) BorderValue() T { return s.borderValue }

// SetBorderValue overrides the default (zero-value) border.
func (s *VoxelStore[T]) SetBorderValue(v T) { s.borderValue = v }

// RawData exposes the backing slice. Intended for the sampler only.
func (s *VoxelStore[T]) RawData() []T { return s.data }

// SizeInBytes reports sizeof(T) * volume.
func (s *VoxelStore[T]) SizeInBytes() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * len(s.data)
}

// Get returns the voxel at (x, y, z), or BorderValue if outside the
// region. Reads never fail.
func (s *VoxelStore[T]) Get(x, y, z int32) T {
	idx, ok := s.offset(x, y, z)
	if !ok {
		return s.borderValue
	}
	return s.data[idx]
}

// Set writes the voxel at (x, y, z). Returns ErrOutOfRange if the
// coordinate falls outside the region; the store is left unchanged in
// that case.
func (s *VoxelStore[T]) Set(x, y, z int32, v T) error {
	idx, ok := s.offset(x, y, z)
	if !ok {
		return ErrOutOfRange
	}
	s.data[idx] = v
	return nil
}

func (s *VoxelStore[T]) offset(x, y, z int32) (int32, bool) {
	if !s.region.ContainsPoint(x, y, z) {
		return 0, false
	}
	lx := x - s.region.LowerX()
	ly := y - s.region.LowerY()
	lz := z - s.region.LowerZ()
	width := s.region.Width()
	area := s.region.Area()
	return lx + ly*width + lz*area, true
}
