package sampler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gobs-go/internal/core/region"
	"gobs-go/internal/core/sampler"
	"gobs-go/internal/core/store"
	"gobs-go/internal/core/voxel"
)

func newFilledStore(t *testing.T) *store.VoxelStore[voxel.Byte] {
	t.Helper()
	s := store.New[voxel.Byte](region.Cubic(8))
	for z := int32(0); z < 8; z++ {
		for y := int32(0); y < 8; y++ {
			for x := int32(0); x < 8; x++ {
				require.NoError(t, s.Set(x, y, z, voxel.Byte(x+y*8+z*64+1)))
			}
		}
	}
	return s
}

func TestVoxelMatchesStore(t *testing.T) {
	s := newFilledStore(t)
	sm := sampler.New(s)
	sm.SetPosition(3, 4, 5)
	assert.Equal(t, s.Get(3, 4, 5), sm.Voxel())
}

func TestOutOfBoundsReadsYieldBorder(t *testing.T) {
	s := newFilledStore(t)
	s.SetBorderValue(77)
	sm := sampler.New(s)

	sm.SetPosition(-1, 0, 0)
	assert.EqualValues(t, 77, sm.Voxel())
	assert.EqualValues(t, 77, sm.PeekNegX())
	assert.EqualValues(t, 77, sm.PeekNegY())
	assert.EqualValues(t, 77, sm.PeekNegZ())
	assert.EqualValues(t, 77, sm.Peek(1, 0, 0))
}

func TestStepPositiveThenNegativeReturnsToSameOffsetAndValue(t *testing.T) {
	s := newFilledStore(t)
	sm := sampler.New(s)

	sm.SetPosition(3, 3, 3)
	before := sm.Voxel()

	sm.StepPositiveX()
	sm.StepNegativeX()
	assert.Equal(t, before, sm.Voxel())

	sm.StepPositiveY()
	sm.StepNegativeY()
	assert.Equal(t, before, sm.Voxel())

	sm.StepPositiveZ()
	sm.StepNegativeZ()
	assert.Equal(t, before, sm.Voxel())
}

func TestPeekCrossesCellBoundaries(t *testing.T) {
	s := newFilledStore(t)
	sm := sampler.New(s)
	sm.SetPosition(4, 4, 4)

	assert.Equal(t, s.Get(3, 4, 4), sm.PeekNegX())
	assert.Equal(t, s.Get(4, 3, 4), sm.PeekNegY())
	assert.Equal(t, s.Get(4, 4, 3), sm.PeekNegZ())
	assert.Equal(t, s.Get(5, 5, 5), sm.Peek(1, 1, 1))
}

func TestEdgePeekYieldsBorder(t *testing.T) {
	s := newFilledStore(t)
	sm := sampler.New(s)
	sm.SetPosition(0, 0, 0)

	assert.EqualValues(t, s.BorderValue(), sm.PeekNegX())
	assert.EqualValues(t, s.BorderValue(), sm.PeekNegY())
	assert.EqualValues(t, s.BorderValue(), sm.PeekNegZ())
}
