package store_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gobs-go/internal/core/region"
	"gobs-go/internal/core/store"
	"gobs-go/internal/core/voxel"
)

func TestGetSetRoundTrip(t *testing.T) {
	s := store.New[voxel.Byte](region.Cubic(8))
	require.NoError(t, s.Set(1, 2, 3, 42))
	assert.EqualValues(t, 42, s.Get(1, 2, 3))
}

func TestGetOutOfBoundsYieldsBorder(t *testing.T) {
	s := store.New[voxel.Byte](region.Cubic(8))
	assert.EqualValues(t, 0, s.Get(-1, 0, 0))
	assert.EqualValues(t, 0, s.Get(8, 0, 0))

	s.SetBorderValue(9)
	assert.EqualValues(t, 9, s.Get(100, 100, 100))
}

func TestSetOutOfBoundsReturnsErrAndLeavesStoreUnchanged(t *testing.T) {
	s := store.New[voxel.Byte](region.Cubic(4))
	err := s.Set(10, 0, 0, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrOutOfRange))
	assert.EqualValues(t, 0, s.Get(10, 0, 0))
}

func TestSizeInBytes(t *testing.T) {
	s := store.New[voxel.Int](region.Sized(2, 2, 2))
	assert.Equal(t, 8*4, s.SizeInBytes())
}
