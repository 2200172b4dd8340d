package threemf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gobs-go/internal/core/extractor"
	"gobs-go/internal/core/mesh"
	"gobs-go/internal/core/region"
	"gobs-go/internal/core/sampler"
	"gobs-go/internal/core/store"
	"gobs-go/internal/core/voxel"
	"gobs-go/internal/export/threemf"
)

func TestWriteFileRejectsQuadArity(t *testing.T) {
	reg := region.Sized(1, 1, 1)
	s := store.New[voxel.Int](reg)
	require.NoError(t, s.Set(0, 0, 0, 1))

	sm := sampler.New(s)
	m := mesh.New[extractor.CubicVertex[voxel.Int]](mesh.Four)
	require.NoError(t, extractor.ExtractCubicCustom(sm, reg, m, extractor.DefaultFaceNeeded[voxel.Int], true))

	err := threemf.WriteFile(filepath.Join(t.TempDir(), "out.3mf"), m)
	assert.ErrorIs(t, err, threemf.ErrWrongArity)
}

func TestWriteFileProducesNonEmptyFile(t *testing.T) {
	reg := region.Sized(1, 1, 1)
	s := store.New[voxel.Int](reg)
	require.NoError(t, s.Set(0, 0, 0, 1))

	sm := sampler.New(s)
	m, err := extractor.ExtractCubic(sm, reg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cube.3mf")
	require.NoError(t, threemf.WriteFile(path, m))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
