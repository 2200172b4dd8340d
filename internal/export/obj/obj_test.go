package obj_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gobs-go/internal/core/extractor"
	"gobs-go/internal/core/mesh"
	"gobs-go/internal/core/region"
	"gobs-go/internal/core/sampler"
	"gobs-go/internal/core/store"
	"gobs-go/internal/core/voxel"
	"gobs-go/internal/export/obj"
)

func TestWriteTriangleMeshLineCounts(t *testing.T) {
	reg := region.Sized(1, 1, 1)
	s := store.New[voxel.Int](reg)
	require.NoError(t, s.Set(0, 0, 0, 1))

	sm := sampler.New(s)
	m, err := extractor.ExtractCubic(sm, reg)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, obj.Write(&sb, "cube", m))

	assert.True(t, strings.HasPrefix(sb.String(), "o cube\n"))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	var vCount, fCount int
	for _, l := range lines {
		switch {
		case strings.HasPrefix(l, "v "):
			vCount++
		case strings.HasPrefix(l, "f "):
			fCount++
			fields := strings.Fields(l)
			assert.Len(t, fields, 4) // "f" + 3 indices for triangle arity
		}
	}
	assert.Equal(t, 8, vCount)
	assert.Equal(t, 12, fCount)
}

func TestWriteQuadMeshUsesFourIndexFaces(t *testing.T) {
	reg := region.Sized(1, 1, 1)
	s := store.New[voxel.Int](reg)
	require.NoError(t, s.Set(0, 0, 0, 1))

	sm := sampler.New(s)
	m := mesh.New[extractor.CubicVertex[voxel.Int]](mesh.Four)
	require.NoError(t, extractor.ExtractCubicCustom(sm, reg, m, extractor.DefaultFaceNeeded[voxel.Int], true))

	var sb strings.Builder
	require.NoError(t, obj.Write(&sb, "cube_quad", m))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	var fCount int
	for _, l := range lines {
		if strings.HasPrefix(l, "f ") {
			fCount++
			assert.Len(t, strings.Fields(l), 5) // "f" + 4 indices for quad arity
		}
	}
	assert.Equal(t, 6, fCount)
}
