package svg_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gobs-go/internal/core/region"
	"gobs-go/internal/core/store"
	"gobs-go/internal/core/voxel"
	"gobs-go/internal/export/svg"
)

func TestWriteSliceEmitsOneSquarePerOccupiedCell(t *testing.T) {
	reg := region.Sized(4, 4, 1)
	s := store.New[voxel.Byte](reg)
	require.NoError(t, s.Set(0, 0, 0, 1))
	require.NoError(t, s.Set(3, 3, 0, 1))

	var sb strings.Builder
	err := svg.WriteSlice(&sb, s, 0, func(v voxel.Byte) string { return "#ff0000" })
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Equal(t, 2, strings.Count(out, "#ff0000"))
}

func TestWriteSliceWithNoOccupiedCellsStillEmitsValidDocument(t *testing.T) {
	reg := region.Sized(2, 2, 1)
	s := store.New[voxel.Byte](reg)

	var sb strings.Builder
	err := svg.WriteSlice(&sb, s, 0, func(v voxel.Byte) string { return "#fff" })
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, "<svg")
	assert.NotContains(t, out, "#fff")
}
