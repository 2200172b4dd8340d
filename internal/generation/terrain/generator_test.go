package terrain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gobs-go/internal/core/region"
	"gobs-go/internal/generation/terrain"
)

func TestGenerateFillsBedrockFloor(t *testing.T) {
	g := terrain.NewGenerator(1)
	reg := region.Sized(8, 64, 8)
	s := g.Generate(reg, 0, 0)

	for z := int32(0); z < 8; z++ {
		for x := int32(0); x < 8; x++ {
			assert.Equal(t, terrain.MaterialBedrock, s.Get(x, 0, z))
		}
	}
}

func TestGenerateIsDeterministicForSameSeedAndOrigin(t *testing.T) {
	reg := region.Sized(8, 64, 8)

	a := terrain.NewGenerator(7).Generate(reg, 100, 200)
	b := terrain.NewGenerator(7).Generate(reg, 100, 200)

	for z := int32(0); z < 8; z++ {
		for y := int32(0); y < 64; y++ {
			for x := int32(0); x < 8; x++ {
				assert.Equal(t, a.Get(x, y, z), b.Get(x, y, z))
			}
		}
	}
}

func TestGetBiomeIsStableForAGivenPosition(t *testing.T) {
	g := terrain.NewGenerator(42)
	a := g.GetBiome(1234, 5678)
	b := g.GetBiome(1234, 5678)
	assert.Equal(t, a.Name, b.Name)
}

func TestGenerateProducesSomeNonEmptyColumnAboveBedrock(t *testing.T) {
	g := terrain.NewGenerator(3)
	reg := region.Sized(4, 64, 4)
	s := g.Generate(reg, 0, 0)

	foundSolid := false
	for y := int32(1); y < 64; y++ {
		if !s.Get(0, y, 0).IsEmpty() {
			foundSolid = true
			break
		}
	}
	assert.True(t, foundSolid)
}
