// Package terrain provides procedural terrain generation, filling a
// VoxelStore with material bytes from layered simplex/FBM noise.
package terrain

import (
	vmath "gobs-go/pkg/math"

	"gobs-go/internal/core/noise"
	"gobs-go/internal/core/region"
	"gobs-go/internal/core/store"
	"gobs-go/internal/core/voxel"
)

// Material byte values written into the generated VoxelStore. 0 (empty)
// always means air.
const (
	MaterialBedrock voxel.Byte = iota + 1
	MaterialStone
	MaterialDirt
	MaterialGrass
	MaterialSand
	MaterialSnow
	MaterialWater
	MaterialLava
	MaterialCoalOre
	MaterialIronOre
	MaterialGoldOre
	MaterialDiamondOre
)

// Biome describes the surface dressing and height modulation for one
// climate band.
type Biome struct {
	Name       string
	Surface    voxel.Byte
	Subsurface voxel.Byte
	HasWater   bool
}

var (
	BiomePlains = Biome{Name: "plains", Surface: MaterialGrass, Subsurface: MaterialDirt, HasWater: true}
	BiomeDesert = Biome{Name: "desert", Surface: MaterialSand, Subsurface: MaterialSand, HasWater: true}
	BiomeSnow   = Biome{Name: "snow", Surface: MaterialSnow, Subsurface: MaterialDirt, HasWater: true}
	BiomeForest = Biome{Name: "forest", Surface: MaterialGrass, Subsurface: MaterialDirt, HasWater: true}
	BiomeMountains = Biome{Name: "mountains", Surface: MaterialStone, Subsurface: MaterialStone, HasWater: true}
)

// GeneratorConfig holds terrain generation settings.
type GeneratorConfig struct {
	SeaLevel         int32
	TerrainAmplitude float32
	CaveFrequency    float32
}

// DefaultConfig returns default generation config.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		SeaLevel:         12,
		TerrainAmplitude: 30.0,
		CaveFrequency:    0.6,
	}
}

// Generator generates procedural terrain directly into a VoxelStore.
type Generator struct {
	seed int64

	Config GeneratorConfig

	heightNoise *noise.SimplexNoise
	biomeNoise  *noise.SimplexNoise
	caveNoise   *noise.SimplexNoise
	detailNoise *noise.SimplexNoise

	heightFBM *noise.FBM
	biomeFBM  *noise.FBM
	caveFBM   *noise.FBM
}

// NewGenerator creates a new terrain generator with the given seed.
func NewGenerator(seed int64) *Generator {
	g := &Generator{
		seed:        seed,
		Config:      DefaultConfig(),
		heightNoise: noise.NewSimplexNoise(seed),
		biomeNoise:  noise.NewSimplexNoise(seed + 1000),
		caveNoise:   noise.NewSimplexNoise(seed + 2000),
		detailNoise: noise.NewSimplexNoise(seed + 3000),
	}

	g.heightFBM = noise.NewFBM(noise.FBMConfig{Octaves: 6, Lacunarity: 2.0, Persistence: 0.5, Scale: 0.005})
	g.biomeFBM = noise.NewFBM(noise.FBMConfig{Octaves: 4, Lacunarity: 2.0, Persistence: 0.5, Scale: 0.002})
	g.caveFBM = noise.NewFBM(noise.FBMConfig{Octaves: 3, Lacunarity: 2.0, Persistence: 0.5, Scale: 0.05})

	return g
}

// SetConfig updates the generator configuration.
func (g *Generator) SetConfig(config GeneratorConfig) {
	g.Config = config
}

// Generate fills a new VoxelStore covering reg with terrain, offset in
// world space by worldOriginX/worldOriginZ (so adjacent regions tile
// seamlessly under the same noise field).
func (g *Generator) Generate(reg region.Region, worldOriginX, worldOriginZ int32) *store.VoxelStore[voxel.Byte] {
	s := store.New[voxel.Byte](reg)

	for lz := reg.LowerZ(); lz <= reg.UpperZ(); lz++ {
		for lx := reg.LowerX(); lx <= reg.UpperX(); lx++ {
			wx := worldOriginX + lx
			wz := worldOriginZ + lz
			g.generateColumn(s, reg, lx, lz, wx, wz)
		}
	}

	return s
}

func (g *Generator) generateColumn(s *store.VoxelStore[voxel.Byte], reg region.Region, lx, lz, wx, wz int32) {
	biome := g.GetBiome(wx, wz)
	height := g.getTerrainHeight(wx, wz, biome)

	for y := reg.LowerY(); y <= reg.UpperY(); y++ {
		var m voxel.Byte

		switch {
		case y == reg.LowerY():
			m = MaterialBedrock
		case y < height-4:
			m = g.getUndergroundMaterial(wx, y, wz)
		case y < height:
			m = biome.Subsurface
		case y == height:
			m = g.getSurfaceMaterial(wx, wz, height, biome)
		case y < g.Config.SeaLevel && biome.HasWater:
			m = MaterialWater
		default:
			continue // air
		}

		_ = s.Set(lx, y, lz, m)
	}
}

// GetBiome determines the biome at a world position.
func (g *Generator) GetBiome(wx, wz int32) Biome {
	temperature := g.biomeFBM.Sample2D(g.biomeNoise, float32(wx), float32(wz))
	humidity := g.biomeFBM.Sample2D(g.biomeNoise, float32(wx)+5000, float32(wz)+5000)

	switch {
	case temperature > 0.3:
		if humidity < -0.2 {
			return BiomeDesert
		}
		return BiomePlains
	case temperature < -0.3:
		return BiomeSnow
	default:
		if humidity > 0.2 {
			return BiomeForest
		}
		return BiomeMountains
	}
}

func (g *Generator) getTerrainHeight(wx, wz int32, biome Biome) int32 {
	height := float32(20)

	fbmValue := g.heightFBM.Sample2D(g.heightNoise, float32(wx), float32(wz))
	temperature := g.biomeFBM.Sample2D(g.biomeNoise, float32(wx), float32(wz))

	height += fbmValue * g.Config.TerrainAmplitude * heightModifier(temperature)

	detail := g.detailNoise.Noise2D(float32(wx)*0.1, float32(wz)*0.1) * 2
	height += detail

	if biome.Name == "mountains" {
		ridged := g.heightFBM.Ridged2D(g.heightNoise, float32(wx)*2, float32(wz)*2)
		height += ridged * 20
	} else if temperature < -0.2 && temperature > -0.4 {
		ridged := g.heightFBM.Ridged2D(g.heightNoise, float32(wx)*2, float32(wz)*2)
		blend := absFloat32((temperature + 0.2) / -0.2)
		if blend > 1.0 {
			blend = 1.0
		}
		height += ridged * 10 * blend
	}

	result := int32(height)
	if result < 1 {
		result = 1
	}
	return result
}

func absFloat32(n float32) float32 {
	if n < 0 {
		return -n
	}
	return n
}

// heightModifier smoothly ramps the height-noise amplitude up in cold
// climates and down in warm ones, rather than snapping at the +-0.3
// temperature threshold.
func heightModifier(temperature float32) float32 {
	cold := vmath.Smoothstep(0.3, 1.0, float64(-temperature))
	warm := vmath.Smoothstep(0.3, 1.0, float64(temperature))
	mod := vmath.Lerp(0.5, 1.5, cold)
	mod = vmath.Lerp(mod, mod-0.3, warm)
	return float32(mod)
}

// positionRNG returns a small deterministic generator seeded from a
// world position, used to jitter otherwise perfectly smooth noise bands.
func (g *Generator) positionRNG(wx, y, wz int32) *vmath.SeededRNG {
	h := vmath.HashCoords(int(wx), int(y), int(wz))
	return vmath.NewSeededRNG(g.seed ^ int64(h))
}

func (g *Generator) getUndergroundMaterial(wx, y, wz int32) voxel.Byte {
	caveValue := g.caveFBM.Sample3D(g.caveNoise, float32(wx), float32(y), float32(wz))
	if caveValue > g.Config.CaveFrequency && y > 5 {
		if y < 10 && caveValue > g.Config.CaveFrequency+0.05 {
			return MaterialLava
		}
		return 0 // air (cave void)
	}

	oreChance := g.detailNoise.Noise3D(float32(wx)*0.2, float32(y)*0.2, float32(wz)*0.2)
	oreChance += float32(g.positionRNG(wx, y, wz).NextFloat(-0.04, 0.04))

	switch {
	case y < 15 && oreChance > 0.85:
		return MaterialDiamondOre
	case y < 30 && oreChance > 0.8:
		return MaterialGoldOre
	case y < 45 && oreChance > 0.75:
		return MaterialIronOre
	case oreChance > 0.7:
		return MaterialCoalOre
	default:
		return MaterialStone
	}
}

func (g *Generator) getSurfaceMaterial(wx, wz int32, height int32, biome Biome) voxel.Byte {
	if height <= g.Config.SeaLevel+2 && biome.Name != "desert" {
		return MaterialSand
	}
	if biome.Surface == MaterialGrass && g.positionRNG(wx, height, wz).NextBool(0.05) {
		return MaterialDirt // bare patches poking through the grass layer
	}
	return biome.Surface
}
