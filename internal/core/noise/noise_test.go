package noise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gobs-go/internal/core/noise"
)

func TestNoise2DIsDeterministicForSameSeed(t *testing.T) {
	a := noise.NewSimplexNoise(42)
	b := noise.NewSimplexNoise(42)

	assert.Equal(t, a.Noise2D(1.5, 2.5), b.Noise2D(1.5, 2.5))
	assert.Equal(t, a.Noise3D(1.5, 2.5, 3.5), b.Noise3D(1.5, 2.5, 3.5))
}

func TestNoise2DDiffersAcrossSeeds(t *testing.T) {
	a := noise.NewSimplexNoise(1)
	b := noise.NewSimplexNoise(2)

	assert.NotEqual(t, a.Noise2D(3.3, 4.4), b.Noise2D(3.3, 4.4))
}

func TestNoise2DStaysWithinUnitRange(t *testing.T) {
	n := noise.NewSimplexNoise(7)
	for x := float32(-20); x <= 20; x += 0.73 {
		for z := float32(-20); z <= 20; z += 1.31 {
			v := n.Noise2D(x, z)
			assert.GreaterOrEqual(t, v, float32(-1.01))
			assert.LessOrEqual(t, v, float32(1.01))
		}
	}
}

func TestFBMSample2DStaysWithinUnitRange(t *testing.T) {
	n := noise.NewSimplexNoise(99)
	f := noise.NewFBM(noise.FBMConfig{
		Octaves:     6,
		Lacunarity:  2.0,
		Persistence: 0.5,
		Scale:       0.05,
	})

	for x := float32(-50); x <= 50; x += 3.1 {
		v := f.Sample2D(n, x, x*0.5)
		assert.GreaterOrEqual(t, v, float32(-1.01))
		assert.LessOrEqual(t, v, float32(1.01))
	}
}

func TestRidged2DIsNonNegative(t *testing.T) {
	n := noise.NewSimplexNoise(13)
	f := noise.NewFBM(noise.FBMConfig{
		Octaves:     4,
		Lacunarity:  2.0,
		Persistence: 0.5,
		Scale:       0.1,
	})

	for x := float32(-10); x <= 10; x += 0.9 {
		v := f.Ridged2D(n, x, x*0.3)
		assert.GreaterOrEqual(t, v, float32(0))
	}
}
