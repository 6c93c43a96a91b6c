package cloud

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Noise is the coherent noise and randomness source of the field.
type Noise interface {
	// Noise1D is deterministic and continuous in x, with output in [-1, 1].
	Noise1D(x float64) float64
	// Uniform returns a random value in [lo, hi).
	Uniform(lo, hi float64) float64
}

const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3

	// go-perlin's 1D output sits roughly in [-0.5, 0.5], Noise1D clamps the
	// few samples the gain pushes past 1
	perlinGain = 2.0
)

// PerlinNoise is a seeded Perlin noise generator.
type PerlinNoise struct {
	perlin *perlin.Perlin
	rand   *rand.Rand
}

func NewPerlinNoise(seed int64) *PerlinNoise {
	return &PerlinNoise{
		perlin: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
		rand:   rand.New(rand.NewSource(seed)),
	}
}

func (pn *PerlinNoise) Noise1D(x float64) float64 {
	v := pn.perlin.Noise1D(x) * perlinGain
	switch {
	case v < -1.0:
		return -1.0
	case v > 1.0:
		return 1.0
	}
	return v
}

func (pn *PerlinNoise) Uniform(lo, hi float64) float64 {
	return lo + pn.rand.Float64()*(hi-lo)
}
