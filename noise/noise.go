// Package noise provides the deterministic 2D coherent noise sources used by
// the coastline synthesizer.
//
// All sources share a fixed permutation table. Callers decorrelate channels by
// folding their seed into one of the input coordinates, so a given (x, y)
// always evaluates to the same value.
package noise

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Names of the available sources.
const (
	KindPerlin      = "perlin"
	KindOpenSimplex = "opensimplex"
	KindFlat        = "flat"
)

// tableSeed seeds the permutation tables of all sources.
const tableSeed = 0

// Source is a stateless 2D coherent noise function with output in [0, 1].
type Source interface {
	Eval2(x, y float64) float64
}

// New returns the source with the given name.
func New(kind string) (Source, error) {
	switch kind {
	case KindPerlin, "":
		return NewPerlin(), nil
	case KindOpenSimplex:
		return NewOpenSimplex(), nil
	case KindFlat:
		return Constant(0.5), nil
	}
	return nil, fmt.Errorf("unknown noise source %q", kind)
}

// Perlin is classic Perlin noise rescaled to [0, 1].
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin returns a single octave Perlin source.
func NewPerlin() *Perlin {
	return &Perlin{p: perlin.NewPerlin(2, 2, 1, tableSeed)}
}

// Eval2 returns the noise value at the given point.
func (n *Perlin) Eval2(x, y float64) float64 {
	// 2D Perlin peaks at ±√½.
	return Clamp01((n.p.Noise2D(x, y)*math.Sqrt2 + 1) / 2)
}

// OpenSimplex is a wrapper for the normalized opensimplex.Noise.
type OpenSimplex struct {
	OS opensimplex.Noise
}

// NewOpenSimplex returns a new OpenSimplex source.
func NewOpenSimplex() *OpenSimplex {
	return &OpenSimplex{OS: opensimplex.NewNormalized(tableSeed)}
}

// Eval2 returns the noise value at the given point.
func (n *OpenSimplex) Eval2(x, y float64) float64 {
	return Clamp01(n.OS.Eval2(x, y))
}

// Constant is a source that returns the same value everywhere.
type Constant float64

// Eval2 returns the constant.
func (c Constant) Eval2(x, y float64) float64 {
	return Clamp01(float64(c))
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
