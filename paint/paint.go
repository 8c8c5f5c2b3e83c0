// Package paint turns normalized terrain heights into per-cell material
// weights for multi-layer texture blending.
//
// Every cell gets one weight per layer. The weights are non-negative and sum
// to one, blending linearly between neighbouring layers inside the blend
// bands so that material boundaries don't alias.
package paint

import (
	"errors"
	"fmt"
	"math"

	"github.com/Flokey82/gencoastline/various"
)

// ErrInvalidResolution is returned for negative resolutions.
var ErrInvalidResolution = errors.New("invalid paint resolution")

// Weights holds the material weights of a square grid of cells.
type Weights struct {
	Resolution int
	Layers     int
	Data       []float64 // Data[(y*Resolution+x)*Layers+i]
}

// At returns the weights of cell (x, y). The slice aliases the buffer.
func (w *Weights) At(x, y int) []float64 {
	i := (y*w.Resolution + x) * w.Layers
	return w.Data[i : i+w.Layers]
}

// Dominant returns the index of the layer with the highest weight at (x, y).
func (w *Weights) Dominant(x, y int) int {
	best := 0
	cell := w.At(x, y)
	for i, v := range cell {
		if v > cell[best] {
			best = i
		}
	}
	return best
}

// HeightMap is a grid of raw elevations, such as a coast.ElevationField.
type HeightMap interface {
	Size() (int, int)
	At(x, y int) float64
}

// SampleField returns a sampler reading a height map at paint resolution.
// Paint cell (x, y) maps to the nearest height sample, and the raw elevation
// is divided by divisor (the host's vertical scale) to normalize it.
func SampleField(hm HeightMap, divisor float64, resolution int) (func(x, y int) float64, error) {
	if divisor == 0 || math.IsNaN(divisor) || math.IsInf(divisor, 0) {
		return nil, fmt.Errorf("%w: divisor %v", ErrInvalidRules, divisor)
	}
	if resolution < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidResolution, resolution)
	}
	w, h := hm.Size()
	return func(x, y int) float64 {
		hx := int(math.Round(float64(x) / float64(resolution) * float64(w-1)))
		hy := int(math.Round(float64(y) / float64(resolution) * float64(h-1)))
		return hm.At(hx, hy) / divisor
	}, nil
}

// Paint samples the normalized height of every cell of a resolution x
// resolution grid and returns its material weights. A resolution of zero
// yields an empty result. Rows are painted on several goroutines, so sample
// must be safe for concurrent use.
func Paint(sample func(x, y int) float64, resolution int, rules Rules) (*Weights, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if resolution < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidResolution, resolution)
	}
	n := len(rules.Layers)
	w := &Weights{
		Resolution: resolution,
		Layers:     n,
		Data:       make([]float64, resolution*resolution*n),
	}
	err := various.KickOffChunkWorkers(resolution, func(start, end int) error {
		for y := start; y < end; y++ {
			for x := 0; x < resolution; x++ {
				rules.WeightsAt(sample(x, y), w.At(x, y))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}
