package paint

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidRules is returned for malformed layer/threshold sets.
var ErrInvalidRules = errors.New("invalid paint rules")

// Layer is a material that can be painted onto the terrain.
type Layer struct {
	Name  string
	Color color.NRGBA // Flat color used for previews
}

// DefaultLayers returns sand, grass and rock.
func DefaultLayers() []Layer {
	return []Layer{
		{Name: "sand", Color: color.NRGBA{R: 230, G: 204, B: 153, A: 255}},
		{Name: "grass", Color: color.NRGBA{R: 77, G: 153, B: 51, A: 255}},
		{Name: "rock", Color: color.NRGBA{R: 128, G: 128, B: 128, A: 255}},
	}
}

// Rules map a normalized height to material weights.
//
// Layers are ordered from lowest to highest. Between layer i and i+1 lies the
// blend band [Thresholds[2i], Thresholds[2i+1]), so N layers need 2(N-1)
// ascending thresholds.
type Rules struct {
	Layers     []Layer
	Thresholds []float64
}

// DefaultRules returns the canonical sand/grass/rock banding with blend bands
// [0.35, 0.40) and [0.70, 0.80).
func DefaultRules() Rules {
	return Rules{
		Layers:     DefaultLayers(),
		Thresholds: []float64{0.35, 0.40, 0.70, 0.80},
	}
}

// WaterLevelRules returns sand/grass/rock bands relative to the water level:
// sand up to 5% above the water, then a 10% blend into grass, and grass
// fading into rock from 0.7 to the top.
func WaterLevelRules(waterLevel float64) Rules {
	return Rules{
		Layers:     DefaultLayers(),
		Thresholds: []float64{waterLevel + 0.05, waterLevel + 0.15, 0.70, 1.00},
	}
}

// SimpleRules returns the wide banding with blend bands [0.3, 0.5) and
// [0.7, 1.0).
func SimpleRules() Rules {
	return Rules{
		Layers:     DefaultLayers(),
		Thresholds: []float64{0.30, 0.50, 0.70, 1.00},
	}
}

// RulesByName returns one of the presets: "fixed", "waterlevel" or "simple".
func RulesByName(name string, waterLevel float64) (Rules, error) {
	switch name {
	case "fixed", "":
		return DefaultRules(), nil
	case "waterlevel":
		return WaterLevelRules(waterLevel), nil
	case "simple":
		return SimpleRules(), nil
	}
	return Rules{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidRules, name)
}

// Validate checks that the thresholds fit the layers and are ordered.
// Within a band the start must lie strictly below the end; consecutive bands
// may touch.
func (r Rules) Validate() error {
	if len(r.Layers) == 0 {
		return fmt.Errorf("%w: no layers", ErrInvalidRules)
	}
	if want := 2 * (len(r.Layers) - 1); len(r.Thresholds) != want {
		return fmt.Errorf("%w: %d layers need %d thresholds, got %d", ErrInvalidRules, len(r.Layers), want, len(r.Thresholds))
	}
	for i, t := range r.Thresholds {
		if math.IsNaN(t) || t < 0 || t > 1 {
			return fmt.Errorf("%w: threshold %d (%v) outside [0, 1]", ErrInvalidRules, i, t)
		}
		if i == 0 {
			continue
		}
		prev := r.Thresholds[i-1]
		if i%2 == 1 && t <= prev {
			return fmt.Errorf("%w: blend band %d is empty: [%v, %v)", ErrInvalidRules, i/2, prev, t)
		}
		if t < prev {
			return fmt.Errorf("%w: thresholds not ascending at %d: %v < %v", ErrInvalidRules, i, t, prev)
		}
	}
	return nil
}

// WeightsAt writes the weights for normalized height h into dst, which must
// hold one entry per layer. The rules are assumed valid.
func (r Rules) WeightsAt(h float64, dst []float64) {
	for i := range dst {
		dst[i] = 0
	}
	n := len(r.Layers)
	for i := 0; i < n-1; i++ {
		start, end := r.Thresholds[2*i], r.Thresholds[2*i+1]
		if h < start {
			dst[i] = 1
			return
		}
		if h < end {
			blend := (h - start) / (end - start)
			dst[i] = 1 - blend
			dst[i+1] = blend
			return
		}
	}
	dst[n-1] = 1
}
