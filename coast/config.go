package coast

import (
	"errors"
	"fmt"
	"math"

	"github.com/Flokey82/gencoastline/noise"
)

// ErrInvalidConfig is returned for configurations the synthesizer can't use.
var ErrInvalidConfig = errors.New("invalid coastline config")

// Config is a struct that holds all configuration options for the coastline
// synthesis. Fractions are relative to the grid width, lengths are in cells.
type Config struct {
	CoastlinePosition  float64 // Mean coastline position (fraction of width)
	CoastlineVariation float64 // Meander range of the coastline (fraction of width)
	CoastlineFrequency float64 // Noise frequency along the rows for the coastline
	SeedScale          float64 // Factor folding the seed into a noise coordinate

	BarrierSeedOffset int64   // Seed offset of the barrier noise channel
	BarrierFrequency  float64 // Noise frequency along the rows for the barrier
	BarrierDistance   float64 // Distance of the barrier from the coast (fraction of width)
	BarrierJitter     float64 // Full jitter range of the barrier centerline (cells)
	BarrierHalfWidth  float64 // Half width of a barrier island (cells)
	BarrierGate       float64 // Barrier noise must exceed this for an island to exist
	BarrierHeight     float64 // Crest height of a barrier island
	BarrierFalloff    float64 // Exponent of the island profile
	ReferenceWidth    float64 // Width at which barrier lengths apply unscaled, 0 to never scale

	MainlandExponent float64 // Exponent of the inland rise
	MainlandHeight   float64 // Height of the inland rise at the far edge
	HillFrequency    float64 // Rolling hill noise frequency
	HillAmplitude    float64 // Rolling hill noise amplitude
	HillOctaves      int     // Number of hill noise octaves
	HillPersistence  float64 // Amplitude falloff per hill octave
	HillLacunarity   float64 // Frequency gain per hill octave

	SoundBase      float64 // Base elevation of the sound
	SoundAmplitude float64 // Sound noise amplitude
	SoundFrequency float64 // Sound noise frequency

	OceanBase      float64 // Base elevation of the open ocean
	OceanAmplitude float64 // Ocean noise amplitude
	OceanFrequency float64 // Ocean noise frequency

	Noise string // Noise source (see noise.New)
}

// NewConfig returns a new config with the default barrier-island coastline.
func NewConfig() *Config {
	return &Config{
		CoastlinePosition:  0.75,
		CoastlineVariation: 0.15,
		CoastlineFrequency: 0.01,
		SeedScale:          0.001,
		BarrierSeedOffset:  100,
		BarrierFrequency:   0.005,
		BarrierDistance:    0.1,
		BarrierJitter:      20,
		BarrierHalfWidth:   15,
		BarrierGate:        0.3,
		BarrierHeight:      0.4,
		BarrierFalloff:     2,
		ReferenceWidth:     513,
		MainlandExponent:   0.5,
		MainlandHeight:     0.7,
		HillFrequency:      0.02,
		HillAmplitude:      0.3,
		HillOctaves:        1,
		HillPersistence:    0.5,
		HillLacunarity:     2,
		SoundBase:          -0.1,
		SoundAmplitude:     0.1,
		SoundFrequency:     0.05,
		OceanBase:          -0.3,
		OceanAmplitude:     0.2,
		OceanFrequency:     0.03,
		Noise:              noise.KindPerlin,
	}
}

// Validate reports the first problem found in the config.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"CoastlinePosition", c.CoastlinePosition},
		{"CoastlineVariation", c.CoastlineVariation},
		{"CoastlineFrequency", c.CoastlineFrequency},
		{"SeedScale", c.SeedScale},
		{"BarrierFrequency", c.BarrierFrequency},
		{"BarrierDistance", c.BarrierDistance},
		{"BarrierJitter", c.BarrierJitter},
		{"BarrierHalfWidth", c.BarrierHalfWidth},
		{"BarrierGate", c.BarrierGate},
		{"BarrierHeight", c.BarrierHeight},
		{"BarrierFalloff", c.BarrierFalloff},
		{"ReferenceWidth", c.ReferenceWidth},
		{"MainlandExponent", c.MainlandExponent},
		{"MainlandHeight", c.MainlandHeight},
		{"HillFrequency", c.HillFrequency},
		{"HillAmplitude", c.HillAmplitude},
		{"HillPersistence", c.HillPersistence},
		{"HillLacunarity", c.HillLacunarity},
		{"SoundBase", c.SoundBase},
		{"SoundAmplitude", c.SoundAmplitude},
		{"SoundFrequency", c.SoundFrequency},
		{"OceanBase", c.OceanBase},
		{"OceanAmplitude", c.OceanAmplitude},
		{"OceanFrequency", c.OceanFrequency},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidConfig, f.name, f.v)
		}
	}
	if c.CoastlinePosition <= 0 {
		return fmt.Errorf("%w: CoastlinePosition must be positive, got %v", ErrInvalidConfig, c.CoastlinePosition)
	}
	if c.BarrierHalfWidth <= 0 {
		return fmt.Errorf("%w: BarrierHalfWidth must be positive, got %v", ErrInvalidConfig, c.BarrierHalfWidth)
	}
	if c.ReferenceWidth < 0 {
		return fmt.Errorf("%w: ReferenceWidth must not be negative, got %v", ErrInvalidConfig, c.ReferenceWidth)
	}
	if c.MainlandExponent <= 0 {
		return fmt.Errorf("%w: MainlandExponent must be positive, got %v", ErrInvalidConfig, c.MainlandExponent)
	}
	if c.HillOctaves < 1 {
		return fmt.Errorf("%w: HillOctaves must be at least 1, got %d", ErrInvalidConfig, c.HillOctaves)
	}
	return nil
}
