// Package coast synthesizes the elevation field of a barrier-island coastline.
//
// Each row of the grid gets its own meandering coastline and barrier island
// centerline. Every cell is then assigned to exactly one of four zones
// (mainland, barrier island, sound, ocean) and its elevation is computed from
// the profile of that zone plus a little noise. Cells never depend on each
// other, so rows can be computed in any order or in parallel.
package coast

import (
	"errors"
	"fmt"
	"math"

	"github.com/Flokey82/gencoastline/noise"
	"github.com/Flokey82/gencoastline/various"
)

// ErrInvalidDimensions is returned for non-positive grid sizes.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// Zone is the classification of a single cell.
type Zone int

// The zones in classification priority order.
const (
	ZoneMainland Zone = iota
	ZoneBarrier
	ZoneSound
	ZoneOcean
)

func (z Zone) String() string {
	switch z {
	case ZoneMainland:
		return "mainland"
	case ZoneBarrier:
		return "barrier"
	case ZoneSound:
		return "sound"
	case ZoneOcean:
		return "ocean"
	}
	return fmt.Sprintf("Zone(%d)", int(z))
}

// Row is the coastline model of a single row.
type Row struct {
	Y            int
	Position     float64 // Mean coastline position (cells)
	Coastline    float64 // Coastline offset of this row
	Barrier      float64 // Barrier island centerline of this row
	BarrierNoise float64 // Barrier noise sample gating the island
	HalfWidth    float64 // Barrier island half width (cells)
	HasBarrier   bool    // The barrier noise passed the gate
}

// Synthesizer generates coastline elevation fields for a fixed seed and config.
// It holds no mutable state and is safe for concurrent use.
type Synthesizer struct {
	Seed  int64
	cfg   Config
	src   noise.Source // Coastline, barrier, sound and ocean channels
	hills noise.Source // Rolling mainland hills
}

// New returns a synthesizer for the given seed. A nil config uses NewConfig.
func New(seed int64, cfg *Config) (*Synthesizer, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	src, err := noise.New(cfg.Noise)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return newWithSource(seed, cfg, src)
}

func newWithSource(seed int64, cfg *Config, src noise.Source) (*Synthesizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Synthesizer{
		Seed:  seed,
		cfg:   *cfg,
		src:   src,
		hills: noise.NewFractal(src, cfg.HillOctaves, cfg.HillPersistence, cfg.HillLacunarity),
	}, nil
}

// Config returns a copy of the config used by the synthesizer.
func (s *Synthesizer) Config() Config {
	return s.cfg
}

// sample evaluates the noise source, clamping stray values to [0, 1].
func (s *Synthesizer) sample(src noise.Source, x, y float64) float64 {
	return noise.Clamp01(src.Eval2(x, y))
}

// barrierScale returns the factor applied to barrier lengths on grids
// narrower than the reference width. A zero reference width disables scaling.
func (s *Synthesizer) barrierScale(width int) float64 {
	if s.cfg.ReferenceWidth == 0 {
		return 1
	}
	return math.Min(1, float64(width)/s.cfg.ReferenceWidth)
}

// Row returns the coastline model of row y on a grid of the given width.
func (s *Synthesizer) Row(y, width int) Row {
	c := &s.cfg
	w := float64(width)
	fy := float64(y)
	position := c.CoastlinePosition * w
	variation := c.CoastlineVariation * w

	// The coastline meanders slowly from row to row.
	n := s.sample(s.src, fy*c.CoastlineFrequency, float64(s.Seed)*c.SeedScale)
	coastline := position + (n-0.5)*variation

	// The barrier noise channel is independent of the coastline channel.
	bn := s.sample(s.src, fy*c.BarrierFrequency, float64(s.Seed+c.BarrierSeedOffset)*c.SeedScale)
	scale := s.barrierScale(width)
	barrier := coastline + c.BarrierDistance*w + (bn-0.5)*c.BarrierJitter*scale

	return Row{
		Y:            y,
		Position:     position,
		Coastline:    coastline,
		Barrier:      barrier,
		BarrierNoise: bn,
		HalfWidth:    c.BarrierHalfWidth * scale,
		HasBarrier:   bn > c.BarrierGate,
	}
}

// Classify returns the zone of column x in the given row. The first matching
// zone wins, in the order mainland, barrier island, sound, ocean.
func (s *Synthesizer) Classify(x int, r Row) Zone {
	fx := float64(x)
	switch {
	case fx < r.Coastline:
		return ZoneMainland
	case math.Abs(fx-r.Barrier) < r.HalfWidth && r.HasBarrier:
		return ZoneBarrier
	case fx > r.Coastline && fx < r.Barrier:
		return ZoneSound
	}
	return ZoneOcean
}

// elevation returns the elevation of column x in the given row.
func (s *Synthesizer) elevation(x int, r Row) float64 {
	c := &s.cfg
	fx, fy := float64(x), float64(r.Y)
	switch s.Classify(x, r) {
	case ZoneMainland:
		// Gradual rise inland with rolling hills on top.
		rise := math.Pow((r.Coastline-fx)/r.Position, c.MainlandExponent) * c.MainlandHeight
		hills := s.sample(s.hills, fx*c.HillFrequency, fy*c.HillFrequency) * c.HillAmplitude
		return rise + hills
	case ZoneBarrier:
		profile := (r.HalfWidth - math.Abs(fx-r.Barrier)) / r.HalfWidth
		return math.Pow(profile, c.BarrierFalloff) * c.BarrierHeight
	case ZoneSound:
		return c.SoundBase + s.sample(s.src, fx*c.SoundFrequency, fy*c.SoundFrequency)*c.SoundAmplitude
	}
	return c.OceanBase + s.sample(s.src, fx*c.OceanFrequency, fy*c.OceanFrequency)*c.OceanAmplitude
}

// ElevationAt returns the elevation of cell (x, y) on a grid of the given width.
func (s *Synthesizer) ElevationAt(x, y, width int) float64 {
	return s.elevation(x, s.Row(y, width))
}

// Rows returns the coastline model of every row.
func (s *Synthesizer) Rows(width, height int) []Row {
	rows := make([]Row, height)
	for y := range rows {
		rows[y] = s.Row(y, width)
	}
	return rows
}

// Zones returns the row-major zone map of a width x height grid.
func (s *Synthesizer) Zones(width, height int) ([]Zone, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	zones := make([]Zone, width*height)
	for y := 0; y < height; y++ {
		r := s.Row(y, width)
		for x := 0; x < width; x++ {
			zones[y*width+x] = s.Classify(x, r)
		}
	}
	return zones, nil
}

// Synthesize returns a new elevation field of the given size.
func (s *Synthesizer) Synthesize(width, height int) (*ElevationField, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	f := &ElevationField{
		Width:  width,
		Height: height,
		Data:   make([]float64, width*height),
	}
	if err := s.SynthesizeInto(f); err != nil {
		return nil, err
	}
	return f, nil
}

// SynthesizeInto fills a caller allocated field. Rows are computed in
// parallel; the result does not depend on scheduling.
func (s *Synthesizer) SynthesizeInto(f *ElevationField) error {
	if err := checkDimensions(f.Width, f.Height); err != nil {
		return err
	}
	if len(f.Data) != f.Width*f.Height {
		return fmt.Errorf("%w: buffer holds %d samples, need %d", ErrInvalidDimensions, len(f.Data), f.Width*f.Height)
	}
	return various.KickOffChunkWorkers(f.Height, func(start, end int) error {
		for y := start; y < end; y++ {
			r := s.Row(y, f.Width)
			line := f.Data[y*f.Width : (y+1)*f.Width]
			for x := range line {
				line[x] = s.elevation(x, r)
			}
		}
		return nil
	})
}

// Synthesize is a shorthand for New followed by Synthesize.
func Synthesize(width, height int, seed int64, cfg *Config) (*ElevationField, error) {
	s, err := New(seed, cfg)
	if err != nil {
		return nil, err
	}
	return s.Synthesize(width, height)
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}
