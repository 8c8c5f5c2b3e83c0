// Package gencoastline generates barrier-island coastline terrain: an
// elevation field of mainland, sound, barrier islands and open ocean, plus the
// material weights used to texture it.
package gencoastline

import (
	"fmt"
	"log"
	"time"

	"github.com/Flokey82/gencoastline/coast"
	"github.com/Flokey82/gencoastline/mesh"
	"github.com/Flokey82/gencoastline/paint"
)

// Terrain is a generated coastline with its material weights.
type Terrain struct {
	Seed int64
	*coast.ElevationField
	Weights *paint.Weights
	Rules   paint.Rules

	synth *coast.Synthesizer
	cfg   *Config
}

// NewTerrainFromConfig generates a width x height terrain for the given seed.
func NewTerrainFromConfig(seed int64, width, height int, cfg *Config) (*Terrain, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	c := *cfg
	if c.Coast == nil {
		c.Coast = coast.NewConfig()
	}
	if c.PaintConfig == nil {
		c.PaintConfig = NewPaintConfig()
	}
	if c.MeshConfig == nil {
		c.MeshConfig = NewMeshConfig()
	}
	cfg = &c
	rules, err := cfg.PaintConfig.Rules()
	if err != nil {
		return nil, err
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	synth, err := coast.New(seed, cfg.Coast)
	if err != nil {
		return nil, err
	}
	t := &Terrain{
		Seed:  seed,
		Rules: rules,
		synth: synth,
		cfg:   cfg,
	}
	if err := t.generate(width, height); err != nil {
		return nil, err
	}
	return t, nil
}

// NewTerrain generates a terrain with the default config.
func NewTerrain(seed int64, width, height int) (*Terrain, error) {
	return NewTerrainFromConfig(seed, width, height, nil)
}

func (t *Terrain) generate(width, height int) error {
	// Synthesize elevation.
	start := time.Now()
	field, err := t.synth.Synthesize(width, height)
	if err != nil {
		return err
	}
	t.ElevationField = field
	log.Println("Done elevation in ", time.Since(start).String())

	// Paint materials.
	start = time.Now()
	sample, err := paint.SampleField(field, t.cfg.Divisor, t.cfg.Resolution)
	if err != nil {
		return err
	}
	weights, err := paint.Paint(sample, t.cfg.Resolution, t.Rules)
	if err != nil {
		return err
	}
	t.Weights = weights
	log.Println("Done materials in ", time.Since(start).String())
	return nil
}

// Rows returns the coastline model of every row.
func (t *Terrain) Rows() []coast.Row {
	return t.synth.Rows(t.Width, t.Height)
}

// Zones returns the row-major zone map.
func (t *Terrain) Zones() []coast.Zone {
	zones, err := t.synth.Zones(t.Width, t.Height)
	if err != nil {
		// The dimensions were validated during generation.
		panic(fmt.Sprintf("zones of generated terrain: %v", err))
	}
	return zones
}

// ZoneCounts returns the number of cells in each zone.
func (t *Terrain) ZoneCounts() map[coast.Zone]int {
	counts := make(map[coast.Zone]int)
	for _, z := range t.Zones() {
		counts[z]++
	}
	return counts
}

// Mesh returns the triangle mesh of the terrain.
func (t *Terrain) Mesh() (*mesh.Mesh, error) {
	return mesh.Generate(t.ElevationField, t.cfg.HeightMultiplier, mesh.LinearCurve(), t.cfg.LevelOfDetail)
}
