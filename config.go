package gencoastline

import (
	"github.com/Flokey82/gencoastline/coast"
	"github.com/Flokey82/gencoastline/paint"
)

// Config is a struct that holds all configuration options for the terrain generation.
type Config struct {
	Coast *coast.Config // Elevation synthesis
	*PaintConfig
	*MeshConfig
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Coast:       coast.NewConfig(),
		PaintConfig: NewPaintConfig(),
		MeshConfig:  NewMeshConfig(),
	}
}

// PaintConfig is a struct that holds all configuration options for material painting.
type PaintConfig struct {
	Preset     string  // Threshold preset: "fixed", "waterlevel" or "simple"
	WaterLevel float64 // Water level for the "waterlevel" preset
	Resolution int     // Material map resolution (cells per side)
	Divisor    float64 // Vertical scale dividing raw elevation into normalized height
}

// NewPaintConfig returns a new config for material painting.
func NewPaintConfig() *PaintConfig {
	return &PaintConfig{
		Preset:     "fixed",
		WaterLevel: 0.3,
		Resolution: 512,
		Divisor:    1.0,
	}
}

// Rules returns the paint rules selected by the config.
func (c *PaintConfig) Rules() (paint.Rules, error) {
	return paint.RulesByName(c.Preset, c.WaterLevel)
}

// MeshConfig is a struct that holds all configuration options for mesh generation.
type MeshConfig struct {
	HeightMultiplier float64 // Vertical scale of the mesh
	LevelOfDetail    int     // 0 is full detail, n keeps every 2n-th sample
}

// NewMeshConfig returns a new config for mesh generation.
func NewMeshConfig() *MeshConfig {
	return &MeshConfig{
		HeightMultiplier: 20,
		LevelOfDetail:    0,
	}
}
