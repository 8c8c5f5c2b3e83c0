package gencoastline

import (
	"fmt"
	"image"
	"os"

	"github.com/Flokey82/gencoastline/display"
	"github.com/Flokey82/gencoastline/various"
)

// Display modes for images.
const (
	DisplayNoiseMap   = "noisemap"   // Raw elevation black to white
	DisplayNormalized = "normalized" // Elevation range stretched black to white
	DisplayRamp       = "ramp"       // Terrain color gradient
	DisplayMaterials  = "materials"  // Blended material colors
)

// Image renders the terrain in the given display mode. The coastline overlay
// is drawn on elevation based modes only.
func (t *Terrain) Image(mode string, overlay bool) (*image.RGBA, error) {
	var img *image.RGBA
	switch mode {
	case DisplayNoiseMap, "":
		img = display.NoiseMap(t.ElevationField)
	case DisplayNormalized:
		img = display.Normalized(t.ElevationField)
	case DisplayRamp:
		img = display.Ramp(t.ElevationField, display.DefaultGradient())
	case DisplayMaterials:
		return display.Materials(t.Weights, t.Rules.Layers), nil
	default:
		return nil, fmt.Errorf("unknown display mode %q", mode)
	}
	if overlay {
		display.DrawCoastline(img, t.Rows(), t.Width)
	}
	return img, nil
}

// ExportPng writes the terrain image in the given display mode to path.
func (t *Terrain) ExportPng(path, mode string, overlay bool) error {
	img, err := t.Image(mode, overlay)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := display.WritePNG(f, img); err != nil {
		return err
	}
	return f.Close()
}

// ExportOBJ writes the terrain mesh to path.
func (t *Terrain) ExportOBJ(path string) error {
	m, err := t.Mesh()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := m.WriteOBJ(f); err != nil {
		return err
	}
	return f.Close()
}

// ExportGeoJSON writes the coastline features to path.
func (t *Terrain) ExportGeoJSON(path string) error {
	data, err := t.CoastlineGeoJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportRaw writes the elevation samples as a length prefixed little endian
// float32 buffer.
func (t *Terrain) ExportRaw(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := various.WriteFloat32Slice(f, t.Data); err != nil {
		return err
	}
	return f.Close()
}
