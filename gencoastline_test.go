package gencoastline

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Flokey82/gencoastline/coast"
	"github.com/Flokey82/gencoastline/various"
)

func smallConfig() *Config {
	cfg := NewConfig()
	cfg.Resolution = 32
	return cfg
}

func TestNewTerrain(t *testing.T) {
	tr, err := NewTerrainFromConfig(42, 96, 64, smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	if tr.Width != 96 || tr.Height != 64 || len(tr.Data) != 96*64 {
		t.Fatalf("unexpected field size %dx%d (%d samples)", tr.Width, tr.Height, len(tr.Data))
	}
	if tr.Weights.Resolution != 32 || len(tr.Weights.Data) != 32*32*3 {
		t.Fatalf("unexpected weights resolution %d (%d values)", tr.Weights.Resolution, len(tr.Weights.Data))
	}
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			var sum float64
			for _, v := range tr.Weights.At(x, y) {
				if v < 0 {
					t.Fatalf("(%d, %d): negative weight %f", x, y, v)
				}
				sum += v
			}
			if math.Abs(sum-1) > 1e-5 {
				t.Fatalf("(%d, %d): weights sum to %f", x, y, sum)
			}
		}
	}
	counts := tr.ZoneCounts()
	if counts[coast.ZoneMainland] == 0 {
		t.Errorf("expected mainland cells, got %v", counts)
	}
}

func TestNewTerrainDeterministic(t *testing.T) {
	a, err := NewTerrainFromConfig(7, 50, 40, smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewTerrainFromConfig(7, 50, 40, smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("elevation %d differs", i)
		}
	}
	for i := range a.Weights.Data {
		if a.Weights.Data[i] != b.Weights.Data[i] {
			t.Fatalf("weight %d differs", i)
		}
	}
}

func TestNewTerrainErrors(t *testing.T) {
	if _, err := NewTerrain(1, 0, 10); err == nil {
		t.Error("expected error for zero width")
	}
	cfg := smallConfig()
	cfg.Preset = "lava"
	if _, err := NewTerrainFromConfig(1, 10, 10, cfg); err == nil {
		t.Error("expected error for unknown preset")
	}
	cfg = smallConfig()
	cfg.Preset = "waterlevel"
	cfg.WaterLevel = 0.9
	if _, err := NewTerrainFromConfig(1, 10, 10, cfg); err == nil {
		t.Error("expected error for water level above the grass band")
	}
	cfg = smallConfig()
	cfg.Divisor = 0
	if _, err := NewTerrainFromConfig(1, 10, 10, cfg); err == nil {
		t.Error("expected error for zero divisor")
	}
	cfg = smallConfig()
	cfg.Resolution = 0
	tr, err := NewTerrainFromConfig(1, 10, 10, cfg)
	if err != nil {
		t.Fatalf("zero resolution should paint nothing, got %v", err)
	}
	if len(tr.Weights.Data) != 0 {
		t.Errorf("expected empty weights, got %d values", len(tr.Weights.Data))
	}

	// Missing sub-configs fall back to their defaults.
	partial := &Config{Coast: coast.NewConfig()}
	tr, err = NewTerrainFromConfig(1, 16, 16, partial)
	if err != nil {
		t.Fatalf("partial config: %v", err)
	}
	if tr.Weights.Resolution != NewPaintConfig().Resolution {
		t.Errorf("partial config painted at %d, want the default resolution", tr.Weights.Resolution)
	}
	if _, err := tr.Mesh(); err != nil {
		t.Errorf("partial config mesh: %v", err)
	}
	if partial.PaintConfig != nil || partial.MeshConfig != nil {
		t.Error("the caller's config should not be modified")
	}
}

func TestImages(t *testing.T) {
	tr, err := NewTerrainFromConfig(3, 40, 30, smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	for _, mode := range []string{DisplayNoiseMap, DisplayNormalized, DisplayRamp, DisplayMaterials} {
		img, err := tr.Image(mode, true)
		if err != nil {
			t.Fatalf("%s: %v", mode, err)
		}
		b := img.Bounds()
		wantW, wantH := 40, 30
		if mode == DisplayMaterials {
			wantW, wantH = 32, 32
		}
		if b.Dx() != wantW || b.Dy() != wantH {
			t.Errorf("%s: image size %v, want %dx%d", mode, b, wantW, wantH)
		}
	}
	if _, err := tr.Image("xray", false); err == nil {
		t.Error("expected error for unknown display mode")
	}
}

func TestCoastlineGeoJSON(t *testing.T) {
	tr, err := NewTerrainFromConfig(5, 80, 25, smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	data, err := tr.CoastlineGeoJSON()
	if err != nil {
		t.Fatal(err)
	}
	var fc struct {
		Type     string
		Features []struct {
			Geometry struct {
				Type        string
				Coordinates json.RawMessage
			}
			Properties map[string]interface{}
		}
	}
	if err := json.Unmarshal(data, &fc); err != nil {
		t.Fatal(err)
	}
	if fc.Type != "FeatureCollection" || len(fc.Features) != 2 {
		t.Fatalf("unexpected collection: %s", data)
	}
	if fc.Features[0].Geometry.Type != "LineString" || fc.Features[0].Properties["kind"] != "coastline" {
		t.Errorf("first feature should be the coastline, got %+v", fc.Features[0])
	}
	var line [][]float64
	if err := json.Unmarshal(fc.Features[0].Geometry.Coordinates, &line); err != nil {
		t.Fatal(err)
	}
	if len(line) != 25 {
		t.Errorf("coastline has %d points, want one per row", len(line))
	}
	if fc.Features[1].Geometry.Type != "MultiLineString" {
		t.Errorf("second feature should be a multi line string, got %s", fc.Features[1].Geometry.Type)
	}
}

func TestExports(t *testing.T) {
	cfg := smallConfig()
	cfg.LevelOfDetail = 1
	tr, err := NewTerrainFromConfig(9, 33, 33, cfg)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	png := filepath.Join(dir, "t.png")
	obj := filepath.Join(dir, "t.obj")
	gj := filepath.Join(dir, "t.geojson")
	raw := filepath.Join(dir, "t.raw")
	if err := tr.ExportPng(png, DisplayRamp, true); err != nil {
		t.Fatal(err)
	}
	if err := tr.ExportOBJ(obj); err != nil {
		t.Fatal(err)
	}
	if err := tr.ExportGeoJSON(gj); err != nil {
		t.Fatal(err)
	}
	if err := tr.ExportRaw(raw); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{png, obj, gj, raw} {
		if st, err := os.Stat(p); err != nil || st.Size() == 0 {
			t.Errorf("%s not written: %v", p, err)
		}
	}

	f, err := os.Open(raw)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	vals, err := various.ReadFloat32Slice(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(vals) != 33*33 || float32(vals[5]) != float32(tr.Data[5]) {
		t.Errorf("raw export does not match the field")
	}
}
