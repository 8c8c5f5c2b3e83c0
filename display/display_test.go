package display

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/Flokey82/gencoastline/coast"
	"github.com/Flokey82/gencoastline/paint"
)

func field(w, h int, v ...float64) *coast.ElevationField {
	return &coast.ElevationField{Width: w, Height: h, Data: v}
}

func TestNoiseMapLerp(t *testing.T) {
	f := field(4, 1, -0.5, 0, 0.5, 2)
	img := NoiseMap(f)
	want := []uint8{0, 0, 128, 255}
	for x, v := range want {
		c := img.RGBAAt(x, 0)
		if c.R != v || c.G != v || c.B != v || c.A != 255 {
			t.Errorf("pixel %d = %v, want gray %d", x, c, v)
		}
	}
}

func TestGrayscaleCustomColors(t *testing.T) {
	f := field(2, 1, 0, 1)
	lo := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	hi := color.NRGBA{R: 110, G: 120, B: 130, A: 255}
	img := Grayscale(f, lo, hi)
	if c := img.RGBAAt(0, 0); c.R != 10 || c.B != 30 {
		t.Errorf("low pixel %v, want %v", c, lo)
	}
	if c := img.RGBAAt(1, 0); c.R != 110 || c.B != 130 {
		t.Errorf("high pixel %v, want %v", c, hi)
	}
}

func TestNormalizedStretchesRange(t *testing.T) {
	img := Normalized(field(3, 1, -0.3, 0.2, 0.7))
	if c := img.RGBAAt(0, 0); c.R != 0 {
		t.Errorf("lowest pixel %v, want black", c)
	}
	if c := img.RGBAAt(2, 0); c.R != 255 {
		t.Errorf("highest pixel %v, want white", c)
	}
	flat := Normalized(field(2, 1, 0.4, 0.4))
	if c := flat.RGBAAt(1, 0); c.R != 0 {
		t.Errorf("flat field pixel %v, want black", c)
	}
}

func TestRampSeparatesWaterAndLand(t *testing.T) {
	img := Ramp(field(2, 1, -0.3, 0.3), DefaultGradient())
	water, land := img.RGBAAt(0, 0), img.RGBAAt(1, 0)
	if water.B <= water.R {
		t.Errorf("deep water %v should be blue", water)
	}
	if land.G <= land.B {
		t.Errorf("land %v should be green", land)
	}
}

func TestMaterialsBlend(t *testing.T) {
	w, err := paint.Paint(func(x, y int) float64 {
		return []float64{0.1, 0.375, 0.5}[x]
	}, 3, paint.DefaultRules())
	if err != nil {
		t.Fatal(err)
	}
	layers := paint.DefaultLayers()
	img := Materials(w, layers)
	if c := img.RGBAAt(0, 1); c.R != layers[0].Color.R || c.G != layers[0].Color.G {
		t.Errorf("sand pixel %v, want %v", c, layers[0].Color)
	}
	if c := img.RGBAAt(2, 1); c.R != layers[1].Color.R || c.G != layers[1].Color.G {
		t.Errorf("grass pixel %v, want %v", c, layers[1].Color)
	}
	mid := img.RGBAAt(1, 1)
	if want := uint8((int(layers[0].Color.R) + int(layers[1].Color.R) + 1) / 2); mid.R != want && mid.R != want-1 {
		t.Errorf("blend pixel red %d, want about %d", mid.R, want)
	}
}

func TestDrawCoastlineAndPNG(t *testing.T) {
	s, err := coast.New(4, nil)
	if err != nil {
		t.Fatal(err)
	}
	f, err := s.Synthesize(64, 48)
	if err != nil {
		t.Fatal(err)
	}
	img := Ramp(f, DefaultGradient())
	before := img.RGBAAt(int(s.Row(10, 64).Coastline), 10)
	DrawCoastline(img, s.Rows(64, 48), 64)
	after := img.RGBAAt(int(s.Row(10, 64).Coastline), 10)
	if before == after {
		t.Errorf("coastline overlay did not change pixel at the coastline")
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatal(err)
	}
	dec, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := dec.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("decoded size %v, want 64x48", b)
	}
}
