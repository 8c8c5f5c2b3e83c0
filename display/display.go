// Package display renders elevation fields and material weights as images.
package display

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/Flokey82/gencoastline/coast"
	"github.com/Flokey82/gencoastline/paint"
	"github.com/Flokey82/gencoastline/various"
	"github.com/mazznoer/colorgrad"
)

// Grayscale maps every elevation to a color between lo (at 0) and hi (at 1),
// clamping values outside that range.
func Grayscale(f *coast.ElevationField, lo, hi color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	l, h := toNRGBA(lo), toNRGBA(hi)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.Set(x, y, lerpColor(l, h, f.At(x, y)))
		}
	}
	return img
}

// NoiseMap renders the field black to white.
func NoiseMap(f *coast.ElevationField) *image.RGBA {
	return Grayscale(f, color.Black, color.White)
}

// DefaultGradient returns a terrain color ramp over raw elevation, from deep
// water through the beach up to bare rock.
func DefaultGradient() colorgrad.Gradient {
	grad, err := colorgrad.NewGradient().
		HtmlColors("#0b2545", "#1d5f8a", "#e6cc99", "#4d9933", "#2f5e1f", "#808080").
		Domain(-0.3, -0.05, 0, 0.1, 0.6, 1).
		Build()
	if err != nil {
		// The stops above are constant.
		panic(err)
	}
	return grad
}

// Ramp maps every elevation through the given gradient.
func Ramp(f *coast.ElevationField, grad colorgrad.Gradient) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.Set(x, y, grad.At(f.At(x, y)))
		}
	}
	return img
}

// Normalized renders the field black to white over its own elevation range.
func Normalized(f *coast.ElevationField) *image.RGBA {
	min, max := f.MinMax()
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	l, h := toNRGBA(color.Black), toNRGBA(color.White)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			var t float64
			if max > min {
				t = (f.At(x, y) - min) / (max - min)
			}
			img.Set(x, y, lerpColor(l, h, t))
		}
	}
	return img
}

// Materials blends the layer colors by their weights.
func Materials(w *paint.Weights, layers []paint.Layer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w.Resolution, w.Resolution))
	for y := 0; y < w.Resolution; y++ {
		for x := 0; x < w.Resolution; x++ {
			var r, g, b float64
			for i, v := range w.At(x, y) {
				if i >= len(layers) {
					break
				}
				c := layers[i].Color
				r += v * float64(c.R)
				g += v * float64(c.G)
				b += v * float64(c.B)
			}
			img.Set(x, y, color.NRGBA{R: toByte(r), G: toByte(g), B: toByte(b), A: 255})
		}
	}
	return img
}

// WritePNG encodes the image as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: toByte(various.Lerp(float64(a.R), float64(b.R), t)),
		G: toByte(various.Lerp(float64(a.G), float64(b.G), t)),
		B: toByte(various.Lerp(float64(a.B), float64(b.B), t)),
		A: toByte(various.Lerp(float64(a.A), float64(b.A), t)),
	}
}

func toByte(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
