package noise

import "math"

// octaveOffset shifts each octave away from the previous one.
const octaveOffset = 100.0

// Fractal sums multiple octaves of a Source, initialized with a given
// persistence, lacunarity and number of octaves.
type Fractal struct {
	Source      Source
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Amplitudes  []float64
}

// NewFractal returns a new Fractal. A single octave evaluates exactly like
// the wrapped source.
func NewFractal(src Source, octaves int, persistence, lacunarity float64) *Fractal {
	if octaves < 1 {
		octaves = 1
	}
	n := &Fractal{
		Source:      src,
		Octaves:     octaves,
		Persistence: persistence,
		Lacunarity:  lacunarity,
		Amplitudes:  make([]float64, octaves),
	}

	// Initialize the amplitudes.
	for i := range n.Amplitudes {
		n.Amplitudes[i] = math.Pow(persistence, float64(i))
	}
	return n
}

// Eval2 returns the amplitude weighted average of all octaves at the given
// point, in [0, 1].
func (n *Fractal) Eval2(x, y float64) float64 {
	var sum, sumOfAmplitudes float64
	frequency := 1.0
	for octave := 0; octave < n.Octaves; octave++ {
		offset := float64(octave) * octaveOffset
		sum += n.Amplitudes[octave] * n.Source.Eval2(x*frequency+offset, y*frequency+offset)
		sumOfAmplitudes += n.Amplitudes[octave]
		frequency *= n.Lacunarity
	}
	if sumOfAmplitudes == 0 {
		return 0
	}
	return Clamp01(sum / sumOfAmplitudes)
}
