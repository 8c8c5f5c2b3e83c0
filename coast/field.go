package coast

import (
	"github.com/Flokey82/go_gens/utils"
)

// ElevationField is a dense row-major grid of elevation samples. Zero is
// roughly sea level, negative values are underwater.
type ElevationField struct {
	Width  int
	Height int
	Data   []float64 // Data[y*Width+x]
}

// Size returns the dimensions of the field.
func (f *ElevationField) Size() (int, int) {
	return f.Width, f.Height
}

// At returns the elevation at (x, y).
func (f *ElevationField) At(x, y int) float64 {
	return f.Data[y*f.Width+x]
}

// MinMax returns the lowest and highest elevation in the field.
func (f *ElevationField) MinMax() (float64, float64) {
	if len(f.Data) == 0 {
		return 0, 0
	}
	return utils.MinMax(f.Data)
}
