package various

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

var byteorder = binary.LittleEndian

// WriteFloat32Slice writes the length of s followed by its values as little
// endian float32.
func WriteFloat32Slice(w io.Writer, s []float64) error {
	if err := binary.Write(w, byteorder, int64(len(s))); err != nil {
		return err
	}
	buf := make([]byte, 4*len(s))
	for i, v := range s {
		byteorder.PutUint32(buf[4*i:], math.Float32bits(float32(v)))
	}
	_, err := w.Write(buf)
	return err
}

// MaxFloat32Slice is the largest slice length ReadFloat32Slice accepts.
const MaxFloat32Slice = 1 << 26

// ErrInvalidLength is returned for a length prefix that is negative or larger
// than MaxFloat32Slice.
var ErrInvalidLength = errors.New("invalid slice length")

// ReadFloat32Slice reads a slice written by WriteFloat32Slice.
func ReadFloat32Slice(r io.Reader) ([]float64, error) {
	var num int64
	if err := binary.Read(r, byteorder, &num); err != nil {
		return nil, err
	}
	if num < 0 || num > MaxFloat32Slice {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, num)
	}
	buf := make([]byte, 4*num)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	s := make([]float64, num)
	for i := range s {
		s[i] = float64(math.Float32frombits(byteorder.Uint32(buf[4*i:])))
	}
	return s, nil
}
