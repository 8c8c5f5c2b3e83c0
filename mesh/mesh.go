// Package mesh builds a triangle mesh from a height map, with a height curve
// and level of detail simplification.
package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidMesh is returned for unusable mesh parameters.
var ErrInvalidMesh = errors.New("invalid mesh parameters")

// MaxLevelOfDetail is the coarsest supported level of detail.
const MaxLevelOfDetail = 6

// HeightMap is a grid of raw elevations, such as a coast.ElevationField.
type HeightMap interface {
	Size() (int, int)
	At(x, y int) float64
}

// Key is a point on a Curve.
type Key struct {
	Time  float64
	Value float64
}

// Curve is a piecewise linear remapping of heights. Inputs outside the keys
// evaluate to the first or last value.
type Curve []Key

// LinearCurve maps [0, 1] onto itself.
func LinearCurve() Curve {
	return Curve{{0, 0}, {1, 1}}
}

// Evaluate returns the curve value at t.
func (c Curve) Evaluate(t float64) float64 {
	if len(c) == 0 {
		return t
	}
	if t <= c[0].Time {
		return c[0].Value
	}
	last := c[len(c)-1]
	if t >= last.Time {
		return last.Value
	}
	i := sort.Search(len(c), func(i int) bool { return c[i].Time > t })
	a, b := c[i-1], c[i]
	if b.Time == a.Time {
		return b.Value
	}
	return a.Value + (b.Value-a.Value)*(t-a.Time)/(b.Time-a.Time)
}

// Mesh is an indexed triangle mesh centered on the origin, with y up.
type Mesh struct {
	Vertices  []mgl32.Vec3
	UVs       []mgl32.Vec2
	Normals   []mgl32.Vec3
	Triangles []int // Three vertex indices per triangle
}

// Generate builds a mesh from every n-th sample of the height map, where n is
// 1 for level of detail 0 and 2*lod otherwise. Heights pass through the curve
// and are then scaled by heightMultiplier.
func Generate(hm HeightMap, heightMultiplier float64, curve Curve, lod int) (*Mesh, error) {
	width, height := hm.Size()
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: need at least 2x2 samples, got %dx%d", ErrInvalidMesh, width, height)
	}
	if lod < 0 || lod > MaxLevelOfDetail {
		return nil, fmt.Errorf("%w: level of detail %d outside [0, %d]", ErrInvalidMesh, lod, MaxLevelOfDetail)
	}
	if curve == nil {
		curve = LinearCurve()
	}
	topLeftX := float32(width-1) / -2
	topLeftZ := float32(height-1) / 2

	inc := 1
	if lod > 0 {
		inc = lod * 2
	}
	perLine := (width-1)/inc + 1
	lines := (height-1)/inc + 1

	m := &Mesh{
		Vertices:  make([]mgl32.Vec3, 0, perLine*lines),
		UVs:       make([]mgl32.Vec2, 0, perLine*lines),
		Triangles: make([]int, 0, (perLine-1)*(lines-1)*6),
	}
	i := 0
	for y := 0; y < height; y += inc {
		for x := 0; x < width; x += inc {
			h := curve.Evaluate(hm.At(x, y)) * heightMultiplier
			m.Vertices = append(m.Vertices, mgl32.Vec3{topLeftX + float32(x), float32(h), topLeftZ - float32(y)})
			m.UVs = append(m.UVs, mgl32.Vec2{float32(x) / float32(width), float32(y) / float32(height)})
			if x+inc < width && y+inc < height {
				m.addTriangle(i, i+perLine+1, i+perLine)
				m.addTriangle(i+perLine+1, i, i+1)
			}
			i++
		}
	}
	m.computeNormals()
	return m, nil
}

func (m *Mesh) addTriangle(a, b, c int) {
	m.Triangles = append(m.Triangles, a, b, c)
}

// computeNormals averages the face normals around every vertex.
func (m *Mesh) computeNormals() {
	m.Normals = make([]mgl32.Vec3, len(m.Vertices))
	for t := 0; t+2 < len(m.Triangles); t += 3 {
		a, b, c := m.Triangles[t], m.Triangles[t+1], m.Triangles[t+2]
		n := m.Vertices[b].Sub(m.Vertices[a]).Cross(m.Vertices[c].Sub(m.Vertices[a]))
		m.Normals[a] = m.Normals[a].Add(n)
		m.Normals[b] = m.Normals[b].Add(n)
		m.Normals[c] = m.Normals[c].Add(n)
	}
	for i, n := range m.Normals {
		if n.Len() == 0 {
			m.Normals[i] = mgl32.Vec3{0, 1, 0}
			continue
		}
		m.Normals[i] = n.Normalize()
	}
}

// WriteOBJ writes the mesh in Wavefront OBJ format.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v[0], v[1], v[2])
	}
	for _, uv := range m.UVs {
		fmt.Fprintf(bw, "vt %g %g\n", uv[0], uv[1])
	}
	for _, n := range m.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n[0], n[1], n[2])
	}
	for t := 0; t+2 < len(m.Triangles); t += 3 {
		a, b, c := m.Triangles[t]+1, m.Triangles[t+1]+1, m.Triangles[t+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
	return bw.Flush()
}
