package gencoastline

import (
	"github.com/Flokey82/gencoastline/various"

	geojson "github.com/paulmach/go.geojson"
)

// CoastlineGeoJSON returns a feature collection with the coastline as a line
// string and the barrier islands as a multi line string, in grid coordinates
// [x, y].
func (t *Terrain) CoastlineGeoJSON() ([]byte, error) {
	rows := t.Rows()
	fc := geojson.NewFeatureCollection()

	coastline := make([][]float64, 0, len(rows))
	for _, r := range rows {
		coastline = append(coastline, point(r.Coastline, r.Y))
	}
	f := geojson.NewLineStringFeature(coastline)
	f.SetProperty("kind", "coastline")
	f.SetProperty("seed", t.Seed)
	fc.AddFeature(f)

	// Split the barrier centerline wherever the island is interrupted.
	var islands [][][]float64
	var cur [][]float64
	for _, r := range rows {
		if !r.HasBarrier {
			if len(cur) > 1 {
				islands = append(islands, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, point(r.Barrier, r.Y))
	}
	if len(cur) > 1 {
		islands = append(islands, cur)
	}
	f = geojson.NewMultiLineStringFeature(islands...)
	f.SetProperty("kind", "barrier")
	f.SetProperty("islands", len(islands))
	fc.AddFeature(f)

	counts := t.ZoneCounts()
	for z, n := range counts {
		fc.Features[0].SetProperty(z.String()+"_cells", n)
	}
	return fc.MarshalJSON()
}

func point(x float64, y int) []float64 {
	return []float64{various.RoundToDecimals(x, 2), float64(y)}
}
