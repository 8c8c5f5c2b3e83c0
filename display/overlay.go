package display

import (
	"image"
	"image/color"

	"github.com/Flokey82/gencoastline/coast"
	"github.com/llgcode/draw2d/draw2dimg"
)

// Overlay colors.
var (
	CoastlineColor = color.NRGBA{R: 200, G: 30, B: 30, A: 255}
	BarrierColor   = color.NRGBA{R: 250, G: 220, B: 40, A: 255}
)

// DrawCoastline strokes the coastline of every row and the barrier island
// centerline where an island exists onto dest. Rows map one to one to image
// rows; columns are scaled from gridWidth to the image width.
func DrawCoastline(dest *image.RGBA, rows []coast.Row, gridWidth int) {
	if len(rows) == 0 || gridWidth <= 0 {
		return
	}
	b := dest.Bounds()
	sx := float64(b.Dx()) / float64(gridWidth)
	sy := float64(b.Dy()) / float64(len(rows))

	gc := draw2dimg.NewGraphicContext(dest)
	gc.SetLineWidth(1)

	// Coastline.
	gc.SetStrokeColor(CoastlineColor)
	gc.BeginPath()
	gc.MoveTo(rows[0].Coastline*sx, 0.5*sy)
	for _, r := range rows[1:] {
		gc.LineTo(r.Coastline*sx, (float64(r.Y)+0.5)*sy)
	}
	gc.Stroke()

	// Barrier islands, one path per uninterrupted stretch.
	gc.SetStrokeColor(BarrierColor)
	open := false
	for _, r := range rows {
		y := (float64(r.Y) + 0.5) * sy
		if !r.HasBarrier {
			if open {
				gc.Stroke()
				open = false
			}
			continue
		}
		if !open {
			gc.BeginPath()
			gc.MoveTo(r.Barrier*sx, y)
			open = true
			continue
		}
		gc.LineTo(r.Barrier*sx, y)
	}
	if open {
		gc.Stroke()
	}
}
