package terrain

import (
	"io"

	"github.com/fogleman/gg"

	"github.com/hallwright/scenario-workbench/pkg/scenario"
)

// RenderPNG rasterizes a layout at the given pixel size and writes a PNG.
// The 100×100 unit space is scaled uniformly per axis.
func RenderPNG(w io.Writer, layout Layout, style scenario.MapStyle, width, height int) error {
	p := PaletteFor(style)
	dc := gg.NewContext(width, height)

	sx := float64(width) / 100
	sy := float64(height) / 100

	dc.SetHexColor(cssColor(p.Background))
	dc.Clear()

	drawRiver := func(lineWidth float64, color string) {
		dc.SetHexColor(cssColor(color))
		dc.SetLineWidth(lineWidth * sx)
		for i, pt := range layout.River {
			if i == 0 {
				dc.MoveTo(pt.X*sx, pt.Y*sy)
				continue
			}
			dc.LineTo(pt.X*sx, pt.Y*sy)
		}
		dc.Stroke()
	}
	if p.RiverBank != "" {
		drawRiver(5, p.RiverBank)
	}
	drawRiver(4, p.RiverStroke)

	dc.SetHexColor(cssColor(p.Stroke))
	dc.SetLineWidth(p.RoadWidth * sx)
	for _, r := range layout.Roads {
		dc.DrawLine(r.X1*sx, r.Y1*sy, r.X2*sx, r.Y2*sy)
		dc.Stroke()
	}

	for _, bd := range layout.Buildings {
		cx, cy := (bd.X+bd.W/2)*sx, (bd.Y+bd.H/2)*sy
		dc.Push()
		dc.RotateAbout(gg.Radians(bd.Rotation), cx, cy)
		dc.DrawRectangle(bd.X*sx, bd.Y*sy, bd.W*sx, bd.H*sy)
		if p.BlockFill != "" {
			dc.SetHexColor(cssColor(p.BlockFill))
			dc.FillPreserve()
		}
		dc.SetHexColor(cssColor(p.Stroke))
		dc.SetLineWidth(0.2 * sx)
		dc.Stroke()
		dc.Pop()
	}

	return dc.EncodePNG(w)
}

// cssColor maps the handful of rgba() palette entries onto hex for the
// raster path; everything else is already hex.
func cssColor(c string) string {
	switch c {
	case "rgba(255,255,255,0.4)":
		return "#9aa8cc"
	case "rgba(255,255,255,0.2)":
		return "#5c71ab"
	}
	return c
}
