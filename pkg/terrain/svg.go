package terrain

import (
	"fmt"
	"strings"

	"github.com/hallwright/scenario-workbench/pkg/scenario"
)

// RenderSVG serializes a layout as a standalone SVG document in the
// 100×100 unit space, styled by the given map style. Callers scale it by
// embedding; the geometry is untouched by styling.
func RenderSVG(layout Layout, style scenario.MapStyle) string {
	p := PaletteFor(style)

	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" preserveAspectRatio="none">`)
	b.WriteByte('\n')
	fmt.Fprintf(&b, `<rect width="100" height="100" fill="%s"/>`, p.Background)
	b.WriteByte('\n')

	points := make([]string, 0, len(layout.River))
	for _, pt := range layout.River {
		points = append(points, fmt.Sprintf("%s,%s", f(pt.X), f(pt.Y)))
	}
	poly := strings.Join(points, " ")
	if p.RiverBank != "" {
		fmt.Fprintf(&b,
			`<polyline points="%s" fill="none" stroke="%s" stroke-width="5" stroke-opacity="0.3" stroke-linecap="round"/>`,
			poly, p.RiverBank)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b,
		`<polyline points="%s" fill="none" stroke="%s" stroke-width="4" stroke-linecap="round" stroke-linejoin="round"/>`,
		poly, p.RiverStroke)
	b.WriteByte('\n')

	for _, r := range layout.Roads {
		fmt.Fprintf(&b,
			`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" opacity="0.6"/>`,
			f(r.X1), f(r.Y1), f(r.X2), f(r.Y2), p.Stroke, f(p.RoadWidth))
		b.WriteByte('\n')
	}

	for _, bd := range layout.Buildings {
		cx, cy := bd.X+bd.W/2, bd.Y+bd.H/2
		fill := p.BlockFill
		if fill == "" {
			fill = "none"
		}
		fmt.Fprintf(&b, `<g transform="rotate(%s %s %s)">`, f(bd.Rotation), f(cx), f(cy))
		fmt.Fprintf(&b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="%s" stroke-width="0.2"/>`,
			f(bd.X), f(bd.Y), f(bd.W), f(bd.H), fill, p.Stroke)
		if p.Shadows {
			fmt.Fprintf(&b, `<path d="M%s %s L%s %s L%s %s L%s %s Z" fill="#a09b90"/>`,
				f(bd.X), f(bd.Y+bd.H), f(bd.X+bd.W), f(bd.Y+bd.H),
				f(bd.X+bd.W), f(bd.Y+bd.H+0.5), f(bd.X), f(bd.Y+bd.H+0.5))
		}
		b.WriteString(`</g>`)
		b.WriteByte('\n')
	}

	b.WriteString(`</svg>`)
	b.WriteByte('\n')
	return b.String()
}

func f(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}
