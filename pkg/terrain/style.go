package terrain

import "github.com/hallwright/scenario-workbench/pkg/scenario"

// Palette is everything a map style may change: presentation only.
// Geometry never consults the palette.
type Palette struct {
	Background  string
	BlockFill   string // empty means unfilled footprints
	Stroke      string
	RiverStroke string
	RiverBank   string // empty means no bank outline
	RoadWidth   float64
	Shadows     bool // realistic style drops a shadow under footprints
}

// PaletteFor returns the presentation parameters for a map style.
// Unknown styles render as vintage.
func PaletteFor(style scenario.MapStyle) Palette {
	switch style {
	case scenario.StyleRealistic:
		return Palette{
			Background:  "#e3e6e3",
			BlockFill:   "#dcd8cc",
			Stroke:      "#b0aba0",
			RiverStroke: "#a2c2cf",
			RiverBank:   "#8a9a9e",
			RoadWidth:   0.8,
			Shadows:     true,
		}
	case scenario.StyleBlueprint:
		return Palette{
			Background:  "#1e3a8a",
			Stroke:      "rgba(255,255,255,0.4)",
			RiverStroke: "rgba(255,255,255,0.2)",
			RoadWidth:   0.5,
		}
	case scenario.StyleIsometric:
		return Palette{
			Background:  "#f0f0f0",
			BlockFill:   "#dcd8cc",
			Stroke:      "#b0aba0",
			RiverStroke: "#a2c2cf",
			RiverBank:   "#8a9a9e",
			RoadWidth:   0.5,
		}
	case scenario.StylePixel:
		return Palette{
			Background:  "#7f8c8d",
			BlockFill:   "#dcd8cc",
			Stroke:      "#b0aba0",
			RiverStroke: "#a2c2cf",
			RiverBank:   "#8a9a9e",
			RoadWidth:   0.5,
		}
	default: // vintage
		return Palette{
			Background:  "#f4f1ea",
			BlockFill:   "#dcd8cc",
			Stroke:      "#b0aba0",
			RiverStroke: "#a2c2cf",
			RiverBank:   "#8a9a9e",
			RoadWidth:   0.5,
		}
	}
}
