package palette

import "image/color"

// Palette interpolates between two colors based on the network output.
// An output of 0 maps to the disabled endpoint, 1 to the enabled one.
type Palette struct {
	Disabled color.RGBA
	Enabled  color.RGBA
}

// New creates a palette with the default endpoints,
// red for disabled and green for enabled.
func New() Palette {
	return Palette{
		Disabled: color.RGBA{R: 220, G: 60, B: 60, A: 255},
		Enabled:  color.RGBA{R: 60, G: 200, B: 90, A: 255},
	}
}

// ColorFor maps the network output to the interpolated color.
// NOTE : outputs outside [0,1] extrapolate beyond the endpoints,
// the channels only saturate at the uint8 conversion.
func (p Palette) ColorFor(output float64) color.RGBA {
	return color.RGBA{
		R: channel(p.Disabled.R, p.Enabled.R, output),
		G: channel(p.Disabled.G, p.Enabled.G, output),
		B: channel(p.Disabled.B, p.Enabled.B, output),
		A: 255,
	}
}

func channel(from, to uint8, t float64) uint8 {
	v := float64(from) + t*(float64(to)-float64(from))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
