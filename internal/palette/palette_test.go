package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpoints(t *testing.T) {
	p := Palette{
		Disabled: color.RGBA{R: 100, G: 0, B: 200, A: 255},
		Enabled:  color.RGBA{R: 0, G: 250, B: 100, A: 255},
	}
	assert.Equal(t, p.Disabled, p.ColorFor(0))
	assert.Equal(t, p.Enabled, p.ColorFor(1))
}

func TestMidpoint(t *testing.T) {
	p := Palette{
		Disabled: color.RGBA{R: 100, G: 0, B: 200, A: 255},
		Enabled:  color.RGBA{R: 0, G: 250, B: 100, A: 255},
	}
	mid := p.ColorFor(0.5)
	assert.Equal(t, color.RGBA{R: 50, G: 125, B: 150, A: 255}, mid)
}

func TestExtrapolation(t *testing.T) {
	p := Palette{
		Disabled: color.RGBA{R: 100, G: 100, B: 100, A: 255},
		Enabled:  color.RGBA{R: 200, G: 100, B: 0, A: 255},
	}
	// an unclamped activation can push the output outside [0,1]
	assert.Equal(t, color.RGBA{R: 250, G: 100, B: 0, A: 255}, p.ColorFor(1.5))
	assert.Equal(t, color.RGBA{R: 0, G: 100, B: 200, A: 255}, p.ColorFor(-1))
	// channels saturate only at the uint8 cast
	assert.Equal(t, color.RGBA{R: 255, G: 100, B: 0, A: 255}, p.ColorFor(2))
}
