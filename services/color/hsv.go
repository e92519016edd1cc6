// Package color converts animation colours into device-ready intensities.
package color

import (
	"huecycle-go/types"
	"huecycle-go/x/mathx"
)

// Convert maps an HSV triple onto RGB using the six-sector hue wheel.
// Chromatic channels are truncated, not rounded; achromatic output is rounded.
func Convert(hsv types.HSV) types.RGB {
	h := float32(hsv.Hue) / 255
	s := float32(hsv.Sat) / 255
	v := float32(hsv.Val) / 255

	if hsv.Sat == 0 {
		c := mathx.RoundU8(v)
		return types.RGB{R: c, G: c, B: c}
	}

	hh := float32(h * 6)
	if hh >= 6 {
		hh -= 6
	}
	i := uint8(hh)
	ff := hh - float32(i)

	p := float32(v * (1 - s))
	q := float32(v * (1 - float32(s*ff)))
	t := float32(v * (1 - float32(s*(1-ff))))

	switch i % 6 {
	case 0:
		return rgb(v, t, p)
	case 1:
		return rgb(q, v, p)
	case 2:
		return rgb(p, v, t)
	case 3:
		return rgb(p, q, v)
	case 4:
		return rgb(t, p, v)
	default:
		return rgb(v, p, q)
	}
}

func rgb(r, g, b float32) types.RGB {
	return types.RGB{R: mathx.TruncU8(r), G: mathx.TruncU8(g), B: mathx.TruncU8(b)}
}
