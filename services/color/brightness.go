package color

import (
	"image/color"

	"huecycle-go/types"
	"huecycle-go/x/mathx"
)

// Brightness scales every channel by (factor+1)/256; 255 is the identity.
func Brightness(c types.RGB, factor uint8) types.RGB {
	return types.RGB{
		R: mathx.ScaleU8(c.R, factor),
		G: mathx.ScaleU8(c.G, factor),
		B: mathx.ScaleU8(c.B, factor),
	}
}

// ToRGBA converts to the colour type accepted by the pixel drivers.
func ToRGBA(c types.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
