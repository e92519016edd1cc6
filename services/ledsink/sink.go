// Package ledsink adapts a pixel strip into a frame writer with a global
// brightness cap.
package ledsink

import (
	"image/color"

	"huecycle-go/errcode"
	colour "huecycle-go/services/color"
	"huecycle-go/services/hal/halcore"
	"huecycle-go/types"
)

// MaxPixels bounds the frame buffer; the sink is for a short status chain.
const MaxPixels = 8

// Sink owns the strip handle and a reusable frame buffer.
type Sink struct {
	strip  halcore.PixelStrip
	pixels int
	buf    [MaxPixels]color.RGBA
}

// New binds a strip with a fixed pixel count, clamped to [1, MaxPixels].
func New(strip halcore.PixelStrip, pixels int) *Sink {
	if pixels < 1 {
		pixels = 1
	}
	if pixels > MaxPixels {
		pixels = MaxPixels
	}
	return &Sink{strip: strip, pixels: pixels}
}

func (s *Sink) Pixels() int { return s.pixels }

// Write scales colours by brightness and sends one full frame. Missing
// pixels are sent black and surplus colours are ignored.
func (s *Sink) Write(colors []types.RGB, brightness uint8) error {
	for i := 0; i < s.pixels; i++ {
		c := types.Black
		if i < len(colors) {
			c = colour.Brightness(colors[i], brightness)
		}
		s.buf[i] = colour.ToRGBA(c)
	}
	if err := s.strip.WriteColors(s.buf[:s.pixels]); err != nil {
		return errcode.Wrap(errcode.WriteFailed, "led.write", err)
	}
	return nil
}

// Off blanks the whole chain.
func (s *Sink) Off() error { return s.Write(nil, 0) }
