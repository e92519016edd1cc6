// services/hal/platform/factories_tinygo.go
//go:build tinygo

package platform

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"

	"huecycle-go/services/hal/boards"
	"huecycle-go/services/hal/halcore"
)

// -----------------------------------------------------------------------------
// Defaults used by hal.Open on MCU targets
// -----------------------------------------------------------------------------

// DefaultPinFactory maps logical numbers directly to machine.Pin(n), limited to
// the selected board's user GPIOs.
func DefaultPinFactory() halcore.PinFactory { return mcuPinFactory{b: boards.Selected} }

// StripDriver names the driver behind DefaultStripFactory.
const StripDriver = "ws2812"

// DefaultStripFactory drives WS2812 chains through the ws2812 driver.
func DefaultStripFactory() halcore.StripFactory { return mcuStripFactory{b: boards.Selected} }

// ---- GPIO implementation ----

type mcuPinFactory struct{ b boards.Board }

func (f mcuPinFactory) ByNumber(n int) (halcore.GPIOPin, bool) {
	if !f.b.Has(n) {
		return nil, false
	}
	return &mcuPin{p: machine.Pin(n), n: n}, true
}

type mcuPin struct {
	p machine.Pin
	n int
}

func (r *mcuPin) ConfigureInput(pull halcore.Pull) error {
	var mode machine.PinMode
	switch pull {
	case halcore.PullUp:
		mode = machine.PinInputPullup
	case halcore.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *mcuPin) Get() bool   { return r.p.Get() }
func (r *mcuPin) Number() int { return r.n }

// ---- WS2812 implementation ----

type mcuStripFactory struct{ b boards.Board }

func (f mcuStripFactory) ByPin(n int) (halcore.PixelStrip, bool) {
	if !f.b.Has(n) {
		return nil, false
	}
	pin := machine.Pin(n)
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &mcuStrip{dev: ws2812.New(pin)}, true
}

// mcuStrip wraps the driver so the pointer receiver is always used.
type mcuStrip struct{ dev ws2812.Device }

func (s *mcuStrip) WriteColors(buf []color.RGBA) error { return s.dev.WriteColors(buf) }
