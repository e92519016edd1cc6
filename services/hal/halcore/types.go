// services/hal/halcore/types.go
package halcore

import "image/color"

// ---- GPIO abstractions ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// GPIOPin is an input the button is read from.
type GPIOPin interface {
	ConfigureInput(pull Pull) error
	Get() bool
	Number() int
}

// PinFactory supplies GPIO pins by the configured number scheme.
type PinFactory interface {
	ByNumber(n int) (GPIOPin, bool)
}

// ---- Addressable pixels ----

// PixelStrip transmits one whole frame to a chain of addressable LEDs.
// It is satisfied by tinygo.org/x/drivers/ws2812.Device. A call either
// sends the full frame or returns an error.
type PixelStrip interface {
	WriteColors(buf []color.RGBA) error
}

// StripFactory binds a pixel strip to a data pin.
type StripFactory interface {
	ByPin(n int) (PixelStrip, bool)
}

// Util
func PullToString(p Pull) string {
	switch p {
	case PullUp:
		return "up"
	case PullDown:
		return "down"
	default:
		return "none"
	}
}

func ParsePull(s string) Pull {
	switch s {
	case "up", "pullup":
		return PullUp
	case "down", "pulldown":
		return PullDown
	default:
		return PullNone
	}
}
