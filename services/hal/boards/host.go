//go:build !esp32c3 && !rp2040

package boards

// Host builds mirror the ESP32-C3 wiring so simulations and tests use the
// same pin numbers as the reference board.
var Selected = Board{
	Name:            "host",
	GPIOMin:         0,
	GPIOMax:         21,
	Button:          9,
	ButtonActiveLow: true,
	LED:             8,
	Pixels:          1,
}
