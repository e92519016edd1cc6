package types

// ---- Colour payloads ----

// HSV is a hue/saturation/value triple. Hue wraps modulo 256 (a full turn is
// 256 steps, not 360 degrees).
type HSV struct {
	Hue uint8 `json:"hue"`
	Sat uint8 `json:"sat"`
	Val uint8 `json:"val"`
}

// RGB is a device-ready intensity triple.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Black is the blanked pixel.
var Black = RGB{}

// ---- LED capability payloads ----

type LEDInfo struct {
	Pin    int    `json:"pin"`
	Pixels int    `json:"pixels"`
	Driver string `json:"driver"` // "ws2812", "fake"
}

// LEDValue is published retained under led/<name>/value after each write.
type LEDValue struct {
	HSV        HSV   `json:"hsv"`
	RGB        RGB   `json:"rgb"` // after gamma, before brightness
	Brightness uint8 `json:"brightness"`
}

// ---- Button capability payloads ----

type ButtonInfo struct {
	Pin       int  `json:"pin"`
	ActiveLow bool `json:"active_low"`
}

type ButtonValue struct {
	Pressed bool `json:"pressed"`
}
