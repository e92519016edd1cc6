package boards

// ESP32C3DevKit is the ESP32-C3 DevKitM-1: BOOT button on GPIO9, on-board
// WS2812 on GPIO8. No netlink driver exists for the C3 radio.
var ESP32C3DevKit = Board{
	Name:            "esp32c3_devkit",
	GPIOMin:         0,
	GPIOMax:         21,
	Button:          9,
	ButtonActiveLow: true,
	LED:             8,
	Pixels:          1,
}

// RP2040Zero is an RP2040-Zero style board: on-board WS2812 on GP16,
// button wired GP15 to GND.
var RP2040Zero = Board{
	Name:            "rp2040_zero",
	GPIOMin:         0,
	GPIOMax:         28,
	Button:          15,
	ButtonActiveLow: true,
	LED:             16,
	Pixels:          1,
}

// NanoRP2040Connect is the Arduino Nano RP2040 Connect (tinygo target
// nano-rp2040). The NINA-W102 co-processor runs nina-fw and is reached
// through the wifinina driver. Button on D2 (GP25) to GND, WS2812 data on
// D3 (GP15).
var NanoRP2040Connect = Board{
	Name:            "nano_rp2040_connect",
	GPIOMin:         0,
	GPIOMax:         29,
	Button:          25,
	ButtonActiveLow: true,
	LED:             15,
	Pixels:          1,
	WiFi:            true,
}

// All lists every descriptor this tree ships.
var All = []Board{ESP32C3DevKit, RP2040Zero, NanoRP2040Connect}
