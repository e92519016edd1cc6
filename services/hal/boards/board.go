package boards

// Board describes what the PCB/SoC offers and where the button and the
// addressable LED are wired. Operating parameters (tick, brightness) belong
// to services/config, not here.
type Board struct {
	Name             string
	GPIOMin, GPIOMax int

	Button          int  // GPIO number of the user button
	ButtonActiveLow bool // external/internal pull-up, pressed pulls low
	LED             int  // GPIO number of the WS2812 data line
	Pixels          int  // LEDs on the chain

	WiFi bool // a netlink driver exists for the on-board radio
}

// Has reports whether n is a user GPIO on this board.
func (b Board) Has(n int) bool { return n >= b.GPIOMin && n <= b.GPIOMax }
