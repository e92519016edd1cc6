// Package hal performs board bring-up: it claims the button input and the
// addressable LED output and hands both to the caller.
package hal

import (
	"huecycle-go/errcode"
	"huecycle-go/services/hal/boards"
	"huecycle-go/services/hal/halcore"
	"huecycle-go/x/conv"
)

// Setup is the wiring used by Open.
type Setup struct {
	Button     int
	ButtonPull halcore.Pull
	LED        int
	Pixels     int
}

// SetupFromBoard derives the wiring from a board descriptor.
func SetupFromBoard(b boards.Board) Setup {
	pull := halcore.PullNone
	if b.ButtonActiveLow {
		pull = halcore.PullUp
	}
	return Setup{Button: b.Button, ButtonPull: pull, LED: b.LED, Pixels: b.Pixels}
}

// Board is the result of bring-up. The caller owns both handles exclusively.
type Board struct {
	Setup  Setup
	Button halcore.GPIOPin
	Strip  halcore.PixelStrip
}

// Open claims and configures the button and the LED strip. Any error means
// the hardware is unusable; callers treat it as fatal.
func Open(s Setup, pins halcore.PinFactory, strips halcore.StripFactory) (*Board, error) {
	if s.Pixels <= 0 {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "hal.open", Msg: "pixels must be > 0"}
	}
	if s.Button == s.LED {
		return nil, &errcode.E{C: errcode.PinInUse, Op: "hal.open led", Msg: "gpio shared with button"}
	}

	btn, ok := pins.ByNumber(s.Button)
	if !ok {
		return nil, unknownPin("button", s.Button)
	}
	if err := btn.ConfigureInput(s.ButtonPull); err != nil {
		return nil, errcode.Wrap(errcode.MapDriverErr(err), "hal.open button", err)
	}

	strip, ok := strips.ByPin(s.LED)
	if !ok {
		return nil, unknownPin("led", s.LED)
	}

	println("[hal] button on gpio", btn.Number(), "pull", halcore.PullToString(s.ButtonPull))
	println("[hal] ws2812 on gpio", s.LED, "pixels", s.Pixels)
	return &Board{Setup: s, Button: btn, Strip: strip}, nil
}

func unknownPin(dev string, n int) error {
	var buf [20]byte
	return &errcode.E{C: errcode.UnknownPin, Op: "hal.open " + dev, Msg: "gpio " + string(conv.Itoa(buf[:], int64(n)))}
}
