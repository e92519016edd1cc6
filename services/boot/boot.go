// Package boot is the bring-up phase shared by the firmware entry points.
package boot

import (
	"time"

	"huecycle-go/bus"
	"huecycle-go/errcode"
	"huecycle-go/services/config"
	"huecycle-go/services/hal"
	"huecycle-go/services/hal/boards"
	"huecycle-go/services/hal/halcore"
	"huecycle-go/services/hal/platform"
	"huecycle-go/services/ledloop"
	"huecycle-go/services/ledsink"
	"huecycle-go/types"
)

// Device is what bring-up hands to the main task. Nothing else holds these
// handles.
type Device struct {
	Config config.Config
	Board  *hal.Board
	Sink   *ledsink.Sink
}

// Settle gives USB CDC time to enumerate before the first print.
func Settle() { time.Sleep(2 * time.Second) }

// Defaults returns the reference config sized to the selected board.
func Defaults() config.Config {
	cfg := config.Default()
	cfg.Pixels = boards.Selected.Pixels
	cfg.Normalise()
	return cfg
}

// Open claims the hardware and blanks the LED. Any error is fatal.
func Open(cfg config.Config, pins halcore.PinFactory, strips halcore.StripFactory) (*Device, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	setup := hal.SetupFromBoard(boards.Selected)
	setup.Pixels = cfg.Pixels
	if cfg.ButtonPull != "" {
		setup.ButtonPull = halcore.ParsePull(cfg.ButtonPull)
	}
	b, err := hal.Open(setup, pins, strips)
	if err != nil {
		return nil, err
	}
	sink := ledsink.New(b.Strip, setup.Pixels)
	if err := sink.Off(); err != nil {
		return nil, err
	}
	println("[main] board", boards.Selected.Name, "ready")
	return &Device{Config: cfg, Board: b, Sink: sink}, nil
}

// OpenDefault runs Open on the platform's own pins and strip driver.
func OpenDefault(cfg config.Config) (*Device, error) {
	return Open(cfg, platform.DefaultPinFactory(), platform.DefaultStripFactory())
}

// LoopConfig derives the loop settings for this device.
func (d *Device) LoopConfig() ledloop.Config {
	return ledloop.FromConfig(d.Config, boards.Selected.ButtonActiveLow)
}

// Announce publishes retained led/<name>/info and button/<name>/info.
func (d *Device) Announce(conn *bus.Connection) {
	s := d.Board.Setup
	led := types.CapabilityAddress{Kind: types.KindLED, Name: d.Config.Name}
	btn := types.CapabilityAddress{Kind: types.KindButton, Name: d.Config.Name}
	conn.Publish(conn.NewMessage(ledloop.CapTopic(led, "info"),
		types.LEDInfo{Pin: s.LED, Pixels: s.Pixels, Driver: platform.StripDriver}, true))
	conn.Publish(conn.NewMessage(ledloop.CapTopic(btn, "info"),
		types.ButtonInfo{Pin: s.Button, ActiveLow: boards.Selected.ButtonActiveLow}, true))
}

// Halt reports a bring-up failure and parks the task forever.
func Halt(err error) {
	println("[main] bring-up failed:", string(errcode.Of(err)), err.Error())
	select {}
}
