//go:build !tinygo

package hal

import (
	"testing"

	"huecycle-go/errcode"
	"huecycle-go/services/hal/boards"
	"huecycle-go/services/hal/halcore"
	"huecycle-go/services/hal/platform"
)

func hostFactories() (*platform.HostPinFactory, *platform.HostStripFactory) {
	return platform.NewHostPinFactory(0, 21), platform.NewHostStripFactory(0, 21)
}

func TestOpenConfiguresButtonAndStrip(t *testing.T) {
	pins, strips := hostFactories()
	b, err := Open(Setup{Button: 9, ButtonPull: halcore.PullUp, LED: 8, Pixels: 1}, pins, strips)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	btn, _ := pins.Get(9)
	if b.Button != halcore.GPIOPin(btn) {
		t.Fatal("board should own the factory's button pin")
	}
	if btn.Pull() != halcore.PullUp {
		t.Fatalf("button not configured as pulled-up input: pull=%d", btn.Pull())
	}
	// Idle pulled-up button reads high (released).
	if !b.Button.Get() {
		t.Fatal("idle button should read high")
	}
	if b.Strip == nil {
		t.Fatal("strip missing")
	}
}

func TestOpenRejectsSharedPin(t *testing.T) {
	pins, strips := hostFactories()
	_, err := Open(Setup{Button: 8, LED: 8, Pixels: 1}, pins, strips)
	if errcode.Of(err) != errcode.PinInUse {
		t.Fatalf("err = %v, want pin_in_use", err)
	}
	if p, _ := pins.Get(8); p.Reads() != 0 || p.Pull() != halcore.PullNone {
		t.Fatal("shared pin must be rejected before the button is configured")
	}
}

func TestOpenRejectsUnknownPins(t *testing.T) {
	pins, strips := hostFactories()
	if _, err := Open(Setup{Button: 40, LED: 8, Pixels: 1}, pins, strips); errcode.Of(err) != errcode.UnknownPin {
		t.Fatalf("button err = %v, want unknown_pin", err)
	}
	if _, err := Open(Setup{Button: 9, LED: 40, Pixels: 1}, pins, strips); errcode.Of(err) != errcode.UnknownPin {
		t.Fatalf("led err = %v, want unknown_pin", err)
	}
}

func TestOpenRejectsEmptyChain(t *testing.T) {
	pins, strips := hostFactories()
	if _, err := Open(Setup{Button: 9, LED: 8}, pins, strips); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("err = %v, want invalid_params", err)
	}
}

func TestSetupFromBoard(t *testing.T) {
	s := SetupFromBoard(boards.Board{Button: 9, ButtonActiveLow: true, LED: 8, Pixels: 1})
	if s.ButtonPull != halcore.PullUp || s.Button != 9 || s.LED != 8 || s.Pixels != 1 {
		t.Fatalf("unexpected setup %+v", s)
	}
	if SetupFromBoard(boards.Board{}).ButtonPull != halcore.PullNone {
		t.Fatal("active-high board should not enable the pull-up")
	}
}
