//go:build !tinygo

// config/config_test.go
package config

import (
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"huecycle-go/bus"
	"huecycle-go/errcode"
	"huecycle-go/services/debounce"
)

func TestDefaultMatchesReference(t *testing.T) {
	c := Default()
	if c.Tick() != 50*time.Millisecond {
		t.Fatalf("tick = %v, want 50ms", c.Tick())
	}
	if c.Step != 10 || c.Brightness != 255 || !c.Gamma {
		t.Fatalf("step/brightness/gamma = %d/%d/%v", c.Step, c.Brightness, c.Gamma)
	}
	if c.DebounceMode() != debounce.ModeRepeat {
		t.Fatalf("mode = %v, want repeat", c.DebounceMode())
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestNormaliseClamps(t *testing.T) {
	c := Config{TickMs: 5, Pixels: 40}
	c.Normalise()
	if c.TickMs != MinTickMs {
		t.Fatalf("TickMs = %d, want %d", c.TickMs, MinTickMs)
	}
	if c.Pixels != MaxPixels {
		t.Fatalf("Pixels = %d, want %d", c.Pixels, MaxPixels)
	}
	if c.Name != "status" || c.Mode != "repeat" {
		t.Fatalf("name/mode = %q/%q", c.Name, c.Mode)
	}
	if c.StableTicks != 1 || c.Step != 10 {
		t.Fatalf("stable/step = %d/%d", c.StableTicks, c.Step)
	}

	c = Config{TickMs: 500, Pixels: -3}
	c.Normalise()
	if c.TickMs != MaxTickMs || c.Pixels != 1 {
		t.Fatalf("TickMs/Pixels = %d/%d, want %d/1", c.TickMs, c.Pixels, MaxTickMs)
	}
}

func TestNormaliseKeepsZeroBrightness(t *testing.T) {
	c := Default()
	c.Brightness = 0
	c.Normalise()
	if c.Brightness != 0 {
		t.Fatalf("Brightness = %d, want 0", c.Brightness)
	}
}

func TestValidateRejects(t *testing.T) {
	c := Default()
	c.Mode = "toggle"
	if got := errcode.Of(c.Validate()); got != errcode.InvalidParams {
		t.Fatalf("unknown mode: code = %q, want %q", got, errcode.InvalidParams)
	}

	c = Default()
	c.ButtonPull = "sideways"
	if c.Validate() == nil {
		t.Fatal("unknown button_pull accepted")
	}

	c = Default()
	c.Network.AP.SSID = "huecycle"
	c.Network.STA.SSID = "huecycle"
	if c.Validate() == nil {
		t.Fatal("shared ssid accepted")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	cfg, err := Load([]byte(`
name: desk
mode: oneshot
brightness: 64
network:
  sta:
    ssid: home
    passphrase: secret
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "desk" || cfg.Brightness != 64 {
		t.Fatalf("name/brightness = %q/%d", cfg.Name, cfg.Brightness)
	}
	if cfg.DebounceMode() != debounce.ModeOneShot {
		t.Fatalf("mode = %v, want oneshot", cfg.DebounceMode())
	}
	if cfg.Step != 10 || cfg.TickMs != 50 || !cfg.Gamma {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if cfg.Network.STA.SSID != "home" || cfg.Retry() != 5*time.Second {
		t.Fatalf("network = %+v", cfg.Network)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load([]byte("tick_ms: [1, 2]")); errcode.Of(err) != errcode.InvalidPayload {
		t.Fatalf("bad yaml: code = %q, want %q", errcode.Of(err), errcode.InvalidPayload)
	}
	if _, err := Load([]byte("mode: sometimes")); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("bad mode: code = %q, want %q", errcode.Of(err), errcode.InvalidParams)
	}
}

func TestDecodeEmbeddedSection(t *testing.T) {
	var doc struct {
		Config yaml.Node `yaml:"config"`
	}
	if err := yaml.Unmarshal([]byte("config: {tick_ms: 5, pixels: 3}\n"), &doc); err != nil {
		t.Fatal(err)
	}
	cfg, err := Decode(&doc.Config)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if cfg.TickMs != MinTickMs || cfg.Pixels != 3 || cfg.Name != "status" {
		t.Fatalf("decoded = %+v, want clamped tick and default name", cfg)
	}

	var empty yaml.Node
	if cfg, err := Decode(&empty); err != nil || cfg != Default() {
		t.Fatalf("empty node = %+v, %v; want defaults", cfg, err)
	}
}

func TestServicePublishesRetainedSections(t *testing.T) {
	b := bus.NewBus(8)
	conn := b.NewConnection("test-config")

	cfg := Default()
	cfg.Network.AP = Credentials{SSID: "huecycle", Passphrase: "hidden"}
	NewConfigService(cfg).Start(conn)

	sub := conn.Subscribe(bus.T(configPrefix, "#"))
	got := map[string]any{}
	deadline := time.After(300 * time.Millisecond)
	for len(got) < 3 {
		select {
		case m := <-sub.Channel():
			if !m.Retained {
				t.Fatalf("%s not retained", m.Topic)
			}
			got[m.Topic.At(1).(string)] = m.Payload
		case <-deadline:
			t.Fatalf("got %d sections, want 3", len(got))
		}
	}

	hb, ok := got["heartbeat"].(Heartbeat)
	if !ok || hb.IntervalS != 2 {
		t.Fatalf("heartbeat = %#v", got["heartbeat"])
	}
	led, ok := got["led"].(LEDSection)
	if !ok || led.Name != "status" || led.TickMs != 50 {
		t.Fatalf("led = %#v", got["led"])
	}
	net, ok := got["net"].(NetSection)
	if !ok || net.APSSID != "huecycle" {
		t.Fatalf("net = %#v", got["net"])
	}
}
