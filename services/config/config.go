// Package config holds the typed firmware settings shared by the device
// builds and the host simulator.
package config

import (
	"time"

	"huecycle-go/errcode"
	"huecycle-go/services/debounce"
	"huecycle-go/x/mathx"
	"huecycle-go/x/strx"
	"huecycle-go/x/timex"
)

const (
	MinTickMs = 20
	MaxTickMs = 50
	MaxPixels = 8

	defaultName    = "status"
	defaultRetryMs = 5000
)

// Credentials name one wireless network. An empty SSID disables that mode.
type Credentials struct {
	SSID       string `yaml:"ssid"`
	Passphrase string `yaml:"passphrase"`
}

type Network struct {
	AP      Credentials `yaml:"ap"`
	STA     Credentials `yaml:"sta"`
	RetryMs int         `yaml:"retry_ms"`
}

type Heartbeat struct {
	IntervalS int `yaml:"interval_s"`
}

type Config struct {
	Name        string    `yaml:"name"`
	TickMs      int       `yaml:"tick_ms"`
	Step        uint8     `yaml:"step"`
	Brightness  uint8     `yaml:"brightness"`
	Gamma       bool      `yaml:"gamma"`
	Mode        string    `yaml:"mode"`
	StableTicks uint8     `yaml:"stable_ticks"`
	Pixels      int       `yaml:"pixels"`
	ButtonPull  string    `yaml:"button_pull"` // "up", "down", "none"; empty keeps the board's
	Heartbeat   Heartbeat `yaml:"heartbeat"`
	Network     Network   `yaml:"network"`
}

// Default returns the reference settings: 50 ms polls, step 10, full
// brightness with gamma, repeat-while-held and a single pixel.
func Default() Config {
	return Config{
		Name:        defaultName,
		TickMs:      MaxTickMs,
		Step:        10,
		Brightness:  255,
		Gamma:       true,
		Mode:        "repeat",
		StableTicks: 1,
		Pixels:      1,
		Heartbeat:   Heartbeat{IntervalS: 2},
		Network:     Network{RetryMs: defaultRetryMs},
	}
}

// Normalise clamps numeric fields into their working ranges and fills empty
// ones. Brightness is left alone: 0 is a valid (dark) setting.
func (c *Config) Normalise() {
	c.Name = strx.Coalesce(c.Name, defaultName)
	c.Mode = strx.Coalesce(c.Mode, "repeat")
	if c.TickMs == 0 {
		c.TickMs = MaxTickMs
	}
	c.TickMs = mathx.Clamp(c.TickMs, MinTickMs, MaxTickMs)
	c.Pixels = mathx.Clamp(c.Pixels, 1, MaxPixels)
	c.StableTicks = mathx.Max(c.StableTicks, 1)
	if c.Step == 0 {
		c.Step = 10
	}
	if c.Heartbeat.IntervalS <= 0 {
		c.Heartbeat.IntervalS = 2
	}
	if c.Network.RetryMs <= 0 {
		c.Network.RetryMs = defaultRetryMs
	}
}

// Validate reports settings Normalise cannot repair.
func (c Config) Validate() error {
	if _, ok := debounce.ParseMode(c.Mode); !ok {
		return &errcode.E{C: errcode.InvalidParams, Op: "config", Msg: "unknown mode " + c.Mode}
	}
	switch c.ButtonPull {
	case "", "none", "up", "pullup", "down", "pulldown":
	default:
		return &errcode.E{C: errcode.InvalidParams, Op: "config", Msg: "unknown button_pull " + c.ButtonPull}
	}
	if c.Network.STA.SSID != "" && c.Network.STA.SSID == c.Network.AP.SSID {
		return &errcode.E{C: errcode.InvalidParams, Op: "config", Msg: "ap and sta share ssid"}
	}
	return nil
}

// DebounceMode returns the parsed mode, falling back to repeat.
func (c Config) DebounceMode() debounce.Mode {
	m, _ := debounce.ParseMode(c.Mode)
	return m
}

func (c Config) Tick() time.Duration  { return timex.Ms(c.TickMs) }
func (c Config) Retry() time.Duration { return timex.Ms(c.Network.RetryMs) }
func (c Config) HeartbeatInterval() time.Duration {
	return time.Duration(c.Heartbeat.IntervalS) * time.Second
}
