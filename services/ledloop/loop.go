// Package ledloop is the single cooperative task that polls the button,
// steps the hue and drives the LED.
package ledloop

import (
	"context"
	"sync/atomic"
	"time"

	"huecycle-go/bus"
	"huecycle-go/errcode"
	"huecycle-go/services/animation"
	colour "huecycle-go/services/color"
	"huecycle-go/services/config"
	"huecycle-go/services/debounce"
	"huecycle-go/types"
	"huecycle-go/x/timex"
)

// Input is a raw level source; halcore.GPIOPin satisfies it.
type Input interface {
	Get() bool
}

// Writer takes a frame plus a brightness cap; ledsink.Sink satisfies it.
type Writer interface {
	Write(colors []types.RGB, brightness uint8) error
}

// LinkState is polled for diagnostics only.
type LinkState interface {
	Connected() bool
}

type Config struct {
	Name        string
	Tick        time.Duration
	Step        uint8
	Brightness  uint8
	Gamma       bool
	Mode        debounce.Mode
	ActiveLow   bool
	StableTicks uint8
}

// FromConfig maps firmware settings onto a loop config.
func FromConfig(c config.Config, activeLow bool) Config {
	return Config{
		Name:        c.Name,
		Tick:        c.Tick(),
		Step:        c.Step,
		Brightness:  c.Brightness,
		Gamma:       c.Gamma,
		Mode:        c.DebounceMode(),
		ActiveLow:   activeLow,
		StableTicks: c.StableTicks,
	}
}

type State uint8

const (
	Idle State = iota
	Animating
)

func (s State) String() string {
	if s == Animating {
		return "animating"
	}
	return "idle"
}

type Stats struct {
	Polls       uint32
	Presses     uint32
	Writes      uint32
	WriteErrors uint32
}

type Option func(*Loop)

// WithSleep replaces the yield between polls (tests use a virtual clock).
func WithSleep(fn func(time.Duration)) Option { return func(l *Loop) { l.sleep = fn } }

// WithBus publishes diagnostics on conn.
func WithBus(conn *bus.Connection) Option { return func(l *Loop) { l.conn = conn } }

// WithLink reports the network link next to each press in the log.
func WithLink(ls LinkState) Option { return func(l *Loop) { l.link = ls } }

// Loop owns the animation state and the sink. It is not safe for
// concurrent use; only its own task calls Tick.
type Loop struct {
	cfg   Config
	in    Input
	sink  Writer
	deb   *debounce.Debouncer
	anim  *animation.State
	pipe  colour.Pipeline
	frame [1]types.RGB

	sleep func(time.Duration)
	conn  *bus.Connection
	link  LinkState

	polls, presses, writes, writeErrors atomic.Uint32

	held   bool
	status types.Link

	tValue, tStatus, tPressed, tReleased bus.Topic
}

func New(cfg Config, in Input, sink Writer, opts ...Option) *Loop {
	if cfg.Tick <= 0 {
		cfg.Tick = timex.Ms(config.MaxTickMs)
	}
	if cfg.Name == "" {
		cfg.Name = "status"
	}
	l := &Loop{
		cfg:   cfg,
		in:    in,
		sink:  sink,
		deb:   debounce.New(debounce.Config{ActiveLow: cfg.ActiveLow, Mode: cfg.Mode, StableTicks: cfg.StableTicks}),
		anim:  animation.New(cfg.Step),
		pipe:  colour.Pipeline{Gamma: cfg.Gamma, Brightness: cfg.Brightness},
		sleep: time.Sleep,
	}
	for _, o := range opts {
		o(l)
	}
	led := types.CapabilityAddress{Kind: types.KindLED, Name: cfg.Name}
	btn := types.CapabilityAddress{Kind: types.KindButton, Name: cfg.Name}
	l.tValue = CapTopic(led, "value")
	l.tStatus = CapTopic(led, "status")
	l.tPressed = CapTopic(btn, "event", "pressed")
	l.tReleased = CapTopic(btn, "event", "released")
	return l
}

// CapTopic builds <kind>/<name>/<parts...>.
func CapTopic(a types.CapabilityAddress, parts ...any) bus.Topic {
	return bus.T(string(a.Kind), a.Name).Append(parts...)
}

// Stats may be read from another task.
func (l *Loop) Stats() Stats {
	return Stats{
		Polls:       l.polls.Load(),
		Presses:     l.presses.Load(),
		Writes:      l.writes.Load(),
		WriteErrors: l.writeErrors.Load(),
	}
}

// Hue is the hue the next press will show. Loop task only.
func (l *Loop) Hue() uint8 { return l.anim.Hue() }

// Tick runs one poll. A Pressed edge advances the hue and writes one frame;
// the returned state says whether that happened. Write failures are counted
// and reported, never retried.
func (l *Loop) Tick() State {
	l.polls.Add(1)

	switch l.deb.Poll(l.in.Get()) {
	case debounce.Released:
		l.held = false
		l.publish(l.tReleased, types.ButtonValue{Pressed: false}, false)
		return Idle
	case debounce.Pressed:
		if !l.held {
			l.held = true
			l.publish(l.tPressed, types.ButtonValue{Pressed: true}, false)
		}
	default:
		return Idle
	}

	l.presses.Add(1)
	hsv := l.anim.Advance()
	rgb := l.pipe.Correct(hsv)
	l.frame[0] = rgb

	if err := l.sink.Write(l.frame[:], l.cfg.Brightness); err != nil {
		l.writeErrors.Add(1)
		code := errcode.Of(err)
		println("[led] write failed:", string(code))
		l.setStatus(types.LinkDegraded, code)
		return Animating
	}
	l.writes.Add(1)
	l.setStatus(types.LinkUp, "")
	l.publish(l.tValue, types.LEDValue{HSV: hsv, RGB: rgb, Brightness: l.cfg.Brightness}, true)

	if l.link != nil {
		println("[led] hue", hsv.Hue, "net", l.link.Connected())
	}
	return Animating
}

// Run polls at the tick interval until ctx ends. The yield happens on every
// iteration so other tasks get scheduled while the button is idle.
func (l *Loop) Run(ctx context.Context) {
	println("[led] loop start, tick", int(l.cfg.Tick/time.Millisecond), "ms")
	for {
		select {
		case <-ctx.Done():
			println("[led] loop stop")
			return
		default:
		}
		l.Tick()
		l.sleep(l.cfg.Tick)
	}
}

func (l *Loop) setStatus(link types.Link, code errcode.Code) {
	if link == l.status {
		return
	}
	l.status = link
	st := types.CapabilityStatus{Link: link, TSms: timex.NowMs()}
	if code != "" {
		st.Error = string(code)
	}
	l.publish(l.tStatus, st, true)
}

func (l *Loop) publish(t bus.Topic, payload any, retained bool) {
	if l.conn == nil {
		return
	}
	l.conn.Publish(l.conn.NewMessage(t, payload, retained))
}
