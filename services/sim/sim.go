//go:build !tinygo

// Package sim replays a scripted button against the real LED loop on host
// fakes with a virtual clock.
package sim

import (
	"context"
	"errors"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"huecycle-go/bus"
	"huecycle-go/errcode"
	"huecycle-go/services/config"
	"huecycle-go/services/hal"
	"huecycle-go/services/hal/boards"
	"huecycle-go/services/hal/platform"
	"huecycle-go/services/ledloop"
	"huecycle-go/services/ledsink"
)

// Hold keeps the button pressed for ticks in [From, To).
type Hold struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

type Scenario struct {
	Name   string        `yaml:"name"`
	Ticks  int           `yaml:"ticks"`
	Holds  []Hold        `yaml:"holds"`
	Fail   []int         `yaml:"fail"` // ticks whose LED write fails
	Config config.Config `yaml:"-"`
}

// Frame is one successful LED write.
type Frame struct {
	Tick   int
	At     time.Duration
	Hue    uint8
	Pixels []color.RGBA
}

type Result struct {
	Frames   []Frame
	Stats    ledloop.Stats
	FinalHue uint8
	Elapsed  time.Duration
}

var errInjected = errors.New("injected write failure")

// Parse decodes a scenario. Config keys overlay config.Default.
func Parse(raw []byte) (Scenario, error) {
	var doc struct {
		Scenario `yaml:",inline"`
		Config   yaml.Node `yaml:"config"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Scenario{}, errcode.Wrap(errcode.InvalidPayload, "sim.parse", err)
	}
	sc := doc.Scenario
	cfg, err := config.Decode(&doc.Config)
	if err != nil {
		return Scenario{}, err
	}
	sc.Config = cfg
	if sc.Ticks <= 0 {
		return Scenario{}, &errcode.E{C: errcode.InvalidParams, Op: "sim.parse", Msg: "ticks must be > 0"}
	}
	for _, h := range sc.Holds {
		if h.From < 0 || h.To < h.From {
			return Scenario{}, &errcode.E{C: errcode.InvalidParams, Op: "sim.parse", Msg: "bad hold range"}
		}
	}
	return sc, nil
}

func LoadFile(path string) (Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}
	return Parse(raw)
}

func (sc Scenario) held(tick int) bool {
	for _, h := range sc.Holds {
		if tick >= h.From && tick < h.To {
			return true
		}
	}
	return false
}

func (sc Scenario) fails(tick int) bool {
	for _, f := range sc.Fail {
		if f == tick {
			return true
		}
	}
	return false
}

type options struct {
	conn *bus.Connection
}

type Option func(*options)

// WithBus forwards the loop's diagnostics to conn.
func WithBus(conn *bus.Connection) Option { return func(o *options) { o.conn = conn } }

// Run brings up the host board, blanks the LED and drives the loop for
// sc.Ticks polls.
func Run(sc Scenario, opts ...Option) (Result, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	board := boards.Selected
	pins := platform.NewHostPinFactory(board.GPIOMin, board.GPIOMax)
	strips := platform.NewHostStripFactory(board.GPIOMin, board.GPIOMax)

	setup := hal.SetupFromBoard(board)
	setup.Pixels = sc.Config.Pixels
	hw, err := hal.Open(setup, pins, strips)
	if err != nil {
		return Result{}, err
	}
	pin, _ := pins.Get(setup.Button)
	strip, _ := strips.Get(setup.LED)

	sink := ledsink.New(hw.Strip, setup.Pixels)
	if err := sink.Off(); err != nil {
		return Result{}, err
	}
	seen := len(strip.Frames())

	drive := func(tick int) {
		pin.Set(sc.held(tick) != board.ButtonActiveLow)
		if sc.fails(tick) {
			strip.FailNext(1, errInjected)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		res  Result
		now  time.Duration
		tick int
		loop *ledloop.Loop
	)
	step := sc.Config.Step
	sleep := func(d time.Duration) {
		if frames := strip.Frames(); len(frames) > seen {
			seen = len(frames)
			presses := loop.Stats().Presses
			res.Frames = append(res.Frames, Frame{
				Tick:   tick,
				At:     now,
				Hue:    uint8(presses-1) * step,
				Pixels: frames[len(frames)-1],
			})
		}
		now += d
		tick++
		if tick >= sc.Ticks {
			cancel()
			return
		}
		drive(tick)
	}

	lopts := []ledloop.Option{ledloop.WithSleep(sleep)}
	if o.conn != nil {
		lopts = append(lopts, ledloop.WithBus(o.conn))
	}
	loop = ledloop.New(ledloop.FromConfig(sc.Config, board.ButtonActiveLow), hw.Button, sink, lopts...)

	drive(0)
	loop.Run(ctx)

	res.Stats = loop.Stats()
	res.FinalHue = loop.Hue()
	res.Elapsed = now
	return res, nil
}
