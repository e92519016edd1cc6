//go:build !tinygo

package sim

import (
	"image/color"
	"testing"
	"time"

	"huecycle-go/bus"
	"huecycle-go/errcode"
	"huecycle-go/types"
)

func TestHeldButtonScenario(t *testing.T) {
	sc, err := LoadFile("testdata/held.yaml")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	res, err := Run(sc)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(res.Frames) != 3 {
		t.Fatalf("frames = %d, want 3", len(res.Frames))
	}
	for i, want := range []struct {
		tick int
		hue  uint8
		at   time.Duration
	}{{2, 0, 100 * time.Millisecond}, {3, 10, 150 * time.Millisecond}, {4, 20, 200 * time.Millisecond}} {
		f := res.Frames[i]
		if f.Tick != want.tick || f.Hue != want.hue || f.At != want.at {
			t.Fatalf("frame %d = tick %d hue %d at %v, want tick %d hue %d at %v",
				i, f.Tick, f.Hue, f.At, want.tick, want.hue, want.at)
		}
	}
	if got := res.Frames[0].Pixels; len(got) != 1 || got[0] != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("first frame = %+v, want red", got)
	}
	if res.FinalHue != 30 {
		t.Fatalf("final hue = %d, want 30", res.FinalHue)
	}
	if res.Stats.Polls != 10 || res.Stats.Writes != 3 {
		t.Fatalf("stats = %+v", res.Stats)
	}
	if res.Elapsed != 500*time.Millisecond {
		t.Fatalf("elapsed = %v, want 500ms", res.Elapsed)
	}
}

func TestFailedWriteIsSkipped(t *testing.T) {
	sc, err := Parse([]byte(`
ticks: 6
holds: [{from: 0, to: 3}]
fail: [1]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	res, err := Run(sc)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Frames) != 2 || res.Frames[0].Hue != 0 || res.Frames[1].Hue != 20 {
		t.Fatalf("frames = %+v, want hues 0 and 20", res.Frames)
	}
	if res.Stats.WriteErrors != 1 || res.Stats.Presses != 3 {
		t.Fatalf("stats = %+v", res.Stats)
	}
}

func TestOneShotScenario(t *testing.T) {
	sc, err := Parse([]byte(`
ticks: 12
holds: [{from: 1, to: 6}, {from: 8, to: 9}]
config: {mode: oneshot, pixels: 3}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	res, err := Run(sc)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Frames) != 2 || res.Frames[0].Tick != 1 || res.Frames[1].Tick != 8 {
		t.Fatalf("frames = %+v, want ticks 1 and 8", res.Frames)
	}
	if px := res.Frames[1].Pixels; len(px) != 3 || px[2] != (color.RGBA{A: 255}) {
		t.Fatalf("frame pixels = %+v, want 3 with black tail", px)
	}
}

func TestRunPublishesDiagnostics(t *testing.T) {
	b := bus.NewBus(8)
	conn := b.NewConnection("sim")
	sc, err := Parse([]byte("ticks: 3\nholds: [{from: 0, to: 2}]\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := Run(sc, WithBus(conn)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	sub := conn.Subscribe(bus.T("led", "status", "value"))
	select {
	case m := <-sub.Channel():
		if v, ok := m.Payload.(types.LEDValue); !ok || v.HSV.Hue != 10 {
			t.Fatalf("retained value = %#v, want hue 10", m.Payload)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("no retained value")
	}
}

func TestParseRejects(t *testing.T) {
	cases := map[string]errcode.Code{
		"ticks: 0":                            errcode.InvalidParams,
		"ticks: 5\nconfig: {mode: hold}":      errcode.InvalidParams,
		"ticks: 5\nholds: [{from: 4, to: 2}]": errcode.InvalidParams,
		"ticks: [":                            errcode.InvalidPayload,
	}
	for raw, want := range cases {
		if _, err := Parse([]byte(raw)); errcode.Of(err) != want {
			t.Fatalf("Parse(%q) code = %q, want %q", raw, errcode.Of(err), want)
		}
	}
}
