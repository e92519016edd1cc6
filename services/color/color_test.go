package color

import (
	"testing"

	"huecycle-go/types"
)

func TestConvertScenarios(t *testing.T) {
	if got, want := Convert(types.HSV{Hue: 0, Sat: 255, Val: 255}), (types.RGB{R: 255}); got != want {
		t.Fatalf("Convert(0,255,255) = %+v, want %+v", got, want)
	}
	if got, want := Convert(types.HSV{Hue: 0, Sat: 0, Val: 128}), (types.RGB{R: 128, G: 128, B: 128}); got != want {
		t.Fatalf("Convert(0,0,128) = %+v, want %+v", got, want)
	}
	green := Convert(types.HSV{Hue: 85, Sat: 255, Val: 255})
	if green.G != 255 || green.R > 1 || green.B > 1 {
		t.Fatalf("Convert(85,255,255) = %+v, want G=255 with R,B near 0", green)
	}
	blue := Convert(types.HSV{Hue: 170, Sat: 255, Val: 255})
	if blue.B != 255 || blue.R > 1 || blue.G > 1 {
		t.Fatalf("Convert(170,255,255) = %+v, want B=255 with R,G near 0", blue)
	}
	// Hue 255 folds back onto the red sector.
	if got, want := Convert(types.HSV{Hue: 255, Sat: 255, Val: 255}), (types.RGB{R: 255}); got != want {
		t.Fatalf("Convert(255,255,255) = %+v, want %+v", got, want)
	}
}

func TestConvertTruncatesChromaticChannels(t *testing.T) {
	// Hue 10: t*255 lands just under 60, so truncation yields 59 where
	// rounding would give 60.
	got := Convert(types.HSV{Hue: 10, Sat: 255, Val: 255})
	if got.R != 255 || got.B != 0 {
		t.Fatalf("Convert(10,255,255) = %+v, want R=255 B=0", got)
	}
	if got.G != 59 {
		t.Fatalf("Convert(10,255,255).G = %d, want 59", got.G)
	}
}

func TestConvertFullySaturatedHasOneMaxChannel(t *testing.T) {
	for h := 0; h < 256; h++ {
		c := Convert(types.HSV{Hue: uint8(h), Sat: 255, Val: 255})
		maxed := 0
		for _, ch := range []uint8{c.R, c.G, c.B} {
			if ch == 255 {
				maxed++
			}
		}
		if maxed != 1 {
			t.Fatalf("hue %d: %+v has %d channels at 255, want 1", h, c, maxed)
		}
		if c.R != 0 && c.G != 0 && c.B != 0 {
			t.Fatalf("hue %d: %+v has no zero channel (p must be 0 at full saturation)", h, c)
		}
	}
}

func TestConvertAchromatic(t *testing.T) {
	for h := 0; h < 256; h += 17 {
		for v := 0; v < 256; v++ {
			c := Convert(types.HSV{Hue: uint8(h), Sat: 0, Val: uint8(v)})
			if c.R != c.G || c.G != c.B || int(c.R) != v {
				t.Fatalf("Convert(%d,0,%d) = %+v, want grey %d", h, v, c, v)
			}
		}
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	in := types.HSV{Hue: 123, Sat: 200, Val: 77}
	first := Convert(in)
	for i := 0; i < 10; i++ {
		if got := Convert(in); got != first {
			t.Fatalf("call %d: %+v != %+v", i, got, first)
		}
	}
}

func TestGammaTable(t *testing.T) {
	if GammaLevel(0) != 0 || GammaLevel(255) != 255 {
		t.Fatal("gamma endpoints must be fixed points")
	}
	if GammaLevel(128) != 37 {
		t.Fatalf("gamma(128) = %d, want 37", GammaLevel(128))
	}
	for i := 1; i < 256; i++ {
		if gamma8[i] < gamma8[i-1] {
			t.Fatalf("gamma table not monotonic at %d", i)
		}
	}
	if got, want := Gamma(types.RGB{R: 255, G: 128, B: 0}), (types.RGB{R: 255, G: 37}); got != want {
		t.Fatalf("Gamma = %+v, want %+v", got, want)
	}
}

func TestBrightness(t *testing.T) {
	c := types.RGB{R: 255, G: 128, B: 1}
	if got := Brightness(c, 255); got != c {
		t.Fatalf("Brightness(255) = %+v, want identity", got)
	}
	if got := Brightness(c, 0); got != types.Black {
		t.Fatalf("Brightness(0) = %+v, want black", got)
	}
	if got, want := Brightness(c, 127), (types.RGB{R: 127, G: 64, B: 0}); got != want {
		t.Fatalf("Brightness(127) = %+v, want %+v", got, want)
	}
}

func TestPipelineAppliesGammaBeforeBrightness(t *testing.T) {
	grey := types.HSV{Sat: 0, Val: 128}
	p := Pipeline{Gamma: true, Brightness: 128}

	got := p.Apply(grey)
	want := Brightness(Gamma(Convert(grey)), 128)
	if got != want {
		t.Fatalf("Apply = %+v, want %+v", got, want)
	}
	swapped := Gamma(Brightness(Convert(grey), 128))
	if got == swapped {
		t.Fatalf("gamma/brightness order should matter here, both gave %+v", got)
	}
	if got.R != 18 {
		t.Fatalf("Apply(grey 128).R = %d, want 18", got.R)
	}
}

func TestPipelineWithoutGamma(t *testing.T) {
	p := Pipeline{Brightness: 255}
	in := types.HSV{Hue: 42, Sat: 255, Val: 255}
	if got, want := p.Apply(in), Convert(in); got != want {
		t.Fatalf("Apply = %+v, want %+v", got, want)
	}
}

func TestToRGBA(t *testing.T) {
	c := ToRGBA(types.RGB{R: 1, G: 2, B: 3})
	if c.R != 1 || c.G != 2 || c.B != 3 || c.A != 0xff {
		t.Fatalf("ToRGBA = %+v", c)
	}
}
