// Package debounce turns raw button samples into press/release edges.
package debounce

// Edge is the per-poll outcome. It is computed fresh on each Poll.
type Edge uint8

const (
	NoChange Edge = iota
	Pressed
	Released
)

func (e Edge) String() string {
	switch e {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	default:
		return "none"
	}
}

// Mode selects how a held button is reported.
type Mode uint8

const (
	// ModeRepeat reports Pressed on every poll while the button is held.
	ModeRepeat Mode = iota
	// ModeOneShot reports Pressed once per press-and-release.
	ModeOneShot
)

// ParseMode accepts "repeat" and "oneshot"/"one_shot".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "", "repeat":
		return ModeRepeat, true
	case "oneshot", "one_shot":
		return ModeOneShot, true
	default:
		return ModeRepeat, false
	}
}

func (m Mode) String() string {
	if m == ModeOneShot {
		return "oneshot"
	}
	return "repeat"
}

type Config struct {
	ActiveLow bool // pulled up externally: pressed == low
	Mode      Mode
	// StableTicks is the number of consecutive polls a new level must hold
	// before it is accepted. 0 is treated as 1.
	StableTicks uint8
}

type Debouncer struct {
	cfg Config

	pressed   bool  // accepted logical state
	candidate bool  // last logical sample
	run       uint8 // consecutive samples equal to candidate
}

func New(cfg Config) *Debouncer {
	if cfg.StableTicks == 0 {
		cfg.StableTicks = 1
	}
	return &Debouncer{cfg: cfg}
}

// Poll consumes one raw pin sample and reports the resulting edge.
func (d *Debouncer) Poll(raw bool) Edge {
	active := raw
	if d.cfg.ActiveLow {
		active = !raw
	}

	if active != d.candidate {
		d.candidate = active
		d.run = 0
	}
	if d.run < d.cfg.StableTicks {
		d.run++
	}

	prev := d.pressed
	if d.run >= d.cfg.StableTicks {
		d.pressed = d.candidate
	}

	switch {
	case d.pressed && !prev:
		return Pressed
	case d.pressed && d.cfg.Mode == ModeRepeat:
		return Pressed
	case !d.pressed && prev:
		return Released
	default:
		return NoChange
	}
}

// Pressed reports the current debounced state.
func (d *Debouncer) Pressed() bool { return d.pressed }

// Reset forgets history; the next sample starts from released.
func (d *Debouncer) Reset() {
	d.pressed, d.candidate, d.run = false, false, 0
}
