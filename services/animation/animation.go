// Package animation holds the rainbow cycle state driven by button presses.
package animation

import "huecycle-go/types"

// DefaultStep is the hue increment per press. 256/10 leaves a remainder, so
// successive laps drift by 4; that is intended.
const DefaultStep uint8 = 10

// State is owned by exactly one task; it has no locking.
type State struct {
	hue  uint8
	step uint8
}

// New returns a state at hue 0. A zero step means DefaultStep.
func New(step uint8) *State {
	if step == 0 {
		step = DefaultStep
	}
	return &State{step: step}
}

// Advance returns the fully saturated colour for the current hue and then
// moves the hue on by one step, wrapping at 256.
func (s *State) Advance() types.HSV {
	hsv := types.HSV{Hue: s.hue, Sat: 255, Val: 255}
	s.hue += s.step
	return hsv
}

func (s *State) Hue() uint8  { return s.hue }
func (s *State) Step() uint8 { return s.step }

// Reset returns to hue 0.
func (s *State) Reset() { s.hue = 0 }
