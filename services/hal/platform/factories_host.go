// services/hal/platform/factories_host.go
//go:build !tinygo

package platform

import (
	"image/color"
	"sync"

	"huecycle-go/services/hal/boards"
	"huecycle-go/services/hal/halcore"
)

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements GPIOPin for host-side tests and simulation.
type FakePin struct {
	mu     sync.RWMutex
	number int
	level  bool
	pull   halcore.Pull
	reads  int
}

func NewFakePin(n int) *FakePin { return &FakePin{number: n} }

func (p *FakePin) ConfigureInput(pull halcore.Pull) error {
	p.mu.Lock()
	p.pull = pull
	// A pull-up idles the line high until something drives it.
	p.level = pull == halcore.PullUp
	p.mu.Unlock()
	return nil
}

// Set drives the line as the button would.
func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.Lock()
	p.reads++
	v := p.level
	p.mu.Unlock()
	return v
}

func (p *FakePin) Number() int { return p.number }

// Pull reports the last input configuration.
func (p *FakePin) Pull() halcore.Pull {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pull
}

// Reads reports how many times Get was called.
func (p *FakePin) Reads() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.reads
}

// HostPinFactory returns stable *FakePin instances per number.
type HostPinFactory struct {
	mu       sync.Mutex
	min, max int
	pins     map[int]*FakePin
}

func NewHostPinFactory(min, max int) *HostPinFactory {
	return &HostPinFactory{min: min, max: max, pins: make(map[int]*FakePin)}
}

func (f *HostPinFactory) ByNumber(n int) (halcore.GPIOPin, bool) {
	p, ok := f.Get(n)
	return p, ok
}

// Get exposes the underlying *FakePin for tests (e.g. to press the button).
func (f *HostPinFactory) Get(n int) (*FakePin, bool) {
	if n < f.min || n > f.max {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pins[n]
	if !ok {
		p = NewFakePin(n)
		f.pins[n] = p
	}
	return p, true
}

// DefaultPinFactory provides a host GPIO factory sized to the selected board.
func DefaultPinFactory() halcore.PinFactory {
	return NewHostPinFactory(boards.Selected.GPIOMin, boards.Selected.GPIOMax)
}

// ----------------------------- Pixels (host) ---------------------------------

// StripDriver names the driver behind DefaultStripFactory.
const StripDriver = "fake"

// FakeStrip records every frame it is given. FailNext makes the next N
// writes fail with the configured error.
type FakeStrip struct {
	mu       sync.Mutex
	frames   [][]color.RGBA
	failErr  error
	failLeft int
}

func (s *FakeStrip) WriteColors(buf []color.RGBA) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failLeft > 0 {
		s.failLeft--
		return s.failErr
	}
	s.frames = append(s.frames, append([]color.RGBA(nil), buf...))
	return nil
}

// FailNext arms n consecutive write failures returning err.
func (s *FakeStrip) FailNext(n int, err error) {
	s.mu.Lock()
	s.failLeft, s.failErr = n, err
	s.mu.Unlock()
}

// Frames returns a copy of all successfully written frames in order.
func (s *FakeStrip) Frames() [][]color.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]color.RGBA, len(s.frames))
	copy(out, s.frames)
	return out
}

// Last returns the most recent frame, if any.
func (s *FakeStrip) Last() ([]color.RGBA, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.frames) == 0 {
		return nil, false
	}
	return s.frames[len(s.frames)-1], true
}

// HostStripFactory hands out one FakeStrip per data pin.
type HostStripFactory struct {
	mu       sync.Mutex
	min, max int
	strips   map[int]*FakeStrip
}

func NewHostStripFactory(min, max int) *HostStripFactory {
	return &HostStripFactory{min: min, max: max, strips: make(map[int]*FakeStrip)}
}

func (f *HostStripFactory) ByPin(n int) (halcore.PixelStrip, bool) {
	s, ok := f.Get(n)
	return s, ok
}

func (f *HostStripFactory) Get(n int) (*FakeStrip, bool) {
	if n < f.min || n > f.max {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.strips[n]
	if !ok {
		s = &FakeStrip{}
		f.strips[n] = s
	}
	return s, true
}

func DefaultStripFactory() halcore.StripFactory {
	return NewHostStripFactory(boards.Selected.GPIOMin, boards.Selected.GPIOMax)
}
