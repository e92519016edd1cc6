// Package heartbeat prints a periodic one-line health summary.
package heartbeat

import (
	"context"
	"sync/atomic"
	"time"

	"huecycle-go/bus"
	"huecycle-go/services/config"
	"huecycle-go/services/ledloop"
	"huecycle-go/x/conv"
)

// StatsSource is satisfied by *ledloop.Loop.
type StatsSource interface {
	Stats() ledloop.Stats
}

type Service struct {
	loop     StatsSource       // optional
	link     ledloop.LinkState // optional
	start    time.Time
	interval atomic.Int64
	out      func(string)
}

type Option func(*Service)

// WithLink adds the station state to each line.
func WithLink(ls ledloop.LinkState) Option { return func(s *Service) { s.link = ls } }

// WithOutput replaces println as the line sink.
func WithOutput(fn func(string)) Option { return func(s *Service) { s.out = fn } }

func New(loop StatsSource, interval time.Duration, opts ...Option) *Service {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	s := &Service{loop: loop, start: time.Now(), out: func(l string) { println(l) }}
	s.interval.Store(int64(interval))
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) Interval() time.Duration { return time.Duration(s.interval.Load()) }

// Line renders the summary for the given instant, e.g.
// "[hb] up 0:01:05 polls 1300 presses 12 writes 12 errs 0 net up".
func (s *Service) Line(now time.Time) string {
	b := make([]byte, 0, 96)
	b = append(b, "[hb] up "...)
	b = append(b, conv.Clock(uint32(now.Sub(s.start)/time.Second))...)
	if s.loop != nil {
		st := s.loop.Stats()
		b = appendCounter(b, " polls ", st.Polls)
		b = appendCounter(b, " presses ", st.Presses)
		b = appendCounter(b, " writes ", st.Writes)
		b = appendCounter(b, " errs ", st.WriteErrors)
	}
	if s.link != nil {
		if s.link.Connected() {
			b = append(b, " net up"...)
		} else {
			b = append(b, " net down"...)
		}
	}
	return string(b)
}

func appendCounter(b []byte, label string, v uint32) []byte {
	var tmp [10]byte
	i := conv.Utoa(tmp[:], uint64(v))
	b = append(b, label...)
	return append(b, tmp[i:]...)
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	var cfgCh <-chan *bus.Message
	if conn != nil {
		cfgSub := conn.Subscribe(config.HeartbeatTopic())
		defer conn.Unsubscribe(cfgSub)
		cfgCh = cfgSub.Channel()
	}

	tick := time.NewTicker(s.Interval())
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			println("[hb] stopping")
			return
		case now := <-tick.C:
			s.out(s.Line(now))
		case msg := <-cfgCh:
			hb, ok := msg.Payload.(config.Heartbeat)
			if !ok || hb.IntervalS <= 0 {
				continue
			}
			d := time.Duration(hb.IntervalS) * time.Second
			if d != s.Interval() {
				s.interval.Store(int64(d))
				tick.Reset(d)
				println("[hb] interval", hb.IntervalS, "s")
			}
		}
	}
}

// Start runs the heartbeat as its own task. conn may be nil, in which case
// the interval never changes.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}
