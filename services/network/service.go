// Package network brings up the soft access point and keeps the station
// link joined. It shares nothing with the LED loop except the Connected
// flag, which is read for diagnostics.
package network

import (
	"context"
	"sync/atomic"
	"time"

	"tinygo.org/x/drivers/netlink"

	"huecycle-go/bus"
	"huecycle-go/errcode"
	"huecycle-go/services/config"
	"huecycle-go/types"
	"huecycle-go/x/timex"
)

// Link is the part of netlink.Netlinker the service drives.
type Link interface {
	NetConnect(params *netlink.ConnectParams) error
	NetDisconnect()
	NetNotify(cb func(netlink.Event))
}

type Config struct {
	AP    config.Credentials
	STA   config.Credentials
	Retry time.Duration
}

// FromConfig lifts the network section of the firmware config.
func FromConfig(c config.Config) Config {
	return Config{AP: c.Network.AP, STA: c.Network.STA, Retry: c.Retry()}
}

type Option func(*Service)

// WithBus publishes net/<mode>/status on conn.
func WithBus(conn *bus.Connection) Option { return func(s *Service) { s.conn = conn } }

// Service owns the link handle once constructed; callers must not use it
// afterwards.
type Service struct {
	link Link
	cfg  Config
	conn *bus.Connection

	events    chan netlink.Event
	connected atomic.Bool
	attempts  uint32
	apUp      bool
}

func New(link Link, cfg Config, opts ...Option) *Service {
	if cfg.Retry <= 0 {
		cfg.Retry = 5 * time.Second
	}
	s := &Service{
		link:   link,
		cfg:    cfg,
		events: make(chan netlink.Event, 4),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Connected reports whether the station link is up. Safe from any task.
func (s *Service) Connected() bool { return s.connected.Load() }

// Attempts is the number of station joins tried so far.
func (s *Service) Attempts() uint32 { return atomic.LoadUint32(&s.attempts) }

// Start registers for link events and brings up the access point when one
// is configured. An error here is a bring-up failure.
func (s *Service) Start(ctx context.Context) error {
	s.link.NetNotify(s.notify)

	ap := s.cfg.AP
	if ap.SSID == "" {
		return nil
	}
	println("[net] ap up:", ap.SSID)
	err := s.link.NetConnect(&netlink.ConnectParams{
		ConnectMode: netlink.ConnectModeAP,
		Ssid:        ap.SSID,
		Passphrase:  ap.Passphrase,
	})
	if err != nil {
		s.publish(types.NetModeAP, ap.SSID, types.LinkDown, errcode.ConnectFailed)
		return errcode.Wrap(errcode.ConnectFailed, "net.ap", err)
	}
	s.apUp = true
	s.publish(types.NetModeAP, ap.SSID, types.LinkUp, "")
	return nil
}

// Run keeps the station joined until ctx ends, retrying after a failed join
// or a link-down event.
func (s *Service) Run(ctx context.Context) {
	sta := s.cfg.STA
	if sta.SSID == "" {
		println("[net] no station configured")
		return
	}
	params := &netlink.ConnectParams{
		ConnectMode: netlink.ConnectModeSTA,
		Ssid:        sta.SSID,
		Passphrase:  sta.Passphrase,
	}

	for {
		if !s.connected.Load() {
			n := atomic.AddUint32(&s.attempts, 1)
			println("[net] joining", sta.SSID, "attempt", n)
			err := s.link.NetConnect(params)
			switch code := errcode.MapDriverErr(err); code {
			case errcode.OK:
			case errcode.AlreadyConnected:
				if s.apUp {
					// Single-mode radios keep the soft AP; the station cannot join.
					println("[net] station unavailable while ap is up")
					s.publish(types.NetModeSTA, sta.SSID, types.LinkDown, errcode.Unsupported)
					return
				}
				// The driver's watchdog rejoined first.
			default:
				if code == errcode.Error {
					code = errcode.ConnectFailed
				}
				println("[net] join failed:", err.Error())
				s.publish(types.NetModeSTA, sta.SSID, types.LinkDown, code)
				if !s.wait(ctx) {
					return
				}
				continue
			}
			s.setConnected(true)
		}

		select {
		case <-ctx.Done():
			s.link.NetDisconnect()
			s.setConnected(false)
			println("[net] stopped")
			return
		case ev := <-s.events:
			switch ev {
			case netlink.EventNetDown:
				println("[net] link down")
				s.setConnected(false)
				if !s.wait(ctx) {
					return
				}
			case netlink.EventNetUp:
				s.setConnected(true)
			}
		}
	}
}

// notify runs in the driver's context; it must not block.
func (s *Service) notify(ev netlink.Event) {
	select {
	case s.events <- ev:
	default:
	}
}

func (s *Service) setConnected(up bool) {
	if s.connected.Swap(up) == up {
		return
	}
	if up {
		println("[net] station up")
		s.publish(types.NetModeSTA, s.cfg.STA.SSID, types.LinkUp, "")
		return
	}
	s.publish(types.NetModeSTA, s.cfg.STA.SSID, types.LinkDown, errcode.LinkDown)
}

func (s *Service) wait(ctx context.Context) bool {
	t := time.NewTimer(s.cfg.Retry)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (s *Service) publish(mode types.NetMode, ssid string, link types.Link, code errcode.Code) {
	if s.conn == nil {
		return
	}
	st := types.NetStatus{
		Mode:     mode,
		Link:     link,
		SSID:     ssid,
		Attempts: atomic.LoadUint32(&s.attempts),
		TSms:     timex.NowMs(),
	}
	if code != "" {
		st.Error = string(code)
	}
	a := types.CapabilityAddress{Kind: types.KindNet, Name: string(mode)}
	s.conn.Publish(s.conn.NewMessage(bus.T(string(a.Kind), a.Name, "status"), st, true))
}
