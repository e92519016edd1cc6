// Command huecycle-wifi runs the LED loop alongside a soft access point and
// a station link. It needs a board whose radio has a netlink driver; the
// tree ships the Arduino Nano RP2040 Connect. Credentials are set at link
// time, e.g.
//
//	tinygo flash -target nano-rp2040 -ldflags "-X main.staSSID=home -X main.staPass=secret" ./cmd/huecycle-wifi
//
// nina-fw drives the radio in one mode at a time, so with both set the
// access point keeps the radio and the station reports unsupported.
package main

import (
	"context"

	"huecycle-go/bus"
	"huecycle-go/services/boot"
	"huecycle-go/services/config"
	"huecycle-go/services/heartbeat"
	"huecycle-go/services/ledloop"
	"huecycle-go/services/network"
)

var (
	apSSID  = "huecycle"
	apPass  = "huecycle-ap"
	staSSID = ""
	staPass = ""
)

func main() {
	boot.Settle()
	println("[main] huecycle-wifi boot")

	cfg := boot.Defaults()
	cfg.Network.AP = config.Credentials{SSID: apSSID, Passphrase: apPass}
	cfg.Network.STA = config.Credentials{SSID: staSSID, Passphrase: staPass}

	dev, err := boot.OpenDefault(cfg)
	if err != nil {
		boot.Halt(err)
	}

	link, err := network.DefaultLink()
	if err != nil {
		boot.Halt(err)
	}

	ctx := context.Background()
	b := bus.NewBus(8)
	config.NewConfigService(dev.Config).Start(b.NewConnection("config"))
	dev.Announce(b.NewConnection("boot"))

	// The link handle moves into the network service here.
	net := network.New(link, network.FromConfig(dev.Config), network.WithBus(b.NewConnection("net")))
	if err := net.Start(ctx); err != nil {
		boot.Halt(err)
	}
	go net.Run(ctx)

	loop := ledloop.New(dev.LoopConfig(), dev.Board.Button, dev.Sink,
		ledloop.WithBus(b.NewConnection("led")),
		ledloop.WithLink(net))

	hb := heartbeat.New(loop, dev.Config.HeartbeatInterval(), heartbeat.WithLink(net))
	_ = hb.Start(ctx, b.NewConnection("hb"))

	loop.Run(ctx)
}
