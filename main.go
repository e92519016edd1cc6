package main

import (
	"context"

	"huecycle-go/bus"
	"huecycle-go/services/boot"
	"huecycle-go/services/config"
	"huecycle-go/services/heartbeat"
	"huecycle-go/services/ledloop"
)

func main() {
	boot.Settle()
	println("[main] huecycle boot")

	dev, err := boot.OpenDefault(boot.Defaults())
	if err != nil {
		boot.Halt(err)
	}

	ctx := context.Background()
	b := bus.NewBus(4)
	config.NewConfigService(dev.Config).Start(b.NewConnection("config"))
	dev.Announce(b.NewConnection("boot"))

	loop := ledloop.New(dev.LoopConfig(), dev.Board.Button, dev.Sink,
		ledloop.WithBus(b.NewConnection("led")))

	hb := heartbeat.New(loop, dev.Config.HeartbeatInterval())
	_ = hb.Start(ctx, b.NewConnection("hb"))

	loop.Run(ctx)
}
