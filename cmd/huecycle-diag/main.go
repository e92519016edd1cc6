// Command huecycle-diag is the plain firmware with a bus monitor that echoes
// every diagnostic message, plus a memory snapshot after each heartbeat.
package main

import (
	"context"
	"runtime"

	"huecycle-go/bus"
	"huecycle-go/services/boot"
	"huecycle-go/services/config"
	"huecycle-go/services/heartbeat"
	"huecycle-go/services/ledloop"
	"huecycle-go/types"
)

func printTopicWith(prefix string, t bus.Topic) {
	print(prefix, " ")
	for i := 0; i < t.Len(); i++ {
		if i > 0 {
			print("/")
		}
		switch v := t.At(i).(type) {
		case string:
			print(v)
		case int:
			print(v)
		default:
			print("?")
		}
	}
}

func printPayload(p any) {
	switch v := p.(type) {
	case types.LEDValue:
		println(" hue", v.HSV.Hue, "rgb", v.RGB.R, v.RGB.G, v.RGB.B)
	case types.CapabilityStatus:
		println(" link", string(v.Link), v.Error)
	case types.ButtonValue:
		println(" pressed", v.Pressed)
	case types.LEDInfo:
		println(" gpio", v.Pin, "pixels", v.Pixels, v.Driver)
	case types.ButtonInfo:
		println(" gpio", v.Pin, "active_low", v.ActiveLow)
	case config.LEDSection:
		println(" tick_ms", v.TickMs, "mode", v.Mode, "brightness", v.Brightness)
	default:
		println()
	}
}

func main() {
	boot.Settle()
	println("[main] huecycle-diag boot")

	dev, err := boot.OpenDefault(boot.Defaults())
	if err != nil {
		boot.Halt(err)
	}

	ctx := context.Background()
	b := bus.NewBus(16)
	uiConn := b.NewConnection("ui")

	println("[main] subscribing to # for diagnostics")
	mon := uiConn.Subscribe(bus.T("#"))
	go func() {
		for m := range mon.Channel() {
			printTopicWith("[monitor] <-", m.Topic)
			printPayload(m.Payload)
		}
	}()

	config.NewConfigService(dev.Config).Start(b.NewConnection("config"))
	dev.Announce(b.NewConnection("boot"))

	loop := ledloop.New(dev.LoopConfig(), dev.Board.Button, dev.Sink,
		ledloop.WithBus(b.NewConnection("led")))

	hb := heartbeat.New(loop, dev.Config.HeartbeatInterval(), heartbeat.WithOutput(func(l string) {
		println(l)
		printMem()
	}))
	_ = hb.Start(ctx, b.NewConnection("hb"))

	loop.Run(ctx)
}

// printMem prints a compact snapshot of runtime memory stats.
func printMem() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	println(
		"[mem]",
		"alloc:", uint32(ms.Alloc),
		"heapInuse:", uint32(ms.HeapInuse),
		"heapSys:", uint32(ms.HeapSys),
		"mallocs:", uint32(ms.Mallocs),
		"frees:", uint32(ms.Frees),
	)
}
