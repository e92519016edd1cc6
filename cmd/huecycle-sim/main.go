//go:build !tinygo

// Command huecycle-sim replays a button scenario against the LED loop on the
// host and logs every frame.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"huecycle-go/bus"
	"huecycle-go/services/sim"
	"huecycle-go/types"
)

func main() {
	var path string
	flag.StringVar(&path, "scenario", "cmd/huecycle-sim/scenarios/lap.yaml", "Path to scenario file")
	flag.StringVar(&path, "s", "cmd/huecycle-sim/scenarios/lap.yaml", "Path to scenario file (shorthand)")
	level := flag.String("level", "info", "Log level: debug, info, warn, error")
	useJSON := flag.Bool("json", false, "Log as JSON")
	flag.Parse()

	setupLogging(*level, *useJSON)

	sc, err := sim.LoadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("scenario", path).Msg("Failed to load scenario")
	}
	log.Info().
		Str("scenario", sc.Name).
		Int("ticks", sc.Ticks).
		Int("tick_ms", sc.Config.TickMs).
		Str("mode", sc.Config.Mode).
		Uint8("brightness", sc.Config.Brightness).
		Msg("Starting simulation")

	b := bus.NewBus(32)
	conn := b.NewConnection("sim")
	status := conn.Subscribe(bus.T("led", "+", "status"))
	defer conn.Disconnect()

	res, err := sim.Run(sc, sim.WithBus(conn))
	if err != nil {
		log.Fatal().Err(err).Msg("Simulation failed")
	}

	for _, f := range res.Frames {
		px := f.Pixels[0]
		log.Info().
			Int("tick", f.Tick).
			Dur("at", f.At).
			Uint8("hue", f.Hue).
			Uint8("r", px.R).
			Uint8("g", px.G).
			Uint8("b", px.B).
			Msg("frame")
	}

	drainStatus(status)

	log.Info().
		Uint32("polls", res.Stats.Polls).
		Uint32("presses", res.Stats.Presses).
		Uint32("writes", res.Stats.Writes).
		Uint32("write_errors", res.Stats.WriteErrors).
		Uint8("final_hue", res.FinalHue).
		Dur("elapsed", res.Elapsed).
		Msg("Simulation complete")
}

// drainStatus logs the LED status changes queued during the run.
func drainStatus(sub *bus.Subscription) {
	for {
		select {
		case m := <-sub.Channel():
			st, ok := m.Payload.(types.CapabilityStatus)
			if !ok {
				continue
			}
			ev := log.Debug()
			if st.Link != types.LinkUp {
				ev = log.Warn()
			}
			ev.Str("topic", m.Topic.String()).Str("link", string(st.Link)).Str("error", st.Error).Msg("led status")
		default:
			return
		}
	}
}

func setupLogging(level string, useJSON bool) {
	zerolog.TimeFieldFormat = time.RFC3339

	if useJSON {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05.000",
		})
	}

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
