package config

import (
	"huecycle-go/bus"
)

const (
	serviceName  = "config"
	configPrefix = "config"
)

// LEDSection is the loop-facing slice of the config, published for
// diagnostics.
type LEDSection struct {
	Name        string `json:"name"`
	TickMs      int    `json:"tick_ms"`
	Step        uint8  `json:"step"`
	Brightness  uint8  `json:"brightness"`
	Gamma       bool   `json:"gamma"`
	Mode        string `json:"mode"`
	StableTicks uint8  `json:"stable_ticks"`
	Pixels      int    `json:"pixels"`
}

// NetSection omits passphrases.
type NetSection struct {
	APSSID  string `json:"ap_ssid"`
	STASSID string `json:"sta_ssid"`
	RetryMs int    `json:"retry_ms"`
}

// ConfigService publishes one retained message per section under
// config/<section>. Late subscribers (heartbeat, diagnostics) pick them up
// from the retained store.
type ConfigService struct {
	Name string
	cfg  Config
}

func NewConfigService(cfg Config) *ConfigService {
	return &ConfigService{Name: serviceName, cfg: cfg}
}

func (s *ConfigService) sections() map[string]any {
	c := s.cfg
	return map[string]any{
		"led": LEDSection{
			Name:        c.Name,
			TickMs:      c.TickMs,
			Step:        c.Step,
			Brightness:  c.Brightness,
			Gamma:       c.Gamma,
			Mode:        c.Mode,
			StableTicks: c.StableTicks,
			Pixels:      c.Pixels,
		},
		"heartbeat": c.Heartbeat,
		"net": NetSection{
			APSSID:  c.Network.AP.SSID,
			STASSID: c.Network.STA.SSID,
			RetryMs: c.Network.RetryMs,
		},
	}
}

// Start publishes every section. It does not block.
func (s *ConfigService) Start(conn *bus.Connection) {
	for k, v := range s.sections() {
		conn.Publish(conn.NewMessage(bus.T(configPrefix, k), v, true))
	}
	println("[config] published", s.cfg.Name)
}

// HeartbeatTopic is where the heartbeat section is published.
func HeartbeatTopic() bus.Topic { return bus.T(configPrefix, "heartbeat") }
