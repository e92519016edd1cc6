//go:build !tinygo

package config

import (
	"gopkg.in/yaml.v3"

	"huecycle-go/errcode"
)

// Load decodes YAML over Default, then normalises and validates the result.
// Absent keys keep their default values.
func Load(raw []byte) (Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Config{}, errcode.Wrap(errcode.InvalidPayload, "config.load", err)
	}
	return Decode(&doc)
}

// Decode is Load for a config embedded in a larger document. An empty node
// yields the defaults.
func Decode(n *yaml.Node) (Config, error) {
	cfg := Default()
	if n != nil && n.Kind != 0 {
		if err := n.Decode(&cfg); err != nil {
			return Config{}, errcode.Wrap(errcode.InvalidPayload, "config.load", err)
		}
	}
	cfg.Normalise()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
