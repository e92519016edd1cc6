//go:build nano_rp2040

package network

import (
	"tinygo.org/x/drivers/netlink/probe"

	"huecycle-go/errcode"
)

// DefaultLink probes the NINA co-processor through the wifinina driver.
func DefaultLink() (Link, error) {
	link, _ := probe.Probe()
	if link == nil {
		return nil, errcode.Unsupported
	}
	return link, nil
}
