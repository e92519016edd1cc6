//go:build nano_rp2040

package boards

var Selected = NanoRP2040Connect
