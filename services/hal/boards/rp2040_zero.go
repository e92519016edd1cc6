//go:build rp2040 && !nano_rp2040

package boards

var Selected = RP2040Zero
