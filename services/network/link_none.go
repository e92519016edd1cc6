//go:build !nano_rp2040

package network

import "huecycle-go/errcode"

// DefaultLink reports that this board has no supported wireless adaptor.
func DefaultLink() (Link, error) { return nil, errcode.Unsupported }
