package color

import "huecycle-go/types"

// Pipeline is the fixed correction chain: HSV -> RGB -> gamma -> brightness.
// Gamma and brightness do not commute under truncation, so the order is fixed.
type Pipeline struct {
	Gamma      bool
	Brightness uint8
}

// Correct converts hsv and applies gamma only. Brightness is left to the
// sink so a frame can be blanked without re-running the colour model.
func (p Pipeline) Correct(hsv types.HSV) types.RGB {
	c := Convert(hsv)
	if p.Gamma {
		c = Gamma(c)
	}
	return c
}

// Apply runs the whole chain.
func (p Pipeline) Apply(hsv types.HSV) types.RGB {
	return Brightness(p.Correct(hsv), p.Brightness)
}
