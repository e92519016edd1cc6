package types

// ------------------------
// Capability addressing & kinds
// ------------------------

type Kind string

const (
	KindLED    Kind = "led"
	KindButton Kind = "button"
	KindNet    Kind = "net"
)

// CapabilityAddress identifies a public capability on the bus.
type CapabilityAddress struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name"`
}
