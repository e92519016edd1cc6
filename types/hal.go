package types

// ------------------------
// Capability status (retained)
// ------------------------

// Link is the link/state reported for a capability.
type Link string

const (
	LinkUp       Link = "up"
	LinkDown     Link = "down"
	LinkDegraded Link = "degraded"
)

type CapabilityStatus struct {
	Link  Link   `json:"link"`
	TSms  int64  `json:"ts_ms"`
	Error string `json:"error,omitempty"` // machine-readable short code
}

// ------------------------
// Network link (retained)
// ------------------------

type NetMode string

const (
	NetModeAP  NetMode = "ap"
	NetModeSTA NetMode = "sta"
)

type NetStatus struct {
	Mode     NetMode `json:"mode"`
	Link     Link    `json:"link"`
	SSID     string  `json:"ssid"`
	Attempts uint32  `json:"attempts"`
	TSms     int64   `json:"ts_ms"`
	Error    string  `json:"error,omitempty"`
}
