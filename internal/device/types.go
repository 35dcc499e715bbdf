package device

import "sort"

// Capability is a tag denoting a device's functional class.
type Capability string

// Capabilities of the built-in reference adapters.
const (
	CapThermostat Capability = "thermostat"
	CapSpeaker    Capability = "speaker"
	CapLock       Capability = "lock"
)

// Device represents a controllable entity known to the runtime.
// Devices are immutable once registered.
type Device struct {
	ID           string       `json:"device_id"`
	Zone         string       `json:"zone"`
	Capabilities []Capability `json:"capabilities"`
}

// HasCapability reports whether the device carries the given capability tag.
func (d Device) HasCapability(cap Capability) bool {
	for _, c := range d.Capabilities {
		if c == cap {
			return true
		}
	}
	return false
}

// CapabilityStrings returns the device's capability tags as a sorted string
// slice, suitable for ACK route mirroring and audit events.
func (d Device) CapabilityStrings() []string {
	out := make([]string, len(d.Capabilities))
	for i, c := range d.Capabilities {
		out[i] = string(c)
	}
	sort.Strings(out)
	return out
}

// MatchReason records which resolution rule produced a routing match.
type MatchReason string

// Match reasons, in resolution priority order.
const (
	MatchByDeviceID       MatchReason = "device_id"
	MatchByZoneCapability MatchReason = "zone+capability"
	MatchByZone           MatchReason = "zone"
	MatchByCapability     MatchReason = "capability"
)

// Match is a routing resolution result. Reason is kept for auditability.
type Match struct {
	Device Device
	Reason MatchReason
}
