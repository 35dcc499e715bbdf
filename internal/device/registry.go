package device

import "sync"

// Registry is the in-memory device catalogue.
//
// It supports upsert by id, direct lookup, and routing resolution from
// partial criteria. All methods are safe for concurrent use; resolution
// assumes the catalogue is read-only once the runtime starts serving.
type Registry struct {
	mu   sync.RWMutex
	byID map[string]Device
}

// NewRegistry creates an empty device registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Device)}
}

// Upsert inserts or replaces a device by its id.
func (r *Registry) Upsert(d Device) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[d.ID] = d
}

// Get returns the device with the given id.
func (r *Registry) Get(id string) (Device, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	return d, ok
}

// All returns every registered device. Order is unspecified.
func (r *Registry) All() []Device {
	r.mu.RLock()
	defer r.mu.RUnlock()
	devices := make([]Device, 0, len(r.byID))
	for _, d := range r.byID {
		devices = append(devices, d)
	}
	return devices
}

// Count returns the number of registered devices.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Query holds partial routing criteria. Empty fields are ignored.
type Query struct {
	DeviceID   string
	Zone       string
	Capability Capability
}

// Resolve turns partial criteria into at most one device match.
//
// Resolution rules, first match wins:
//  1. DeviceID given: direct lookup. A missing id yields no match, not an
//     error; callers decide what absence means.
//  2. Otherwise filter all devices by Zone (if given), then Capability
//     (if given).
//  3. Exactly one candidate left: that is the match, with a reason
//     recording which filters applied.
//  4. Zero or multiple candidates: no match. Ambiguity is refused, never
//     resolved to a default.
func (r *Registry) Resolve(q Query) *Match {
	if q.DeviceID != "" {
		d, ok := r.Get(q.DeviceID)
		if !ok {
			return nil
		}
		return &Match{Device: d, Reason: MatchByDeviceID}
	}

	candidates := r.All()

	if q.Zone != "" {
		filtered := candidates[:0]
		for _, d := range candidates {
			if d.Zone == q.Zone {
				filtered = append(filtered, d)
			}
		}
		candidates = filtered
	}
	if q.Capability != "" {
		filtered := candidates[:0]
		for _, d := range candidates {
			if d.HasCapability(q.Capability) {
				filtered = append(filtered, d)
			}
		}
		candidates = filtered
	}

	if len(candidates) != 1 {
		return nil
	}

	reason := MatchByCapability
	switch {
	case q.Zone != "" && q.Capability != "":
		reason = MatchByZoneCapability
	case q.Zone != "":
		reason = MatchByZone
	}

	return &Match{Device: candidates[0], Reason: reason}
}

// DefaultRegistry returns a registry seeded with a tiny virtual home,
// suitable for demos and tests. These are runnable defaults, not
// authoritative device definitions.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.Upsert(Device{
		ID:           "thermostat-living-01",
		Zone:         "living_room",
		Capabilities: []Capability{CapThermostat},
	})
	reg.Upsert(Device{
		ID:           "speaker-living-02",
		Zone:         "living_room",
		Capabilities: []Capability{CapSpeaker},
	})
	reg.Upsert(Device{
		ID:           "door-front-01",
		Zone:         "front_door",
		Capabilities: []Capability{CapLock},
	})
	return reg
}
