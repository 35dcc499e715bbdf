// Package routing derives routing criteria from an intent payload and
// resolves them against the device registry.
package routing

import (
	"github.com/tech4life-beyond/kivai/internal/device"
	"github.com/tech4life-beyond/kivai/internal/intent"
)

// intentDefaultCapability substitutes a capability when the payload target
// does not name one. Echo is deliberately absent: it routes only when the
// payload addresses a device or capability explicitly.
var intentDefaultCapability = map[string]device.Capability{
	"set_temperature": device.CapThermostat,
	"play_music":      device.CapSpeaker,
	"unlock_door":     device.CapLock,
}

// Route resolves the payload's target to a concrete device.
//
// Criteria priority follows the registry's resolution rules: an explicit
// target.device_id wins, then zone/capability filtering. A missing
// capability falls back to the intent's default capability. Returns nil
// when nothing (or more than one thing) matches; absence of a route is
// not an error; callers decide what it means.
func Route(p intent.Payload, reg *device.Registry) *device.Match {
	q := device.Query{}
	if p.Target != nil {
		q.DeviceID = p.Target.DeviceID
		q.Zone = p.Target.Zone
		q.Capability = device.Capability(p.Target.Capability)
	}

	if q.Capability == "" {
		q.Capability = intentDefaultCapability[p.Intent]
	}

	return reg.Resolve(q)
}
