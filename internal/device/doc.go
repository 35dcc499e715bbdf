// Package device provides the in-memory Device Registry for the Kivai
// runtime.
//
// The registry is the catalogue of devices an installation exposes to intent
// routing: each device carries a stable id, a zone, and a set of capability
// tags. Routing resolution turns partial addressing criteria (a device id,
// or zone/capability filters) into at most one concrete device, refusing to
// guess when the criteria are ambiguous.
//
// # Usage
//
//	reg := device.NewRegistry()
//	reg.Upsert(device.Device{
//	    ID:           "speaker-living-02",
//	    Zone:         "living_room",
//	    Capabilities: []device.Capability{device.CapSpeaker},
//	})
//
//	match := reg.Resolve(device.Query{Zone: "living_room", Capability: device.CapSpeaker})
//	if match != nil {
//	    // match.Device, match.Reason
//	}
//
// # Thread Safety
//
// All Registry methods are safe for concurrent use. The intended lifecycle
// is populate-once at startup, read-only thereafter.
package device
