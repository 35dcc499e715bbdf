package device

import "testing"

func testRegistry() *Registry {
	reg := NewRegistry()
	reg.Upsert(Device{ID: "thermostat-living-01", Zone: "living_room", Capabilities: []Capability{CapThermostat}})
	reg.Upsert(Device{ID: "speaker-living-02", Zone: "living_room", Capabilities: []Capability{CapSpeaker}})
	reg.Upsert(Device{ID: "door-front-01", Zone: "front_door", Capabilities: []Capability{CapLock}})
	return reg
}

func TestRegistry_Upsert(t *testing.T) {
	reg := NewRegistry()
	reg.Upsert(Device{ID: "dev-1", Zone: "kitchen", Capabilities: []Capability{CapSpeaker}})
	reg.Upsert(Device{ID: "dev-1", Zone: "hallway", Capabilities: []Capability{CapLock}})

	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 after upsert of same id", reg.Count())
	}
	d, ok := reg.Get("dev-1")
	if !ok {
		t.Fatal("Get() did not find upserted device")
	}
	if d.Zone != "hallway" {
		t.Errorf("Zone = %q, want replacement to win", d.Zone)
	}
}

func TestRegistry_Resolve(t *testing.T) {
	reg := testRegistry()

	t.Run("device id wins over other criteria", func(t *testing.T) {
		m := reg.Resolve(Query{DeviceID: "door-front-01", Zone: "living_room", Capability: CapThermostat})
		if m == nil {
			t.Fatal("Resolve() = nil, want match")
		}
		if m.Device.ID != "door-front-01" {
			t.Errorf("Device.ID = %q, want %q", m.Device.ID, "door-front-01")
		}
		if m.Reason != MatchByDeviceID {
			t.Errorf("Reason = %q, want %q", m.Reason, MatchByDeviceID)
		}
	})

	t.Run("unknown device id yields no match", func(t *testing.T) {
		if m := reg.Resolve(Query{DeviceID: "ghost-99"}); m != nil {
			t.Errorf("Resolve() = %+v, want nil", m)
		}
	})

	t.Run("zone plus capability", func(t *testing.T) {
		m := reg.Resolve(Query{Zone: "living_room", Capability: CapThermostat})
		if m == nil {
			t.Fatal("Resolve() = nil, want match")
		}
		if m.Device.ID != "thermostat-living-01" {
			t.Errorf("Device.ID = %q, want %q", m.Device.ID, "thermostat-living-01")
		}
		if m.Reason != MatchByZoneCapability {
			t.Errorf("Reason = %q, want %q", m.Reason, MatchByZoneCapability)
		}
	})

	t.Run("zone alone with single occupant", func(t *testing.T) {
		m := reg.Resolve(Query{Zone: "front_door"})
		if m == nil {
			t.Fatal("Resolve() = nil, want match")
		}
		if m.Reason != MatchByZone {
			t.Errorf("Reason = %q, want %q", m.Reason, MatchByZone)
		}
	})

	t.Run("capability alone", func(t *testing.T) {
		m := reg.Resolve(Query{Capability: CapSpeaker})
		if m == nil {
			t.Fatal("Resolve() = nil, want match")
		}
		if m.Device.ID != "speaker-living-02" {
			t.Errorf("Device.ID = %q, want %q", m.Device.ID, "speaker-living-02")
		}
		if m.Reason != MatchByCapability {
			t.Errorf("Reason = %q, want %q", m.Reason, MatchByCapability)
		}
	})

	t.Run("ambiguity is refused", func(t *testing.T) {
		if m := reg.Resolve(Query{Zone: "living_room"}); m != nil {
			t.Errorf("Resolve() = %+v, want nil for two-device zone", m)
		}
	})

	t.Run("empty criteria on multi-device registry", func(t *testing.T) {
		if m := reg.Resolve(Query{}); m != nil {
			t.Errorf("Resolve() = %+v, want nil", m)
		}
	})

	t.Run("no candidates", func(t *testing.T) {
		if m := reg.Resolve(Query{Zone: "attic"}); m != nil {
			t.Errorf("Resolve() = %+v, want nil", m)
		}
	})
}

func TestRegistry_ResolveDeterministic(t *testing.T) {
	reg := testRegistry()
	q := Query{Zone: "living_room", Capability: CapSpeaker}

	first := reg.Resolve(q)
	if first == nil {
		t.Fatal("Resolve() = nil, want match")
	}
	for i := 0; i < 20; i++ {
		m := reg.Resolve(q)
		if m == nil || m.Device.ID != first.Device.ID || m.Reason != first.Reason {
			t.Fatalf("Resolve() not deterministic on iteration %d: %+v", i, m)
		}
	}
}

func TestDevice_HasCapability(t *testing.T) {
	d := Device{ID: "dev-1", Capabilities: []Capability{CapThermostat, CapSpeaker}}

	if !d.HasCapability(CapSpeaker) {
		t.Error("HasCapability(speaker) = false, want true")
	}
	if d.HasCapability(CapLock) {
		t.Error("HasCapability(lock) = true, want false")
	}
}

func TestDevice_CapabilityStrings(t *testing.T) {
	d := Device{Capabilities: []Capability{CapSpeaker, CapLock, CapThermostat}}

	got := d.CapabilityStrings()
	want := []string{"lock", "speaker", "thermostat"}
	if len(got) != len(want) {
		t.Fatalf("CapabilityStrings() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CapabilityStrings()[%d] = %q, want %q (sorted)", i, got[i], want[i])
		}
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()

	if reg.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", reg.Count())
	}
	for _, id := range []string{"thermostat-living-01", "speaker-living-02", "door-front-01"} {
		if _, ok := reg.Get(id); !ok {
			t.Errorf("Get(%q) missing from default registry", id)
		}
	}
}
