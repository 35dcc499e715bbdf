package builtin

import "github.com/tech4life-beyond/kivai/internal/adapter"

// DefaultRegistry returns an adapter registry with every reference adapter
// registered.
func DefaultRegistry() *adapter.Registry {
	reg := adapter.NewRegistry()
	reg.RegisterMany(
		Echo{},
		SetTemperature{},
		PlayMusic{},
		UnlockDoor{},
	)
	return reg
}
