package adapter

import (
	"errors"
	"strings"

	"github.com/tech4life-beyond/kivai/internal/device"
)

// Validation errors for capability declarations.
var (
	// ErrCapabilitiesIntent is returned when the declared intent is empty.
	ErrCapabilitiesIntent = errors.New("adapter: capabilities intent must be a non-empty string")

	// ErrCapabilitiesEmpty is returned when a required capability tag is empty.
	ErrCapabilitiesEmpty = errors.New("adapter: required capabilities must be non-empty strings")

	// ErrCapabilitiesRole is returned when requires_auth is set without a role.
	ErrCapabilitiesRole = errors.New("adapter: required role must be set when auth is required")
)

// defaultTimeoutMS is the declared per-adapter execution budget.
// Declared but not yet enforced by the runtime.
const defaultTimeoutMS = 5000

// Capabilities is an adapter's static declaration: the device capabilities
// a routed target must carry, and the adapter's security baseline.
// Constructed once per adapter and treated as immutable.
type Capabilities struct {
	// Intent is the canonical intent this adapter executes.
	Intent string

	// RequiredCapabilities is the capability set a routed device must
	// satisfy before the adapter may execute against it.
	RequiredCapabilities []device.Capability

	// RequiresAuth marks the intent as requiring authorization regardless
	// of the static intent role policy.
	RequiresAuth bool

	// RequiredRole is the role demanded when RequiresAuth is set.
	RequiredRole string

	// TimeoutMS is a declared execution budget for future operational
	// control; the runtime does not enforce it yet.
	TimeoutMS int
}

// NewCapabilities builds a declaration with the default timeout.
func NewCapabilities(intent string, required []device.Capability) Capabilities {
	return Capabilities{
		Intent:               intent,
		RequiredCapabilities: required,
		TimeoutMS:            defaultTimeoutMS,
	}
}

// WithAuth returns a copy of the declaration requiring the given role.
func (c Capabilities) WithAuth(role string) Capabilities {
	c.RequiresAuth = true
	c.RequiredRole = role
	return c
}

// Validate checks the declaration invariants: a non-empty intent, non-empty
// capability tags, and a role whenever auth is required.
func (c Capabilities) Validate() error {
	if strings.TrimSpace(c.Intent) == "" {
		return ErrCapabilitiesIntent
	}
	for _, cap := range c.RequiredCapabilities {
		if strings.TrimSpace(string(cap)) == "" {
			return ErrCapabilitiesEmpty
		}
	}
	if c.RequiresAuth && strings.TrimSpace(c.RequiredRole) == "" {
		return ErrCapabilitiesRole
	}
	return nil
}

// SatisfiedBy reports whether the required capability set is a subset of
// the given device capability set.
func (c Capabilities) SatisfiedBy(caps []string) bool {
	have := make(map[string]struct{}, len(caps))
	for _, cap := range caps {
		have[cap] = struct{}{}
	}
	for _, req := range c.RequiredCapabilities {
		if _, ok := have[string(req)]; !ok {
			return false
		}
	}
	return true
}
