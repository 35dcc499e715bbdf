package adapter

// Registry maps an intent name to exactly one adapter.
//
// Later registration for the same intent replaces the earlier one. The
// registry is built at startup and read-only thereafter; adapters must be
// stateless, so a single registry instance is safely shared across
// concurrent pipeline invocations.
type Registry struct {
	byIntent map[string]Adapter
}

// NewRegistry creates an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{byIntent: make(map[string]Adapter)}
}

// Register adds an adapter, replacing any earlier adapter for the same
// intent name.
func (r *Registry) Register(a Adapter) {
	r.byIntent[a.Intent()] = a
}

// RegisterMany registers a batch of adapters in order.
func (r *Registry) RegisterMany(adapters ...Adapter) {
	for _, a := range adapters {
		r.Register(a)
	}
}

// Resolve returns the adapter for an intent, or nil when the intent is
// unsupported.
func (r *Registry) Resolve(intent string) Adapter {
	if intent == "" {
		return nil
	}
	return r.byIntent[intent]
}

// Intents returns the number of registered intent names.
func (r *Registry) Intents() int {
	return len(r.byIntent)
}
