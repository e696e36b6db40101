package standard

import (
	"sync"

	"github.com/rs/zerolog/log"
	"go.dedis.ch/arp/registry"
	"go.dedis.ch/arp/types"
	"golang.org/x/xerrors"
)

// Option configures a registry.
type Option func(*Registry)

// WithHistory keeps only the last n processed events, none if n is 0. The
// history is unbounded by default.
func WithHistory(n int) Option {
	return func(r *Registry) {
		if n < 0 {
			n = 0
		}
		r.history = n
	}
}

// NewRegistry returns a new initialized registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		callbacks: make(map[string][]registry.Exec),
		notifiers: make([]registry.Exec, 0),
		events:    make([]types.Event, 0),
		history:   -1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry implements registry.Registry. Callbacks are executed outside of the
// registry lock so that they may call back into the registry.
//
// - implements registry.Registry
type Registry struct {
	sync.RWMutex
	callbacks map[string][]registry.Exec
	notifiers []registry.Exec
	events    []types.Event
	// maximum length of events, -1 for no limit
	history int
}

// RegisterEventCallback implements registry.Registry.
func (r *Registry) RegisterEventCallback(evt types.Event, exec registry.Exec) {
	r.Lock()
	defer r.Unlock()

	r.callbacks[evt.Name()] = append(r.callbacks[evt.Name()], exec)
}

// RegisterNotify implements registry.Registry.
func (r *Registry) RegisterNotify(exec registry.Exec) {
	r.Lock()
	defer r.Unlock()

	r.notifiers = append(r.notifiers, exec)
}

// ProcessEvent implements registry.Registry. Every callback registered for
// the event is executed, the first error is returned.
func (r *Registry) ProcessEvent(evt types.Event) error {
	r.Lock()
	r.events = append(r.events, evt)
	if r.history >= 0 && len(r.events) > r.history {
		r.events = r.events[len(r.events)-r.history:]
	}
	notifiers := append([]registry.Exec(nil), r.notifiers...)
	callbacks := append([]registry.Exec(nil), r.callbacks[evt.Name()]...)
	r.Unlock()

	for _, notify := range notifiers {
		err := notify(evt)
		if err != nil {
			log.Warn().Err(err).Msgf("notify failed on %s", evt.Name())
		}
	}

	var firstErr error
	for _, exec := range callbacks {
		err := exec(evt)
		if err != nil && firstErr == nil {
			firstErr = xerrors.Errorf("failed to process %s: %v", evt.Name(), err)
		}
	}

	return firstErr
}

// GetEvents implements registry.Registry.
func (r *Registry) GetEvents() []types.Event {
	r.RLock()
	defer r.RUnlock()

	res := make([]types.Event, len(r.events))
	copy(res, r.events)
	return res
}
