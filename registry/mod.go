package registry

import (
	"go.dedis.ch/arp/types"
)

// Registry dispatches the events emitted by the protocol to the components
// interested in them (journal, reports, tests). It also keeps a history of
// processed events.
type Registry interface {
	// RegisterEventCallback registers a function that will be executed for
	// that particular type of event by the ProcessEvent function.
	RegisterEventCallback(types.Event, Exec)

	// ProcessEvent executes the registered callbacks based on the event name.
	ProcessEvent(types.Event) error

	// RegisterNotify registers an Exec function that will be called each time
	// ProcessEvent is called. The return error of Exec is not taken into
	// account.
	RegisterNotify(Exec)

	// GetEvents returns the events processed with the ProcessEvent function
	// and still kept in the history, oldest first.
	GetEvents() []types.Event
}

// Exec is the type of function executed as a handler on an event.
type Exec func(types.Event) error
