package sim

// ActorID identifies an independently addressable simulated entity that can
// send and receive events.
type ActorID string

// An Actor is a handler that is addressable by its name.
type Actor interface {
	Handler

	// Name returns the ID under which the actor is registered.
	Name() ActorID
}

// An ActorRegistry resolves actor IDs to the actors themselves. It is the
// lookup the network layer uses to hand events to destination actors.
type ActorRegistry interface {
	// Actor returns the actor registered under the given ID, or nil if no
	// such actor is registered.
	Actor(id ActorID) Actor
}
