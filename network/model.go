package network

import (
	"github.com/cloudnetsim/cloudnetsim/sim"
)

// Context bundles the scheduling primitives that the network actor hands to
// a Model, so that the model can self-schedule arrival events against the
// same substrate the actor itself uses.
type Context struct {
	sim.EventScheduler
	sim.TimeTeller

	// Network is the handler that arrival events must be scheduled for.
	Network sim.Handler
}

// A Model owns the latency and bandwidth-contention semantics of the
// network. Implementations decide when a started transfer arrives.
//
// For every transfer, BeginTransfer is called exactly once, after the
// propagation delay has elapsed, and EndTransfer exactly once when the
// arrival event is processed. A model must eventually cause exactly one
// TransferArriveEvent per started transfer; a model that drops a transfer
// starves its notification destination forever.
type Model interface {
	// Latency returns the propagation delay charged to one network hop,
	// evaluated at the moment the hop begins.
	Latency() sim.VTimeInSec

	// BeginTransfer starts modeling the bulk phase of the transfer. The
	// model is responsible for scheduling a TransferArriveEvent for this
	// transfer through ctx.
	BeginTransfer(t Transfer, ctx Context)

	// EndTransfer releases whatever capacity the model reserved for the
	// transfer in BeginTransfer. It is called before the completion
	// notification is emitted.
	EndTransfer(t Transfer, ctx Context)
}
