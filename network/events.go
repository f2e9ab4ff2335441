package network

import (
	"github.com/cloudnetsim/cloudnetsim/sim"
)

// MessageSendEvent starts the lifecycle of a message. It is scheduled by the
// send operation at the current time and handled by the network actor.
type MessageSendEvent struct {
	sim.EventBase
	Message Message
}

// MessageReceiveEvent marks the message as having crossed the wire. It is
// handled by the network actor, one latency hop after the send (zero if the
// endpoints are co-located).
type MessageReceiveEvent struct {
	sim.EventBase
	Message Message
}

// MessageDeliveryEvent hands the message to the destination actor.
type MessageDeliveryEvent struct {
	sim.EventBase
	Message Message
}

// DirectEvent delivers an arbitrary application payload to the destination
// actor. It is the scheduling shortcut behind SendEvent and bypasses the
// message lifecycle entirely.
type DirectEvent struct {
	sim.EventBase
	Src     sim.ActorID
	Dst     sim.ActorID
	Payload any
}

// TransferRequestEvent starts the lifecycle of a data transfer. It is
// scheduled by the request operation at the current time and handled by the
// network actor.
type TransferRequestEvent struct {
	sim.EventBase
	Transfer Transfer
}

// TransferStartEvent marks the end of the path-establishment hop. On this
// event the network actor hands the transfer to the model.
type TransferStartEvent struct {
	sim.EventBase
	Transfer Transfer
}

// TransferArriveEvent is scheduled by the network model when the bulk phase
// of the transfer finishes. It is handled by the network actor.
type TransferArriveEvent struct {
	sim.EventBase
	Transfer Transfer
}

// NewTransferArriveEvent creates the arrival event for a transfer. Models
// call this with ctx.Network as the handler.
func NewTransferArriveEvent(
	t sim.VTimeInSec,
	handler sim.Handler,
	transfer Transfer,
) TransferArriveEvent {
	return TransferArriveEvent{
		EventBase: sim.NewEventBase(t, handler),
		Transfer:  transfer,
	}
}

// TransferCompletedEvent notifies the transfer's notification destination
// that the transfer finished. It carries the original transfer record.
type TransferCompletedEvent struct {
	sim.EventBase
	Transfer Transfer
}
