package network

import (
	"github.com/cloudnetsim/cloudnetsim/sim"
)

// messageStage enumerates the lifecycle stages of a message.
type messageStage int

const (
	messageSent messageStage = iota
	messageReceived
	messageDelivered
)

// transferStage enumerates the lifecycle stages of a data transfer.
type transferStage int

const (
	transferRequested transferStage = iota
	transferStarted
	transferArrived
	transferCompleted
)

// hopTarget says who processes the next lifecycle event of an entity.
type hopTarget int

const (
	// targetNetwork keeps the entity with the network actor for another hop.
	targetNetwork hopTarget = iota
	// targetDestination hands the entity to its destination or notification
	// actor.
	targetDestination
	// targetModel hands timing control to the network model; the delay
	// returned alongside it is meaningless.
	targetModel
)

// nextMessageStage is the pure transition function of the message
// sub-machine. It returns the following stage, the delay before it, and who
// handles it. ok is false once the lifecycle is terminal.
func nextMessageStage(
	s messageStage,
	latency sim.VTimeInSec,
	coLocated bool,
) (next messageStage, delay sim.VTimeInSec, target hopTarget, ok bool) {
	switch s {
	case messageSent:
		if coLocated {
			latency = 0
		}
		return messageReceived, latency, targetNetwork, true
	case messageReceived:
		return messageDelivered, 0, targetDestination, true
	default:
		return s, 0, targetNetwork, false
	}
}

// nextTransferStage is the pure transition function of the transfer
// sub-machine. The Started stage hands timing to the model, so the returned
// delay only applies to the Requested and Arrived transitions.
func nextTransferStage(
	s transferStage,
	latency sim.VTimeInSec,
) (next transferStage, delay sim.VTimeInSec, target hopTarget, ok bool) {
	switch s {
	case transferRequested:
		return transferStarted, latency, targetNetwork, true
	case transferStarted:
		return transferArrived, 0, targetModel, true
	case transferArrived:
		return transferCompleted, 0, targetDestination, true
	default:
		return s, 0, targetNetwork, false
	}
}
