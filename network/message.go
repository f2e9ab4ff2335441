// Package network provides the actor that models message passing and bulk
// data transfer between simulated actors.
package network

import (
	"github.com/cloudnetsim/cloudnetsim/idgen"
	"github.com/cloudnetsim/cloudnetsim/sim"
)

// A Message is one logical unit of communication between two actors. The
// payload is opaque to the network layer. Messages are immutable after
// creation.
type Message struct {
	ID      idgen.ID
	Src     sim.ActorID
	Dst     sim.ActorID
	Payload any
}

// A Transfer is one bulk data transfer between two actors. Size is in
// abstract units (e.g., bytes) and is never negative. NotifyDst is the actor
// that is told when the transfer completes; it may differ from Dst.
type Transfer struct {
	ID        idgen.ID
	Src       sim.ActorID
	Dst       sim.ActorID
	Size      float64
	NotifyDst sim.ActorID
}
