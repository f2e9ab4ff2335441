package cmd

import (
	"github.com/sirupsen/logrus"

	"github.com/cloudnetsim/cloudnetsim/network"
	"github.com/cloudnetsim/cloudnetsim/sim"
)

// An endpointActor stands in for an application actor in scenario runs. It
// counts what it receives so the run summary can report it.
type endpointActor struct {
	name sim.ActorID

	messagesReceived  int
	transfersNotified int
	eventsReceived    int
}

func newEndpointActor(name sim.ActorID) *endpointActor {
	return &endpointActor{name: name}
}

func (a *endpointActor) Name() sim.ActorID {
	return a.name
}

func (a *endpointActor) Handle(e sim.Event) error {
	switch e := e.(type) {
	case network.MessageDeliveryEvent:
		a.messagesReceived++
		logrus.Debugf("time %.6f: %s got message %d from %s",
			e.Time(), a.name, e.Message.ID, e.Message.Src)
	case network.TransferCompletedEvent:
		a.transfersNotified++
		logrus.Debugf("time %.6f: %s notified of transfer %d, size %f",
			e.Time(), a.name, e.Transfer.ID, e.Transfer.Size)
	default:
		a.eventsReceived++
	}

	return nil
}
