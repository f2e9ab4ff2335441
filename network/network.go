package network

import (
	"reflect"

	"github.com/sirupsen/logrus"

	"github.com/cloudnetsim/cloudnetsim/idgen"
	"github.com/cloudnetsim/cloudnetsim/sim"
)

// NetworkID is the actor ID the network actor is registered under.
const NetworkID sim.ActorID = "net"

// Engine is the part of the substrate the network actor needs.
type Engine interface {
	sim.EventScheduler
	sim.TimeTeller
}

// Network is the process-wide coordinator for all inter-actor communication.
// Producer actors call its send and transfer operations; the operations
// enqueue lifecycle events that the substrate delivers back to the network
// actor, which advances the message and transfer state machines and finally
// hands delivery and completion events to the destination actors.
type Network struct {
	engine Engine
	actors sim.ActorRegistry
	model  Model
	hosts  *HostRegistry
	ids    idgen.Generator
}

// New creates a Network that resolves destination actors through the given
// registry and delegates latency and bandwidth semantics to the given model.
func New(engine Engine, actors sim.ActorRegistry, model Model) *Network {
	return &Network{
		engine: engine,
		actors: actors,
		model:  model,
		hosts:  NewHostRegistry(),
		ids:    idgen.New(),
	}
}

// Name returns the ID the network actor is addressed by.
func (n *Network) Name() sim.ActorID {
	return NetworkID
}

// Hosts exposes the host registry for simulation setup code.
func (n *Network) Hosts() *HostRegistry {
	return n.hosts
}

// RegisterHost adds a host to the known set.
func (n *Network) RegisterHost(host string) {
	n.hosts.RegisterHost(host)
}

// BindActor records the host an actor runs on.
func (n *Network) BindActor(actor sim.ActorID, host string) {
	n.hosts.BindActor(actor, host)
}

// AreCoLocated reports whether two actors are bound to the same host.
func (n *Network) AreCoLocated(a, b sim.ActorID) bool {
	return n.hosts.AreCoLocated(a, b)
}

// Context returns the scheduling context handed to the network model.
func (n *Network) Context() Context {
	return Context{
		EventScheduler: n.engine,
		TimeTeller:     n.engine,
		Network:        n,
	}
}

// SendMessage sends one message from src to dst and returns the allocated
// message ID so the caller can correlate the later delivery event. The first
// lifecycle event is enqueued at the current time.
func (n *Network) SendMessage(
	payload any,
	src, dst sim.ActorID,
) idgen.ID {
	msg := Message{
		ID:      n.ids.Generate(),
		Src:     src,
		Dst:     dst,
		Payload: payload,
	}

	n.engine.Schedule(MessageSendEvent{
		EventBase: sim.NewEventBase(n.engine.CurrentTime(), n),
		Message:   msg,
	})

	return msg.ID
}

// SendEvent schedules an arbitrary application payload for delivery to dst,
// delayed by one latency hop unless src and dst are co-located. It bypasses
// the message lifecycle.
func (n *Network) SendEvent(payload any, src, dst sim.ActorID) {
	now := n.engine.CurrentTime()

	logrus.Infof("time %.6f: %s sends event to %s", now, src, dst)

	delay := n.model.Latency()
	if n.hosts.AreCoLocated(src, dst) {
		delay = 0
	}

	n.engine.Schedule(DirectEvent{
		EventBase: sim.NewEventBase(now+delay, n.mustActor(dst)),
		Src:       src,
		Dst:       dst,
		Payload:   payload,
	})
}

// RequestTransfer starts a bulk data transfer of the given size from src to
// dst. notifyDst is told when the transfer completes; it may differ from
// dst. The returned ID correlates the later completion event.
func (n *Network) RequestTransfer(
	src, dst sim.ActorID,
	size float64,
	notifyDst sim.ActorID,
) idgen.ID {
	if size < 0 {
		logrus.Panicf("transfer size must be non-negative, got %f", size)
	}

	transfer := Transfer{
		ID:        n.ids.Generate(),
		Src:       src,
		Dst:       dst,
		Size:      size,
		NotifyDst: notifyDst,
	}

	n.engine.Schedule(TransferRequestEvent{
		EventBase: sim.NewEventBase(n.engine.CurrentTime(), n),
		Transfer:  transfer,
	})

	return transfer.ID
}

// Handle advances the message and transfer state machines.
func (n *Network) Handle(e sim.Event) error {
	switch e := e.(type) {
	case MessageSendEvent:
		n.handleMessageSend(e)
	case MessageReceiveEvent:
		n.handleMessageReceive(e)
	case TransferRequestEvent:
		n.handleTransferRequest(e)
	case TransferStartEvent:
		n.handleTransferStart(e)
	case TransferArriveEvent:
		n.handleTransferArrive(e)
	default:
		panic("cannot handle event of type " + reflect.TypeOf(e).String())
	}

	return nil
}

func (n *Network) handleMessageSend(e MessageSendEvent) {
	msg := e.Message

	logrus.Infof("time %.6f: %s sends message %d '%v' to %s",
		e.Time(), msg.Src, msg.ID, msg.Payload, msg.Dst)

	coLocated := n.hosts.AreCoLocated(msg.Src, msg.Dst)
	_, delay, _, ok := nextMessageStage(messageSent, n.model.Latency(), coLocated)
	if !ok {
		return
	}

	n.engine.Schedule(MessageReceiveEvent{
		EventBase: sim.NewEventBase(e.Time()+delay, n),
		Message:   msg,
	})
}

func (n *Network) handleMessageReceive(e MessageReceiveEvent) {
	msg := e.Message

	logrus.Infof("time %.6f: %s received message %d '%v' from %s",
		e.Time(), msg.Dst, msg.ID, msg.Payload, msg.Src)

	_, delay, _, ok := nextMessageStage(messageReceived, 0, false)
	if !ok {
		return
	}

	n.engine.Schedule(MessageDeliveryEvent{
		EventBase: sim.NewEventBase(e.Time()+delay, n.mustActor(msg.Dst)),
		Message:   msg,
	})
}

func (n *Network) handleTransferRequest(e TransferRequestEvent) {
	transfer := e.Transfer

	logrus.Infof("time %.6f: transfer %d requested, from %s to %s, size %f",
		e.Time(), transfer.ID, transfer.Src, transfer.Dst, transfer.Size)

	_, delay, _, ok := nextTransferStage(transferRequested, n.model.Latency())
	if !ok {
		return
	}

	n.engine.Schedule(TransferStartEvent{
		EventBase: sim.NewEventBase(e.Time()+delay, n),
		Transfer:  transfer,
	})
}

func (n *Network) handleTransferStart(e TransferStartEvent) {
	n.model.BeginTransfer(e.Transfer, n.Context())
}

func (n *Network) handleTransferArrive(e TransferArriveEvent) {
	transfer := e.Transfer

	logrus.Infof("time %.6f: transfer %d arrived, from %s to %s, size %f",
		e.Time(), transfer.ID, transfer.Src, transfer.Dst, transfer.Size)

	n.model.EndTransfer(transfer, n.Context())

	_, delay, _, ok := nextTransferStage(transferArrived, 0)
	if !ok {
		return
	}

	n.engine.Schedule(TransferCompletedEvent{
		EventBase: sim.NewEventBase(e.Time()+delay, n.mustActor(transfer.NotifyDst)),
		Transfer:  transfer,
	})
}

func (n *Network) mustActor(id sim.ActorID) sim.Actor {
	actor := n.actors.Actor(id)
	if actor == nil {
		logrus.Panicf("actor %q is not registered", id)
	}

	return actor
}
