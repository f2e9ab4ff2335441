package networkmodel

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/cloudnetsim/cloudnetsim/idgen"
	"github.com/cloudnetsim/cloudnetsim/network"
	"github.com/cloudnetsim/cloudnetsim/sim"
)

// A transferUpdateEvent is scheduled for the time the earliest live transfer
// is expected to finish. A reschedule supersedes earlier update events; a
// superseded event is recognized by its time and ignored.
type transferUpdateEvent struct {
	time       sim.VTimeInSec
	handler    sim.Handler
	transferID idgen.ID
}

func (e transferUpdateEvent) Time() sim.VTimeInSec {
	return e.time
}

func (e transferUpdateEvent) Handler() sim.Handler {
	return e.handler
}

func (e transferUpdateEvent) IsSecondary() bool {
	return false
}

type liveTransfer struct {
	transfer  network.Transfer
	remaining float64
	finishAt  sim.VTimeInSec
	done      bool
}

// A SharedBandwidthModel fair-shares a total bandwidth among all transfers
// in flight: each of n live transfers progresses at bandwidth / n. Every
// begin and end re-divides the capacity, updates each transfer's progress,
// and re-schedules the earliest expected finish.
type SharedBandwidthModel struct {
	sim.EventScheduler
	sim.TimeTeller

	bandwidth float64
	latency   sim.VTimeInSec

	net      sim.Handler
	live     map[idgen.ID]*liveTransfer
	lastSync sim.VTimeInSec
}

// NewSharedBandwidthModel creates a SharedBandwidthModel. Bandwidth is the
// total capacity in size units per second and must be positive.
func NewSharedBandwidthModel(
	es sim.EventScheduler,
	tt sim.TimeTeller,
	bandwidth float64,
	latency sim.VTimeInSec,
) *SharedBandwidthModel {
	if bandwidth <= 0 {
		logrus.Panicf("bandwidth must be positive, got %f", bandwidth)
	}

	return &SharedBandwidthModel{
		EventScheduler: es,
		TimeTeller:     tt,
		bandwidth:      bandwidth,
		latency:        latency,
		live:           make(map[idgen.ID]*liveTransfer),
	}
}

// Latency returns the fixed propagation delay of one hop.
func (m *SharedBandwidthModel) Latency() sim.VTimeInSec {
	return m.latency
}

// BeginTransfer adds the transfer to the live set and re-divides the
// capacity.
func (m *SharedBandwidthModel) BeginTransfer(
	t network.Transfer,
	ctx network.Context,
) {
	m.net = ctx.Network

	now := ctx.CurrentTime()
	m.syncProgress(now)
	m.live[t.ID] = &liveTransfer{transfer: t, remaining: t.Size}
	m.rescheduleEarliestFinish(now)
}

// EndTransfer removes the transfer from the live set, releasing its share
// of the capacity to the remaining transfers.
func (m *SharedBandwidthModel) EndTransfer(
	t network.Transfer,
	ctx network.Context,
) {
	now := ctx.CurrentTime()
	m.syncProgress(now)
	delete(m.live, t.ID)
	m.rescheduleEarliestFinish(now)
}

// Handle processes the model's own update events. A current update event
// turns into the arrival of its transfer; a superseded one is ignored,
// since the reschedule that superseded it already covers the live set.
func (m *SharedBandwidthModel) Handle(e sim.Event) error {
	evt, ok := e.(transferUpdateEvent)
	if !ok {
		panic("unknown event type")
	}

	lt, found := m.live[evt.transferID]
	if !found || lt.done || lt.finishAt != evt.Time() {
		return nil
	}

	m.syncProgress(evt.Time())
	lt.done = true

	m.Schedule(network.NewTransferArriveEvent(evt.Time(), m.net, lt.transfer))

	return nil
}

// syncProgress advances every live transfer by the time elapsed since the
// last state change, at the rate that was in effect during that interval.
func (m *SharedBandwidthModel) syncProgress(now sim.VTimeInSec) {
	elapsed := float64(now - m.lastSync)
	m.lastSync = now

	active := m.activeCount()
	if elapsed <= 0 || active == 0 {
		return
	}

	rate := m.bandwidth / float64(active)
	for _, lt := range m.live {
		if lt.done {
			continue
		}

		lt.remaining -= rate * elapsed
		if lt.remaining < 0 {
			lt.remaining = 0
		}
	}
}

func (m *SharedBandwidthModel) activeCount() int {
	n := 0
	for _, lt := range m.live {
		if !lt.done {
			n++
		}
	}
	return n
}

// rescheduleEarliestFinish recomputes each live transfer's expected finish
// under the current share and schedules an update event for the earliest.
func (m *SharedBandwidthModel) rescheduleEarliestFinish(now sim.VTimeInSec) {
	active := m.activeCount()
	if active == 0 {
		return
	}

	rate := m.bandwidth / float64(active)

	earliest := sim.VTimeInSec(math.Inf(1))
	var earliestID idgen.ID
	for id, lt := range m.live {
		if lt.done {
			continue
		}

		lt.finishAt = now + sim.VTimeInSec(lt.remaining/rate)
		if lt.finishAt < earliest {
			earliest = lt.finishAt
			earliestID = id
		}
	}

	m.Schedule(transferUpdateEvent{
		time:       earliest,
		handler:    m,
		transferID: earliestID,
	})
}
