// Package networkmodel provides the reference implementations of the
// network-model contract.
package networkmodel

import (
	"github.com/sirupsen/logrus"

	"github.com/cloudnetsim/cloudnetsim/network"
	"github.com/cloudnetsim/cloudnetsim/sim"
)

// A ConstantBandwidthModel gives every transfer the full link bandwidth,
// regardless of how many transfers are in flight. Latency is fixed.
type ConstantBandwidthModel struct {
	bandwidth float64
	latency   sim.VTimeInSec
}

// NewConstantBandwidthModel creates a ConstantBandwidthModel. Bandwidth is
// in size units per second and must be positive.
func NewConstantBandwidthModel(
	bandwidth float64,
	latency sim.VTimeInSec,
) *ConstantBandwidthModel {
	if bandwidth <= 0 {
		logrus.Panicf("bandwidth must be positive, got %f", bandwidth)
	}

	return &ConstantBandwidthModel{
		bandwidth: bandwidth,
		latency:   latency,
	}
}

// Latency returns the fixed propagation delay of one hop.
func (m *ConstantBandwidthModel) Latency() sim.VTimeInSec {
	return m.latency
}

// BeginTransfer schedules the arrival of the transfer after
// size / bandwidth. A zero-size transfer arrives at the current time, still
// through an event.
func (m *ConstantBandwidthModel) BeginTransfer(
	t network.Transfer,
	ctx network.Context,
) {
	duration := sim.VTimeInSec(t.Size / m.bandwidth)

	ctx.Schedule(network.NewTransferArriveEvent(
		ctx.CurrentTime()+duration, ctx.Network, t))
}

// EndTransfer is a no-op; the model reserves no shared capacity.
func (m *ConstantBandwidthModel) EndTransfer(
	t network.Transfer,
	ctx network.Context,
) {
}
