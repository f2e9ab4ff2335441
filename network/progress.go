package network

import (
	"github.com/cloudnetsim/cloudnetsim/monitoring"
	"github.com/cloudnetsim/cloudnetsim/sim"
)

// A ProgressReporter is an engine hook that tracks transfers in flight on a
// monitor progress bar: requested transfers grow the total, started transfers
// count as in progress, and completed ones move to finished.
type ProgressReporter struct {
	bar *monitoring.ProgressBar
}

// NewProgressReporter creates a ProgressReporter publishing into the given
// monitor.
func NewProgressReporter(monitor *monitoring.Monitor) *ProgressReporter {
	return &ProgressReporter{
		bar: monitor.CreateProgressBar("transfers", 0),
	}
}

// Func advances the bar after each transfer lifecycle event.
func (r *ProgressReporter) Func(ctx sim.HookCtx) {
	if ctx.Pos != sim.HookPosAfterEvent {
		return
	}

	switch ctx.Item.(type) {
	case TransferRequestEvent:
		r.bar.IncrementTotal(1)
	case TransferStartEvent:
		r.bar.IncrementInProgress(1)
	case TransferCompletedEvent:
		r.bar.MoveInProgressToFinished(1)
	}
}
