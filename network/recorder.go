package network

import (
	"github.com/cloudnetsim/cloudnetsim/datarecording"
	"github.com/cloudnetsim/cloudnetsim/sim"
)

const (
	messageTableName  = "message_deliveries"
	transferTableName = "transfer_completions"
)

type messageDeliveryRow struct {
	Time      float64
	MessageID uint64
	Src       string
	Dst       string
}

type transferCompletionRow struct {
	Time       float64
	TransferID uint64
	Src        string
	Dst        string
	Size       float64
	NotifyDst  string
}

// A TrafficRecorder is an engine hook that observes message-delivery and
// transfer-completion events and stores one row per event. The network actor
// itself keeps no history; this hook is the collaborator that does.
type TrafficRecorder struct {
	recorder datarecording.DataRecorder
}

// NewTrafficRecorder creates a TrafficRecorder writing into the given
// recorder.
func NewTrafficRecorder(recorder datarecording.DataRecorder) *TrafficRecorder {
	recorder.CreateTable(messageTableName, messageDeliveryRow{})
	recorder.CreateTable(transferTableName, transferCompletionRow{})

	return &TrafficRecorder{recorder: recorder}
}

// Func records delivery and completion events after they are handled.
func (r *TrafficRecorder) Func(ctx sim.HookCtx) {
	if ctx.Pos != sim.HookPosAfterEvent {
		return
	}

	switch e := ctx.Item.(type) {
	case MessageDeliveryEvent:
		r.recorder.InsertData(messageTableName, messageDeliveryRow{
			Time:      float64(e.Time()),
			MessageID: uint64(e.Message.ID),
			Src:       string(e.Message.Src),
			Dst:       string(e.Message.Dst),
		})
	case TransferCompletedEvent:
		r.recorder.InsertData(transferTableName, transferCompletionRow{
			Time:       float64(e.Time()),
			TransferID: uint64(e.Transfer.ID),
			Src:        string(e.Transfer.Src),
			Dst:        string(e.Transfer.Dst),
			Size:       e.Transfer.Size,
			NotifyDst:  string(e.Transfer.NotifyDst),
		})
	}
}
