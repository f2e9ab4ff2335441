package sim

import (
	"reflect"

	"github.com/sirupsen/logrus"
)

// EventLogger is a hook that prints the information of every triggered
// event.
type EventLogger struct {
	Logger *logrus.Logger
}

// NewEventLogger returns a new EventLogger that writes into the given
// logger.
func NewEventLogger(logger *logrus.Logger) *EventLogger {
	h := new(EventLogger)
	h.Logger = logger
	return h
}

// Func writes the event information into the logger.
func (h *EventLogger) Func(ctx HookCtx) {
	if ctx.Pos != HookPosBeforeEvent {
		return
	}

	evt, ok := ctx.Item.(Event)
	if !ok {
		return
	}

	actor, ok := evt.Handler().(Actor)
	if ok {
		h.Logger.Infof("%.10f, %s -> %s",
			evt.Time(), reflect.TypeOf(evt), actor.Name())
	} else {
		h.Logger.Infof("%.10f, %s", evt.Time(), reflect.TypeOf(evt))
	}
}
