package sim

import (
	"bytes"

	gomock "go.uber.org/mock/gomock"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

type namedHandler struct {
	name ActorID
}

func (h namedHandler) Name() ActorID {
	return h.name
}

func (h namedHandler) Handle(Event) error {
	return nil
}

var _ = Describe("EventLogger", func() {
	var (
		mockCtrl *gomock.Controller
		buf      *bytes.Buffer
		logger   *logrus.Logger
		hook     *EventLogger
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())

		buf = &bytes.Buffer{}
		logger = logrus.New()
		logger.SetOutput(buf)

		hook = NewEventLogger(logger)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should log the event type before the event triggers", func() {
		evt := NewMockEvent(mockCtrl)
		evt.EXPECT().Time().Return(VTimeInSec(1.5)).AnyTimes()
		evt.EXPECT().Handler().Return(NewMockHandler(mockCtrl)).AnyTimes()

		hook.Func(HookCtx{Pos: HookPosBeforeEvent, Item: evt})

		Expect(buf.String()).To(ContainSubstring("MockEvent"))
		Expect(buf.String()).To(ContainSubstring("1.5"))
	})

	It("should log the actor name when the handler is an actor", func() {
		evt := NewMockEvent(mockCtrl)
		evt.EXPECT().Time().Return(VTimeInSec(2.0)).AnyTimes()
		evt.EXPECT().
			Handler().
			Return(namedHandler{name: "worker-1"}).
			AnyTimes()

		hook.Func(HookCtx{Pos: HookPosBeforeEvent, Item: evt})

		Expect(buf.String()).To(ContainSubstring("worker-1"))
	})

	It("should stay silent after the event triggers", func() {
		evt := NewMockEvent(mockCtrl)
		evt.EXPECT().Time().Return(VTimeInSec(1.5)).AnyTimes()
		evt.EXPECT().Handler().Return(NewMockHandler(mockCtrl)).AnyTimes()

		hook.Func(HookCtx{Pos: HookPosAfterEvent, Item: evt})

		Expect(buf.String()).To(BeEmpty())
	})

	It("should ignore non-event items", func() {
		hook.Func(HookCtx{Pos: HookPosBeforeEvent, Item: "not an event"})

		Expect(buf.String()).To(BeEmpty())
	})
})
