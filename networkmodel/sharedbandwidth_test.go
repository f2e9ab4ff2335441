package networkmodel

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"

	"github.com/cloudnetsim/cloudnetsim/network"
	"github.com/cloudnetsim/cloudnetsim/sim"
)

var _ = Describe("SharedBandwidthModel", func() {
	var (
		mockCtrl       *gomock.Controller
		eventScheduler *MockEventScheduler
		timeTeller     *MockTimeTeller
		model          *SharedBandwidthModel
		ctx            network.Context
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		eventScheduler = NewMockEventScheduler(mockCtrl)
		timeTeller = NewMockTimeTeller(mockCtrl)
		model = NewSharedBandwidthModel(eventScheduler, timeTeller, 10, 0.5)
		ctx = network.Context{
			EventScheduler: eventScheduler,
			TimeTeller:     timeTeller,
			Network:        nopHandler{},
		}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should give a lone transfer the full bandwidth", func() {
		transfer := network.Transfer{ID: 1, Src: "a", Dst: "b", Size: 100}

		timeTeller.EXPECT().CurrentTime().Return(sim.VTimeInSec(0.0))
		eventScheduler.EXPECT().Schedule(transferUpdateEvent{
			time:       10.0,
			handler:    model,
			transferID: 1,
		})

		model.BeginTransfer(transfer, ctx)
	})

	It("should re-divide the capacity when a second transfer begins", func() {
		t1 := network.Transfer{ID: 1, Src: "a", Dst: "b", Size: 100}
		t2 := network.Transfer{ID: 2, Src: "c", Dst: "d", Size: 100}

		timeTeller.EXPECT().CurrentTime().Return(sim.VTimeInSec(0.0))
		eventScheduler.EXPECT().Schedule(transferUpdateEvent{
			time:       10.0,
			handler:    model,
			transferID: 1,
		})
		model.BeginTransfer(t1, ctx)

		// At time 5, t1 has 50 units left. Sharing halves both rates, so t1
		// now finishes at 15 and t2 at 25.
		timeTeller.EXPECT().CurrentTime().Return(sim.VTimeInSec(5.0))
		eventScheduler.EXPECT().Schedule(transferUpdateEvent{
			time:       15.0,
			handler:    model,
			transferID: 1,
		})
		model.BeginTransfer(t2, ctx)
	})

	It("should turn a current update event into an arrival", func() {
		t1 := network.Transfer{ID: 1, Src: "a", Dst: "b", Size: 100}

		timeTeller.EXPECT().CurrentTime().Return(sim.VTimeInSec(0.0))
		eventScheduler.EXPECT().Schedule(gomock.Any())
		model.BeginTransfer(t1, ctx)

		eventScheduler.EXPECT().Schedule(gomock.Any()).Do(func(e sim.Event) {
			arrival := e.(network.TransferArriveEvent)
			Expect(arrival.Time()).To(Equal(sim.VTimeInSec(10.0)))
			Expect(arrival.Transfer).To(Equal(t1))
		})

		err := model.Handle(transferUpdateEvent{
			time:       10.0,
			handler:    model,
			transferID: 1,
		})
		Expect(err).To(BeNil())
	})

	It("should ignore a superseded update event", func() {
		t1 := network.Transfer{ID: 1, Src: "a", Dst: "b", Size: 100}
		t2 := network.Transfer{ID: 2, Src: "c", Dst: "d", Size: 100}

		timeTeller.EXPECT().CurrentTime().Return(sim.VTimeInSec(0.0))
		eventScheduler.EXPECT().Schedule(gomock.Any())
		model.BeginTransfer(t1, ctx)

		timeTeller.EXPECT().CurrentTime().Return(sim.VTimeInSec(5.0))
		eventScheduler.EXPECT().Schedule(gomock.Any())
		model.BeginTransfer(t2, ctx)

		// The update scheduled for time 10 was superseded by the reschedule
		// at time 5; nothing may be scheduled when it fires.
		err := model.Handle(transferUpdateEvent{
			time:       10.0,
			handler:    model,
			transferID: 1,
		})
		Expect(err).To(BeNil())
	})

	It("should speed up the survivor when a transfer ends", func() {
		t1 := network.Transfer{ID: 1, Src: "a", Dst: "b", Size: 100}
		t2 := network.Transfer{ID: 2, Src: "c", Dst: "d", Size: 150}

		timeTeller.EXPECT().CurrentTime().Return(sim.VTimeInSec(0.0)).Times(2)
		eventScheduler.EXPECT().Schedule(gomock.Any()).Times(2)
		model.BeginTransfer(t1, ctx)
		model.BeginTransfer(t2, ctx)

		// Both share 5 units/s. t1 finishes at 20; by then t2 has 50 units
		// left and the full bandwidth, so it finishes at 25.
		eventScheduler.EXPECT().Schedule(gomock.Any()).Do(func(e sim.Event) {
			arrival := e.(network.TransferArriveEvent)
			Expect(arrival.Transfer).To(Equal(t1))
		})
		err := model.Handle(transferUpdateEvent{
			time:       20.0,
			handler:    model,
			transferID: 1,
		})
		Expect(err).To(BeNil())

		timeTeller.EXPECT().CurrentTime().Return(sim.VTimeInSec(20.0))
		eventScheduler.EXPECT().Schedule(transferUpdateEvent{
			time:       25.0,
			handler:    model,
			transferID: 2,
		})
		model.EndTransfer(t1, ctx)
	})

	It("should run a zero-size transfer through the full event sequence", func() {
		transfer := network.Transfer{ID: 3, Src: "a", Dst: "b", Size: 0}

		timeTeller.EXPECT().CurrentTime().Return(sim.VTimeInSec(4.0))
		eventScheduler.EXPECT().Schedule(transferUpdateEvent{
			time:       4.0,
			handler:    model,
			transferID: 3,
		})
		model.BeginTransfer(transfer, ctx)

		eventScheduler.EXPECT().Schedule(gomock.Any()).Do(func(e sim.Event) {
			arrival := e.(network.TransferArriveEvent)
			Expect(arrival.Time()).To(Equal(sim.VTimeInSec(4.0)))
			Expect(arrival.Transfer).To(Equal(transfer))
		})
		err := model.Handle(transferUpdateEvent{
			time:       4.0,
			handler:    model,
			transferID: 3,
		})
		Expect(err).To(BeNil())
	})
})
