package display

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("FSM", func() {
	var (
		mockCtrl *gomock.Controller
		screen   *MockDisplay
		fsm      *FSM
	)

	expectDraw := func(msg string) {
		gomock.InOrder(
			screen.EXPECT().Clear().Return(nil),
			screen.EXPECT().WriteString(MessageLine, msg).Return(nil),
		)
	}

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		screen = NewMockDisplay(mockCtrl)
		fsm = NewFSM(screen)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should start in Init without drawing", func() {
		Expect(fsm.State()).To(Equal(StateInit))
		Expect(fsm.Message()).To(BeEmpty())
	})

	It("should panic without a display", func() {
		Expect(func() { NewFSM(nil) }).To(Panic())
	})

	It("should show the empty message on the first step even with a package", func() {
		expectDraw(MessageEmpty)

		Expect(fsm.Step(true)).To(Succeed())

		Expect(fsm.State()).To(Equal(StateShowEmpty))
		Expect(fsm.Message()).To(Equal(MessageEmpty))
	})

	It("should follow the package signal after the first step", func() {
		expectDraw(MessageEmpty)
		Expect(fsm.Step(false)).To(Succeed())

		expectDraw(MessagePackage)
		Expect(fsm.Step(true)).To(Succeed())
		Expect(fsm.State()).To(Equal(StateShowPackage))

		expectDraw(MessageEmpty)
		Expect(fsm.Step(false)).To(Succeed())
		Expect(fsm.State()).To(Equal(StateShowEmpty))
	})

	It("should redraw on every step even without a change", func() {
		expectDraw(MessageEmpty)
		Expect(fsm.Step(false)).To(Succeed())

		screen.EXPECT().Clear().Return(nil).Times(3)
		screen.EXPECT().WriteString(MessageLine, MessagePackage).Return(nil).Times(3)

		for i := 0; i < 3; i++ {
			Expect(fsm.Step(true)).To(Succeed())
		}
	})

	It("should reset a corrupted state to Init without drawing", func() {
		fsm.state = State(42)

		Expect(fsm.Step(true)).To(Succeed())
		Expect(fsm.State()).To(Equal(StateInit))

		expectDraw(MessageEmpty)
		Expect(fsm.Step(true)).To(Succeed())
	})

	It("should report display failures but keep the new state", func() {
		screen.EXPECT().Clear().Return(errors.New("bus"))

		err := fsm.Step(false)

		Expect(err).To(MatchError(ContainSubstring("clear")))
		Expect(fsm.State()).To(Equal(StateShowEmpty))
		Expect(fsm.Message()).To(BeEmpty())
	})
})

var _ = Describe("Displays", func() {
	It("should record the screen content", func() {
		d := NewRecordingDisplay()
		f := NewFSM(d)

		Expect(f.Step(false)).To(Succeed())
		Expect(d.Line(MessageLine)).To(Equal(MessageEmpty))

		Expect(f.Step(true)).To(Succeed())
		Expect(d.Line(MessageLine)).To(Equal(MessagePackage))
		Expect(d.Clears()).To(Equal(2))
		Expect(d.Redraws()).To(Equal(2))
	})

	It("should print updates to a writer", func() {
		buf := &bytes.Buffer{}
		f := NewFSM(NewWriterDisplay(buf, "lcd "))

		Expect(f.Step(false)).To(Succeed())

		Expect(buf.String()).To(Equal("lcd [1] PakSafe is empty\n"))
	})
})
