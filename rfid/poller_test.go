package rfid

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Poller", func() {
	var (
		mockCtrl    *gomock.Controller
		transceiver *MockTransceiver
		poller      *Poller
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		transceiver = NewMockTransceiver(mockCtrl)
		poller = NewPoller(transceiver)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should start idle with no tag", func() {
		Expect(poller.State()).To(Equal(StateIdle))
		Expect(poller.Tag()).To(Equal(NoTag))
	})

	It("should panic without a transceiver", func() {
		Expect(func() { NewPoller(nil) }).To(Panic())
	})

	It("should read the identifier when a single tag is present", func() {
		transceiver.EXPECT().WakeAndClassify().Return(ClassSingleTag, nil)
		transceiver.EXPECT().ReadIdentifier().Return(byte(0xD0), nil)

		next := poller.Poll(StateIdle)

		Expect(next).To(Equal(StateQuerying))
		Expect(poller.Tag()).To(Equal(Tag(0xD0)))
		Expect(poller.Err()).To(BeNil())
	})

	DescribeTable("should treat any other presence class as no tag",
		func(class byte) {
			transceiver.EXPECT().WakeAndClassify().Return(class, nil)

			poller.Poll(StateIdle)

			Expect(poller.Tag()).To(Equal(NoTag))
		},
		Entry("empty field", byte(0x00)),
		Entry("class below", byte(0x03)),
		Entry("class above", byte(0x05)),
		Entry("collision", byte(0x44)),
		Entry("all bits", byte(0xFF)),
	)

	It("should query again on every call", func() {
		gomock.InOrder(
			transceiver.EXPECT().WakeAndClassify().Return(ClassSingleTag, nil),
			transceiver.EXPECT().ReadIdentifier().Return(byte(0x1B), nil),
			transceiver.EXPECT().WakeAndClassify().Return(byte(0x00), nil),
		)

		Expect(poller.Poll(StateIdle)).To(Equal(StateQuerying))
		Expect(poller.Tag()).To(Equal(Tag(0x1B)))

		Expect(poller.Poll(StateIdle)).To(Equal(StateQuerying))
		Expect(poller.Tag()).To(Equal(NoTag))
	})

	It("should end idle with the tag cleared when triggered from querying", func() {
		transceiver.EXPECT().WakeAndClassify().Return(ClassSingleTag, nil)
		transceiver.EXPECT().ReadIdentifier().Return(byte(0xD0), nil)

		Expect(poller.Poll(StateQuerying)).To(Equal(StateIdle))
		Expect(poller.Tag()).To(Equal(NoTag))
	})

	It("should report no tag when waking fails", func() {
		transceiver.EXPECT().WakeAndClassify().Return(byte(0), errors.New("no field"))

		poller.Poll(StateIdle)

		Expect(poller.Tag()).To(Equal(NoTag))
		Expect(poller.Err()).To(MatchError(ContainSubstring("no field")))
	})

	It("should report no tag when reading the identifier fails", func() {
		transceiver.EXPECT().WakeAndClassify().Return(ClassSingleTag, nil)
		transceiver.EXPECT().ReadIdentifier().Return(byte(0xD0), errors.New("crc"))

		poller.Poll(StateIdle)

		Expect(poller.Tag()).To(Equal(NoTag))
		Expect(poller.Err()).To(HaveOccurred())
	})
})

var _ = Describe("ScriptedTransceiver", func() {
	It("should play back tags one wake at a time", func() {
		s := NewScriptedTransceiver(0xD0, NoTag, 0x1B)
		p := NewPoller(s)

		p.Poll(StateIdle)
		Expect(p.Tag()).To(Equal(Tag(0xD0)))

		p.Poll(StateIdle)
		Expect(p.Tag()).To(Equal(NoTag))

		p.Poll(StateIdle)
		Expect(p.Tag()).To(Equal(Tag(0x1B)))

		p.Poll(StateIdle)
		Expect(p.Tag()).To(Equal(NoTag))
		Expect(s.Wakes()).To(Equal(4))
	})

	It("should accept tags presented later", func() {
		s := NewScriptedTransceiver()
		s.Present(0x42)

		class, err := s.WakeAndClassify()
		Expect(err).NotTo(HaveOccurred())
		Expect(class).To(Equal(ClassSingleTag))

		id, err := s.ReadIdentifier()
		Expect(err).NotTo(HaveOccurred())
		Expect(id).To(Equal(byte(0x42)))
	})
})

var _ = Describe("Silent", func() {
	It("should never produce a tag", func() {
		p := NewPoller(Silent{})

		p.Poll(StateIdle)

		Expect(p.Tag()).To(Equal(NoTag))
		Expect(p.Err()).To(BeNil())
	})
})

var _ = Describe("Field", func() {
	It("should keep reporting the held tag until it changes", func() {
		f := NewField()
		p := NewPoller(f)

		p.Poll(StateIdle)
		Expect(p.Tag()).To(Equal(NoTag))

		f.Hold(0xD0)
		p.Poll(StateIdle)
		Expect(p.Tag()).To(Equal(Tag(0xD0)))
		p.Poll(StateIdle)
		Expect(p.Tag()).To(Equal(Tag(0xD0)))

		f.Hold(NoTag)
		p.Poll(StateIdle)
		Expect(p.Tag()).To(Equal(NoTag))
		Expect(f.Wakes()).To(Equal(4))
	})
})
