package timing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ManualTimer", func() {
	var timer *ManualTimer

	BeforeEach(func() {
		timer = NewManualTimer()
	})

	It("should reject a zero period", func() {
		Expect(timer.Arm(0)).To(MatchError(ErrZeroPeriod))
	})

	It("should not start before being armed", func() {
		Expect(timer.Start()).To(MatchError(ErrNotArmed))
	})

	It("should not start twice", func() {
		Expect(timer.Arm(10)).To(Succeed())
		Expect(timer.Start()).To(Succeed())
		Expect(timer.Start()).To(MatchError(ErrTimerRunning))
	})

	It("should ignore interrupts while stopped", func() {
		Expect(timer.Arm(1)).To(Succeed())

		Expect(timer.Interrupt()).To(BeFalse())
		Expect(timer.Elapsed().IsSet()).To(BeFalse())
		Expect(timer.Interrupts()).To(BeZero())
	})

	Context("when armed and started", func() {
		BeforeEach(func() {
			Expect(timer.Arm(10)).To(Succeed())
			Expect(timer.Start()).To(Succeed())
		})

		It("should set the flag after exactly one period", func() {
			Expect(timer.Advance(9)).To(Equal(0))
			Expect(timer.Elapsed().IsSet()).To(BeFalse())

			Expect(timer.Interrupt()).To(BeTrue())
			Expect(timer.Elapsed().TakeIfSet()).To(BeTrue())
		})

		It("should reload the countdown after firing", func() {
			Expect(timer.AdvancePeriod()).To(Equal(1))
			Expect(timer.Elapsed().TakeIfSet()).To(BeTrue())

			Expect(timer.Advance(9)).To(Equal(0))
			Expect(timer.Interrupt()).To(BeTrue())
		})

		It("should coalesce ticks that were not taken", func() {
			Expect(timer.Advance(30)).To(Equal(3))

			Expect(timer.Elapsed().TakeIfSet()).To(BeTrue())
			Expect(timer.Elapsed().TakeIfSet()).To(BeFalse())
		})

		It("should restart the countdown when re-armed", func() {
			timer.Advance(7)
			Expect(timer.Arm(5)).To(Succeed())

			Expect(timer.Advance(4)).To(Equal(0))
			Expect(timer.Interrupt()).To(BeTrue())
		})

		It("should stop delivering after Stop", func() {
			timer.Stop()

			Expect(timer.Advance(20)).To(Equal(0))
			Expect(timer.Interrupts()).To(BeZero())
		})
	})
})
