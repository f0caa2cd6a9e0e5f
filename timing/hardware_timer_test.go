package timing

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("HardwareTimer", func() {
	var timer *HardwareTimer

	BeforeEach(func() {
		timer = NewHardwareTimer()
	})

	AfterEach(func() {
		timer.Stop()
	})

	It("should not start before being armed", func() {
		Expect(timer.Start()).To(MatchError(ErrNotArmed))
	})

	It("should reject a zero period", func() {
		Expect(timer.Arm(0)).To(MatchError(ErrZeroPeriod))
	})

	It("should set the elapsed flag periodically", func() {
		Expect(timer.Arm(2)).To(Succeed())
		Expect(timer.Start()).To(Succeed())

		for i := 0; i < 3; i++ {
			Eventually(timer.Elapsed().TakeIfSet).
				WithTimeout(time.Second).
				WithPolling(time.Millisecond).
				Should(BeTrue())
		}
	})

	It("should refuse a second start", func() {
		Expect(timer.Arm(5)).To(Succeed())
		Expect(timer.Start()).To(Succeed())
		Expect(timer.Start()).To(MatchError(ErrTimerRunning))
	})

	It("should stay quiet after Stop", func() {
		Expect(timer.Arm(1)).To(Succeed())
		Expect(timer.Start()).To(Succeed())
		timer.Stop()
		timer.Elapsed().Clear()

		Consistently(timer.Elapsed().IsSet).
			WithTimeout(20 * time.Millisecond).
			Should(BeFalse())
	})

	It("should allow a restart after Stop", func() {
		Expect(timer.Arm(1)).To(Succeed())
		Expect(timer.Start()).To(Succeed())
		timer.Stop()
		timer.Stop()

		Expect(timer.Start()).To(Succeed())
	})
})
