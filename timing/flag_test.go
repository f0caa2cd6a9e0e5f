package timing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Flag", func() {
	var flag *Flag

	BeforeEach(func() {
		flag = &Flag{}
	})

	It("should start cleared", func() {
		Expect(flag.IsSet()).To(BeFalse())
		Expect(flag.TakeIfSet()).To(BeFalse())
	})

	It("should be taken exactly once", func() {
		flag.Set()

		Expect(flag.IsSet()).To(BeTrue())
		Expect(flag.TakeIfSet()).To(BeTrue())
		Expect(flag.TakeIfSet()).To(BeFalse())
	})

	It("should coalesce repeated sets", func() {
		flag.Set()
		flag.Set()
		flag.Set()

		Expect(flag.TakeIfSet()).To(BeTrue())
		Expect(flag.TakeIfSet()).To(BeFalse())
	})

	It("should drop a pending tick on clear", func() {
		flag.Set()
		flag.Clear()

		Expect(flag.IsSet()).To(BeFalse())
	})
})
