package sim

import (
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("IDGenerator", func() {
	It("should generate sequential numeric IDs", func() {
		g := &sequentialIDGenerator{}

		Expect(g.Generate()).To(Equal("1"))
		Expect(g.Generate()).To(Equal("2"))
		Expect(g.Generate()).To(Equal("3"))
	})

	It("should generate unique xid-based IDs in parallel mode", func() {
		g := parallelIDGenerator{}

		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id := g.Generate()
			Expect(id).To(HaveLen(20))
			Expect(seen[id]).To(BeFalse())
			seen[id] = true
		}
	})

	It("should generate increasing IDs through the global generator", func() {
		first, err := strconv.ParseUint(GetIDGenerator().Generate(), 10, 64)
		Expect(err).To(BeNil())

		second, err := strconv.ParseUint(GetIDGenerator().Generate(), 10, 64)
		Expect(err).To(BeNil())

		Expect(second).To(BeNumerically(">", first))
	})

	It("should refuse to change the generator type after use", func() {
		GetIDGenerator()

		Expect(func() { UseSequentialIDGenerator() }).To(Panic())
		Expect(func() { UseParallelIDGenerator() }).To(Panic())
	})
})
