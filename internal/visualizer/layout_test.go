package visualizer_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/visualizer"
)

var _ = Describe("BarRect", func() {
	DescribeTable("placement",
		func(i, value, n, width, height, headroom int, want visualizer.Rect) {
			Expect(visualizer.BarRect(i, value, n, width, height, headroom)).To(Equal(want))
		},
		Entry("tallest of 100", 0, 100, 100, 1000, 600, 40, visualizer.Rect{X: 0, Y: 40, W: 10, H: 560}),
		Entry("shortest of 100", 99, 1, 100, 1000, 600, 40, visualizer.Rect{X: 990, Y: 595, W: 10, H: 5}),
		Entry("uneven split", 2, 3, 3, 1000, 600, 0, visualizer.Rect{X: 666, Y: 0, W: 334, H: 600}),
		Entry("narrower than n", 5, 10, 10, 5, 100, 0, visualizer.Rect{X: 2, Y: 0, W: 1, H: 100}),
		Entry("headroom exceeds height", 0, 1, 1, 100, 20, 40, visualizer.Rect{X: 0, Y: 20, W: 100, H: 0}),
		Entry("no bars", 0, 1, 0, 100, 100, 0, visualizer.Rect{}),
	)

	It("covers the full width without gaps", func() {
		n, width := 7, 1000
		end := int32(0)
		for i := 0; i < n; i++ {
			r := visualizer.BarRect(i, i+1, n, width, 600, 40)
			Expect(r.X).To(Equal(end))
			end = r.X + r.W
		}
		Expect(end).To(Equal(int32(width)))
	})
})
