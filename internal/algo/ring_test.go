package algo_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mazeview/internal/algo"
)

var _ = Describe("Growing-Tree picks", func() {
	It("returns to Newest after ten steps right", func() {
		p := algo.PickNewest
		for i := 0; i < 10; i++ {
			p = p.Next()
		}
		Expect(p).To(Equal(algo.PickNewest))
	})

	It("visits the picks in ring order", func() {
		order := []algo.Pick{
			algo.PickNewest, algo.PickMiddle, algo.PickOldest, algo.PickRandom,
			algo.PickNewestMiddle, algo.PickNewestOldest, algo.PickNewestRandom,
			algo.PickMiddleOldest, algo.PickMiddleRandom, algo.PickOldestRandom,
		}
		p := algo.PickNewest
		for i, want := range order {
			Expect(p).To(Equal(want), "position %d", i)
			p = p.Next()
		}
	})

	It("wraps left from Newest to Oldest-Random", func() {
		Expect(algo.PickNewest.Prev()).To(Equal(algo.PickOldestRandom))
	})

	It("undoes Next with Prev", func() {
		for p := algo.PickNewest; p <= algo.PickOldestRandom; p++ {
			Expect(p.Next().Prev()).To(Equal(p))
		}
	})

	It("marks only the paired picks as ratio-bearing", func() {
		Expect(algo.PickRandom.HasRatio()).To(BeFalse())
		Expect(algo.PickNewest.HasRatio()).To(BeFalse())
		Expect(algo.PickNewestMiddle.HasRatio()).To(BeTrue())
		Expect(algo.PickOldestRandom.HasRatio()).To(BeTrue())
	})
})

var _ = Describe("Binary-Tree bias", func() {
	It("returns to North-West after four steps right", func() {
		b := algo.NorthWest
		for i := 0; i < 4; i++ {
			b = b.Next()
		}
		Expect(b).To(Equal(algo.NorthWest))
	})

	It("wraps left from North-West to South-East", func() {
		Expect(algo.NorthWest.Prev()).To(Equal(algo.SouthEast))
	})

	It("names each corner", func() {
		Expect(algo.NorthEast.String()).To(Equal("North-East"))
		Expect(algo.SouthWest.Token()).To(Equal("SouthWest"))
	})
})
