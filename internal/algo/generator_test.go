package algo_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mazeview/internal/algo"
)

var _ = Describe("Generator", func() {
	Describe("ring stepping", func() {
		It("seeds the ratio from the shared value when entering a paired pick", func() {
			g := algo.Generator{Kind: algo.GrowingTree, Pick: algo.PickRandom, Ratio: 0.9}
			g.Right(0.3)
			Expect(g.Pick).To(Equal(algo.PickNewestMiddle))
			Expect(g.Ratio).To(Equal(0.3))
		})

		It("keeps the ratio while moving between paired picks", func() {
			g := algo.Generator{Kind: algo.GrowingTree, Pick: algo.PickNewestMiddle, Ratio: 0.7}
			g.Right(0.2)
			g.Right(0.2)
			Expect(g.Pick).To(Equal(algo.PickNewestRandom))
			Expect(g.Ratio).To(Equal(0.7))
		})

		It("seeds the ratio when wrapping left into Oldest-Random", func() {
			g := algo.Generator{Kind: algo.GrowingTree}
			g.Left(0.25)
			Expect(g.Pick).To(Equal(algo.PickOldestRandom))
			Expect(g.Ratio).To(Equal(0.25))
		})

		It("cycles the bias of Binary-Tree", func() {
			g := algo.Generator{Kind: algo.BinaryTree}
			g.Right(0)
			Expect(g.Bias).To(Equal(algo.NorthEast))
			g.Left(0)
			g.Left(0)
			Expect(g.Bias).To(Equal(algo.SouthEast))
		})

		It("leaves parameterless generators alone", func() {
			g := algo.Generator{Kind: algo.Wilson}
			g.Right(0.4)
			g.Left(0.4)
			Expect(g).To(Equal(algo.Generator{Kind: algo.Wilson}))
		})
	})

	Describe("names", func() {
		DescribeTable("display and token forms",
			func(g algo.Generator, display, token string) {
				Expect(g.DisplayName()).To(Equal(display))
				Expect(g.Token()).To(Equal(token))
			},
			Entry("plain", algo.Generator{Kind: algo.RecursiveBacktracking}, "Recursive-Backtracking", "Recursive-Backtracking"),
			Entry("growing tree", algo.Generator{Kind: algo.GrowingTree, Pick: algo.PickOldest}, "Growing-Tree Oldest", "Growing-Tree Oldest"),
			Entry("paired pick", algo.Generator{Kind: algo.GrowingTree, Pick: algo.PickNewestMiddle, Ratio: 0.5}, "Growing-Tree Newest-Middle 0.50", "Growing-Tree NewestMiddle 0.50"),
			Entry("oldest random", algo.Generator{Kind: algo.GrowingTree, Pick: algo.PickOldestRandom, Ratio: 0.3}, "Growing-Tree Oldest-Random 0.30", "Growing-Tree OldestRandom 0.30"),
			Entry("middle random", algo.Generator{Kind: algo.GrowingTree, Pick: algo.PickMiddleRandom, Ratio: 1}, "Growing-Tree Middle-Random 1.00", "Growing-Tree MiddleRandom 1.00"),
			Entry("binary tree", algo.Generator{Kind: algo.BinaryTree, Bias: algo.SouthEast}, "Binary-Tree South-East", "Binary-Tree SouthEast"),
			Entry("hunt and kill", algo.Generator{Kind: algo.HuntAndKill}, "Hunt-and-Kill", "Hunt-and-Kill"),
		)

		It("splits tokens into arguments", func() {
			g := algo.Generator{Kind: algo.GrowingTree, Pick: algo.PickNewestOldest, Ratio: 0.4}
			Expect(g.Args()).To(Equal([]string{"Growing-Tree", "NewestOldest", "0.40"}))
		})
	})

	Describe("EraseRatio", func() {
		It("divides the ratio by ten", func() {
			g := algo.Generator{Kind: algo.GrowingTree, Pick: algo.PickMiddleOldest, Ratio: 0.5}
			g.EraseRatio()
			Expect(g.Ratio).To(BeNumerically("~", 0.05, 1e-12))
		})

		It("ignores generators without a ratio", func() {
			g := algo.Generator{Kind: algo.GrowingTree, Pick: algo.PickRandom, Ratio: 0.5}
			g.EraseRatio()
			Expect(g.Ratio).To(Equal(0.5))
		})
	})

	Describe("ParseGenerator", func() {
		It("round-trips every token", func() {
			for _, k := range algo.Kinds() {
				g := algo.Generator{Kind: k}
				if k == algo.GrowingTree {
					g.Pick, g.Ratio = algo.PickNewestRandom, 0.35
				}
				if k == algo.BinaryTree {
					g.Bias = algo.NorthEast
				}
				parsed, err := algo.ParseGenerator(g.Token())
				Expect(err).NotTo(HaveOccurred())
				Expect(parsed.Token()).To(Equal(g.Token()))
			}
		})

		It("defaults a missing ratio", func() {
			g, err := algo.ParseGenerator("growing-tree newest-middle")
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Ratio).To(Equal(0.5))
		})

		It("clamps the ratio and rejects NaN", func() {
			g, err := algo.ParseGenerator("Growing-Tree NewestMiddle 7")
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Ratio).To(Equal(1.0))
			g, err = algo.ParseGenerator("Growing-Tree OldestRandom -2")
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Ratio).To(Equal(0.0))
			_, err = algo.ParseGenerator("Growing-Tree NewestMiddle NaN")
			Expect(err).To(MatchError(algo.ErrUnknown))
		})

		It("rejects unknown names", func() {
			_, err := algo.ParseGenerator("Labyrinth")
			Expect(err).To(MatchError(algo.ErrUnknown))
			_, err = algo.ParseGenerator("Growing-Tree Sideways")
			Expect(err).To(MatchError(algo.ErrUnknown))
			_, err = algo.ParseGenerator("")
			Expect(err).To(MatchError(algo.ErrUnknown))
		})
	})
})

var _ = Describe("Solver", func() {
	It("lists the four solvers", func() {
		names := []string{}
		for _, s := range algo.Solvers() {
			names = append(names, s.DisplayName())
		}
		Expect(names).To(Equal([]string{"Depth-First", "Breadth-First", "Dijkstra", "A-Star"}))
	})

	It("parses tokens case-insensitively", func() {
		s, err := algo.ParseSolver("a-star")
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(algo.AStar))

		_, err = algo.ParseSolver("Greedy")
		Expect(err).To(MatchError(algo.ErrUnknown))
	})
})
