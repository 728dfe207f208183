package algo_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mazeview/internal/algo"
	"github.com/san-kum/mazeview/internal/dims"
)

var _ = Describe("Selector", func() {
	var (
		d   *dims.Dimensions
		sel *algo.Selector
	)

	highlightGrowingTree := func() {
		for sel.GeneratorCursor() < int(algo.GrowingTree) {
			sel.Down()
		}
	}

	BeforeEach(func() {
		d = dims.New()
		sel = algo.NewSelector(d)
	})

	It("starts on the first generator and solver", func() {
		Expect(sel.Focus()).To(Equal(algo.FocusGenerators))
		Expect(sel.Generator().Kind).To(Equal(algo.Kruskal))
		Expect(sel.Solver()).To(Equal(algo.DepthFirst))
		Expect(sel.Generators()).To(HaveLen(11))
		Expect(sel.Solvers()).To(HaveLen(4))
	})

	Describe("cursor movement", func() {
		It("stops at the top of the list", func() {
			sel.Up()
			Expect(sel.Cursor()).To(Equal(0))
		})

		It("stops at the bottom of the list", func() {
			for i := 0; i < 20; i++ {
				sel.Down()
			}
			Expect(sel.Cursor()).To(Equal(int(algo.BinaryTree)))
		})

		It("moves each list independently", func() {
			sel.Down()
			sel.Toggle()
			Expect(sel.Focus()).To(Equal(algo.FocusSolvers))
			sel.Down()
			sel.Down()
			sel.Down()
			sel.Down()
			Expect(sel.SolverCursor()).To(Equal(int(algo.AStar)))
			Expect(sel.GeneratorCursor()).To(Equal(1))
		})
	})

	Describe("parameter rings", func() {
		It("keeps each entry's state when moving away and back", func() {
			highlightGrowingTree()
			sel.Right()
			sel.Right()
			sel.Down()
			sel.Up()
			Expect(sel.Generators()[algo.GrowingTree].Pick).To(Equal(algo.PickOldest))
		})

		It("seeds a paired pick from the shared ratio", func() {
			d.SetRatio(0.8)
			highlightGrowingTree()
			sel.Left()
			g := sel.Generators()[algo.GrowingTree]
			Expect(g.Pick).To(Equal(algo.PickOldestRandom))
			Expect(g.Ratio).To(Equal(0.8))
		})

		It("ignores left and right on the solver list", func() {
			sel.Toggle()
			sel.Right()
			sel.Left()
			Expect(sel.Generators()[0]).To(Equal(algo.Generator{Kind: algo.Kruskal, Ratio: dims.DefaultRatio}))
		})
	})

	Describe("ratio entry", func() {
		BeforeEach(func() {
			highlightGrowingTree()
			for i := 0; i < 4; i++ {
				sel.Right()
			}
		})

		It("accumulates typed digits as a percentage", func() {
			Expect(sel.Digit(7)).To(BeTrue())
			Expect(sel.Digit(5)).To(BeTrue())
			Expect(d.Ratio()).To(BeNumerically("~", 0.75, 1e-9))
			Expect(sel.Generators()[algo.GrowingTree].DisplayName()).To(Equal("Growing-Tree Newest-Middle 0.75"))
		})

		It("restarts when the value passes 1.00", func() {
			sel.Digit(5)
			sel.Digit(5)
			sel.Digit(3)
			Expect(d.Ratio()).To(BeNumerically("~", 0.03, 1e-9))
		})

		It("accepts exactly 1.00", func() {
			sel.Digit(1)
			sel.Digit(0)
			sel.Digit(0)
			Expect(d.Ratio()).To(Equal(1.0))
		})

		It("shifts the ratio on backspace", func() {
			sel.Digit(5)
			sel.Digit(0)
			Expect(sel.Backspace()).To(BeTrue())
			Expect(sel.Generators()[algo.GrowingTree].Ratio).To(BeNumerically("~", 0.05, 1e-9))
			Expect(d.Ratio()).To(BeNumerically("~", 0.05, 1e-9))
		})

		It("restarts entry after the highlight moves", func() {
			sel.Digit(4)
			sel.Down()
			sel.Up()
			sel.Digit(9)
			Expect(d.Ratio()).To(BeNumerically("~", 0.09, 1e-9))
		})

		It("refuses digits on entries without a ratio", func() {
			sel.Down()
			Expect(sel.Digit(3)).To(BeFalse())
			Expect(sel.Backspace()).To(BeFalse())
			Expect(d.Ratio()).To(Equal(dims.DefaultRatio))
		})
	})

	Describe("activation", func() {
		It("confirms the highlighted pair", func() {
			highlightGrowingTree()
			sel.Right()
			sel.Toggle()
			sel.Down()
			sel.Down()
			sel.Confirm()
			Expect(sel.Generator().DisplayName()).To(Equal("Growing-Tree Middle"))
			Expect(sel.Solver()).To(Equal(algo.Dijkstra))
		})

		It("activates a parsed generator", func() {
			g, err := algo.ParseGenerator("Growing-Tree MiddleOldest 0.25")
			Expect(err).NotTo(HaveOccurred())
			sel.SetGenerator(g)
			sel.SetSolver(algo.BreadthFirst)
			Expect(sel.GeneratorCursor()).To(Equal(int(algo.GrowingTree)))
			Expect(sel.SolverCursor()).To(Equal(int(algo.BreadthFirst)))
			Expect(sel.Generator()).To(Equal(g))
			Expect(d.Ratio()).To(Equal(0.25))
		})
	})
})
