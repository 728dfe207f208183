package session_test

import (
	"context"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mazeview/internal/algo"
	"github.com/san-kum/mazeview/internal/config"
	"github.com/san-kum/mazeview/internal/maze"
	"github.com/san-kum/mazeview/internal/playback"
	"github.com/san-kum/mazeview/internal/render"
	"github.com/san-kum/mazeview/internal/session"
)

var steps = []string{
	"#####\n# # #\n#####\n# # #\n#####",
	"#####\n#s  #\n### #\n# #x#\n#####",
	"#####\n#s..#\n###.#\n# #x#\n#####",
	"#####\n#s**#\n###*#\n# #x#\n#####",
}

var _ = Describe("Session", func() {
	var s *session.Session

	BeforeEach(func() {
		cfg := config.DefaultConfig()
		cfg.Width, cfg.Height = 3, 2
		cfg.Speed = playback.MaxSpeed
		cfg.Generator = "Binary-Tree NorthEast"
		cfg.Solver = "Dijkstra"

		var err error
		s, err = session.New(cfg)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("New", func() {
		It("applies the configuration", func() {
			Expect(s.Dims.Width()).To(Equal(3))
			Expect(s.Dims.Height()).To(Equal(2))
			Expect(s.Seq.Speed()).To(Equal(playback.MaxSpeed))
			Expect(s.Selector.Generator().Token()).To(Equal("Binary-Tree NorthEast"))
			Expect(s.Selector.Solver()).To(Equal(algo.Dijkstra))
			Expect(s.Palette().Name).To(Equal("classic"))
		})

		It("starts on a blank maze", func() {
			g := s.Grid()
			Expect(g.Width).To(Equal(3))
			Expect(g.Height).To(Equal(2))
			Expect(s.Generated).To(BeFalse())
			Expect(s.Status()).To(Equal("Step 0/0"))
		})

		It("rejects an unknown generator", func() {
			cfg := config.DefaultConfig()
			cfg.Generator = "Labyrinth"
			_, err := session.New(cfg)
			Expect(err).To(MatchError(algo.ErrUnknown))
		})
	})

	Describe("Resize", func() {
		It("shrinks the maze to fit the area", func() {
			s.Resize(80, 5)
			Expect(s.Dims.Max()).To(Equal(2))
			Expect(s.Dims.Width()).To(Equal(2))
			Expect(s.Grid().Width).To(Equal(2))
		})

		It("keeps a loaded step on screen", func() {
			Expect(s.LoadSteps(strings.Join(steps, "\n\n"))).To(Succeed())
			s.Resize(5, 5)
			Expect(s.Grid().Width).To(Equal(2))
			Expect(s.Generated).To(BeTrue())
		})
	})

	Describe("stepping", func() {
		BeforeEach(func() {
			Expect(s.LoadSteps(strings.Join(steps, "\n\n") + "\n")).To(Succeed())
		})

		It("shows the first step after loading", func() {
			Expect(s.Generated).To(BeTrue())
			Expect(s.Status()).To(Equal("Step 0/3"))
			Expect(s.Grid().Counts().Path).To(Equal(0))
		})

		It("moves forward and back within bounds", func() {
			step := func(moved bool, err error) bool {
				Expect(err).NotTo(HaveOccurred())
				return moved
			}
			Expect(step(s.StepBack())).To(BeFalse())
			Expect(step(s.StepForward())).To(BeTrue())
			Expect(step(s.StepForward())).To(BeTrue())
			Expect(s.Grid().Counts().Path).To(Equal(3))
			Expect(step(s.StepForward())).To(BeTrue())
			Expect(step(s.StepForward())).To(BeFalse())
			Expect(s.Status()).To(Equal("Step 3/3"))
			Expect(s.Grid().Counts().Route).To(Equal(3))
		})

		It("jumps with GoTo and clamps", func() {
			Expect(s.GoTo(2)).To(Succeed())
			Expect(s.Seq.Step()).To(Equal(2))
			Expect(s.GoTo(99)).To(Succeed())
			Expect(s.Seq.Step()).To(Equal(3))
		})

		It("keeps the previous grid when a step is malformed", func() {
			Expect(s.LoadSteps(steps[1] + "\n\n" + "garbage")).To(Succeed())
			before := s.Grid()
			Expect(s.GoTo(1)).To(MatchError(maze.ErrTooShort))
			Expect(s.Grid()).To(Equal(before))
		})

		It("reports a malformed step while stepping over it", func() {
			Expect(s.LoadSteps(steps[1] + "\n\n" + "garbage" + "\n\n" + steps[3])).To(Succeed())
			before := s.Grid()

			moved, err := s.StepForward()
			Expect(moved).To(BeTrue())
			Expect(err).To(MatchError(maze.ErrTooShort))
			Expect(s.Seq.Step()).To(Equal(1))
			Expect(s.Grid()).To(Equal(before))

			moved, err = s.StepForward()
			Expect(moved).To(BeTrue())
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Grid().Counts().Route).To(Equal(3))

			moved, err = s.StepBack()
			Expect(moved).To(BeTrue())
			Expect(err).To(MatchError(maze.ErrTooShort))
			Expect(s.Grid().Counts().Route).To(Equal(3))
		})

		It("clears back to a blank maze", func() {
			s.ClearMaze()
			Expect(s.Generated).To(BeFalse())
			Expect(s.Seq.Len()).To(Equal(0))
			Expect(s.Grid().Counts().Path).To(Equal(0))
		})
	})

	It("rejects empty step text", func() {
		Expect(s.LoadSteps("  \n")).To(MatchError(playback.ErrEmpty))
		Expect(s.Generated).To(BeFalse())
	})

	Describe("drawing", func() {
		It("renders the current grid", func() {
			c := render.NewCanvas(7, 5)
			Expect(s.Draw(c)).To(Succeed())
			Expect(c.String()).To(Equal("┏━┳━┳━┓\n┃ ┃ ┃ ┃\n┣━╋━╋━┫\n┃ ┃ ┃ ┃\n┗━┻━┻━┛\n"))
		})

		It("reports a surface that is too small", func() {
			_, err := s.Frame(3, 3)
			Expect(err).To(MatchError(render.ErrSurfaceTooSmall))
		})
	})

	Describe("Play", func() {
		BeforeEach(func() {
			Expect(s.LoadSteps(strings.Join(steps, "\n\n"))).To(Succeed())
		})

		It("hands every parsed step to the frame callback", func() {
			var seen []int
			err := s.Play(context.Background(), func(i int, g maze.Grid) error {
				seen = append(seen, i)
				Expect(g.Width).To(Equal(2))
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(seen).To(Equal([]int{0, 1, 2, 3}))
			Expect(s.Grid().Counts().Route).To(Equal(3))
		})

		It("plays past a trailing empty snapshot", func() {
			Expect(s.LoadSteps(steps[0] + "\n\n" + steps[3] + "\n\n")).To(Succeed())
			Expect(s.Seq.Len()).To(Equal(3))

			var routes []int
			err := s.Play(context.Background(), func(i int, g maze.Grid) error {
				routes = append(routes, g.Counts().Route)
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(routes).To(Equal([]int{0, 3, 3}))
			Expect(s.Seq.AtEnd()).To(BeTrue())
		})

		It("repeats the previous grid for a malformed step", func() {
			Expect(s.LoadSteps(steps[1] + "\n\nnot a maze\n\n" + steps[3])).To(Succeed())

			var paths []int
			err := s.Play(context.Background(), func(i int, g maze.Grid) error {
				paths = append(paths, g.Counts().Path)
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(paths).To(Equal([]int{2, 2, 3}))
		})

		It("stops on a frame error", func() {
			stop := errors.New("stop")
			err := s.Play(context.Background(), func(i int, _ maze.Grid) error {
				if i == 1 {
					return stop
				}
				return nil
			})
			Expect(err).To(MatchError(stop))
			Expect(s.Seq.Step()).To(Equal(1))
		})

		It("stops when canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			err := s.Play(ctx, func(i int, _ maze.Grid) error {
				cancel()
				return nil
			})
			Expect(err).To(MatchError(context.Canceled))
			Expect(s.Seq.Step()).To(Equal(0))
		})
	})
})
