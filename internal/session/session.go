// Package session ties the dimension model, the step sequence, the
// algorithm selector and the current grid into one controller that the
// interactive and headless hosts drive.
package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/san-kum/mazeview/internal/algo"
	"github.com/san-kum/mazeview/internal/config"
	"github.com/san-kum/mazeview/internal/dims"
	"github.com/san-kum/mazeview/internal/maze"
	"github.com/san-kum/mazeview/internal/playback"
	"github.com/san-kum/mazeview/internal/render"
)

// Session owns all mutable viewer state. It is not safe for concurrent use.
type Session struct {
	Dims     *dims.Dimensions
	Seq      *playback.Sequence
	Selector *algo.Selector

	// Generated is set once a step sequence has been loaded and cleared by
	// ClearMaze.
	Generated bool

	grid    maze.Grid
	palette render.Palette
}

func New(cfg *config.Config) (*Session, error) {
	gen, sol, err := cfg.Selection()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	d := dims.New()
	d.SetMax(max(cfg.Width, cfg.Height))
	d.SetWidth(cfg.Width)
	d.SetHeight(cfg.Height)

	seq := playback.NewSequence()
	seq.SetSpeed(cfg.Speed)

	sel := algo.NewSelector(d)
	sel.SetGenerator(gen)
	sel.SetSolver(sol)

	s := &Session{
		Dims:     d,
		Seq:      seq,
		Selector: sel,
		palette:  cfg.Palette(),
	}
	s.ClearMaze()
	return s, nil
}

// Resize derives the largest maze side from a display area and re-clamps
// the configured size. An ungenerated maze is redrawn at the new size.
func (s *Session) Resize(areaW, areaH int) {
	s.Dims.SetMax(dims.MaxForArea(areaW, areaH))
	if !s.Generated {
		s.grid = maze.Parse(s.Dims.Blank())
	}
}

// ClearMaze drops any loaded steps and shows a blank maze of the current
// size.
func (s *Session) ClearMaze() {
	s.Seq.Reset()
	s.Generated = false
	s.grid = maze.Parse(s.Dims.Blank())
}

// LoadSteps replaces the sequence with the snapshots in text and shows the
// first one.
func (s *Session) LoadSteps(text string) error {
	if strings.TrimSpace(text) == "" {
		s.ClearMaze()
		return playback.ErrEmpty
	}
	s.Seq.Load(text)
	s.Generated = true
	return s.Refresh()
}

// StepForward shows the next snapshot. It reports false at the last step.
// A malformed snapshot still advances the step; the previous grid stays on
// screen and the parse error is returned.
func (s *Session) StepForward() (bool, error) {
	if !s.Seq.Next() {
		return false, nil
	}
	return true, s.Refresh()
}

// StepBack shows the previous snapshot. It reports false at step zero.
func (s *Session) StepBack() (bool, error) {
	if !s.Seq.Prev() {
		return false, nil
	}
	return true, s.Refresh()
}

// GoTo jumps to step i, clamped to the sequence.
func (s *Session) GoTo(i int) error {
	if err := s.Seq.SetStep(i); err != nil {
		return err
	}
	return s.Refresh()
}

// Refresh re-parses the current snapshot. The previous grid stays on screen
// when the snapshot is malformed.
func (s *Session) Refresh() error {
	text, err := s.Seq.Current()
	if err != nil {
		return err
	}
	g, err := maze.ParseStrict(text)
	if err != nil {
		return fmt.Errorf("session: step %d: %w", s.Seq.Step(), err)
	}
	s.grid = g
	return nil
}

func (s *Session) Grid() maze.Grid { return s.grid }

func (s *Session) Palette() render.Palette     { return s.palette }
func (s *Session) SetPalette(p render.Palette) { s.palette = p }

// Draw renders the current grid onto surface.
func (s *Session) Draw(surface render.Surface) error {
	return render.Render(s.grid, surface)
}

// Frame renders the current grid onto a w x h canvas and returns it
// styled with the session palette.
func (s *Session) Frame(w, h int) (string, error) {
	c := render.NewCanvas(w, h)
	if err := s.Draw(c); err != nil {
		return "", err
	}
	return c.Styled(s.palette), nil
}

// Play advances through the sequence at its speed, handing each grid to
// frame. A snapshot that fails to parse leaves the previous grid in place
// and that grid is shown again. Play stops when ctx is done, the last step
// was shown, or frame returns an error.
func (s *Session) Play(ctx context.Context, frame func(i int, g maze.Grid) error) error {
	return playback.Run(ctx, s.Seq, func(i int, snapshot string) error {
		if g, err := maze.ParseStrict(snapshot); err == nil {
			s.grid = g
		}
		return frame(i, s.grid)
	})
}

// Status is the step counter shown under the key hints: the current step
// over the last step index.
func (s *Session) Status() string {
	last := 0
	if s.Generated && s.Seq.Len() > 0 {
		last = s.Seq.Len() - 1
	}
	return fmt.Sprintf("Step %d/%d", s.Seq.Step(), last)
}
