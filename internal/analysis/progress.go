package analysis

import (
	"github.com/san-kum/mazeview/internal/maze"
	"github.com/san-kum/mazeview/internal/playback"
)

// Series holds one value per step for each search flag.
type Series struct {
	Path     []float64
	Route    []float64
	Observed []float64
	Queued   []float64
}

func (s Series) Len() int { return len(s.Path) }

func Progress(seq *playback.Sequence) Series {
	snapshots := seq.Snapshots()
	s := Series{
		Path:     make([]float64, 0, len(snapshots)),
		Route:    make([]float64, 0, len(snapshots)),
		Observed: make([]float64, 0, len(snapshots)),
		Queued:   make([]float64, 0, len(snapshots)),
	}

	var last maze.Counts
	for _, snap := range snapshots {
		if g, err := maze.ParseStrict(snap); err == nil {
			last = g.Counts()
		}
		s.Path = append(s.Path, float64(last.Path))
		s.Route = append(s.Route, float64(last.Route))
		s.Observed = append(s.Observed, float64(last.Observed))
		s.Queued = append(s.Queued, float64(last.Queued))
	}
	return s
}

type Summary struct {
	Steps      int
	Cells      int
	Invalid    int
	PeakQueued int
	Explored   int
	Route      int
}

// Coverage is the share of cells the search touched.
func (s Summary) Coverage() float64 {
	if s.Cells == 0 {
		return 0
	}
	return float64(s.Explored) / float64(s.Cells)
}

// Summarize reports the sequence length, the largest frontier, the number
// of cells ever searched and the route length of the last valid step.
func Summarize(seq *playback.Sequence) Summary {
	var sum Summary
	var explored []bool
	for _, snap := range seq.Snapshots() {
		sum.Steps++
		g, err := maze.ParseStrict(snap)
		if err != nil {
			sum.Invalid++
			continue
		}
		if len(explored) != len(g.Cells) {
			explored = make([]bool, len(g.Cells))
		}
		sum.Cells = len(g.Cells)

		c := g.Counts()
		sum.PeakQueued = max(sum.PeakQueued, c.Queued)
		sum.Route = c.Route
		for i, cell := range g.Cells {
			if cell.Searched() {
				explored[i] = true
			}
		}
	}
	for _, e := range explored {
		if e {
			sum.Explored++
		}
	}
	return sum
}
