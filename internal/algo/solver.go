package algo

import (
	"fmt"
	"strings"
)

// Solver names a maze solving algorithm. Solvers take no parameters.
type Solver int

const (
	DepthFirst Solver = iota
	BreadthFirst
	Dijkstra
	AStar

	solverCount
)

var solverNames = [solverCount]string{
	DepthFirst:   "Depth-First",
	BreadthFirst: "Breadth-First",
	Dijkstra:     "Dijkstra",
	AStar:        "A-Star",
}

func (s Solver) String() string {
	if s < 0 || s >= solverCount {
		return "Unknown"
	}
	return solverNames[s]
}

func (s Solver) DisplayName() string { return s.String() }
func (s Solver) Token() string       { return s.String() }
func (s Solver) Args() []string      { return strings.Fields(s.Token()) }

// Solvers lists every solver in menu order.
func Solvers() []Solver {
	out := make([]Solver, solverCount)
	for i := range out {
		out[i] = Solver(i)
	}
	return out
}

func ParseSolver(token string) (Solver, error) {
	token = strings.TrimSpace(token)
	for _, s := range Solvers() {
		if strings.EqualFold(token, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: solver %q", ErrUnknown, token)
}
