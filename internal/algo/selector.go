package algo

// RatioStore holds the ratio shared by every ratio-bearing generator.
// dims.Dimensions satisfies it and clamps to [0, 1].
type RatioStore interface {
	Ratio() float64
	SetRatio(float64)
}

// Focus is the list the selector's keys act on.
type Focus int

const (
	FocusGenerators Focus = iota
	FocusSolvers
)

// Selector tracks the generator and solver menus: the highlighted entry in
// each, the parameters of every generator entry, and the active pair.
type Selector struct {
	shared RatioStore

	generators []Generator
	solvers    []Solver
	genCursor  int
	solCursor  int
	focus      Focus
	entry      RatioEntry

	generator Generator
	solver    Solver
}

func NewSelector(shared RatioStore) *Selector {
	s := &Selector{
		shared:  shared,
		solvers: Solvers(),
	}
	for _, k := range Kinds() {
		s.generators = append(s.generators, Generator{Kind: k, Ratio: shared.Ratio()})
	}
	s.generator = s.generators[0]
	s.solver = s.solvers[0]
	return s
}

func (s *Selector) Focus() Focus { return s.focus }

// Toggle switches focus between the two lists.
func (s *Selector) Toggle() {
	if s.focus == FocusGenerators {
		s.focus = FocusSolvers
	} else {
		s.focus = FocusGenerators
	}
	s.entry.Reset()
}

// Cursor returns the highlighted index of the focused list.
func (s *Selector) Cursor() int {
	if s.focus == FocusSolvers {
		return s.solCursor
	}
	return s.genCursor
}

func (s *Selector) GeneratorCursor() int { return s.genCursor }
func (s *Selector) SolverCursor() int    { return s.solCursor }

// Up moves the highlight one entry up, stopping at the first entry.
func (s *Selector) Up() { s.move(-1) }

// Down moves the highlight one entry down, stopping at the last entry.
func (s *Selector) Down() { s.move(1) }

func (s *Selector) move(delta int) {
	cursor, n := &s.genCursor, len(s.generators)
	if s.focus == FocusSolvers {
		cursor, n = &s.solCursor, len(s.solvers)
	}
	next := *cursor + delta
	if next < 0 || next >= n {
		return
	}
	*cursor = next
	s.entry.Reset()
}

// Right cycles the highlighted generator's parameter ring forward.
func (s *Selector) Right() {
	if s.focus == FocusGenerators {
		s.generators[s.genCursor].Right(s.shared.Ratio())
	}
}

// Left cycles the highlighted generator's parameter ring backward.
func (s *Selector) Left() {
	if s.focus == FocusGenerators {
		s.generators[s.genCursor].Left(s.shared.Ratio())
	}
}

// Digit types d into the highlighted generator's ratio. It reports false
// when the entry carries no ratio.
func (s *Selector) Digit(d int) bool {
	g := s.highlightedRatio()
	if g == nil || d < 0 || d > 9 {
		return false
	}
	s.entry.Digit(d)
	s.shared.SetRatio(s.entry.Ratio())
	g.Ratio = s.shared.Ratio()
	return true
}

// Backspace shifts the highlighted generator's ratio one decimal place
// right. It reports false when the entry carries no ratio.
func (s *Selector) Backspace() bool {
	g := s.highlightedRatio()
	if g == nil {
		return false
	}
	g.EraseRatio()
	s.shared.SetRatio(g.Ratio)
	s.entry.SetRatio(g.Ratio)
	return true
}

func (s *Selector) highlightedRatio() *Generator {
	if s.focus != FocusGenerators {
		return nil
	}
	g := &s.generators[s.genCursor]
	if !g.HasRatio() {
		return nil
	}
	return g
}

// Confirm makes the highlighted entries of both lists active.
func (s *Selector) Confirm() {
	s.generator = s.generators[s.genCursor]
	s.solver = s.solvers[s.solCursor]
}

// Generators returns the generator menu entries.
func (s *Selector) Generators() []Generator {
	out := make([]Generator, len(s.generators))
	copy(out, s.generators)
	return out
}

// Solvers returns the solver menu entries.
func (s *Selector) Solvers() []Solver {
	out := make([]Solver, len(s.solvers))
	copy(out, s.solvers)
	return out
}

func (s *Selector) Generator() Generator { return s.generator }
func (s *Selector) Solver() Solver       { return s.solver }

// SetGenerator activates g and highlights its menu entry.
func (s *Selector) SetGenerator(g Generator) {
	if g.Kind < 0 || g.Kind >= kindCount {
		return
	}
	s.generators[g.Kind] = g
	s.genCursor = int(g.Kind)
	s.generator = g
	if g.HasRatio() {
		s.shared.SetRatio(g.Ratio)
	}
}

// SetSolver activates v and highlights its menu entry.
func (s *Selector) SetSolver(v Solver) {
	if v < 0 || v >= solverCount {
		return
	}
	s.solCursor = int(v)
	s.solver = v
}
