package algo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind names a maze generation algorithm.
type Kind int

const (
	Kruskal Kind = iota
	Prim
	RecursiveBacktracking
	AldousBroder
	GrowingTree
	HuntAndKill
	Wilson
	Eller
	RecursiveDivision
	Sidewinder
	BinaryTree

	kindCount
)

var kindNames = [kindCount]string{
	Kruskal:               "Kruskal",
	Prim:                  "Prim",
	RecursiveBacktracking: "Recursive-Backtracking",
	AldousBroder:          "Aldous-Broder",
	GrowingTree:           "Growing-Tree",
	HuntAndKill:           "Hunt-and-Kill",
	Wilson:                "Wilson",
	Eller:                 "Eller",
	RecursiveDivision:     "Recursive-Division",
	Sidewinder:            "Sidewinder",
	BinaryTree:            "Binary-Tree",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Unknown"
	}
	return kindNames[k]
}

// Kinds lists every generator in menu order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Generator is a generator kind together with its parameters. Pick and
// Ratio are meaningful for GrowingTree only, Bias for BinaryTree only.
type Generator struct {
	Kind  Kind
	Pick  Pick
	Bias  Bias
	Ratio float64
}

// HasRatio reports whether the generator currently carries a ratio.
func (g Generator) HasRatio() bool {
	return g.Kind == GrowingTree && g.Pick.HasRatio()
}

// Right advances the generator's parameter ring. Entering a ratio-bearing
// pick from a plain one starts the ratio at shared.
func (g *Generator) Right(shared float64) {
	switch g.Kind {
	case GrowingTree:
		g.setPick(g.Pick.Next(), shared)
	case BinaryTree:
		g.Bias = g.Bias.Next()
	}
}

// Left is Right in reverse.
func (g *Generator) Left(shared float64) {
	switch g.Kind {
	case GrowingTree:
		g.setPick(g.Pick.Prev(), shared)
	case BinaryTree:
		g.Bias = g.Bias.Prev()
	}
}

func (g *Generator) setPick(p Pick, shared float64) {
	if p.HasRatio() && !g.Pick.HasRatio() {
		g.Ratio = shared
	}
	g.Pick = p
}

// EraseRatio shifts the ratio one decimal place right. This is not the
// inverse of digit entry: 0.55 becomes 0.055.
func (g *Generator) EraseRatio() {
	if g.HasRatio() {
		g.Ratio /= 10
	}
}

func (g Generator) DisplayName() string {
	switch g.Kind {
	case GrowingTree:
		if g.Pick.HasRatio() {
			return fmt.Sprintf("%s %s %s", g.Kind, g.Pick, formatRatio(g.Ratio))
		}
		return fmt.Sprintf("%s %s", g.Kind, g.Pick)
	case BinaryTree:
		return fmt.Sprintf("%s %s", g.Kind, g.Bias)
	}
	return g.Kind.String()
}

// Token is the space separated argument form of the generator.
func (g Generator) Token() string {
	switch g.Kind {
	case GrowingTree:
		if g.Pick.HasRatio() {
			return fmt.Sprintf("%s %s %s", g.Kind, g.Pick.Token(), formatRatio(g.Ratio))
		}
		return fmt.Sprintf("%s %s", g.Kind, g.Pick.Token())
	case BinaryTree:
		return fmt.Sprintf("%s %s", g.Kind, g.Bias.Token())
	}
	return g.Kind.String()
}

// Args splits Token into individual arguments.
func (g Generator) Args() []string { return strings.Fields(g.Token()) }

func formatRatio(r float64) string { return strconv.FormatFloat(r, 'f', 2, 64) }

// ParseGenerator reads a Token back into a Generator. A missing ratio on a
// paired pick defaults to 0.5.
func ParseGenerator(token string) (Generator, error) {
	fields := strings.Fields(token)
	if len(fields) == 0 {
		return Generator{}, fmt.Errorf("%w: empty generator", ErrUnknown)
	}

	var g Generator
	found := false
	for _, k := range Kinds() {
		if strings.EqualFold(fields[0], k.String()) {
			g.Kind, found = k, true
			break
		}
	}
	if !found {
		return Generator{}, fmt.Errorf("%w: generator %q", ErrUnknown, fields[0])
	}

	switch g.Kind {
	case GrowingTree:
		if len(fields) < 2 {
			return g, nil
		}
		p, ok := lookupPick(fields[1])
		if !ok {
			return Generator{}, fmt.Errorf("%w: growing-tree pick %q", ErrUnknown, fields[1])
		}
		g.Pick = p
		if p.HasRatio() {
			g.Ratio = 0.5
			if len(fields) > 2 {
				r, err := strconv.ParseFloat(fields[2], 64)
				if err != nil || math.IsNaN(r) {
					return Generator{}, fmt.Errorf("%w: ratio %q", ErrUnknown, fields[2])
				}
				g.Ratio = clampRatio(r)
			}
		}
	case BinaryTree:
		if len(fields) < 2 {
			return g, nil
		}
		b, ok := lookupBias(fields[1])
		if !ok {
			return Generator{}, fmt.Errorf("%w: binary-tree bias %q", ErrUnknown, fields[1])
		}
		g.Bias = b
	}
	return g, nil
}

func lookupPick(s string) (Pick, bool) {
	for p := Pick(0); p < pickCount; p++ {
		if strings.EqualFold(s, p.Token()) || strings.EqualFold(s, p.String()) {
			return p, true
		}
	}
	return 0, false
}

func lookupBias(s string) (Bias, bool) {
	for b := Bias(0); b < biasCount; b++ {
		if strings.EqualFold(s, b.Token()) || strings.EqualFold(s, b.String()) {
			return b, true
		}
	}
	return 0, false
}

func clampRatio(r float64) float64 {
	switch {
	case math.IsNaN(r), r < 0:
		return 0
	case r > 1:
		return 1
	}
	return r
}
