package config

import "sort"

var Presets = map[string]*Config{
	"quick": {
		Theme: "classic", Speed: 50, Width: 8, Height: 8,
		Generator: "Recursive-Backtracking", Solver: "Breadth-First",
	},
	"detailed": {
		Theme: "ocean", Speed: 5, Width: 16, Height: 12,
		Generator: "Growing-Tree NewestRandom 0.50", Solver: "A-Star",
	},
	"large": {
		Theme: "mono", Speed: 100, Width: 40, Height: 25,
		Generator: "Kruskal", Solver: "Dijkstra",
	},
}

// GetPreset returns a copy of the named preset with the data directory
// filled in, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
