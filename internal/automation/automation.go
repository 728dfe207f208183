package automation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mazeview/internal/maze"
	"github.com/san-kum/mazeview/internal/playback"
)

// Script is a playlist of step files replayed one after another.
type Script struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Items       []Item `yaml:"items"`

	// dir resolves relative item paths. LoadScript sets it to the script's
	// directory.
	dir string
}

// Item is one step file in a script. Zero Speed keeps the default and Step
// is the index playback starts from.
type Item struct {
	File  string `yaml:"file"`
	Speed int    `yaml:"speed"`
	Step  int    `yaml:"step"`
}

// Result records how far an item played. Invalid counts snapshots that
// failed to parse.
type Result struct {
	File    string
	Steps   int
	Frames  int
	Invalid int
}

// FrameFunc receives every frame of every item. A snapshot that fails to
// parse repeats the item's previous grid, or is skipped when there is none.
type FrameFunc func(item int, step int, g maze.Grid) error

// LoadScript loads a script from a YAML file
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, err
	}
	script.dir = filepath.Dir(path)

	return &script, nil
}

func (s *Script) path(file string) string {
	if filepath.IsAbs(file) || s.dir == "" {
		return file
	}
	return filepath.Join(s.dir, file)
}

// RunScript plays every item in order. It returns the results of the items
// played so far when an item fails or ctx is canceled.
func RunScript(ctx context.Context, script *Script, frame FrameFunc) ([]Result, error) {
	results := make([]Result, 0, len(script.Items))

	for i, item := range script.Items {
		data, err := os.ReadFile(script.path(item.File))
		if err != nil {
			return results, fmt.Errorf("item %d: %w", i+1, err)
		}

		seq := playback.NewSequence()
		seq.Load(string(data))
		if item.Speed != 0 {
			seq.SetSpeed(item.Speed)
		}
		if err := seq.SetStep(item.Step); err != nil {
			return results, fmt.Errorf("item %d: %w", i+1, err)
		}

		res := Result{File: item.File, Steps: seq.Len()}
		var last maze.Grid
		err = playback.Run(ctx, seq, func(step int, snapshot string) error {
			if g, err := maze.ParseStrict(snapshot); err == nil {
				last = g
			} else {
				res.Invalid++
				if last.Empty() {
					return nil
				}
			}
			res.Frames++
			return frame(i, step, last)
		})
		results = append(results, res)
		if err != nil {
			return results, fmt.Errorf("item %d run: %w", i+1, err)
		}
	}

	return results, nil
}
