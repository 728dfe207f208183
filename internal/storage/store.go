// Package storage keeps recorded step sequences on disk, one directory per
// recording holding metadata.json, maze.steps and the final maze.mz.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/mazeview/internal/algo"
	"github.com/san-kum/mazeview/internal/maze"
	"github.com/san-kum/mazeview/internal/playback"
)

const (
	metadataFile = "metadata.json"
	stepsFile    = "maze.steps"
	mazeFile     = "maze.mz"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Recording struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	Generator string    `json:"generator"`
	Solver    string    `json:"solver"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Steps     int       `json:"steps"`
}

// Save writes seq under a fresh id and returns it. The maze size is taken
// from the first snapshot.
func (s *Store) Save(name string, gen algo.Generator, sol algo.Solver, seq *playback.Sequence) (string, error) {
	snapshots := seq.Snapshots()
	if len(snapshots) == 0 {
		return "", playback.ErrEmpty
	}

	id := uuid.NewString()
	runDir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	first := maze.Parse(snapshots[0])
	rec := Recording{
		ID:        id,
		Name:      name,
		Timestamp: time.Now(),
		Generator: gen.Token(),
		Solver:    sol.Token(),
		Width:     first.Width,
		Height:    first.Height,
		Steps:     len(snapshots),
	}
	if rec.Name == "" {
		rec.Name = id[:8]
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return "", err
	}

	steps := strings.Join(snapshots, playback.Separator)
	if err := os.WriteFile(filepath.Join(runDir, stepsFile), []byte(steps), 0644); err != nil {
		return "", err
	}
	last := strings.TrimRight(snapshots[len(snapshots)-1], "\n")
	if err := os.WriteFile(filepath.Join(runDir, mazeFile), []byte(last), 0644); err != nil {
		return "", err
	}

	return id, nil
}

// List returns every readable recording, newest first.
func (s *Store) List() ([]Recording, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Recording{}, nil
		}
		return nil, err
	}

	recs := make([]Recording, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		rec, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		recs = append(recs, *rec)
	}

	sort.Slice(recs, func(i, j int) bool {
		return recs[i].Timestamp.After(recs[j].Timestamp)
	})
	return recs, nil
}

func (s *Store) Load(id string) (*Recording, error) {
	data, err := s.read(id, metadataFile)
	if err != nil {
		return nil, err
	}

	var rec Recording
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("storage: %s: %w", id, err)
	}
	return &rec, nil
}

// LoadSteps returns the raw steps text of a recording, ready for
// Sequence.Load.
func (s *Store) LoadSteps(id string) (string, error) {
	data, err := s.read(id, stepsFile)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// LoadMaze returns the final snapshot of a recording.
func (s *Store) LoadMaze(id string) (string, error) {
	data, err := s.read(id, mazeFile)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Store) read(id, name string) ([]byte, error) {
	if u, err := uuid.Parse(id); err != nil || u.String() != id {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	return data, nil
}
