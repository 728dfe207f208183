package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/mazeview/internal/algo"
	"github.com/san-kum/mazeview/internal/dims"
	"github.com/san-kum/mazeview/internal/playback"
	"github.com/san-kum/mazeview/internal/render"
)

const (
	DefaultTheme     = "classic"
	DefaultSize      = 10
	DefaultGenerator = "Recursive-Backtracking"
	DefaultSolver    = "Depth-First"
	DefaultDataDir   = "recordings"
)

// Environment variables read by FromEnv.
const (
	EnvTheme = "MAZEVIEW_THEME"
	EnvSpeed = "MAZEVIEW_SPEED"
	EnvData  = "MAZEVIEW_DATA"
	EnvDebug = "MAZEVIEW_DEBUG"
)

var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	Theme     string       `yaml:"theme"`
	Colors    ColorsConfig `yaml:"colors"`
	Speed     int          `yaml:"speed"`
	Width     int          `yaml:"width"`
	Height    int          `yaml:"height"`
	Generator string       `yaml:"generator"`
	Solver    string       `yaml:"solver"`
	DataDir   string       `yaml:"data_dir"`
}

// ColorsConfig overrides individual theme colors. Empty fields keep the
// theme's color.
type ColorsConfig struct {
	Default  string `yaml:"default,omitempty"`
	Observed string `yaml:"observed,omitempty"`
	Queued   string `yaml:"queued,omitempty"`
	Path     string `yaml:"path,omitempty"`
	Route    string `yaml:"route,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:     DefaultTheme,
		Speed:     playback.DefaultSpeed,
		Width:     DefaultSize,
		Height:    DefaultSize,
		Generator: DefaultGenerator,
		Solver:    DefaultSolver,
		DataDir:   DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first setting that is out of range or unknown.
func (c *Config) Validate() error {
	if c.Speed < playback.MinSpeed || c.Speed > playback.MaxSpeed {
		return fmt.Errorf("%w: speed %d not in [%d, %d]", ErrInvalid, c.Speed, playback.MinSpeed, playback.MaxSpeed)
	}
	if c.Width < dims.MinSize || c.Height < dims.MinSize {
		return fmt.Errorf("%w: size %dx%d below %d", ErrInvalid, c.Width, c.Height, dims.MinSize)
	}
	if _, ok := render.LookupTheme(c.Theme); !ok {
		return fmt.Errorf("%w: theme %q", ErrInvalid, c.Theme)
	}
	if _, _, err := c.Selection(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Palette resolves the theme and applies the color overrides.
func (c *Config) Palette() render.Palette {
	p := render.GetTheme(c.Theme)
	overrides := []struct {
		role  render.Role
		color string
	}{
		{render.Default, c.Colors.Default},
		{render.Observed, c.Colors.Observed},
		{render.Queued, c.Colors.Queued},
		{render.Path, c.Colors.Path},
		{render.Route, c.Colors.Route},
	}
	for _, o := range overrides {
		if o.color != "" {
			p = p.WithColor(o.role, lipgloss.Color(o.color))
		}
	}
	return p
}

// Selection parses the configured generator and solver. Empty values fall
// back to the defaults.
func (c *Config) Selection() (algo.Generator, algo.Solver, error) {
	genToken, solToken := c.Generator, c.Solver
	if genToken == "" {
		genToken = DefaultGenerator
	}
	if solToken == "" {
		solToken = DefaultSolver
	}
	g, err := algo.ParseGenerator(genToken)
	if err != nil {
		return algo.Generator{}, 0, err
	}
	s, err := algo.ParseSolver(solToken)
	if err != nil {
		return algo.Generator{}, 0, err
	}
	return g, s, nil
}

// FromEnv loads the given .env files (".env" when none are named) and
// applies the MAZEVIEW_* overrides to cfg. Missing files are ignored.
func FromEnv(cfg *Config, files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load env: %w", err)
	}

	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv(EnvSpeed); v != "" {
		speed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvSpeed, v)
		}
		cfg.Speed = speed
	}
	if v := os.Getenv(EnvData); v != "" {
		cfg.DataDir = v
	}
	return nil
}

// Debug reports whether MAZEVIEW_DEBUG is set.
func Debug() bool { return os.Getenv(EnvDebug) != "" }
