package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/mazeview/internal/algo"
	"github.com/san-kum/mazeview/internal/analysis"
	"github.com/san-kum/mazeview/internal/automation"
	"github.com/san-kum/mazeview/internal/config"
	"github.com/san-kum/mazeview/internal/dims"
	"github.com/san-kum/mazeview/internal/export"
	"github.com/san-kum/mazeview/internal/maze"
	"github.com/san-kum/mazeview/internal/playback"
	"github.com/san-kum/mazeview/internal/render"
	"github.com/san-kum/mazeview/internal/session"
	"github.com/san-kum/mazeview/internal/storage"
	"github.com/san-kum/mazeview/internal/tui"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

var (
	dataDir    string
	configFile string
	preset     string
	theme      string
	runID      string
	speed      int
	step       int
	plain      bool
	outFile    string
	scale      float64
	name       string
	svgFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "mazeview [steps-file]",
		Short:        "terminal maze generation and search viewer",
		Args:         cobra.MaximumNArgs(1),
		RunE:         runTUI,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "recordings directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "color theme")

	tuiCmd := &cobra.Command{
		Use:   "tui [steps-file]",
		Short: "interactive viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTUI,
	}

	renderCmd := &cobra.Command{
		Use:   "render [file]",
		Short: "print one snapshot of a steps file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderStep,
	}
	renderCmd.Flags().IntVar(&step, "step", -1, "step to render (default last)")
	renderCmd.Flags().BoolVar(&plain, "plain", false, "no colors")
	renderCmd.Flags().StringVar(&runID, "run", "", "read steps from a saved recording")

	playCmd := &cobra.Command{
		Use:   "play [file]",
		Short: "play a steps file in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playSteps,
	}
	playCmd.Flags().IntVar(&speed, "speed", 0, "steps per second")
	playCmd.Flags().IntVar(&step, "step", 0, "first step")
	playCmd.Flags().StringVar(&runID, "run", "", "read steps from a saved recording")

	statsCmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "plot search progress per step",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showStats,
	}
	statsCmd.Flags().StringVar(&runID, "run", "", "read steps from a saved recording")
	statsCmd.Flags().StringVar(&svgFile, "svg", "", "also write the route series as svg")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list generators and solvers",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}

	blankCmd := &cobra.Command{
		Use:   "blank [width] [height]",
		Short: "print a fully walled maze",
		Args:  cobra.ExactArgs(2),
		RunE:  printBlank,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [file]",
		Short: "export one snapshot as svg",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&step, "step", -1, "step to export (default last)")
	exportSVGCmd.Flags().StringVar(&outFile, "out", "maze.svg", "output file")
	exportSVGCmd.Flags().Float64Var(&scale, "scale", 16, "pixels per cell")
	exportSVGCmd.Flags().StringVar(&runID, "run", "", "read steps from a saved recording")

	saveCmd := &cobra.Command{
		Use:   "save [file]",
		Short: "store a steps file as a recording",
		Args:  cobra.MaximumNArgs(1),
		RunE:  saveRecording,
	}
	saveCmd.Flags().StringVar(&name, "name", "", "recording name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recordings",
		Args:  cobra.NoArgs,
		RunE:  listRecordings,
	}

	scriptCmd := &cobra.Command{
		Use:   "script [yaml]",
		Short: "play a playlist of steps files",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Args:  cobra.NoArgs,
		RunE:  listThemes,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(tuiCmd, renderCmd, playCmd, statsCmd, algorithmsCmd, blankCmd, exportSVGCmd,
		saveCmd, listCmd, scriptCmd, themesCmd, presetsCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers preset, config file, environment and flags, in that
// order, and validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if err := config.FromEnv(cfg); err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("data") {
		cfg.DataDir = dataDir
	}
	if f := cmd.Flags().Lookup("speed"); f != nil && f.Changed {
		cfg.Speed = speed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readSteps returns the steps text named by --run, a file argument, or
// stdin when the argument is missing or "-".
func readSteps(cmd *cobra.Command, cfg *config.Config, args []string) (string, error) {
	if f := cmd.Flags().Lookup("run"); f != nil && f.Changed {
		return storage.New(cfg.DataDir).LoadSteps(runID)
	}
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}

func loadSequence(cmd *cobra.Command, cfg *config.Config, args []string) (*playback.Sequence, error) {
	text, err := readSteps(cmd, cfg, args)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, playback.ErrEmpty
	}
	seq := playback.NewSequence()
	seq.Load(text)
	seq.SetSpeed(cfg.Speed)
	return seq, nil
}

// gridAt parses step i, or the last step when i is negative. A malformed
// step shows the nearest earlier step that parses.
func gridAt(seq *playback.Sequence, i int) (maze.Grid, error) {
	if i < 0 {
		i = seq.Len() - 1
	}
	if err := seq.SetStep(i); err != nil {
		return maze.Grid{}, err
	}
	var first error
	for j := seq.Step(); j >= 0; j-- {
		seq.SetStep(j)
		text, err := seq.Current()
		if err != nil {
			return maze.Grid{}, err
		}
		g, err := maze.ParseStrict(text)
		if err == nil {
			return g, nil
		}
		if first == nil {
			first = fmt.Errorf("step %d: %w", j, err)
		}
	}
	return maze.Grid{}, first
}

func badSnapshot(err error) bool {
	return errors.Is(err, maze.ErrTooShort) || errors.Is(err, maze.ErrMalformed)
}

func draw(g maze.Grid, p render.Palette, color bool) (string, error) {
	c := render.NewCanvas(2*g.Width+1, 2*g.Height+1)
	if err := render.Render(g, c); err != nil {
		return "", err
	}
	if !color {
		return c.String(), nil
	}
	return c.Styled(p), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := session.New(cfg)
	if err != nil {
		return err
	}

	opts := tui.Options{Store: storage.New(cfg.DataDir)}
	if len(args) > 0 {
		opts.StepsPath = args[0]
	}
	return tui.Run(sess, opts)
}

func renderStep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	seq, err := loadSequence(cmd, cfg, args)
	if err != nil {
		return err
	}
	g, err := gridAt(seq, step)
	if err != nil {
		return err
	}
	out, err := draw(g, cfg.Palette(), !plain)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func playSteps(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	text, err := readSteps(cmd, cfg, args)
	if err != nil {
		return err
	}

	sess, err := session.New(cfg)
	if err != nil {
		return err
	}
	if err := sess.LoadSteps(text); err != nil && !badSnapshot(err) {
		return err
	}
	if err := sess.GoTo(max(step, 0)); err != nil && !badSnapshot(err) {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Print(hideCursor)
	defer fmt.Print(showCursor)

	err = sess.Play(ctx, func(i int, g maze.Grid) error {
		out, err := draw(g, sess.Palette(), true)
		if err != nil {
			return err
		}
		fmt.Print(clearScreen + out + sess.Status() + "\n")
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func showStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	seq, err := loadSequence(cmd, cfg, args)
	if err != nil {
		return err
	}

	series := analysis.Progress(seq)
	sum := analysis.Summarize(seq)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "steps\t%d\n", sum.Steps)
	fmt.Fprintf(w, "invalid\t%d\n", sum.Invalid)
	fmt.Fprintf(w, "cells\t%d\n", sum.Cells)
	fmt.Fprintf(w, "explored\t%d (%.1f%%)\n", sum.Explored, 100*sum.Coverage())
	fmt.Fprintf(w, "peak queue\t%d\n", sum.PeakQueued)
	fmt.Fprintf(w, "route\t%d\n", sum.Route)
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()

	if series.Len() < 2 {
		return nil
	}

	graph := asciigraph.PlotMany(
		[][]float64{series.Route, series.Path, series.Observed, series.Queued},
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Goldenrod, asciigraph.Blue, asciigraph.Red, asciigraph.DarkRed),
		asciigraph.Caption("route / path / observed / queued per step"),
	)
	fmt.Println(graph)

	if svgFile != "" {
		svg := export.SeriesToSVG(series.Route, 640, 240, export.Hex(cfg.Palette().Route))
		if err := os.WriteFile(svgFile, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", svgFile)
	}
	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GENERATOR\tTOKEN")

	for _, k := range algo.Kinds() {
		variants := []algo.Generator{{Kind: k}}
		switch k {
		case algo.GrowingTree:
			variants = variants[:0]
			p := algo.PickNewest
			for {
				variants = append(variants, algo.Generator{Kind: k, Pick: p, Ratio: dims.DefaultRatio})
				if p = p.Next(); p == algo.PickNewest {
					break
				}
			}
		case algo.BinaryTree:
			variants = variants[:0]
			b := algo.NorthWest
			for {
				variants = append(variants, algo.Generator{Kind: k, Bias: b})
				if b = b.Next(); b == algo.NorthWest {
					break
				}
			}
		}
		for _, g := range variants {
			fmt.Fprintf(w, "%s\t%s\n", g.DisplayName(), g.Token())
		}
	}

	fmt.Fprintln(w, "\nSOLVER\tTOKEN")
	for _, s := range algo.Solvers() {
		fmt.Fprintf(w, "%s\t%s\n", s.DisplayName(), s.Token())
	}
	return w.Flush()
}

func printBlank(cmd *cobra.Command, args []string) error {
	width, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("width: %w", err)
	}
	height, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("height: %w", err)
	}
	if width < dims.MinSize || height < dims.MinSize {
		return fmt.Errorf("size must be at least %dx%d", dims.MinSize, dims.MinSize)
	}
	fmt.Println(dims.Clear(width, height))
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	seq, err := loadSequence(cmd, cfg, args)
	if err != nil {
		return err
	}
	g, err := gridAt(seq, step)
	if err != nil {
		return err
	}

	svg := export.GridToSVG(g, cfg.Palette(), scale)
	if svg == "" {
		return fmt.Errorf("nothing to export")
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d, step %d)\n", outFile, g.Width, g.Height, seq.Step())
	return nil
}

func saveRecording(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	seq, err := loadSequence(cmd, cfg, args)
	if err != nil {
		return err
	}
	gen, sol, err := cfg.Selection()
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	if name == "" && len(args) > 0 && args[0] != "-" {
		name = args[0]
	}
	id, err := st.Save(name, gen, sol, seq)
	if err != nil {
		return err
	}
	fmt.Printf("saved %s (%d steps)\n", id, seq.Len())
	return nil
}

func listRecordings(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	recs, err := storage.New(cfg.DataDir).List()
	if err != nil {
		return err
	}

	if len(recs) == 0 {
		fmt.Println("no recordings found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tSIZE\tSTEPS\tGENERATOR\tSOLVER")

	for _, rec := range recs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%s\t%s\n",
			rec.ID,
			rec.Name,
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			rec.Width,
			rec.Height,
			rec.Steps,
			rec.Generator,
			rec.Solver,
		)
	}

	return w.Flush()
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	script, err := automation.LoadScript(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Print(hideCursor)
	defer fmt.Print(showCursor)

	p := cfg.Palette()
	results, err := automation.RunScript(ctx, script, func(item, i int, g maze.Grid) error {
		out, err := draw(g, p, true)
		if err != nil {
			return err
		}
		it := script.Items[item]
		fmt.Printf("%s%s%s  item %d/%d  step %d\n", clearScreen, out, it.File, item+1, len(script.Items), i)
		return nil
	})

	for _, r := range results {
		fmt.Printf("%s: %d/%d frames, %d invalid\n", r.File, r.Frames, r.Steps, r.Invalid)
	}
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func listThemes(cmd *cobra.Command, args []string) error {
	for _, n := range render.ThemeNames() {
		p := render.GetTheme(n)
		var swatch strings.Builder
		for _, role := range render.Roles() {
			swatch.WriteString(lipgloss.NewStyle().Background(p.Color(role)).Render("  "))
		}
		fmt.Printf("  %-8s %s\n", n, swatch.String())
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tTHEME\tSPEED\tSIZE\tGENERATOR\tSOLVER")
	for _, n := range config.ListPresets() {
		p := config.GetPreset(n)
		fmt.Fprintf(w, "%s\t%s\t%d\t%dx%d\t%s\t%s\n", n, p.Theme, p.Speed, p.Width, p.Height, p.Generator, p.Solver)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}
