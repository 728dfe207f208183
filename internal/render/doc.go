// Package render draws parsed maze grids with box-drawing glyphs.
//
// [Render] writes glyphs and color roles onto any [Surface]; [Canvas] is the
// in-memory surface used by the TUI and the CLI, turned into text by
// [Canvas.String] or into colored terminal output by [Canvas.Styled].
//
// # Layout
//
// Cell i of a w-wide grid lands on surface position (2*(i%w)+1, 2*(i/w)+1)
// relative to the maze origin; walls sit between cells and corners at the
// crossings, so a w x h maze needs a (2w+1) x (2h+1) surface. The maze is
// centered when the surface is larger.
//
// # Colors
//
// Five roles are used: Default for walls, corners and start/stop markers,
// Observed, Queued, Path for visited links and Route for the solution.
// A [Palette] maps roles to lipgloss colors.
package render
