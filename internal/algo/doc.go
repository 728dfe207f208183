// Package algo enumerates the maze generators and solvers a run can be
// recorded with, and tracks which ones the user has picked.
//
// Two generators carry parameters that cycle through a ring:
//
//   - Growing-Tree picks its next cell by a [Pick] strategy; the six paired
//     strategies (e.g. Newest-Middle) also carry a ratio in [0, 1].
//   - Binary-Tree carves toward a [Bias] corner.
//
// Every variant has a display name for menus and a token form that the host
// splits into command line arguments for the external generator:
//
//	g := algo.Generator{Kind: algo.GrowingTree, Pick: algo.PickNewestMiddle, Ratio: 0.5}
//	g.DisplayName() // "Growing-Tree Newest-Middle 0.50"
//	g.Token()       // "Growing-Tree NewestMiddle 0.50"
//
// Ratios are always formatted with two decimals in both forms.
package algo
