// Package analysis measures how a search unfolds over a step sequence.
//
//   - [Progress]: per-step flag counts, ready for plotting
//   - [Summarize]: headline figures for a whole sequence
//
// Steps that fail to parse repeat the previous step's counts so that the
// series stay aligned with step indices.
package analysis
