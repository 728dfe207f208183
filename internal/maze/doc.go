// Package maze parses ASCII maze snapshots into cell grids.
//
// A snapshot is a (2w+1)x(2h+1) character block. Walls sit at even
// coordinates and are drawn with '#'; cells sit at odd coordinates and carry
// the search state of the algorithm that produced the snapshot:
//
//	.  visited (path)
//	*  on the final route
//	s  start, on the route     S  start
//	x  stop, on the route      X  stop
//	:  observed
//	q  queued, visited         Q  queued
//
// Each wall character is read once and shared by the two cells it separates,
// so neighbouring cells always agree on the walls between them.
package maze
