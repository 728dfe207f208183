// Package playback holds the ordered snapshots of an algorithm run and steps
// through them.
//
// A [Sequence] is loaded from the text of a .steps file, where snapshots are
// separated by a blank line. [Run] plays a sequence forward at its speed and
// stops early when its context is canceled:
//
//	seq := playback.NewSequence()
//	seq.Load(text)
//	seq.SetSpeed(20)
//	err := playback.Run(ctx, seq, func(i int, snap string) error {
//	    return draw(snap)
//	})
package playback
