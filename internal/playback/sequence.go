package playback

import (
	"strings"
	"time"
)

const (
	MinSpeed     = 1
	MaxSpeed     = 100
	DefaultSpeed = 10

	// Separator splits snapshots in a steps file.
	Separator = "\n\n"
)

// Sequence is an ordered list of snapshots with a cursor and a speed in
// steps per second.
type Sequence struct {
	snapshots []string
	step      int
	speed     int
}

func NewSequence() *Sequence {
	return &Sequence{speed: DefaultSpeed}
}

// Load replaces the snapshots with those in text and rewinds to step 0.
// CRLF blank lines are normalized before splitting.
func (s *Sequence) Load(text string) {
	text = strings.ReplaceAll(text, "\r\n\r\n", Separator)
	s.snapshots = strings.Split(text, Separator)
	s.step = 0
}

// Reset drops all snapshots.
func (s *Sequence) Reset() {
	s.snapshots = nil
	s.step = 0
}

func (s *Sequence) Len() int { return len(s.snapshots) }

// Snapshots returns a copy of the loaded snapshots.
func (s *Sequence) Snapshots() []string {
	out := make([]string, len(s.snapshots))
	copy(out, s.snapshots)
	return out
}

func (s *Sequence) Step() int { return s.step }

// SetStep moves the cursor to i clamped to [0, Len()-1].
func (s *Sequence) SetStep(i int) error {
	if len(s.snapshots) == 0 {
		return ErrEmpty
	}
	switch {
	case i < 0:
		s.step = 0
	case i > len(s.snapshots)-1:
		s.step = len(s.snapshots) - 1
	default:
		s.step = i
	}
	return nil
}

// Current returns the snapshot under the cursor.
func (s *Sequence) Current() (string, error) {
	if len(s.snapshots) == 0 {
		return "", ErrEmpty
	}
	return s.snapshots[s.step], nil
}

// Next advances one step and reports whether the cursor moved.
func (s *Sequence) Next() bool {
	if s.step+1 >= len(s.snapshots) {
		return false
	}
	s.step++
	return true
}

// Prev steps back one and reports whether the cursor moved.
func (s *Sequence) Prev() bool {
	if s.step == 0 || len(s.snapshots) == 0 {
		return false
	}
	s.step--
	return true
}

// AtEnd reports whether the cursor is on the last snapshot.
func (s *Sequence) AtEnd() bool {
	return len(s.snapshots) == 0 || s.step == len(s.snapshots)-1
}

func (s *Sequence) Speed() int { return s.speed }

// SetSpeed clamps v to [MinSpeed, MaxSpeed].
func (s *Sequence) SetSpeed(v int) {
	switch {
	case v < MinSpeed:
		s.speed = MinSpeed
	case v > MaxSpeed:
		s.speed = MaxSpeed
	default:
		s.speed = v
	}
}

// PeriodMillis is 1000/speed truncated, so neighbouring speeds may share a
// period.
func (s *Sequence) PeriodMillis() int { return 1000 / s.speed }

// Period is the delay between frames.
func (s *Sequence) Period() time.Duration {
	return time.Duration(s.PeriodMillis()) * time.Millisecond
}
