package playback

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRun_PlaysToEnd(t *testing.T) {
	seq := NewSequence()
	seq.Load("a\n\nb\n\nc")
	seq.SetSpeed(MaxSpeed)

	var seen []string
	err := Run(context.Background(), seq, func(i int, snap string) error {
		if seq.Step() != i {
			t.Errorf("frame %d: sequence step is %d", i, seq.Step())
		}
		seen = append(seen, snap)
		return nil
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(seen) != 3 || seen[0] != "a" || seen[2] != "c" {
		t.Errorf("unexpected frames %v", seen)
	}
	if !seq.AtEnd() {
		t.Error("expected sequence at end")
	}
}

func TestRun_ResumesFromCurrentStep(t *testing.T) {
	seq := NewSequence()
	seq.Load("a\n\nb\n\nc")
	seq.SetSpeed(MaxSpeed)
	seq.SetStep(1)

	var frames []int
	Run(context.Background(), seq, func(i int, _ string) error {
		frames = append(frames, i)
		return nil
	})
	if len(frames) != 2 || frames[0] != 1 {
		t.Errorf("expected frames [1 2], got %v", frames)
	}
}

func TestRun_RestartsAtEnd(t *testing.T) {
	seq := NewSequence()
	seq.Load("a\n\nb")
	seq.SetSpeed(MaxSpeed)
	seq.SetStep(1)

	var frames []int
	Run(context.Background(), seq, func(i int, _ string) error {
		frames = append(frames, i)
		return nil
	})
	if len(frames) != 2 || frames[0] != 0 {
		t.Errorf("expected restart from 0, got %v", frames)
	}
}

func TestRun_Cancel(t *testing.T) {
	seq := NewSequence()
	seq.Load("a\n\nb\n\nc\n\nd")
	seq.SetSpeed(MinSpeed)

	ctx, cancel := context.WithCancel(context.Background())
	frames := 0
	start := time.Now()
	err := Run(ctx, seq, func(i int, _ string) error {
		frames++
		cancel()
		return nil
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if frames != 1 {
		t.Errorf("expected 1 frame, got %d", frames)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Error("cancel did not interrupt the frame wait")
	}
}

func TestRun_FrameError(t *testing.T) {
	seq := NewSequence()
	seq.Load("a\n\nb")
	boom := errors.New("boom")

	err := Run(context.Background(), seq, func(int, string) error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("expected frame error, got %v", err)
	}
}

func TestRun_Empty(t *testing.T) {
	err := Run(context.Background(), NewSequence(), func(int, string) error { return nil })
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}
