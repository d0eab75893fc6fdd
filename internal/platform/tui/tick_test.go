package tui

import (
	"testing"
	"time"
)

func TestFrameSchedulerInterval(t *testing.T) {
	tests := []struct {
		tickRate int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}

	for _, tt := range tests {
		s := NewFrameScheduler(tt.tickRate)
		if s.interval != tt.expected {
			t.Errorf("NewFrameScheduler(%d).interval = %v, expected %v", tt.tickRate, s.interval, tt.expected)
		}
	}
}

func TestFrameSchedulerFire(t *testing.T) {
	s := NewFrameScheduler(60)
	runs := 0

	id := s.RequestFrame(func() { runs++ })
	if id == 0 {
		t.Fatal("RequestFrame returned the zero id")
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", s.Pending())
	}

	if !s.Fire(id) {
		t.Error("Fire should run a scheduled frame")
	}
	if s.Fire(id) {
		t.Error("a frame must run only once")
	}
	if runs != 1 {
		t.Errorf("callback ran %d times, expected 1", runs)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestFrameSchedulerCancel(t *testing.T) {
	s := NewFrameScheduler(60)
	ran := false

	id := s.RequestFrame(func() { ran = true })
	s.CancelFrame(id)

	if s.Fire(id) {
		t.Error("Fire should drop a cancelled frame")
	}
	if ran {
		t.Error("cancelled frame ran")
	}
	if s.Fire(id + 100) {
		t.Error("Fire should drop unknown frames")
	}
}

func TestFrameSchedulerDistinctIDs(t *testing.T) {
	s := NewFrameScheduler(60)
	seen := make(map[uint64]bool)
	for range 10 {
		id := s.RequestFrame(func() {})
		if seen[uint64(id)] {
			t.Fatalf("duplicate frame id %d", id)
		}
		seen[uint64(id)] = true
	}
}

func TestFrameSchedulerFlush(t *testing.T) {
	s := NewFrameScheduler(60)

	if cmd := s.Flush(); cmd != nil {
		t.Error("Flush with nothing requested should return nil")
	}

	s.RequestFrame(func() {})
	if cmd := s.Flush(); cmd == nil {
		t.Error("Flush should return the tick for a requested frame")
	}
	if cmd := s.Flush(); cmd != nil {
		t.Error("Flush should not return the same tick twice")
	}
}
