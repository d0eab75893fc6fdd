// Package tui provides the Bubble Tea integration for Brick Breaker.
// It handles the terminal UI loop, input mapping, and drawing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
)

// FrameMsg is delivered when a scheduled frame is due.
type FrameMsg struct {
	ID brickbreaker.FrameID
}

// FrameScheduler implements brickbreaker.Scheduler on top of tea.Tick.
//
// RequestFrame only records the callback; the tick commands it produces are
// collected by Flush and returned from Update. When a FrameMsg arrives, Fire
// runs the callback unless the frame was cancelled in the meantime, in which
// case the message is dropped.
type FrameScheduler struct {
	interval  time.Duration
	next      brickbreaker.FrameID
	callbacks map[brickbreaker.FrameID]func()
	queued    []tea.Cmd
}

// NewFrameScheduler creates a scheduler firing at the given frames per second.
func NewFrameScheduler(tickRate int) *FrameScheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameScheduler{
		interval:  time.Second / time.Duration(tickRate),
		callbacks: make(map[brickbreaker.FrameID]func()),
	}
}

// RequestFrame schedules fn for the next frame.
func (s *FrameScheduler) RequestFrame(fn func()) brickbreaker.FrameID {
	s.next++
	id := s.next
	s.callbacks[id] = fn
	s.queued = append(s.queued, frameCmd(s.interval, id))
	return id
}

// CancelFrame prevents a scheduled frame from running.
func (s *FrameScheduler) CancelFrame(id brickbreaker.FrameID) {
	delete(s.callbacks, id)
}

// Fire runs the callback for a due frame. Returns false for cancelled or
// unknown frames.
func (s *FrameScheduler) Fire(id brickbreaker.FrameID) bool {
	fn, ok := s.callbacks[id]
	if !ok {
		return false
	}
	delete(s.callbacks, id)
	fn()
	return true
}

// Flush returns the tick commands requested since the last call.
func (s *FrameScheduler) Flush() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Pending returns the number of frames that will still run.
func (s *FrameScheduler) Pending() int {
	return len(s.callbacks)
}

// frameCmd returns a Bubble Tea command that delivers a FrameMsg after interval.
func frameCmd(interval time.Duration, id brickbreaker.FrameID) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return FrameMsg{ID: id}
	})
}
