package translation

import (
	"context"
	"sync"
)

// Slot owns at most one in-flight submission on behalf of a screen. Starting
// a new submission supersedes the previous one; closing the slot tears it
// down. A result is delivered only if its task is still the slot's current
// one and the slot is open; late results are dropped.
type Slot struct {
	mu      sync.Mutex
	current *Task
	closed  bool
}

func NewSlot() *Slot { return &Slot{} }

// Start submits req through p and calls deliver with the result. deliver runs
// on a background goroutine while the slot is locked, so Close waits for an
// in-flight delivery to finish.
func (s *Slot) Start(ctx context.Context, p Provider, req Request, deliver func(Result)) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSlotClosed
	}

	task, err := p.Submit(ctx, req)
	if err != nil {
		return nil, err
	}
	if s.current != nil {
		s.current.Cancel()
	}
	s.current = task

	go func() {
		res, ok := <-task.Result()
		s.mu.Lock()
		defer s.mu.Unlock()
		if !ok || s.closed || s.current != task {
			return
		}
		s.current = nil
		deliver(res)
	}()
	return task, nil
}

// Busy reports whether a submission is in flight.
func (s *Slot) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// Cancel abandons the in-flight submission but keeps the slot usable.
func (s *Slot) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.current.Cancel()
		s.current = nil
	}
}

// Close cancels any in-flight submission. Further Starts fail.
func (s *Slot) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.current != nil {
		s.current.Cancel()
		s.current = nil
	}
}
