package debounce

import (
	"sync"
	"time"
)

// Slot holds at most one pending task. Scheduling a new task cancels the
// previous one.
type Slot struct {
	clock Clock

	mu      sync.Mutex
	timer   Timer
	task    func()
	version uint64
}

// NewSlot creates an empty slot on clock
func NewSlot(clock Clock) *Slot {
	if clock == nil {
		clock = RealClock()
	}
	return &Slot{clock: clock}
}

// Schedule replaces any pending task with f, due after d
func (s *Slot) Schedule(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.version++
	version := s.version
	s.task = f
	s.timer = s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		// a Stop racing with a real timer firing must not run a replaced task
		if s.version != version {
			s.mu.Unlock()
			return
		}
		s.timer = nil
		s.task = nil
		s.mu.Unlock()
		f()
	})
}

// Cancel drops the pending task, if any, and reports whether one was dropped
func (s *Slot) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.version++
	s.task = nil
	if s.timer == nil {
		return false
	}
	stopped := s.timer.Stop()
	s.timer = nil
	return stopped
}

// Flush runs the pending task now instead of at its deadline and reports
// whether there was one. The task runs on the calling goroutine.
func (s *Slot) Flush() bool {
	s.mu.Lock()
	if s.timer == nil || !s.timer.Stop() {
		s.mu.Unlock()
		return false
	}
	s.version++
	f := s.task
	s.timer = nil
	s.task = nil
	s.mu.Unlock()

	f()
	return true
}

// Pending reports whether a task is waiting to run
func (s *Slot) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}
