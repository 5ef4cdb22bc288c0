package scheduler

import (
	"sync"
	"time"

	"mirnito/internal/infrastructure/metrics"
)

// Scheduler defers a callback by a number of abstract delay units.
// Scheduled work is fire-and-forget: there is no cancellation, and a
// callback fires even if its target has been deleted in the meantime.
type Scheduler interface {
	Schedule(units int, fn func())
}

// TimerScheduler maps delay units onto wall-clock time.
type TimerScheduler struct {
	unit time.Duration
}

func NewTimerScheduler(unit time.Duration) *TimerScheduler {
	return &TimerScheduler{
		unit: unit,
	}
}

func (s *TimerScheduler) Schedule(units int, fn func()) {
	time.AfterFunc(time.Duration(units)*s.unit, func() {
		metrics.DeferredEffectsFired.Inc()
		fn()
	})
}

// ManualScheduler drives deferred work from a virtual clock so tests
// advance time deterministically.
type ManualScheduler struct {
	mu      sync.Mutex
	now     int
	pending []manualTask
}

type manualTask struct {
	due int
	fn  func()
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Schedule(units int, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = append(s.pending, manualTask{due: s.now + units, fn: fn})
}

// Advance moves the virtual clock forward and fires every task that
// has come due, in scheduling order. Callbacks run without the lock so
// they may schedule follow-up work.
func (s *ManualScheduler) Advance(units int) {
	s.mu.Lock()
	s.now += units

	var due []func()
	remaining := s.pending[:0]
	for _, t := range s.pending {
		if t.due <= s.now {
			due = append(due, t.fn)
		} else {
			remaining = append(remaining, t)
		}
	}
	s.pending = remaining
	s.mu.Unlock()

	for _, fn := range due {
		fn()
	}
}
